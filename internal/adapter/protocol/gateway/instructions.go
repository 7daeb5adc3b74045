package gateway

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"delegated-trading-gateway/internal/core/ports"
	"delegated-trading-gateway/pkg/solanatx"

	"github.com/gagliardetto/solana-go"
)

// ErrUnexpectedInstruction is returned when a message carries anything other
// than the instruction the caller asked for.
var ErrUnexpectedInstruction = errors.New("unexpected instruction")

// setDelegateDiscriminator prefixes the protocol's update_user_delegate
// instruction data.
var setDelegateDiscriminator = anchorDiscriminator("update_user_delegate")

func anchorDiscriminator(name string) []byte {
	sum := sha256.Sum256([]byte("global:" + name))
	return sum[:8]
}

// set-delegate data: discriminator, sub-account id (u16 LE), delegate key.
const setDelegateDataLen = 8 + 2 + solana.PublicKeyLength

// ParseSetDelegate checks that message only changes a trading account's
// delegate and returns the account and new delegate. Compute-budget
// instructions are allowed alongside it.
func (c *Client) ParseSetDelegate(message []byte) (*ports.SetDelegateCall, error) {
	ixs, err := solanatx.Instructions(message)
	if err != nil {
		return nil, err
	}

	var call *ports.SetDelegateCall
	for i, ix := range ixs {
		switch ix.ProgramID {
		case solana.ComputeBudget.String():
			continue
		case c.programID:
		default:
			return nil, fmt.Errorf("%w: instruction %d targets program %s", ErrUnexpectedInstruction, i, ix.ProgramID)
		}

		if len(ix.Data) != setDelegateDataLen || !bytes.Equal(ix.Data[:8], setDelegateDiscriminator) {
			return nil, fmt.Errorf("%w: instruction %d is not a delegate change", ErrUnexpectedInstruction, i)
		}
		// accounts: user, authority
		if len(ix.Accounts) < 2 {
			return nil, fmt.Errorf("%w: instruction %d has %d accounts", ErrUnexpectedInstruction, i, len(ix.Accounts))
		}
		if call != nil {
			return nil, fmt.Errorf("%w: more than one delegate change", ErrUnexpectedInstruction)
		}
		call = &ports.SetDelegateCall{
			Account: ports.AccountRef{
				Authority:       ix.Accounts[1],
				SubaccountIndex: binary.LittleEndian.Uint16(ix.Data[8:10]),
			},
			Delegate: solana.PublicKeyFromBytes(ix.Data[10:]).String(),
		}
	}
	if call == nil {
		return nil, fmt.Errorf("%w: no delegate change found", ErrUnexpectedInstruction)
	}
	return call, nil
}
