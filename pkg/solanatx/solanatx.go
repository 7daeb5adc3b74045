// Package solanatx reads and writes the ledger's transaction wire format on
// top of solana-go: a compact-u16 prefixed list of 64-byte signatures followed
// by the message. Message bytes are passed through untouched so that
// signatures made over them stay valid.
package solanatx

import (
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
)

const (
	SignatureSize = solana.SignatureLength
	PublicKeySize = solana.PublicKeyLength
)

var (
	ErrMalformed      = errors.New("malformed transaction")
	ErrInvalidAddress = errors.New("invalid address")
)

// Instruction is a top-level instruction of a decoded message. Accounts are
// resolved against the message's static keys.
type Instruction struct {
	ProgramID string
	Accounts  []string
	Data      []byte
}

// Encode serializes signatures and message. Missing signatures must be passed
// as zero-filled slots.
func Encode(signatures [][]byte, message []byte) []byte {
	out := make([]byte, 0, 3+len(signatures)*SignatureSize+len(message))
	// Slot counts come from a u8 header field and always fit a compact-u16.
	_ = bin.EncodeCompactU16Length(&out, len(signatures))
	for _, sig := range signatures {
		slot := solana.SignatureFromBytes(sig)
		out = append(out, slot[:]...)
	}
	return append(out, message...)
}

// Decode splits a serialized transaction into its signature slots and message.
// The message must parse as a legacy or versioned message.
func Decode(raw []byte) ([][]byte, []byte, error) {
	n, off, err := bin.DecodeCompactU16(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: signature count: %v", ErrMalformed, err)
	}
	if len(raw) < off+n*SignatureSize {
		return nil, nil, fmt.Errorf("%w: %d signature slots exceed %d bytes", ErrMalformed, n, len(raw))
	}
	sigs := make([][]byte, n)
	for i := range sigs {
		start := off + i*SignatureSize
		sigs[i] = raw[start : start+SignatureSize]
	}
	msg := raw[off+n*SignatureSize:]
	if _, err := parseMessage(msg); err != nil {
		return nil, nil, err
	}
	return sigs, msg, nil
}

func parseMessage(message []byte) (*solana.Message, error) {
	if len(message) == 0 {
		return nil, fmt.Errorf("%w: empty message", ErrMalformed)
	}
	var msg solana.Message
	if err := msg.UnmarshalWithDecoder(bin.NewBinDecoder(message)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if int(msg.Header.NumRequiredSignatures) > len(msg.AccountKeys) {
		return nil, fmt.Errorf("%w: %d signers but %d account keys", ErrMalformed, msg.Header.NumRequiredSignatures, len(msg.AccountKeys))
	}
	return &msg, nil
}

// Signers returns the base58 addresses that must sign message, in slot order.
// Both legacy and versioned messages are accepted.
func Signers(message []byte) ([]string, error) {
	msg, err := parseMessage(message)
	if err != nil {
		return nil, err
	}
	keys := msg.Signers()
	signers := make([]string, len(keys))
	for i, k := range keys {
		signers[i] = k.String()
	}
	return signers, nil
}

// Instructions returns every top-level instruction. Messages whose
// instructions reference lookup-table accounts are rejected.
func Instructions(message []byte) ([]Instruction, error) {
	msg, err := parseMessage(message)
	if err != nil {
		return nil, err
	}
	keys := msg.AccountKeys
	out := make([]Instruction, 0, len(msg.Instructions))
	for i, ix := range msg.Instructions {
		if int(ix.ProgramIDIndex) >= len(keys) {
			return nil, fmt.Errorf("%w: instruction %d: program index %d out of range", ErrMalformed, i, ix.ProgramIDIndex)
		}
		accounts := make([]string, len(ix.Accounts))
		for j, idx := range ix.Accounts {
			if int(idx) >= len(keys) {
				return nil, fmt.Errorf("%w: instruction %d: account index %d out of range", ErrMalformed, i, idx)
			}
			accounts[j] = keys[idx].String()
		}
		out = append(out, Instruction{
			ProgramID: keys[ix.ProgramIDIndex].String(),
			Accounts:  accounts,
			Data:      ix.Data,
		})
	}
	return out, nil
}

// TransferMessage builds a legacy message moving lamports from one address to
// another through the system program. from pays the fee and is the only signer.
func TransferMessage(from, to string, lamports uint64, recentBlockhash string) ([]byte, error) {
	fromKey, err := parseKey(from)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	toKey, err := parseKey(to)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	blockhash, err := solana.HashFromBase58(recentBlockhash)
	if err != nil {
		return nil, fmt.Errorf("blockhash: %w: %q", ErrInvalidAddress, recentBlockhash)
	}

	tx, err := solana.NewTransaction(
		[]solana.Instruction{system.NewTransferInstruction(lamports, fromKey, toKey).Build()},
		blockhash,
		solana.TransactionPayer(fromKey),
	)
	if err != nil {
		return nil, fmt.Errorf("build transfer: %w", err)
	}
	return tx.Message.MarshalBinary()
}

func parseKey(s string) (solana.PublicKey, error) {
	pk, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return pk, nil
}

// DecodeAddress decodes a base58 32-byte address.
func DecodeAddress(s string) ([]byte, error) {
	pk, err := parseKey(s)
	if err != nil {
		return nil, err
	}
	return pk.Bytes(), nil
}

// EncodeSignature renders a signature the way the ledger reports it.
func EncodeSignature(sig []byte) string {
	return solana.SignatureFromBytes(sig).String()
}
