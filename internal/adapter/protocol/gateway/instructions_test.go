package gateway

import (
	"encoding/binary"
	"testing"

	"delegated-trading-gateway/pkg/solanatx"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDelegateIx(t *testing.T, user, authority solana.PublicKey, subaccount uint16, delegate solana.PublicKey) solana.Instruction {
	t.Helper()
	data := append([]byte{}, setDelegateDiscriminator...)
	data = binary.LittleEndian.AppendUint16(data, subaccount)
	data = append(data, delegate[:]...)
	return solana.NewInstruction(solana.MustPublicKeyFromBase58(testProgramID), solana.AccountMetaSlice{
		solana.Meta(user).WRITE(),
		solana.Meta(authority).SIGNER(),
	}, data)
}

func buildMessage(t *testing.T, payer solana.PublicKey, ixs ...solana.Instruction) []byte {
	t.Helper()
	tx, err := solana.NewTransaction(ixs, solana.MustHashFromBase58(testBlockhash), solana.TransactionPayer(payer))
	require.NoError(t, err)
	msg, err := tx.Message.MarshalBinary()
	require.NoError(t, err)
	return msg
}

func randomKey(t *testing.T) solana.PublicKey {
	t.Helper()
	return solana.MustPublicKeyFromBase58(newAddress(t))
}

func TestSetDelegateDiscriminator(t *testing.T) {
	// sha256("global:update_user_delegate")[:8]
	assert.Len(t, setDelegateDiscriminator, 8)
	assert.Equal(t, anchorDiscriminator("update_user_delegate"), setDelegateDiscriminator)
	assert.NotEqual(t, anchorDiscriminator("deposit"), setDelegateDiscriminator)
}

func TestParseSetDelegate(t *testing.T) {
	c := NewClient("http://unused", testProgramID, nil, zerolog.Nop())
	authority, user, agent := randomKey(t), randomKey(t), randomKey(t)

	t.Run("delegate change", func(t *testing.T) {
		msg := buildMessage(t, authority, setDelegateIx(t, user, authority, 2, agent))

		call, err := c.ParseSetDelegate(msg)
		require.NoError(t, err)
		assert.Equal(t, authority.String(), call.Account.Authority)
		assert.Equal(t, uint16(2), call.Account.SubaccountIndex)
		assert.Equal(t, agent.String(), call.Delegate)
	})

	t.Run("compute budget alongside", func(t *testing.T) {
		budget := solana.NewInstruction(solana.ComputeBudget, nil, []byte{2, 0x40, 0x0d, 0x03, 0x00})
		msg := buildMessage(t, authority, budget, setDelegateIx(t, user, authority, 0, solana.SystemProgramID))

		call, err := c.ParseSetDelegate(msg)
		require.NoError(t, err)
		assert.Equal(t, solana.SystemProgramID.String(), call.Delegate)
	})

	t.Run("signed transfer is rejected", func(t *testing.T) {
		msg, err := solanatx.TransferMessage(authority.String(), agent.String(), 1_000_000_000, testBlockhash)
		require.NoError(t, err)

		_, err = c.ParseSetDelegate(msg)
		assert.ErrorIs(t, err, ErrUnexpectedInstruction)
	})

	t.Run("other protocol instruction is rejected", func(t *testing.T) {
		data := append(anchorDiscriminator("withdraw"), make([]byte, 34)...)
		ix := solana.NewInstruction(solana.MustPublicKeyFromBase58(testProgramID), solana.AccountMetaSlice{
			solana.Meta(user).WRITE(),
			solana.Meta(authority).SIGNER(),
		}, data)

		_, err := c.ParseSetDelegate(buildMessage(t, authority, ix))
		assert.ErrorIs(t, err, ErrUnexpectedInstruction)
	})

	t.Run("delegate change bundled with a transfer is rejected", func(t *testing.T) {
		transfer := solana.NewInstruction(solana.SystemProgramID, solana.AccountMetaSlice{
			solana.Meta(authority).WRITE().SIGNER(),
			solana.Meta(agent).WRITE(),
		}, []byte{2, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0})
		msg := buildMessage(t, authority, setDelegateIx(t, user, authority, 0, agent), transfer)

		_, err := c.ParseSetDelegate(msg)
		assert.ErrorIs(t, err, ErrUnexpectedInstruction)
	})

	t.Run("two delegate changes are rejected", func(t *testing.T) {
		msg := buildMessage(t, authority,
			setDelegateIx(t, user, authority, 0, agent),
			setDelegateIx(t, user, authority, 1, agent),
		)
		_, err := c.ParseSetDelegate(msg)
		assert.ErrorIs(t, err, ErrUnexpectedInstruction)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := c.ParseSetDelegate([]byte("set-delegate"))
		assert.ErrorIs(t, err, solanatx.ErrMalformed)
	})
}
