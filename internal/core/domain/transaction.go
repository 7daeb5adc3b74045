package domain

import "slices"

// TxStatus is the ledger's view of a submitted transaction.
type TxStatus string

const (
	TxStatusPending   TxStatus = "PENDING"
	TxStatusConfirmed TxStatus = "CONFIRMED"
	TxStatusFailed    TxStatus = "FAILED"
	TxStatusUnknown   TxStatus = "UNKNOWN"
)

// IsTerminal returns true if the ledger has settled the transaction either way.
func (s TxStatus) IsTerminal() bool {
	return s == TxStatusConfirmed || s == TxStatusFailed
}

// SystemProgramAddress is the ledger's system program. Setting it as a delegate clears delegation.
const SystemProgramAddress = "11111111111111111111111111111111"

// UnsignedTransaction is a serialized transaction message awaiting signatures.
// Signers lists the required signer addresses in signature-slot order.
type UnsignedTransaction struct {
	Message []byte
	Signers []string
}

// RequiresSigner returns true if address occupies a signature slot.
func (t *UnsignedTransaction) RequiresSigner(address string) bool {
	return slices.Contains(t.Signers, address)
}

// SignerIndex returns the slot of address, or -1.
func (t *UnsignedTransaction) SignerIndex(address string) int {
	return slices.Index(t.Signers, address)
}
