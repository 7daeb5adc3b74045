package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delegated-trading-gateway/internal/core/domain"
	"delegated-trading-gateway/internal/core/ports"
	"delegated-trading-gateway/pkg/apperror"
	"delegated-trading-gateway/pkg/solanatx"

	"github.com/rs/zerolog"
)

// TxSubmitter signs transactions with an agent wallet key, submits them and
// waits for confirmation.
type TxSubmitter struct {
	wallets        ports.AgentWalletService
	ledger         ports.LedgerClient
	confirmTimeout time.Duration
	log            zerolog.Logger
}

// NewTxSubmitter creates a new TxSubmitter.
func NewTxSubmitter(wallets ports.AgentWalletService, ledger ports.LedgerClient, confirmTimeout time.Duration, log zerolog.Logger) *TxSubmitter {
	return &TxSubmitter{
		wallets:        wallets,
		ledger:         ledger,
		confirmTimeout: confirmTimeout,
		log:            log,
	}
}

// SignAndSubmit signs every slot that belongs to the agent wallet and submits.
// Transactions that need any other signer are rejected before decryption.
// The key is held only while signing and submitting.
func (s *TxSubmitter) SignAndSubmit(ctx context.Context, wallet *domain.AgentWallet, tx *domain.UnsignedTransaction) (string, error) {
	if tx == nil || len(tx.Signers) == 0 {
		return "", apperror.InternalError(errors.New("transaction has no signers"))
	}
	for _, signer := range tx.Signers {
		if signer != wallet.PublicKey {
			return "", apperror.InternalError(fmt.Errorf("transaction requires foreign signer %s", signer))
		}
	}

	var signature string
	err := s.wallets.WithSigningKey(ctx, wallet.ID, func(key *domain.SigningKey) error {
		sig := key.Sign(tx.Message)
		slots := make([][]byte, len(tx.Signers))
		for i := range slots {
			slots[i] = sig
		}
		// The first signature is the transaction id, known before submitting.
		signature = solanatx.EncodeSignature(sig)

		submitted, err := s.ledger.SubmitTransaction(ctx, solanatx.Encode(slots, tx.Message))
		if err != nil {
			return s.submitError(signature, err)
		}
		signature = submitted
		return nil
	})
	if err != nil {
		if apperror.HasCode(err, "TX_002") {
			return signature, err
		}
		return "", err
	}

	return signature, s.Confirm(ctx, signature)
}

// SubmitSigned submits a transaction that was fully signed elsewhere.
func (s *TxSubmitter) SubmitSigned(ctx context.Context, signed []byte) (string, error) {
	var signature string
	if sigs, _, err := solanatx.Decode(signed); err == nil && len(sigs) > 0 {
		signature = solanatx.EncodeSignature(sigs[0])
	}

	submitted, err := s.ledger.SubmitTransaction(ctx, signed)
	if err != nil {
		err = s.submitError(signature, err)
		if apperror.HasCode(err, "TX_002") {
			return signature, err
		}
		return "", err
	}
	return submitted, s.Confirm(ctx, submitted)
}

// submitError maps a submit failure. Only an explicit node rejection proves
// the transaction did not land; anything else may have been broadcast.
func (s *TxSubmitter) submitError(signature string, err error) error {
	if errors.Is(err, ports.ErrTransactionRejected) {
		return apperror.ErrSubmissionFailed(err)
	}
	s.log.Warn().Err(err).Str("signature", signature).Msg("submit outcome unknown")
	return apperror.ErrOutcomeUnknown(signature, err)
}

// Confirm waits up to the confirm timeout. A timeout or an undecided status is
// reported as an unknown outcome, never as a failure.
func (s *TxSubmitter) Confirm(ctx context.Context, signature string) error {
	confirmCtx, cancel := context.WithTimeout(ctx, s.confirmTimeout)
	defer cancel()

	status, err := s.ledger.ConfirmTransaction(confirmCtx, signature)
	switch {
	case err != nil:
		s.log.Warn().Err(err).Str("signature", signature).Msg("confirmation did not complete")
		return apperror.ErrOutcomeUnknown(signature, err)
	case status == domain.TxStatusConfirmed:
		return nil
	case status == domain.TxStatusFailed:
		return apperror.ErrSubmissionFailed(fmt.Errorf("transaction %s failed on ledger", signature))
	default:
		s.log.Warn().Str("signature", signature).Str("status", string(status)).Msg("transaction outcome unknown")
		return apperror.ErrOutcomeUnknown(signature, fmt.Errorf("status %s", status))
	}
}

// lockWallet acquires the per-wallet lock, bounded by wait.
func lockWallet(ctx context.Context, locker ports.WalletLocker, wallet *domain.AgentWallet, wait time.Duration) (func(), error) {
	lockCtx := ctx
	if wait > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, wait)
		defer cancel()
	}
	release, err := locker.Acquire(lockCtx, "agent-wallet:"+wallet.ID.String())
	if err != nil {
		return nil, apperror.ErrLockTimeout(err)
	}
	return release, nil
}

// lockFresh acquires the per-wallet lock and re-reads the wallet under it.
// Callers must continue with the returned copy: a snapshot taken before the
// lock may predate another holder's writes.
func lockFresh(ctx context.Context, locker ports.WalletLocker, wallets ports.AgentWalletService, wallet *domain.AgentWallet, wait time.Duration) (*domain.AgentWallet, func(), error) {
	release, err := lockWallet(ctx, locker, wallet, wait)
	if err != nil {
		return nil, nil, err
	}
	fresh, err := wallets.Require(ctx, wallet.UserID)
	if err != nil {
		release()
		return nil, nil, err
	}
	if fresh.ID != wallet.ID {
		release()
		return nil, nil, apperror.InternalError(fmt.Errorf("wallet %s replaced while waiting for its lock", wallet.ID))
	}
	return fresh, release, nil
}
