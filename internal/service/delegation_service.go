package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"slices"

	"delegated-trading-gateway/internal/core/domain"
	"delegated-trading-gateway/internal/core/ports"
	"delegated-trading-gateway/pkg/apperror"
	"delegated-trading-gateway/pkg/solanatx"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DelegationServiceImpl implements ports.DelegationService. The ledger's
// delegate field is authoritative; the cached flag only follows it.
type DelegationServiceImpl struct {
	wallets   ports.AgentWalletService
	protocol  ports.ProtocolClient
	ledger    ports.LedgerClient
	submitter *TxSubmitter
	audit     ports.AuditService
	log       zerolog.Logger
}

// NewDelegationService creates a new DelegationServiceImpl.
func NewDelegationService(
	wallets ports.AgentWalletService,
	protocol ports.ProtocolClient,
	ledger ports.LedgerClient,
	submitter *TxSubmitter,
	audit ports.AuditService,
	log zerolog.Logger,
) *DelegationServiceImpl {
	return &DelegationServiceImpl{
		wallets:   wallets,
		protocol:  protocol,
		ledger:    ledger,
		submitter: submitter,
		audit:     audit,
		log:       log,
	}
}

// Status reads the ledger, derives the delegation state and reconciles the cached flag.
func (s *DelegationServiceImpl) Status(ctx context.Context, userID uuid.UUID) (*domain.DelegationStatus, error) {
	wallet, err := s.wallets.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return &domain.DelegationStatus{State: domain.DelegationUnlinked}, nil
	}

	address, account, err := s.readAccount(ctx, wallet)
	if err != nil {
		return nil, err
	}

	status := &domain.DelegationStatus{
		State:             domain.ResolveDelegationState(wallet, account),
		AgentPublicKey:    wallet.PublicKey,
		AccountAddress:    address,
		AccountAuthority:  wallet.AccountAuthority,
		HasLedgerAccount:  account != nil,
		CachedIsDelegated: wallet.IsDelegated,
	}
	if account != nil {
		status.OnChainDelegate = account.Delegate
	}
	status.Drift = s.reconcile(ctx, wallet, account)
	return status, nil
}

// LoadAccount reads and decodes the wallet's trading account. It returns nil
// when the account does not exist on the ledger.
func (s *DelegationServiceImpl) LoadAccount(ctx context.Context, wallet *domain.AgentWallet) (*domain.TradingAccount, error) {
	_, account, err := s.readAccount(ctx, wallet)
	return account, err
}

// RequireDelegated fails closed unless the ledger names the agent as delegate.
func (s *DelegationServiceImpl) RequireDelegated(ctx context.Context, wallet *domain.AgentWallet) (*domain.TradingAccount, error) {
	_, account, err := s.readAccount(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.ErrNoLedgerAccount()
	}

	cached := wallet.IsDelegated
	s.reconcile(ctx, wallet, account)

	if account.IsDelegatedTo(wallet.PublicKey) {
		return account, nil
	}
	if cached {
		return nil, apperror.ErrDelegateNotSet()
	}
	return nil, apperror.ErrNotDelegated()
}

// BuildAuthorizeTx returns an unsigned transaction naming the agent as delegate.
func (s *DelegationServiceImpl) BuildAuthorizeTx(ctx context.Context, userID uuid.UUID) (*ports.DelegationTx, error) {
	return s.buildDelegateTx(ctx, userID, func(w *domain.AgentWallet) string { return w.PublicKey })
}

// BuildRevokeTx returns an unsigned transaction that clears the delegate.
func (s *DelegationServiceImpl) BuildRevokeTx(ctx context.Context, userID uuid.UUID) (*ports.DelegationTx, error) {
	return s.buildDelegateTx(ctx, userID, func(*domain.AgentWallet) string { return domain.SystemProgramAddress })
}

func (s *DelegationServiceImpl) buildDelegateTx(ctx context.Context, userID uuid.UUID, delegateOf func(*domain.AgentWallet) string) (*ports.DelegationTx, error) {
	wallet, err := s.wallets.Require(ctx, userID)
	if err != nil {
		return nil, err
	}
	address, account, err := s.readAccount(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.ErrNoLedgerAccount()
	}

	delegate := delegateOf(wallet)
	tx, err := s.protocol.BuildSetDelegate(ctx, accountRef(wallet), delegate)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("build set delegate: %w", err))
	}

	return &ports.DelegationTx{
		Transaction:    base64.StdEncoding.EncodeToString(solanatx.Encode(make([][]byte, len(tx.Signers)), tx.Message)),
		AccountAddress: address,
		Authority:      wallet.AccountAuthority,
		Delegate:       delegate,
	}, nil
}

// SubmitSignedDelegation relays a delegate change signed by the account
// authority, then records whatever the ledger now says.
func (s *DelegationServiceImpl) SubmitSignedDelegation(ctx context.Context, userID uuid.UUID, signedTx string) (*ports.DelegationSubmitResult, error) {
	wallet, err := s.wallets.Require(ctx, userID)
	if err != nil {
		return nil, err
	}

	raw, err := base64.StdEncoding.DecodeString(signedTx)
	if err != nil {
		return nil, apperror.Validation("signed_transaction must be base64")
	}
	_, message, err := solanatx.Decode(raw)
	if err != nil {
		return nil, apperror.Validation("signed_transaction is malformed")
	}
	signers, err := solanatx.Signers(message)
	if err != nil {
		return nil, apperror.Validation("signed_transaction is malformed")
	}
	if !slices.Contains(signers, wallet.AccountAuthority) {
		return nil, apperror.Validation("transaction must be signed by the trading account authority")
	}
	call, err := s.protocol.ParseSetDelegate(message)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("signed delegation rejected")
		return nil, apperror.Validation("transaction must only change the trading account delegate")
	}
	if call.Account != accountRef(wallet) {
		return nil, apperror.Validation("transaction targets a different trading account")
	}
	if call.Delegate != wallet.PublicKey && call.Delegate != domain.SystemProgramAddress {
		return nil, apperror.Validation("delegate must be the agent wallet or cleared")
	}

	signature, err := s.submitter.SubmitSigned(ctx, raw)
	if err != nil {
		return nil, err
	}

	_, account, err := s.readAccount(ctx, wallet)
	if err != nil {
		return nil, err
	}
	switch {
	case account == nil:
	case account.IsDelegatedTo(wallet.PublicKey):
		if _, err := s.wallets.MarkDelegated(ctx, wallet.ID, wallet.SubaccountIndex); err != nil {
			return nil, err
		}
	default:
		if _, err := s.wallets.Revoke(ctx, wallet.ID); err != nil {
			return nil, err
		}
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Str("signature", signature).
		Msg("delegation change confirmed")

	status, err := s.Status(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ports.DelegationSubmitResult{Signature: signature, Status: status}, nil
}

func (s *DelegationServiceImpl) readAccount(ctx context.Context, wallet *domain.AgentWallet) (string, *domain.TradingAccount, error) {
	address, err := s.protocol.UserAccountAddress(ctx, accountRef(wallet))
	if err != nil {
		return "", nil, apperror.InternalError(fmt.Errorf("derive account address: %w", err))
	}
	data, err := s.ledger.GetAccountInfo(ctx, address)
	if err != nil {
		return "", nil, apperror.InternalError(fmt.Errorf("get account info: %w", err))
	}
	if data == nil {
		return address, nil, nil
	}
	account, err := s.protocol.DecodeUserAccount(ctx, address, data)
	if err != nil {
		return "", nil, apperror.InternalError(fmt.Errorf("decode account: %w", err))
	}
	return address, account, nil
}

// reconcile aligns the cached flag with the ledger and reports whether they disagreed.
// Failures are logged; the ledger read already decided the caller's outcome.
func (s *DelegationServiceImpl) reconcile(ctx context.Context, wallet *domain.AgentWallet, account *domain.TradingAccount) bool {
	onChain := account != nil && account.IsDelegatedTo(wallet.PublicKey)
	if onChain == wallet.IsDelegated {
		return false
	}

	var delegate string
	if account != nil {
		delegate = account.Delegate
	}
	s.log.Warn().
		Str("wallet_id", wallet.ID.String()).
		Bool("cached_is_delegated", wallet.IsDelegated).
		Str("on_chain_delegate", delegate).
		Msg("delegation drift detected")

	entry := domain.NewAuditLog(domain.AuditActionDelegationDrift, wallet)
	details, _ := json.Marshal(map[string]any{
		"cached_is_delegated": wallet.IsDelegated,
		"on_chain_delegate":   delegate,
	})
	entry.Details = string(details)
	s.audit.Log(ctx, entry)

	var err error
	if onChain {
		_, err = s.wallets.MarkDelegated(ctx, wallet.ID, wallet.SubaccountIndex)
	} else {
		_, err = s.wallets.ClearDelegation(ctx, wallet.ID)
	}
	if err != nil {
		s.log.Error().Err(err).Str("wallet_id", wallet.ID.String()).Msg("failed to reconcile delegation flag")
	}
	return true
}

func accountRef(w *domain.AgentWallet) ports.AccountRef {
	return ports.AccountRef{Authority: w.AccountAuthority, SubaccountIndex: w.SubaccountIndex}
}
