package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"delegated-trading-gateway/internal/core/domain"
	"delegated-trading-gateway/internal/core/ports"
	"delegated-trading-gateway/pkg/apperror"
	"delegated-trading-gateway/pkg/solanatx"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// FundingOptions carries the funding limits. Lamport values are native units.
type FundingOptions struct {
	MinDepositUSD             decimal.Decimal
	SettlementMint            string
	SwapSlippageBps           int
	RentExemptReserveLamports int64
	WithdrawFeeBufferLamports int64
	SwapFeeBufferLamports     int64
	IdempotencyTTL            time.Duration
	LockWait                  time.Duration
}

// FundingServiceImpl implements ports.FundingService.
type FundingServiceImpl struct {
	wallets    ports.AgentWalletService
	users      ports.UserRepository
	delegation ports.DelegationService
	protocol   ports.ProtocolClient
	ledger     ports.LedgerClient
	swap       ports.SwapClient
	submitter  *TxSubmitter
	locker     ports.WalletLocker
	guard      *submissionGuard
	audit      ports.AuditService
	opts       FundingOptions
	log        zerolog.Logger
}

// NewFundingService creates a new FundingServiceImpl. store may be nil, in
// which case idempotency keys are ignored.
func NewFundingService(
	wallets ports.AgentWalletService,
	users ports.UserRepository,
	delegation ports.DelegationService,
	protocol ports.ProtocolClient,
	ledger ports.LedgerClient,
	swap ports.SwapClient,
	submitter *TxSubmitter,
	locker ports.WalletLocker,
	store ports.SubmissionStore,
	audit ports.AuditService,
	opts FundingOptions,
	log zerolog.Logger,
) *FundingServiceImpl {
	return &FundingServiceImpl{
		wallets:    wallets,
		users:      users,
		delegation: delegation,
		protocol:   protocol,
		ledger:     ledger,
		swap:       swap,
		submitter:  submitter,
		locker:     locker,
		guard:      &submissionGuard{store: store, submitter: submitter, ttl: opts.IdempotencyTTL, log: log},
		audit:      audit,
		opts:       opts,
		log:        log,
	}
}

// Deposit funds the trading account with settlement collateral, creating and
// delegating the account on first use. Steps run strictly in order and each is
// confirmed before the next is built.
func (s *FundingServiceImpl) Deposit(ctx context.Context, req ports.DepositRequest) (*ports.DepositResult, error) {
	amountUSD, err := decimal.NewFromString(req.AmountUSD)
	if err != nil {
		return nil, apperror.Validation("amount must be a decimal number")
	}
	if !req.PaymentMethod.IsValid() {
		return nil, apperror.Validation("payment_method must be USDC or SOL")
	}
	if amountUSD.LessThan(s.opts.MinDepositUSD) {
		return nil, apperror.ErrBelowMinimumDeposit(s.opts.MinDepositUSD.String())
	}
	units, err := domain.USDToQuoteUnits(amountUSD)
	if err != nil {
		return nil, apperror.Validation("amount is too large")
	}

	wallet, err := s.wallets.Require(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	key := ""
	if req.IdempotencyKey != "" {
		key = domain.BuildSubmissionKey(req.UserID, "deposit", req.IdempotencyKey)
	}
	return guarded(ctx, s.guard, key, func() (*ports.DepositResult, error) {
		locked, release, err := lockFresh(ctx, s.locker, s.wallets, wallet, s.opts.LockWait)
		if err != nil {
			return nil, err
		}
		defer release()
		return s.deposit(ctx, locked, req.PaymentMethod, units)
	}, depositSignatures)
}

func (s *FundingServiceImpl) deposit(ctx context.Context, wallet *domain.AgentWallet, method domain.PaymentMethod, units int64) (*ports.DepositResult, error) {
	res := &ports.DepositResult{}

	if err := s.ensureDelegatedAccount(ctx, wallet, res); err != nil {
		return res, err
	}
	ref := accountRef(wallet)

	switch method {
	case domain.PaymentMethodSOL:
		swapped, err := s.swapForSettlement(ctx, wallet, units)
		if swapped != nil {
			res.SwapSignature = swapped.Signature
			res.SwapInputAmount = swapped.InputAmount
		}
		if err != nil {
			return res, err
		}
	case domain.PaymentMethodUSDC:
		balance, err := s.ledger.GetTokenBalance(ctx, wallet.PublicKey, s.opts.SettlementMint)
		if err != nil {
			return res, apperror.InternalError(fmt.Errorf("get settlement balance: %w", err))
		}
		if balance < units {
			return res, apperror.ErrInsufficientBalance(fmt.Sprintf(
				"Insufficient USDC balance: need $%s, have $%s",
				domain.QuoteUnitsToUSD(units), domain.QuoteUnitsToUSD(balance)))
		}
	}

	tx, err := s.protocol.BuildDeposit(ctx, ref, wallet.PublicKey, domain.SettlementSpotMarketIndex, units)
	if err != nil {
		return res, apperror.InternalError(fmt.Errorf("build deposit: %w", err))
	}
	res.DepositSignature, err = s.submitter.SignAndSubmit(ctx, wallet, tx)
	if err != nil {
		return res, err
	}
	res.DepositedAmount = units

	if !wallet.IsActivated {
		if _, err := s.wallets.MarkActivated(ctx, wallet.ID); err != nil {
			return res, err
		}
		res.IsFirstDeposit = true
	}

	entry := domain.NewAuditLog(domain.AuditActionDeposit, wallet)
	entry.Signature = res.DepositSignature
	entry.Details = auditDetails(map[string]any{"amount": units, "payment_method": method})
	s.audit.Log(ctx, entry)

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Int64("amount", units).
		Str("payment_method", string(method)).
		Bool("first_deposit", res.IsFirstDeposit).
		Str("signature", res.DepositSignature).
		Msg("deposit confirmed")
	return res, nil
}

// ensureDelegatedAccount makes sure a trading account exists with the agent as
// delegate. A missing account is created with the agent as authority and payer,
// so the agent can also set itself as delegate without the user signing.
func (s *FundingServiceImpl) ensureDelegatedAccount(ctx context.Context, wallet *domain.AgentWallet, res *ports.DepositResult) error {
	account, err := s.delegation.LoadAccount(ctx, wallet)
	if err != nil {
		return err
	}

	needDelegate := false
	switch {
	case account == nil:
		if wallet.AccountAuthority != wallet.PublicKey {
			// Persist first so a retry finds the account it is about to create.
			if _, err := s.wallets.SetAccountAuthority(ctx, wallet.ID, wallet.PublicKey); err != nil {
				return err
			}
			wallet.AccountAuthority = wallet.PublicKey
		}

		tx, err := s.protocol.BuildInitializeAccount(ctx, accountRef(wallet), wallet.PublicKey)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("build initialize account: %w", err))
		}
		res.InitSignature, err = s.submitter.SignAndSubmit(ctx, wallet, tx)
		if err != nil {
			return err
		}

		entry := domain.NewAuditLog(domain.AuditActionAccountInitialized, wallet)
		entry.Signature = res.InitSignature
		s.audit.Log(ctx, entry)
		needDelegate = true
	case account.Authority == wallet.PublicKey && !account.IsDelegatedTo(wallet.PublicKey):
		needDelegate = true
	}

	if !needDelegate {
		_, err := s.delegation.RequireDelegated(ctx, wallet)
		return err
	}

	tx, err := s.protocol.BuildSetDelegate(ctx, accountRef(wallet), wallet.PublicKey)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("build set delegate: %w", err))
	}
	res.DelegateSignature, err = s.submitter.SignAndSubmit(ctx, wallet, tx)
	if err != nil {
		return err
	}
	updated, err := s.wallets.MarkDelegated(ctx, wallet.ID, wallet.SubaccountIndex)
	if err != nil {
		return err
	}
	wallet.IsDelegated = updated.IsDelegated
	wallet.DelegatedAt = updated.DelegatedAt
	return nil
}

func (s *FundingServiceImpl) swapForSettlement(ctx context.Context, wallet *domain.AgentWallet, units int64) (*domain.SwapResult, error) {
	quote, err := s.swap.QuoteExactOutput(ctx, domain.WrappedSOLMint, s.opts.SettlementMint, units, s.opts.SwapSlippageBps)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("quote swap: %w", err))
	}

	balance, err := s.ledger.GetBalance(ctx, wallet.PublicKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get balance: %w", err))
	}
	required := quote.InAmount + s.opts.SwapFeeBufferLamports
	if balance < required {
		return nil, apperror.ErrInsufficientBalance(fmt.Sprintf(
			"Insufficient SOL balance: need %s SOL (including %s SOL for fees), have %s SOL",
			domain.LamportsToSOL(required), domain.LamportsToSOL(s.opts.SwapFeeBufferLamports), domain.LamportsToSOL(balance)))
	}

	tx, err := s.swap.BuildSwap(ctx, quote, wallet.PublicKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("build swap: %w", err))
	}
	sig, err := s.submitter.SignAndSubmit(ctx, wallet, tx)
	return &domain.SwapResult{Signature: sig, InputAmount: quote.InAmount, OutputAmount: quote.OutAmount}, err
}

// WithdrawGas sends native currency from the agent wallet back to the user's
// own wallet, keeping the rent reserve and a fee buffer behind.
func (s *FundingServiceImpl) WithdrawGas(ctx context.Context, req ports.WithdrawGasRequest) (*ports.WithdrawGasResult, error) {
	if req.Amount != nil && *req.Amount <= 0 {
		return nil, apperror.Validation("amount must be positive")
	}

	wallet, err := s.wallets.Require(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrNotFound("user")
	}

	key := ""
	if req.IdempotencyKey != "" {
		key = domain.BuildSubmissionKey(req.UserID, "withdraw-gas", req.IdempotencyKey)
	}
	return guarded(ctx, s.guard, key, func() (*ports.WithdrawGasResult, error) {
		locked, release, err := lockFresh(ctx, s.locker, s.wallets, wallet, s.opts.LockWait)
		if err != nil {
			return nil, err
		}
		defer release()
		return s.withdrawGas(ctx, locked, user.WalletAddress, req.Amount)
	}, func(r *ports.WithdrawGasResult) []string {
		if r.Signature == "" {
			return nil
		}
		return []string{r.Signature}
	})
}

func (s *FundingServiceImpl) withdrawGas(ctx context.Context, wallet *domain.AgentWallet, recipient string, requested *int64) (*ports.WithdrawGasResult, error) {
	balance, err := s.ledger.GetBalance(ctx, wallet.PublicKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get balance: %w", err))
	}

	ceiling := s.ceiling(balance)
	if ceiling <= 0 {
		return nil, apperror.ErrInsufficientBalance(fmt.Sprintf(
			"Insufficient balance: %d lamports (%s SOL) does not cover the %d lamport reserve and fees",
			balance, domain.LamportsToSOL(balance), s.opts.RentExemptReserveLamports+s.opts.WithdrawFeeBufferLamports))
	}

	amount := ceiling
	if requested != nil {
		amount = *requested
	}
	if amount > ceiling {
		return nil, apperror.ErrInsufficientBalance(fmt.Sprintf(
			"Requested %d lamports exceeds balance; maximum withdrawable amount is %d lamports (%s SOL)",
			amount, ceiling, domain.LamportsToSOL(ceiling)))
	}

	blockhash, err := s.ledger.LatestBlockhash(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get latest blockhash: %w", err))
	}
	msg, err := solanatx.TransferMessage(wallet.PublicKey, recipient, uint64(amount), blockhash)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("build transfer: %w", err))
	}
	tx := &domain.UnsignedTransaction{Message: msg, Signers: []string{wallet.PublicKey}}

	res := &ports.WithdrawGasResult{
		Amount:          amount,
		Recipient:       recipient,
		MaxWithdrawable: ceiling,
	}
	res.Signature, err = s.submitter.SignAndSubmit(ctx, wallet, tx)
	if err != nil {
		return res, err
	}

	res.RemainingBalance = balance - amount - s.opts.WithdrawFeeBufferLamports
	if refreshed, err := s.wallets.RefreshGasBalance(ctx, wallet.UserID); err != nil {
		s.log.Warn().Err(err).Str("wallet_id", wallet.ID.String()).Msg("failed to refresh gas balance")
	} else {
		res.RemainingBalance = refreshed.GasBalance
	}

	entry := domain.NewAuditLog(domain.AuditActionGasWithdrawal, wallet)
	entry.Signature = res.Signature
	entry.Details = auditDetails(map[string]any{"amount": amount, "recipient": recipient})
	s.audit.Log(ctx, entry)

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Int64("amount", amount).
		Str("recipient", recipient).
		Str("signature", res.Signature).
		Msg("gas withdrawal confirmed")
	return res, nil
}

// MaxWithdrawable returns the gas withdrawal ceiling for a fresh balance read.
func (s *FundingServiceImpl) MaxWithdrawable(ctx context.Context, userID uuid.UUID) (int64, error) {
	wallet, err := s.wallets.Require(ctx, userID)
	if err != nil {
		return 0, err
	}
	balance, err := s.ledger.GetBalance(ctx, wallet.PublicKey)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get balance: %w", err))
	}
	return max(s.ceiling(balance), 0), nil
}

// WithdrawCollateral withdraws settlement collateral from the trading account
// back to the agent wallet. The withdrawal never opens a borrow.
func (s *FundingServiceImpl) WithdrawCollateral(ctx context.Context, req ports.WithdrawCollateralRequest) (string, error) {
	if req.Amount <= 0 {
		return "", apperror.Validation("amount must be positive")
	}

	wallet, err := s.wallets.Require(ctx, req.UserID)
	if err != nil {
		return "", err
	}
	wallet, release, err := lockFresh(ctx, s.locker, s.wallets, wallet, s.opts.LockWait)
	if err != nil {
		return "", err
	}
	defer release()

	if _, err := s.delegation.RequireDelegated(ctx, wallet); err != nil {
		return "", err
	}

	tx, err := s.protocol.BuildWithdraw(ctx, accountRef(wallet), wallet.PublicKey, req.SpotMarketIndex, req.Amount, true)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("build withdraw: %w", err))
	}
	sig, err := s.submitter.SignAndSubmit(ctx, wallet, tx)
	if err != nil {
		return "", err
	}

	entry := domain.NewAuditLog(domain.AuditActionCollateralWithdrawal, wallet)
	entry.Signature = sig
	entry.Details = auditDetails(map[string]any{"amount": req.Amount, "spot_market_index": req.SpotMarketIndex})
	s.audit.Log(ctx, entry)
	return sig, nil
}

// AccountStatus reports funding readiness from parallel ledger reads.
func (s *FundingServiceImpl) AccountStatus(ctx context.Context, userID uuid.UUID) (*ports.AccountStatus, error) {
	status := &ports.AccountStatus{MinDepositUSD: s.opts.MinDepositUSD.StringFixed(2)}

	wallet, err := s.wallets.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return status, nil
	}
	status.HasAgentWallet = true
	status.AgentPublicKey = wallet.PublicKey
	status.IsActivated = wallet.IsActivated

	var account *domain.TradingAccount
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		status.NativeBalance, err = s.ledger.GetBalance(gctx, wallet.PublicKey)
		return err
	})
	g.Go(func() error {
		var err error
		status.SettlementBalance, err = s.ledger.GetTokenBalance(gctx, wallet.PublicKey, s.opts.SettlementMint)
		return err
	})
	g.Go(func() error {
		var err error
		account, err = s.delegation.LoadAccount(gctx, wallet)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("read account status: %w", err))
	}

	status.HasLedgerAccount = account != nil
	status.IsDelegated = account != nil && account.IsDelegatedTo(wallet.PublicKey)
	return status, nil
}

func (s *FundingServiceImpl) ceiling(balance int64) int64 {
	return domain.WithdrawalCeiling(balance, s.opts.RentExemptReserveLamports, s.opts.WithdrawFeeBufferLamports)
}

func depositSignatures(r *ports.DepositResult) []string {
	var sigs []string
	for _, sig := range []string{r.InitSignature, r.DelegateSignature, r.SwapSignature, r.DepositSignature} {
		if sig != "" {
			sigs = append(sigs, sig)
		}
	}
	return sigs
}

func auditDetails(fields map[string]any) string {
	b, err := json.Marshal(fields)
	if err != nil {
		return ""
	}
	return string(b)
}
