// Package solana implements ports.LedgerClient on top of the solana-go RPC client.
package solana

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"delegated-trading-gateway/internal/core/domain"
	"delegated-trading-gateway/internal/core/ports"

	sol "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Options configures an RPCClient.
type Options struct {
	URL            string
	Commitment     string // processed, confirmed, finalized
	PollInterval   time.Duration
	RequestsPerSec float64
	Burst          int
}

// RPCClient talks to a ledger node. Every request passes through a
// token-bucket limiter shared by all callers.
type RPCClient struct {
	rpc          *rpc.Client
	commitment   rpc.CommitmentType
	pollInterval time.Duration
	log          zerolog.Logger
}

// NewRPCClient creates a ledger RPC client. httpClient is usually an *http.Client.
func NewRPCClient(opts Options, httpClient jsonrpc.HTTPClient, log zerolog.Logger) *RPCClient {
	if opts.Commitment == "" {
		opts.Commitment = string(rpc.CommitmentConfirmed)
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 500 * time.Millisecond
	}
	limit := rate.Inf
	if opts.RequestsPerSec > 0 {
		limit = rate.Limit(opts.RequestsPerSec)
	}
	if opts.Burst < 1 {
		opts.Burst = 1
	}

	transport := jsonrpc.NewClientWithOpts(opts.URL, &jsonrpc.RPCClientOpts{HTTPClient: httpClient})
	return &RPCClient{
		rpc: rpc.NewWithCustomRPCClient(&limitedClient{
			inner:   transport,
			limiter: rate.NewLimiter(limit, opts.Burst),
		}),
		commitment:   rpc.CommitmentType(opts.Commitment),
		pollInterval: opts.PollInterval,
		log:          log.With().Str("component", "ledger_rpc").Logger(),
	}
}

// limitedClient waits on the limiter before every JSON-RPC call.
type limitedClient struct {
	inner   jsonrpc.RPCClient
	limiter *rate.Limiter
}

var _ rpc.JSONRPCClient = (*limitedClient)(nil)

func (c *limitedClient) CallForInto(ctx context.Context, out interface{}, method string, params []interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: rate limit wait: %w", method, err)
	}
	return c.inner.CallForInto(ctx, out, method, params)
}

func (c *limitedClient) CallWithCallback(ctx context.Context, method string, params []interface{}, callback func(*http.Request, *http.Response) error) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: rate limit wait: %w", method, err)
	}
	return c.inner.CallWithCallback(ctx, method, params, callback)
}

func (c *limitedClient) CallBatch(ctx context.Context, requests jsonrpc.RPCRequests) (jsonrpc.RPCResponses, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("batch: rate limit wait: %w", err)
	}
	return c.inner.CallBatch(ctx, requests)
}

func parseAddress(method, address string) (sol.PublicKey, error) {
	pk, err := sol.PublicKeyFromBase58(address)
	if err != nil {
		return sol.PublicKey{}, fmt.Errorf("%s: invalid address %q: %w", method, address, err)
	}
	return pk, nil
}

// GetAccountInfo returns the account's raw data, or nil when it does not exist.
func (c *RPCClient) GetAccountInfo(ctx context.Context, address string) ([]byte, error) {
	pk, err := parseAddress("getAccountInfo", address)
	if err != nil {
		return nil, err
	}
	out, err := c.rpc.GetAccountInfoWithOpts(ctx, pk, &rpc.GetAccountInfoOpts{
		Encoding:   sol.EncodingBase64,
		Commitment: c.commitment,
	})
	if errors.Is(err, rpc.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getAccountInfo: %w", err)
	}
	data := out.Value.Data.GetBinary()
	if data == nil {
		return []byte{}, nil
	}
	return data, nil
}

// GetBalance returns the native balance in lamports.
func (c *RPCClient) GetBalance(ctx context.Context, address string) (int64, error) {
	pk, err := parseAddress("getBalance", address)
	if err != nil {
		return 0, err
	}
	out, err := c.rpc.GetBalance(ctx, pk, c.commitment)
	if err != nil {
		return 0, fmt.Errorf("getBalance: %w", err)
	}
	return int64(out.Value), nil
}

type parsedTokenAccount struct {
	Parsed struct {
		Info struct {
			TokenAmount struct {
				Amount string `json:"amount"`
			} `json:"tokenAmount"`
		} `json:"info"`
	} `json:"parsed"`
}

// GetTokenBalance sums owner's token accounts for mint, in base units.
func (c *RPCClient) GetTokenBalance(ctx context.Context, owner, mint string) (int64, error) {
	ownerKey, err := parseAddress("getTokenAccountsByOwner", owner)
	if err != nil {
		return 0, err
	}
	mintKey, err := parseAddress("getTokenAccountsByOwner", mint)
	if err != nil {
		return 0, err
	}
	out, err := c.rpc.GetTokenAccountsByOwner(ctx, ownerKey,
		&rpc.GetTokenAccountsConfig{Mint: &mintKey},
		&rpc.GetTokenAccountsOpts{Encoding: sol.EncodingJSONParsed, Commitment: c.commitment},
	)
	if err != nil {
		return 0, fmt.Errorf("getTokenAccountsByOwner: %w", err)
	}

	var total int64
	for _, acc := range out.Value {
		if acc == nil || acc.Account.Data == nil {
			continue
		}
		var parsed parsedTokenAccount
		if err := json.Unmarshal(acc.Account.Data.GetRawJSON(), &parsed); err != nil {
			return 0, fmt.Errorf("getTokenAccountsByOwner: decode account: %w", err)
		}
		amount, err := strconv.ParseInt(parsed.Parsed.Info.TokenAmount.Amount, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("getTokenAccountsByOwner: parse amount: %w", err)
		}
		total += amount
	}
	return total, nil
}

// LatestBlockhash returns a recent blockhash for building transactions.
func (c *RPCClient) LatestBlockhash(ctx context.Context) (string, error) {
	out, err := c.rpc.GetLatestBlockhash(ctx, c.commitment)
	if err != nil {
		return "", fmt.Errorf("getLatestBlockhash: %w", err)
	}
	if out == nil || out.Value == nil || out.Value.Blockhash.IsZero() {
		return "", errors.New("getLatestBlockhash: empty blockhash")
	}
	return out.Value.Blockhash.String(), nil
}

// SubmitTransaction broadcasts a fully signed transaction and returns its
// signature. A JSON-RPC error object from the node is a definite rejection
// and is wrapped in ports.ErrTransactionRejected; transport failures are not.
func (c *RPCClient) SubmitTransaction(ctx context.Context, signed []byte) (string, error) {
	sig, err := c.rpc.SendRawTransactionWithOpts(ctx, signed, rpc.TransactionOpts{
		PreflightCommitment: c.commitment,
	})
	if err != nil {
		var rpcErr *jsonrpc.RPCError
		if errors.As(err, &rpcErr) {
			return "", fmt.Errorf("sendTransaction: %w: %d %s", ports.ErrTransactionRejected, rpcErr.Code, rpcErr.Message)
		}
		return "", fmt.Errorf("sendTransaction: %w", err)
	}
	return sig.String(), nil
}

// ConfirmTransaction polls the signature status until it reaches the client's
// commitment, fails, or ctx ends. On ctx expiry the last observed status is
// returned with the context error.
func (c *RPCClient) ConfirmTransaction(ctx context.Context, signature string) (domain.TxStatus, error) {
	sig, err := sol.SignatureFromBase58(signature)
	if err != nil {
		return domain.TxStatusUnknown, fmt.Errorf("getSignatureStatuses: invalid signature %q: %w", signature, err)
	}

	status := domain.TxStatusUnknown
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		out, err := c.rpc.GetSignatureStatuses(ctx, true, sig)

		switch {
		case err != nil:
			if ctx.Err() != nil {
				return status, ctx.Err()
			}
			c.log.Warn().Err(err).Str("signature", signature).Msg("signature status poll failed")
		case len(out.Value) > 0 && out.Value[0] != nil:
			st := out.Value[0]
			if st.Err != nil {
				c.log.Warn().Str("signature", signature).Interface("ledger_err", st.Err).Msg("transaction failed on ledger")
				return domain.TxStatusFailed, nil
			}
			if c.reached(st.ConfirmationStatus) {
				return domain.TxStatusConfirmed, nil
			}
			status = domain.TxStatusPending
		}

		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-ticker.C:
		}
	}
}

var commitmentRank = map[string]int{
	string(rpc.ConfirmationStatusProcessed): 1,
	string(rpc.ConfirmationStatusConfirmed): 2,
	string(rpc.ConfirmationStatusFinalized): 3,
}

func (c *RPCClient) reached(observed rpc.ConfirmationStatusType) bool {
	got, ok := commitmentRank[string(observed)]
	return ok && got >= commitmentRank[string(c.commitment)]
}

// Ping implements ports.HealthChecker via the node's getHealth method.
func (c *RPCClient) Ping(ctx context.Context) error {
	health, err := c.rpc.GetHealth(ctx)
	if err != nil {
		return fmt.Errorf("getHealth: %w", err)
	}
	if health != rpc.HealthOk {
		return fmt.Errorf("getHealth: node reports %q", health)
	}
	return nil
}

// Name returns the dependency name.
func (c *RPCClient) Name() string {
	return "ledger_rpc"
}
