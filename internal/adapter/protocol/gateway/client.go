// Package gateway implements ports.ProtocolClient against the trading
// protocol's transaction-builder sidecar. The sidecar owns account layouts and
// instruction encoding; this package moves JSON and message bytes and checks
// user-signed delegate changes locally.
package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"delegated-trading-gateway/internal/core/domain"
	"delegated-trading-gateway/internal/core/ports"
	"delegated-trading-gateway/pkg/solanatx"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is an HTTP client for the builder sidecar.
type Client struct {
	baseURL    string
	programID  string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a sidecar client rooted at baseURL. programID is the
// trading protocol's on-ledger program.
func NewClient(baseURL, programID string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		programID:  programID,
		httpClient: httpClient,
		log:        log.With().Str("component", "protocol_gateway").Logger(),
	}
}

// APIError is a non-2xx reply from the sidecar.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("protocol gateway: status %d: %s", e.Status, e.Message)
}

type accountRef struct {
	Authority       string `json:"authority"`
	SubaccountIndex uint16 `json:"subaccount_index"`
}

func toRef(ref ports.AccountRef) accountRef {
	return accountRef{Authority: ref.Authority, SubaccountIndex: ref.SubaccountIndex}
}

type txResponse struct {
	Message string `json:"message"` // base64 serialized message
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request %s: %w", path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("protocol gateway %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(raw, &e)
		if e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		c.log.Warn().Str("path", path).Int("status", resp.StatusCode).Str("error", e.Error).Msg("sidecar request rejected")
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// buildTx posts a builder request and derives the signer slots from the
// returned message itself rather than trusting a separate list.
func (c *Client) buildTx(ctx context.Context, path string, in any) (*domain.UnsignedTransaction, error) {
	var out txResponse
	if err := c.do(ctx, http.MethodPost, path, in, &out); err != nil {
		return nil, err
	}
	msg, err := base64.StdEncoding.DecodeString(out.Message)
	if err != nil {
		return nil, fmt.Errorf("decode %s message: %w", path, err)
	}
	signers, err := solanatx.Signers(msg)
	if err != nil {
		return nil, fmt.Errorf("parse %s message: %w", path, err)
	}
	return &domain.UnsignedTransaction{Message: msg, Signers: signers}, nil
}

// UserAccountAddress derives the trading account address for ref.
func (c *Client) UserAccountAddress(ctx context.Context, ref ports.AccountRef) (string, error) {
	var out struct {
		Address string `json:"address"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/accounts/address", toRef(ref), &out); err != nil {
		return "", err
	}
	if out.Address == "" {
		return "", fmt.Errorf("protocol gateway returned an empty account address")
	}
	return out.Address, nil
}

// DecodeUserAccount parses raw account bytes into positions, orders and delegate.
func (c *Client) DecodeUserAccount(ctx context.Context, address string, data []byte) (*domain.TradingAccount, error) {
	in := struct {
		Address string `json:"address"`
		Data    string `json:"data"`
	}{address, base64.StdEncoding.EncodeToString(data)}

	var acc domain.TradingAccount
	if err := c.do(ctx, http.MethodPost, "/v1/accounts/decode", in, &acc); err != nil {
		return nil, err
	}
	if acc.Address == "" {
		acc.Address = address
	}
	return &acc, nil
}

// GetPerpMarket reads a market's oracle price and tick size.
func (c *Client) GetPerpMarket(ctx context.Context, marketIndex uint16) (*domain.PerpMarket, error) {
	var m domain.PerpMarket
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/perp-markets/%d", marketIndex), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

type signedRef struct {
	accountRef
	Signer string `json:"signer"`
}

func (c *Client) BuildPlaceOrder(ctx context.Context, ref ports.AccountRef, signer string, params domain.OrderParams) (*domain.UnsignedTransaction, error) {
	return c.buildTx(ctx, "/v1/tx/place-order", struct {
		signedRef
		Params domain.OrderParams `json:"params"`
	}{signedRef{toRef(ref), signer}, params})
}

func (c *Client) BuildCancelOrder(ctx context.Context, ref ports.AccountRef, signer string, orderID uint32) (*domain.UnsignedTransaction, error) {
	return c.buildTx(ctx, "/v1/tx/cancel-order", struct {
		signedRef
		OrderID uint32 `json:"order_id"`
	}{signedRef{toRef(ref), signer}, orderID})
}

func (c *Client) BuildCancelAllOrders(ctx context.Context, ref ports.AccountRef, signer string) (*domain.UnsignedTransaction, error) {
	return c.buildTx(ctx, "/v1/tx/cancel-all-orders", signedRef{toRef(ref), signer})
}

func (c *Client) BuildInitializeAccount(ctx context.Context, ref ports.AccountRef, payer string) (*domain.UnsignedTransaction, error) {
	return c.buildTx(ctx, "/v1/tx/initialize-account", struct {
		accountRef
		Payer string `json:"payer"`
	}{toRef(ref), payer})
}

func (c *Client) BuildSetDelegate(ctx context.Context, ref ports.AccountRef, delegate string) (*domain.UnsignedTransaction, error) {
	return c.buildTx(ctx, "/v1/tx/set-delegate", struct {
		accountRef
		Delegate string `json:"delegate"`
	}{toRef(ref), delegate})
}

func (c *Client) BuildDeposit(ctx context.Context, ref ports.AccountRef, signer string, spotMarketIndex uint16, amount int64) (*domain.UnsignedTransaction, error) {
	return c.buildTx(ctx, "/v1/tx/deposit", struct {
		signedRef
		SpotMarketIndex uint16 `json:"spot_market_index"`
		Amount          int64  `json:"amount"`
	}{signedRef{toRef(ref), signer}, spotMarketIndex, amount})
}

func (c *Client) BuildWithdraw(ctx context.Context, ref ports.AccountRef, signer string, spotMarketIndex uint16, amount int64, reduceOnly bool) (*domain.UnsignedTransaction, error) {
	return c.buildTx(ctx, "/v1/tx/withdraw", struct {
		signedRef
		SpotMarketIndex uint16 `json:"spot_market_index"`
		Amount          int64  `json:"amount"`
		ReduceOnly      bool   `json:"reduce_only"`
	}{signedRef{toRef(ref), signer}, spotMarketIndex, amount, reduceOnly})
}
