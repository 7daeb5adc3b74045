// Package jupiter implements ports.SwapClient against the Jupiter swap API.
package jupiter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"delegated-trading-gateway/internal/core/domain"
	"delegated-trading-gateway/pkg/solanatx"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client quotes exact-output swaps and builds the matching transaction.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a Jupiter client rooted at baseURL (e.g. https://quote-api.jup.ag/v6).
func NewClient(baseURL string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log.With().Str("component", "jupiter").Logger(),
	}
}

type quoteResponse struct {
	InputMint  string `json:"inputMint"`
	OutputMint string `json:"outputMint"`
	InAmount   string `json:"inAmount"`
	OutAmount  string `json:"outAmount"`
}

// QuoteExactOutput asks for the input needed to receive exactly amount of outputMint.
func (c *Client) QuoteExactOutput(ctx context.Context, inputMint, outputMint string, amount int64, slippageBps int) (*domain.SwapQuote, error) {
	q := url.Values{}
	q.Set("inputMint", inputMint)
	q.Set("outputMint", outputMint)
	q.Set("amount", strconv.FormatInt(amount, 10))
	q.Set("slippageBps", strconv.Itoa(slippageBps))
	q.Set("swapMode", "ExactOut")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/quote?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create quote request: %w", err)
	}
	raw, err := c.send(req, "quote")
	if err != nil {
		return nil, err
	}

	var parsed quoteResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode quote: %w", err)
	}
	in, err := strconv.ParseInt(parsed.InAmount, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("quote inAmount %q: %w", parsed.InAmount, err)
	}
	out, err := strconv.ParseInt(parsed.OutAmount, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("quote outAmount %q: %w", parsed.OutAmount, err)
	}

	c.log.Debug().Str("input_mint", inputMint).Int64("in_amount", in).Int64("out_amount", out).Msg("swap quoted")
	return &domain.SwapQuote{
		InputMint:   inputMint,
		OutputMint:  outputMint,
		InAmount:    in,
		OutAmount:   out,
		SlippageBps: slippageBps,
		Raw:         raw,
	}, nil
}

type swapRequest struct {
	QuoteResponse           json.RawMessage `json:"quoteResponse"`
	UserPublicKey           string          `json:"userPublicKey"`
	WrapAndUnwrapSol        bool            `json:"wrapAndUnwrapSol"`
	DynamicComputeUnitLimit bool            `json:"dynamicComputeUnitLimit"`
}

// BuildSwap returns the unsigned swap transaction for quote with signer as fee payer.
func (c *Client) BuildSwap(ctx context.Context, quote *domain.SwapQuote, signer string) (*domain.UnsignedTransaction, error) {
	if quote == nil || len(quote.Raw) == 0 {
		return nil, fmt.Errorf("build swap: quote payload missing")
	}
	payload, err := json.Marshal(swapRequest{
		QuoteResponse:           quote.Raw,
		UserPublicKey:           signer,
		WrapAndUnwrapSol:        true,
		DynamicComputeUnitLimit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal swap request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/swap", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create swap request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	raw, err := c.send(req, "swap")
	if err != nil {
		return nil, err
	}

	var parsed struct {
		SwapTransaction string `json:"swapTransaction"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode swap: %w", err)
	}
	txBytes, err := base64.StdEncoding.DecodeString(parsed.SwapTransaction)
	if err != nil {
		return nil, fmt.Errorf("decode swap transaction: %w", err)
	}
	// The aggregator returns a full transaction with empty signature slots.
	_, msg, err := solanatx.Decode(txBytes)
	if err != nil {
		return nil, fmt.Errorf("parse swap transaction: %w", err)
	}
	signers, err := solanatx.Signers(msg)
	if err != nil {
		return nil, fmt.Errorf("parse swap signers: %w", err)
	}
	return &domain.UnsignedTransaction{Message: msg, Signers: signers}, nil
}

func (c *Client) send(req *http.Request, op string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jupiter %s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("jupiter %s: read body: %w", op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(raw, &e)
		c.log.Warn().Str("op", op).Int("status", resp.StatusCode).Str("error", e.Error).Msg("jupiter request failed")
		return nil, fmt.Errorf("jupiter %s: status %d: %s", op, resp.StatusCode, e.Error)
	}
	return raw, nil
}
