package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := DepositRequest{AmountUSD: "  25.50 ", PaymentMethod: " USDC\n"}
	SanitizeStruct(&req)

	assert.Equal(t, "25.50", req.AmountUSD)
	assert.Equal(t, "USDC", req.PaymentMethod)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := DepositRequest{AmountUSD: "<b>5</b>"}
	SanitizeStruct(&req)

	assert.Equal(t, "&lt;b&gt;5&lt;/b&gt;", req.AmountUSD)
}

func TestSanitizeStruct_IgnoresNonPointer(t *testing.T) {
	req := DepositRequest{AmountUSD: " 5 "}
	SanitizeStruct(req)
	assert.Equal(t, " 5 ", req.AmountUSD)
}

func TestDepositRequest_Binding(t *testing.T) {
	tests := []struct {
		name    string
		req     DepositRequest
		wantErr bool
	}{
		{"valid usdc", DepositRequest{AmountUSD: "10", PaymentMethod: "USDC"}, false},
		{"valid sol fractional", DepositRequest{AmountUSD: "25.123456", PaymentMethod: "SOL"}, false},
		{"zero amount", DepositRequest{AmountUSD: "0", PaymentMethod: "USDC"}, true},
		{"negative amount", DepositRequest{AmountUSD: "-5", PaymentMethod: "USDC"}, true},
		{"not a number", DepositRequest{AmountUSD: "ten", PaymentMethod: "USDC"}, true},
		{"unknown method", DepositRequest{AmountUSD: "10", PaymentMethod: "BTC"}, true},
		{"missing method", DepositRequest{AmountUSD: "10"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlaceOrderRequest_Binding(t *testing.T) {
	valid := PlaceOrderRequest{OrderType: "MARKET", Direction: "LONG", BaseAssetAmount: 1}
	assert.NoError(t, binding.Validator.ValidateStruct(&valid))

	bad := valid
	bad.OrderType = "STOP"
	assert.Error(t, binding.Validator.ValidateStruct(&bad))

	bad = valid
	bad.BaseAssetAmount = 0
	assert.Error(t, binding.Validator.ValidateStruct(&bad))

	bad = valid
	bad.TriggerIntent = "MAYBE"
	assert.Error(t, binding.Validator.ValidateStruct(&bad))
}

func TestSubmitDelegationRequest_Binding(t *testing.T) {
	assert.NoError(t, binding.Validator.ValidateStruct(&SubmitDelegationRequest{SignedTransaction: "AQID"}))
	assert.Error(t, binding.Validator.ValidateStruct(&SubmitDelegationRequest{SignedTransaction: "not base64!"}))
}

func TestValidIdempotencyKey(t *testing.T) {
	assert.True(t, ValidIdempotencyKey(""))
	assert.True(t, ValidIdempotencyKey("deposit-2024.01_a"))
	assert.False(t, ValidIdempotencyKey("has space"))
	assert.False(t, ValidIdempotencyKey("semi;colon"))
	long := make([]byte, maxIdempotencyKeyLen+1)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ValidIdempotencyKey(string(long)))
}
