package models

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

const (
	MessageInvalidQuery  = "invalid query"
	MessageUpstreamError = "upstream error"
)

var (
	// ErrInvalidQuery means the currency query failed the character-class check.
	ErrInvalidQuery = errors.New(MessageInvalidQuery)

	// ErrUpstream covers transport, status and decode failures against the ticker API.
	ErrUpstream = errors.New(MessageUpstreamError)
)

// ApiResponse is the body returned by GET /api/test.
type ApiResponse struct {
	// Success is true only when the upstream returned a ticker.
	Success bool `json:"success"`

	// Message is empty on success; otherwise it explains the failure.
	Message string `json:"message"`

	// Ticker fields, set only on success.
	Bid  *decimal.Decimal `json:"bid,omitempty"`
	Ask  *decimal.Decimal `json:"ask,omitempty"`
	Last *decimal.Decimal `json:"last,omitempty"`
}

// MarshalJSON writes prices as JSON numbers regardless of
// decimal.MarshalJSONWithoutQuotes.
func (r ApiResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Success bool         `json:"success"`
		Message string       `json:"message"`
		Bid     *json.Number `json:"bid,omitempty"`
		Ask     *json.Number `json:"ask,omitempty"`
		Last    *json.Number `json:"last,omitempty"`
	}{
		Success: r.Success,
		Message: r.Message,
		Bid:     toNumber(r.Bid),
		Ask:     toNumber(r.Ask),
		Last:    toNumber(r.Last),
	})
}

func toNumber(d *decimal.Decimal) *json.Number {
	if d == nil {
		return nil
	}
	n := json.Number(d.String())
	return &n
}

func InvalidQueryResponse() ApiResponse {
	return ApiResponse{Success: false, Message: MessageInvalidQuery}
}

func UpstreamErrorResponse() ApiResponse {
	return ApiResponse{Success: false, Message: MessageUpstreamError}
}

// TickerEnvelope is the Bittrex v1.1 getticker payload.
type TickerEnvelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Result  *TickerResult `json:"result"`
}

// Null or missing prices stay nil.
type TickerResult struct {
	Bid  *decimal.Decimal `json:"Bid"`
	Ask  *decimal.Decimal `json:"Ask"`
	Last *decimal.Decimal `json:"Last"`
}

// ToResponse flattens the envelope. Ticker fields are copied only for a
// successful envelope that carries a result.
func (e TickerEnvelope) ToResponse() ApiResponse {
	resp := ApiResponse{Success: e.Success, Message: e.Message}
	if e.Success && e.Result != nil {
		resp.Bid, resp.Ask, resp.Last = e.Result.Bid, e.Result.Ask, e.Result.Last
	}
	return resp
}
