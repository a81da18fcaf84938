package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerEnvelopeToResponse(t *testing.T) {
	raw := `{"success":true,"message":"","result":{"Bid":0.00512,"Ask":0.00519,"Last":0.00515}}`

	var env TickerEnvelope
	require.NoError(t, json.Unmarshal([]byte(raw), &env))

	resp := env.ToResponse()
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Message)
	require.NotNil(t, resp.Bid)
	require.NotNil(t, resp.Ask)
	require.NotNil(t, resp.Last)
	assert.Equal(t, "0.00512", resp.Bid.String())
	assert.Equal(t, "0.00519", resp.Ask.String())
	assert.Equal(t, "0.00515", resp.Last.String())
}

func TestTickerEnvelopeFailureKeepsMessage(t *testing.T) {
	raw := `{"success":false,"message":"INVALID_MARKET","result":null}`

	var env TickerEnvelope
	require.NoError(t, json.Unmarshal([]byte(raw), &env))

	resp := env.ToResponse()
	assert.False(t, resp.Success)
	assert.Equal(t, "INVALID_MARKET", resp.Message)
	assert.Nil(t, resp.Bid)
	assert.Nil(t, resp.Ask)
	assert.Nil(t, resp.Last)
}

func TestApiResponseJSON(t *testing.T) {
	t.Run("Failure omits ticker fields", func(t *testing.T) {
		out, err := json.Marshal(InvalidQueryResponse())
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":false,"message":"invalid query"}`, string(out))
	})

	t.Run("Success emits numeric prices", func(t *testing.T) {
		env := TickerEnvelope{Success: true}
		require.NoError(t, json.Unmarshal([]byte(`{"success":true,"message":"","result":{"Bid":1.5,"Ask":2,"Last":1.75}}`), &env))

		out, err := json.Marshal(env.ToResponse())
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true,"message":"","bid":1.5,"ask":2,"last":1.75}`, string(out))
	})

	t.Run("Upstream error", func(t *testing.T) {
		out, err := json.Marshal(UpstreamErrorResponse())
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":false,"message":"upstream error"}`, string(out))
	})
}

func TestTickerEnvelopeNullPrices(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "Null last",
			raw:      `{"success":true,"message":"","result":{"Bid":0.1,"Ask":0.2,"Last":null}}`,
			expected: `{"success":true,"message":"","bid":0.1,"ask":0.2}`,
		},
		{
			name:     "Missing bid",
			raw:      `{"success":true,"message":"","result":{"Ask":0.2,"Last":0.15}}`,
			expected: `{"success":true,"message":"","ask":0.2,"last":0.15}`,
		},
		{
			name:     "Success without result",
			raw:      `{"success":true,"message":"","result":null}`,
			expected: `{"success":true,"message":""}`,
		},
		{
			name:     "Zero price is kept",
			raw:      `{"success":true,"message":"","result":{"Bid":0,"Ask":0.2,"Last":0.15}}`,
			expected: `{"success":true,"message":"","bid":0,"ask":0.2,"last":0.15}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var env TickerEnvelope
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &env))

			out, err := json.Marshal(env.ToResponse())
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(out))
		})
	}
}

func TestApiResponseJSONIgnoresDecimalQuoting(t *testing.T) {
	if decimal.MarshalJSONWithoutQuotes {
		t.Fatal("Expected the decimal package default to be left untouched")
	}

	last := decimal.RequireFromString("123.45")
	out, err := json.Marshal(ApiResponse{Success: true, Last: &last})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"","last":123.45}`, string(out))

	var back ApiResponse
	require.NoError(t, json.Unmarshal(out, &back))
	require.NotNil(t, back.Last)
	assert.True(t, back.Last.Equal(last))
}
