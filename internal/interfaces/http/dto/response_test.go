package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponse(t *testing.T) {
	t.Run("success carries data and no error", func(t *testing.T) {
		resp, err := NewResponse(map[string]string{"pr_number": "PR0000000001"}, nil)
		require.NoError(t, err)

		assert.True(t, resp.Success)
		assert.NotNil(t, resp.Data)
		assert.Nil(t, resp.Error)
	})

	t.Run("failure carries error and no data", func(t *testing.T) {
		resp, err := NewResponse(nil, &ErrorInfo{Code: "PR001", Message: "Missing required fields"})
		require.NoError(t, err)

		assert.False(t, resp.Success)
		assert.Nil(t, resp.Data)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "PR001", resp.Error.Code)
	})

	t.Run("rejects both data and error", func(t *testing.T) {
		_, err := NewResponse("data", &ErrorInfo{Code: "PR001", Message: "boom"})
		assert.ErrorIs(t, err, ErrEnvelopeConflict)
	})

	t.Run("rejects neither data nor error", func(t *testing.T) {
		_, err := NewResponse(nil, nil)
		assert.ErrorIs(t, err, ErrEnvelopeEmpty)
	})
}

func TestNewSuccessResponsePanicsOnNil(t *testing.T) {
	assert.Panics(t, func() {
		NewSuccessResponse(nil)
	})
}

func TestResponseJSONShape(t *testing.T) {
	t.Run("success omits error field", func(t *testing.T) {
		raw, err := json.Marshal(NewSuccessResponse(map[string]string{"status": "CREATED"}))
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, true, decoded["success"])
		assert.Contains(t, decoded, "data")
		assert.NotContains(t, decoded, "error")
	})

	t.Run("error omits data field", func(t *testing.T) {
		raw, err := json.Marshal(NewErrorResponse("DOC002", "Document PR0000000001 not found"))
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, false, decoded["success"])
		assert.NotContains(t, decoded, "data")
		assert.Contains(t, decoded, "error")
	})

	t.Run("details pass through", func(t *testing.T) {
		resp := NewErrorResponseWithDetails("PR001", "Missing required fields",
			map[string]any{"missing_fields": []string{"plant"}}, "req-1")
		raw, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "missing_fields")
		assert.Contains(t, string(raw), "req-1")
	})
}
