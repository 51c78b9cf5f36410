//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ErrorBody mirrors the httperr envelope.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	require.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	if target != nil {
		require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "decoding body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and, when expectedMsg is set, that
// the message contains it. The decoded envelope is returned for detail checks.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) ErrorBody {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var body ErrorBody
	require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &body), "decoding error body: %s", w.Body.String())
	assert.NotEmpty(t, body.Error.Message, "error envelope carries no message")
	if expectedMsg != "" {
		assert.Contains(t, body.Error.Message, expectedMsg)
	}
	return body
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}
