//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"fleet-booking/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "failed to decode body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the error envelope message
// contains expectedMsg. An empty expectedMsg only checks the envelope shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var resp httperr.Response
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to decode error body: %s", w.Body.String()) {
		return
	}
	assert.NotEmpty(t, resp.Error.Message, "error envelope without message")
	if expectedMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedMsg)
	}
}
