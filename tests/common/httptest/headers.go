//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// AssertRequestID checks that the response carries a UUID request id.
func AssertRequestID(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
	assert.NoError(t, err, "X-Request-ID must be a UUID")
}
