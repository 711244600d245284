//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"fleet-booking/internal/pkg/config"
	"fleet-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T) *jwt.Service {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, duration)
}

func (h *JWTHelper) GenerateToken(t *testing.T, principalID string) string {
	t.Helper()
	token, err := h.service(t).GenerateToken(principalID, "")
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, principalID string) string {
	t.Helper()
	token, err := h.service(t).GenerateTokenWithDuration(principalID, "", -time.Minute)
	require.NoError(t, err)
	return token
}
