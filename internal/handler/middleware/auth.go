package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"fleet-booking/internal/domain/auth"
	"fleet-booking/internal/handler/httperr"
	"fleet-booking/internal/pkg/errs"
	"fleet-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	resolver usecase.PrincipalResolver
}

const ctxPrincipalIDKey = "principal_id"

func NewAuthMiddleware(resolver usecase.PrincipalResolver) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
	}
}

// RequireAuth resolves the bearer token and stores the principal id on the context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				errs.Mark(errs.New("missing bearer token"), errs.ErrUnauthenticated),
				"Access token required", nil)
			return
		}

		switch r := m.resolver.Resolve(token).(type) {
		case auth.Authenticated:
			c.Set(ctxPrincipalIDKey, r.PrincipalID)
			c.Next()
		case auth.Rejected:
			slog.Warn("token rejected in auth middleware", "reason", r.Reason)
			httperr.AbortWithError(c, http.StatusUnauthorized,
				errs.Mark(errs.New(r.Reason), errs.ErrUnauthenticated),
				"Invalid or expired token", nil)
		default:
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Invalid or expired token", nil)
		}
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}

func GetPrincipalID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxPrincipalIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
