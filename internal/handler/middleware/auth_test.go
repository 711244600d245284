//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"fleet-booking/internal/domain/auth"
	"fleet-booking/internal/handler/middleware"
	"fleet-booking/tests/common/httptest"
	usecasemock "fleet-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *usecasemock.MockPrincipalResolver) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resolver := usecasemock.NewMockPrincipalResolver(gomock.NewController(t))
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/whoami", middleware.NewAuthMiddleware(resolver).RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetPrincipalID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"principal_id": id})
	})
	return router, resolver
}

func TestRequireAuth(t *testing.T) {
	t.Run("authenticated principal reaches the handler", func(t *testing.T) {
		router, resolver := newAuthRouter(t)
		resolver.EXPECT().Resolve("good").Return(auth.Authenticate("42"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, "good")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "42", body["principal_id"])
	})

	t.Run("rejected token is 401", func(t *testing.T) {
		router, resolver := newAuthRouter(t)
		resolver.EXPECT().Resolve("stale").Return(auth.Reject("token expired"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, "stale")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("missing header never reaches the resolver", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})
}
