package middleware

import (
	"log/slog"
	"net/http"

	"fleet-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors left on the context by handlers that did not
// write a response, and logs the cause of every server-side failure.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			if resp, ok := e.Meta.(httperr.Response); ok && resp.Status >= http.StatusInternalServerError {
				slog.ErrorContext(c.Request.Context(), "request failed",
					"request_id", c.GetString("request_id"),
					"route", c.FullPath(),
					"error", e.Err.Error())
			}
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			e := c.Errors[i]
			if !e.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := e.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.New(http.StatusInternalServerError, "Internal server error"))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"panic", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", c.GetString("request_id"))

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.New(http.StatusInternalServerError, "Internal server error"))
			}
		}()
		c.Next()
	}
}
