package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope of every non-2xx JSON body.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func New(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}

// AbortWithError writes the envelope and keeps err on the gin context, where
// the logging and error middleware pick it up.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(status, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
