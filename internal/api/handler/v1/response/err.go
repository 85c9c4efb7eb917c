package response

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the body of every non-2xx response.
type Err struct {
	Err            error  `json:"-"`
	HTTPStatusCode int    `json:"-"`
	Message        string `json:"error" example:"Bakery not found."`
}

func (e *Err) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return e.Message
}

// RenderErr writes e as JSON and aborts the handler chain. Server errors are
// logged with their cause; the cause is never sent to the client.
func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.Err),
		)
	}

	if e.Err != nil {
		_ = ctx.Error(e.Err)
	}
	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

// ErrBadRequest reports err's own text, for decoding and validation failures.
func ErrBadRequest(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
	}
}

func ErrInvalidInput(msg string) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		Message:        msg,
	}
}

func ErrNotFound(msg string) *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Message:        msg,
	}
}

func ErrConflict(msg string) *Err {
	return &Err{
		HTTPStatusCode: http.StatusConflict,
		Message:        msg,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        "Internal server error.",
	}
}

func ErrServiceUnavailable(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusServiceUnavailable,
		Message:        "Service unavailable.",
	}
}
