package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"error"`
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrNotFound(what, key string, value any) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        what + " not found",
	}
}

func ErrBadRequest(msg string) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        msg,
	}
}

func ErrServiceUnavailable(msg string) *Err {
	return &Err{
		StatusCode: http.StatusServiceUnavailable,
		Msg:        msg,
	}
}

func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Msg:        "internal server error",
	}
}
