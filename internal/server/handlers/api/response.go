package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func AbortWithError(ctx *gin.Context, status int, code string, err error) {
	ctx.Abort()
	ctx.Error(err)
	ctx.PureJSON(status, Error{
		Code:    code,
		Message: err.Error(),
	})
}

// NotFound writes the 404 body used for unknown /api paths
func NotFound(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(http.StatusNotFound, Error{Message: MessageNotFound})
}
