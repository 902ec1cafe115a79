package status

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kumobot/botsite/internal/status"
)

type StatusHandler struct {
	gen *status.Generator
}

func New(gen *status.Generator) *StatusHandler {
	return &StatusHandler{gen: gen}
}

// Get serves a freshly generated status snapshot
func (h *StatusHandler) Get(ctx *gin.Context) {
	ctx.Header("Cache-Control", "no-store")
	ctx.PureJSON(http.StatusOK, h.gen.Snapshot())
}
