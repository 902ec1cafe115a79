package pages

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kumobot/botsite/internal/server/handlers/api"
	"github.com/kumobot/botsite/internal/site"
	"github.com/kumobot/botsite/internal/status"
)

const apiPrefix = "api/"

type PagesHandler struct {
	renderer *site.Renderer
	gen      *status.Generator
	siteName string
	version  string
}

func New(renderer *site.Renderer, gen *status.Generator, siteName, version string) *PagesHandler {
	return &PagesHandler{
		renderer: renderer,
		gen:      gen,
		siteName: siteName,
		version:  version,
	}
}

// Page returns a handler rendering the named template. nav marks the active menu entry.
func (h *PagesHandler) Page(name, nav string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := h.pageData(c, nav)
		if name == site.PageStatus {
			data.Status = h.gen.Snapshot()
		}
		h.render(c, http.StatusOK, name, data)
	}
}

// NotFound is the catch-all for anything no route matched.
// Paths under api/ answer with a JSON error, everything else with the 404 page.
func (h *PagesHandler) NotFound(c *gin.Context) {
	path := strings.TrimPrefix(c.Request.URL.Path, "/")
	if strings.HasPrefix(path, apiPrefix) {
		api.NotFound(c)
		return
	}

	h.render(c, http.StatusNotFound, site.PageNotFound, h.pageData(c, ""))
}

func (h *PagesHandler) pageData(c *gin.Context, nav string) *site.PageData {
	return &site.PageData{
		Request:  c.Request,
		Path:     c.Request.URL.Path,
		Page:     nav,
		SiteName: h.siteName,
		Version:  h.version,
	}
}

func (h *PagesHandler) render(c *gin.Context, code int, name string, data *site.PageData) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(code)

	// Render writes nothing on failure, so the status can still be replaced
	if err := h.renderer.Render(c.Writer, name, data); err != nil {
		slog.Error("page render", "page", name, "error", err)
		c.Error(err)
		c.Header("Content-Type", "text/plain; charset=utf-8")
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
