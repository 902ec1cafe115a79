package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kumobot/botsite/internal/server/handlers/pages"
	"github.com/kumobot/botsite/internal/server/handlers/status"
	"github.com/kumobot/botsite/internal/server/middlewares"
	"github.com/kumobot/botsite/internal/site"
	"github.com/kumobot/botsite/internal/version"
)

// readMethods is what every read-only route answers to
var readMethods = []string{http.MethodGet, http.MethodHead}

type pageRoute struct {
	path string
	page string
	nav  string
}

// pageRoutes are exact path matches, registered in order ahead of the catch-all.
var pageRoutes = []pageRoute{
	{path: "/", page: site.PageIndex, nav: "index"},
	{path: "/commands", page: site.PageCommands, nav: "commands"},
	{path: "/status", page: site.PageStatus, nav: "status"},
}

func SetupRoutes(config *Config, svc *Services) (http.Handler, error) {
	r := gin.New()

	// ClientIP is the peer address unless the peer is a trusted proxy
	if err := r.SetTrustedProxies(config.HTTP.Proxies()); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	// every path is matched exactly or falls through to NoRoute
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	siteName := config.Site.Name
	if siteName == "" {
		siteName = DefaultSiteName
	}

	statusH := status.New(svc.Status)
	pagesH := pages.New(svc.Renderer, svc.Status, siteName, version.Version)

	r.Use(middlewares.Logger())
	r.Use(gin.Recovery())
	r.Use(middlewares.Secure(config.HTTP.TLSEnabled()))
	// cors overwrites Vary, gzip appends to it
	r.Use(middlewares.CORS(config.CORS.AllowedOrigins()))
	r.Use(middlewares.GZIP())

	apiGroup := r.Group("/api")
	if config.API.RateLimit != "" {
		limit, err := middlewares.RateLimiter(config.API.RateLimit)
		if err != nil {
			return nil, err
		}
		apiGroup.Use(limit)
	}
	{
		apiGroup.Match(readMethods, "/status", statusH.Get)
	}

	r.Match(readMethods, "/healthz", HealthHandler)

	for _, route := range pageRoutes {
		r.Match(readMethods, route.path, pagesH.Page(route.page, route.nav))
	}

	r.StaticFS("/static", http.FS(svc.Static))

	// catch-all: api/ paths get JSON, everything else the 404 page
	r.NoRoute(pagesH.NotFound)

	return r.Handler(), nil
}

func HealthHandler(ctx *gin.Context) {
	ctx.PureJSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}
