package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var corsAllowHeaders = []string{
	"Origin",
	"Accept",
	"Accept-Encoding",
	"Accept-Language",
	"Authorization",
	"Cache-Control",
	"Content-Type",
	"Content-Length",
	"X-Requested-With",
	"X-CSRF-Token",
}

// CORS allows credentialed cross-origin requests from the given origins with any method.
// With no origins every cross-origin request is refused.
func CORS(origins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders:     corsAllowHeaders,
		AllowCredentials: true,
		AllowWildcard:    true,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 {
		// cors.New refuses a config without any origin source
		config.AllowOriginFunc = func(string) bool { return false }
	} else {
		config.AllowOrigins = origins
	}

	return cors.New(config)
}
