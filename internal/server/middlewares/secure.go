package middlewares

import (
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

const contentSecurityPolicy = "default-src 'self'; img-src 'self' data:; object-src 'none'; frame-ancestors 'none'"

// Secure sets the security headers. Redirects to https and HSTS only apply when the server terminates TLS itself.
func Secure(tls bool) gin.HandlerFunc {
	config := secure.Config{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		IENoOpen:              true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: contentSecurityPolicy,
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
	}

	if tls {
		config.SSLRedirect = true
		config.STSSeconds = 315360000
		config.STSIncludeSubdomains = true
		config.STSPreload = true
	}

	return secure.New(config)
}
