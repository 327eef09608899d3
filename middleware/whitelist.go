package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DomainWhitelistMiddleware rejects requests whose Host is not listed. An
// empty list allows every host.
func DomainWhitelistMiddleware(allowedDomains []string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(allowedDomains) == 0 {
			c.Next()
			return
		}

		host := c.Request.Host
		bare := host
		if h, _, err := net.SplitHostPort(host); err == nil {
			bare = h
		}

		allowed := false
		for _, domain := range allowedDomains {
			domain = strings.TrimSpace(domain)
			if strings.EqualFold(domain, host) || strings.EqualFold(domain, bare) {
				allowed = true
				break
			}
		}

		if !allowed {
			logger.Warn("request from host not in allow-list", zap.String("host", host))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  http.StatusForbidden,
				"message": "Permission denied",
			})
			return
		}

		c.Next()
	}
}
