package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/didip/tollbooth"
	"github.com/didip/tollbooth/limiter"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ynot-advisory/landing/models"
)

// RateLimitMiddleware allows each client IP perMinute contact posts per
// minute and answers the rest with 429.
func RateLimitMiddleware(perMinute float64, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	lmt := tollbooth.NewLimiter(perMinute/60.0, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})

	retryAfter := strconv.Itoa(int(60/perMinute) + 1)

	return func(c *gin.Context) {
		if httpError := tollbooth.LimitByRequest(lmt, c.Writer, c.Request); httpError != nil {
			logger.Info("contact rate limit reached", zap.String("ip", c.ClientIP()), zap.String("path", c.Request.URL.Path))
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ContactResponse{
				Success: false,
				Message: "Too many messages sent, please try again later.",
			})
			return
		}
		c.Next()
	}
}
