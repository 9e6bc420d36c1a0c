package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/orderdocs/orderdocs/internal/config"
	ierr "github.com/orderdocs/orderdocs/internal/errors"
	"github.com/orderdocs/orderdocs/internal/logger"
)

const (
	HeaderAPIKey       = "X-API-Key"
	HeaderRequestToken = "X-Request-Token"
)

// RequireManageOrders checks the manage-orders capability via the
// configured API key. Both checks abort the request before any generation
// work runs.
func RequireManageOrders(cfg *config.Configuration, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderAPIKey)
		if cfg.Auth.APIKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(cfg.Auth.APIKey)) != 1 {
			logger.Debugw("rejected request without manage-orders capability")
			c.Error(ierr.NewError("missing manage-orders capability").
				WithHint("You do not have permission to perform this action").
				Mark(ierr.ErrPermissionDenied))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRequestToken verifies the anti-forgery token on interactive
// generation requests.
func RequireRequestToken(cfg *config.Configuration, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(HeaderRequestToken)
		if cfg.Auth.RequestToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Auth.RequestToken)) != 1 {
			logger.Debugw("rejected request with invalid anti-forgery token")
			c.Error(ierr.NewError("invalid request token").
				WithHint("Invalid request").
				Mark(ierr.ErrPermissionDenied))
			c.Abort()
			return
		}
		c.Next()
	}
}
