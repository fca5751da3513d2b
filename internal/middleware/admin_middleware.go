package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/VeloraJewelry/storefront_api/internal/utils"
)

// AdminKeyMiddleware guards operator endpoints with a shared key carried in
// the X-Admin-Key header.
type AdminKeyMiddleware struct {
	key string
}

// NewAdminKeyMiddleware constructs an AdminKeyMiddleware.
func NewAdminKeyMiddleware(key string) *AdminKeyMiddleware {
	return &AdminKeyMiddleware{key: key}
}

// Handle rejects requests whose key does not match. Constant-time compare so
// the header cannot be probed byte by byte.
func (m *AdminKeyMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader("X-Admin-Key")
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(m.key)) != 1 {
			utils.Error(c, 401, "INVALID_ADMIN_KEY", "Missing or invalid admin key")
			c.Abort()
			return
		}
		c.Next()
	}
}
