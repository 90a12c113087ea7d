package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/checkout"
)

// SessionMiddleware resolves the ordering session named by the
// X-Session-ID header and attaches it to the request context. Routes
// behind it can assume a live session.
func SessionMiddleware(store *checkout.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Session-ID")

		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Session-ID header"})
			c.Abort()
			return
		}

		session, err := store.Get(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown session, create one with POST /session"})
			c.Abort()
			return
		}

		c.Set("session", session)
		c.Next()
	}
}
