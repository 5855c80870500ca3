package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS returns middleware with a deliberately permissive cross-origin
// policy: the API is consumed by a browser client on a different origin
// and carries no cookies or credentials. Preflight OPTIONS requests are
// answered with 204 before any business logic runs, and every response
// (success or error) carries the same headers.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "apikey", "x-client-info"},
		MaxAge:          24 * time.Hour,
	})
}
