package server

import (
	"net/http"
	"strings"
	"time"

	"auction-house/services/auction/handler"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// IdentityMiddleware extracts the caller's identity from a bearer token, if
// one is present, and stores it in the request context. Requests without a
// token continue unauthenticated so the engine itself can reject them; only
// a malformed or invalid token is rejected here.
func IdentityMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			utils.JSONError(c, http.StatusUnauthorized, jwt.ErrTokenMalformed, "invalid authorization header")
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !tkn.Valid {
			utils.JSONError(c, http.StatusUnauthorized, jwt.ErrTokenInvalidClaims, "invalid token")
			c.Abort()
			return
		}

		if username, ok := claims["username"].(string); ok {
			c.Set(handler.IdentityKey, username)
		}
		c.Next()
	}
}
