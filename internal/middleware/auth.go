package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/abruzzobarber/abruzzo-api/internal/config"
)

const (
	ContextUserID   = "userID"
	ContextTokenID  = "tokenID"
	ContextTokenExp = "tokenExp"
)

// TokenDenylist responde si un jti fue revocado (logout o gate de
// admin denegado).
type TokenDenylist interface {
	Revoked(ctx context.Context, jti string) (bool, error)
}

func AuthMiddleware(cfg *config.Config, denylist TokenDenylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok1 := claims["sub"].(float64)
		jti, ok2 := claims["jti"].(string)
		exp, ok3 := claims["exp"].(float64)
		if !ok1 || !ok2 || !ok3 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		if denylist != nil {
			revoked, err := denylist.Revoked(c.Request.Context(), jti)
			if err != nil || revoked {
				// Redis caído también deniega: fail-closed.
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token_revoked"})
				return
			}
		}

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextTokenID, jti)
		c.Set(ContextTokenExp, time.Unix(int64(exp), 0))

		c.Next()
	}
}
