package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RoleChecker consulta las filas de autorización de un usuario.
type RoleChecker interface {
	HasRole(ctx context.Context, userID uint, role string) (bool, error)
}

// TokenRevoker termina la sesión del token actual.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
}

// RequireAdmin es el gate del panel: sin fila role=admin no hay
// acceso. Cero filas o error de consulta se tratan igual que no
// autenticado: se revoca el token y se corta antes de que ningún
// handler del panel toque datos.
func RequireAdmin(roles RoleChecker, revoker TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet(ContextUserID).(uint)

		ok, err := roles.HasRole(c.Request.Context(), userID, "admin")
		if err != nil || !ok {
			if err != nil {
				log.Error().Err(err).Uint("user_id", userID).Msg("role lookup failed, denying")
			}

			jti := c.MustGet(ContextTokenID).(string)
			exp := c.MustGet(ContextTokenExp).(time.Time)
			if revoker != nil {
				if rerr := revoker.Revoke(c.Request.Context(), jti, exp); rerr != nil {
					log.Error().Err(rerr).Msg("failed to revoke token")
				}
			}

			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "admin_required",
				"message": "No tenés permisos de administrador",
			})
			return
		}

		c.Next()
	}
}
