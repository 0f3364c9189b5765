package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/session"
)

const (
	ContextAdminJTI = "adminJTI"

	// AdminSessionPrefix namespaces admin token ids in the session store.
	AdminSessionPrefix = "admin:"
)

// AdminSession is what the store keeps for every live admin token.
type AdminSession struct {
	IssuedAt int64 `json:"issued_at"`
}

// AdminAuthMiddleware accepts a Bearer HS256 token whose jti is still
// registered in the store. Logout removes the jti, revoking the token.
func AdminAuthMiddleware(secret string, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header")
			return
		}

		claims := jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(parts[1], &claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid_token")
			return
		}

		if claims.ID == "" || claims.Subject != "admin" {
			abortUnauthorized(c, "invalid_token_claims")
			return
		}

		if err := lookupAdminSession(c.Request.Context(), store, claims.ID); err != nil {
			if errors.Is(err, session.ErrMiss) {
				abortUnauthorized(c, "session_revoked")
				return
			}
			c.Abort()
			httperr.Unavailable(c, "store_unavailable", "Servicio no disponible, intente nuevamente.")
			return
		}

		c.Set(ContextAdminJTI, claims.ID)
		c.Next()
	}
}

func lookupAdminSession(ctx context.Context, store session.Store, jti string) error {
	var s AdminSession
	return store.Get(ctx, AdminSessionPrefix+jti, &s)
}

func abortUnauthorized(c *gin.Context, code string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{
		Code:    code,
		Message: "Sesión de administrador inválida.",
	})
}
