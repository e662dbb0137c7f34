package middleware

import (
	"context"
	"net/http"
	"strings"

	"Vidtube/pkg/jwt"
	"Vidtube/pkg/log"
	"Vidtube/pkg/response"

	ctxutil "Vidtube/pkg/context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const AccessTokenCookie = "accessToken"

// UserChecker reports whether a token subject still has an account.
type UserChecker interface {
	Exists(ctx context.Context, uid int64) (bool, error)
}

// Auth accepts the access token from the accessToken cookie or an
// "Authorization: Bearer" header.
func Auth(secret []byte, users UserChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "unauthorized request")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid access token")
			return
		}

		ok, err := users.Exists(c.Request.Context(), claims.UserID)
		if err != nil {
			log.L.Error("auth user lookup", zap.Int64("uid", claims.UserID), zap.Error(err))
			response.Abort(c, http.StatusInternalServerError, "internal server error")
			return
		}
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "invalid access token")
			return
		}

		c.Set(ctxutil.CtxUserID, claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
