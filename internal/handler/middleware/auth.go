package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"restaurant-crm/internal/domain/auth"
	"restaurant-crm/internal/handler/httperr"
	"restaurant-crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxSubjectKey = "subject"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Not authenticated", nil)
			return
		}

		subject, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Could not validate credentials", nil)
			return
		}

		c.Set(ctxSubjectKey, subject)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func GetSubject(c *gin.Context) (auth.Subject, bool) {
	v, exists := c.Get(ctxSubjectKey)
	if !exists {
		return auth.Subject{}, false
	}
	subject, ok := v.(auth.Subject)
	return subject, ok
}
