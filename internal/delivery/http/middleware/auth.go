package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/usecase/auth"
)

type AuthMiddleware struct {
	authUseCase *auth.AuthUseCase
}

func NewAuthMiddleware(authUseCase *auth.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{authUseCase: authUseCase}
}

type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// RequireAuth validates the bearer token and stores user_id, role and
// token_id on the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				errorBody{http.StatusUnauthorized, "missing bearer token"})
			return
		}

		claims, err := m.authUseCase.VerifyToken(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				errorBody{http.StatusUnauthorized, "invalid or expired token"})
			return
		}

		uid, err := strconv.Atoi(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				errorBody{http.StatusUnauthorized, "invalid token subject"})
			return
		}

		c.Set("user_id", uid)
		c.Set("role", claims.Role)
		c.Set("token_id", claims.ID)
		c.Next()
	}
}

// RequireAdmin assumes RequireAuth already ran.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role.(string) != string(domain.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				errorBody{http.StatusForbidden, "admin access required"})
			return
		}
		c.Next()
	}
}
