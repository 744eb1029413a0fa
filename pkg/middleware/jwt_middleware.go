package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"net/http"
	"strings"
	"trivia/internal/services"
	"trivia/pkg/utils"
)

const AdminKey = "admin"

// AdminGate lets a request through only with a bearer token issued to an admin.
func AdminGate(authService services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		username, err := authService.RequireAdmin(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			utils.Logger(c).Info("admin gate rejected request", zap.Error(err))
			utils.HandleServiceError(c, err)
			return
		}

		c.Set(AdminKey, username)
		c.Next()
	}
}

// Gate returns handler when enabled and a pass-through otherwise, so gating
// can be switched per route.
func Gate(enabled bool, handler gin.HandlerFunc) gin.HandlerFunc {
	if enabled {
		return handler
	}
	return func(c *gin.Context) { c.Next() }
}
