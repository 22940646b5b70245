package middleware

import (
	"net/http"
	"strings"

	"devconnector_backend/internal/auth"
	"devconnector_backend/internal/logger"
	"devconnector_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware - middleware проверки JWT.
// В базу данных здесь не ходим: user id из токена принимается как есть,
// токен удаленного пользователя живет до своего exp.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "No token supplied, authorization denied")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Token is not valid")
			return
		}

		// Сохраняем identity в контекст запроса и в контекст логгера
		c.Set("userID", claims.UserID)
		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	appErr := apperrors.NewUnauthorizedError(message)
	c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: appErr})
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
