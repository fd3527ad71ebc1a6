package middleware

import (
	"strings"

	domainerr "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// Auth rejects requests without a valid bearer token and stores the
// authenticated user id under UserIDKey
func Auth(auth usecase.AuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			abortUnauthorized(c)
			return
		}

		identity, err := auth.Verify(strings.TrimSpace(header[len(bearerPrefix):]))
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(UserIDKey, identity.UserID)
		c.Next()
	}
}

// UserID returns the id stored by Auth, empty on public routes
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(domainerr.HTTPStatus(domainerr.ErrUnauthorized), dto.NewErrorResponse(domainerr.ErrUnauthorized))
}
