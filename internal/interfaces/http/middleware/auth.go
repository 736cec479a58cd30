package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "luckycat.backend/internal/domain/errors"
	"luckycat.backend/internal/interfaces/http/response"
	"luckycat.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// SessionCookieName is the cookie the sign-in handler sets
	SessionCookieName = "token"
	// UserIDKey is the context key for the authenticated user ID
	UserIDKey = "userId"
)

// AuthMiddleware authenticates a request by its session token. The token is
// taken from the Authorization header when present, otherwise from the
// session cookie set at sign-in.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			abortUnauthorized(c, "Authorization required")
			return
		}

		claims, err := jwtService.Validate(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				abortUnauthorized(c, "Token has expired")
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader(AuthorizationHeader)
	if !strings.HasPrefix(header, BearerPrefix) {
		return ""
	}
	return strings.TrimPrefix(header, BearerPrefix)
}

func abortUnauthorized(c *gin.Context, message string) {
	response.Error(c, domainerrors.Unauthorized(message))
	c.Abort()
}

// GetUserID gets the authenticated user ID from the gin context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
