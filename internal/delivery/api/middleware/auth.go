package middleware

import (
	"crypto/subtle"
	"strings"

	"tracker/config"
	"tracker/internal/delivery/api/response"
	"tracker/internal/domain/constants"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// tokenQueryParam carries the access token for websocket clients that
	// cannot set headers during the upgrade.
	tokenQueryParam = "token"

	headerInternalToken = "X-Internal-Token"
)

// AuthMiddleware provides middleware for JWT authentication and the internal hook token.
type AuthMiddleware struct {
	tokenSvc      service.TokenService
	internalToken string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:      tokenSvc,
		internalToken: cfg.HTTP.InternalToken,
	}
}

// Authenticate validates the bearer access token and stores the user on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized.WithDetails("access token is missing"))
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized.WithDetails("access token is invalid or expired"))
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)

		return next(c)
	}
}

// RequireInternalToken guards the hooks called by the CRUD services.
// An empty configured token disables the check.
func (m *AuthMiddleware) RequireInternalToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.internalToken == "" {
			return next(c)
		}

		got := c.Request().Header.Get(headerInternalToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.internalToken)) != 1 {
			return response.Unauthorized(c, "INVALID_INTERNAL_TOKEN", "Internal token is missing or invalid")
		}

		return next(c)
	}
}

// GetUserID returns the user set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

func bearerToken(c echo.Context) (string, bool) {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return "", false
		}

		return token, true
	}

	token := c.QueryParam(tokenQueryParam)

	return token, token != ""
}
