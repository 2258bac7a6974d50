package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"latch/internal/delivery/http/response"
	"latch/internal/domain/entity"
	"latch/internal/domain/service"
)

// keyAccount is the echo.Context key the authenticated account is stored
// under.
const keyAccount = "account"

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and resolves the account behind
// it. Every route past this middleware can rely on a non-nil account.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		account, err := m.tokenSvc.Verify(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(keyAccount, account)

		return next(c)
	}
}

// CurrentAccount extracts the authenticated account set by Authenticate.
// Returns nil when the middleware did not run.
func CurrentAccount(c echo.Context) *entity.Account {
	account, _ := c.Get(keyAccount).(*entity.Account)

	return account
}
