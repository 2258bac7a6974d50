// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"latch/config"
	"latch/internal/domain/entity"
	domainerrors "latch/internal/domain/errors"
	"latch/internal/domain/service"
)

// jwtService verifies locally issued HMAC tokens. Used in development and
// tests where no identity provider is wired up.
type jwtService struct {
	accessSecret string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{accessSecret: cfg.SecretKey.Access}, nil
}

// Verify validates the token signature and expiry and maps its claims to
// an account.
func (s *jwtService) Verify(ctx context.Context, tokenString string) (*entity.Account, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("Failed to parse token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("User ID missing from token")
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	verified, _ := claims["email_verified"].(bool)

	return &entity.Account{
		ID:            sub,
		Email:         email,
		DisplayName:   name,
		EmailVerified: verified,
	}, nil
}
