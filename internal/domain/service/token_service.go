package service

import (
	"context"

	"latch/internal/domain/entity"
)

// TokenService verifies a bearer token and resolves the authenticated
// account behind it. "No user" is a terminal gate for every other
// component: nothing subscribes and nothing loads without an account.
type TokenService interface {
	Verify(ctx context.Context, token string) (*entity.Account, error)
}
