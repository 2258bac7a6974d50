package auth

import (
	"context"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"

	"latch/config"
	"latch/internal/domain/service"
)

// Params holds dependencies for the TokenService provider, injected by Fx.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// New creates a TokenService. Firebase wins whenever it is configured;
// the local HMAC verifier is the development fallback.
func New(params Params) (service.TokenService, error) {
	if params.App != nil {
		params.Logger.Info("Using Firebase token verifier")

		return NewFirebaseVerifier(params.Ctx, params.App)
	}

	params.Logger.Info("Using local JWT token verifier")

	return NewJWTService(params.Config)
}

// Module provides the auth FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
