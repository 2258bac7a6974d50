package notification

import (
	"context"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"latch/config"
	"latch/internal/domain/service"
)

const (
	providerLocal = "local"
	providerFCM   = "fcm"
)

// localNotifier logs alerts instead of pushing them. Used in development
// and whenever Firebase is not configured.
type localNotifier struct {
	logger *slog.Logger
}

func (n *localNotifier) Notify(ctx context.Context, userID, title, body string) error {
	n.logger.Info("[LocalNotifier] "+title,
		slog.String("user_id", userID),
		slog.String("body", body),
	)

	return nil
}

// Params holds dependencies for the Notifier provider, injected by Fx.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// New creates a Notifier based on configuration.
func New(params Params) (service.Notifier, error) {
	cfg := params.Config.Notifier
	if cfg == nil || cfg.Provider == "" || cfg.Provider == providerLocal {
		params.Logger.Info("Using local log notifier")

		return &localNotifier{logger: params.Logger}, nil
	}

	if cfg.Provider != providerFCM {
		return nil, errors.Errorf("unknown notifier provider: %s", cfg.Provider)
	}

	params.Logger.Info("Using FCM notifier")

	return NewFCMNotifier(params.Ctx, params.App, params.Logger)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
