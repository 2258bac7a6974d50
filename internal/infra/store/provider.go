// Package store selects the document store backend from configuration.
package store

import (
	"context"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"

	"latch/config"
	"latch/internal/domain/repository"
	"latch/internal/domain/service"
	"latch/internal/errors"
	infrafirestore "latch/internal/infra/firestore"
	"latch/internal/infra/memory"
)

// Params holds dependencies for the store providers, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// backends bundles the two store-facing interfaces so both are built from
// one backend selection.
type backends struct {
	fx.Out

	StateStore service.StateStore
	PinRepo    repository.PinRepository
}

// New creates the state store and PIN repository for the configured
// provider.
func New(params Params) (backends, error) {
	cfg := params.Config.Store
	if cfg == nil || cfg.Provider == "" || cfg.Provider == config.StoreProviderMemory {
		params.Logger.Info("Using in-memory store")

		return backends{
			StateStore: memory.NewStateStore(params.Config),
			PinRepo:    memory.NewPinRepository(),
		}, nil
	}

	if cfg.Provider != config.StoreProviderFirestore {
		return backends{}, errors.Errorf("unknown store provider: %s", cfg.Provider)
	}

	if params.App == nil {
		return backends{}, errors.New("firestore store requires firebase configuration")
	}

	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return backends{}, errors.Wrap(err, "failed to create firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	params.Logger.Info("Using Firestore store",
		slog.String("door_document", cfg.DoorDocument),
		slog.String("devices_collection", cfg.DevicesCollection),
	)

	return backends{
		StateStore: infrafirestore.NewStateStore(client, params.Logger),
		PinRepo:    infrafirestore.NewPinRepository(client, cfg.PinsCollection),
	}, nil
}

// Module provides the store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
