package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"latch/config"
	"latch/internal/delivery"
	"latch/internal/delivery/http"
	"latch/internal/delivery/http/middleware"
	"latch/internal/delivery/http/router/handler"
	"latch/internal/infra/auth"
	"latch/internal/infra/biometric"
	"latch/internal/infra/firebase"
	logs "latch/internal/infra/log"
	"latch/internal/infra/notification"
	"latch/internal/infra/store"
	"latch/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			firebase.NewApp,
		),
		store.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		auth.Module,
		notification.Module,
		fx.Provide(
			biometric.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialService,
			impl.NewMirrorService,
			impl.NewDoorService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPinHandler,
			handler.NewDoorHandler,
			handler.NewDeviceHandler,
			handler.NewSessionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
