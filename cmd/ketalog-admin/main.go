package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"ketalog/config"
	"ketalog/internal/delivery"
	"ketalog/internal/delivery/http"
	"ketalog/internal/delivery/http/middleware"
	"ketalog/internal/delivery/http/router/handler"
	"ketalog/internal/delivery/poller"
	"ketalog/internal/domain/service"
	"ketalog/internal/domain/upstream"
	logs "ketalog/internal/infra/log"
	"ketalog/internal/infra/notification"
	"ketalog/internal/infra/pubsub"
	"ketalog/internal/infra/qrcode"
	"ketalog/internal/infra/session"
	upstreamhttp "ketalog/internal/infra/upstream"
	"ketalog/internal/infra/whatsapp"
	"ketalog/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectUpstream(),
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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectUpstream() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				newUpstreamClient,
				fx.As(new(upstream.OrderAPI)),
				fx.As(new(upstream.DirectoryAPI)),
				fx.As(new(upstream.CatalogAPI)),
				fx.As(new(upstream.OfferAPI)),
				fx.As(new(upstream.AnalyticsAPI)),
				fx.As(new(upstream.AuthAPI)),
			),
		),
	)
}

// newUpstreamClient creates the marketplace backend client. One client backs
// every backend interface.
func newUpstreamClient(cfg *config.Config, sessions service.SessionService, logger *slog.Logger) *upstreamhttp.Client {
	return upstreamhttp.NewClient(cfg.Upstream, sessions, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newStateStore,
			session.NewSessionService,
			newWhatsAppComposer,
			newFirebaseService,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

func newStateStore(cfg *config.Config) service.StateStore {
	return session.NewFileStore(cfg.Session.StatePath)
}

func newWhatsAppComposer(cfg *config.Config) service.WhatsAppComposer {
	return whatsapp.NewComposer(cfg.WhatsApp.CountryCode)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOrderBoardService,
			impl.NewDirectoryService,
			impl.NewCatalogService,
			impl.NewOfferService,
			impl.NewAnalyticsService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewOrderHandler,
			handler.NewDirectoryHandler,
			handler.NewCatalogHandler,
			handler.NewAnalyticsHandler,
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
			fx.Annotate(
				poller.NewPoller,
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
