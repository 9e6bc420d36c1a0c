package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/orderdocs/orderdocs/internal/api"
	v1 "github.com/orderdocs/orderdocs/internal/api/v1"
	"github.com/orderdocs/orderdocs/internal/config"
	"github.com/orderdocs/orderdocs/internal/filestore"
	"github.com/orderdocs/orderdocs/internal/logger"
	"github.com/orderdocs/orderdocs/internal/pdfgen"
	"github.com/orderdocs/orderdocs/internal/postgres"
	"github.com/orderdocs/orderdocs/internal/renderer"
	"github.com/orderdocs/orderdocs/internal/repository"
	"github.com/orderdocs/orderdocs/internal/service"
)

// staleDocumentAge is the retention horizon for the shutdown sweep of
// generated files.
const staleDocumentAge = time.Hour

func init() {
	// Generated timestamps and filenames are UTC everywhere.
	time.Local = time.UTC
}

func main() {
	// Optional .env for local development; real deployments configure via
	// environment or config file.
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			provideLogger,

			postgres.NewDB,

			repository.NewOrderRepository,
			repository.NewSettingsRepository,

			renderer.NewRegistry,
			pdfgen.NewRasterizer,
			filestore.NewStore,

			service.NewSnapshotService,
			service.NewCompanyService,
			service.NewDocumentService,
			service.NewAttachmentService,

			v1.NewDocumentHandler,
			v1.NewEmailHandler,
			provideHandlers,
			api.NewRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func provideLogger(cfg *config.Configuration) (*logger.Logger, error) {
	return logger.NewLogger(cfg.Logging.Level)
}

func provideHandlers(document *v1.DocumentHandler, email *v1.EmailHandler) api.Handlers {
	return api.Handlers{
		Document: document,
		Email:    email,
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	router *gin.Engine,
	store filestore.Store,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infof("starting server on %s", cfg.Server.Address)
				if err := router.Run(cfg.Server.Address); err != nil {
					log.Fatalf("failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Deactivation-time cleanup of stale generated files.
			if _, err := store.Sweep(staleDocumentAge); err != nil {
				log.Errorw("retention sweep failed", "error", err)
			}
			return nil
		},
	})
}
