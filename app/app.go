package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"material-issue-sheet/app/controller"
	"material-issue-sheet/app/router"
	"material-issue-sheet/config"
	"material-issue-sheet/db"
	"material-issue-sheet/ordering"
	"material-issue-sheet/repository"
	"material-issue-sheet/service"
)

// Application is the wired HTTP handler plus the resources it holds open
type Application struct {
	Handler http.Handler
	Session *ordering.Session
	db      *sql.DB
}

// Close releases resources held by the application
func (a *Application) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Initialize initializes the application.
// Both startup resources must load; any failure is returned and the app must not start.
func Initialize(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Application, error) {
	application := &Application{}

	// Select catalog source
	source, err := newCatalogSource(ctx, cfg, logger, application)
	if err != nil {
		application.Close()
		return nil, err
	}

	// Load catalog and bundles
	loader := service.NewLoader(source, cfg.Catalog.LoadTimeout, logger)
	data, err := loader.Load(ctx)
	if err != nil {
		application.Close()
		return nil, fmt.Errorf("failed to load startup resources: %w", err)
	}

	// Create the order session
	session := ordering.NewSession(data.Catalog, data.Bundles, logger)
	session.Subscribe(func(e ordering.ChangeEvent) {
		logger.Debug("session changed",
			zap.String("kind", string(e.Kind)),
			zap.Uint64("revision", e.Revision),
		)
	})
	application.Session = session

	// Initialize export sinks
	spreadsheet := service.NewSpreadsheetService()
	printer, err := service.NewPrintService(cfg.PDF.ChromePath, cfg.PDF.Timeout, logger)
	if err != nil {
		application.Close()
		return nil, fmt.Errorf("failed to initialize print service: %w", err)
	}

	// Create controllers
	guard := controller.NewSessionGuard(session)
	controllers := &router.Controllers{
		Catalog:    controller.NewCatalogController(guard, logger),
		Cart:       controller.NewCartController(guard, logger),
		OrderSheet: controller.NewOrderSheetController(guard, spreadsheet, printer, logger),
	}

	// Setup routes
	application.Handler = router.SetupRoutes(controllers, logger)

	logger.Info("application initialized",
		zap.String("source", cfg.Catalog.Source),
		zap.Int("catalog_items", len(data.Catalog)),
		zap.Int("bundles", len(data.Bundles)),
	)
	return application, nil
}

// newCatalogSource builds the repository configured by CATALOG_SOURCE.
// A database opened for the postgres source is handed to application for closing.
func newCatalogSource(ctx context.Context, cfg *config.Config, logger *zap.Logger, application *Application) (repository.CatalogSourceInterface, error) {
	switch cfg.Catalog.Source {
	case config.SourceFile:
		reader := repository.NewDirReader(cfg.Catalog.DataDir)
		return repository.NewDocumentRepository(reader, cfg.Catalog.CatalogFile, cfg.Catalog.BundlesFile), nil

	case config.SourceDrive:
		driveService, err := service.NewDriveService(ctx, cfg.Drive.CredentialsPath, cfg.Drive.FolderID, logger)
		if err != nil {
			return nil, err
		}
		return repository.NewDocumentRepository(driveService, cfg.Catalog.CatalogFile, cfg.Catalog.BundlesFile), nil

	case config.SourcePostgres:
		conn, err := db.Open(ctx, cfg.DB.DSN(), logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		application.db = conn
		return repository.NewCatalogRepository(conn, logger), nil

	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}
