package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"material-issue-sheet/models"
	"material-issue-sheet/repository"
)

// LoadedData holds both startup resources
type LoadedData struct {
	Catalog []models.CatalogItem
	Bundles []models.BundleDefinition
}

// Loader fetches the catalog and the bundle definitions in parallel.
// Both must succeed; there is no partial result.
type Loader struct {
	source  repository.CatalogSourceInterface
	timeout time.Duration
	logger  *zap.Logger
}

// NewLoader creates a new Loader
func NewLoader(source repository.CatalogSourceInterface, timeout time.Duration, logger *zap.Logger) *Loader {
	return &Loader{
		source:  source,
		timeout: timeout,
		logger:  logger,
	}
}

// Ensure Loader implements LoaderInterface
var _ LoaderInterface = (*Loader)(nil)

// Load fetches both resources. The first failure cancels the other fetch.
func (l *Loader) Load(ctx context.Context) (*LoadedData, error) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	start := time.Now()
	var data LoadedData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := l.source.LoadCatalog(gctx)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		data.Catalog = items
		return nil
	})

	g.Go(func() error {
		bundles, err := l.source.LoadBundles(gctx)
		if err != nil {
			return fmt.Errorf("failed to load bundles: %w", err)
		}
		data.Bundles = bundles
		return nil
	})

	if err := g.Wait(); err != nil {
		l.logger.Error("startup load failed", zap.Error(err))
		return nil, err
	}

	l.logger.Info("catalog and bundles loaded",
		zap.Int("items", len(data.Catalog)),
		zap.Int("bundles", len(data.Bundles)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return &data, nil
}
