package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"material-issue-sheet/models"
)

// CatalogRepository loads the catalog and bundle kits from Postgres.
//
// Expected tables:
//
//	catalog_items(position int, item_code text, name text, category text, is_popular bool)
//	bundles(id bigint, position int, name text, description text)
//	bundle_items(bundle_id bigint, line_no int, item_key text, qty int)
type CatalogRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *sql.DB, logger *zap.Logger) *CatalogRepository {
	return &CatalogRepository{db: db, logger: logger}
}

// Ensure CatalogRepository implements CatalogSourceInterface
var _ CatalogSourceInterface = (*CatalogRepository)(nil)

// LoadCatalog retrieves all catalog items in their configured order
func (r *CatalogRepository) LoadCatalog(ctx context.Context) ([]models.CatalogItem, error) {
	query := `
		SELECT
			item_code,
			name,
			COALESCE(category, '') AS category,
			is_popular
		FROM catalog_items
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog items: %w", err)
	}
	defer rows.Close()

	var items []models.CatalogItem
	for rows.Next() {
		var item models.CatalogItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.IsPopular); err != nil {
			return nil, fmt.Errorf("failed to scan catalog item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog items: %w", err)
	}

	r.logger.Info("catalog items fetched", zap.Int("count", len(items)))
	return items, nil
}

// LoadBundles retrieves all bundle kits with their lines in order
func (r *CatalogRepository) LoadBundles(ctx context.Context) ([]models.BundleDefinition, error) {
	bundleQuery := `
		SELECT id, name, COALESCE(description, '') AS description
		FROM bundles
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, bundleQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query bundles: %w", err)
	}
	defer rows.Close()

	var bundles []models.BundleDefinition
	indexByID := make(map[int64]int)
	for rows.Next() {
		var id int64
		var bundle models.BundleDefinition
		if err := rows.Scan(&id, &bundle.Name, &bundle.Description); err != nil {
			return nil, fmt.Errorf("failed to scan bundle: %w", err)
		}
		bundle.Items = []models.BundleLine{}
		indexByID[id] = len(bundles)
		bundles = append(bundles, bundle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bundles: %w", err)
	}

	lineQuery := `
		SELECT bundle_id, item_key, qty
		FROM bundle_items
		ORDER BY bundle_id ASC, line_no ASC
	`

	lineRows, err := r.db.QueryContext(ctx, lineQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query bundle items: %w", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var bundleID int64
		var line models.BundleLine
		if err := lineRows.Scan(&bundleID, &line.Key, &line.Qty); err != nil {
			return nil, fmt.Errorf("failed to scan bundle item: %w", err)
		}
		idx, ok := indexByID[bundleID]
		if !ok {
			r.logger.Warn("bundle item references unknown bundle", zap.Int64("bundle_id", bundleID), zap.String("key", line.Key))
			continue
		}
		bundles[idx].Items = append(bundles[idx].Items, line)
	}
	if err := lineRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bundle items: %w", err)
	}

	r.logger.Info("bundles fetched", zap.Int("count", len(bundles)))
	return bundles, nil
}
