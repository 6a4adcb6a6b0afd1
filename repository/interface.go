package repository

import (
	"context"

	"material-issue-sheet/models"
)

// CatalogSourceInterface loads the two startup resources
type CatalogSourceInterface interface {
	LoadCatalog(ctx context.Context) ([]models.CatalogItem, error)
	LoadBundles(ctx context.Context) ([]models.BundleDefinition, error)
}

// ResourceReader fetches a named resource file (local directory, Drive folder, ...)
type ResourceReader interface {
	ReadResource(ctx context.Context, name string) ([]byte, error)
}
