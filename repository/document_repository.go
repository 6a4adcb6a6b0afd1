package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"material-issue-sheet/models"
)

// DocumentRepository decodes the catalog and bundle resources from JSON or YAML documents
type DocumentRepository struct {
	reader      ResourceReader
	catalogName string
	bundlesName string
}

// NewDocumentRepository creates a DocumentRepository reading the two named resources through reader
func NewDocumentRepository(reader ResourceReader, catalogName, bundlesName string) *DocumentRepository {
	return &DocumentRepository{
		reader:      reader,
		catalogName: catalogName,
		bundlesName: bundlesName,
	}
}

// Ensure DocumentRepository implements CatalogSourceInterface
var _ CatalogSourceInterface = (*DocumentRepository)(nil)

// LoadCatalog reads and decodes the catalog resource
func (r *DocumentRepository) LoadCatalog(ctx context.Context) ([]models.CatalogItem, error) {
	var items []models.CatalogItem
	if err := r.load(ctx, r.catalogName, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// LoadBundles reads and decodes the bundle resource
func (r *DocumentRepository) LoadBundles(ctx context.Context) ([]models.BundleDefinition, error) {
	var bundles []models.BundleDefinition
	if err := r.load(ctx, r.bundlesName, &bundles); err != nil {
		return nil, err
	}
	return bundles, nil
}

func (r *DocumentRepository) load(ctx context.Context, name string, out any) error {
	data, err := r.reader.ReadResource(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := decodeDocument(name, data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// decodeDocument picks the decoder from the file extension. JSON may carry comments and trailing commas.
func decodeDocument(name string, data []byte, out any) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	case ".json", ".jsonc", "":
		return json.Unmarshal(jsonc.ToJSON(data), out)
	default:
		return fmt.Errorf("unsupported resource format %q", filepath.Ext(name))
	}
}

// DirReader reads resources from a local directory
type DirReader struct {
	dir string
}

// NewDirReader creates a DirReader rooted at dir
func NewDirReader(dir string) *DirReader {
	return &DirReader{dir: dir}
}

// Ensure DirReader implements ResourceReader
var _ ResourceReader = (*DirReader)(nil)

// ReadResource reads dir/name
func (d *DirReader) ReadResource(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name != filepath.Base(name) {
		return nil, fmt.Errorf("resource name %q must not contain a path", name)
	}
	return os.ReadFile(filepath.Join(d.dir, name))
}
