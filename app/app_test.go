package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"material-issue-sheet/config"
)

func fileConfig(dir string) *config.Config {
	return &config.Config{
		Port: "8080",
		Catalog: config.CatalogConfig{
			Source:      config.SourceFile,
			DataDir:     dir,
			CatalogFile: "inventory.json",
			BundlesFile: "bundles.yaml",
			LoadTimeout: time.Second,
		},
		PDF: config.PDFConfig{Timeout: time.Second},
	}
}

func TestInitialize_FileSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inventory.json"), []byte(`[
		// drop equipment
		{"id": "EQ-100", "name": "ONT Router", "category": "Equipment", "isPopular": true},
		{"id": "FC-200", "name": "Drop Cable", "category": "Fiber/Copper"}
	]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bundles.yaml"), []byte(`
- name: New Install
  description: Router and cable
  items:
    - [EQ-100, 1]
    - [Drop Cable, 2]
`), 0o644))

	application, err := Initialize(context.Background(), fileConfig(dir), zap.NewNop())
	require.NoError(t, err)
	defer application.Close()

	assert.Equal(t, 2, application.Session.Catalog().Len())
	require.Len(t, application.Session.Bundles(), 1)

	rec := httptest.NewRecorder()
	application.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/bundles/0/apply", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, application.Session.Quantity("Drop Cable"))
}

func TestInitialize_MissingResourceIsFatal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inventory.json"), []byte(`[]`), 0o644))

	application, err := Initialize(context.Background(), fileConfig(dir), zap.NewNop())
	assert.Nil(t, application)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load startup resources")
}

func TestInitialize_UnknownSource(t *testing.T) {
	cfg := fileConfig(t.TempDir())
	cfg.Catalog.Source = "ftp"

	_, err := Initialize(context.Background(), cfg, zap.NewNop())
	assert.EqualError(t, err, `unknown catalog source "ftp"`)
}
