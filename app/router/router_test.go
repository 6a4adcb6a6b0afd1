package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"material-issue-sheet/app/controller"
	"material-issue-sheet/models"
	"material-issue-sheet/ordering"
	"material-issue-sheet/service"
)

func newTestHandler(logger *zap.Logger) http.Handler {
	session := ordering.NewSession([]models.CatalogItem{{ID: "A1", Name: "Widget", Category: "Equipment"}}, nil, logger)
	guard := controller.NewSessionGuard(session)
	return SetupRoutes(&Controllers{
		Catalog:    controller.NewCatalogController(guard, logger),
		Cart:       controller.NewCartController(guard, logger),
		OrderSheet: controller.NewOrderSheetController(guard, service.NewSpreadsheetService(), nil, logger),
	}, logger)
}

func TestSetupRoutes_Ping(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	handler := newTestHandler(zap.New(core))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/ping", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestSetupRoutes_MethodAndPath(t *testing.T) {
	handler := newTestHandler(zap.NewNop())

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/api/catalog", "", http.StatusOK},
		{http.MethodGet, "/api/cart", "", http.StatusOK},
		{http.MethodPost, "/api/cart/items/0", `{"delta":1}`, http.StatusOK},
		{http.MethodPost, "/api/cart", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
		{http.MethodPost, "/api/order-sheet", `{"toWarehouse":"Truck 12","issuedBy":"Dana"}`, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
