package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"material-issue-sheet/app/controller"
)

type Controllers struct {
	Catalog    *controller.CatalogController
	Cart       *controller.CartController
	OrderSheet *controller.OrderSheetController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// requestLogger logs one line per request with zap
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("request",
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// SetupRoutes builds the HTTP handler for the order session API
func SetupRoutes(controllers *Controllers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	// Ping endpoint
	r.Get("/ping", pingHandler)

	r.Route("/api", func(r chi.Router) {
		// Before-navigate guard
		r.Get("/session", controllers.Cart.GetSession)

		// Catalog browsing
		r.Get("/catalog", controllers.Catalog.GetCatalog)
		r.Put("/filter", controllers.Catalog.SetFilter)
		r.Get("/categories", controllers.Catalog.GetCategories)
		r.Get("/bundles", controllers.Catalog.GetBundles)
		r.Post("/bundles/{index}/apply", controllers.Cart.ApplyBundle)

		// Cart
		r.Get("/cart", controllers.Cart.GetCart)
		r.Delete("/cart", controllers.Cart.ClearCart)
		r.Post("/cart/items/{uid}", controllers.Cart.AdjustItem)

		// Order sheet export
		r.Post("/order-sheet", controllers.OrderSheet.Export)
		r.Post("/order-sheet/preview", controllers.OrderSheet.Preview)
		r.Post("/order-sheet/pdf", controllers.OrderSheet.ExportPDF)
	})

	return r
}
