package controller

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"material-issue-sheet/models"
	"material-issue-sheet/ordering"
)

// CatalogController handles HTTP requests for browsing the catalog and bundles
type CatalogController struct {
	guard    *SessionGuard
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(guard *SessionGuard, logger *zap.Logger) *CatalogController {
	return &CatalogController{
		guard:    guard,
		validate: newValidator(),
		logger:   logger,
	}
}

// GetCatalog handles GET /api/catalog?category=Equipment&search=onu
// Query parameters, when present, replace the current filter before the view is built.
func (c *CatalogController) GetCatalog(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(c.logger, r, "GetCatalog")

	query := r.URL.Query()
	_, hasCategory := query["category"]
	_, hasSearch := query["search"]

	var view models.CatalogViewResponse
	c.guard.Do(func(s *ordering.Session) {
		if hasCategory || hasSearch {
			f := s.Filter()
			if hasCategory {
				f.Category = strings.TrimSpace(query.Get("category"))
			}
			if hasSearch {
				f.SearchTerm = query.Get("search")
			}
			s.SetFilter(f)
		}
		view = buildCatalogView(s)
	})

	log.Debug("catalog view built",
		zap.String("mode", view.Mode),
		zap.String("category", view.Category),
		zap.Int("items", len(view.Items)),
		zap.Int("bundles", len(view.Bundles)),
	)
	writeJSON(w, r, c.logger, http.StatusOK, view)
}

// SetFilter handles PUT /api/filter
func (c *CatalogController) SetFilter(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(c.logger, r, "SetFilter")

	var req models.FilterRequest
	if err := decodeBody(r, c.validate, &req); err != nil {
		log.Warn("invalid filter request", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var view models.CatalogViewResponse
	c.guard.Do(func(s *ordering.Session) {
		s.SetFilter(ordering.FilterState{
			Category:   strings.TrimSpace(req.Category),
			SearchTerm: req.SearchTerm,
		})
		view = buildCatalogView(s)
	})

	log.Info("filter changed",
		zap.String("category", view.Category),
		zap.String("search", view.Search),
	)
	writeJSON(w, r, c.logger, http.StatusOK, view)
}

// GetCategories handles GET /api/categories
// The list always starts with All and Bundles, followed by catalog categories in first-seen order.
func (c *CatalogController) GetCategories(w http.ResponseWriter, r *http.Request) {
	var categories []string
	c.guard.Do(func(s *ordering.Session) {
		categories = append([]string{ordering.CategoryAll, ordering.CategoryBundles}, s.Catalog().Categories()...)
	})
	writeJSON(w, r, c.logger, http.StatusOK, models.CategoryList{Categories: categories})
}

// GetBundles handles GET /api/bundles
func (c *CatalogController) GetBundles(w http.ResponseWriter, r *http.Request) {
	var cards []models.BundleCard
	c.guard.Do(func(s *ordering.Session) {
		cards = bundleCards(s.Bundles())
	})
	writeJSON(w, r, c.logger, http.StatusOK, cards)
}

// buildCatalogView must be called with the session guard held
func buildCatalogView(s *ordering.Session) models.CatalogViewResponse {
	f := s.Filter()
	view := models.CatalogViewResponse{
		Category: f.Category,
		Search:   f.SearchTerm,
		Revision: s.Revision(),
	}

	if f.IsBundleView() {
		view.Mode = "bundles"
		view.Bundles = bundleCards(s.Bundles())
		return view
	}

	view.Mode = "items"
	items := s.DisplayList()
	view.Items = make([]models.CatalogCard, 0, len(items))
	for _, item := range items {
		qty := s.Quantity(item.Name)
		view.Items = append(view.Items, models.CatalogCard{
			CatalogItem: item,
			Qty:         qty,
			Selected:    qty > 0,
		})
	}
	return view
}

func bundleCards(bundles []models.BundleDefinition) []models.BundleCard {
	cards := make([]models.BundleCard, 0, len(bundles))
	for i, b := range bundles {
		cards = append(cards, models.BundleCard{Index: i, BundleDefinition: b})
	}
	return cards
}
