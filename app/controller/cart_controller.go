package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"material-issue-sheet/models"
	"material-issue-sheet/ordering"
)

// CartController handles HTTP requests that change or read the cart
type CartController struct {
	guard    *SessionGuard
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCartController creates a new CartController
func NewCartController(guard *SessionGuard, logger *zap.Logger) *CartController {
	return &CartController{
		guard:    guard,
		validate: newValidator(),
		logger:   logger,
	}
}

// GetSession handles GET /api/session
// Clients check hasUnsavedChanges before navigating away.
func (c *CartController) GetSession(w http.ResponseWriter, r *http.Request) {
	var status models.SessionStatus
	c.guard.Do(func(s *ordering.Session) {
		status = models.SessionStatus{
			Revision:          s.Revision(),
			DistinctCount:     s.DistinctCount(),
			HasUnsavedChanges: s.HasUnsavedChanges(),
		}
	})
	writeJSON(w, r, c.logger, http.StatusOK, status)
}

// GetCart handles GET /api/cart
func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	var resp models.CartResponse
	c.guard.Do(func(s *ordering.Session) {
		resp = cartResponse(s)
	})
	writeJSON(w, r, c.logger, http.StatusOK, resp)
}

// AdjustItem handles POST /api/cart/items/{uid}
// Body: {"delta": 1} or {"delta": -1}. Quantities never go below zero.
func (c *CartController) AdjustItem(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(c.logger, r, "AdjustItem")

	uid, err := strconv.Atoi(chi.URLParam(r, "uid"))
	if err != nil {
		log.Warn("invalid uid", zap.String("uid", chi.URLParam(r, "uid")))
		http.Error(w, "uid must be an integer", http.StatusBadRequest)
		return
	}

	var req models.AdjustQuantityRequest
	if err := decodeBody(r, c.validate, &req); err != nil {
		log.Warn("invalid adjust request", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var (
		item   models.CatalogItem
		qty    int
		resp   models.CartResponse
		adjErr error
	)
	c.guard.Do(func(s *ordering.Session) {
		item, qty, adjErr = s.AdjustByUID(uid, req.Delta)
		if adjErr == nil {
			resp = cartResponse(s)
		}
	})
	if adjErr != nil {
		if errors.Is(adjErr, ordering.ErrItemNotFound) {
			log.Warn("item not found", zap.Int("uid", uid))
			http.Error(w, adjErr.Error(), http.StatusNotFound)
			return
		}
		log.Error("failed to adjust quantity", zap.Error(adjErr))
		http.Error(w, fmt.Sprintf("Failed to adjust quantity: %v", adjErr), http.StatusInternalServerError)
		return
	}

	log.Info("quantity adjusted",
		zap.String("item", item.Name),
		zap.Int("delta", req.Delta),
		zap.Int("qty", qty),
	)
	writeJSON(w, r, c.logger, http.StatusOK, resp)
}

// ClearCart handles DELETE /api/cart
func (c *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	var resp models.CartResponse
	c.guard.Do(func(s *ordering.Session) {
		s.Clear()
		resp = cartResponse(s)
	})
	requestLogger(c.logger, r, "ClearCart").Info("cart cleared")
	writeJSON(w, r, c.logger, http.StatusOK, resp)
}

// ApplyBundle handles POST /api/bundles/{index}/apply
// Applying the same bundle twice adds its quantities twice.
func (c *CartController) ApplyBundle(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(c.logger, r, "ApplyBundle")

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		log.Warn("invalid bundle index", zap.String("index", chi.URLParam(r, "index")))
		http.Error(w, "index must be an integer", http.StatusBadRequest)
		return
	}

	var (
		result   ordering.ApplyResult
		revision uint64
		applyErr error
	)
	c.guard.Do(func(s *ordering.Session) {
		result, applyErr = s.ApplyBundle(index)
		revision = s.Revision()
	})
	if applyErr != nil {
		if errors.Is(applyErr, ordering.ErrBundleNotFound) {
			log.Warn("bundle not found", zap.Int("index", index))
			http.Error(w, applyErr.Error(), http.StatusNotFound)
			return
		}
		log.Error("failed to apply bundle", zap.Error(applyErr))
		http.Error(w, fmt.Sprintf("Failed to apply bundle: %v", applyErr), http.StatusInternalServerError)
		return
	}

	unresolved := result.Unresolved
	if unresolved == nil {
		unresolved = []string{}
	}

	log.Info("bundle applied",
		zap.String("bundle", result.Bundle),
		zap.Int("applied", result.Applied),
		zap.Int("unresolved", len(unresolved)),
	)
	writeJSON(w, r, c.logger, http.StatusOK, models.ApplyBundleResponse{
		Message:    fmt.Sprintf("Added %s items to order!", result.Bundle),
		Applied:    result.Applied,
		Unresolved: unresolved,
		Revision:   revision,
	})
}

// cartResponse must be called with the session guard held
func cartResponse(s *ordering.Session) models.CartResponse {
	lines := s.CartLines()
	if lines == nil {
		lines = []models.CartLine{}
	}
	return models.CartResponse{
		Revision:      s.Revision(),
		DistinctCount: s.DistinctCount(),
		Lines:         lines,
	}
}
