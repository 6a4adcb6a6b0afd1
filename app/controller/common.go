package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"material-issue-sheet/ordering"
)

// SessionGuard serializes access to the single order session.
// HTTP handlers run concurrently; the session itself is not safe for concurrent use.
type SessionGuard struct {
	mu      sync.Mutex
	session *ordering.Session
}

// NewSessionGuard wraps session
func NewSessionGuard(session *ordering.Session) *SessionGuard {
	return &SessionGuard{session: session}
}

// Do runs fn with exclusive access to the session
func (g *SessionGuard) Do(fn func(s *ordering.Session)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.session)
}

// newValidator reports field errors by their JSON names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeBody reads a JSON request body into dst and validates it
func decodeBody(r *http.Request, v *validator.Validate, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := v.Struct(dst); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		switch e.Tag() {
		case "required":
			msgs = append(msgs, e.Field()+" is required")
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("%s must match %s", e.Field(), e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", e.Field(), e.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// writeJSON encodes body with the given status
func writeJSON(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
	}
}

func requestLogger(logger *zap.Logger, r *http.Request, handler string) *zap.Logger {
	return logger.With(
		zap.String("handler", handler),
		zap.String("request_id", middleware.GetReqID(r.Context())),
	)
}
