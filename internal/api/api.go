// Package api exposes a rule set over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/rulechain/pkg/httpserver"
	"github.com/dmitrymomot/rulechain/pkg/logger"
	"github.com/dmitrymomot/rulechain/pkg/ruleset"
	"github.com/dmitrymomot/rulechain/pkg/validator"
)

// CheckRequest is the body of POST /rules/{name}/check.
type CheckRequest struct {
	Value any `json:"value"`
}

// CheckResponse carries the outcome; Error holds the failure message or the fault.
type CheckResponse struct {
	Rule  string `json:"rule"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

type handler struct {
	set *ruleset.Set
	log *slog.Logger
}

// NewRouter mounts:
//
//	GET  /health              runs every health check
//	GET  /rules               lists rule names
//	POST /rules/{name}/check  checks {"value": ...} against the named rule
func NewRouter(set *ruleset.Set, log *slog.Logger, checks map[string]httpserver.HealthCheck) chi.Router {
	if log == nil {
		log = logger.Discard()
	}
	h := &handler{set: set, log: log.With(logger.Component("api"))}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(h.log, 5*time.Second, checks))
	r.Route("/rules", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/{name}/check", h.check)
	})
	return r
}

func (h *handler) list(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"rules": h.set.Names()})
}

func (h *handler) check(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CheckResponse{Rule: name, Error: "invalid request body"})
		return
	}

	res := h.set.Check(ctx, name, req.Value)
	resp := CheckResponse{Rule: name, Valid: res.Valid, Error: res.Message}
	if res.Err == nil {
		h.log.DebugContext(ctx, "value checked", logger.Rule(name), logger.Valid(res.Valid))
		writeJSON(w, http.StatusOK, resp)
		return
	}

	resp.Error = res.Err.Error()
	status := faultStatus(res.Err)
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(ctx, "check failed", logger.Rule(name), logger.Error(res.Err))
	} else {
		h.log.WarnContext(ctx, "check rejected", logger.Rule(name), logger.Error(res.Err))
	}
	writeJSON(w, status, resp)
}

func faultStatus(err error) int {
	switch {
	case errors.Is(err, ruleset.ErrRuleNotDefined):
		return http.StatusNotFound
	case validator.IsUsageError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
