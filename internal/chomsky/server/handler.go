package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	ckerrors "github.com/msto63/chomsky/foundation/core/errors"
	cklog "github.com/msto63/chomsky/foundation/core/log"
	"github.com/msto63/chomsky/foundation/pda/registry"
	"github.com/msto63/chomsky/internal/chomsky/service"
	"github.com/msto63/chomsky/internal/chomsky/store"
	"github.com/msto63/chomsky/pkg/core/health"
	"github.com/msto63/chomsky/pkg/core/logging"
)

// RecognizeRequest represents a recognition request
type RecognizeRequest struct {
	Grammar string `json:"grammar"`
	Input   string `json:"input"`
}

// GrammarsResponse represents a list of registered grammars
type GrammarsResponse struct {
	Grammars []registry.Info `json:"grammars"`
	Total    int             `json:"total"`
}

// RunsResponse represents a page of run history
type RunsResponse struct {
	Runs  []*store.RunRecord `json:"runs"`
	Total int                `json:"total"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// Handler handles HTTP requests for the recognition API
type Handler struct {
	service   *service.Service
	health    *health.Registry
	logger    *cklog.Logger
	startTime time.Time
	version   string
}

// NewHandler creates a new API handler
func NewHandler(version string, svc *service.Service, healthRegistry *health.Registry) *Handler {
	return &Handler{
		service:   svc,
		health:    healthRegistry,
		logger:    logging.NewSimpleLogger("chomsky-handler"),
		startTime: time.Now(),
		version:   version,
	}
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	// Route requests
	path := strings.TrimPrefix(r.URL.Path, "/api/v1")
	path = strings.TrimPrefix(path, "/")

	switch {
	case path == "" || path == "/":
		h.handleRoot(w, r)
	case path == "health" || path == "health/":
		h.handleHealth(w, r)
	case path == "grammars" || path == "grammars/":
		h.handleGrammars(w, r)
	case path == "recognize" || path == "recognize/":
		h.handleRecognize(w, r)
	case path == "runs" || path == "runs/":
		h.handleRuns(w, r)
	case strings.HasPrefix(path, "runs/"):
		h.handleRun(w, r, strings.TrimPrefix(path, "runs/"))
	case path == "stats" || path == "stats/":
		h.handleStats(w, r)
	default:
		h.writeError(w, http.StatusNotFound, "not_found", "Endpoint not found", "")
	}
}

// handleRoot handles the root endpoint
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	info := map[string]interface{}{
		"name":    "chomsky API",
		"version": h.version,
		"endpoints": map[string][]string{
			"core": {
				"GET  /api/v1/health",
				"GET  /api/v1/stats",
			},
			"recognition": {
				"GET  /api/v1/grammars",
				"POST /api/v1/recognize",
				"WS   /api/v1/recognize/ws",
			},
			"history": {
				"GET  /api/v1/runs",
				"GET  /api/v1/runs/{id}",
			},
		},
	}
	h.writeJSON(w, http.StatusOK, info)
}

// handleHealth handles health check requests
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}

	report := h.health.CheckWithTimeout(5 * time.Second)

	status := http.StatusOK
	if report.Status == health.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, status, report)
}

// handleGrammars handles grammar listing
func (h *Handler) handleGrammars(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}

	grammars := h.service.Grammars()
	h.writeJSON(w, http.StatusOK, GrammarsResponse{
		Grammars: grammars,
		Total:    len(grammars),
	})
}

// handleRecognize handles recognition requests
func (h *Handler) handleRecognize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use POST", "")
		return
	}

	var req RecognizeRequest
	if err := h.readJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body", err.Error())
		return
	}
	if req.Grammar == "" {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Grammar name required", "")
		return
	}

	rec, err := h.service.Recognize(r.Context(), req.Grammar, req.Input)
	if err != nil {
		h.writeRecognitionError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, rec)
}

// writeRecognitionError maps engine error codes to HTTP status codes
func (h *Handler) writeRecognitionError(w http.ResponseWriter, err error) {
	switch {
	case ckerrors.HasCode(err, ckerrors.CodeNotFound):
		h.writeError(w, http.StatusNotFound, "grammar_not_found", "Grammar is not registered", err.Error())
	case ckerrors.HasCode(err, ckerrors.CodeInvalidInput),
		ckerrors.HasCode(err, ckerrors.CodeValidationFailed):
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Invalid recognition request", err.Error())
	case ckerrors.HasCode(err, ckerrors.CodeLexIllegal):
		h.writeError(w, http.StatusUnprocessableEntity, "lex_error", "Input could not be tokenized", err.Error())
	case ckerrors.HasCode(err, ckerrors.CodeParseDepth),
		ckerrors.HasCode(err, ckerrors.CodeParseSteps):
		h.writeError(w, http.StatusUnprocessableEntity, "limit_exceeded", "Recognition aborted by resource limit", err.Error())
	default:
		h.writeError(w, http.StatusInternalServerError, "internal_error", "Recognition failed", err.Error())
	}
}

// handleRuns handles run history listing
func (h *Handler) handleRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}

	filter := store.RunFilter{Limit: 50}
	q := r.URL.Query()
	if g := q.Get("grammar"); g != "" {
		filter.Grammar = g
	}
	if v := q.Get("accepted"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			filter.AcceptedOnly = true
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Offset = n
		}
	}

	runs, err := h.service.ListRuns(r.Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrPersistenceDisabled) {
			h.writeError(w, http.StatusServiceUnavailable, "history_disabled", "Run persistence is disabled", "")
			return
		}
		h.writeError(w, http.StatusInternalServerError, "internal_error", "Failed to list runs", err.Error())
		return
	}
	if runs == nil {
		runs = []*store.RunRecord{}
	}

	h.writeJSON(w, http.StatusOK, RunsResponse{Runs: runs, Total: len(runs)})
}

// handleRun handles single run retrieval
func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}

	record, err := h.service.GetRun(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrRunNotFound):
			h.writeError(w, http.StatusNotFound, "run_not_found", "Run not found", id)
		case errors.Is(err, service.ErrPersistenceDisabled):
			h.writeError(w, http.StatusServiceUnavailable, "history_disabled", "Run persistence is disabled", "")
		default:
			h.writeError(w, http.StatusInternalServerError, "internal_error", "Failed to load run", err.Error())
		}
		return
	}

	h.writeJSON(w, http.StatusOK, record)
}

// handleStats handles statistics requests
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}

	stats := map[string]interface{}{
		"version": h.version,
		"uptime":  time.Since(h.startTime).String(),
	}
	if runStats, err := h.service.RunStats(r.Context()); err == nil {
		stats["runs"] = runStats
	}
	if cacheStats := h.service.CacheStats(); cacheStats != nil {
		stats["cache"] = cacheStats
	}

	h.writeJSON(w, http.StatusOK, stats)
}

// Helper methods

func (h *Handler) readJSON(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message, details string) {
	resp := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}
	h.writeJSON(w, status, resp)
}
