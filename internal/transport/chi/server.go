// Package chi exposes the parse pipeline over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mkommar/schedparse/internal/domain"
	healthuc "github.com/mkommar/schedparse/internal/usecase/health"
)

// ErrorCode identifies a machine-readable error class in responses.
type ErrorCode string

const (
	CodeBadRequest              ErrorCode = "bad_request"
	CodeValidationFailed        ErrorCode = "validation_failed"
	CodeNoMatchingTemplate      ErrorCode = "no_matching_template"
	CodeExtractionFailed        ErrorCode = "extraction_failed"
	CodeEmbeddingProviderError  ErrorCode = "embedding_provider_error"
	CodeCompletionProviderError ErrorCode = "completion_provider_error"
	CodeInternalError           ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Parser runs the parse pipeline for one query.
type Parser interface {
	Parse(ctx context.Context, query, model string) (domain.ParseResult, error)
}

// Seeder loads the template catalog examples into the vector store.
type Seeder interface {
	Seed(ctx context.Context) (int, error)
}

// HealthChecker reports component availability.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server is the HTTP API server.
type Server struct {
	parser        Parser
	seeder        Seeder
	health        HealthChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(parser Parser, seeder Seeder, health HealthChecker, logger *zap.Logger) *Server {
	s := &Server{
		parser: parser,
		seeder: seeder,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrNoMatch, http.StatusNotFound, CodeNoMatchingTemplate),
		sentinelHandler(domain.ErrExtractionFailed, http.StatusUnprocessableEntity, CodeExtractionFailed),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, CodeEmbeddingProviderError),
		sentinelHandler(domain.ErrCompletionProviderError, http.StatusBadGateway, CodeCompletionProviderError),
	}
	return s
}

// RegisterRoutes mounts the API routes on the given router.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/parse", s.ParseQuery)
		r.Post("/seed", s.SeedExamples)
	})
}

// ParseRequest is the body of POST /api/v1/parse.
type ParseRequest struct {
	Query string `json:"query"`
	Model string `json:"model,omitempty"` // optional extraction model override
}

// ParseQuery handles POST /api/v1/parse.
func (s *Server) ParseQuery(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Query == "" {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "Query is required and must be a string")
		return
	}

	result, err := s.parser.Parse(r.Context(), req.Query, req.Model)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// SeedResponse is the body of a successful POST /api/v1/seed.
type SeedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SeedExamples handles POST /api/v1/seed.
func (s *Server) SeedExamples(w http.ResponseWriter, r *http.Request) {
	count, err := s.seeder.Seed(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SeedResponse{
		Success: true,
		Message: fmt.Sprintf("Seeded %d example queries", count),
		Count:   count,
	})
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidQuery,
		domain.ErrNoMatch,
		domain.ErrExtractionFailed,
		domain.ErrEmbeddingProviderError,
		domain.ErrCompletionProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
