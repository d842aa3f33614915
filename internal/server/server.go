// internal/server/server.go

// Package server exposes the trained model over HTTP: a recommendation
// endpoint, health probes, and Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lokeshpolkam/college-recommendation-system/internal/common/config"
	"github.com/lokeshpolkam/college-recommendation-system/internal/common/errors"
	"github.com/lokeshpolkam/college-recommendation-system/internal/common/logger"
	"github.com/lokeshpolkam/college-recommendation-system/internal/common/metrics"
	"github.com/lokeshpolkam/college-recommendation-system/internal/models"
	"github.com/lokeshpolkam/college-recommendation-system/internal/query"
)

// Server serves recommendations from a loaded model. The model is an
// immutable snapshot; nothing mutates it after construction, so handlers
// read it without locking.
type Server struct {
	cfg     config.ServerConfig
	logger  logger.Logger
	model   *models.Model
	cache   *ResponseCache
	errs    *errors.ErrorHandler
	httpSrv *http.Server
}

func New(cfg config.ServerConfig, log logger.Logger, model *models.Model, cache *ResponseCache) *Server {
	s := &Server{
		cfg:    cfg,
		logger: log,
		model:  model,
		cache:  cache,
		errs:   errors.NewErrorHandler(log),
	}
	s.httpSrv = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.Router(),
		ReadTimeout:  config.GetDuration(cfg.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.WriteTimeout),
	}
	return s
}

// Router builds the HTTP mux. Exposed for handler tests.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/recommend", s.handleRecommend)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info("Recommendation server listening", map[string]interface{}{
		"address": s.cfg.Address,
	})
	return s.httpSrv.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// recommendResponse is the wire shape of a successful query.
type recommendResponse struct {
	Results []query.Recommendation `json:"results"`
	Count   int                    `json:"count"`
	Model   struct {
		RunID     string `json:"runId"`
		Timestamp string `json:"timestamp"`
	} `json:"model"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	req, err := parseRecommendRequest(r)
	if err != nil {
		metrics.RecommendRequests.WithLabelValues("invalid").Inc()
		s.errs.WriteHTTPError(w, r, err)
		return
	}

	if body, ok := s.cache.Get(r.Context(), req); ok {
		metrics.RecommendRequests.WithLabelValues("ok").Inc()
		metrics.RecommendDuration.Observe(time.Since(start).Seconds())
		writeJSONBytes(w, body)
		return
	}

	results, err := query.Recommend(s.model, req)
	if err != nil {
		outcome := "error"
		if code, ok := errors.CodeOf(err); ok && code == errors.ErrCodeInvalidQueryInput {
			outcome = "invalid"
		}
		metrics.RecommendRequests.WithLabelValues(outcome).Inc()
		s.errs.WriteHTTPError(w, r, err)
		return
	}

	resp := recommendResponse{Results: results, Count: len(results)}
	resp.Model.RunID = s.model.Metadata.RunID
	resp.Model.Timestamp = s.model.Metadata.Timestamp

	body, err := json.Marshal(resp)
	if err != nil {
		metrics.RecommendRequests.WithLabelValues("error").Inc()
		s.errs.WriteHTTPError(w, r, err)
		return
	}
	s.cache.Set(r.Context(), req, body)

	metrics.RecommendRequests.WithLabelValues("ok").Inc()
	metrics.RecommendDuration.Observe(time.Since(start).Seconds())
	writeJSONBytes(w, body)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":       "healthy",
		"time":         time.Now().UTC().Format(time.RFC3339),
		"combinations": s.model.Metadata.TotalCombinations,
		"modelRunId":   s.model.Metadata.RunID,
	})
}

// parseRecommendRequest validates query parameters. A non-numeric rank is
// the same invalid-input condition as a non-positive one.
func parseRecommendRequest(r *http.Request) (query.Request, error) {
	q := r.URL.Query()

	rawRank := strings.TrimSpace(q.Get("rank"))
	if rawRank == "" {
		return query.Request{}, errors.NewInvalidQueryInputError("rank is required")
	}
	rank, err := strconv.Atoi(rawRank)
	if err != nil {
		return query.Request{}, errors.NewInvalidQueryInputError("rank must be an integer")
	}

	// Category labels in the model are uppercase; accept any casing here.
	req := query.Request{
		Category:         strings.ToUpper(strings.TrimSpace(q.Get("category"))),
		Rank:             rank,
		BranchPreference: strings.TrimSpace(q.Get("branch")),
	}
	return req, req.Validate()
}

func writeJSONBytes(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
