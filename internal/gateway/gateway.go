// Package gateway implements the stateless TMDB proxy. It validates inbound
// search requests, attaches the server-held API key, and relays the upstream
// response verbatim. It holds no state across requests and never retries.
package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"slasshy/internal/httputil"
	"slasshy/internal/provider"
)

// Server proxies catalog requests to TMDB with a server-held credential.
type Server struct {
	apiKey   string
	upstream string
	client   *resty.Client
	log      zerolog.Logger
}

// Option customizes a Server.
type Option func(*Server)

// WithUpstream overrides the TMDB base URL (used by tests).
func WithUpstream(base string) Option {
	return func(s *Server) { s.upstream = base }
}

// New creates a gateway server. The gateway has no degraded mode: a missing
// credential is a refusal to start, not a warning.
func New(apiKey string, log zerolog.Logger, opts ...Option) (*Server, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("TMDB API key is required")
	}
	s := &Server{
		apiKey:   apiKey,
		upstream: provider.TMDBBaseURL,
		client:   httputil.NewClient(),
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Router builds the HTTP surface.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/search/{contentType}", s.handleSearch)
	r.Get("/api/{contentType}/{id}", s.handleDetails)

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "API is running",
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	contentType := chi.URLParam(r, "contentType")
	if !validContentType(contentType) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": `Invalid contentType. Must be "movie" or "tv"`,
		})
		return
	}

	query := r.URL.Query().Get("query")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Query parameter is required",
		})
		return
	}

	page := r.URL.Query().Get("page")
	if _, err := strconv.Atoi(page); err != nil {
		page = "1"
	}

	s.relay(w, fmt.Sprintf("%s/search/%s", s.upstream, contentType), map[string]string{
		"query": query,
		"page":  page,
	})
}

func (s *Server) handleDetails(w http.ResponseWriter, r *http.Request) {
	contentType := chi.URLParam(r, "contentType")
	if !validContentType(contentType) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": `Invalid contentType. Must be "movie" or "tv"`,
		})
		return
	}

	id := chi.URLParam(r, "id")
	if err := httputil.ValidateNumericID(id); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid id. Must be numeric",
		})
		return
	}

	s.relay(w, fmt.Sprintf("%s/%s/%s", s.upstream, contentType, id), nil)
}

// relay forwards one GET to the upstream catalog with the server credential
// attached, then mirrors the response: success bodies pass through unchanged,
// failures map to the stable {error, message} shape at the upstream status.
func (s *Server) relay(w http.ResponseWriter, url string, params map[string]string) {
	req := s.client.R().SetQueryParam("api_key", s.apiKey)
	for k, v := range params {
		req.SetQueryParam(k, v)
	}

	resp, err := req.Get(url)
	if err != nil {
		s.log.Error().Err(err).Msg("TMDB request failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to fetch data from TMDB",
			"message": err.Error(),
		})
		return
	}

	if resp.IsError() {
		status := resp.StatusCode()
		if status == 0 {
			status = http.StatusInternalServerError
		}
		s.log.Error().Int("status", status).Msg("TMDB error response")
		writeJSON(w, status, map[string]string{
			"error":   "Failed to fetch data from TMDB",
			"message": upstreamMessage(resp.Body()),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(resp.Body())
}

// upstreamMessage extracts a human-readable message from TMDB's error
// envelope, falling back to the raw body text.
func upstreamMessage(body []byte) string {
	var envelope struct {
		StatusMessage string `json:"status_message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.StatusMessage != "" {
		return envelope.StatusMessage
	}
	return strings.TrimSpace(string(body))
}

func validContentType(contentType string) bool {
	return contentType == "movie" || contentType == "tv"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
