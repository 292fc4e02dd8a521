// Package provider implements the upstream catalog clients (TMDB REST,
// AniList GraphQL) and the normalization layer that reconciles their
// heterogeneous response shapes into the shared media model.
package provider

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/go-resty/resty/v2"

	"slasshy/internal/httputil"
)

// TMDB endpoint constants. The image base is the single place the relative
// poster/backdrop paths returned by TMDB are resolved to absolute URLs.
const (
	TMDBBaseURL      = "https://api.themoviedb.org/3"
	tmdbImageBaseURL = "https://image.tmdb.org/t/p/"
	tmdbPosterSize   = "w500"
	tmdbBackdropSize = "original"
)

// TMDBMovie is the subset of a TMDB movie search result the normalizer consumes.
type TMDBMovie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	ReleaseDate  string  `json:"release_date"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average"`
}

// TMDBShow is the subset of a TMDB TV search result the normalizer consumes.
type TMDBShow struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	FirstAirDate string  `json:"first_air_date"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average"`
}

// tmdbError is TMDB's error envelope.
type tmdbError struct {
	StatusMessage string `json:"status_message"`
	StatusCode    int    `json:"status_code"`
}

// TMDB is a thin client for the TMDB search API. When a proxy base URL is
// configured, requests are routed through the slasshy gateway so no API key is
// needed on this side.
type TMDB struct {
	client    *resty.Client
	apiKey    string
	baseURL   string
	proxyBase string
}

// TMDBOption customizes a TMDB client.
type TMDBOption func(*TMDB)

// WithTMDBBaseURL overrides the API base URL (used by tests).
func WithTMDBBaseURL(base string) TMDBOption {
	return func(t *TMDB) { t.baseURL = base }
}

// WithProxy routes search traffic through a slasshy gateway at the given base URL.
func WithProxy(base string) TMDBOption {
	return func(t *TMDB) { t.proxyBase = base }
}

// NewTMDB creates a TMDB client.
func NewTMDB(apiKey string, opts ...TMDBOption) *TMDB {
	t := &TMDB{
		client:  httputil.NewClient(),
		apiKey:  apiKey,
		baseURL: TMDBBaseURL,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// enabled reports whether the client has a way to reach the catalog.
func (t *TMDB) enabled() bool {
	return t.apiKey != "" || t.proxyBase != ""
}

// SearchMovies queries the movie catalog. Without a configured credential or
// proxy the search degrades to an empty result set with a logged diagnostic.
func (t *TMDB) SearchMovies(ctx context.Context, query string, page int) ([]TMDBMovie, error) {
	var out struct {
		Results []TMDBMovie `json:"results"`
	}
	if err := t.search(ctx, "movie", query, page, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// SearchShows queries the TV catalog.
func (t *TMDB) SearchShows(ctx context.Context, query string, page int) ([]TMDBShow, error) {
	var out struct {
		Results []TMDBShow `json:"results"`
	}
	if err := t.search(ctx, "tv", query, page, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (t *TMDB) search(ctx context.Context, contentType, query string, page int, out any) error {
	if !t.enabled() {
		log.Printf("[tmdb] no API key or proxy configured, search disabled")
		return nil
	}
	if page < 1 {
		page = 1
	}

	req := t.client.R().
		SetContext(ctx).
		SetQueryParam("query", query).
		SetQueryParam("page", strconv.Itoa(page)).
		SetResult(out).
		SetError(&tmdbError{})

	var url string
	if t.proxyBase != "" {
		url = fmt.Sprintf("%s/api/search/%s", t.proxyBase, contentType)
	} else {
		url = fmt.Sprintf("%s/search/%s", t.baseURL, contentType)
		req.SetQueryParam("api_key", t.apiKey)
	}

	resp, err := req.Get(url)
	if err != nil {
		return fmt.Errorf("searching %s for %q: %w", contentType, query, err)
	}
	if resp.IsError() {
		if e, ok := resp.Error().(*tmdbError); ok && e.StatusMessage != "" {
			return fmt.Errorf("searching %s: %s", contentType, e.StatusMessage)
		}
		return fmt.Errorf("searching %s: unexpected status %d", contentType, resp.StatusCode())
	}
	return nil
}
