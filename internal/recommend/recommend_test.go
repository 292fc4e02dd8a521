package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slasshy/internal/media"
)

type fakeSearcher struct {
	results []media.Media
	err     error
	calls   int
}

func (f *fakeSearcher) Search(_ context.Context, _ media.Kind, _ string, _ int) ([]media.Media, error) {
	f.calls++
	return f.results, f.err
}

func geminiServer(t *testing.T, recs []Recommendation, wrapInFence bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash:generateContent")
		assert.NotEmpty(t, r.URL.Query().Get("key"))

		payload, err := json.Marshal(recs)
		require.NoError(t, err)
		text := string(payload)
		if wrapInFence {
			text = "```json\n" + text + "\n```"
		}

		body := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}))
}

func TestRecommendPrefersCatalog(t *testing.T) {
	catalog := &fakeSearcher{results: []media.Media{
		{ID: 1, Title: "A", Year: "2001", Overview: "first"},
		{ID: 2, Title: "B", Year: "2002"},
		{ID: 3, Title: "C", Year: "2003"},
		{ID: 4, Title: "D", Year: "2004"},
	}}

	e := NewEngine(catalog, NewGemini("", ""))
	recs, err := e.Recommend(context.Background(), "space opera", media.Movie)
	require.NoError(t, err)
	require.Len(t, recs, 3, "catalog results are trimmed to three")

	assert.Equal(t, "A", recs[0].Title)
	assert.Equal(t, 1, recs[0].FakeID)
	assert.Equal(t, "TMDB Recommendation", recs[0].Reason)
	assert.Equal(t, "first", recs[0].Description)
	assert.Equal(t, "No description available", recs[1].Description)
}

func TestRecommendFallsBackToGemini(t *testing.T) {
	want := []Recommendation{
		{Title: "Dark", Year: "2017", Description: "Time travel tangles a town.", Reason: "Twisty like you asked", FakeID: 48213},
	}
	srv := geminiServer(t, want, false)
	defer srv.Close()

	e := NewEngine(&fakeSearcher{}, NewGemini("test-key", srv.URL))
	recs, err := e.Recommend(context.Background(), "something twisty", media.TVShow)
	require.NoError(t, err)
	assert.Equal(t, want, recs)
}

func TestRecommendParsesFencedJSON(t *testing.T) {
	want := []Recommendation{{Title: "Inception", Year: "2010", FakeID: 11111}}
	srv := geminiServer(t, want, true)
	defer srv.Close()

	g := NewGemini("test-key", srv.URL)
	recs, err := g.Recommendations(context.Background(), "dreams", "movie")
	require.NoError(t, err)
	assert.Equal(t, want, recs)
}

func TestRecommendSearchErrorWithoutGemini(t *testing.T) {
	catalog := &fakeSearcher{err: fmt.Errorf("upstream down")}
	e := NewEngine(catalog, NewGemini("", ""))

	_, err := e.Recommend(context.Background(), "x", media.Movie)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestGeminiNotConfigured(t *testing.T) {
	g := NewGemini("", "")
	assert.False(t, g.Configured())
	_, err := g.Recommendations(context.Background(), "x", "movie")
	require.Error(t, err)
}

func TestGeminiErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		body := map[string]any{"error": map[string]any{"message": "API key not valid", "code": 400}}
		json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	g := NewGemini("bad", srv.URL)
	_, err := g.Recommendations(context.Background(), "x", "movie")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`[]`, `[]`},
		{"```json\n[]\n```", `[]`},
		{"```\n[1]\n```", `[1]`},
		{"  [2] ", `[2]`},
	}
	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
