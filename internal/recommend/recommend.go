package recommend

import (
	"context"

	"slasshy/internal/media"
)

// maxRecommendations limits the list to the three strongest matches.
const maxRecommendations = 3

// Searcher is the catalog search dependency.
type Searcher interface {
	Search(ctx context.Context, kind media.Kind, query string, page int) ([]media.Media, error)
}

// Engine blends catalog search with generative fallback.
type Engine struct {
	catalog Searcher
	gemini  *Gemini
}

// NewEngine creates a recommendation engine.
func NewEngine(catalog Searcher, gemini *Gemini) *Engine {
	return &Engine{catalog: catalog, gemini: gemini}
}

// Recommend returns up to three suggestions for the query. Real catalog data
// wins when the search has results; otherwise the generative engine fills in.
func (e *Engine) Recommend(ctx context.Context, query string, kind media.Kind) ([]Recommendation, error) {
	results, err := e.catalog.Search(ctx, kind, query, 1)
	if err == nil && len(results) > 0 {
		return fromMedia(results), nil
	}

	if e.gemini == nil || !e.gemini.Configured() {
		if err != nil {
			return nil, err
		}
		return nil, nil
	}
	return e.gemini.Recommendations(ctx, query, kind.String())
}

// fromMedia maps normalized catalog records into recommendation form.
func fromMedia(results []media.Media) []Recommendation {
	if len(results) > maxRecommendations {
		results = results[:maxRecommendations]
	}
	out := make([]Recommendation, 0, len(results))
	for _, m := range results {
		desc := m.Overview
		if desc == "" {
			desc = "No description available"
		}
		out = append(out, Recommendation{
			Title:       m.Title,
			Year:        m.Year,
			Description: desc,
			Reason:      "TMDB Recommendation",
			FakeID:      m.ID,
		})
	}
	return out
}
