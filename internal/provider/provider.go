package provider

import (
	"context"
	"fmt"

	"slasshy/internal/media"
)

// Client aggregates the upstream catalogs behind one search entry point.
type Client struct {
	tmdb    *TMDB
	anilist *AniList
}

// New creates a catalog client. proxyBase may be empty for direct TMDB access.
func New(tmdbAPIKey, proxyBase string) *Client {
	var opts []TMDBOption
	if proxyBase != "" {
		opts = append(opts, WithProxy(proxyBase))
	}
	return &Client{
		tmdb:    NewTMDB(tmdbAPIKey, opts...),
		anilist: NewAniList(""),
	}
}

// NewWith wires pre-built upstream clients (used by tests).
func NewWith(tmdb *TMDB, anilist *AniList) *Client {
	return &Client{tmdb: tmdb, anilist: anilist}
}

// Search queries the catalog matching the requested kind and returns
// normalized records in upstream order.
func (c *Client) Search(ctx context.Context, kind media.Kind, query string, page int) ([]media.Media, error) {
	switch kind {
	case media.Movie:
		items, err := c.tmdb.SearchMovies(ctx, query, page)
		if err != nil {
			return nil, err
		}
		return NormalizeMovies(items), nil
	case media.TVShow:
		items, err := c.tmdb.SearchShows(ctx, query, page)
		if err != nil {
			return nil, err
		}
		return NormalizeShows(items), nil
	case media.Anime:
		items, err := c.anilist.SearchAnime(ctx, query)
		if err != nil {
			return nil, err
		}
		return NormalizeAnime(items), nil
	default:
		return nil, fmt.Errorf("unsupported content kind %v", kind)
	}
}
