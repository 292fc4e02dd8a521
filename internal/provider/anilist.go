package provider

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"slasshy/internal/httputil"
)

// AniListURL is the public AniList GraphQL endpoint. No credential is required.
const AniListURL = "https://graphql.anilist.co"

// anilistQuery fetches the fields the normalizer consumes for one page of
// anime search results.
const anilistQuery = `
query ($search: String) {
  Page(page: 1, perPage: 20) {
    media(search: $search, type: ANIME) {
      id
      title {
        romaji
        english
      }
      coverImage {
        large
      }
      averageScore
      startDate {
        year
      }
      format
    }
  }
}`

// AniListAnime is the subset of an AniList media object the normalizer consumes.
// Cover image URLs are already absolute and the score is on a 0-100 scale.
type AniListAnime struct {
	ID    int `json:"id"`
	Title struct {
		Romaji  string `json:"romaji"`
		English string `json:"english"`
	} `json:"title"`
	CoverImage struct {
		Large string `json:"large"`
	} `json:"coverImage"`
	AverageScore int `json:"averageScore"`
	StartDate    struct {
		Year int `json:"year"`
	} `json:"startDate"`
	Format string `json:"format"`
}

type anilistResponse struct {
	Data struct {
		Page struct {
			Media []AniListAnime `json:"media"`
		} `json:"Page"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// AniList is a thin client for the AniList GraphQL search API.
type AniList struct {
	client *resty.Client
	url    string
}

// NewAniList creates an AniList client. An empty url selects the public endpoint.
func NewAniList(url string) *AniList {
	if url == "" {
		url = AniListURL
	}
	return &AniList{
		client: httputil.NewClient(),
		url:    url,
	}
}

// SearchAnime queries AniList for anime matching the search term.
func (a *AniList) SearchAnime(ctx context.Context, query string) ([]AniListAnime, error) {
	body := map[string]any{
		"query":     anilistQuery,
		"variables": map[string]string{"search": query},
	}

	var out anilistResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&out).
		Post(a.url)
	if err != nil {
		return nil, fmt.Errorf("searching anime for %q: %w", query, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("searching anime: unexpected status %d", resp.StatusCode())
	}
	if len(out.Errors) > 0 {
		return nil, fmt.Errorf("searching anime: %s", out.Errors[0].Message)
	}

	return out.Data.Page.Media, nil
}
