package provider

import (
	"strconv"

	"slasshy/internal/media"
)

// The normalizers below are the single place provider-native shapes become
// media.Media records. They never fail: optional fields fall back to defaults
// and a record is dropped only when its mandatory id or title is absent.
// Upstream ordering is preserved.

// NormalizeMovies converts TMDB movie results.
func NormalizeMovies(items []TMDBMovie) []media.Media {
	var out []media.Media
	for _, item := range items {
		if item.ID == 0 || item.Title == "" {
			continue
		}
		out = append(out, media.Media{
			ID:          item.ID,
			Kind:        media.Movie,
			Title:       item.Title,
			PosterURL:   posterURL(item.PosterPath),
			BackdropURL: backdropURL(item.BackdropPath),
			Overview:    item.Overview,
			Year:        yearFromDate(item.ReleaseDate),
			Rating:      item.VoteAverage,
		})
	}
	return out
}

// NormalizeShows converts TMDB TV results.
func NormalizeShows(items []TMDBShow) []media.Media {
	var out []media.Media
	for _, item := range items {
		if item.ID == 0 || item.Name == "" {
			continue
		}
		out = append(out, media.Media{
			ID:          item.ID,
			Kind:        media.TVShow,
			Title:       item.Name,
			PosterURL:   posterURL(item.PosterPath),
			BackdropURL: backdropURL(item.BackdropPath),
			Overview:    item.Overview,
			Year:        yearFromDate(item.FirstAirDate),
			Rating:      item.VoteAverage,
		})
	}
	return out
}

// NormalizeAnime converts AniList results. Cover URLs are already absolute and
// are used verbatim; the 0-100 score is rescaled to the shared 0-10 range.
func NormalizeAnime(items []AniListAnime) []media.Media {
	var out []media.Media
	for _, item := range items {
		title := item.Title.English
		if title == "" {
			title = item.Title.Romaji
		}
		if item.ID == 0 || title == "" {
			continue
		}
		out = append(out, media.Media{
			ID:        item.ID,
			Kind:      media.Anime,
			Title:     title,
			PosterURL: item.CoverImage.Large,
			Year:      yearFromInt(item.StartDate.Year),
			Rating:    float64(item.AverageScore) / 10,
			Format:    media.ParseFormat(item.Format),
		})
	}
	return out
}

// yearFromDate extracts a display-ready four-digit year from a TMDB date
// string ("2019-04-24"). Absent or unparseable dates yield "N/A".
func yearFromDate(date string) string {
	if len(date) < 4 {
		return "N/A"
	}
	year := date[:4]
	if _, err := strconv.Atoi(year); err != nil {
		return "N/A"
	}
	return year
}

// yearFromInt converts AniList's integer release year to the same display form.
func yearFromInt(year int) string {
	if year < 1000 || year > 9999 {
		return "N/A"
	}
	return strconv.Itoa(year)
}

// posterURL resolves a TMDB relative poster path. An absent path yields no
// poster; the UI renders a placeholder glyph instead.
func posterURL(path string) string {
	if path == "" {
		return ""
	}
	return tmdbImageBaseURL + tmdbPosterSize + path
}

// backdropURL resolves a TMDB relative backdrop path at full resolution.
func backdropURL(path string) string {
	if path == "" {
		return ""
	}
	return tmdbImageBaseURL + tmdbBackdropSize + path
}
