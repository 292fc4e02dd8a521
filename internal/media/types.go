// Package media defines shared types for the slasshy application.
package media

import (
	"fmt"
	"strings"
)

// Kind represents whether content is a movie, TV show, or anime.
type Kind int

const (
	Movie Kind = iota
	TVShow
	Anime
)

func (k Kind) String() string {
	switch k {
	case Movie:
		return "movie"
	case TVShow:
		return "tv"
	case Anime:
		return "anime"
	default:
		return "unknown"
	}
}

// ParseKind converts a user-supplied content type string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "movies":
		return Movie, nil
	case "tv", "tv-show", "show", "shows":
		return TVShow, nil
	case "anime":
		return Anime, nil
	default:
		return Movie, fmt.Errorf("unknown content type %q (valid: movie, tv, anime)", s)
	}
}

// Format classifies an anime release for playback purposes.
// AniList reports many formats (TV, TV_SHORT, MOVIE, OVA, ONA, SPECIAL, MUSIC);
// only the movie/episodic distinction matters downstream, so everything that is
// neither a movie nor a broadcast series collapses to FormatOther.
type Format string

const (
	FormatMovie Format = "MOVIE"
	FormatTV    Format = "TV"
	FormatOther Format = "OTHER"
)

// ParseFormat normalizes a raw AniList format string.
func ParseFormat(raw string) Format {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "MOVIE":
		return FormatMovie
	case "TV", "TV_SHORT":
		return FormatTV
	default:
		return FormatOther
	}
}

// Media is a normalized catalog record. It is constructed once by the
// normalizer (or synthesized for direct-ID entry) and never mutated.
type Media struct {
	ID          int     // Provider-native identifier (TMDB or AniList)
	Kind        Kind    // Movie, TVShow, or Anime
	Title       string  // Display title, English variant preferred
	PosterURL   string  // Absolute URL, empty when the provider has no poster
	BackdropURL string  // Absolute URL, empty when absent
	Overview    string  // Short description, empty when absent
	Year        string  // Four-digit year or "N/A"
	Rating      float64 // 0-10 scale, 0 means unrated
	Format      Format  // Anime only, empty otherwise
}

// EpisodicAnime reports whether the media is an anime that plays
// episode-by-episode rather than as a single feature.
func (m *Media) EpisodicAnime() bool {
	return m.Kind == Anime && m.Format != FormatMovie
}

// Selection holds the media chosen for playback plus the user-adjustable
// playback parameters. Exactly one Selection exists per viewing session;
// choosing new media replaces it wholesale.
type Selection struct {
	Media       *Media
	Season      int  // >= 1, TV shows only
	Episode     int  // >= 1, TV shows and episodic anime
	Dubbed      bool // Anime only
	DirectEntry bool // Raw-ID entry: descriptive metadata was never fetched
}

// EffectiveKind resolves how the selection plays out: an anime movie uses the
// movie-style player route even though it was found under the anime tab.
func (s *Selection) EffectiveKind() Kind {
	if s.Media == nil {
		return Movie
	}
	if s.Media.Kind == Anime && s.Media.Format == FormatMovie {
		return Movie
	}
	return s.Media.Kind
}
