// Package playback derives the external player deep-link for a selection and
// launches it. This package is the only place that knows the player's URL
// grammar.
package playback

import (
	"fmt"

	"slasshy/internal/media"
)

// External player constants.
const (
	playerBaseURL = "https://player.videasy.net"
	accentColor   = "E50914"
)

// BuildURL maps a playback selection to the external player deep-link.
// Pure and deterministic; it performs no validation of upstream existence.
// Returns "" when no media is selected, which callers treat as "do not play".
//
// Dispatch order: anime movie, episodic anime, movie, TV show. An anime whose
// format is MOVIE takes the movie-style anime route with no episode segment;
// TV shows additionally enable auto-advance and the in-player episode picker.
func BuildURL(sel *media.Selection) string {
	if sel == nil || sel.Media == nil {
		return ""
	}

	m := sel.Media
	switch {
	case m.Kind == media.Anime && m.Format == media.FormatMovie:
		return fmt.Sprintf("%s/anime/%d?dub=%t&color=%s&overlay=true",
			playerBaseURL, m.ID, sel.Dubbed, accentColor)
	case m.Kind == media.Anime:
		return fmt.Sprintf("%s/anime/%d/%d?dub=%t&color=%s&overlay=true",
			playerBaseURL, m.ID, sel.Episode, sel.Dubbed, accentColor)
	case m.Kind == media.Movie:
		return fmt.Sprintf("%s/movie/%d?color=%s&overlay=true",
			playerBaseURL, m.ID, accentColor)
	default:
		return fmt.Sprintf("%s/tv/%d/%d/%d?color=%s&overlay=true&nextEpisode=true&autoplayNextEpisode=true&episodeSelector=true",
			playerBaseURL, m.ID, sel.Season, sel.Episode, accentColor)
	}
}
