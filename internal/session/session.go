// Package session owns the per-run viewing state: the current search results
// and the single active playback selection. All state lives in one explicitly
// owned struct mutated through its methods; there are no package globals.
package session

import (
	"strconv"
	"strings"

	"slasshy/internal/media"
)

// Session is the exclusively-owned state for one viewing session.
type Session struct {
	Results []media.Media
	Current *media.Selection
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// SetResults replaces the result set. A slow response landing after a newer
// search overwrites whatever is here; that race is accepted, not guarded.
func (s *Session) SetResults(results []media.Media) {
	s.Results = results
}

// Select makes the given media the active selection, replacing any prior one
// wholesale and resetting season and episode to their defaults.
func (s *Session) Select(m media.Media) *media.Selection {
	s.Current = &media.Selection{
		Media:   &m,
		Season:  1,
		Episode: 1,
	}
	return s.Current
}

// DirectEntry builds a selection from a raw provider ID without a prior
// search. Only the ID and kind are populated; metadata display is suppressed.
func (s *Session) DirectEntry(id int, kind media.Kind) *media.Selection {
	m := media.Media{
		ID:   id,
		Kind: kind,
		Year: "N/A",
	}
	if kind == media.Anime {
		// Without a catalog lookup the format is unknown; assume episodic,
		// matching how the original treats direct anime entry.
		m.Format = media.FormatTV
	}
	s.Current = &media.Selection{
		Media:       &m,
		Season:      1,
		Episode:     1,
		DirectEntry: true,
	}
	return s.Current
}

// Clear drops the active selection, returning the session to search mode.
func (s *Session) Clear() {
	s.Current = nil
}

// SetSeason applies a user-entered season number, clamped to >= 1.
func (s *Session) SetSeason(raw string) {
	if s.Current == nil {
		return
	}
	s.Current.Season = ParseOrdinal(raw)
}

// SetEpisode applies a user-entered episode number, clamped to >= 1.
func (s *Session) SetEpisode(raw string) {
	if s.Current == nil {
		return
	}
	s.Current.Episode = ParseOrdinal(raw)
}

// ParseOrdinal parses a season/episode input. Non-numeric or out-of-range
// values clamp to 1 so they can never reach the playback URL builder raw.
func ParseOrdinal(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
