package session

import (
	"testing"

	"slasshy/internal/media"
)

func TestSelectReplacesWholesale(t *testing.T) {
	s := New()

	first := s.Select(media.Media{ID: 1, Kind: media.TVShow, Title: "First"})
	s.SetSeason("3")
	s.SetEpisode("7")

	second := s.Select(media.Media{ID: 2, Kind: media.Movie, Title: "Second"})
	if s.Current == first {
		t.Error("selecting new media must replace the prior selection")
	}
	if second.Season != 1 || second.Episode != 1 {
		t.Errorf("new selection season/episode = %d/%d, want 1/1", second.Season, second.Episode)
	}
	if s.Current.Media.ID != 2 {
		t.Errorf("current media ID = %d, want 2", s.Current.Media.ID)
	}
}

func TestParseOrdinal(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"1", 1},
		{"5", 5},
		{" 12 ", 12},
		{"0", 1},
		{"-3", 1},
		{"abc", 1},
		{"", 1},
		{"2.5", 1},
	}

	for _, tt := range tests {
		if got := ParseOrdinal(tt.raw); got != tt.want {
			t.Errorf("ParseOrdinal(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestSetSeasonEpisodeClamp(t *testing.T) {
	s := New()
	s.Select(media.Media{ID: 1399, Kind: media.TVShow, Title: "Game of Thrones"})

	s.SetSeason("0")
	s.SetEpisode("nope")
	if s.Current.Season != 1 {
		t.Errorf("Season = %d, want clamped 1", s.Current.Season)
	}
	if s.Current.Episode != 1 {
		t.Errorf("Episode = %d, want clamped 1", s.Current.Episode)
	}

	s.SetSeason("2")
	s.SetEpisode("5")
	if s.Current.Season != 2 || s.Current.Episode != 5 {
		t.Errorf("season/episode = %d/%d, want 2/5", s.Current.Season, s.Current.Episode)
	}
}

func TestSetSeasonWithoutSelection(t *testing.T) {
	s := New()
	s.SetSeason("3") // must not panic
	if s.Current != nil {
		t.Error("no selection expected")
	}
}

func TestDirectEntry(t *testing.T) {
	s := New()
	sel := s.DirectEntry(21, media.Anime)

	if !sel.DirectEntry {
		t.Error("DirectEntry flag not set")
	}
	if sel.Media.ID != 21 || sel.Media.Kind != media.Anime {
		t.Errorf("media = %+v", sel.Media)
	}
	if sel.Media.Title != "" {
		t.Error("direct entry must not synthesize descriptive metadata")
	}
	if !sel.Media.EpisodicAnime() {
		t.Error("direct anime entry should default to episodic playback")
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.Select(media.Media{ID: 1, Kind: media.Movie, Title: "X"})
	s.Clear()
	if s.Current != nil {
		t.Error("Clear must drop the selection")
	}
}
