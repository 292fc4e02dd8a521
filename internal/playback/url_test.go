package playback

import (
	"strings"
	"testing"

	"slasshy/internal/media"
)

func sel(m media.Media) *media.Selection {
	return &media.Selection{Media: &m, Season: 1, Episode: 1}
}

func TestBuildURLMovie(t *testing.T) {
	got := BuildURL(sel(media.Media{ID: 299534, Kind: media.Movie}))
	want := "https://player.videasy.net/movie/299534?color=E50914&overlay=true"
	if got != want {
		t.Errorf("BuildURL = %q, want %q", got, want)
	}
}

func TestBuildURLTVShow(t *testing.T) {
	s := sel(media.Media{ID: 1399, Kind: media.TVShow})
	s.Season = 2
	s.Episode = 5

	got := BuildURL(s)
	want := "https://player.videasy.net/tv/1399/2/5?color=E50914&overlay=true&nextEpisode=true&autoplayNextEpisode=true&episodeSelector=true"
	if got != want {
		t.Errorf("BuildURL = %q, want %q", got, want)
	}
	if !strings.Contains(got, "/2/5?") {
		t.Error("season and episode missing from path")
	}
	if !strings.Contains(got, "autoplayNextEpisode=true") || !strings.Contains(got, "episodeSelector=true") {
		t.Error("TV URLs must enable auto-advance and the episode picker")
	}
}

func TestBuildURLAnimeMovie(t *testing.T) {
	s := sel(media.Media{ID: 199, Kind: media.Anime, Format: media.FormatMovie})
	s.Episode = 9 // must be ignored for anime movies
	s.Dubbed = true

	got := BuildURL(s)
	want := "https://player.videasy.net/anime/199?dub=true&color=E50914&overlay=true"
	if got != want {
		t.Errorf("BuildURL = %q, want %q", got, want)
	}
	if strings.Contains(got, "/199/") {
		t.Error("anime movie URL must not contain an episode segment")
	}
}

func TestBuildURLAnimeEpisodic(t *testing.T) {
	s := sel(media.Media{ID: 21, Kind: media.Anime, Format: media.FormatTV})
	s.Episode = 1089

	got := BuildURL(s)
	want := "https://player.videasy.net/anime/21/1089?dub=false&color=E50914&overlay=true"
	if got != want {
		t.Errorf("BuildURL = %q, want %q", got, want)
	}
}

func TestBuildURLAnimeOtherFormatIsEpisodic(t *testing.T) {
	s := sel(media.Media{ID: 5, Kind: media.Anime, Format: media.FormatOther})
	got := BuildURL(s)
	if !strings.Contains(got, "/anime/5/1?") {
		t.Errorf("OTHER-format anime should use the episodic route, got %q", got)
	}
}

func TestBuildURLNoSelection(t *testing.T) {
	if got := BuildURL(nil); got != "" {
		t.Errorf("BuildURL(nil) = %q, want empty", got)
	}
	if got := BuildURL(&media.Selection{}); got != "" {
		t.Errorf("BuildURL with no media = %q, want empty", got)
	}
}

func TestBuildURLDeterministic(t *testing.T) {
	s := sel(media.Media{ID: 21, Kind: media.Anime, Format: media.FormatTV})
	s.Episode = 3
	s.Dubbed = true

	first := BuildURL(s)
	for i := 0; i < 10; i++ {
		if got := BuildURL(s); got != first {
			t.Fatalf("BuildURL not deterministic: %q vs %q", got, first)
		}
	}
}
