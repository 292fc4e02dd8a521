package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"slasshy/internal/httputil"
	"slasshy/internal/media"
	"slasshy/internal/playback"
	"slasshy/internal/provider"
	"slasshy/internal/session"
	"slasshy/internal/ui"
)

// searchRun is the default command: slasshy <query>
func searchRun(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	if query == "" {
		var err error
		query, err = ui.Input("Search")
		if err != nil {
			return fmt.Errorf("no search query provided")
		}
	}

	kind, err := media.ParseKind(flagType)
	if err != nil {
		return err
	}

	debugf("searching %s for: %s", kind, query)

	catalog := provider.New(cfg.TMDBAPIKey, cfg.ProxyURL)
	sess := session.New()

	results, err := catalog.Search(context.Background(), kind, query, flagPage)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	sess.SetResults(results)

	if len(sess.Results) == 0 {
		fmt.Fprintln(os.Stderr, "No results found.")
		return nil
	}

	items := make([]string, len(sess.Results))
	for i, m := range sess.Results {
		items[i] = ui.ResultLine(m)
	}

	idx, err := ui.Select("Select", items)
	if err != nil {
		return err
	}

	sel := sess.Select(sess.Results[idx])
	debugf("selected: %s (ID: %d, kind: %s)", sel.Media.Title, sel.Media.ID, sel.Media.Kind)

	applyPlaybackFlags(sess)

	return playSelection(sess)
}

// applyPlaybackFlags feeds the raw flag values through the session's
// clamping so out-of-range input never reaches the URL builder.
func applyPlaybackFlags(sess *session.Session) {
	sess.SetSeason(flagSeason)
	sess.SetEpisode(flagEpisode)
	if sess.Current != nil {
		sess.Current.Dubbed = flagDub
	}
}

// playSelection derives the player deep-link for the current selection and
// hands it off: printed, emitted as JSON, or opened in the browser after a
// single availability probe.
func playSelection(sess *session.Session) error {
	sel := sess.Current
	url := playback.BuildURL(sel)
	if url == "" {
		return fmt.Errorf("nothing selected for playback")
	}
	debugf("player URL: %s", url)

	if flagJSON {
		out := map[string]interface{}{
			"title":   sel.Media.Title,
			"id":      sel.Media.ID,
			"kind":    sel.Media.Kind.String(),
			"season":  sel.Season,
			"episode": sel.Episode,
			"dubbed":  sel.Dubbed,
			"url":     url,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if flagURLOnly {
		fmt.Println(url)
		return nil
	}

	if card := ui.MediaCard(sel); card != "" {
		fmt.Println(card)
	}

	state, err := playback.Observe(context.Background(), httputil.NewClient(), url)
	if err != nil {
		return fmt.Errorf("checking availability: %w", err)
	}
	if state == playback.Failed {
		// Terminal event for this attempt; back to search, no retry.
		fmt.Fprintln(os.Stderr, "Content not available on the player. Try another title.")
		sess.Clear()
		return nil
	}

	if !cfg.Open {
		fmt.Println(url)
		return nil
	}

	if err := playback.Launch(url); err != nil {
		return fmt.Errorf("launching player: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Opened in browser.")
	return nil
}
