package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"slasshy/internal/httputil"
	"slasshy/internal/media"
	"slasshy/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play <id>",
	Short: "Play directly by provider ID, skipping search",
	Long: `Play starts playback from a raw provider ID: a TMDB ID for movies and
TV shows (e.g. 299534 for Avengers: Endgame) or an AniList ID for anime
(e.g. 21 for One Piece). No metadata is fetched; a wrong ID surfaces as
"content not available" from the player.`,
	Args: cobra.ExactArgs(1),
	RunE: playRun,
}

func playRun(cmd *cobra.Command, args []string) error {
	raw := args[0]
	if err := httputil.ValidateNumericID(raw); err != nil {
		return fmt.Errorf("invalid ID: %w", err)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid ID: %w", err)
	}

	kind, err := media.ParseKind(flagType)
	if err != nil {
		return err
	}

	sess := session.New()
	sess.DirectEntry(id, kind)
	applyPlaybackFlags(sess)

	debugf("direct entry: %s ID %d", kind, id)

	return playSelection(sess)
}
