// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"slasshy/internal/config"
	"slasshy/internal/keystore"
	"slasshy/internal/ui"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagType    string
	flagSeason  string
	flagEpisode string
	flagDub     bool
	flagPage    int
	flagURLOnly bool
	flagJSON    bool
	flagDebug   bool
	flagTMDBKey string
)

// cfg holds the loaded configuration (merged: defaults < config file < env < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "slasshy [query]",
	Short: "Search movies, TV shows, and anime and stream them in your browser",
	Long: `Slasshy searches the TMDB and AniList catalogs, lets you pick a title,
and opens it in the Videasy web player. It can also proxy TMDB search
server-side (slasshy serve) so the API key never reaches a client.`,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: loadConfig,
	RunE:              searchRun,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagType, "type", "t", "movie", "Content type: movie | tv | anime")
	rootCmd.PersistentFlags().StringVarP(&flagSeason, "season", "s", "1", "Season number (TV shows)")
	rootCmd.PersistentFlags().StringVarP(&flagEpisode, "episode", "e", "1", "Episode number (TV shows and anime)")
	rootCmd.PersistentFlags().BoolVar(&flagDub, "dub", false, "Prefer the dubbed audio track (anime)")
	rootCmd.PersistentFlags().IntVar(&flagPage, "page", 1, "Search result page")
	rootCmd.PersistentFlags().BoolVarP(&flagURLOnly, "url", "u", false, "Print the player URL instead of opening it")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output playback metadata as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagTMDBKey, "tmdb-key", "", "TMDB API key (saved for future runs)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration, then reports startup diagnostics.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagDebug {
		cfg.Debug = true
	}

	log.SetOutput(os.Stderr)
	if cfg.Debug {
		log.SetPrefix("[slasshy] ")
	} else {
		log.SetFlags(0)
	}

	// The --tmdb-key flag mirrors the original's key dialog: entered once,
	// cached in the credential store for future runs.
	if flagTMDBKey != "" {
		creds, err := keystore.Load()
		if err != nil {
			debugf("credential cache unavailable: %v", err)
		}
		creds.TMDBAPIKey = flagTMDBKey
		if err := keystore.Save(creds); err != nil {
			return fmt.Errorf("saving TMDB key: %w", err)
		}
		cfg.TMDBAPIKey = flagTMDBKey
	}
	if cfg.TMDBAPIKey == "" {
		creds, err := keystore.Load()
		if err != nil {
			debugf("credential cache unavailable: %v", err)
		} else if creds.TMDBAPIKey != "" {
			cfg.TMDBAPIKey = creds.TMDBAPIKey
		}
	}

	// Missing credentials degrade features; they never abort the CLI.
	for _, diag := range cfg.Diagnostics() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", diag)
	}

	if notice := cfg.Notification(); notice != "" && !flagJSON && !flagURLOnly {
		fmt.Fprintln(os.Stderr, ui.Notice(notice))
	}

	return nil
}

// debugf logs a message if debug mode is enabled.
func debugf(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		log.Printf(format, args...)
	}
}
