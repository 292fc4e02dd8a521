package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"slasshy/internal/media"
	"slasshy/internal/provider"
	"slasshy/internal/recommend"
	"slasshy/internal/ui"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <query>",
	Short: "Get recommendations for a mood or theme",
	Long: `Recommend suggests up to three titles for a free-form query. Catalog
search results are preferred; when the catalog has nothing, the Gemini
API fills in (requires SLASSHY_GEMINI_API_KEY or gemini_api_key).`,
	Args: cobra.MinimumNArgs(1),
	RunE: recommendRun,
}

func recommendRun(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	kind, err := media.ParseKind(flagType)
	if err != nil {
		return err
	}

	catalog := provider.New(cfg.TMDBAPIKey, cfg.ProxyURL)
	engine := recommend.NewEngine(catalog, recommend.NewGemini(cfg.GeminiAPIKey, ""))

	recs, err := engine.Recommend(context.Background(), query, kind)
	if err != nil {
		return fmt.Errorf("getting recommendations: %w", err)
	}
	if len(recs) == 0 {
		fmt.Fprintln(os.Stderr, "No recommendations found.")
		return nil
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}

	fmt.Print(ui.RecommendationList(recs))
	return nil
}
