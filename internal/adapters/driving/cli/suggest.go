package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/parallax-labs/meetlens/internal/core/domain"
	"github.com/parallax-labs/meetlens/internal/core/services"
)

var (
	suggestVideosFile   string
	suggestProjectsFile string
	suggestExistingFile string
	suggestVideoID      string
	suggestProjectID    string
	suggestMinScore     float64
	suggestIncludeLink  bool
	suggestLimit        int
	suggestJSON         bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Score video-to-project link suggestions",
	Long: `Scores every video/project pair from the given entity files and prints
ranked link suggestions. Entity files are JSON arrays.`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&suggestVideosFile, "videos", "", "JSON file of video entities (required)")
	suggestCmd.Flags().StringVar(&suggestProjectsFile, "projects", "", "JSON file of project entities (required)")
	suggestCmd.Flags().StringVar(&suggestExistingFile, "existing", "", "JSON file of existing links")
	suggestCmd.Flags().StringVar(&suggestVideoID, "video", "", "restrict to one video id")
	suggestCmd.Flags().StringVar(&suggestProjectID, "project", "", "restrict to one project id")
	suggestCmd.Flags().Float64Var(&suggestMinScore, "min-score", 0, "minimum score (default from config)")
	suggestCmd.Flags().BoolVar(&suggestIncludeLink, "include-linked", false, "include already-linked pairs")
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 0, "maximum number of suggestions")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "output suggestions as JSON")
	_ = suggestCmd.MarkFlagRequired("videos")
	_ = suggestCmd.MarkFlagRequired("projects")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	var videos []domain.VideoEntity
	if err := readJSONFile(suggestVideosFile, &videos); err != nil {
		return err
	}
	var projects []domain.ProjectEntity
	if err := readJSONFile(suggestProjectsFile, &projects); err != nil {
		return err
	}
	var existing []domain.ExistingLink
	if suggestExistingFile != "" {
		if err := readJSONFile(suggestExistingFile, &existing); err != nil {
			return err
		}
	}

	minScore := suggestMinScore
	if !cmd.Flags().Changed("min-score") {
		if cfg, err := loadConfigQuiet(); err == nil {
			minScore = cfg.Suggestions.MinScore
		}
	}

	suggester := services.NewSuggestionService(services.NewProjectVideoMatcher())
	filters := domain.SuggestionFilters{
		VideoID:       suggestVideoID,
		ProjectID:     suggestProjectID,
		MinScore:      minScore,
		IncludeLinked: suggestIncludeLink,
		Limit:         suggestLimit,
	}

	suggestions, err := suggester.SuggestLinks(cmd.Context(), videos, projects, existing, filters)
	if err != nil {
		return fmt.Errorf("scoring suggestions: %w", err)
	}

	if suggestJSON {
		data, err := json.MarshalIndent(suggestions, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal suggestions: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(suggestions) == 0 {
		cmd.Println("No suggestions above the minimum score.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Video", "Project", "Score", "Type", "Confidence", "Reasons"})
	for _, s := range suggestions {
		t.AppendRow(table.Row{
			s.VideoID,
			s.ProjectID,
			fmt.Sprintf("%.1f", s.Score),
			s.LinkType,
			s.Confidence,
			strings.Join(s.Reasons, "; "),
		})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
