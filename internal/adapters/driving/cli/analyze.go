package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/parallax-labs/meetlens/internal/core/domain"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [meeting-id]",
	Short: "Classify a meeting's transcript and extract key moments",
	Long: `Runs the transcript classifier and key moment extractor for the given
meeting and persists the result. Returns the cached analysis when one
already exists.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output insights as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	insights, err := a.meetings.Analyze(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("analyzing meeting: %w", err)
	}

	if analyzeJSON {
		data, err := json.MarshalIndent(insights, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal insights: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printInsights(cmd, insights)
	return nil
}

func printInsights(cmd *cobra.Command, insights *domain.MeetingInsights) {
	cmd.Printf("Category:   %s\n", insights.Category.Display())
	cmd.Printf("Confidence: %.2f\n", insights.Confidence)
	cmd.Printf("Reason:     %s\n", insights.Reason)
	cmd.Printf("Relevant:   %s\n", yesNo(insights.PortfolioRelevant))
	if len(insights.Participants) > 0 {
		cmd.Printf("Participants: %s\n", strings.Join(insights.Participants, ", "))
	}

	if len(insights.KeyMoments) == 0 {
		return
	}
	cmd.Println()
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Time", "Type", "Importance", "Moment"})
	for _, moment := range insights.KeyMoments {
		t.AppendRow(table.Row{moment.Timestamp, moment.Type, moment.Importance, moment.Description})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
