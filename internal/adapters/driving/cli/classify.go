package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/parallax-labs/meetlens/internal/core/domain"
	"github.com/parallax-labs/meetlens/internal/core/services"
)

var classifyMoments bool

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Classify a transcript file without storing anything",
	Long: `Runs the rule-based classifier on a local transcript file. Useful for
previewing how a transcript would be categorised before uploading it.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyMoments, "moments", false, "also extract key moments")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading transcript: %w", err)
	}
	text := string(data)

	classifier := services.NewTranscriptClassifier()
	result := classifier.Classify(text, filepath.Base(args[0]))

	cmd.Printf("Category:   %s\n", result.Category.Display())
	cmd.Printf("Confidence: %.2f\n", result.Confidence)
	cmd.Printf("Reason:     %s\n", result.Reason)
	cmd.Printf("Relevant:   %s\n", yesNo(result.Category.PortfolioRelevant()))

	if !classifyMoments || result.Category.IsSkip() {
		return nil
	}

	moments := services.NewKeyMomentExtractor().Extract(text)
	if len(moments) == 0 {
		cmd.Println("\nNo key moments found.")
		return nil
	}
	cmd.Println()
	printMoments(cmd, moments)
	return nil
}

func printMoments(cmd *cobra.Command, moments []domain.KeyMoment) {
	for _, moment := range moments {
		cmd.Printf("  [%s] (%s, %d/10) %s\n", moment.Timestamp, moment.Type, moment.Importance, moment.Description)
	}
}
