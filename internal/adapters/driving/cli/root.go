// Package cli provides the command-line interface for MeetLens.
// Commands wire the configured blob and storage backends into the core
// services; pure commands like classify run without any backend.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/parallax-labs/meetlens/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "meetlens",
	Short: "Meeting intelligence and relevance scoring",
	Long: `MeetLens groups meeting artifacts into logical records, classifies
transcripts into portfolio categories, extracts key moments, and scores
video-to-project link suggestions.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
