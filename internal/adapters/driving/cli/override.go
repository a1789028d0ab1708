package cli

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/parallax-labs/meetlens/internal/core/domain"
)

var overrideDescription string

var overrideCmd = &cobra.Command{
	Use:   "override",
	Short: "Manage manual relevance overrides",
	Long: `Manual overrides pin a meeting's portfolio relevance regardless of what
the classifier decides. An override survives re-analysis.`,
}

var overrideSetCmd = &cobra.Command{
	Use:   "set [meeting-id] [true|false]",
	Short: "Set the relevance override for a meeting",
	Args:  cobra.ExactArgs(2),
	RunE:  runOverrideSet,
}

var overrideGetCmd = &cobra.Command{
	Use:   "get [meeting-id]",
	Short: "Show the relevance override for a meeting",
	Args:  cobra.ExactArgs(1),
	RunE:  runOverrideGet,
}

var overrideListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all relevance overrides",
	RunE:  runOverrideList,
}

func init() {
	overrideSetCmd.Flags().StringVar(&overrideDescription, "description", "", "reason for the override")
	overrideCmd.AddCommand(overrideSetCmd)
	overrideCmd.AddCommand(overrideGetCmd)
	overrideCmd.AddCommand(overrideListCmd)
	rootCmd.AddCommand(overrideCmd)
}

func runOverrideSet(cmd *cobra.Command, args []string) error {
	relevant, err := strconv.ParseBool(args[1])
	if err != nil {
		return fmt.Errorf("relevance must be true or false: %w", err)
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	setting := domain.OverrideSetting{
		MeetingID:           args[0],
		IsPortfolioRelevant: relevant,
		Description:         overrideDescription,
	}
	if err := a.meetings.SetOverride(cmd.Context(), setting); err != nil {
		return fmt.Errorf("setting override: %w", err)
	}

	cmd.Printf("Override set: %s -> %s\n", args[0], yesNo(relevant))
	return nil
}

func runOverrideGet(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	setting, err := a.meetings.GetOverride(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting override: %w", err)
	}

	cmd.Printf("Meeting:     %s\n", setting.MeetingID)
	cmd.Printf("Relevant:    %s\n", yesNo(setting.IsPortfolioRelevant))
	if setting.Description != "" {
		cmd.Printf("Description: %s\n", setting.Description)
	}
	cmd.Printf("Updated:     %s\n", setting.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func runOverrideList(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	settings, err := a.overrides.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing overrides: %w", err)
	}

	if len(settings) == 0 {
		cmd.Println("No overrides set.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Meeting", "Relevant", "Description", "Updated"})
	for _, setting := range settings {
		t.AppendRow(table.Row{
			setting.MeetingID,
			yesNo(setting.IsPortfolioRelevant),
			setting.Description,
			setting.UpdatedAt.Format("2006-01-02"),
		})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}
