package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/parallax-labs/meetlens/internal/core/domain"
)

var (
	meetingsJSON  bool
	meetingsWatch bool
)

var meetingsCmd = &cobra.Command{
	Use:   "meetings",
	Short: "List meetings derived from stored artifacts",
	Long: `Scans the artifact store, groups files into meeting records, and
merges cached analyses and manual overrides into each record.`,
	RunE: runMeetings,
}

func init() {
	meetingsCmd.Flags().BoolVar(&meetingsJSON, "json", false, "output records as JSON")
	meetingsCmd.Flags().BoolVar(&meetingsWatch, "watch", false, "re-list whenever stored artifacts change")
	rootCmd.AddCommand(meetingsCmd)
}

func runMeetings(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()

	if !meetingsWatch {
		listing, err := a.meetings.ListMeetings(ctx)
		if err != nil {
			return fmt.Errorf("listing meetings: %w", err)
		}
		return outputListing(cmd, listing)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := a.meetings.WatchInvalidate(ctx)
	if events == nil {
		return errors.New("artifact store does not support watching")
	}

	for {
		listing, err := a.meetings.ListMeetings(ctx)
		if err != nil {
			return fmt.Errorf("listing meetings: %w", err)
		}
		if err := outputListing(cmd, listing); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
		}
	}
}

func outputListing(cmd *cobra.Command, listing *domain.MeetingListing) error {
	if meetingsJSON {
		data, err := json.MarshalIndent(listing, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal listing: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(listing.Meetings) == 0 {
		cmd.Println("No meetings found.")
	} else {
		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"ID", "Date", "Title", "Category", "Relevant", "Artifacts"})
		for _, m := range listing.Meetings {
			t.AppendRow(table.Row{
				m.ID,
				m.DateRecorded,
				m.Title,
				m.Category,
				yesNo(m.IsPortfolioRelevant),
				artifactFlags(m),
			})
		}
		t.SetStyle(table.StyleLight)
		t.Render()
	}

	for _, d := range listing.Diagnostics {
		cmd.PrintErrf("warning: %s [%s]: %s\n", d.Key, d.Stage, d.Detail)
	}
	return nil
}

// artifactFlags renders which slots a record fills, e.g. "V T -".
func artifactFlags(m domain.MeetingRecord) string {
	flags := []byte{'-', '-', '-'}
	if m.Video != nil {
		flags[0] = 'V'
	}
	if m.Transcript != nil {
		flags[1] = 'T'
	}
	if m.Summary != nil {
		flags[2] = 'S'
	}
	return fmt.Sprintf("%c %c %c", flags[0], flags[1], flags[2])
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
