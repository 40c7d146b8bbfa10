package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/epforgpl/senat-cli/internal/model"
)

var sittingsCmd = &cobra.Command{
	Use:   "sittings",
	Short: "Scrape Senate sittings, their votings and transcripts",
}

// -- sittings list --

var sittingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every sitting of the current term",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			sittings, err := a.client.Sittings(cmd.Context())
			if err != nil {
				return err
			}
			return emit(cmd, a.runID, result{
				data:  sittings,
				table: func() tabular { return sittingsTable(sittings) },
			})
		})
	},
}

// -- sittings votings --

var sittingsVotingsCmd = &cobra.Command{
	Use:   "votings <sitting-id>",
	Short: "List the votings of a sitting, across all its days",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			events, err := a.client.SittingVotings(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emit(cmd, a.runID, result{
				data:  events,
				table: func() tabular { return votingsTable(events) },
			})
		})
	},
}

// -- sittings stenogram --

var sittingsStenogramCmd = &cobra.Command{
	Use:   "stenogram <sitting-id>",
	Short: "Print the joined transcript of a sitting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			st, err := a.client.Stenogram(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emit(cmd, a.runID, result{data: st})
		})
	},
}

// -- sittings speech --

var sittingsSpeechCmd = &cobra.Command{
	Use:   "speech <sitting-id> <speech-ref>",
	Short: "Print one speech cut out of a sitting's transcript",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetBool("keep-presiding")
		return withApp(cmd.Context(), func(a *app) error {
			speech, err := a.client.Speech(cmd.Context(), args[0], args[1], !keep)
			if err != nil {
				return err
			}
			return emit(cmd, a.runID, result{data: map[string]string{
				"sitting_id": args[0],
				"speech_ref": args[1],
				"text":       speech,
			}})
		})
	},
}

func init() {
	sittingsSpeechCmd.Flags().Bool("keep-presiding", false, "keep the presiding officer's closing words")

	sittingsCmd.AddCommand(sittingsListCmd)
	sittingsCmd.AddCommand(sittingsVotingsCmd)
	sittingsCmd.AddCommand(sittingsStenogramCmd)
	sittingsCmd.AddCommand(sittingsSpeechCmd)
	rootCmd.AddCommand(sittingsCmd)
}

func sittingsTable(sittings []model.Sitting) tabular {
	tb := tabular{header: table.Row{"ID", "No", "Name", "Dates"}}
	for _, s := range sittings {
		tb.rows = append(tb.rows, table.Row{s.ID, s.Number, s.Name, strings.Join(s.Dates, ", ")})
	}
	return tb
}

func votingsTable(events []model.VotingEvent) tabular {
	tb := tabular{header: table.Row{"No", "Day", "Action", "Motion"}}
	for _, e := range events {
		tb.rows = append(tb.rows, table.Row{e.No, e.Day, e.Action, truncate(e.Motion, 60)})
	}
	return tb
}
