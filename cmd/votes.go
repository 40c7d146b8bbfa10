package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/epforgpl/senat-cli/internal/model"
)

var votesCmd = &cobra.Command{
	Use:   "votes",
	Short: "Scrape voting results",
}

// -- votes results --

var votesResultsCmd = &cobra.Command{
	Use:   "results <results-people-url>",
	Short: "Show the per-person results of one voting",
	Long:  "Reads the per-person results page a voting links to (results_people_url in `sittings votings` output).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			res, err := a.client.VoteResults(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emit(cmd, a.runID, result{
				data:  res,
				table: func() tabular { return voteResultsTable(res) },
			})
		})
	},
}

func init() {
	votesCmd.AddCommand(votesResultsCmd)
	rootCmd.AddCommand(votesCmd)
}

func voteResultsTable(res *model.VoteResults) tabular {
	tb := tabular{header: table.Row{"Family name", "Initials", "Vote"}}
	for _, v := range res.Votes {
		tb.rows = append(tb.rows, table.Row{v.FamilyName, strings.Join(v.Initials, "."), v.Vote})
	}
	return tb
}
