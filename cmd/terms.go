package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/epforgpl/senat-cli/internal/model"
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "List the archived terms of office of the Senate",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			terms, err := a.client.TermsOfOffice(cmd.Context())
			if err != nil {
				return err
			}
			return emit(cmd, a.runID, result{
				data:  terms,
				table: func() tabular { return termsTable(terms) },
			})
		})
	},
}

func init() {
	rootCmd.AddCommand(termsCmd)
}

func termsTable(terms []model.TermOfOffice) tabular {
	tb := tabular{header: table.Row{"Term", "Start", "End"}}
	for _, t := range terms {
		tb.rows = append(tb.rows, table.Row{t.ID, t.StartDate, t.EndDate})
	}
	return tb
}
