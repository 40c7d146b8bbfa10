package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/epforgpl/senat-cli/internal/model"
)

var senatorsCmd = &cobra.Command{
	Use:   "senators",
	Short: "Scrape senators of the current term",
}

// -- senators list --

var senatorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List current senators with resolved genders",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			list, guesses, err := a.client.SenatorsList(cmd.Context())
			if err != nil {
				return err
			}
			return emit(cmd, a.runID, result{
				data:    list,
				guesses: guesses,
				table:   func() tabular { return listingTable(list) },
			})
		})
	},
}

// -- senators get --

var senatorsGetCmd = &cobra.Command{
	Use:   "get <senator-id>",
	Short: "Show one senator's detail record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			s, err := a.client.Senator(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emit(cmd, a.runID, result{data: s})
		})
	},
}

// -- senators all --

var senatorsAllCmd = &cobra.Command{
	Use:   "all",
	Short: "List senators with every senator's detail attached",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			records, guesses, failures, err := a.client.SenatorsAll(cmd.Context())
			if err != nil {
				return err
			}
			return emit(cmd, a.runID, result{
				data:     records,
				failures: failures,
				guesses:  guesses,
				table:    func() tabular { return recordsTable(records) },
			})
		})
	},
}

// -- senators votes --

var senatorsVotesCmd = &cobra.Command{
	Use:   "votes <senator-id>",
	Short: "Show how a senator voted, per sitting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sitting, _ := cmd.Flags().GetString("sitting")
		return withApp(cmd.Context(), func(a *app) error {
			if sitting != "" {
				votes, err := a.client.SenatorVotesAtSitting(cmd.Context(), args[0], sitting)
				if err != nil {
					return err
				}
				grouped := []model.SittingVotes{{SittingID: sitting, Votes: votes}}
				return emit(cmd, a.runID, result{
					data:  votes,
					table: func() tabular { return sittingVotesTable(grouped) },
				})
			}

			activity, failures, err := a.client.SenatorVotingActivity(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return emit(cmd, a.runID, result{
				data:     activity,
				failures: failures,
				table:    func() tabular { return sittingVotesTable(activity) },
			})
		})
	},
}

func init() {
	senatorsVotesCmd.Flags().String("sitting", "", "only this sitting's votes")

	senatorsCmd.AddCommand(senatorsListCmd)
	senatorsCmd.AddCommand(senatorsGetCmd)
	senatorsCmd.AddCommand(senatorsAllCmd)
	senatorsCmd.AddCommand(senatorsVotesCmd)
	rootCmd.AddCommand(senatorsCmd)
}

func listingTable(list []model.SenatorListing) tabular {
	tb := tabular{header: table.Row{"ID", "Name", "Gender", "End date"}}
	for _, s := range list {
		tb.rows = append(tb.rows, table.Row{s.ID, s.Name, s.Gender, s.EndDate})
	}
	return tb
}

func recordsTable(records []model.SenatorRecord) tabular {
	tb := tabular{header: table.Row{"ID", "Name", "Gender", "District", "Clubs", "Committees"}}
	for _, r := range records {
		var district, clubs, committees any = "-", "-", "-"
		if r.Info != nil {
			district = r.Info.OKW
			clubs = len(r.Info.Clubs)
			committees = len(r.Info.Committees)
		}
		tb.rows = append(tb.rows, table.Row{r.ID, r.Name, r.Gender, district, clubs, committees})
	}
	return tb
}

func sittingVotesTable(activity []model.SittingVotes) tabular {
	tb := tabular{header: table.Row{"Sitting", "Voting", "Vote"}}
	for _, s := range activity {
		for _, v := range s.Votes {
			tb.rows = append(tb.rows, table.Row{s.SittingID, v.VotingNo, v.Vote})
		}
	}
	return tb
}
