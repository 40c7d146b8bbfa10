package main

import (
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Maintain the page cache",
}

// -- cache purge --

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete expired cache entries",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		all, _ := cmd.Flags().GetBool("all")

		st, err := initStore(ctx, cfg)
		if err != nil {
			return eris.Wrap(err, "cache purge")
		}
		defer st.Close() //nolint:errcheck

		var n int
		if all {
			n, err = st.Clear(ctx)
		} else {
			n, err = st.DeleteExpired(ctx)
		}
		if err != nil {
			return eris.Wrap(err, "cache purge")
		}

		zap.L().Info("cache purged", zap.Int("deleted", n), zap.Bool("all", all))
		return emit(cmd, uuid.NewString(), result{
			data: map[string]int{"deleted": n},
			table: func() tabular {
				return tabular{header: table.Row{"Deleted"}, rows: []table.Row{{n}}}
			},
		})
	},
}

// -- cache migrate --

var cacheMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the cache schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Opening the store runs the migration.
		st, err := initStore(cmd.Context(), cfg)
		if err != nil {
			return eris.Wrap(err, "cache migrate")
		}
		defer st.Close() //nolint:errcheck

		zap.L().Info("cache schema ready", zap.String("driver", cfg.Store.Driver))
		return nil
	},
}

func init() {
	cachePurgeCmd.Flags().Bool("all", false, "delete every entry, not only expired ones")

	cacheCmd.AddCommand(cachePurgeCmd)
	cacheCmd.AddCommand(cacheMigrateCmd)
	rootCmd.AddCommand(cacheCmd)
}
