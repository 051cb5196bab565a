package main

import (
	"time"

	database "github.com/jayehzzz/my-church-tracker/internals/databases"
	"github.com/jayehzzz/my-church-tracker/internals/features/services/services/scheduler"
	"github.com/jayehzzz/my-church-tracker/internals/features/services/services/service"

	"github.com/spf13/cobra"
)

func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Service statistics maintenance",
	}

	var days int
	refresh := &cobra.Command{
		Use:   "refresh",
		Short: "Recompute service snapshots from attendance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := rootOpts.openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)

			n := scheduler.RunOnce(cmd.Context(), service.NewStatsService(db), time.Now(), days)
			printf(cmd, "refreshed %d services", n)
			return nil
		},
	}
	refresh.Flags().IntVar(&days, "days", 14, "refresh services dated within this many days")
	cmd.AddCommand(refresh)
	return cmd
}
