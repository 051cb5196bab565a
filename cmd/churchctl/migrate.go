package main

import (
	"time"

	database "github.com/jayehzzz/my-church-tracker/internals/databases"
	"github.com/jayehzzz/my-church-tracker/internals/seeds/migrations"

	"github.com/spf13/cobra"
)

func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run one-off data migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "remove-basonta-worker",
		Short: "Move people with the basonta_worker role to no_role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := rootOpts.openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)

			n, err := migrations.RemoveBasontaWorker(cmd.Context(), db, time.Now())
			if err != nil {
				return err
			}
			printf(cmd, "updated %d people from basonta_worker to no_role", n)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "unify-contacts",
		Short: "Copy legacy evangelism_contacts rows into people",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := rootOpts.openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)

			res, err := migrations.UnifyContacts(cmd.Context(), db)
			if err != nil {
				return err
			}
			printf(cmd, "scanned %d contacts: %d inserted, %d patched", res.Scanned, res.Inserted, res.Patched)
			return nil
		},
	})
	return cmd
}
