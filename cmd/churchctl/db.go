package main

import (
	database "github.com/jayehzzz/my-church-tracker/internals/databases"

	"github.com/spf13/cobra"
)

func NewDBCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database schema commands",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "automigrate",
		Short: "Create or update tables for every model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := rootOpts.openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.AutoMigrate(db); err != nil {
				return err
			}
			printf(cmd, "migrated %d tables", len(database.Models()))
			return nil
		},
	})
	return cmd
}
