package main

import (
	"fmt"

	"github.com/jayehzzz/my-church-tracker/internals/configs"
	database "github.com/jayehzzz/my-church-tracker/internals/databases"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// RootOptions is shared by every subcommand.
type RootOptions struct {
	Verbose bool
	Config  configs.Config
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "churchctl",
		Short:         "Maintenance commands for the church tracker database",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configs.LoadEnv()
			opts.Config = configs.Load()
			if opts.Verbose {
				opts.Config.LogLevel = "debug"
			}
			configs.InitLogger(opts.Config)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewDBCommand(opts))
	return cmd
}

func (o *RootOptions) openDB() (*gorm.DB, error) {
	return database.ConnectDB(o.Config.DB)
}

func printf(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
	log.Debug().Msgf(format, args...)
}
