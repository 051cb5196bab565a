package main

import (
	"math/rand"
	"time"

	database "github.com/jayehzzz/my-church-tracker/internals/databases"
	"github.com/jayehzzz/my-church-tracker/internals/seeds"

	"github.com/spf13/cobra"
)

type seedFlags struct {
	ConfigFile      string
	Now             string
	RandSeed        int64
	Weeks           int
	ClearFirst      bool
	PeopleFile      string
	VisitationsFile string
	ActivitiesFile  string
}

func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	f := &seedFlags{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill a development database with test data",
		Long: `Seed named people, weekly services with attendance, meetings,
visitations and activities. Refuses to run against production.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := seeds.Guard(rootOpts.Config); err != nil {
				return err
			}
			cfg, err := f.build(cmd, time.Now())
			if err != nil {
				return err
			}

			db, err := rootOpts.openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)
			if err := database.AutoMigrate(db); err != nil {
				return err
			}

			sum, err := seeds.Run(cmd.Context(), db, cfg)
			if err != nil {
				return err
			}
			printf(cmd, "seeded %d people (%d inviter links), %d services, %d attendance rows, %d meetings, %d meeting attendance rows, %d visitations, %d activities",
				sum.People, sum.InviterLinks, sum.Services, sum.Attendance, sum.Meetings, sum.MeetingAttendance, sum.Visitations, sum.Activities)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.ConfigFile, "config", "", "YAML seed config")
	fl.StringVar(&f.Now, "now", "", "reference date YYYY-MM-DD (default today)")
	fl.Int64Var(&f.RandSeed, "rand-seed", 0, "random seed for reproducible data")
	fl.IntVar(&f.Weeks, "weeks", 52, "weeks of history to generate")
	fl.BoolVar(&f.ClearFirst, "clear", true, "delete existing data first")
	fl.StringVar(&f.PeopleFile, "people", seeds.DefaultPeopleFile, "people fixture")
	fl.StringVar(&f.VisitationsFile, "visitations", seeds.DefaultVisitationsFile, "visitations fixture")
	fl.StringVar(&f.ActivitiesFile, "activities", seeds.DefaultActivitiesFile, "activities fixture")
	return cmd
}

// build layers defaults, then the YAML file, then explicitly set flags.
func (f *seedFlags) build(cmd *cobra.Command, now time.Time) (seeds.SeedConfig, error) {
	cfg := seeds.DefaultConfig(now)
	if f.ConfigFile != "" {
		var err error
		if cfg, err = seeds.LoadConfigFile(f.ConfigFile, cfg); err != nil {
			return cfg, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("now") {
		t, err := time.Parse("2006-01-02", f.Now)
		if err != nil {
			return cfg, err
		}
		cfg.Now = t
	}
	if fl.Changed("rand-seed") {
		cfg.Rand = rand.New(rand.NewSource(f.RandSeed))
	}
	if fl.Changed("weeks") {
		cfg.Weeks = f.Weeks
	}
	if fl.Changed("clear") {
		cfg.ClearFirst = f.ClearFirst
	}
	if fl.Changed("people") {
		cfg.PeopleFile = f.PeopleFile
	}
	if fl.Changed("visitations") {
		cfg.VisitationsFile = f.VisitationsFile
	}
	if fl.Changed("activities") {
		cfg.ActivitiesFile = f.ActivitiesFile
	}
	return cfg, nil
}
