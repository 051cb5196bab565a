package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jayehzzz/my-church-tracker/internals/seeds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	root := NewRootCommand()
	for _, path := range [][]string{
		{"seed"},
		{"migrate", "remove-basonta-worker"},
		{"migrate", "unify-contacts"},
		{"stats", "refresh"},
		{"db", "automigrate"},
	} {
		cmd, rest, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Empty(t, rest, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestSeedFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("weeks: 10\nclear_first: false\npeople_file: from-yaml.json\n"), 0o600))

	cmd := NewSeedCommand(&RootOptions{})
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--weeks", "3", "--now", "2025-03-01"}))

	f := &seedFlags{}
	f.ConfigFile, _ = cmd.Flags().GetString("config")
	f.Weeks, _ = cmd.Flags().GetInt("weeks")
	f.Now, _ = cmd.Flags().GetString("now")
	f.ClearFirst, _ = cmd.Flags().GetBool("clear")
	f.PeopleFile, _ = cmd.Flags().GetString("people")

	cfg, err := f.build(cmd, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Weeks)
	assert.False(t, cfg.ClearFirst)
	assert.Equal(t, "from-yaml.json", cfg.PeopleFile)
	assert.Equal(t, seeds.DefaultActivitiesFile, cfg.ActivitiesFile)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), cfg.Now)
	assert.NotNil(t, cfg.Rand)
}
