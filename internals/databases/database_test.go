package database

import (
	"context"
	"testing"

	"github.com/jayehzzz/my-church-tracker/internals/helpers/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoMigrateCreatesAllTables(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{"people", "services", "attendance", "meetings", "meeting_attendance", "visitations", "activities"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.NoError(t, Ping(context.Background(), db))
}
