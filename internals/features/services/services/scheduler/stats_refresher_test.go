package scheduler

import (
	"testing"

	attendanceModel "github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/model"
	"github.com/jayehzzz/my-church-tracker/internals/features/services/services/model"
	"github.com/jayehzzz/my-church-tracker/internals/helpers/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartStatsRefresherDisabled(t *testing.T) {
	c, err := StartStatsRefresher(nil, RefresherConfig{})
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestStartStatsRefresherRejectsBadSchedule(t *testing.T) {
	db := testdb.Open(t, &model.ServiceModel{}, &attendanceModel.AttendanceModel{})
	_, err := StartStatsRefresher(db, RefresherConfig{CronSchedule: "every tuesday"})
	assert.Error(t, err)
}

func TestStartStatsRefresherSchedules(t *testing.T) {
	db := testdb.Open(t, &model.ServiceModel{}, &attendanceModel.AttendanceModel{})
	c, err := StartStatsRefresher(db, RefresherConfig{CronSchedule: "30 3 * * *"})
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Stop()
	assert.Len(t, c.Entries(), 1)
}
