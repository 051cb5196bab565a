package service

import (
	"context"
	"testing"

	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/activities/dto"
	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/activities/model"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"
	"github.com/jayehzzz/my-church-tracker/internals/helpers/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListActivities(t *testing.T) {
	db := testdb.Open(t, &model.ActivityModel{})
	ctx := context.Background()
	for _, r := range []dto.CreateActivityRequest{
		{ActivityType: "Youth Outreach", ActivityDate: "2025-01-11", ParticipantsCount: 12},
		{ActivityType: "choir_rehearsal", ActivityDate: "2025-02-15"},
		{ActivityType: "youth outreach", ActivityDate: "2025-03-08"},
	} {
		a := r.ToModel()
		require.NoError(t, db.Create(&a).Error)
	}

	all, err := ListActivities(ctx, db, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2025-03-08", all[0].ActivityDate)

	outreach, err := ListActivities(ctx, db, Filter{Type: "Youth-Outreach"})
	require.NoError(t, err)
	assert.Len(t, outreach, 2)

	recent, err := ListActivities(ctx, db, Filter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "youth_outreach", recent[0].ActivityType)

	ranged, err := ListActivities(ctx, db, Filter{Range: helper.DateRange{From: "2025-02-01", To: "2025-02-28"}})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, "choir_rehearsal", ranged[0].ActivityType)
}
