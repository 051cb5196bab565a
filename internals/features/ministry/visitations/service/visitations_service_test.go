package service

import (
	"context"
	"testing"

	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/visitations/model"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"
	"github.com/jayehzzz/my-church-tracker/internals/helpers/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortFollowUpsUndatedLast(t *testing.T) {
	rows := []model.VisitationModel{
		{Notes: "none"},
		{FollowUpDate: "2025-03-20", Notes: "late"},
		{FollowUpDate: "2025-03-01", Notes: "early"},
		{Notes: "none2"},
	}
	SortFollowUps(rows)
	assert.Equal(t, "early", rows[0].Notes)
	assert.Equal(t, "late", rows[1].Notes)
	assert.Equal(t, "none", rows[2].Notes)
	assert.Equal(t, "none2", rows[3].Notes)
}

func TestVisitationQueries(t *testing.T) {
	db := testdb.Open(t, &model.VisitationModel{})
	ctx := context.Background()
	p := uuid.New()
	for _, v := range []model.VisitationModel{
		{PersonID: p, VisitDate: "2025-02-01", Outcome: model.OutcomeNotHome, FollowUpRequired: true},
		{PersonID: p, VisitDate: "2025-03-01", Outcome: model.OutcomeWelcomedEncouraged, FollowUpRequired: true, FollowUpDate: "2025-03-08"},
		{PersonID: uuid.New(), VisitDate: "2025-03-05", Outcome: model.OutcomeInvitedToService},
	} {
		v := v
		require.NoError(t, db.Create(&v).Error)
	}

	byPerson, err := ListByPerson(ctx, db, p)
	require.NoError(t, err)
	require.Len(t, byPerson, 2)
	assert.Equal(t, "2025-03-01", byPerson[0].VisitDate)

	follow, err := RequiringFollowUp(ctx, db)
	require.NoError(t, err)
	require.Len(t, follow, 2)
	assert.Equal(t, "2025-03-08", follow[0].FollowUpDate)
	assert.Empty(t, follow[1].FollowUpDate)

	n, err := CountRequiringFollowUp(ctx, db)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	ranged, err := ListVisitations(ctx, db, helper.DateRange{From: "2025-03-01", To: "2025-03-31"})
	require.NoError(t, err)
	require.Len(t, ranged, 2)
	assert.Equal(t, "2025-03-05", ranged[0].VisitDate)
}
