package service

import (
	"context"
	"testing"
	"time"

	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/meetings/model"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"
	"github.com/jayehzzz/my-church-tracker/internals/helpers/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	return testdb.Open(t, &model.MeetingModel{}, &model.MeetingAttendanceModel{})
}

func TestAddAttendeesIsIdempotent(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	m := model.MeetingModel{MeetingDate: "2025-03-04", MeetingType: model.MeetingBacenta}
	require.NoError(t, db.Create(&m).Error)
	a, b := uuid.New(), uuid.New()
	now := time.Date(2025, 3, 4, 19, 0, 0, 0, time.UTC)

	n, err := AddAttendees(ctx, db, m.MeetingID, []uuid.UUID{a, b}, now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = AddAttendees(ctx, db, m.MeetingID, []uuid.UUID{a}, now.Add(time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	rows, err := ListAttendees(ctx, db, m.MeetingID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	require.NoError(t, RemoveAttendee(ctx, db, m.MeetingID, a))
	assert.ErrorIs(t, RemoveAttendee(ctx, db, m.MeetingID, a), gorm.ErrRecordNotFound)
}

func TestListMeetingsFilters(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	for _, m := range []model.MeetingModel{
		{MeetingDate: "2025-03-03", MeetingType: model.MeetingFlowPrayer},
		{MeetingDate: "2025-03-04", MeetingType: model.MeetingBacenta},
		{MeetingDate: "2025-03-28", MeetingType: model.MeetingAllNightPrayer},
	} {
		m := m
		require.NoError(t, db.Create(&m).Error)
	}

	all, err := ListMeetings(ctx, db, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2025-03-28", all[0].MeetingDate)

	byType, err := ListMeetings(ctx, db, Filter{Type: model.MeetingBacenta})
	require.NoError(t, err)
	require.Len(t, byType, 1)

	ranged, err := ListMeetings(ctx, db, Filter{Range: helper.DateRange{From: "2025-03-01", To: "2025-03-07"}})
	require.NoError(t, err)
	assert.Len(t, ranged, 2)
}

func TestDeleteMeetingRemovesAttendees(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	m := model.MeetingModel{MeetingDate: "2025-03-04", MeetingType: model.MeetingBacenta}
	require.NoError(t, db.Create(&m).Error)
	_, err := AddAttendees(ctx, db, m.MeetingID, []uuid.UUID{uuid.New()}, time.Now())
	require.NoError(t, err)

	require.NoError(t, DeleteMeeting(ctx, db, m.MeetingID))
	rows, err := ListAttendees(ctx, db, m.MeetingID)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.ErrorIs(t, DeleteMeeting(ctx, db, m.MeetingID), gorm.ErrRecordNotFound)
}
