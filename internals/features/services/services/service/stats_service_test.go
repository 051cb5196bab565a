package service

import (
	"context"
	"testing"
	"time"

	attendanceModel "github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/model"
	"github.com/jayehzzz/my-church-tracker/internals/features/services/services/model"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"
	"github.com/jayehzzz/my-church-tracker/internals/helpers/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	return testdb.Open(t, &model.ServiceModel{}, &attendanceModel.AttendanceModel{})
}

func TestSnapshotOf(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	snap := SnapshotOf([]attendanceModel.AttendanceModel{
		{PersonID: a, FirstTimer: true, MadeSalvationDecision: true},
		{PersonID: b, GaveTithe: true},
	})
	assert.Equal(t, 2, snap.TotalAttendance)
	assert.Equal(t, 1, snap.GuestsCount)
	assert.Equal(t, 1, snap.SalvationDecisions)
	assert.Equal(t, 1, snap.TithersCount)
	assert.Equal(t, []string{a.String(), b.String()}, []string(snap.Individuals))
}

func TestRefreshWritesSnapshot(t *testing.T) {
	db := openDB(t)
	svc := model.ServiceModel{ServiceDate: "2025-03-02", ServiceType: model.ServiceTypeSunday, TotalAttendance: 99}
	require.NoError(t, db.Create(&svc).Error)
	require.NoError(t, db.Create(&attendanceModel.AttendanceModel{ServiceID: svc.ServiceID, PersonID: uuid.New(), GaveTithe: true}).Error)
	require.NoError(t, db.Create(&attendanceModel.AttendanceModel{ServiceID: svc.ServiceID, PersonID: uuid.New(), FirstTimer: true}).Error)

	got, err := NewStatsService(db).Refresh(context.Background(), svc.ServiceID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalAttendance)
	assert.Equal(t, 1, got.GuestsCount)
	assert.Equal(t, 1, got.TithersCount)
	assert.Len(t, got.Individuals, 2)

	_, err = NewStatsService(db).Refresh(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRefreshSinceOnlyTouchesRecentServices(t *testing.T) {
	db := openDB(t)
	old := model.ServiceModel{ServiceDate: "2025-01-05", ServiceType: model.ServiceTypeSunday, TotalAttendance: 40}
	recent := model.ServiceModel{ServiceDate: "2025-03-02", ServiceType: model.ServiceTypeSunday, TotalAttendance: 40}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&recent).Error)
	for _, svc := range []model.ServiceModel{old, recent} {
		require.NoError(t, db.Create(&attendanceModel.AttendanceModel{ServiceID: svc.ServiceID, PersonID: uuid.New()}).Error)
	}

	now := time.Date(2025, 3, 10, 3, 30, 0, 0, time.UTC)
	n, err := NewStatsService(db).RefreshSince(context.Background(), now, 14)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var got model.ServiceModel
	require.NoError(t, db.First(&got, "service_id = ?", old.ServiceID).Error)
	assert.Equal(t, 40, got.TotalAttendance)
	require.NoError(t, db.First(&got, "service_id = ?", recent.ServiceID).Error)
	assert.Equal(t, 1, got.TotalAttendance)
}

func TestRefreshSinceKeepsEnteredHeadcounts(t *testing.T) {
	db := openDB(t)
	headcount := model.ServiceModel{ServiceDate: "2025-03-02", ServiceType: model.ServiceTypeSunday, TotalAttendance: 120, GuestsCount: 8, TithersCount: 30}
	require.NoError(t, db.Create(&headcount).Error)

	now := time.Date(2025, 3, 10, 3, 30, 0, 0, time.UTC)
	n, err := NewStatsService(db).RefreshSince(context.Background(), now, 14)
	require.NoError(t, err)
	assert.Zero(t, n)

	var got model.ServiceModel
	require.NoError(t, db.First(&got, "service_id = ?", headcount.ServiceID).Error)
	assert.Equal(t, 120, got.TotalAttendance)
	assert.Equal(t, 8, got.GuestsCount)
	assert.Equal(t, 30, got.TithersCount)
}

func TestListServicesNewestFirst(t *testing.T) {
	db := openDB(t)
	for _, d := range []string{"2025-02-02", "2025-03-02", "2025-01-05"} {
		require.NoError(t, db.Create(&model.ServiceModel{ServiceDate: d, ServiceType: model.ServiceTypeSunday}).Error)
	}

	all, err := ListServices(context.Background(), db, helper.DateRange{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2025-03-02", all[0].ServiceDate)
	assert.Equal(t, "2025-01-05", all[2].ServiceDate)

	ranged, err := ListServices(context.Background(), db, helper.DateRange{From: "2025-01-05", To: "2025-02-02"})
	require.NoError(t, err)
	assert.Len(t, ranged, 2)
}

func TestDeleteServiceCascadesAttendance(t *testing.T) {
	db := openDB(t)
	svc := model.ServiceModel{ServiceDate: "2025-03-02", ServiceType: model.ServiceTypeSunday}
	require.NoError(t, db.Create(&svc).Error)
	require.NoError(t, db.Create(&attendanceModel.AttendanceModel{ServiceID: svc.ServiceID, PersonID: uuid.New()}).Error)

	require.NoError(t, DeleteService(context.Background(), db, svc.ServiceID))
	var n int64
	db.Model(&attendanceModel.AttendanceModel{}).Count(&n)
	assert.Zero(t, n)

	assert.ErrorIs(t, DeleteService(context.Background(), db, svc.ServiceID), gorm.ErrRecordNotFound)
}
