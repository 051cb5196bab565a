package service

import (
	"context"
	"testing"
	"time"

	"github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/model"
	"github.com/jayehzzz/my-church-tracker/internals/helpers/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormStoreRoundTrip(t *testing.T) {
	db := testdb.Open(t, &model.AttendanceModel{})
	store := NewGormStore(db)
	ctx := context.Background()
	svc := uuid.New()

	id, err := store.Insert(ctx, &model.AttendanceModel{ServiceID: svc, PersonID: uuid.New(), GaveTithe: true})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.GaveTithe)
	assert.False(t, got.CreatedAt.IsZero())

	require.NoError(t, store.Patch(ctx, id, model.AttendancePatch{FirstTimer: boolPtr(true)}))
	got, err = store.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.FirstTimer)
	assert.True(t, got.GaveTithe)

	rows, err := store.ListByService(ctx, svc)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	require.NoError(t, store.Delete(ctx, id))
	got, err = store.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReconcileAgainstGormStore(t *testing.T) {
	db := testdb.Open(t, &model.AttendanceModel{})
	store := NewGormStore(db)
	ctx := context.Background()
	svc := uuid.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	created := time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&model.AttendanceModel{ServiceID: svc, PersonID: a, MadeSalvationDecision: true, CreatedAt: created}).Error)
	require.NoError(t, db.Create(&model.AttendanceModel{ServiceID: svc, PersonID: b, CreatedAt: created}).Error)

	rec := newTestReconciler(store)
	res, err := rec.Reconcile(ctx, svc, []RosterEntry{
		{PersonID: a, GaveTithe: boolPtr(true)},
		{PersonID: c},
	})
	require.NoError(t, err)
	assert.Equal(t, Result{Upserted: 2, Removed: 1}, res)

	rows, err := store.ListByService(ctx, svc)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byPerson := map[uuid.UUID]model.AttendanceModel{}
	for _, r := range rows {
		byPerson[r.PersonID] = r
	}
	assert.True(t, byPerson[a].MadeSalvationDecision)
	assert.True(t, byPerson[a].GaveTithe)
	assert.True(t, byPerson[a].CreatedAt.Equal(created))
	assert.Contains(t, byPerson, c)
	assert.NotContains(t, byPerson, b)

	res, err = rec.Reconcile(ctx, svc, []RosterEntry{{PersonID: a}, {PersonID: c}})
	require.NoError(t, err)
	assert.Equal(t, Result{Upserted: 2, Removed: 0}, res)
}
