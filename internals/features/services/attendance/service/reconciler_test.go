package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	rows    map[uuid.UUID]model.AttendanceModel
	listErr error
	// failAt makes the n-th write (1-based) fail.
	failAt int
	writes int
}

func newMemStore() *memStore {
	return &memStore{rows: map[uuid.UUID]model.AttendanceModel{}}
}

var errBoom = errors.New("boom")

func (m *memStore) write() error {
	m.writes++
	if m.failAt > 0 && m.writes == m.failAt {
		return errBoom
	}
	return nil
}

func (m *memStore) ListByService(_ context.Context, serviceID uuid.UUID) ([]model.AttendanceModel, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []model.AttendanceModel
	for _, r := range m.rows {
		if r.ServiceID == serviceID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) Insert(_ context.Context, row *model.AttendanceModel) (uuid.UUID, error) {
	if err := m.write(); err != nil {
		return uuid.Nil, err
	}
	row.AttendanceID = uuid.New()
	m.rows[row.AttendanceID] = *row
	return row.AttendanceID, nil
}

func (m *memStore) Patch(_ context.Context, id uuid.UUID, patch model.AttendancePatch) error {
	if err := m.write(); err != nil {
		return err
	}
	r, ok := m.rows[id]
	if !ok {
		return errors.New("missing row")
	}
	patch.Apply(&r)
	m.rows[id] = r
	return nil
}

func (m *memStore) Delete(_ context.Context, id uuid.UUID) error {
	if err := m.write(); err != nil {
		return err
	}
	delete(m.rows, id)
	return nil
}

func (m *memStore) Get(_ context.Context, id uuid.UUID) (*model.AttendanceModel, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *memStore) seed(serviceID, personID uuid.UUID, created time.Time, salvation, tithe, first bool) model.AttendanceModel {
	row := model.AttendanceModel{
		AttendanceID:          uuid.New(),
		ServiceID:             serviceID,
		PersonID:              personID,
		MadeSalvationDecision: salvation,
		GaveTithe:             tithe,
		FirstTimer:            first,
		CreatedAt:             created,
	}
	m.rows[row.AttendanceID] = row
	return row
}

func (m *memStore) byPerson(serviceID uuid.UUID) map[uuid.UUID]model.AttendanceModel {
	out := map[uuid.UUID]model.AttendanceModel{}
	for _, r := range m.rows {
		if r.ServiceID == serviceID {
			out[r.PersonID] = r
		}
	}
	return out
}

func boolPtr(b bool) *bool { return &b }

var fixedNow = time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

func newTestReconciler(store Store) *Reconciler {
	r := NewReconciler(store)
	r.Now = func() time.Time { return fixedNow }
	return r
}

func TestReconcileInsertsIntoEmptyService(t *testing.T) {
	store := newMemStore()
	svc := uuid.New()
	a, b := uuid.New(), uuid.New()

	res, err := newTestReconciler(store).Reconcile(context.Background(), svc, []RosterEntry{
		{PersonID: a, FirstTimer: boolPtr(true)},
		{PersonID: b},
	})
	require.NoError(t, err)
	assert.Equal(t, Result{Upserted: 2, Removed: 0}, res)

	rows := store.byPerson(svc)
	require.Len(t, rows, 2)
	assert.True(t, rows[a].FirstTimer)
	assert.False(t, rows[a].GaveTithe)
	assert.False(t, rows[b].FirstTimer)
	assert.False(t, rows[b].MadeSalvationDecision)
	assert.Equal(t, fixedNow, rows[b].CreatedAt)
}

func TestReconcileRemovesAbsentAndPreservesMetadata(t *testing.T) {
	store := newMemStore()
	svc := uuid.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	created := time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC)
	store.seed(svc, a, created, true, true, false)
	store.seed(svc, b, created, false, false, true)

	res, err := newTestReconciler(store).Reconcile(context.Background(), svc, []RosterEntry{
		{PersonID: a},
		{PersonID: c, GaveTithe: boolPtr(true)},
	})
	require.NoError(t, err)
	assert.Equal(t, Result{Upserted: 2, Removed: 1}, res)

	rows := store.byPerson(svc)
	require.Len(t, rows, 2)
	assert.NotContains(t, rows, b)

	// omitted fields keep the stored values, created_at untouched
	assert.True(t, rows[a].MadeSalvationDecision)
	assert.True(t, rows[a].GaveTithe)
	assert.Equal(t, created, rows[a].CreatedAt)

	assert.True(t, rows[c].GaveTithe)
	assert.Equal(t, fixedNow, rows[c].CreatedAt)
}

func TestReconcilePatchesOnlyProvidedFields(t *testing.T) {
	store := newMemStore()
	svc := uuid.New()
	a := uuid.New()
	store.seed(svc, a, fixedNow.Add(-time.Hour), true, false, true)

	_, err := newTestReconciler(store).Reconcile(context.Background(), svc, []RosterEntry{
		{PersonID: a, MadeSalvationDecision: boolPtr(false), GaveTithe: boolPtr(true)},
	})
	require.NoError(t, err)

	row := store.byPerson(svc)[a]
	assert.False(t, row.MadeSalvationDecision)
	assert.True(t, row.GaveTithe)
	assert.True(t, row.FirstTimer)
}

func TestReconcileEmptyRosterClearsService(t *testing.T) {
	store := newMemStore()
	svc, other := uuid.New(), uuid.New()
	store.seed(svc, uuid.New(), fixedNow, false, false, false)
	store.seed(svc, uuid.New(), fixedNow, false, false, false)
	keep := store.seed(other, uuid.New(), fixedNow, false, false, false)

	res, err := newTestReconciler(store).Reconcile(context.Background(), svc, nil)
	require.NoError(t, err)
	assert.Equal(t, Result{Upserted: 0, Removed: 2}, res)
	assert.Empty(t, store.byPerson(svc))
	assert.Contains(t, store.rows, keep.AttendanceID)
}

func TestReconcileIsIdempotent(t *testing.T) {
	store := newMemStore()
	svc := uuid.New()
	a, b := uuid.New(), uuid.New()
	store.seed(svc, uuid.New(), fixedNow, false, false, false)
	roster := []RosterEntry{
		{PersonID: a, GaveTithe: boolPtr(true)},
		{PersonID: b, FirstTimer: boolPtr(true)},
	}

	rec := newTestReconciler(store)
	_, err := rec.Reconcile(context.Background(), svc, roster)
	require.NoError(t, err)
	first := store.byPerson(svc)

	rec.Now = func() time.Time { return fixedNow.Add(24 * time.Hour) }
	res, err := rec.Reconcile(context.Background(), svc, roster)
	require.NoError(t, err)
	assert.Equal(t, Result{Upserted: 2, Removed: 0}, res)
	assert.Equal(t, first, store.byPerson(svc))
}

func TestReconcileDuplicateEntriesLastWins(t *testing.T) {
	store := newMemStore()
	svc := uuid.New()
	a, b := uuid.New(), uuid.New()

	res, err := newTestReconciler(store).Reconcile(context.Background(), svc, []RosterEntry{
		{PersonID: a, GaveTithe: boolPtr(true)},
		{PersonID: b},
		{PersonID: a, GaveTithe: boolPtr(false), FirstTimer: boolPtr(true)},
	})
	require.NoError(t, err)
	assert.Equal(t, Result{Upserted: 3, Removed: 0}, res)

	rows := store.byPerson(svc)
	require.Len(t, rows, 2)
	assert.False(t, rows[a].GaveTithe)
	assert.True(t, rows[a].FirstTimer)
}

func TestDedupeKeepsFirstPosition(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	got := dedupe([]RosterEntry{
		{PersonID: a},
		{PersonID: b},
		{PersonID: a, FirstTimer: boolPtr(true)},
	})
	require.Len(t, got, 2)
	assert.Equal(t, a, got[0].PersonID)
	assert.NotNil(t, got[0].FirstTimer)
	assert.Equal(t, b, got[1].PersonID)
}

func TestReconcileListFailure(t *testing.T) {
	store := newMemStore()
	store.listErr = errBoom

	_, err := newTestReconciler(store).Reconcile(context.Background(), uuid.New(), []RosterEntry{{PersonID: uuid.New()}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, errBoom)

	var partial *PartialApplyError
	assert.False(t, errors.As(err, &partial))
}

func TestReconcileFirstWriteFailureIsUnavailable(t *testing.T) {
	store := newMemStore()
	store.failAt = 1

	_, err := newTestReconciler(store).Reconcile(context.Background(), uuid.New(), []RosterEntry{{PersonID: uuid.New()}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	var partial *PartialApplyError
	assert.False(t, errors.As(err, &partial))
	assert.Empty(t, store.rows)
}

func TestReconcilePartialApply(t *testing.T) {
	store := newMemStore()
	svc := uuid.New()
	gone := uuid.New()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	store.seed(svc, gone, fixedNow, false, false, false)
	// delete gone, insert a, then fail inserting b
	store.failAt = 3

	_, err := newTestReconciler(store).Reconcile(context.Background(), svc, []RosterEntry{
		{PersonID: a}, {PersonID: b}, {PersonID: c},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, errBoom)

	var partial *PartialApplyError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, []uuid.UUID{gone}, partial.Removed)
	assert.Equal(t, []uuid.UUID{a}, partial.Upserted)
	assert.Equal(t, b, partial.PersonID)
	assert.Equal(t, OpInsert, partial.Op)

	// resubmitting converges
	store.failAt = 0
	res, err := newTestReconciler(store).Reconcile(context.Background(), svc, []RosterEntry{
		{PersonID: a}, {PersonID: b}, {PersonID: c},
	})
	require.NoError(t, err)
	assert.Equal(t, Result{Upserted: 3, Removed: 0}, res)
	assert.Len(t, store.byPerson(svc), 3)
}

func TestReconcileHonoursCancelledContext(t *testing.T) {
	store := newMemStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestReconciler(store).Reconcile(ctx, uuid.New(), []RosterEntry{{PersonID: uuid.New()}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)
	assert.Empty(t, store.rows)
}

type cancelOnWriteStore struct {
	*memStore
	cancel context.CancelFunc
}

func (s cancelOnWriteStore) Insert(ctx context.Context, row *model.AttendanceModel) (uuid.UUID, error) {
	id, err := s.memStore.Insert(ctx, row)
	s.cancel()
	return id, err
}

func TestReconcileCancelledMidwayIsNotStoreFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store := cancelOnWriteStore{memStore: newMemStore(), cancel: cancel}
	a, b := uuid.New(), uuid.New()

	_, err := newTestReconciler(store).Reconcile(ctx, uuid.New(), []RosterEntry{{PersonID: a}, {PersonID: b}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)

	var partial *PartialApplyError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, []uuid.UUID{a}, partial.Upserted)
	assert.Equal(t, b, partial.PersonID)
}
