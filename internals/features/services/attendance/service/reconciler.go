package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RosterEntry is one submitted attendee. Nil flags mean "not provided".
type RosterEntry struct {
	PersonID              uuid.UUID
	MadeSalvationDecision *bool
	GaveTithe             *bool
	FirstTimer            *bool
}

func (e RosterEntry) patch() model.AttendancePatch {
	return model.AttendancePatch{
		MadeSalvationDecision: e.MadeSalvationDecision,
		GaveTithe:             e.GaveTithe,
		FirstTimer:            e.FirstTimer,
	}
}

// Result holds counts only. Upserted is the submitted roster length,
// duplicates included.
type Result struct {
	Upserted int `json:"upserted"`
	Removed  int `json:"removed"`
}

// Reconciler makes the stored attendance of one service equal to a submitted
// roster: rows for absent persons are deleted, present persons are patched or
// inserted. Writes run sequentially with no transaction around them.
type Reconciler struct {
	Store Store
	Now   func() time.Time
}

func NewReconciler(store Store) *Reconciler {
	return &Reconciler{Store: store, Now: time.Now}
}

// dedupe collapses repeated person ids: first position, last metadata.
func dedupe(roster []RosterEntry) []RosterEntry {
	idx := make(map[uuid.UUID]int, len(roster))
	out := make([]RosterEntry, 0, len(roster))
	for _, e := range roster {
		if i, ok := idx[e.PersonID]; ok {
			out[i] = e
			continue
		}
		idx[e.PersonID] = len(out)
		out = append(out, e)
	}
	return out
}

func (r *Reconciler) Reconcile(ctx context.Context, serviceID uuid.UUID, roster []RosterEntry) (Result, error) {
	existing, err := r.Store.ListByService(ctx, serviceID)
	if err != nil {
		return Result{}, fmt.Errorf("%w: list attendance for service %s: %w", ErrStoreUnavailable, serviceID, err)
	}

	byPerson := make(map[uuid.UUID]model.AttendanceModel, len(existing))
	for _, row := range existing {
		byPerson[row.PersonID] = row
	}

	targets := dedupe(roster)
	want := make(map[uuid.UUID]struct{}, len(targets))
	for _, e := range targets {
		want[e.PersonID] = struct{}{}
	}

	var (
		removed  []uuid.UUID
		upserted []uuid.UUID
	)
	fail := func(personID uuid.UUID, op Op, cause error) error {
		if len(removed) == 0 && len(upserted) == 0 {
			if isContextErr(cause) {
				return fmt.Errorf("%s attendance of person %s: %w", op, personID, cause)
			}
			return fmt.Errorf("%w: %s attendance of person %s: %w", ErrStoreUnavailable, op, personID, cause)
		}
		return &PartialApplyError{
			ServiceID: serviceID,
			Removed:   removed,
			Upserted:  upserted,
			PersonID:  personID,
			Op:        op,
			Err:       cause,
		}
	}

	for _, row := range existing {
		if _, keep := want[row.PersonID]; keep {
			continue
		}
		if err := ctx.Err(); err != nil {
			return Result{}, fail(row.PersonID, OpDelete, err)
		}
		if err := r.Store.Delete(ctx, row.AttendanceID); err != nil {
			return Result{}, fail(row.PersonID, OpDelete, err)
		}
		removed = append(removed, row.PersonID)
	}

	for _, e := range targets {
		if err := ctx.Err(); err != nil {
			return Result{}, fail(e.PersonID, OpPatch, err)
		}
		if row, ok := byPerson[e.PersonID]; ok {
			if err := r.Store.Patch(ctx, row.AttendanceID, e.patch()); err != nil {
				return Result{}, fail(e.PersonID, OpPatch, err)
			}
		} else {
			fresh := &model.AttendanceModel{
				ServiceID: serviceID,
				PersonID:  e.PersonID,
				CreatedAt: r.now(),
			}
			e.patch().Apply(fresh)
			if _, err := r.Store.Insert(ctx, fresh); err != nil {
				return Result{}, fail(e.PersonID, OpInsert, err)
			}
		}
		upserted = append(upserted, e.PersonID)
	}

	log.Debug().
		Str("service_id", serviceID.String()).
		Int("upserted", len(upserted)).
		Int("removed", len(removed)).
		Msg("attendance reconciled")

	return Result{Upserted: len(roster), Removed: len(removed)}, nil
}

func (r *Reconciler) now() time.Time {
	if r.Now == nil {
		return time.Now().UTC()
	}
	return r.Now().UTC()
}
