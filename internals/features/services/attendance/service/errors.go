package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrStoreUnavailable is returned when the store could not be read, or the
	// first write failed before anything was applied.
	ErrStoreUnavailable = errors.New("attendance store unavailable")

	// ErrNotFound is used by callers when a referenced service or person is absent.
	ErrNotFound = errors.New("not found")
)

// Op names the write that failed inside a reconciliation.
type Op string

const (
	OpDelete Op = "delete"
	OpPatch  Op = "patch"
	OpInsert Op = "insert"
)

// PartialApplyError reports a reconciliation that stopped after some writes
// had already been applied. Nothing is rolled back; resubmitting the same
// roster converges.
type PartialApplyError struct {
	ServiceID uuid.UUID
	Removed   []uuid.UUID
	Upserted  []uuid.UUID
	PersonID  uuid.UUID
	Op        Op
	Err       error
}

func (e *PartialApplyError) Error() string {
	return fmt.Sprintf("attendance sync for service %s stopped at %s of person %s after %d removals and %d upserts: %v",
		e.ServiceID, e.Op, e.PersonID, len(e.Removed), len(e.Upserted), e.Err)
}

// Unwrap reports ErrStoreUnavailable for store failures only; a cancelled or
// expired caller context unwraps to the context error alone.
func (e *PartialApplyError) Unwrap() []error {
	if isContextErr(e.Err) {
		return []error{e.Err}
	}
	return []error{ErrStoreUnavailable, e.Err}
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
