package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type MemberStatus string

const (
	MemberStatusGuest    MemberStatus = "guest"
	MemberStatusMember   MemberStatus = "member"
	MemberStatusLeader   MemberStatus = "leader"
	MemberStatusArchived MemberStatus = "archived"
)

var ErrInvalidTransition = errors.New("invalid member status transition")
var ErrUnknownStatus = errors.New("unknown member status")

// allowedTransitions lists the forward moves; archiving is handled separately
// because it is reachable from every live state.
var allowedTransitions = map[MemberStatus][]MemberStatus{
	MemberStatusGuest:  {MemberStatusMember},
	MemberStatusMember: {MemberStatusLeader},
	MemberStatusLeader: {},
}

// AllMemberStatuses in lifecycle order.
func AllMemberStatuses() []MemberStatus {
	return []MemberStatus{MemberStatusGuest, MemberStatusMember, MemberStatusLeader, MemberStatusArchived}
}

func (s MemberStatus) Valid() bool {
	switch s {
	case MemberStatusGuest, MemberStatusMember, MemberStatusLeader, MemberStatusArchived:
		return true
	}
	return false
}

// ParseMemberStatus accepts the canonical values case-insensitively. The legacy
// "visitor" value is read as guest.
func ParseMemberStatus(s string) (MemberStatus, error) {
	v := MemberStatus(strings.ToLower(strings.TrimSpace(s)))
	if v == "visitor" {
		return MemberStatusGuest, nil
	}
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return v, nil
}

// CanTransition reports whether from -> to is allowed. Staying in the same
// state is allowed (no-op); nothing leaves archived.
func CanTransition(from, to MemberStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	if from == MemberStatusArchived {
		return false
	}
	if to == MemberStatusArchived {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition is CanTransition with an error naming both ends.
func CheckTransition(from, to MemberStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// Transition moves p to status `to`. Entering member stamps membership_date
// with today when it is still empty. changed is false for same-state calls.
func (p *PersonModel) Transition(to MemberStatus, now time.Time) (changed bool, err error) {
	from, err := ParseMemberStatus(string(p.MemberStatus))
	if err != nil {
		return false, err
	}
	if err := CheckTransition(from, to); err != nil {
		return false, err
	}
	if from == to {
		p.MemberStatus = to
		return false, nil
	}
	p.MemberStatus = to
	if to == MemberStatusMember && p.MembershipDate == "" {
		p.MembershipDate = now.Format("2006-01-02")
	}
	return true, nil
}

// MarkConverted is guest -> member with an explicit membership date; an
// empty date means today.
func (p *PersonModel) MarkConverted(date string, now time.Time) error {
	from, err := ParseMemberStatus(string(p.MemberStatus))
	if err != nil {
		return err
	}
	if err := CheckTransition(from, MemberStatusMember); err != nil {
		return err
	}
	if date != "" {
		p.MembershipDate = date
	}
	_, err = p.Transition(MemberStatusMember, now)
	return err
}
