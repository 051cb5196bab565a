package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to MemberStatus
		want     bool
	}{
		{MemberStatusGuest, MemberStatusMember, true},
		{MemberStatusMember, MemberStatusLeader, true},
		{MemberStatusGuest, MemberStatusArchived, true},
		{MemberStatusMember, MemberStatusArchived, true},
		{MemberStatusLeader, MemberStatusArchived, true},
		{MemberStatusGuest, MemberStatusGuest, true},
		{MemberStatusArchived, MemberStatusArchived, true},

		{MemberStatusGuest, MemberStatusLeader, false},
		{MemberStatusLeader, MemberStatusMember, false},
		{MemberStatusMember, MemberStatusGuest, false},
		{MemberStatusArchived, MemberStatusGuest, false},
		{MemberStatusArchived, MemberStatusMember, false},
		{MemberStatusGuest, MemberStatus("visitor"), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCheckTransition_WrapsSentinel(t *testing.T) {
	err := CheckTransition(MemberStatusArchived, MemberStatusGuest)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Contains(t, err.Error(), "archived -> guest")
}

func TestParseMemberStatus(t *testing.T) {
	s, err := ParseMemberStatus(" Member ")
	require.NoError(t, err)
	assert.Equal(t, MemberStatusMember, s)

	s, err = ParseMemberStatus("visitor")
	require.NoError(t, err)
	assert.Equal(t, MemberStatusGuest, s)

	_, err = ParseMemberStatus("deacon")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestPersonTransitionStampsMembershipDate(t *testing.T) {
	now := time.Date(2025, 4, 6, 12, 0, 0, 0, time.UTC)
	p := &PersonModel{MemberStatus: MemberStatusGuest}

	changed, err := p.Transition(MemberStatusMember, now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "2025-04-06", p.MembershipDate)

	changed, err = p.Transition(MemberStatusMember, now.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, "2025-04-06", p.MembershipDate)

	_, err = p.Transition(MemberStatusGuest, now)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, MemberStatusMember, p.MemberStatus)
}

func TestPersonTransitionReadsLegacyVisitor(t *testing.T) {
	p := &PersonModel{MemberStatus: "visitor"}
	changed, err := p.Transition(MemberStatusMember, time.Now())
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, MemberStatusMember, p.MemberStatus)
}

func TestMarkConverted(t *testing.T) {
	now := time.Date(2025, 4, 6, 12, 0, 0, 0, time.UTC)

	p := &PersonModel{MemberStatus: MemberStatusGuest}
	require.NoError(t, p.MarkConverted("2025-03-30", now))
	assert.Equal(t, MemberStatusMember, p.MemberStatus)
	assert.Equal(t, "2025-03-30", p.MembershipDate)

	p = &PersonModel{MemberStatus: MemberStatusGuest}
	require.NoError(t, p.MarkConverted("", now))
	assert.Equal(t, "2025-04-06", p.MembershipDate)

	p = &PersonModel{MemberStatus: MemberStatusArchived}
	err := p.MarkConverted("2025-03-30", now)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, p.MembershipDate)
}
