package service

import (
	"context"
	"testing"
	"time"

	"github.com/jayehzzz/my-church-tracker/internals/features/people/people/model"
	"github.com/jayehzzz/my-church-tracker/internals/helpers/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var today = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*PeopleService, *gorm.DB) {
	db := testdb.Open(t, &model.PersonModel{})
	s := NewPeopleService(db)
	s.Now = func() time.Time { return today }
	return s, db
}

func stored(t *testing.T, db *gorm.DB, p model.PersonModel) model.PersonModel {
	var out model.PersonModel
	require.NoError(t, db.First(&out, "person_id = ?", p.PersonID).Error)
	return out
}

func TestChangeStatusRewritesLegacyVisitor(t *testing.T) {
	s, db := newService(t)
	p := model.PersonModel{FirstName: "Yaw", LastName: "Owusu", MemberStatus: "visitor"}
	require.NoError(t, db.Create(&p).Error)

	out, err := s.ChangeStatus(context.Background(), p.PersonID, model.MemberStatusGuest, "")
	require.NoError(t, err)
	assert.Equal(t, model.MemberStatusGuest, out.MemberStatus)
	assert.Equal(t, model.MemberStatusGuest, stored(t, db, p).MemberStatus)
}

func TestChangeStatusSameStateWritesNothing(t *testing.T) {
	s, db := newService(t)
	p := model.PersonModel{FirstName: "Ama", LastName: "Mensah", MemberStatus: model.MemberStatusMember, MembershipDate: "2024-06-01"}
	require.NoError(t, db.Create(&p).Error)
	before := stored(t, db, p)

	_, err := s.ChangeStatus(context.Background(), p.PersonID, model.MemberStatusMember, "")
	require.NoError(t, err)

	after := stored(t, db, p)
	assert.Equal(t, "2024-06-01", after.MembershipDate)
	assert.True(t, before.UpdatedAt.Equal(after.UpdatedAt))
}

func TestChangeStatusGuestToMemberStampsToday(t *testing.T) {
	s, db := newService(t)
	p := model.PersonModel{FirstName: "Esi", LastName: "Asante"}
	require.NoError(t, db.Create(&p).Error)

	_, err := s.ChangeStatus(context.Background(), p.PersonID, model.MemberStatusMember, "")
	require.NoError(t, err)

	got := stored(t, db, p)
	assert.Equal(t, model.MemberStatusMember, got.MemberStatus)
	assert.Equal(t, "2025-03-10", got.MembershipDate)
}

func TestChangeStatusRefusesBackwardMove(t *testing.T) {
	s, db := newService(t)
	p := model.PersonModel{FirstName: "Kojo", LastName: "Addo", MemberStatus: model.MemberStatusLeader}
	require.NoError(t, db.Create(&p).Error)

	_, err := s.ChangeStatus(context.Background(), p.PersonID, model.MemberStatusMember, "")
	assert.ErrorIs(t, err, model.ErrInvalidTransition)
	assert.Equal(t, model.MemberStatusLeader, stored(t, db, p).MemberStatus)
}

func TestWithTxJoinsCallerTransaction(t *testing.T) {
	s, db := newService(t)
	p := model.PersonModel{FirstName: "Abena", LastName: "Osei"}
	require.NoError(t, db.Create(&p).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.WithTx(tx).ChangeStatus(context.Background(), p.PersonID, model.MemberStatusMember, ""); err != nil {
			return err
		}
		return gorm.ErrInvalidTransaction
	})
	require.ErrorIs(t, err, gorm.ErrInvalidTransaction)
	assert.Equal(t, model.MemberStatusGuest, stored(t, db, p).MemberStatus)
}
