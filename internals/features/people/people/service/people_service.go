package service

import (
	"context"
	"sort"
	"time"

	"github.com/jayehzzz/my-church-tracker/internals/features/people/people/model"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PeopleService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewPeopleService(db *gorm.DB) *PeopleService {
	return &PeopleService{DB: db, Now: time.Now}
}

// WithTx returns a copy of s bound to tx, so its writes join the caller's transaction.
func (s *PeopleService) WithTx(tx *gorm.DB) *PeopleService {
	return &PeopleService{DB: tx, Now: s.Now}
}

func (s *PeopleService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func byName(q *gorm.DB) *gorm.DB {
	return q.Order("last_name ASC").Order("first_name ASC")
}

func (s *PeopleService) List(ctx context.Context) ([]model.PersonModel, error) {
	var out []model.PersonModel
	err := byName(s.DB.WithContext(ctx)).Find(&out).Error
	return out, err
}

// ListByStatus treats legacy "visitor" rows as guests.
func (s *PeopleService) ListByStatus(ctx context.Context, status model.MemberStatus) ([]model.PersonModel, error) {
	statuses := []string{string(status)}
	if status == model.MemberStatusGuest {
		statuses = append(statuses, "visitor")
	}
	var out []model.PersonModel
	err := byName(s.DB.WithContext(ctx).Where("member_status IN ?", statuses)).Find(&out).Error
	return out, err
}

// Search matches q against first, last and preferred names, ignoring case
// and accents. Sorted by last name.
func (s *PeopleService) Search(ctx context.Context, q string) ([]model.PersonModel, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.PersonModel, 0)
	for _, p := range all {
		if helper.FoldContains(q, p.FirstName, p.LastName, p.PreferredName) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return helper.Fold(out[i].LastName) < helper.Fold(out[j].LastName)
	})
	return out, nil
}

// Get returns gorm.ErrRecordNotFound when absent.
func (s *PeopleService) Get(ctx context.Context, id uuid.UUID) (*model.PersonModel, error) {
	var p model.PersonModel
	if err := s.DB.WithContext(ctx).First(&p, "person_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ChangeStatus applies a validated status transition under a row lock.
// membershipDate is only used when entering member.
func (s *PeopleService) ChangeStatus(ctx context.Context, id uuid.UUID, to model.MemberStatus, membershipDate string) (*model.PersonModel, error) {
	var out model.PersonModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&out, "person_id = ?", id).Error; err != nil {
			return err
		}
		from := out.MemberStatus

		var changed bool
		var err error
		if to == model.MemberStatusMember && membershipDate != "" {
			changed = from != model.MemberStatusMember
			err = out.MarkConverted(membershipDate, s.now())
		} else {
			changed, err = out.Transition(to, s.now())
		}
		if err != nil {
			return err
		}
		// legacy "visitor" rows are rewritten as guest even on a same-state call
		if !changed && membershipDate == "" && out.MemberStatus == from {
			return nil
		}

		if err := tx.Model(&out).Updates(map[string]interface{}{
			"member_status":   out.MemberStatus,
			"membership_date": out.MembershipDate,
			"updated_at":      s.now(),
		}).Error; err != nil {
			return err
		}
		log.Info().
			Str("person_id", id.String()).
			Str("from", string(from)).
			Str("to", string(out.MemberStatus)).
			Msg("member status changed")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PeopleService) Archive(ctx context.Context, id uuid.UUID) (*model.PersonModel, error) {
	return s.ChangeStatus(ctx, id, model.MemberStatusArchived, "")
}

// Delete removes the row. It is the ?hard=true path of DELETE /people/:id.
func (s *PeopleService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("person_id = ?", id).Delete(&model.PersonModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
