// Package service exposes guests in the people table through the older
// evangelism-contact vocabulary.
package service

import (
	"context"
	"sort"
	"time"

	"github.com/jayehzzz/my-church-tracker/internals/features/lookup"
	"github.com/jayehzzz/my-church-tracker/internals/features/people/evangelism/dto"
	peopleModel "github.com/jayehzzz/my-church-tracker/internals/features/people/people/model"
	peopleService "github.com/jayehzzz/my-church-tracker/internals/features/people/people/service"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EvangelismService struct {
	DB       *gorm.DB
	People   *peopleService.PeopleService
	Resolver *lookup.Resolver
}

func NewEvangelismService(db *gorm.DB) *EvangelismService {
	return &EvangelismService{
		DB:       db,
		People:   peopleService.NewPeopleService(db),
		Resolver: lookup.NewResolver(db),
	}
}

func (s *EvangelismService) now() time.Time {
	return s.People.Now()
}

func guestStatuses() []string {
	return []string{string(peopleModel.MemberStatusGuest), "visitor"}
}

func (s *EvangelismService) render(ctx context.Context, people []peopleModel.PersonModel) ([]dto.ContactResponse, error) {
	out := make([]dto.ContactResponse, 0, len(people))
	for _, p := range people {
		inviter, err := s.Resolver.PersonPtr(ctx, p.InvitedByID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.ToContactResponse(p, inviter))
	}
	return out, nil
}

func (s *EvangelismService) guests(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]peopleModel.PersonModel, error) {
	q := s.DB.WithContext(ctx).Where("member_status IN ?", guestStatuses())
	if scope != nil {
		q = scope(q)
	}
	var rows []peopleModel.PersonModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// contactKey is contact_date, or the creation day for contacts without one.
func contactKey(p peopleModel.PersonModel) string {
	if p.ContactDate != "" {
		return p.ContactDate
	}
	return p.CreatedAt.UTC().Format(helper.DateLayout)
}

// List returns all guests, most recently contacted first.
func (s *EvangelismService) List(ctx context.Context) ([]dto.ContactResponse, error) {
	rows, err := s.guests(ctx, nil)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		ki, kj := contactKey(rows[i]), contactKey(rows[j])
		if ki != kj {
			return ki > kj
		}
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	return s.render(ctx, rows)
}

func (s *EvangelismService) Get(ctx context.Context, id uuid.UUID) (*dto.ContactResponse, error) {
	p, err := s.People.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out, err := s.render(ctx, []peopleModel.PersonModel{*p})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *EvangelismService) Create(ctx context.Context, req dto.CreateContactRequest) (*dto.ContactResponse, error) {
	p := req.ToModel()
	if err := s.DB.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, p.PersonID)
}

// Update writes plain fields and drives converted / conversion_date through
// the transition table in one transaction: converted=true is guest -> member,
// converted=false on a member is a backward move and is refused. A refused
// transition leaves the row untouched.
func (s *EvangelismService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		people := s.People.WithTx(tx)
		if _, err := people.Get(ctx, id); err != nil {
			return err
		}
		if updates := req.ToUpdates(); len(updates) > 0 {
			if err := tx.Model(&peopleModel.PersonModel{}).
				Where("person_id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}

		date := ""
		if req.ConversionDate != nil {
			date = *req.ConversionDate
		}
		switch {
		case req.Converted != nil && *req.Converted:
			_, err := people.ChangeStatus(ctx, id, peopleModel.MemberStatusMember, date)
			return err
		case req.Converted != nil:
			_, err := people.ChangeStatus(ctx, id, peopleModel.MemberStatusGuest, "")
			return err
		case date != "":
			return tx.Model(&peopleModel.PersonModel{}).
				Where("person_id = ?", id).Update("membership_date", date).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *EvangelismService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.People.Delete(ctx, id)
}

// MarkConverted moves a contact to member; an empty date means today.
func (s *EvangelismService) MarkConverted(ctx context.Context, id uuid.UUID, date string) (*dto.ContactResponse, error) {
	if _, err := s.People.ChangeStatus(ctx, id, peopleModel.MemberStatusMember, date); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *EvangelismService) ByResponse(ctx context.Context, response string) ([]dto.ContactResponse, error) {
	rows, err := s.guests(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("contact_category = ?", response).Order("contact_date DESC")
	})
	if err != nil {
		return nil, err
	}
	return s.render(ctx, rows)
}

// Converted lists members who came in through evangelism (have a contact date).
func (s *EvangelismService) Converted(ctx context.Context) ([]dto.ContactResponse, error) {
	var rows []peopleModel.PersonModel
	if err := s.DB.WithContext(ctx).
		Where("member_status = ?", peopleModel.MemberStatusMember).
		Where("contact_date IS NOT NULL AND contact_date <> ''").
		Order("membership_date DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return s.render(ctx, rows)
}

func (s *EvangelismService) ByDateRange(ctx context.Context, r helper.DateRange) ([]dto.ContactResponse, error) {
	rows, err := s.guests(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("contact_date >= ? AND contact_date <= ?", r.From, r.To).Order("contact_date DESC")
	})
	if err != nil {
		return nil, err
	}
	return s.render(ctx, rows)
}

func (s *EvangelismService) ByInviter(ctx context.Context, inviterID uuid.UUID) ([]dto.ContactResponse, error) {
	rows, err := s.guests(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("invited_by_id = ?", inviterID).Order("contact_date DESC")
	})
	if err != nil {
		return nil, err
	}
	return s.render(ctx, rows)
}

// RequiringFollowUp lists guests whose follow_up_date is on or before asOf
// (today when empty), earliest first.
func (s *EvangelismService) RequiringFollowUp(ctx context.Context, asOf string) ([]dto.ContactResponse, error) {
	if asOf == "" {
		asOf = helper.Today(s.now())
	}
	rows, err := s.guests(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("follow_up_date IS NOT NULL AND follow_up_date <> '' AND follow_up_date <= ?", asOf).
			Where("(contact_category IS NULL OR contact_category <> ?)", dto.ResponseDoNotContact).
			Order("follow_up_date ASC")
	})
	if err != nil {
		return nil, err
	}
	return s.render(ctx, rows)
}

// CountRequiringFollowUp is the dashboard figure for RequiringFollowUp.
func (s *EvangelismService) CountRequiringFollowUp(ctx context.Context, asOf string) (int64, error) {
	if asOf == "" {
		asOf = helper.Today(s.now())
	}
	var n int64
	err := s.DB.WithContext(ctx).Model(&peopleModel.PersonModel{}).
		Where("member_status IN ?", guestStatuses()).
		Where("follow_up_date IS NOT NULL AND follow_up_date <> '' AND follow_up_date <= ?", asOf).
		Where("(contact_category IS NULL OR contact_category <> ?)", dto.ResponseDoNotContact).
		Count(&n).Error
	return n, err
}
