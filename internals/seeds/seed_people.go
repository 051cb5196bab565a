package seeds

import (
	"fmt"
	"strings"

	peopleModel "github.com/jayehzzz/my-church-tracker/internals/features/people/people/model"
	"github.com/jayehzzz/my-church-tracker/internals/helpers/dbtypes"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

func (p PersonSeed) toModel() (peopleModel.PersonModel, error) {
	status, err := peopleModel.ParseMemberStatus(p.MemberStatus)
	if err != nil {
		return peopleModel.PersonModel{}, fmt.Errorf("%s: %w", p.FullName(), err)
	}
	role := peopleModel.PersonRole(strings.TrimSpace(p.Role))
	if role == "" || role == peopleModel.RoleBasontaWorker {
		role = peopleModel.RoleNone
	}
	m := peopleModel.PersonModel{
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		Email:             p.Email,
		Phone:             p.Phone,
		Address:           p.Address,
		Birthday:          p.Birthday,
		MemberStatus:      status,
		Role:              role,
		ActivityStatus:    peopleModel.ActivityStatus(p.ActivityStatus),
		IsBaptised:        p.IsBaptised,
		IsTither:          p.IsTither,
		ContactCategory:   p.ContactCategory,
		ContactDate:       p.ContactDate,
		FollowUpDate:      p.FollowUpDate,
		FirstVisitDate:    p.FirstVisitDate,
		MembershipDate:    p.MembershipDate,
		Basontas:          dbtypes.TextArray(p.Basontas),
		Lat:               p.Lat,
		Lng:               p.Lng,
		EngagementProfile: datatypes.JSONMap(p.Engagement.asMap()),
	}
	return m, nil
}

func (s *seeder) seedPeople(seeds []PersonSeed, sum *Summary) error {
	s.people = make([]seededPerson, 0, len(seeds))
	for _, ps := range seeds {
		m, err := ps.toModel()
		if err != nil {
			return err
		}
		if err := s.db.Create(&m).Error; err != nil {
			return fmt.Errorf("insert %s: %w", ps.FullName(), err)
		}
		s.people = append(s.people, seededPerson{Person: m, Seed: ps})
	}
	sum.People = len(s.people)

	// first entry wins on duplicate names
	s.byName = make(map[string]*peopleModel.PersonModel, len(s.people))
	for i := range s.people {
		p := &s.people[i]
		if _, ok := s.byName[p.Seed.FullName()]; !ok {
			s.byName[p.Seed.FullName()] = &p.Person
		}
		if p.Person.MemberStatus == peopleModel.MemberStatusLeader {
			s.leaders = append(s.leaders, &p.Person)
		}
	}

	for i := range s.people {
		p := &s.people[i]
		if p.Seed.InvitedBy == "" {
			continue
		}
		inviter, ok := s.byName[p.Seed.InvitedBy]
		if !ok {
			log.Warn().Str("guest", p.Seed.FullName()).Str("inviter", p.Seed.InvitedBy).Msg("[SEED] inviter not found")
			continue
		}
		if err := s.db.Model(&peopleModel.PersonModel{}).
			Where("person_id = ?", p.Person.PersonID).
			Update("invited_by_id", inviter.PersonID).Error; err != nil {
			return fmt.Errorf("link inviter for %s: %w", p.Seed.FullName(), err)
		}
		id := inviter.PersonID
		p.Person.InvitedByID = &id
		sum.InviterLinks++
	}
	return nil
}

// probability reads an engagement value, falling back to def.
func probability(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func (p *seededPerson) engagement() EngagementProfile {
	if p.Seed.Engagement == nil {
		return EngagementProfile{}
	}
	return *p.Seed.Engagement
}
