// Package seeds fills a development database with named people and a year of
// services, meetings, visitations and activities.
package seeds

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	activityModel "github.com/jayehzzz/my-church-tracker/internals/features/ministry/activities/model"
	meetingModel "github.com/jayehzzz/my-church-tracker/internals/features/ministry/meetings/model"
	visitModel "github.com/jayehzzz/my-church-tracker/internals/features/ministry/visitations/model"
	peopleModel "github.com/jayehzzz/my-church-tracker/internals/features/people/people/model"
	attendanceModel "github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/model"
	serviceModel "github.com/jayehzzz/my-church-tracker/internals/features/services/services/model"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Summary struct {
	People            int `json:"people"`
	InviterLinks      int `json:"inviter_links"`
	Services          int `json:"services"`
	Attendance        int `json:"attendance"`
	Meetings          int `json:"meetings"`
	MeetingAttendance int `json:"meeting_attendance"`
	Visitations       int `json:"visitations"`
	Activities        int `json:"activities"`
}

// clearOrder deletes children before parents.
var clearOrder = []interface{}{
	&attendanceModel.AttendanceModel{},
	&meetingModel.MeetingAttendanceModel{},
	&visitModel.VisitationModel{},
	&activityModel.ActivityModel{},
	&meetingModel.MeetingModel{},
	&serviceModel.ServiceModel{},
	&peopleModel.PersonModel{},
}

// Run seeds db according to cfg. Callers check Guard first.
func Run(ctx context.Context, db *gorm.DB, cfg SeedConfig) (*Summary, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	people, err := loadJSON[PersonSeed](cfg.PeopleFile)
	if err != nil {
		return nil, err
	}
	visits, err := optionalFixture[VisitationSeed](cfg.VisitationsFile)
	if err != nil {
		return nil, err
	}
	activities, err := optionalFixture[ActivitySeed](cfg.ActivitiesFile)
	if err != nil {
		return nil, err
	}

	db = db.WithContext(ctx)
	if cfg.ClearFirst {
		if err := clearAll(db); err != nil {
			return nil, err
		}
	}

	s := &seeder{db: db, cfg: cfg, now: dayOf(cfg.Now), rnd: cfg.Rand}
	sum := &Summary{}

	steps := []struct {
		name string
		fn   func(*Summary) error
	}{
		{"people", func(sum *Summary) error { return s.seedPeople(people, sum) }},
		{"services", s.seedServices},
		{"meetings", s.seedMeetings},
		{"visitations", func(sum *Summary) error { return s.seedVisitations(visits, sum) }},
		{"activities", func(sum *Summary) error { return s.seedActivities(activities, sum) }},
	}
	for _, st := range steps {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		if err := st.fn(sum); err != nil {
			return sum, fmt.Errorf("seed %s: %w", st.name, err)
		}
		log.Info().Str("step", st.name).Msg("[SEED] done")
	}
	return sum, nil
}

func clearAll(db *gorm.DB) error {
	all := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, m := range clearOrder {
		if err := all.Delete(m).Error; err != nil {
			return fmt.Errorf("clear %T: %w", m, err)
		}
	}
	log.Info().Int("tables", len(clearOrder)).Msg("[SEED] cleared existing data")
	return nil
}

type seededPerson struct {
	Person peopleModel.PersonModel
	Seed   PersonSeed
}

type seeder struct {
	db  *gorm.DB
	cfg SeedConfig
	now time.Time
	rnd *rand.Rand

	people  []seededPerson
	byName  map[string]*peopleModel.PersonModel
	leaders []*peopleModel.PersonModel
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *seeder) start() time.Time {
	return s.now.AddDate(0, 0, -7*s.cfg.Weeks)
}

func (s *seeder) chance(p float64) bool {
	return s.rnd.Float64() < p
}

func (s *seeder) intBetween(min, max int) int {
	return min + s.rnd.Intn(max-min+1)
}

// alignForward moves d to the next given weekday (d itself if it matches).
func alignForward(d time.Time, wd time.Weekday) time.Time {
	for d.Weekday() != wd {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// lastWeekdayOfMonth is the last wd in d's month.
func lastWeekdayOfMonth(d time.Time, wd time.Weekday) time.Time {
	last := time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	for last.Weekday() != wd {
		last = last.AddDate(0, 0, -1)
	}
	return last
}
