package seeds

import (
	"time"

	peopleModel "github.com/jayehzzz/my-church-tracker/internals/features/people/people/model"
	attendanceModel "github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/model"
	serviceModel "github.com/jayehzzz/my-church-tracker/internals/features/services/services/model"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"
)

var sermonTopics = []string{
	"The Power of Faith",
	"Walking in Love",
	"Grace for Every Season",
	"Building Strong Foundations",
	"The Heart of Worship",
	"Living in Victory",
	"Trusting God's Plan",
	"The Joy of Giving",
	"Overcoming Obstacles",
	"Family Blessings",
	"Prayer That Moves Mountains",
	"The Good Shepherd",
	"New Beginnings",
	"Faithful in Little Things",
	"The Armor of God",
}

var sermonSpeakers = []string{"Rev. Samuel Owusu", "Pastor Grace Mensah", "Elder David Boateng", "Guest Speaker"}

// seasonalBase is the expected Sunday headcount for a month.
func seasonalBase(m time.Month) int {
	base := 140
	switch m {
	case time.December, time.January:
		base += 25
	case time.April:
		base += 15
	case time.August, time.September:
		base -= 20
	}
	return base
}

// seedServices creates one Sunday service per week and attendance rows drawn
// from each person's engagement profile.
func (s *seeder) seedServices(sum *Summary) error {
	dormantCutoff := helper.Today(s.now.AddDate(0, 0, -60))

	week := 0
	for d := alignForward(s.start(), time.Sunday); !d.After(s.now); d = d.AddDate(0, 0, 7) {
		week++
		date := d.Format(helper.DateLayout)

		total := seasonalBase(d.Month()) + s.intBetween(-10, 20)
		guests := s.intBetween(5, 15)
		svc := serviceModel.ServiceModel{
			ServiceDate:        date,
			ServiceType:        serviceModel.ServiceTypeSunday,
			ServiceTime:        "09:00",
			Location:           "Main Sanctuary",
			SermonTopic:        sermonTopics[week%len(sermonTopics)],
			SermonSpeaker:      sermonSpeakers[s.rnd.Intn(len(sermonSpeakers))],
			TotalAttendance:    total,
			GuestsCount:        guests,
			SalvationDecisions: s.intBetween(0, 3),
			TithersCount:       (total - guests) * 4 / 10,
			CreatedAt:          d,
		}
		if err := s.db.Create(&svc).Error; err != nil {
			return err
		}
		sum.Services++

		var rows []attendanceModel.AttendanceModel
		for i := range s.people {
			p := &s.people[i]
			if p.Person.MemberStatus == peopleModel.MemberStatusArchived {
				continue
			}
			if p.Person.FirstVisitDate != "" && p.Person.FirstVisitDate > date {
				continue
			}
			eng := p.engagement()
			prob := probability(eng.ServiceAttendance, 0.85)
			if p.Person.ActivityStatus == peopleModel.ActivityDormant && date > dormantCutoff {
				prob = 0
			}
			if !s.chance(prob) {
				continue
			}
			titheDefault := 0.1
			if p.Person.IsTither {
				titheDefault = 0.8
			}
			rows = append(rows, attendanceModel.AttendanceModel{
				ServiceID:             svc.ServiceID,
				PersonID:              p.Person.PersonID,
				MadeSalvationDecision: s.chance(0.02),
				GaveTithe:             s.chance(probability(eng.Tithing, titheDefault)),
				FirstTimer:            p.Person.FirstVisitDate == date,
				CreatedAt:             d,
			})
		}
		if len(rows) > 0 {
			if err := s.db.CreateInBatches(rows, 200).Error; err != nil {
				return err
			}
			sum.Attendance += len(rows)
		}
	}
	return nil
}
