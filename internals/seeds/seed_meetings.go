package seeds

import (
	"time"

	meetingModel "github.com/jayehzzz/my-church-tracker/internals/features/ministry/meetings/model"
	peopleModel "github.com/jayehzzz/my-church-tracker/internals/features/people/people/model"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"
	"github.com/jayehzzz/my-church-tracker/internals/helpers/dbtime"

	"github.com/google/uuid"
)

type meetingPlan struct {
	Type       meetingModel.MeetingType
	Start, End string
	Location   string
	Notes      string
	Attendance [2]int
	Leaders    [2]int
	LeaderIdx  int
	// Prob returns the chance p attends; ok=false skips p entirely.
	Prob func(p *seededPerson) (prob float64, ok bool)
}

var (
	bacentaPlan = meetingPlan{
		Type: meetingModel.MeetingBacenta, Start: "19:00", End: "21:00",
		Location: "Fellowship Hall", Notes: "Midweek fellowship and Bible study",
		Attendance: [2]int{15, 30}, Leaders: [2]int{3, 6}, LeaderIdx: 0,
		Prob: func(p *seededPerson) (float64, bool) {
			switch p.Person.MemberStatus {
			case peopleModel.MemberStatusArchived, peopleModel.MemberStatusGuest:
				return 0, false
			}
			return probability(p.engagement().CellGroups, 0.6), true
		},
	}
	flowPrayerPlan = meetingPlan{
		Type: meetingModel.MeetingFlowPrayer, Start: "06:00", End: "07:00",
		Location: "Online - YouTube", Notes: "Morning prayer session",
		Attendance: [2]int{20, 45}, Leaders: [2]int{5, 10}, LeaderIdx: 1,
		Prob: func(p *seededPerson) (float64, bool) {
			if p.Person.MemberStatus == peopleModel.MemberStatusArchived {
				return 0, false
			}
			return probability(p.engagement().PrayerMeetings, 0.3), true
		},
	}
	allNightPlan = meetingPlan{
		Type: meetingModel.MeetingAllNightPrayer, Start: "22:00", End: "05:00",
		Location: "Main Sanctuary", Notes: "Monthly all-night prayer vigil",
		Attendance: [2]int{35, 60}, Leaders: [2]int{8, 12}, LeaderIdx: 2,
		Prob: func(p *seededPerson) (float64, bool) {
			if p.Person.MemberStatus == peopleModel.MemberStatusArchived {
				return 0, false
			}
			return probability(p.engagement().PrayerMeetings, 0.3) * 0.7, true
		},
	}
)

// seedMeetings creates weekly bacenta (Tuesday) and flow prayer (Monday)
// meetings plus an all-night prayer on the last Friday of each month.
func (s *seeder) seedMeetings(sum *Summary) error {
	start := s.start()
	for d := alignForward(start, time.Tuesday); !d.After(s.now); d = d.AddDate(0, 0, 7) {
		if err := s.createMeeting(bacentaPlan, d, sum); err != nil {
			return err
		}
	}
	for d := alignForward(start, time.Monday); !d.After(s.now); d = d.AddDate(0, 0, 7) {
		if err := s.createMeeting(flowPrayerPlan, d, sum); err != nil {
			return err
		}
	}
	for m := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC); !m.After(s.now); m = m.AddDate(0, 1, 0) {
		d := lastWeekdayOfMonth(m, time.Friday)
		if d.Before(start) || d.After(s.now) {
			continue
		}
		if err := s.createMeeting(allNightPlan, d, sum); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) createMeeting(plan meetingPlan, d time.Time, sum *Summary) error {
	minutes, err := dbtime.MinutesBetween(plan.Start, plan.End)
	if err != nil {
		return err
	}
	m := meetingModel.MeetingModel{
		MeetingDate:     d.Format(helper.DateLayout),
		MeetingType:     plan.Type,
		StartTime:       plan.Start,
		EndTime:         plan.End,
		DurationMinutes: minutes,
		Location:        plan.Location,
		AttendanceCount: s.intBetween(plan.Attendance[0], plan.Attendance[1]),
		LeadersCount:    s.intBetween(plan.Leaders[0], plan.Leaders[1]),
		Notes:           plan.Notes,
		CreatedAt:       d,
	}
	if plan.LeaderIdx < len(s.leaders) {
		id := s.leaders[plan.LeaderIdx].PersonID
		m.LeaderID = &id
	}
	if err := s.db.Create(&m).Error; err != nil {
		return err
	}
	sum.Meetings++

	var rows []meetingModel.MeetingAttendanceModel
	for i := range s.people {
		p := &s.people[i]
		prob, ok := plan.Prob(p)
		if !ok || !s.chance(prob) {
			continue
		}
		rows = append(rows, meetingModel.MeetingAttendanceModel{
			MeetingAttendanceID: uuid.New(),
			MeetingID:           m.MeetingID,
			PersonID:            p.Person.PersonID,
			CreatedAt:           d,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	if err := s.db.CreateInBatches(rows, 200).Error; err != nil {
		return err
	}
	sum.MeetingAttendance += len(rows)
	return nil
}
