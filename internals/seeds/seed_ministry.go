package seeds

import (
	"fmt"
	"time"

	activityModel "github.com/jayehzzz/my-church-tracker/internals/features/ministry/activities/model"
	visitModel "github.com/jayehzzz/my-church-tracker/internals/features/ministry/visitations/model"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"

	"github.com/rs/zerolog/log"
)

// seedVisitations inserts the fixture visits whose visited person and visitor
// were both seeded.
func (s *seeder) seedVisitations(seeds []VisitationSeed, sum *Summary) error {
	for _, v := range seeds {
		visited, ok := s.byName[v.Visited]
		visitor, ok2 := s.byName[v.Visitor]
		if !ok || !ok2 {
			log.Warn().Str("visited", v.Visited).Str("visitor", v.Visitor).Msg("[SEED] visitation skipped, unknown person")
			continue
		}
		visitorID := visitor.PersonID
		row := visitModel.VisitationModel{
			PersonID:          visited.PersonID,
			PersonVisitedName: v.Visited,
			VisitedByID:       &visitorID,
			VisitedByName:     v.Visitor,
			VisitDate:         v.Date,
			Outcome:           visitModel.VisitOutcome(v.Outcome),
			FollowUpRequired:  v.FollowUp,
			FollowUpDate:      v.FollowUpDate,
			Notes:             v.Notes,
		}
		if t, err := time.Parse(helper.DateLayout, v.Date); err == nil {
			row.CreatedAt = t
		}
		if err := s.db.Create(&row).Error; err != nil {
			return fmt.Errorf("visit %s on %s: %w", v.Visited, v.Date, err)
		}
		sum.Visitations++
	}
	return nil
}

func (s *seeder) seedActivities(seeds []ActivitySeed, sum *Summary) error {
	for _, a := range seeds {
		row := activityModel.ActivityModel{
			ActivityType:      helper.NormalizeKey(a.ActivityType),
			ActivityDate:      a.ActivityDate,
			Description:       a.Description,
			ParticipantsCount: a.ParticipantsCount,
			Notes:             a.Notes,
		}
		if row.Notes == "" {
			row.Notes = "Seed activity"
		}
		if t, err := time.Parse(helper.DateLayout, a.ActivityDate); err == nil {
			row.CreatedAt = t
		}
		if err := s.db.Create(&row).Error; err != nil {
			return fmt.Errorf("activity %s on %s: %w", a.ActivityType, a.ActivityDate, err)
		}
		sum.Activities++
	}
	return nil
}
