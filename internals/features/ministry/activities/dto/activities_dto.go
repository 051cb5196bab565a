package dto

import (
	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/activities/model"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"
)

type CreateActivityRequest struct {
	ActivityType      string `json:"activity_type" validate:"required,max=50"`
	ActivityDate      string `json:"activity_date" validate:"required,isodate"`
	Description       string `json:"description"`
	ParticipantsCount int    `json:"participants_count" validate:"gte=0"`
	Notes             string `json:"notes"`
}

// ToModel stores activity_type as a snake_case key ("Youth Outreach" ->
// "youth_outreach") so by-type lookups match regardless of spelling.
func (r CreateActivityRequest) ToModel() model.ActivityModel {
	return model.ActivityModel{
		ActivityType:      helper.NormalizeKey(r.ActivityType),
		ActivityDate:      r.ActivityDate,
		Description:       r.Description,
		ParticipantsCount: r.ParticipantsCount,
		Notes:             r.Notes,
	}
}
