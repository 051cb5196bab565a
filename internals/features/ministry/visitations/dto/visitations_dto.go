package dto

import (
	"strings"

	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/visitations/model"

	"github.com/google/uuid"
)

type CreateVisitationRequest struct {
	PersonID          string `json:"person_id" validate:"required,uuid"`
	PersonVisitedName string `json:"person_visited_name" validate:"max=200"`
	VisitedByName     string `json:"visited_by_name" validate:"max=200"`
	VisitedByID       string `json:"visited_by_id" validate:"omitempty,uuid"`
	VisitDate         string `json:"visit_date" validate:"required,isodate"`
	Outcome           string `json:"outcome" validate:"required,oneof=welcomed_encouraged prayer_request_received not_home concerns_shared invited_to_service"`
	FollowUpRequired  bool   `json:"follow_up_required"`
	FollowUpDate      string `json:"follow_up_date" validate:"omitempty,isodate"`
	Notes             string `json:"notes"`
}

func (r CreateVisitationRequest) ToModel() model.VisitationModel {
	v := model.VisitationModel{
		PersonID:          uuid.MustParse(r.PersonID),
		PersonVisitedName: strings.TrimSpace(r.PersonVisitedName),
		VisitedByName:     strings.TrimSpace(r.VisitedByName),
		VisitDate:         r.VisitDate,
		Outcome:           model.VisitOutcome(r.Outcome),
		FollowUpRequired:  r.FollowUpRequired,
		FollowUpDate:      r.FollowUpDate,
		Notes:             r.Notes,
	}
	if id, err := uuid.Parse(r.VisitedByID); err == nil {
		v.VisitedByID = &id
	}
	return v
}

type UpdateVisitationRequest struct {
	PersonID          *string `json:"person_id" validate:"omitempty,uuid"`
	PersonVisitedName *string `json:"person_visited_name" validate:"omitempty,max=200"`
	VisitedByName     *string `json:"visited_by_name" validate:"omitempty,max=200"`
	VisitedByID       *string `json:"visited_by_id" validate:"omitempty,uuid"`
	VisitDate         *string `json:"visit_date" validate:"omitempty,isodate"`
	Outcome           *string `json:"outcome" validate:"omitempty,oneof=welcomed_encouraged prayer_request_received not_home concerns_shared invited_to_service"`
	FollowUpRequired  *bool   `json:"follow_up_required"`
	FollowUpDate      *string `json:"follow_up_date" validate:"omitempty,isodate"`
	Notes             *string `json:"notes"`
}

func (r UpdateVisitationRequest) ToUpdates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.PersonID != nil {
		u["person_id"] = uuid.MustParse(*r.PersonID)
	}
	if r.PersonVisitedName != nil {
		u["person_visited_name"] = strings.TrimSpace(*r.PersonVisitedName)
	}
	if r.VisitedByName != nil {
		u["visited_by_name"] = strings.TrimSpace(*r.VisitedByName)
	}
	if r.VisitedByID != nil {
		if id, err := uuid.Parse(*r.VisitedByID); err == nil {
			u["visited_by_id"] = id
		} else {
			u["visited_by_id"] = nil
		}
	}
	if r.VisitDate != nil {
		u["visit_date"] = *r.VisitDate
	}
	if r.Outcome != nil {
		u["outcome"] = *r.Outcome
	}
	if r.FollowUpRequired != nil {
		u["follow_up_required"] = *r.FollowUpRequired
	}
	if r.FollowUpDate != nil {
		u["follow_up_date"] = *r.FollowUpDate
	}
	if r.Notes != nil {
		u["notes"] = *r.Notes
	}
	return u
}
