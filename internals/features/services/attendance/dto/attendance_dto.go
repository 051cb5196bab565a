package dto

import (
	"github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/model"
	"github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/service"

	"github.com/google/uuid"
)

type CreateAttendanceRequest struct {
	ServiceID             string `json:"service_id" validate:"required,uuid"`
	PersonID              string `json:"person_id" validate:"required,uuid"`
	MadeSalvationDecision bool   `json:"made_salvation_decision"`
	GaveTithe             bool   `json:"gave_tithe"`
	FirstTimer            bool   `json:"first_timer"`
}

// ToModel assumes the request passed validation.
func (r CreateAttendanceRequest) ToModel() model.AttendanceModel {
	return model.AttendanceModel{
		ServiceID:             uuid.MustParse(r.ServiceID),
		PersonID:              uuid.MustParse(r.PersonID),
		MadeSalvationDecision: r.MadeSalvationDecision,
		GaveTithe:             r.GaveTithe,
		FirstTimer:            r.FirstTimer,
	}
}

type UpdateAttendanceRequest struct {
	ServiceID             *string `json:"service_id" validate:"omitempty,uuid"`
	PersonID              *string `json:"person_id" validate:"omitempty,uuid"`
	MadeSalvationDecision *bool   `json:"made_salvation_decision"`
	GaveTithe             *bool   `json:"gave_tithe"`
	FirstTimer            *bool   `json:"first_timer"`
}

func (r UpdateAttendanceRequest) ToUpdates() map[string]interface{} {
	u := model.AttendancePatch{
		MadeSalvationDecision: r.MadeSalvationDecision,
		GaveTithe:             r.GaveTithe,
		FirstTimer:            r.FirstTimer,
	}.Columns()
	if r.ServiceID != nil {
		u["service_id"] = uuid.MustParse(*r.ServiceID)
	}
	if r.PersonID != nil {
		u["person_id"] = uuid.MustParse(*r.PersonID)
	}
	return u
}

type BulkAttendanceRequest struct {
	Records []CreateAttendanceRequest `json:"records" validate:"required,min=1,dive"`
}

type SyncEntry struct {
	PersonID              string `json:"person_id" validate:"required,uuid"`
	MadeSalvationDecision *bool  `json:"made_salvation_decision"`
	GaveTithe             *bool  `json:"gave_tithe"`
	FirstTimer            *bool  `json:"first_timer"`
}

// SyncAttendanceRequest is the full roster of a service. An empty list clears it.
type SyncAttendanceRequest struct {
	ServiceID      string      `json:"service_id" validate:"required,uuid"`
	AttendanceData []SyncEntry `json:"attendance_data" validate:"dive"`
}

func (r SyncAttendanceRequest) Roster() []service.RosterEntry {
	out := make([]service.RosterEntry, 0, len(r.AttendanceData))
	for _, e := range r.AttendanceData {
		out = append(out, service.RosterEntry{
			PersonID:              uuid.MustParse(e.PersonID),
			MadeSalvationDecision: e.MadeSalvationDecision,
			GaveTithe:             e.GaveTithe,
			FirstTimer:            e.FirstTimer,
		})
	}
	return out
}
