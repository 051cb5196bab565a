package dto

import (
	"strings"

	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/meetings/model"
	"github.com/jayehzzz/my-church-tracker/internals/helpers/dbtime"

	"github.com/google/uuid"
)

const meetingTypes = "bacenta flow_prayer all_night_prayer basonta sat farley_prayer"

type CreateMeetingRequest struct {
	MeetingDate     string `json:"meeting_date" validate:"required,isodate"`
	MeetingType     string `json:"meeting_type" validate:"required,oneof=bacenta flow_prayer all_night_prayer basonta sat farley_prayer"`
	StartTime       string `json:"start_time" validate:"omitempty,hhmm"`
	EndTime         string `json:"end_time" validate:"omitempty,hhmm"`
	DurationMinutes *int   `json:"duration_minutes" validate:"omitempty,gte=0"`
	Location        string `json:"location" validate:"max=255"`
	AttendanceCount int    `json:"attendance_count" validate:"gte=0"`
	LeadersCount    int    `json:"leaders_count" validate:"gte=0"`
	LeaderID        string `json:"leader_id" validate:"omitempty,uuid"`
	Notes           string `json:"notes"`
}

// ToModel derives duration_minutes from start/end when it is not given.
func (r CreateMeetingRequest) ToModel() model.MeetingModel {
	start, _ := dbtime.NormalizeClock(r.StartTime)
	end, _ := dbtime.NormalizeClock(r.EndTime)
	m := model.MeetingModel{
		MeetingDate:     r.MeetingDate,
		MeetingType:     model.MeetingType(r.MeetingType),
		StartTime:       start,
		EndTime:         end,
		Location:        strings.TrimSpace(r.Location),
		AttendanceCount: r.AttendanceCount,
		LeadersCount:    r.LeadersCount,
		Notes:           r.Notes,
	}
	if id, err := uuid.Parse(r.LeaderID); err == nil {
		m.LeaderID = &id
	}
	switch {
	case r.DurationMinutes != nil:
		m.DurationMinutes = *r.DurationMinutes
	case start != "" && end != "":
		m.DurationMinutes, _ = dbtime.MinutesBetween(start, end)
	}
	return m
}

type UpdateMeetingRequest struct {
	MeetingDate     *string `json:"meeting_date" validate:"omitempty,isodate"`
	MeetingType     *string `json:"meeting_type" validate:"omitempty,oneof=bacenta flow_prayer all_night_prayer basonta sat farley_prayer"`
	StartTime       *string `json:"start_time" validate:"omitempty,hhmm"`
	EndTime         *string `json:"end_time" validate:"omitempty,hhmm"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,gte=0"`
	Location        *string `json:"location" validate:"omitempty,max=255"`
	AttendanceCount *int    `json:"attendance_count" validate:"omitempty,gte=0"`
	LeadersCount    *int    `json:"leaders_count" validate:"omitempty,gte=0"`
	LeaderID        *string `json:"leader_id" validate:"omitempty,uuid"`
	Notes           *string `json:"notes"`
}

func (r UpdateMeetingRequest) ToUpdates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.MeetingDate != nil {
		u["meeting_date"] = *r.MeetingDate
	}
	if r.MeetingType != nil {
		u["meeting_type"] = *r.MeetingType
	}
	if r.StartTime != nil {
		u["start_time"], _ = dbtime.NormalizeClock(*r.StartTime)
	}
	if r.EndTime != nil {
		u["end_time"], _ = dbtime.NormalizeClock(*r.EndTime)
	}
	if r.DurationMinutes != nil {
		u["duration_minutes"] = *r.DurationMinutes
	}
	if r.Location != nil {
		u["location"] = strings.TrimSpace(*r.Location)
	}
	if r.AttendanceCount != nil {
		u["attendance_count"] = *r.AttendanceCount
	}
	if r.LeadersCount != nil {
		u["leaders_count"] = *r.LeadersCount
	}
	if r.LeaderID != nil {
		if id, err := uuid.Parse(*r.LeaderID); err == nil {
			u["leader_id"] = id
		} else {
			u["leader_id"] = nil
		}
	}
	if r.Notes != nil {
		u["notes"] = *r.Notes
	}
	return u
}

type AddAttendeesRequest struct {
	PersonIDs []string `json:"person_ids" validate:"required,min=1,dive,uuid"`
}

func ValidMeetingType(s string) bool {
	for _, t := range strings.Fields(meetingTypes) {
		if t == s {
			return true
		}
	}
	return false
}
