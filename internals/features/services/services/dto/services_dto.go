package dto

import (
	"strings"

	"github.com/jayehzzz/my-church-tracker/internals/features/services/services/model"
	"github.com/jayehzzz/my-church-tracker/internals/helpers/dbtime"
	"github.com/jayehzzz/my-church-tracker/internals/helpers/dbtypes"
)

type CreateServiceRequest struct {
	ServiceDate        string   `json:"service_date" validate:"required,isodate"`
	ServiceType        string   `json:"service_type" validate:"required,oneof=sunday_service special_service"`
	ServiceTime        string   `json:"service_time" validate:"omitempty,hhmm"`
	Location           string   `json:"location" validate:"max=255"`
	SermonTopic        string   `json:"sermon_topic" validate:"max=255"`
	SermonSpeaker      string   `json:"sermon_speaker" validate:"max=255"`
	TotalAttendance    int      `json:"total_attendance" validate:"gte=0"`
	GuestsCount        int      `json:"guests_count" validate:"gte=0"`
	SalvationDecisions int      `json:"salvation_decisions" validate:"gte=0"`
	TithersCount       int      `json:"tithers_count" validate:"gte=0"`
	Individuals        []string `json:"individuals"`
	Photos             []string `json:"photos" validate:"dive,url"`
}

func (r CreateServiceRequest) ToModel() model.ServiceModel {
	clock, _ := dbtime.NormalizeClock(r.ServiceTime)
	return model.ServiceModel{
		ServiceDate:        r.ServiceDate,
		ServiceType:        model.ServiceType(r.ServiceType),
		ServiceTime:        clock,
		Location:           strings.TrimSpace(r.Location),
		SermonTopic:        strings.TrimSpace(r.SermonTopic),
		SermonSpeaker:      strings.TrimSpace(r.SermonSpeaker),
		TotalAttendance:    r.TotalAttendance,
		GuestsCount:        r.GuestsCount,
		SalvationDecisions: r.SalvationDecisions,
		TithersCount:       r.TithersCount,
		Individuals:        dbtypes.TextArray(r.Individuals),
		Photos:             dbtypes.TextArray(r.Photos),
	}
}

type UpdateServiceRequest struct {
	ServiceDate        *string   `json:"service_date" validate:"omitempty,isodate"`
	ServiceType        *string   `json:"service_type" validate:"omitempty,oneof=sunday_service special_service"`
	ServiceTime        *string   `json:"service_time" validate:"omitempty,hhmm"`
	Location           *string   `json:"location" validate:"omitempty,max=255"`
	SermonTopic        *string   `json:"sermon_topic" validate:"omitempty,max=255"`
	SermonSpeaker      *string   `json:"sermon_speaker" validate:"omitempty,max=255"`
	TotalAttendance    *int      `json:"total_attendance" validate:"omitempty,gte=0"`
	GuestsCount        *int      `json:"guests_count" validate:"omitempty,gte=0"`
	SalvationDecisions *int      `json:"salvation_decisions" validate:"omitempty,gte=0"`
	TithersCount       *int      `json:"tithers_count" validate:"omitempty,gte=0"`
	Individuals        *[]string `json:"individuals"`
	Photos             *[]string `json:"photos" validate:"omitempty,dive,url"`
}

func (r UpdateServiceRequest) ToUpdates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.ServiceDate != nil {
		u["service_date"] = *r.ServiceDate
	}
	if r.ServiceType != nil {
		u["service_type"] = *r.ServiceType
	}
	if r.ServiceTime != nil {
		clock, _ := dbtime.NormalizeClock(*r.ServiceTime)
		u["service_time"] = clock
	}
	if r.Location != nil {
		u["location"] = strings.TrimSpace(*r.Location)
	}
	if r.SermonTopic != nil {
		u["sermon_topic"] = strings.TrimSpace(*r.SermonTopic)
	}
	if r.SermonSpeaker != nil {
		u["sermon_speaker"] = strings.TrimSpace(*r.SermonSpeaker)
	}
	if r.TotalAttendance != nil {
		u["total_attendance"] = *r.TotalAttendance
	}
	if r.GuestsCount != nil {
		u["guests_count"] = *r.GuestsCount
	}
	if r.SalvationDecisions != nil {
		u["salvation_decisions"] = *r.SalvationDecisions
	}
	if r.TithersCount != nil {
		u["tithers_count"] = *r.TithersCount
	}
	if r.Individuals != nil {
		u["individuals"] = dbtypes.TextArray(*r.Individuals)
	}
	if r.Photos != nil {
		u["photos"] = dbtypes.TextArray(*r.Photos)
	}
	return u
}
