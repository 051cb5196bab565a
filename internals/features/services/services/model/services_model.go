package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jayehzzz/my-church-tracker/internals/helpers/dbtypes"
)

type ServiceType string

const (
	ServiceTypeSunday  ServiceType = "sunday_service"
	ServiceTypeSpecial ServiceType = "special_service"
)

// ServiceModel is one calendared gathering. The *_count columns are snapshots
// written by people or the stats refresher, not live aggregates.
type ServiceModel struct {
	ServiceID     uuid.UUID   `gorm:"column:service_id;type:uuid;primaryKey" json:"service_id"`
	ServiceDate   string      `gorm:"column:service_date;type:varchar(10);not null;index:idx_services_date" json:"service_date"`
	ServiceType   ServiceType `gorm:"column:service_type;type:varchar(50);not null" json:"service_type"`
	ServiceTime   string      `gorm:"column:service_time;type:varchar(5)" json:"service_time,omitempty"`
	Location      string      `gorm:"column:location;type:varchar(255)" json:"location,omitempty"`
	SermonTopic   string      `gorm:"column:sermon_topic;type:varchar(255)" json:"sermon_topic,omitempty"`
	SermonSpeaker string      `gorm:"column:sermon_speaker;type:varchar(255)" json:"sermon_speaker,omitempty"`

	TotalAttendance    int `gorm:"column:total_attendance;not null;default:0" json:"total_attendance"`
	GuestsCount        int `gorm:"column:guests_count;not null;default:0" json:"guests_count"`
	SalvationDecisions int `gorm:"column:salvation_decisions;not null;default:0" json:"salvation_decisions"`
	TithersCount       int `gorm:"column:tithers_count;not null;default:0" json:"tithers_count"`

	Individuals dbtypes.TextArray `gorm:"column:individuals" json:"individuals"`
	Photos      dbtypes.TextArray `gorm:"column:photos" json:"photos"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ServiceModel) TableName() string {
	return "services"
}

func (s *ServiceModel) BeforeCreate(tx *gorm.DB) error {
	if s.ServiceID == uuid.Nil {
		s.ServiceID = uuid.New()
	}
	return nil
}

// IsSunday matches the naming variants seen in imported data
// ("sunday", "Sunday Service", "sunday_service", ...).
func (s *ServiceModel) IsSunday() bool {
	return strings.Contains(strings.ToLower(string(s.ServiceType)), "sunday")
}

// AttendanceCount prefers the snapshot total and falls back to the
// individuals list.
func (s *ServiceModel) AttendanceCount() int {
	if s.TotalAttendance > 0 {
		return s.TotalAttendance
	}
	return len(s.Individuals)
}
