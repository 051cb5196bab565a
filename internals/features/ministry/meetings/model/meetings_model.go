package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MeetingType string

const (
	MeetingBacenta        MeetingType = "bacenta"
	MeetingFlowPrayer     MeetingType = "flow_prayer"
	MeetingAllNightPrayer MeetingType = "all_night_prayer"
	MeetingBasonta        MeetingType = "basonta"
	MeetingSAT            MeetingType = "sat"
	MeetingFarleyPrayer   MeetingType = "farley_prayer"
)

type MeetingModel struct {
	MeetingID       uuid.UUID   `gorm:"column:meeting_id;type:uuid;primaryKey" json:"meeting_id"`
	MeetingDate     string      `gorm:"column:meeting_date;type:varchar(10);not null;index:idx_meetings_date" json:"meeting_date"`
	MeetingType     MeetingType `gorm:"column:meeting_type;type:varchar(30);not null;index:idx_meetings_type" json:"meeting_type"`
	StartTime       string      `gorm:"column:start_time;type:varchar(5)" json:"start_time,omitempty"`
	EndTime         string      `gorm:"column:end_time;type:varchar(5)" json:"end_time,omitempty"`
	DurationMinutes int         `gorm:"column:duration_minutes;not null;default:0" json:"duration_minutes"`
	Location        string      `gorm:"column:location;type:varchar(255)" json:"location,omitempty"`
	AttendanceCount int         `gorm:"column:attendance_count;not null;default:0" json:"attendance_count"`
	LeadersCount    int         `gorm:"column:leaders_count;not null;default:0" json:"leaders_count"`
	LeaderID        *uuid.UUID  `gorm:"column:leader_id;type:uuid" json:"leader_id,omitempty"`
	Notes           string      `gorm:"column:notes;type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MeetingModel) TableName() string {
	return "meetings"
}

func (m *MeetingModel) BeforeCreate(tx *gorm.DB) error {
	if m.MeetingID == uuid.Nil {
		m.MeetingID = uuid.New()
	}
	return nil
}

// MeetingAttendanceModel links a person to a meeting; one row per pair.
type MeetingAttendanceModel struct {
	MeetingAttendanceID uuid.UUID `gorm:"column:meeting_attendance_id;type:uuid;primaryKey" json:"meeting_attendance_id"`
	MeetingID           uuid.UUID `gorm:"column:meeting_id;type:uuid;not null;uniqueIndex:ux_meeting_attendance_pair,priority:1" json:"meeting_id"`
	PersonID            uuid.UUID `gorm:"column:person_id;type:uuid;not null;uniqueIndex:ux_meeting_attendance_pair,priority:2;index:idx_meeting_attendance_person" json:"person_id"`
	CreatedAt           time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (MeetingAttendanceModel) TableName() string {
	return "meeting_attendance"
}

func (m *MeetingAttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.MeetingAttendanceID == uuid.Nil {
		m.MeetingAttendanceID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return nil
}
