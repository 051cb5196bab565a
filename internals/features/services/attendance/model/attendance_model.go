package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceModel links one person to one service. (service_id, person_id) is
// unique; the reconciler keeps it that way for roster submissions.
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"column:attendance_id;type:uuid;primaryKey" json:"attendance_id"`
	ServiceID    uuid.UUID `gorm:"column:service_id;type:uuid;not null;uniqueIndex:ux_attendance_service_person,priority:1;index:idx_attendance_service" json:"service_id"`
	PersonID     uuid.UUID `gorm:"column:person_id;type:uuid;not null;uniqueIndex:ux_attendance_service_person,priority:2;index:idx_attendance_person" json:"person_id"`

	MadeSalvationDecision bool `gorm:"column:made_salvation_decision;not null;default:false" json:"made_salvation_decision"`
	GaveTithe             bool `gorm:"column:gave_tithe;not null;default:false" json:"gave_tithe"`
	FirstTimer            bool `gorm:"column:first_timer;not null;default:false" json:"first_timer"`

	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}

func (a *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if a.AttendanceID == uuid.Nil {
		a.AttendanceID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	return nil
}

// AttendancePatch carries the metadata fields a caller wants to change. Nil
// means "leave the stored value alone".
type AttendancePatch struct {
	MadeSalvationDecision *bool
	GaveTithe             *bool
	FirstTimer            *bool
}

func (p AttendancePatch) IsEmpty() bool {
	return p.MadeSalvationDecision == nil && p.GaveTithe == nil && p.FirstTimer == nil
}

// Columns returns the column -> value map for gorm Updates.
func (p AttendancePatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.MadeSalvationDecision != nil {
		cols["made_salvation_decision"] = *p.MadeSalvationDecision
	}
	if p.GaveTithe != nil {
		cols["gave_tithe"] = *p.GaveTithe
	}
	if p.FirstTimer != nil {
		cols["first_timer"] = *p.FirstTimer
	}
	return cols
}

// Apply copies the present fields onto a.
func (p AttendancePatch) Apply(a *AttendanceModel) {
	if p.MadeSalvationDecision != nil {
		a.MadeSalvationDecision = *p.MadeSalvationDecision
	}
	if p.GaveTithe != nil {
		a.GaveTithe = *p.GaveTithe
	}
	if p.FirstTimer != nil {
		a.FirstTimer = *p.FirstTimer
	}
}
