package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityModel struct {
	ActivityID        uuid.UUID `gorm:"column:activity_id;type:uuid;primaryKey" json:"activity_id"`
	ActivityType      string    `gorm:"column:activity_type;type:varchar(50);not null;index:idx_activities_type" json:"activity_type"`
	ActivityDate      string    `gorm:"column:activity_date;type:varchar(10);not null;index:idx_activities_date" json:"activity_date"`
	Description       string    `gorm:"column:description;type:text" json:"description,omitempty"`
	ParticipantsCount int       `gorm:"column:participants_count;not null;default:0" json:"participants_count"`
	Notes             string    `gorm:"column:notes;type:text" json:"notes,omitempty"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ActivityModel) TableName() string {
	return "activities"
}

func (a *ActivityModel) BeforeCreate(tx *gorm.DB) error {
	if a.ActivityID == uuid.Nil {
		a.ActivityID = uuid.New()
	}
	return nil
}
