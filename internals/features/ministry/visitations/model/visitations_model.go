package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisitOutcome string

const (
	OutcomeWelcomedEncouraged    VisitOutcome = "welcomed_encouraged"
	OutcomePrayerRequestReceived VisitOutcome = "prayer_request_received"
	OutcomeNotHome               VisitOutcome = "not_home"
	OutcomeConcernsShared        VisitOutcome = "concerns_shared"
	OutcomeInvitedToService      VisitOutcome = "invited_to_service"
)

type VisitationModel struct {
	VisitationID      uuid.UUID    `gorm:"column:visitation_id;type:uuid;primaryKey" json:"visitation_id"`
	PersonID          uuid.UUID    `gorm:"column:person_id;type:uuid;not null;index:idx_visitations_person" json:"person_id"`
	PersonVisitedName string       `gorm:"column:person_visited_name;type:varchar(200)" json:"person_visited_name,omitempty"`
	VisitedByName     string       `gorm:"column:visited_by_name;type:varchar(200)" json:"visited_by_name,omitempty"`
	VisitedByID       *uuid.UUID   `gorm:"column:visited_by_id;type:uuid" json:"visited_by_id,omitempty"`
	VisitDate         string       `gorm:"column:visit_date;type:varchar(10);not null;index:idx_visitations_date" json:"visit_date"`
	Outcome           VisitOutcome `gorm:"column:outcome;type:varchar(40);not null" json:"outcome"`
	FollowUpRequired  bool         `gorm:"column:follow_up_required;not null;default:false;index:idx_visitations_follow_up" json:"follow_up_required"`
	FollowUpDate      string       `gorm:"column:follow_up_date;type:varchar(10)" json:"follow_up_date,omitempty"`
	Notes             string       `gorm:"column:notes;type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (VisitationModel) TableName() string {
	return "visitations"
}

func (v *VisitationModel) BeforeCreate(tx *gorm.DB) error {
	if v.VisitationID == uuid.Nil {
		v.VisitationID = uuid.New()
	}
	return nil
}
