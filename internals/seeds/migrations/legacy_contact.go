package migrations

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LegacyContactModel is the old evangelism_contacts table, kept only so
// unify-contacts can read it. MigratedPersonID marks rows already moved.
type LegacyContactModel struct {
	ContactID         uuid.UUID  `gorm:"column:contact_id;type:uuid;primaryKey"`
	FirstName         string     `gorm:"column:first_name;type:varchar(100);not null"`
	LastName          string     `gorm:"column:last_name;type:varchar(100)"`
	Email             string     `gorm:"column:email;type:varchar(255)"`
	Phone             string     `gorm:"column:phone;type:varchar(50)"`
	Address           string     `gorm:"column:address;type:text"`
	ContactDate       string     `gorm:"column:contact_date;type:varchar(10);not null"`
	Response          string     `gorm:"column:response;type:varchar(30);not null"`
	FollowUpDate      string     `gorm:"column:follow_up_date;type:varchar(10)"`
	Converted         bool       `gorm:"column:converted;not null;default:false"`
	ConversionDate    string     `gorm:"column:conversion_date;type:varchar(10)"`
	Status            string     `gorm:"column:status;type:varchar(30)"`
	AttendedChurch    bool       `gorm:"column:attended_church;not null;default:false"`
	SalvationDecision bool       `gorm:"column:salvation_decision;not null;default:false"`
	InvitedByID       *uuid.UUID `gorm:"column:invited_by_id;type:uuid"`
	AddedAsPersonID   *uuid.UUID `gorm:"column:added_as_person_id;type:uuid"`
	MigratedPersonID  *uuid.UUID `gorm:"column:migrated_person_id;type:uuid"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (LegacyContactModel) TableName() string {
	return "evangelism_contacts"
}

func (c *LegacyContactModel) BeforeCreate(tx *gorm.DB) error {
	if c.ContactID == uuid.Nil {
		c.ContactID = uuid.New()
	}
	return nil
}
