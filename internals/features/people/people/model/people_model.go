package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jayehzzz/my-church-tracker/internals/helpers/dbtypes"
)

type PersonRole string

const (
	RoleBasontaLeader PersonRole = "basonta_leader"
	RoleBacentaLeader PersonRole = "bacenta_leader"
	RoleNone          PersonRole = "no_role"

	// RoleBasontaWorker only exists in legacy rows; see the remove-basonta-worker migration.
	RoleBasontaWorker PersonRole = "basonta_worker"
)

type ActivityStatus string

const (
	ActivityRegular   ActivityStatus = "regular"
	ActivityIrregular ActivityStatus = "irregular"
	ActivityDormant   ActivityStatus = "dormant"
)

// PersonModel is the unified person record: members, leaders, guests and
// evangelism contacts all live in the people table.
type PersonModel struct {
	PersonID uuid.UUID `gorm:"column:person_id;type:uuid;primaryKey" json:"person_id"`

	FirstName     string `gorm:"column:first_name;type:varchar(100);not null" json:"first_name"`
	LastName      string `gorm:"column:last_name;type:varchar(100);not null;index:idx_people_last_name" json:"last_name"`
	PreferredName string `gorm:"column:preferred_name;type:varchar(100)" json:"preferred_name,omitempty"`
	Email         string `gorm:"column:email;type:varchar(255)" json:"email,omitempty"`
	Phone         string `gorm:"column:phone;type:varchar(50)" json:"phone,omitempty"`

	Address string `gorm:"column:address;type:text" json:"address,omitempty"`
	City    string `gorm:"column:city;type:varchar(100)" json:"city,omitempty"`
	State   string `gorm:"column:state;type:varchar(100)" json:"state,omitempty"`
	ZipCode string `gorm:"column:zip_code;type:varchar(20)" json:"zip_code,omitempty"`

	Birthday         string            `gorm:"column:birthday;type:varchar(10)" json:"birthday,omitempty"`
	Gender           string            `gorm:"column:gender;type:varchar(20)" json:"gender,omitempty"`
	MaritalStatus    string            `gorm:"column:marital_status;type:varchar(30)" json:"marital_status,omitempty"`
	EmploymentStatus string            `gorm:"column:employment_status;type:varchar(30)" json:"employment_status,omitempty"`
	Basontas         dbtypes.TextArray `gorm:"column:basontas" json:"basontas"`

	MemberStatus   MemberStatus   `gorm:"column:member_status;type:varchar(20);not null;index:idx_people_member_status" json:"member_status"`
	Role           PersonRole     `gorm:"column:role;type:varchar(30)" json:"role,omitempty"`
	ActivityStatus ActivityStatus `gorm:"column:activity_status;type:varchar(20)" json:"activity_status,omitempty"`
	LeaderID       *uuid.UUID     `gorm:"column:leader_id;type:uuid" json:"leader_id,omitempty"`

	// Evangelism / contact info
	ContactCategory string     `gorm:"column:contact_category;type:varchar(30)" json:"contact_category,omitempty"`
	ContactDate     string     `gorm:"column:contact_date;type:varchar(10)" json:"contact_date,omitempty"`
	FollowUpDate    string     `gorm:"column:follow_up_date;type:varchar(10)" json:"follow_up_date,omitempty"`
	InvitedByID     *uuid.UUID `gorm:"column:invited_by_id;type:uuid;index:idx_people_invited_by" json:"invited_by_id,omitempty"`

	// Spiritual milestones
	FirstVisitDate    string `gorm:"column:first_visit_date;type:varchar(10)" json:"first_visit_date,omitempty"`
	MembershipDate    string `gorm:"column:membership_date;type:varchar(10)" json:"membership_date,omitempty"`
	IsBaptised        bool   `gorm:"column:is_baptised;not null;default:false" json:"is_baptised"`
	IsTither          bool   `gorm:"column:is_tither;not null;default:false" json:"is_tither"`
	SalvationDecision bool   `gorm:"column:salvation_decision;not null;default:false" json:"salvation_decision"`

	Lat       *float64 `gorm:"column:lat" json:"lat,omitempty"`
	Lng       *float64 `gorm:"column:lng" json:"lng,omitempty"`
	AvatarURL string   `gorm:"column:avatar_url;type:text" json:"avatar_url,omitempty"`

	// Engagement probabilities used by the seed generator (serviceAttendance, prayerMeetings, ...).
	EngagementProfile datatypes.JSONMap `gorm:"column:engagement_profile" json:"engagement_profile,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PersonModel) TableName() string {
	return "people"
}

func (p *PersonModel) BeforeCreate(tx *gorm.DB) error {
	if p.PersonID == uuid.Nil {
		p.PersonID = uuid.New()
	}
	if p.MemberStatus == "" {
		p.MemberStatus = MemberStatusGuest
	}
	if p.Role == "" {
		p.Role = RoleNone
	}
	return nil
}

// FullName is "First Last" trimmed of the missing half.
func (p *PersonModel) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}
