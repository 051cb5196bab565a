package dto

import (
	"strings"

	"github.com/jayehzzz/my-church-tracker/internals/features/people/people/model"
	"github.com/jayehzzz/my-church-tracker/internals/helpers/dbtypes"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ====================
// Response DTO
// ====================

type PersonResponse struct {
	model.PersonModel
	InvitedBy string `json:"invited_by,omitempty"`
}

func ToPersonResponse(p model.PersonModel, invitedBy string) PersonResponse {
	return PersonResponse{PersonModel: p, InvitedBy: invitedBy}
}

// ====================
// Request DTO
// ====================

type CreatePersonRequest struct {
	FirstName     string `json:"first_name" validate:"required,max=100"`
	LastName      string `json:"last_name" validate:"required,max=100"`
	PreferredName string `json:"preferred_name" validate:"max=100"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone" validate:"max=50"`
	Address       string `json:"address"`
	City          string `json:"city" validate:"max=100"`
	State         string `json:"state" validate:"max=100"`
	ZipCode       string `json:"zip_code" validate:"max=20"`

	Birthday string `json:"birthday" validate:"omitempty,isodate"`
	// DateOfBirth is the older name for birthday.
	DateOfBirth      string   `json:"date_of_birth" validate:"omitempty,isodate"`
	Gender           string   `json:"gender" validate:"max=20"`
	MaritalStatus    string   `json:"marital_status" validate:"max=30"`
	EmploymentStatus string   `json:"employment_status" validate:"max=30"`
	Basontas         []string `json:"basontas"`

	MemberStatus   string `json:"member_status" validate:"omitempty,oneof=guest member leader archived visitor"`
	Role           string `json:"role" validate:"omitempty,oneof=basonta_leader bacenta_leader no_role"`
	ActivityStatus string `json:"activity_status" validate:"omitempty,oneof=regular irregular dormant"`
	LeaderID       string `json:"leader_id" validate:"omitempty,uuid"`

	ContactCategory string `json:"contact_category" validate:"omitempty,oneof=responsive non_responsive events_only do_not_contact has_church"`
	ContactDate     string `json:"contact_date" validate:"omitempty,isodate"`
	FollowUpDate    string `json:"follow_up_date" validate:"omitempty,isodate"`
	InvitedByID     string `json:"invited_by_id" validate:"omitempty,uuid"`

	FirstVisitDate    string `json:"first_visit_date" validate:"omitempty,isodate"`
	MembershipDate    string `json:"membership_date" validate:"omitempty,isodate"`
	IsBaptised        bool   `json:"is_baptised"`
	IsTither          bool   `json:"is_tither"`
	SalvationDecision bool   `json:"salvation_decision"`

	Lat               *float64               `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng               *float64               `json:"lng" validate:"omitempty,gte=-180,lte=180"`
	AvatarURL         string                 `json:"avatar_url" validate:"omitempty,url"`
	EngagementProfile map[string]interface{} `json:"engagement_profile"`
}

func optionalUUID(s string) *uuid.UUID {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

func (r CreatePersonRequest) ToModel() model.PersonModel {
	birthday := r.Birthday
	if birthday == "" {
		birthday = r.DateOfBirth
	}
	status := model.MemberStatusGuest
	if r.MemberStatus != "" {
		if s, err := model.ParseMemberStatus(r.MemberStatus); err == nil {
			status = s
		}
	}
	p := model.PersonModel{
		FirstName:         strings.TrimSpace(r.FirstName),
		LastName:          strings.TrimSpace(r.LastName),
		PreferredName:     strings.TrimSpace(r.PreferredName),
		Email:             strings.TrimSpace(r.Email),
		Phone:             strings.TrimSpace(r.Phone),
		Address:           r.Address,
		City:              r.City,
		State:             r.State,
		ZipCode:           r.ZipCode,
		Birthday:          birthday,
		Gender:            r.Gender,
		MaritalStatus:     r.MaritalStatus,
		EmploymentStatus:  r.EmploymentStatus,
		Basontas:          dbtypes.TextArray(r.Basontas),
		MemberStatus:      status,
		Role:              model.PersonRole(r.Role),
		ActivityStatus:    model.ActivityStatus(r.ActivityStatus),
		LeaderID:          optionalUUID(r.LeaderID),
		ContactCategory:   r.ContactCategory,
		ContactDate:       r.ContactDate,
		FollowUpDate:      r.FollowUpDate,
		InvitedByID:       optionalUUID(r.InvitedByID),
		FirstVisitDate:    r.FirstVisitDate,
		MembershipDate:    r.MembershipDate,
		IsBaptised:        r.IsBaptised,
		IsTither:          r.IsTither,
		SalvationDecision: r.SalvationDecision,
		Lat:               r.Lat,
		Lng:               r.Lng,
		AvatarURL:         r.AvatarURL,
	}
	if r.EngagementProfile != nil {
		p.EngagementProfile = datatypes.JSONMap(r.EngagementProfile)
	}
	return p
}

// UpdatePersonRequest is a partial update: only non-nil fields are written.
// member_status is refused here; status changes go through the status endpoint.
type UpdatePersonRequest struct {
	FirstName        *string   `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName         *string   `json:"last_name" validate:"omitempty,min=1,max=100"`
	PreferredName    *string   `json:"preferred_name" validate:"omitempty,max=100"`
	Email            *string   `json:"email" validate:"omitempty,email"`
	Phone            *string   `json:"phone" validate:"omitempty,max=50"`
	Address          *string   `json:"address"`
	City             *string   `json:"city" validate:"omitempty,max=100"`
	State            *string   `json:"state" validate:"omitempty,max=100"`
	ZipCode          *string   `json:"zip_code" validate:"omitempty,max=20"`
	Birthday         *string   `json:"birthday" validate:"omitempty,isodate"`
	DateOfBirth      *string   `json:"date_of_birth" validate:"omitempty,isodate"`
	Gender           *string   `json:"gender" validate:"omitempty,max=20"`
	MaritalStatus    *string   `json:"marital_status" validate:"omitempty,max=30"`
	EmploymentStatus *string   `json:"employment_status" validate:"omitempty,max=30"`
	Basontas         *[]string `json:"basontas"`

	MemberStatus   *string `json:"member_status"`
	Role           *string `json:"role" validate:"omitempty,oneof=basonta_leader bacenta_leader no_role"`
	ActivityStatus *string `json:"activity_status" validate:"omitempty,oneof=regular irregular dormant"`
	LeaderID       *string `json:"leader_id" validate:"omitempty,uuid"`

	ContactCategory *string `json:"contact_category" validate:"omitempty,oneof=responsive non_responsive events_only do_not_contact has_church"`
	ContactDate     *string `json:"contact_date" validate:"omitempty,isodate"`
	FollowUpDate    *string `json:"follow_up_date" validate:"omitempty,isodate"`
	InvitedByID     *string `json:"invited_by_id" validate:"omitempty,uuid"`

	FirstVisitDate    *string `json:"first_visit_date" validate:"omitempty,isodate"`
	MembershipDate    *string `json:"membership_date" validate:"omitempty,isodate"`
	IsBaptised        *bool   `json:"is_baptised"`
	IsTither          *bool   `json:"is_tither"`
	SalvationDecision *bool   `json:"salvation_decision"`

	Lat               *float64                `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng               *float64                `json:"lng" validate:"omitempty,gte=-180,lte=180"`
	AvatarURL         *string                 `json:"avatar_url" validate:"omitempty,url"`
	EngagementProfile *map[string]interface{} `json:"engagement_profile"`
}

// ToUpdates collects the present fields as column -> value. An empty string
// clears nullable references (leader_id, invited_by_id).
func (r UpdatePersonRequest) ToUpdates() map[string]interface{} {
	u := map[string]interface{}{}
	setStr := func(col string, v *string) {
		if v != nil {
			u[col] = strings.TrimSpace(*v)
		}
	}
	setRef := func(col string, v *string) {
		if v != nil {
			u[col] = optionalUUID(*v)
		}
	}
	setBool := func(col string, v *bool) {
		if v != nil {
			u[col] = *v
		}
	}

	setStr("first_name", r.FirstName)
	setStr("last_name", r.LastName)
	setStr("preferred_name", r.PreferredName)
	setStr("email", r.Email)
	setStr("phone", r.Phone)
	setStr("address", r.Address)
	setStr("city", r.City)
	setStr("state", r.State)
	setStr("zip_code", r.ZipCode)
	setStr("birthday", r.DateOfBirth)
	setStr("birthday", r.Birthday)
	setStr("gender", r.Gender)
	setStr("marital_status", r.MaritalStatus)
	setStr("employment_status", r.EmploymentStatus)
	if r.Basontas != nil {
		u["basontas"] = dbtypes.TextArray(*r.Basontas)
	}
	setStr("role", r.Role)
	setStr("activity_status", r.ActivityStatus)
	setRef("leader_id", r.LeaderID)
	setStr("contact_category", r.ContactCategory)
	setStr("contact_date", r.ContactDate)
	setStr("follow_up_date", r.FollowUpDate)
	setRef("invited_by_id", r.InvitedByID)
	setStr("first_visit_date", r.FirstVisitDate)
	setStr("membership_date", r.MembershipDate)
	setBool("is_baptised", r.IsBaptised)
	setBool("is_tither", r.IsTither)
	setBool("salvation_decision", r.SalvationDecision)
	if r.Lat != nil {
		u["lat"] = *r.Lat
	}
	if r.Lng != nil {
		u["lng"] = *r.Lng
	}
	setStr("avatar_url", r.AvatarURL)
	if r.EngagementProfile != nil {
		u["engagement_profile"] = datatypes.JSONMap(*r.EngagementProfile)
	}
	return u
}

type ChangeStatusRequest struct {
	Status         string `json:"status" validate:"required,oneof=guest member leader archived"`
	MembershipDate string `json:"membership_date" validate:"omitempty,isodate"`
}
