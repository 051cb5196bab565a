package dto

import (
	"strings"

	peopleModel "github.com/jayehzzz/my-church-tracker/internals/features/people/people/model"

	"github.com/google/uuid"
)

// Contact responses (contact_category).
const (
	ResponseResponsive    = "responsive"
	ResponseNonResponsive = "non_responsive"
	ResponseEventsOnly    = "events_only"
	ResponseDoNotContact  = "do_not_contact"
	ResponseHasChurch     = "has_church"
)

type ContactedBy struct {
	PersonID  uuid.UUID `json:"person_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// ContactResponse is a person rendered in the evangelism contact shape.
type ContactResponse struct {
	peopleModel.PersonModel
	ID                uuid.UUID    `json:"id"`
	Response          string       `json:"response"`
	Status            string       `json:"status"`
	Converted         bool         `json:"converted"`
	ConversionDate    string       `json:"conversion_date,omitempty"`
	ContactedByPerson *ContactedBy `json:"contacted_by_person"`
}

func ToContactResponse(p peopleModel.PersonModel, inviter *peopleModel.PersonModel) ContactResponse {
	out := ContactResponse{
		PersonModel:    p,
		ID:             p.PersonID,
		Response:       p.ContactCategory,
		Status:         string(p.MemberStatus),
		Converted:      p.MemberStatus == peopleModel.MemberStatusMember,
		ConversionDate: p.MembershipDate,
	}
	if inviter != nil {
		out.ContactedByPerson = &ContactedBy{
			PersonID:  inviter.PersonID,
			FirstName: inviter.FirstName,
			LastName:  inviter.LastName,
		}
	}
	return out
}

type CreateContactRequest struct {
	FirstName         string `json:"first_name" validate:"required,max=100"`
	LastName          string `json:"last_name" validate:"max=100"`
	Email             string `json:"email" validate:"omitempty,email"`
	Phone             string `json:"phone" validate:"max=50"`
	Address           string `json:"address"`
	ContactDate       string `json:"contact_date" validate:"required,isodate"`
	Response          string `json:"response" validate:"required,oneof=responsive non_responsive events_only do_not_contact has_church"`
	InvitedByID       string `json:"invited_by_id" validate:"omitempty,uuid"`
	FollowUpDate      string `json:"follow_up_date" validate:"omitempty,isodate"`
	SalvationDecision bool   `json:"salvation_decision"`
	Converted         bool   `json:"converted"`
	ConversionDate    string `json:"conversion_date" validate:"omitempty,isodate"`
}

func parseRef(s string) *uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &id
}

// ToModel builds the person row. A converted contact is created as a member
// directly; membership_date falls back to contact_date.
func (r CreateContactRequest) ToModel() peopleModel.PersonModel {
	p := peopleModel.PersonModel{
		FirstName:         strings.TrimSpace(r.FirstName),
		LastName:          strings.TrimSpace(r.LastName),
		Email:             strings.TrimSpace(r.Email),
		Phone:             strings.TrimSpace(r.Phone),
		Address:           r.Address,
		MemberStatus:      peopleModel.MemberStatusGuest,
		ContactCategory:   r.Response,
		ContactDate:       r.ContactDate,
		FollowUpDate:      r.FollowUpDate,
		InvitedByID:       parseRef(r.InvitedByID),
		SalvationDecision: r.SalvationDecision,
	}
	if r.Converted {
		p.MemberStatus = peopleModel.MemberStatusMember
		p.MembershipDate = r.ConversionDate
		if p.MembershipDate == "" {
			p.MembershipDate = r.ContactDate
		}
	}
	return p
}

type UpdateContactRequest struct {
	FirstName         *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName          *string `json:"last_name" validate:"omitempty,max=100"`
	Email             *string `json:"email" validate:"omitempty,email"`
	Phone             *string `json:"phone" validate:"omitempty,max=50"`
	Address           *string `json:"address"`
	ContactDate       *string `json:"contact_date" validate:"omitempty,isodate"`
	Response          *string `json:"response" validate:"omitempty,oneof=responsive non_responsive events_only do_not_contact has_church"`
	InvitedByID       *string `json:"invited_by_id" validate:"omitempty,uuid"`
	FollowUpDate      *string `json:"follow_up_date" validate:"omitempty,isodate"`
	SalvationDecision *bool   `json:"salvation_decision"`
	Converted         *bool   `json:"converted"`
	ConversionDate    *string `json:"conversion_date" validate:"omitempty,isodate"`
}

// ToUpdates returns the plain column updates. converted / conversion_date
// are handled by the service through the status transition.
func (r UpdateContactRequest) ToUpdates() map[string]interface{} {
	u := map[string]interface{}{}
	set := func(col string, v *string) {
		if v != nil {
			u[col] = strings.TrimSpace(*v)
		}
	}
	set("first_name", r.FirstName)
	set("last_name", r.LastName)
	set("email", r.Email)
	set("phone", r.Phone)
	set("address", r.Address)
	set("contact_date", r.ContactDate)
	set("contact_category", r.Response)
	set("follow_up_date", r.FollowUpDate)
	if r.InvitedByID != nil {
		u["invited_by_id"] = parseRef(*r.InvitedByID)
	}
	if r.SalvationDecision != nil {
		u["salvation_decision"] = *r.SalvationDecision
	}
	return u
}

type ConvertRequest struct {
	ConversionDate string `json:"conversion_date" validate:"omitempty,isodate"`
}
