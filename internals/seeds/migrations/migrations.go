// Package migrations holds the one-off data migrations run through churchctl.
package migrations

import (
	"context"
	"errors"
	"fmt"
	"time"

	peopleModel "github.com/jayehzzz/my-church-tracker/internals/features/people/people/model"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RemoveBasontaWorker moves everyone with the retired basonta_worker role to
// no_role. Ministry membership stays in the basontas column.
func RemoveBasontaWorker(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).Model(&peopleModel.PersonModel{}).
		Where("role = ?", peopleModel.RoleBasontaWorker).
		Updates(map[string]interface{}{
			"role":       peopleModel.RoleNone,
			"updated_at": now,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	log.Info().Int64("updated", res.RowsAffected).Msg("[MIGRATE] remove-basonta-worker")
	return res.RowsAffected, nil
}

type UnifyResult struct {
	Scanned  int `json:"scanned"`
	Inserted int `json:"inserted"`
	Patched  int `json:"patched"`
}

// UnifyContacts copies evangelism_contacts rows into people. Rows that point
// at an existing person (added_as_person_id) patch that person instead of
// creating a duplicate. Each row is marked with migrated_person_id in the same
// transaction, so a rerun skips it.
func UnifyContacts(ctx context.Context, db *gorm.DB) (*UnifyResult, error) {
	out := &UnifyResult{}
	db = db.WithContext(ctx)
	if !db.Migrator().HasTable(&LegacyContactModel{}) {
		log.Info().Msg("[MIGRATE] unify-contacts: no evangelism_contacts table, nothing to do")
		return out, nil
	}
	if !db.Migrator().HasColumn(&LegacyContactModel{}, "migrated_person_id") {
		if err := db.Migrator().AddColumn(&LegacyContactModel{}, "MigratedPersonID"); err != nil {
			return nil, fmt.Errorf("add migrated_person_id: %w", err)
		}
	}

	var rows []LegacyContactModel
	if err := db.Where("migrated_person_id IS NULL").Order("contact_date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out.Scanned = len(rows)

	for i := range rows {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		c := &rows[i]
		patched, err := unifyOne(db, c)
		if err != nil {
			return out, fmt.Errorf("contact %s: %w", c.ContactID, err)
		}
		if patched {
			out.Patched++
		} else {
			out.Inserted++
		}
	}
	log.Info().
		Int("scanned", out.Scanned).
		Int("inserted", out.Inserted).
		Int("patched", out.Patched).
		Msg("[MIGRATE] unify-contacts")
	return out, nil
}

func unifyOne(db *gorm.DB, c *LegacyContactModel) (patched bool, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		personID := c.AddedAsPersonID
		if personID != nil {
			var existing peopleModel.PersonModel
			err := tx.First(&existing, "person_id = ?", *personID).Error
			switch {
			case err == nil:
				patched = true
				if u := contactPatch(c, &existing); len(u) > 0 {
					if err := tx.Model(&existing).Updates(u).Error; err != nil {
						return err
					}
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				personID = nil
			default:
				return err
			}
		}
		if personID == nil {
			p := contactToPerson(c)
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			personID = &p.PersonID
		}
		return tx.Model(&LegacyContactModel{}).
			Where("contact_id = ?", c.ContactID).
			Update("migrated_person_id", *personID).Error
	})
	return patched, err
}

func contactToPerson(c *LegacyContactModel) peopleModel.PersonModel {
	p := peopleModel.PersonModel{
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		Email:             c.Email,
		Phone:             c.Phone,
		Address:           c.Address,
		MemberStatus:      peopleModel.MemberStatusGuest,
		ContactCategory:   c.Response,
		ContactDate:       c.ContactDate,
		FollowUpDate:      c.FollowUpDate,
		InvitedByID:       c.InvitedByID,
		SalvationDecision: c.SalvationDecision,
	}
	if c.Converted {
		p.MemberStatus = peopleModel.MemberStatusMember
		p.MembershipDate = c.ConversionDate
		if p.MembershipDate == "" {
			p.MembershipDate = c.ContactDate
		}
	}
	if c.AttendedChurch {
		p.FirstVisitDate = c.ContactDate
	}
	return p
}

// contactPatch fills contact fields on an existing person without
// overwriting anything already recorded there.
func contactPatch(c *LegacyContactModel, p *peopleModel.PersonModel) map[string]interface{} {
	u := map[string]interface{}{}
	setIfEmpty := func(col, cur, val string) {
		if cur == "" && val != "" {
			u[col] = val
		}
	}
	setIfEmpty("contact_category", p.ContactCategory, c.Response)
	setIfEmpty("contact_date", p.ContactDate, c.ContactDate)
	setIfEmpty("follow_up_date", p.FollowUpDate, c.FollowUpDate)
	setIfEmpty("email", p.Email, c.Email)
	setIfEmpty("phone", p.Phone, c.Phone)
	if p.InvitedByID == nil && c.InvitedByID != nil {
		u["invited_by_id"] = *c.InvitedByID
	}
	if c.SalvationDecision && !p.SalvationDecision {
		u["salvation_decision"] = true
	}
	if c.Converted && currentStatus(p) == peopleModel.MemberStatusGuest {
		u["member_status"] = peopleModel.MemberStatusMember
		date := c.ConversionDate
		if date == "" {
			date = c.ContactDate
		}
		setIfEmpty("membership_date", p.MembershipDate, date)
	}
	return u
}

func currentStatus(p *peopleModel.PersonModel) peopleModel.MemberStatus {
	st, err := peopleModel.ParseMemberStatus(string(p.MemberStatus))
	if err != nil {
		return p.MemberStatus
	}
	return st
}
