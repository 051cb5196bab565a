package service

import (
	"context"
	"sort"

	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/visitations/model"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListVisitations returns visits newest first, optionally in a date range.
func ListVisitations(ctx context.Context, db *gorm.DB, r helper.DateRange) ([]model.VisitationModel, error) {
	q := db.WithContext(ctx).Model(&model.VisitationModel{})
	if !r.IsZero() {
		q = q.Where("visit_date >= ? AND visit_date <= ?", r.From, r.To)
	}
	var out []model.VisitationModel
	err := q.Order("visit_date DESC").Order("created_at DESC").Find(&out).Error
	return out, err
}

func ListByPerson(ctx context.Context, db *gorm.DB, personID uuid.UUID) ([]model.VisitationModel, error) {
	var out []model.VisitationModel
	err := db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("visit_date DESC").
		Find(&out).Error
	return out, err
}

// SortFollowUps orders by follow_up_date ascending with undated visits last.
func SortFollowUps(rows []model.VisitationModel) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].FollowUpDate, rows[j].FollowUpDate
		switch {
		case a == "":
			return false
		case b == "":
			return true
		default:
			return a < b
		}
	})
}

func RequiringFollowUp(ctx context.Context, db *gorm.DB) ([]model.VisitationModel, error) {
	var out []model.VisitationModel
	if err := db.WithContext(ctx).
		Where("follow_up_required = ?", true).
		Find(&out).Error; err != nil {
		return nil, err
	}
	SortFollowUps(out)
	return out, nil
}

func CountRequiringFollowUp(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.VisitationModel{}).
		Where("follow_up_required = ?", true).
		Count(&n).Error
	return n, err
}
