package service

import (
	"context"

	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/activities/model"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"

	"gorm.io/gorm"
)

const DefaultRecentLimit = 10

type Filter struct {
	Type  string
	Range helper.DateRange
	// Limit <= 0 means no limit.
	Limit int
}

// ListActivities returns activities newest first.
func ListActivities(ctx context.Context, db *gorm.DB, f Filter) ([]model.ActivityModel, error) {
	q := db.WithContext(ctx).Model(&model.ActivityModel{})
	if f.Type != "" {
		q = q.Where("activity_type = ?", helper.NormalizeKey(f.Type))
	}
	if !f.Range.IsZero() {
		q = q.Where("activity_date >= ? AND activity_date <= ?", f.Range.From, f.Range.To)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	var out []model.ActivityModel
	err := q.Order("activity_date DESC").Order("created_at DESC").Find(&out).Error
	return out, err
}
