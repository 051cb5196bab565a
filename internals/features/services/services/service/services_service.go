package service

import (
	"context"

	attendanceModel "github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/model"
	"github.com/jayehzzz/my-church-tracker/internals/features/services/services/model"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListServices returns services newest first, optionally limited to an
// inclusive date range.
func ListServices(ctx context.Context, db *gorm.DB, r helper.DateRange) ([]model.ServiceModel, error) {
	q := db.WithContext(ctx).Model(&model.ServiceModel{})
	if !r.IsZero() {
		q = q.Where("service_date >= ? AND service_date <= ?", r.From, r.To)
	}
	var out []model.ServiceModel
	err := q.Order("service_date DESC").Order("service_time DESC").Find(&out).Error
	return out, err
}

// DeleteService removes the service and its attendance rows.
func DeleteService(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("service_id = ?", id).Delete(&model.ServiceModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("service_id = ?", id).Delete(&attendanceModel.AttendanceModel{}).Error
	})
}
