package service

import (
	"context"
	"errors"

	"github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the narrow record store the reconciler works against.
type Store interface {
	ListByService(ctx context.Context, serviceID uuid.UUID) ([]model.AttendanceModel, error)
	Insert(ctx context.Context, row *model.AttendanceModel) (uuid.UUID, error)
	Patch(ctx context.Context, id uuid.UUID, patch model.AttendancePatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Get returns nil, nil when the row does not exist.
	Get(ctx context.Context, id uuid.UUID) (*model.AttendanceModel, error)
}

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) ListByService(ctx context.Context, serviceID uuid.UUID) ([]model.AttendanceModel, error) {
	var rows []model.AttendanceModel
	if err := s.DB.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormStore) Insert(ctx context.Context, row *model.AttendanceModel) (uuid.UUID, error) {
	if err := s.DB.WithContext(ctx).Create(row).Error; err != nil {
		return uuid.Nil, err
	}
	return row.AttendanceID, nil
}

func (s *GormStore) Patch(ctx context.Context, id uuid.UUID, patch model.AttendancePatch) error {
	if patch.IsEmpty() {
		return nil
	}
	res := s.DB.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("attendance_id = ?", id).
		Updates(patch.Columns())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).
		Where("attendance_id = ?", id).
		Delete(&model.AttendanceModel{}).Error
}

func (s *GormStore) Get(ctx context.Context, id uuid.UUID) (*model.AttendanceModel, error) {
	var row model.AttendanceModel
	err := s.DB.WithContext(ctx).First(&row, "attendance_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
