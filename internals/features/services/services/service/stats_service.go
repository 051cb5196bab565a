package service

import (
	"context"
	"time"

	attendanceModel "github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/model"
	"github.com/jayehzzz/my-church-tracker/internals/features/services/services/model"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"
	"github.com/jayehzzz/my-church-tracker/internals/helpers/dbtypes"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Snapshot is the set of cached counts stored on a service row.
type Snapshot struct {
	TotalAttendance    int               `json:"total_attendance"`
	GuestsCount        int               `json:"guests_count"`
	SalvationDecisions int               `json:"salvation_decisions"`
	TithersCount       int               `json:"tithers_count"`
	Individuals        dbtypes.TextArray `json:"individuals"`
}

// SnapshotOf folds attendance rows into counts. First timers count as guests.
func SnapshotOf(rows []attendanceModel.AttendanceModel) Snapshot {
	s := Snapshot{Individuals: dbtypes.TextArray{}}
	for _, r := range rows {
		s.TotalAttendance++
		if r.FirstTimer {
			s.GuestsCount++
		}
		if r.MadeSalvationDecision {
			s.SalvationDecisions++
		}
		if r.GaveTithe {
			s.TithersCount++
		}
		s.Individuals = append(s.Individuals, r.PersonID.String())
	}
	return s
}

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// Refresh recomputes the snapshot of one service from its attendance rows.
// Returns gorm.ErrRecordNotFound when the service does not exist.
func (s *StatsService) Refresh(ctx context.Context, serviceID uuid.UUID) (*model.ServiceModel, error) {
	var svc model.ServiceModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&svc, "service_id = ?", serviceID).Error; err != nil {
			return err
		}
		var rows []attendanceModel.AttendanceModel
		if err := tx.Where("service_id = ?", serviceID).
			Order("created_at ASC").
			Find(&rows).Error; err != nil {
			return err
		}
		snap := SnapshotOf(rows)
		if err := tx.Model(&svc).Updates(map[string]interface{}{
			"total_attendance":    snap.TotalAttendance,
			"guests_count":        snap.GuestsCount,
			"salvation_decisions": snap.SalvationDecisions,
			"tithers_count":       snap.TithersCount,
			"individuals":         snap.Individuals,
		}).Error; err != nil {
			return err
		}
		return tx.First(&svc, "service_id = ?", serviceID).Error
	})
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

// RefreshSince refreshes every service dated on or after now-days that has
// attendance rows. Services without rows keep their entered headcounts. A
// failing service is logged and skipped.
func (s *StatsService) RefreshSince(ctx context.Context, now time.Time, days int) (int, error) {
	from := helper.Today(now.AddDate(0, 0, -days))
	db := s.DB.WithContext(ctx)

	var ids []uuid.UUID
	if err := db.Model(&model.ServiceModel{}).
		Where("service_date >= ?", from).
		Where("service_id IN (?)", db.Model(&attendanceModel.AttendanceModel{}).Select("service_id")).
		Order("service_date ASC").
		Pluck("service_id", &ids).Error; err != nil {
		return 0, err
	}

	refreshed := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return refreshed, err
		}
		if _, err := s.Refresh(ctx, id); err != nil {
			log.Warn().Err(err).Str("service_id", id.String()).Msg("stats refresh failed")
			continue
		}
		refreshed++
	}
	return refreshed, nil
}
