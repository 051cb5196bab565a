package service

import (
	"context"
	"time"

	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/meetings/model"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Filter struct {
	Type  model.MeetingType
	Range helper.DateRange
}

// ListMeetings returns meetings newest first.
func ListMeetings(ctx context.Context, db *gorm.DB, f Filter) ([]model.MeetingModel, error) {
	q := db.WithContext(ctx).Model(&model.MeetingModel{})
	if f.Type != "" {
		q = q.Where("meeting_type = ?", f.Type)
	}
	if !f.Range.IsZero() {
		q = q.Where("meeting_date >= ? AND meeting_date <= ?", f.Range.From, f.Range.To)
	}
	var out []model.MeetingModel
	err := q.Order("meeting_date DESC").Order("start_time DESC").Find(&out).Error
	return out, err
}

// AddAttendees records each person once per meeting; repeats are ignored.
// Returns how many rows were actually inserted.
func AddAttendees(ctx context.Context, db *gorm.DB, meetingID uuid.UUID, personIDs []uuid.UUID, now time.Time) (int64, error) {
	if len(personIDs) == 0 {
		return 0, nil
	}
	rows := make([]model.MeetingAttendanceModel, 0, len(personIDs))
	for _, pid := range personIDs {
		rows = append(rows, model.MeetingAttendanceModel{
			MeetingID: meetingID,
			PersonID:  pid,
			CreatedAt: now.UTC(),
		})
	}
	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "meeting_id"}, {Name: "person_id"}},
			DoNothing: true,
		}).
		Create(&rows)
	return res.RowsAffected, res.Error
}

func ListAttendees(ctx context.Context, db *gorm.DB, meetingID uuid.UUID) ([]model.MeetingAttendanceModel, error) {
	var out []model.MeetingAttendanceModel
	err := db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func RemoveAttendee(ctx context.Context, db *gorm.DB, meetingID, personID uuid.UUID) error {
	res := db.WithContext(ctx).
		Where("meeting_id = ? AND person_id = ?", meetingID, personID).
		Delete(&model.MeetingAttendanceModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteMeeting removes the meeting and its attendee rows.
func DeleteMeeting(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("meeting_id = ?", id).Delete(&model.MeetingModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("meeting_id = ?", id).Delete(&model.MeetingAttendanceModel{}).Error
	})
}
