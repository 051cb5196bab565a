// Package lookup resolves the person/service/meeting references carried by
// attendance, meeting-attendance and visitation rows into display records.
//
// A reference that points nowhere resolves to nil rather than an error, so a
// row whose person was deleted still renders. Ids are compared as typed UUIDs;
// a string reference that does not parse resolves to nil.
package lookup

import (
	"context"
	"errors"
	"strings"

	meetingModel "github.com/jayehzzz/my-church-tracker/internals/features/ministry/meetings/model"
	visitModel "github.com/jayehzzz/my-church-tracker/internals/features/ministry/visitations/model"
	peopleModel "github.com/jayehzzz/my-church-tracker/internals/features/people/people/model"
	attendanceModel "github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/model"
	serviceModel "github.com/jayehzzz/my-church-tracker/internals/features/services/services/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Resolver struct {
	DB *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{DB: db}
}

func firstBy[T any](ctx context.Context, db *gorm.DB, column string, id uuid.UUID) (*T, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var out T
	err := db.WithContext(ctx).Where(column+" = ?", id).Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ParseRef parses a stored string reference. ok is false for empty or
// malformed values.
func ParseRef(ref string) (uuid.UUID, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(ref)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (r *Resolver) Person(ctx context.Context, id uuid.UUID) (*peopleModel.PersonModel, error) {
	return firstBy[peopleModel.PersonModel](ctx, r.DB, "person_id", id)
}

// PersonPtr resolves an optional reference such as invited_by_id or leader_id.
func (r *Resolver) PersonPtr(ctx context.Context, id *uuid.UUID) (*peopleModel.PersonModel, error) {
	if id == nil {
		return nil, nil
	}
	return r.Person(ctx, *id)
}

func (r *Resolver) PersonRef(ctx context.Context, ref string) (*peopleModel.PersonModel, error) {
	id, ok := ParseRef(ref)
	if !ok {
		return nil, nil
	}
	return r.Person(ctx, id)
}

// PersonName is the full name of the referenced person, or "" when absent.
func (r *Resolver) PersonName(ctx context.Context, id *uuid.UUID) (string, error) {
	p, err := r.PersonPtr(ctx, id)
	if err != nil || p == nil {
		return "", err
	}
	return p.FullName(), nil
}

func (r *Resolver) Service(ctx context.Context, id uuid.UUID) (*serviceModel.ServiceModel, error) {
	return firstBy[serviceModel.ServiceModel](ctx, r.DB, "service_id", id)
}

func (r *Resolver) Meeting(ctx context.Context, id uuid.UUID) (*meetingModel.MeetingModel, error) {
	return firstBy[meetingModel.MeetingModel](ctx, r.DB, "meeting_id", id)
}

/* ===============================
   Joined views
=================================*/

type AttendanceView struct {
	attendanceModel.AttendanceModel
	Person  *peopleModel.PersonModel   `json:"person"`
	Service *serviceModel.ServiceModel `json:"service,omitempty"`
}

// Which references to resolve on a batch of rows.
type Include struct {
	Person  bool
	Service bool
}

func (r *Resolver) Attendance(ctx context.Context, rows []attendanceModel.AttendanceModel, inc Include) ([]AttendanceView, error) {
	out := make([]AttendanceView, 0, len(rows))
	for _, row := range rows {
		v := AttendanceView{AttendanceModel: row}
		var err error
		if inc.Person {
			if v.Person, err = r.Person(ctx, row.PersonID); err != nil {
				return nil, err
			}
		}
		if inc.Service {
			if v.Service, err = r.Service(ctx, row.ServiceID); err != nil {
				return nil, err
			}
		}
		out = append(out, v)
	}
	return out, nil
}

type MeetingAttendanceView struct {
	meetingModel.MeetingAttendanceModel
	Person *peopleModel.PersonModel `json:"person"`
}

func (r *Resolver) MeetingAttendance(ctx context.Context, rows []meetingModel.MeetingAttendanceModel) ([]MeetingAttendanceView, error) {
	out := make([]MeetingAttendanceView, 0, len(rows))
	for _, row := range rows {
		p, err := r.Person(ctx, row.PersonID)
		if err != nil {
			return nil, err
		}
		out = append(out, MeetingAttendanceView{MeetingAttendanceModel: row, Person: p})
	}
	return out, nil
}

type MeetingView struct {
	meetingModel.MeetingModel
	Leader *peopleModel.PersonModel `json:"leader"`
}

func (r *Resolver) Meetings(ctx context.Context, rows []meetingModel.MeetingModel) ([]MeetingView, error) {
	out := make([]MeetingView, 0, len(rows))
	for _, row := range rows {
		leader, err := r.PersonPtr(ctx, row.LeaderID)
		if err != nil {
			return nil, err
		}
		out = append(out, MeetingView{MeetingModel: row, Leader: leader})
	}
	return out, nil
}

type VisitationView struct {
	visitModel.VisitationModel
	Person *peopleModel.PersonModel `json:"person"`
}

func (r *Resolver) Visitations(ctx context.Context, rows []visitModel.VisitationModel) ([]VisitationView, error) {
	out := make([]VisitationView, 0, len(rows))
	for _, row := range rows {
		p, err := r.Person(ctx, row.PersonID)
		if err != nil {
			return nil, err
		}
		out = append(out, VisitationView{VisitationModel: row, Person: p})
	}
	return out, nil
}
