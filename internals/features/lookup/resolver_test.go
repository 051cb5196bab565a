package lookup

import (
	"context"
	"testing"

	meetingModel "github.com/jayehzzz/my-church-tracker/internals/features/ministry/meetings/model"
	visitModel "github.com/jayehzzz/my-church-tracker/internals/features/ministry/visitations/model"
	peopleModel "github.com/jayehzzz/my-church-tracker/internals/features/people/people/model"
	attendanceModel "github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/model"
	serviceModel "github.com/jayehzzz/my-church-tracker/internals/features/services/services/model"
	"github.com/jayehzzz/my-church-tracker/internals/helpers/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Resolver, peopleModel.PersonModel, serviceModel.ServiceModel) {
	db := testdb.Open(t,
		&peopleModel.PersonModel{},
		&serviceModel.ServiceModel{},
		&attendanceModel.AttendanceModel{},
		&meetingModel.MeetingModel{},
		&meetingModel.MeetingAttendanceModel{},
		&visitModel.VisitationModel{},
	)
	p := peopleModel.PersonModel{FirstName: "Ama", LastName: "Mensah"}
	require.NoError(t, db.Create(&p).Error)
	s := serviceModel.ServiceModel{ServiceDate: "2025-03-02", ServiceType: serviceModel.ServiceTypeSunday}
	require.NoError(t, db.Create(&s).Error)
	return NewResolver(db), p, s
}

func TestPersonResolvesByExactID(t *testing.T) {
	r, p, _ := setup(t)
	ctx := context.Background()

	got, err := r.Person(ctx, p.PersonID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ama Mensah", got.FullName())

	got, err = r.Person(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPersonRefRejectsPartialIDs(t *testing.T) {
	r, p, _ := setup(t)
	ctx := context.Background()

	got, err := r.PersonRef(ctx, p.PersonID.String())
	require.NoError(t, err)
	require.NotNil(t, got)

	for _, ref := range []string{"", "   ", p.PersonID.String()[:8], "not-a-uuid"} {
		got, err := r.PersonRef(ctx, ref)
		require.NoError(t, err, ref)
		assert.Nil(t, got, ref)
	}
}

func TestPersonPtrNil(t *testing.T) {
	r, _, _ := setup(t)
	got, err := r.PersonPtr(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	name, err := r.PersonName(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestAttendanceViewsResolveMissingToNil(t *testing.T) {
	r, p, s := setup(t)
	rows := []attendanceModel.AttendanceModel{
		{AttendanceID: uuid.New(), ServiceID: s.ServiceID, PersonID: p.PersonID},
		{AttendanceID: uuid.New(), ServiceID: uuid.New(), PersonID: uuid.New()},
	}

	views, err := r.Attendance(context.Background(), rows, Include{Person: true, Service: true})
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.NotNil(t, views[0].Person)
	require.NotNil(t, views[0].Service)
	assert.Equal(t, "2025-03-02", views[0].Service.ServiceDate)
	assert.Nil(t, views[1].Person)
	assert.Nil(t, views[1].Service)

	views, err = r.Attendance(context.Background(), rows[:1], Include{Person: true})
	require.NoError(t, err)
	assert.Nil(t, views[0].Service)
}

func TestMeetingLeaderResolvedByExactID(t *testing.T) {
	r, p, _ := setup(t)
	other := uuid.New()
	views, err := r.Meetings(context.Background(), []meetingModel.MeetingModel{
		{MeetingID: uuid.New(), LeaderID: &p.PersonID},
		{MeetingID: uuid.New(), LeaderID: &other},
		{MeetingID: uuid.New()},
	})
	require.NoError(t, err)
	require.Len(t, views, 3)
	require.NotNil(t, views[0].Leader)
	assert.Equal(t, p.PersonID, views[0].Leader.PersonID)
	assert.Nil(t, views[1].Leader)
	assert.Nil(t, views[2].Leader)
}
