package service

import (
	"context"
	"testing"
	"time"

	visitModel "github.com/jayehzzz/my-church-tracker/internals/features/ministry/visitations/model"
	peopleModel "github.com/jayehzzz/my-church-tracker/internals/features/people/people/model"
	serviceModel "github.com/jayehzzz/my-church-tracker/internals/features/services/services/model"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"
	"github.com/jayehzzz/my-church-tracker/internals/helpers/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodLabel(t *testing.T) {
	cases := []struct {
		from, to, want string
	}{
		{"2025-01-01", "2025-01-31", "Jan 2025"},
		{"2025-01-01", "2025-03-31", "Jan - Mar 2025"},
		{"2024-11-01", "2025-02-28", "Nov 2024 - Feb 2025"},
		{"", "", ""},
		{"2025-01-01", "", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PeriodLabel(helper.DateRange{From: tc.from, To: tc.to}), "%s..%s", tc.from, tc.to)
	}
}

func TestMonthlyAttendance(t *testing.T) {
	got := MonthlyAttendance([]serviceModel.ServiceModel{
		{ServiceDate: "2025-02-02", ServiceType: "Sunday Service", TotalAttendance: 80},
		{ServiceDate: "2025-01-05", ServiceType: serviceModel.ServiceTypeSunday, TotalAttendance: 100},
		{ServiceDate: "2025-01-12", ServiceType: serviceModel.ServiceTypeSunday, Individuals: []string{"a", "b", "c"}},
		{ServiceDate: "2025-01-15", ServiceType: serviceModel.ServiceTypeSpecial, TotalAttendance: 500},
	})
	assert.Equal(t, []ChartPoint{
		{Month: "Jan 25", Attendance: 52},
		{Month: "Feb 25", Attendance: 80},
	}, got)
}

func TestKPIs(t *testing.T) {
	db := testdb.Open(t, &peopleModel.PersonModel{}, &serviceModel.ServiceModel{}, &visitModel.VisitationModel{})
	ctx := context.Background()

	for _, p := range []peopleModel.PersonModel{
		{FirstName: "Ama", LastName: "Mensah", MemberStatus: peopleModel.MemberStatusMember},
		{FirstName: "Kofi", LastName: "Boateng", MemberStatus: peopleModel.MemberStatusMember},
		{FirstName: "Esi", LastName: "Owusu", MemberStatus: peopleModel.MemberStatusLeader},
		{FirstName: "Yaw", LastName: "Asante", MemberStatus: peopleModel.MemberStatusArchived},
		{FirstName: "Abena", LastName: "Darko", MemberStatus: peopleModel.MemberStatusGuest, FollowUpDate: "2025-01-20"},
		{FirstName: "Kwame", LastName: "Ofori", MemberStatus: peopleModel.MemberStatusGuest, FollowUpDate: "2025-03-01"},
	} {
		p := p
		require.NoError(t, db.Create(&p).Error)
	}
	for _, s := range []serviceModel.ServiceModel{
		{ServiceDate: "2025-01-05", ServiceType: serviceModel.ServiceTypeSunday, TotalAttendance: 100, GuestsCount: 2},
		{ServiceDate: "2025-01-12", ServiceType: serviceModel.ServiceTypeSunday, Individuals: []string{"a", "b", "c"}},
		{ServiceDate: "2025-01-15", ServiceType: serviceModel.ServiceTypeSpecial, TotalAttendance: 300, GuestsCount: 4},
		{ServiceDate: "2024-12-29", ServiceType: serviceModel.ServiceTypeSunday, TotalAttendance: 10, GuestsCount: 9},
	} {
		s := s
		require.NoError(t, db.Create(&s).Error)
	}
	require.NoError(t, db.Create(&visitModel.VisitationModel{
		PersonID: uuid.New(), VisitDate: "2025-01-10", Outcome: visitModel.OutcomeNotHome, FollowUpRequired: true,
	}).Error)

	svc := NewDashboardService(db)
	svc.Now = func() time.Time { return time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC) }

	got, err := svc.KPIs(ctx, helper.DateRange{From: "2025-01-01", To: "2025-01-31"})
	require.NoError(t, err)
	assert.Equal(t, "Jan 2025", got.PeriodLabel)

	byID := map[string]KPI{}
	for _, k := range got.KPIs {
		byID[k.ID] = k
	}
	assert.Equal(t, 3, byID["members"].Value)
	assert.Equal(t, 52, byID["attendance"].Value)
	assert.Equal(t, 6, byID["visitors"].Value)
	assert.Equal(t, 2, byID["followups"].Value)
	assert.Equal(t, "1 contacts, 1 visits", byID["followups"].Description)

	all, err := svc.KPIs(ctx, helper.DateRange{})
	require.NoError(t, err)
	assert.Empty(t, all.PeriodLabel)
	assert.Equal(t, "All time", all.KPIs[1].Description)
	assert.Equal(t, 15, all.KPIs[2].Value)
}

func TestRecentActivities(t *testing.T) {
	db := testdb.Open(t, &peopleModel.PersonModel{}, &visitModel.VisitationModel{})
	ctx := context.Background()

	guest := peopleModel.PersonModel{FirstName: "Abena", LastName: "Darko", ContactDate: "2025-01-03", ContactCategory: "responsive"}
	member := peopleModel.PersonModel{FirstName: "Ama", LastName: "Mensah", MemberStatus: peopleModel.MemberStatusMember}
	require.NoError(t, db.Create(&guest).Error)
	require.NoError(t, db.Create(&member).Error)
	require.NoError(t, db.Create(&visitModel.VisitationModel{
		PersonID: member.PersonID, VisitDate: "2025-01-09", Outcome: visitModel.OutcomeWelcomedEncouraged,
	}).Error)
	require.NoError(t, db.Create(&visitModel.VisitationModel{
		PersonID: uuid.New(), PersonVisitedName: "Old Friend", VisitDate: "2024-12-20", Outcome: visitModel.OutcomeNotHome,
	}).Error)

	got, err := NewDashboardService(db).RecentActivities(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "visitation", got[0].Type)
	assert.Equal(t, "Ama Mensah was visited", got[0].Description)
	assert.Equal(t, "Outcome: welcomed_encouraged", got[0].Action)
	assert.Equal(t, member.PersonID.String(), got[0].PersonID)

	assert.Equal(t, "contact", got[1].Type)
	assert.Equal(t, "Response: responsive", got[1].Action)

	all, err := NewDashboardService(db).RecentActivities(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Old Friend", all[2].Person)
	assert.Empty(t, all[2].PersonID)
}
