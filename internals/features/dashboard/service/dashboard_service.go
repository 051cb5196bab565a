// Package service aggregates people, services, evangelism and visitation data
// into the dashboard figures.
package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	visitModel "github.com/jayehzzz/my-church-tracker/internals/features/ministry/visitations/model"
	visitService "github.com/jayehzzz/my-church-tracker/internals/features/ministry/visitations/service"
	evangelismService "github.com/jayehzzz/my-church-tracker/internals/features/people/evangelism/service"
	peopleModel "github.com/jayehzzz/my-church-tracker/internals/features/people/people/model"
	serviceModel "github.com/jayehzzz/my-church-tracker/internals/features/services/services/model"
	servicesService "github.com/jayehzzz/my-church-tracker/internals/features/services/services/service"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const DefaultRecentLimit = 10

type KPI struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Value       int    `json:"value"`
	Format      string `json:"format"`
	Description string `json:"description"`
}

type KPIResult struct {
	PeriodLabel string `json:"period_label"`
	KPIs        []KPI  `json:"kpis"`
}

type ChartPoint struct {
	Month      string `json:"month"`
	Attendance int    `json:"attendance"`
}

type RecentActivity struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Person      string `json:"person"`
	PersonID    string `json:"person_id,omitempty"`
	Action      string `json:"action"`
	Timestamp   string `json:"timestamp"`
	Icon        string `json:"icon"`
}

type DashboardService struct {
	DB         *gorm.DB
	Evangelism *evangelismService.EvangelismService
	Now        func() time.Time
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{
		DB:         db,
		Evangelism: evangelismService.NewEvangelismService(db),
		Now:        time.Now,
	}
}

func (s *DashboardService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// KPIs computes the headline figures. Member and follow-up counts ignore the
// range; attendance and guest figures only cover services inside it.
func (s *DashboardService) KPIs(ctx context.Context, r helper.DateRange) (*KPIResult, error) {
	var (
		members       int64
		services      []serviceModel.ServiceModel
		evangelismDue int64
		visitsDue     int64
	)
	asOf := helper.Today(s.now())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.DB.WithContext(gctx).Model(&peopleModel.PersonModel{}).
			Where("member_status IN ?", []peopleModel.MemberStatus{peopleModel.MemberStatusMember, peopleModel.MemberStatusLeader}).
			Count(&members).Error
	})
	g.Go(func() error {
		var err error
		services, err = servicesService.ListServices(gctx, s.DB, r)
		return err
	})
	g.Go(func() error {
		var err error
		evangelismDue, err = s.Evangelism.CountRequiringFollowUp(gctx, asOf)
		return err
	})
	g.Go(func() error {
		var err error
		visitsDue, err = visitService.CountRequiringFollowUp(gctx, s.DB)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	label := PeriodLabel(r)
	scope := label
	if scope == "" {
		scope = "All time"
	}
	guests := 0
	for _, sv := range services {
		guests += sv.GuestsCount
	}

	return &KPIResult{
		PeriodLabel: label,
		KPIs: []KPI{
			{ID: "members", Title: "Total Members", Value: int(members), Format: "number", Description: "Active members & leaders"},
			{ID: "attendance", Title: "Avg Attendance", Value: AverageSundayAttendance(services), Format: "number", Description: scope},
			{ID: "visitors", Title: "New Visitors", Value: guests, Format: "number", Description: scope},
			{
				ID: "followups", Title: "Follow-ups Needed", Value: int(evangelismDue + visitsDue), Format: "number",
				Description: fmt.Sprintf("%d contacts, %d visits", evangelismDue, visitsDue),
			},
		},
	}, nil
}

func (s *DashboardService) AttendanceChart(ctx context.Context, r helper.DateRange) ([]ChartPoint, error) {
	services, err := servicesService.ListServices(ctx, s.DB, r)
	if err != nil {
		return nil, err
	}
	return MonthlyAttendance(services), nil
}

// RecentActivities merges evangelism contacts and visitations, newest first.
func (s *DashboardService) RecentActivities(ctx context.Context, limit int) ([]RecentActivity, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	var (
		contacts []peopleModel.PersonModel
		visits   []visitModel.VisitationModel
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.DB.WithContext(gctx).
			Where("member_status IN ?", []string{string(peopleModel.MemberStatusGuest), "visitor"}).
			Find(&contacts).Error
	})
	g.Go(func() error {
		var err error
		visits, err = visitService.ListVisitations(gctx, s.DB, helper.DateRange{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make(map[string]string, len(contacts))
	for _, p := range contacts {
		names[p.PersonID.String()] = p.FullName()
	}
	// visited people are usually members, so look the rest up in one query
	var missing []string
	for _, v := range visits {
		if _, ok := names[v.PersonID.String()]; !ok {
			missing = append(missing, v.PersonID.String())
		}
	}
	if len(missing) > 0 {
		var rows []peopleModel.PersonModel
		if err := s.DB.WithContext(ctx).Where("person_id IN ?", missing).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, p := range rows {
			names[p.PersonID.String()] = p.FullName()
		}
	}

	return MergeRecent(contacts, visits, names, limit), nil
}

// AverageSundayAttendance is the rounded mean AttendanceCount of the Sunday
// services in the slice.
func AverageSundayAttendance(services []serviceModel.ServiceModel) int {
	total, n := 0, 0
	for i := range services {
		if !services[i].IsSunday() {
			continue
		}
		total += services[i].AttendanceCount()
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(n)))
}

// MonthlyAttendance groups Sunday services by YYYY-MM and averages each month.
func MonthlyAttendance(services []serviceModel.ServiceModel) []ChartPoint {
	type bucket struct{ total, count int }
	buckets := map[string]*bucket{}
	for i := range services {
		sv := &services[i]
		if !sv.IsSunday() || len(sv.ServiceDate) < 7 {
			continue
		}
		key := sv.ServiceDate[:7]
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.total += sv.AttendanceCount()
		b.count++
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]ChartPoint, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		label := k
		if t, err := time.Parse("2006-01", k); err == nil {
			label = t.Format("Jan 06")
		}
		out = append(out, ChartPoint{
			Month:      label,
			Attendance: int(math.Round(float64(b.total) / float64(b.count))),
		})
	}
	return out
}

// PeriodLabel renders "Jan 2025", "Jan - Mar 2025" or "Nov 2024 - Feb 2025".
// It is empty when the range is missing or unparsable.
func PeriodLabel(r helper.DateRange) string {
	if r.From == "" || r.To == "" {
		return ""
	}
	start, err := time.Parse(helper.DateLayout, r.From)
	if err != nil {
		return ""
	}
	end, err := time.Parse(helper.DateLayout, r.To)
	if err != nil {
		return ""
	}
	switch {
	case start.Year() != end.Year():
		return start.Format("Jan 2006") + " - " + end.Format("Jan 2006")
	case start.Month() != end.Month():
		return start.Format("Jan") + " - " + end.Format("Jan 2006")
	default:
		return start.Format("Jan 2006")
	}
}

// MergeRecent builds the activity feed. names maps person id to display name.
func MergeRecent(contacts []peopleModel.PersonModel, visits []visitModel.VisitationModel, names map[string]string, limit int) []RecentActivity {
	out := make([]RecentActivity, 0, len(contacts)+len(visits))
	for _, p := range contacts {
		ts := p.ContactDate
		if ts == "" {
			ts = p.CreatedAt.UTC().Format(helper.DateLayout)
		}
		response := p.ContactCategory
		if response == "" {
			response = "Pending"
		}
		name := p.FullName()
		out = append(out, RecentActivity{
			ID:          "evangelism-" + p.PersonID.String(),
			Type:        "contact",
			Description: name + " was contacted",
			Person:      name,
			PersonID:    p.PersonID.String(),
			Action:      "Response: " + response,
			Timestamp:   ts,
			Icon:        "phone",
		})
	}
	for _, v := range visits {
		ts := v.VisitDate
		if ts == "" {
			ts = v.CreatedAt.UTC().Format(helper.DateLayout)
		}
		name, personID := names[v.PersonID.String()], v.PersonID.String()
		if name == "" {
			name, personID = v.PersonVisitedName, ""
		}
		if name == "" {
			name = "Unknown"
		}
		outcome := string(v.Outcome)
		if outcome == "" {
			outcome = "Not recorded"
		}
		out = append(out, RecentActivity{
			ID:          "visitation-" + v.VisitationID.String(),
			Type:        "visitation",
			Description: name + " was visited",
			Person:      name,
			PersonID:    personID,
			Action:      "Outcome: " + outcome,
			Timestamp:   ts,
			Icon:        "home",
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
