package seeds

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

type EngagementProfile struct {
	ServiceAttendance *float64 `json:"service_attendance"`
	PrayerMeetings    *float64 `json:"prayer_meetings"`
	CellGroups        *float64 `json:"cell_groups"`
	Tithing           *float64 `json:"tithing"`
}

func (e *EngagementProfile) asMap() map[string]interface{} {
	if e == nil {
		return nil
	}
	out := map[string]interface{}{}
	put := func(k string, v *float64) {
		if v != nil {
			out[k] = *v
		}
	}
	put("service_attendance", e.ServiceAttendance)
	put("prayer_meetings", e.PrayerMeetings)
	put("cell_groups", e.CellGroups)
	put("tithing", e.Tithing)
	return out
}

// PersonSeed is one entry of people.json. InvitedBy names another entry.
type PersonSeed struct {
	FirstName       string             `json:"first_name"`
	LastName        string             `json:"last_name"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	Address         string             `json:"address"`
	Birthday        string             `json:"birthday"`
	MemberStatus    string             `json:"member_status"`
	Role            string             `json:"role"`
	ActivityStatus  string             `json:"activity_status"`
	IsBaptised      bool               `json:"is_baptised"`
	IsTither        bool               `json:"is_tither"`
	ContactCategory string             `json:"contact_category"`
	ContactDate     string             `json:"contact_date"`
	FollowUpDate    string             `json:"follow_up_date"`
	FirstVisitDate  string             `json:"first_visit_date"`
	MembershipDate  string             `json:"membership_date"`
	Basontas        []string           `json:"basontas"`
	Lat             *float64           `json:"lat"`
	Lng             *float64           `json:"lng"`
	InvitedBy       string             `json:"invited_by"`
	Engagement      *EngagementProfile `json:"engagement_profile"`
}

func (p PersonSeed) FullName() string {
	return p.FirstName + " " + p.LastName
}

type VisitationSeed struct {
	Visited      string `json:"visited"`
	Visitor      string `json:"visitor"`
	Date         string `json:"date"`
	Outcome      string `json:"outcome"`
	FollowUp     bool   `json:"follow_up"`
	FollowUpDate string `json:"follow_up_date"`
	Notes        string `json:"notes"`
}

type ActivitySeed struct {
	ActivityType      string `json:"activity_type"`
	ActivityDate      string `json:"activity_date"`
	Description       string `json:"description"`
	ParticipantsCount int    `json:"participants_count"`
	Notes             string `json:"notes"`
}

func loadJSON[T any](path string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var out []T
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return out, nil
}

// optionalFixture returns nil for an empty path.
func optionalFixture[T any](path string) ([]T, error) {
	if path == "" {
		return nil, nil
	}
	return loadJSON[T](path)
}
