package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMeetingDerivesDuration(t *testing.T) {
	m := CreateMeetingRequest{MeetingDate: "2025-03-28", MeetingType: "all_night_prayer", StartTime: "22:00", EndTime: "05:00"}.ToModel()
	assert.Equal(t, 420, m.DurationMinutes)
	assert.Nil(t, m.LeaderID)

	d := 90
	m = CreateMeetingRequest{StartTime: "19:00", EndTime: "21:00", DurationMinutes: &d}.ToModel()
	assert.Equal(t, 90, m.DurationMinutes)
}

func TestValidMeetingType(t *testing.T) {
	assert.True(t, ValidMeetingType("flow_prayer"))
	assert.False(t, ValidMeetingType("choir"))
}
