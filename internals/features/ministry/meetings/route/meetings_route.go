package route

import (
	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/meetings/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func MeetingsRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewMeetingsController(db)

	meetings := api.Group("/meetings")
	meetings.Get("/", ctl.GetAllMeetings)
	meetings.Post("/", ctl.CreateMeeting)
	meetings.Get("/by-type/:type", ctl.GetMeetingsByType)
	meetings.Get("/by-date-range", ctl.GetMeetingsByDateRange)
	meetings.Get("/:id", ctl.GetMeetingByID)
	meetings.Patch("/:id", ctl.UpdateMeeting)
	meetings.Delete("/:id", ctl.DeleteMeeting)

	meetings.Get("/:id/attendees", ctl.GetAttendees)
	meetings.Post("/:id/attendees", ctl.AddAttendees)
	meetings.Delete("/:id/attendees/:person_id", ctl.RemoveAttendee)
}
