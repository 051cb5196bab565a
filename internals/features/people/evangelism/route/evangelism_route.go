package route

import (
	"github.com/jayehzzz/my-church-tracker/internals/features/people/evangelism/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EvangelismRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewEvangelismController(db)

	ev := api.Group("/evangelism")
	ev.Get("/", ctl.GetAllContacts)
	ev.Post("/", ctl.CreateContact)
	ev.Get("/converted", ctl.GetConverted)
	ev.Get("/follow-up", ctl.GetRequiringFollowUp)
	ev.Get("/by-date-range", ctl.GetByDateRange)
	ev.Get("/by-response/:response", ctl.GetByResponse)
	ev.Get("/by-inviter/:person_id", ctl.GetByInviter)
	ev.Get("/:id", ctl.GetContactByID)
	ev.Patch("/:id", ctl.UpdateContact)
	ev.Delete("/:id", ctl.DeleteContact)
	ev.Post("/:id/convert", ctl.MarkConverted)
}
