package route

import (
	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/visitations/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func VisitationsRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewVisitationsController(db)

	v := api.Group("/visitations")
	v.Get("/", ctl.GetAllVisitations)
	v.Post("/", ctl.CreateVisitation)
	v.Get("/follow-up", ctl.GetRequiringFollowUp)
	v.Get("/by-date-range", ctl.GetVisitationsByDateRange)
	v.Get("/by-person/:person_id", ctl.GetVisitationsByPerson)
	v.Get("/:id", ctl.GetVisitationByID)
	v.Patch("/:id", ctl.UpdateVisitation)
	v.Delete("/:id", ctl.DeleteVisitation)
}
