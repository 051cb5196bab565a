package route

import (
	"github.com/jayehzzz/my-church-tracker/internals/features/ministry/activities/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ActivitiesRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewActivitiesController(db)

	a := api.Group("/activities")
	a.Get("/", ctl.GetAllActivities)
	a.Post("/", ctl.CreateActivity)
	a.Get("/recent", ctl.GetRecentActivities)
	a.Get("/by-type/:type", ctl.GetActivitiesByType)
	a.Get("/by-date-range", ctl.GetActivitiesByDateRange)
	a.Get("/:id", ctl.GetActivityByID)
}
