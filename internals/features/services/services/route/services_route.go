package route

import (
	"github.com/jayehzzz/my-church-tracker/internals/features/services/services/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ServicesRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewServicesController(db)

	services := api.Group("/services")
	services.Get("/", ctl.GetAllServices)
	services.Post("/", ctl.CreateService)
	services.Get("/by-date-range", ctl.GetServicesByDateRange)
	services.Get("/:id", ctl.GetServiceByID)
	services.Patch("/:id", ctl.UpdateService)
	services.Delete("/:id", ctl.DeleteService)
	services.Post("/:id/refresh-stats", ctl.RefreshStats)
}
