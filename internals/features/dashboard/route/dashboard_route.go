package route

import (
	"github.com/jayehzzz/my-church-tracker/internals/features/dashboard/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewDashboardController(db)

	d := api.Group("/dashboard")
	d.Get("/kpis", ctl.GetKPIs)
	d.Get("/attendance-chart", ctl.GetAttendanceChart)
	d.Get("/recent-activities", ctl.GetRecentActivities)
}
