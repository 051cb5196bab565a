package details

import (
	attendanceRoute "github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/route"
	servicesRoute "github.com/jayehzzz/my-church-tracker/internals/features/services/services/route"
	"github.com/jayehzzz/my-church-tracker/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ServicesRoutes(api fiber.Router, db *gorm.DB) {
	servicesRoute.ServicesRoutes(api, db)

	// bulk writers get a tighter limit than the global one
	api.Use("/attendance/sync", middlewares.SyncRateLimiter())
	api.Use("/attendance/bulk", middlewares.SyncRateLimiter())
	attendanceRoute.AttendanceRoutes(api, db)
}
