package route

import (
	"github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)

	att := api.Group("/attendance")
	att.Get("/", ctl.GetAllAttendance)
	att.Post("/", ctl.CreateAttendance)
	att.Post("/bulk", ctl.BulkCreateAttendance)
	att.Post("/sync", ctl.SyncAttendance)
	att.Get("/by-service/:service_id", ctl.GetAttendanceByService)
	att.Get("/by-person/:person_id", ctl.GetAttendanceByPerson)
	att.Get("/:id", ctl.GetAttendanceByID)
	att.Patch("/:id", ctl.UpdateAttendance)
	att.Delete("/:id", ctl.DeleteAttendance)
}
