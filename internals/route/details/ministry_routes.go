package details

import (
	dashboardRoute "github.com/jayehzzz/my-church-tracker/internals/features/dashboard/route"
	activitiesRoute "github.com/jayehzzz/my-church-tracker/internals/features/ministry/activities/route"
	meetingsRoute "github.com/jayehzzz/my-church-tracker/internals/features/ministry/meetings/route"
	visitationsRoute "github.com/jayehzzz/my-church-tracker/internals/features/ministry/visitations/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func MinistryRoutes(api fiber.Router, db *gorm.DB) {
	meetingsRoute.MeetingsRoutes(api, db)
	visitationsRoute.VisitationsRoutes(api, db)
	activitiesRoute.ActivitiesRoutes(api, db)
}

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	dashboardRoute.DashboardRoutes(api, db)
}
