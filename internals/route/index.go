package routes

import (
	"time"

	routeDetails "github.com/jayehzzz/my-church-tracker/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var startTime time.Time

// SetupRoutes mounts every feature under /api. There is no auth layer; the
// API sits behind the church's own frontend.
func SetupRoutes(app *fiber.App, db *gorm.DB, env string) {
	startTime = time.Now()

	BaseRoutes(app, db, env)

	api := app.Group("/api")

	log.Info().Msg("mounting people routes")
	routeDetails.PeopleRoutes(api, db)

	log.Info().Msg("mounting services routes")
	routeDetails.ServicesRoutes(api, db)

	log.Info().Msg("mounting ministry routes")
	routeDetails.MinistryRoutes(api, db)

	log.Info().Msg("mounting dashboard routes")
	routeDetails.DashboardRoutes(api, db)
}
