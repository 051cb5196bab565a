package middlewares

import (
	"time"

	"github.com/jayehzzz/my-church-tracker/internals/configs"
	"github.com/jayehzzz/my-church-tracker/internals/middlewares/logger"

	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares installs the global chain. Order matters: recovery first so
// it also covers the others.
func SetupMiddlewares(app *fiber.App, cfg configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext(time.Duration(cfg.RequestTimeoutMs) * time.Millisecond))
	app.Use(logger.LoggerMiddleware(cfg.TimeZone))
	app.Use(CorsMiddleware(cfg.CorsOrigins))
	app.Use(GlobalRateLimiter(cfg.RateLimitPerMinute))
}
