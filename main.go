package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/rs/zerolog/log"

	"github.com/jayehzzz/my-church-tracker/internals/configs"
	database "github.com/jayehzzz/my-church-tracker/internals/databases"
	"github.com/jayehzzz/my-church-tracker/internals/features/services/services/scheduler"
	helper "github.com/jayehzzz/my-church-tracker/internals/helpers"
	middlewares "github.com/jayehzzz/my-church-tracker/internals/middlewares"
	routes "github.com/jayehzzz/my-church-tracker/internals/route"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Load()
	configs.InitLogger(cfg)

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		ErrorHandler:            helper.FromFiberError,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app, cfg)

	db, err := database.ConnectDB(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("database")
	}
	database.TunePool(db)
	if cfg.DB.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatal().Err(err).Msg("automigrate")
		}
	}
	database.WarmUp(db)

	refresher, err := scheduler.StartStatsRefresher(db, scheduler.RefresherConfig{
		CronSchedule: cfg.StatsRefreshCron,
		Days:         cfg.StatsRefreshDays,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("stats refresher")
	}

	routes.SetupRoutes(app, db, cfg.AppEnv)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	if refresher != nil {
		<-refresher.Stop().Done()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	database.Close(db)
}
