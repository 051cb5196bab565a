package scheduler

import (
	"context"
	"time"

	"github.com/jayehzzz/my-church-tracker/internals/features/services/services/service"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type RefresherConfig struct {
	CronSchedule string
	Days         int
	Timeout      time.Duration
}

// StartStatsRefresher schedules the snapshot refresh. An empty schedule
// disables it and returns nil. The caller stops the returned cron on shutdown.
func StartStatsRefresher(db *gorm.DB, cfg RefresherConfig) (*cron.Cron, error) {
	if cfg.CronSchedule == "" {
		log.Info().Msg("[STATS-REFRESH] disabled (empty schedule)")
		return nil, nil
	}
	if cfg.Days <= 0 {
		cfg.Days = 14
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 4 * time.Minute
	}

	stats := service.NewStatsService(db)
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(cfg.CronSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()
		RunOnce(ctx, stats, time.Now(), cfg.Days)
	})
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("schedule", cfg.CronSchedule).
		Int("days", cfg.Days).
		Msg("[STATS-REFRESH] started")
	c.Start()
	return c, nil
}

// RunOnce is one scheduler tick; also used by `churchctl stats refresh`.
func RunOnce(ctx context.Context, stats *service.StatsService, now time.Time, days int) int {
	started := time.Now()
	n, err := stats.RefreshSince(ctx, now, days)
	if err != nil {
		log.Error().Err(err).Int("refreshed", n).Msg("[STATS-REFRESH] run failed")
		return n
	}
	log.Info().
		Int("refreshed", n).
		Dur("took", time.Since(started)).
		Msg("[STATS-REFRESH] run done")
	return n
}
