package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jayehzzz/my-church-tracker/internals/configs"
	activityModel "github.com/jayehzzz/my-church-tracker/internals/features/ministry/activities/model"
	meetingModel "github.com/jayehzzz/my-church-tracker/internals/features/ministry/meetings/model"
	visitModel "github.com/jayehzzz/my-church-tracker/internals/features/ministry/visitations/model"
	peopleModel "github.com/jayehzzz/my-church-tracker/internals/features/people/people/model"
	attendanceModel "github.com/jayehzzz/my-church-tracker/internals/features/services/attendance/model"
	serviceModel "github.com/jayehzzz/my-church-tracker/internals/features/services/services/model"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the Postgres pool. PreferSimpleProtocol keeps it usable
// behind PgBouncer in transaction pooling mode.
func ConnectDB(cfg configs.DatabaseConfig) (*gorm.DB, error) {
	log.Info().Str("host", cfg.Host).Str("db", cfg.Name).Msg("connecting to PostgreSQL")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	log.Info().Msg("DB connected")
	return db, nil
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn().Err(err).Msg("pool tune")
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// WarmUp pings in the background so the first request does not pay for the
// initial connection.
func WarmUp(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := Ping(ctx, db); err != nil {
			log.Warn().Err(err).Msg("warm-up ping")
		}
	}()
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Models lists every table owned by the API, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&peopleModel.PersonModel{},
		&serviceModel.ServiceModel{},
		&attendanceModel.AttendanceModel{},
		&meetingModel.MeetingModel{},
		&meetingModel.MeetingAttendanceModel{},
		&visitModel.VisitationModel{},
		&activityModel.ActivityModel{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	log.Info().Int("tables", len(Models())).Msg("automigrate done")
	return nil
}
