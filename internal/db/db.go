package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mainbersama/venue-booking/internal/config"
	"github.com/mainbersama/venue-booking/internal/logger"
	"github.com/mainbersama/venue-booking/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	log := logger.Get()

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	// The explicit join model gives schedules a composite primary key, so a
	// user/booking pair can never be attached twice.
	if err := db.SetupJoinTable(&models.User{}, "Schedules", &models.Schedule{}); err != nil {
		log.Fatal("failed to set up schedules join table", zap.Error(err))
	}
	if err := db.SetupJoinTable(&models.Booking{}, "Players", &models.Schedule{}); err != nil {
		log.Fatal("failed to set up players join table", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.OtpCode{},
		&models.Venue{},
		&models.Field{},
		&models.Booking{},
		&models.Schedule{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	return db
}
