package config

import (
	"log"
	"time"

	"vhotelok-backend/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDatabase opens the Postgres connection, migrates the schema and
// verifies the link with a SELECT 1 probe.
func ConnectDatabase(settings Settings) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(logrus.StandardLogger().WriterLevel(logrus.WarnLevel), "", 0),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.Open(settings.DSN()), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"host": settings.DBHost,
			"port": settings.DBPort,
		}).Errorf("❌ database connection failed: %v", err)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"host":     settings.DBHost,
		"port":     settings.DBPort,
		"database": settings.DBName,
	}).Info("✅ database connection successful")

	return db, nil
}

// Migrate creates the schema in parent->child order. The join table is
// registered first so it keeps its own id column.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Room{}, "Facilities", &models.RoomFacility{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.Hotel{},
		&models.User{},
		&models.Facility{},
		&models.Room{},
		&models.RoomFacility{},
		&models.Booking{},
		&models.Image{},
	)
}
