package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/andrewpaige1/srlboard-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// ConnectDatabase opens the configured database and migrates every table the
// API reads or writes. The returned handle is owned by main.
func ConnectDatabase(env *Environment) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch env.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(env.DBURL)
	default:
		dialector = postgres.Open(env.DBURL)
	}

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Board{},
		&models.LearningStrategy{},
		&models.StudySession{},
		&models.ChatbotLog{},
		&models.ActivityLog{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto migrate database: %w", err)
	}
	return nil
}
