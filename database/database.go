package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aptitude-labs/aptitude-portal/config"
	"github.com/aptitude-labs/aptitude-portal/internal/model"
)

// NewDatabase opens the configured relational store. Postgres is opt-in;
// anything else falls back to the sqlite file next to the binary.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
			cfg.Database.Password, cfg.Database.Name,
		)
		dialector = postgres.Open(dsn)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.Database.SQLitePath)
	default:
		log.Warn().Str("driver", cfg.Database.Driver).Msg("Unknown database driver, using sqlite")
		dialector = sqlite.Open(cfg.Database.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("Database connected")
	return db, nil
}

// Bootstrap creates the schema and seeds one sample question when the store
// is empty. Safe to run on every start.
func Bootstrap(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Question{}, &model.Answer{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}

	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sample := model.Question{
		Author:   "Hari",
		Category: "Quantitative",
		Text:     "Find next number 1, 3, 5, 7, ?",
		OptionA:  "9",
		OptionB:  "11",
		OptionC:  "13",
		OptionD:  "15",
		Answer:   "A",
	}
	if err := db.Create(&sample).Error; err != nil {
		log.Error().Err(err).Msg("Failed to seed sample question")
		return err
	}
	log.Info().Uint("id", sample.ID).Msg("Seeded sample question")
	return nil
}
