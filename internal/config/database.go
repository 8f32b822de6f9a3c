package config

import (
	"log"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase connects to Postgres, retrying with backoff so the service
// survives the database coming up after it in a fresh deployment.
func NewDatabase(cfg *Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.LogLevel == "debug" {
		logLevel = logger.Info
	}

	var db *gorm.DB
	err := retry.Do(
		func() error {
			var err error
			db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
				Logger: logger.Default.LogMode(logLevel),
			})
			return err
		},
		retry.Attempts(5),
		retry.Delay(time.Second),
		retry.MaxDelay(30*time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("database connection attempt %d failed: %v", n+1, err)
		}),
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return db, nil
}
