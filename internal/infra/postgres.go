package infra

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"lingua/internal/config"
	"lingua/internal/models/db_models"
	"lingua/pkg/logger"
)

// InitPostgresql opens the pool and migrates the lingua tables.
func InitPostgresql(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	if cfg.PostgresURL == "" {
		return nil, fmt.Errorf("POSTGRES_URL is not set")
	}

	level := gormlogger.Warn
	if cfg.IsProduction() {
		level = gormlogger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(zap.NewStdLog(log.Zap()), gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}

	log.Info("PostgreSQL connected")
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.Profile{},
		&db_models.QuizQuestion{},
		&db_models.QuizResult{},
		&db_models.Lesson{},
		&db_models.Progress{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func ClosePostgresql(db *gorm.DB, log *logger.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("Error getting database instance", "error", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Warn("Error closing database connection", "error", err)
	} else {
		log.Info("PostgreSQL database connection closed successfully")
	}
}

// WithTransaction runs fn inside a transaction, rolling back when it returns an error.
func WithTransaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	return tx.Commit().Error
}
