package config

import (
	"fmt"

	"github.com/Calorties/calorties-api/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the store connection and migrates the schema. The returned
// handle is the single connection pool for the process; request handlers
// scope their work with WithContext.
func ConnectDB(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
	)

	// TranslateError turns the driver's unique-index violations into
	// gorm.ErrDuplicatedKey so services can map them to Conflict.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Account{},
		&models.User{},
		&models.Food{},
		&models.Calorie{},
	); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	log.Info("database connected", zap.String("host", cfg.DB.Host), zap.String("name", cfg.DB.Name))
	return db, nil
}
