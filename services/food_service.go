package services

import (
	"context"

	"github.com/Calorties/calorties-api/apperror"
	"github.com/Calorties/calorties-api/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// List returns the food catalog, optionally filtered by type.
func (s *FoodService) List(ctx context.Context, foodType string) ([]models.Food, error) {
	q := s.db.WithContext(ctx)
	if foodType != "" {
		q = q.Where("type = ?", foodType)
	}
	var foods []models.Food
	if err := q.Find(&foods).Error; err != nil {
		return nil, apperror.NewDatabase("failed to load foods", err)
	}
	return foods, nil
}
