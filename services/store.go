package services

import (
	"context"
	"time"

	"github.com/Calorties/calorties-api/models"
)

// Store is the set of query primitives the calorie engine needs from the
// relational store. Absent rows come back as apperror.NotFound.
type Store interface {
	UserByAccountID(ctx context.Context, accountID uint) (*models.User, error)
	FoodByID(ctx context.Context, id uint) (*models.Food, error)
	InsertCalorie(ctx context.Context, c *models.Calorie) error
	CaloriesInRange(ctx context.Context, userID uint, start, end time.Time) ([]models.Calorie, error)
	SumCaloriesInRange(ctx context.Context, userID uint, start, end time.Time) (float64, error)
	// SumCaloriesByDate groups calorie totals by calendar date, keyed
	// YYYY-MM-DD. Dates with no rows are absent from the map.
	SumCaloriesByDate(ctx context.Context, userID uint, start, end time.Time) (map[string]float64, error)
}
