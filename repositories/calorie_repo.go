package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Calorties/calorties-api/apperror"
	"github.com/Calorties/calorties-api/models"

	"gorm.io/gorm"
)

// CalorieRepo implements services.Store on gorm. Date bucketing happens in
// Go using the configured location, so the grouping timezone never depends
// on the database session.
type CalorieRepo struct {
	db  *gorm.DB
	loc *time.Location
}

func NewCalorieRepo(db *gorm.DB, loc *time.Location) *CalorieRepo {
	if loc == nil {
		loc = time.UTC
	}
	return &CalorieRepo{db: db, loc: loc}
}

func (r *CalorieRepo) UserByAccountID(ctx context.Context, accountID uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("user not found", err)
		}
		return nil, apperror.NewDatabase("failed to load user", err)
	}
	return &user, nil
}

func (r *CalorieRepo) FoodByID(ctx context.Context, id uint) (*models.Food, error) {
	var food models.Food
	err := r.db.WithContext(ctx).First(&food, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("food not found", err)
		}
		return nil, apperror.NewDatabase("failed to load food", err)
	}
	return &food, nil
}

func (r *CalorieRepo) InsertCalorie(ctx context.Context, c *models.Calorie) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return apperror.NewDatabase("failed to record calorie", err)
	}
	return nil
}

func (r *CalorieRepo) CaloriesInRange(ctx context.Context, userID uint, start, end time.Time) ([]models.Calorie, error) {
	var rows []models.Calorie
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, start, end).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, apperror.NewDatabase("failed to load calorie records", err)
	}
	return rows, nil
}

func (r *CalorieRepo) SumCaloriesInRange(ctx context.Context, userID uint, start, end time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Calorie{}).
		Select("COALESCE(SUM(jumlah_kalori), 0)").
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, start, end).
		Scan(&total).Error
	if err != nil {
		return 0, apperror.NewDatabase("failed to sum calorie records", err)
	}
	return total, nil
}

func (r *CalorieRepo) SumCaloriesByDate(ctx context.Context, userID uint, start, end time.Time) (map[string]float64, error) {
	rows, err := r.CaloriesInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]float64, len(rows))
	for _, row := range rows {
		key := row.CreatedAt.In(r.loc).Format("2006-01-02")
		totals[key] += float64(row.JumlahKalori)
	}
	return totals, nil
}
