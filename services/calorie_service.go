package services

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/Calorties/calorties-api/apperror"
	"github.com/Calorties/calorties-api/models"

	"go.uber.org/zap"
)

// CalorieService orchestrates the recording flow: store the uploaded image,
// ask the recognition service which food it is, snapshot that food's calorie
// value into a new Calorie row.
type CalorieService struct {
	store     Store
	uploader  ImageUploader
	predictor FoodPredictor
	log       *zap.Logger
}

func NewCalorieService(store Store, uploader ImageUploader, predictor FoodPredictor, log *zap.Logger) *CalorieService {
	return &CalorieService{store: store, uploader: uploader, predictor: predictor, log: log}
}

// Record processes one uploaded food image for the account. The uploaded
// object is not cleaned up if a later step fails.
func (s *CalorieService) Record(ctx context.Context, acct *models.Account, image []byte, contentType, filename string) (uint, error) {
	if len(image) == 0 {
		return 0, apperror.NewBadRequest("no image provided", nil)
	}

	key := fmt.Sprintf("food_inference/%s/%d%s", acct.Username, time.Now().Unix(), path.Ext(filename))
	imageURL, err := s.uploader.Upload(ctx, image, contentType, key)
	if err != nil {
		return 0, apperror.NewInternal("failed to upload image", err)
	}

	foodID, err := s.predictor.Predict(ctx, imageURL)
	if err != nil {
		return 0, err
	}

	food, err := s.store.FoodByID(ctx, foodID)
	if err != nil {
		return 0, err
	}

	user, err := s.store.UserByAccountID(ctx, acct.ID)
	if err != nil {
		return 0, err
	}

	calorie := &models.Calorie{
		UserID:       user.ID,
		FoodID:       food.ID,
		JumlahKalori: food.JumlahKalori,
		FoodImageURL: imageURL,
	}
	if err := s.store.InsertCalorie(ctx, calorie); err != nil {
		return 0, err
	}

	s.log.Info("calorie consumption recorded",
		zap.Uint("user_id", user.ID),
		zap.Uint("food_id", food.ID),
		zap.Int("jumlah_kalori", food.JumlahKalori))
	return calorie.ID, nil
}
