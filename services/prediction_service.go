package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/Calorties/calorties-api/apperror"
	appcfg "github.com/Calorties/calorties-api/config"

	"go.uber.org/zap"
)

// FoodPredictor resolves an uploaded image URL to a food catalog id.
type FoodPredictor interface {
	Predict(ctx context.Context, imageURL string) (uint, error)
}

// PredictionService calls the external food-recognition inference endpoint.
// No retries; a non-200 answer is surfaced to the caller with the upstream
// status and body unchanged.
type PredictionService struct {
	endpoint string
	client   *http.Client
	log      *zap.Logger
}

func NewPredictionService(cfg appcfg.InferenceConfig, log *zap.Logger) *PredictionService {
	return &PredictionService{
		endpoint: cfg.URL,
		client:   &http.Client{Timeout: cfg.Timeout},
		log:      log,
	}
}

type predictionRequest struct {
	ImageURL string `json:"image_url"`
}

type predictionResponse struct {
	FoodID uint `json:"food_id"`
}

func (s *PredictionService) Predict(ctx context.Context, imageURL string) (uint, error) {
	payload, err := json.Marshal(predictionRequest{ImageURL: imageURL})
	if err != nil {
		return 0, apperror.NewInternal("failed to encode inference request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, apperror.NewInternal("failed to build inference request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, apperror.NewUpstream(0, "inference service unreachable: "+err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, apperror.NewUpstream(0, "failed to read inference response: "+err.Error())
	}
	if resp.StatusCode != http.StatusOK {
		s.log.Warn("inference service returned non-success",
			zap.Int("status", resp.StatusCode), zap.String("body", string(body)))
		return 0, apperror.NewUpstream(resp.StatusCode, string(body))
	}

	var pr predictionResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return 0, apperror.NewInternal("failed to parse inference response", err)
	}
	return pr.FoodID, nil
}
