package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Calorties/calorties-api/apperror"
	"github.com/Calorties/calorties-api/config"
	"github.com/Calorties/calorties-api/services"

	"go.uber.org/zap"
)

func newPredictionService(url string) *services.PredictionService {
	return services.NewPredictionService(config.InferenceConfig{
		URL:     url,
		Timeout: 2 * time.Second,
	}, zap.NewNop())
}

func TestPredict_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var req struct {
			ImageURL string `json:"image_url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.ImageURL != "https://cdn.example.com/food.jpg" {
			t.Errorf("unexpected image url %q", req.ImageURL)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"food_id": 7}`)); err != nil {
			t.Error(err)
		}
	}))
	defer srv.Close()

	svc := newPredictionService(srv.URL)
	got, err := svc.Predict(context.Background(), "https://cdn.example.com/food.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 {
		t.Fatalf("expected food id 7, got %d", got)
	}
}

func TestPredict_NonSuccessPropagatesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		if _, err := w.Write([]byte("model warming up")); err != nil {
			t.Error(err)
		}
	}))
	defer srv.Close()

	svc := newPredictionService(srv.URL)
	_, err := svc.Predict(context.Background(), "https://cdn.example.com/food.jpg")
	ae, ok := apperror.FromError(err)
	if !ok || ae.Type != apperror.UpstreamError {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if ae.StatusCode() != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", ae.StatusCode())
	}
	if ae.Message != "model warming up" {
		t.Fatalf("expected verbatim body, got %q", ae.Message)
	}
}

func TestPredict_Unreachable(t *testing.T) {
	svc := newPredictionService("http://127.0.0.1:1")
	_, err := svc.Predict(context.Background(), "https://cdn.example.com/food.jpg")
	ae, ok := apperror.FromError(err)
	if !ok || ae.Type != apperror.UpstreamError {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if ae.StatusCode() != http.StatusBadGateway {
		t.Fatalf("expected 502 for unreachable service, got %d", ae.StatusCode())
	}
}
