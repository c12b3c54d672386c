package services

import (
	"context"
	"time"

	"github.com/Calorties/calorties-api/apperror"

	"go.uber.org/zap"
)

// FoodDetail is one consumed item in the daily breakdown.
type FoodDetail struct {
	FoodID       uint   `json:"food_id"`
	Name         string `json:"name"`
	JumlahKalori int    `json:"jumlah_kalori"`
	Thumbnail    string `json:"thumbnail,omitempty"`
}

// DaySummary is the daily intake report for one calendar date.
type DaySummary struct {
	TotalKaloriMasuk    float64        `json:"total_kalori_masuk"`
	TotalKaloriKurang   float64        `json:"total_kalori_kurang"`
	TotalKaloriBerlebih float64        `json:"total_kalori_berlebih"`
	TargetKalori        float64        `json:"target_kalori"`
	FoodDetails         []FoodDetail   `json:"food_details"`
	TotalByType         map[string]int `json:"total_by_type"`
}

// DayTotal is one entry of the weekly zero-filled series.
type DayTotal struct {
	Date             string  `json:"date"`
	TotalKaloriMasuk float64 `json:"total_kalori_masuk"`
}

// SummaryService computes daily and weekly intake summaries against the
// user's target calorie budget. All calendar bucketing uses the configured
// location; day windows are inclusive on both ends.
type SummaryService struct {
	store Store
	loc   *time.Location
	log   *zap.Logger
}

func NewSummaryService(store Store, loc *time.Location, log *zap.Logger) *SummaryService {
	if loc == nil {
		loc = time.UTC
	}
	return &SummaryService{store: store, loc: loc, log: log}
}

// DailySummary reports total intake, per-food breakdown and the
// surplus/deficit against the target for one date. A zero date means today.
//
// A Calorie row whose Food no longer exists still counts toward the total
// (the snapshot is the ledger of record) but is skipped from the breakdown.
func (s *SummaryService) DailySummary(ctx context.Context, accountID uint, date time.Time) (*DaySummary, error) {
	if date.IsZero() {
		date = time.Now().In(s.loc)
	}

	user, err := s.store.UserByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	target, err := TargetCalories(Biometrics{
		Gender:    user.Gender,
		WeightKg:  user.BeratBadan,
		HeightCm:  user.TinggiBadan,
		Birthdate: user.Birthdate,
	}, date)
	if err != nil {
		return nil, err
	}

	start, end := s.dayWindow(date)
	total, err := s.store.SumCaloriesInRange(ctx, user.ID, start, end)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.CaloriesInRange(ctx, user.ID, start, end)
	if err != nil {
		return nil, err
	}

	details := make([]FoodDetail, 0, len(rows))
	byType := make(map[string]int)
	for _, row := range rows {
		food, err := s.store.FoodByID(ctx, row.FoodID)
		if err != nil {
			if apperror.IsNotFound(err) {
				s.log.Debug("calorie record references missing food",
					zap.Uint("calorie_id", row.ID), zap.Uint("food_id", row.FoodID))
				continue
			}
			return nil, err
		}
		details = append(details, FoodDetail{
			FoodID:       food.ID,
			Name:         food.Name,
			JumlahKalori: food.JumlahKalori,
			Thumbnail:    food.Thumbnail,
		})
		byType[food.Type] += food.JumlahKalori
	}

	out := &DaySummary{
		TotalKaloriMasuk: total,
		TargetKalori:     target,
		FoodDetails:      details,
		TotalByType:      byType,
	}
	if total < target {
		out.TotalKaloriKurang = target - total
	} else if total > target {
		out.TotalKaloriBerlebih = total - target
	}
	return out, nil
}

// WeeklySummary returns the zero-filled daily intake series for the range.
// Zero start/end default to Monday..Sunday of the current week.
func (s *SummaryService) WeeklySummary(ctx context.Context, accountID uint, start, end time.Time) ([]DayTotal, error) {
	if start.IsZero() || end.IsZero() {
		start, end = s.currentWeek()
	}
	start = s.truncate(start)
	end = s.truncate(end)
	if start.After(end) {
		return nil, apperror.NewBadRequest("start_date must not be after end_date", nil)
	}

	user, err := s.store.UserByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	totals, err := s.store.SumCaloriesByDate(ctx, user.ID, start, s.dayEnd(end))
	if err != nil {
		return nil, err
	}

	var series []DayTotal
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		series = append(series, DayTotal{
			Date:             key,
			TotalKaloriMasuk: totals[key],
		})
	}
	return series, nil
}

// truncate pins t's calendar date to midnight in the service location.
// Parsed date parameters carry the intended date in their wall clock
// whatever zone they were parsed in, so the components are read as-is
// rather than converted between zones.
func (s *SummaryService) truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

func (s *SummaryService) dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), s.loc)
}

func (s *SummaryService) dayWindow(t time.Time) (time.Time, time.Time) {
	return s.truncate(t), s.dayEnd(t)
}

// currentWeek returns Monday through Sunday of the current ISO week.
func (s *SummaryService) currentWeek() (time.Time, time.Time) {
	today := s.truncate(time.Now().In(s.loc))
	offset := (int(today.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	monday := today.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}
