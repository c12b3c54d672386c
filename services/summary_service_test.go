package services_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/Calorties/calorties-api/apperror"
	"github.com/Calorties/calorties-api/models"
	"github.com/Calorties/calorties-api/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type mockStore struct {
	user     *models.User
	foods    map[uint]models.Food
	rows     []models.Calorie
	inserted []models.Calorie
	loc      *time.Location
}

func (m *mockStore) location() *time.Location {
	if m.loc != nil {
		return m.loc
	}
	return time.UTC
}

func (m *mockStore) UserByAccountID(_ context.Context, accountID uint) (*models.User, error) {
	if m.user == nil || m.user.AccountID != accountID {
		return nil, apperror.NewNotFound("user not found", nil)
	}
	return m.user, nil
}

func (m *mockStore) FoodByID(_ context.Context, id uint) (*models.Food, error) {
	f, ok := m.foods[id]
	if !ok {
		return nil, apperror.NewNotFound("food not found", nil)
	}
	return &f, nil
}

func (m *mockStore) InsertCalorie(_ context.Context, c *models.Calorie) error {
	c.ID = uint(len(m.inserted) + 1)
	m.inserted = append(m.inserted, *c)
	return nil
}

func (m *mockStore) CaloriesInRange(_ context.Context, userID uint, start, end time.Time) ([]models.Calorie, error) {
	var out []models.Calorie
	for _, r := range m.rows {
		if r.UserID == userID && !r.CreatedAt.Before(start) && !r.CreatedAt.After(end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockStore) SumCaloriesInRange(ctx context.Context, userID uint, start, end time.Time) (float64, error) {
	rows, _ := m.CaloriesInRange(ctx, userID, start, end)
	var total float64
	for _, r := range rows {
		total += float64(r.JumlahKalori)
	}
	return total, nil
}

func (m *mockStore) SumCaloriesByDate(ctx context.Context, userID uint, start, end time.Time) (map[string]float64, error) {
	rows, _ := m.CaloriesInRange(ctx, userID, start, end)
	totals := make(map[string]float64)
	for _, r := range rows {
		totals[r.CreatedAt.In(m.location()).Format("2006-01-02")] += float64(r.JumlahKalori)
	}
	return totals, nil
}

func calorieRow(id, userID, foodID uint, kalori int, at time.Time) models.Calorie {
	return models.Calorie{
		Model:        gorm.Model{ID: id, CreatedAt: at},
		UserID:       userID,
		FoodID:       foodID,
		JumlahKalori: kalori,
	}
}

func testUser() *models.User {
	return &models.User{
		Model:       gorm.Model{ID: 10},
		AccountID:   1,
		Gender:      models.GenderMale,
		TinggiBadan: 175,
		BeratBadan:  70,
		Birthdate:   time.Date(1999, 5, 15, 0, 0, 0, 0, time.UTC),
	}
}

func newSummaryService(store services.Store) *services.SummaryService {
	return services.NewSummaryService(store, time.UTC, zap.NewNop())
}

func TestDailySummary_NoRecords(t *testing.T) {
	store := &mockStore{user: testUser(), foods: map[uint]models.Food{}}
	svc := newSummaryService(store)

	date := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	got, err := svc.DailySummary(context.Background(), 1, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalKaloriMasuk != 0 {
		t.Fatalf("expected zero intake, got %v", got.TotalKaloriMasuk)
	}
	if len(got.FoodDetails) != 0 {
		t.Fatalf("expected empty food details, got %d", len(got.FoodDetails))
	}
	if len(got.TotalByType) != 0 {
		t.Fatalf("expected empty type totals, got %v", got.TotalByType)
	}
	if got.TargetKalori <= 0 {
		t.Fatalf("expected positive target, got %v", got.TargetKalori)
	}
	if got.TotalKaloriKurang != got.TargetKalori {
		t.Fatalf("expected deficit == target, got deficit %v target %v", got.TotalKaloriKurang, got.TargetKalori)
	}
	if got.TotalKaloriBerlebih != 0 {
		t.Fatalf("expected zero surplus, got %v", got.TotalKaloriBerlebih)
	}
}

func TestDailySummary_DayBoundaries(t *testing.T) {
	date := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	store := &mockStore{
		user: testUser(),
		foods: map[uint]models.Food{
			1: {Model: gorm.Model{ID: 1}, Name: "Nasi Goreng", Type: "Main", JumlahKalori: 100},
		},
		rows: []models.Calorie{
			// first instant of the day: included
			calorieRow(1, 10, 1, 100, date),
			// last instant of the day: included
			calorieRow(2, 10, 1, 100, date.Add(24*time.Hour-time.Nanosecond)),
			// first instant of the next day: excluded
			calorieRow(3, 10, 1, 100, date.Add(24*time.Hour)),
			// last instant of the previous day: excluded
			calorieRow(4, 10, 1, 100, date.Add(-time.Nanosecond)),
		},
	}
	svc := newSummaryService(store)

	got, err := svc.DailySummary(context.Background(), 1, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalKaloriMasuk != 200 {
		t.Fatalf("expected 200 from the two in-window rows, got %v", got.TotalKaloriMasuk)
	}
}

func TestDailySummary_MissingFoodStillCounts(t *testing.T) {
	date := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	store := &mockStore{
		user: testUser(),
		foods: map[uint]models.Food{
			1: {Model: gorm.Model{ID: 1}, Name: "Sate Ayam", Type: "Main", JumlahKalori: 300},
		},
		rows: []models.Calorie{
			calorieRow(1, 10, 1, 300, date.Add(8*time.Hour)),
			// food 99 was deleted after this row was recorded
			calorieRow(2, 10, 99, 200, date.Add(12*time.Hour)),
		},
	}
	svc := newSummaryService(store)

	got, err := svc.DailySummary(context.Background(), 1, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalKaloriMasuk != 500 {
		t.Fatalf("expected snapshot total 500, got %v", got.TotalKaloriMasuk)
	}
	if len(got.FoodDetails) != 1 || got.FoodDetails[0].FoodID != 1 {
		t.Fatalf("expected only the surviving food in details, got %+v", got.FoodDetails)
	}
	if got.TotalByType["Main"] != 300 {
		t.Fatalf("expected type total 300, got %v", got.TotalByType["Main"])
	}
}

func TestDailySummary_SurplusAndDeficitExclusive(t *testing.T) {
	date := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	user := testUser()
	user.Gender = models.GenderOther // target 0, so any intake is surplus
	store := &mockStore{
		user:  user,
		foods: map[uint]models.Food{1: {Model: gorm.Model{ID: 1}, Name: "Bakso", Type: "Soup", JumlahKalori: 400}},
		rows:  []models.Calorie{calorieRow(1, 10, 1, 400, date.Add(10*time.Hour))},
	}
	svc := newSummaryService(store)

	got, err := svc.DailySummary(context.Background(), 1, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalKaloriBerlebih != 400 || got.TotalKaloriKurang != 0 {
		t.Fatalf("expected surplus 400 / deficit 0, got %v / %v", got.TotalKaloriBerlebih, got.TotalKaloriKurang)
	}
}

func TestDailySummary_UserNotFound(t *testing.T) {
	svc := newSummaryService(&mockStore{})
	_, err := svc.DailySummary(context.Background(), 1, time.Now())
	if !apperror.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestWeeklySummary_ZeroFill(t *testing.T) {
	start := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC) // Monday
	end := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)   // Sunday
	wednesday := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	store := &mockStore{
		user: testUser(),
		rows: []models.Calorie{
			calorieRow(1, 10, 1, 300, wednesday.Add(9*time.Hour)),
			calorieRow(2, 10, 1, 200, wednesday.Add(19*time.Hour)),
		},
	}
	svc := newSummaryService(store)

	series, err := svc.WeeklySummary(context.Background(), 1, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(series))
	}
	for i, day := range series {
		wantDate := start.AddDate(0, 0, i).Format("2006-01-02")
		if day.Date != wantDate {
			t.Fatalf("entry %d: expected date %s, got %s", i, wantDate, day.Date)
		}
		want := 0.0
		if day.Date == "2024-06-12" {
			want = 500
		}
		if day.TotalKaloriMasuk != want {
			t.Fatalf("entry %s: expected %v, got %v", day.Date, want, day.TotalKaloriMasuk)
		}
	}
}

func TestWeeklySummary_LengthMatchesRange(t *testing.T) {
	store := &mockStore{user: testUser()}
	svc := newSummaryService(store)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	series, err := svc.WeeklySummary(context.Background(), 1, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(series))
	}
}

func TestWeeklySummary_SingleDayRange(t *testing.T) {
	store := &mockStore{user: testUser()}
	svc := newSummaryService(store)

	day := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	series, err := svc.WeeklySummary(context.Background(), 1, day, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 1 || series[0].Date != "2024-06-05" {
		t.Fatalf("expected single entry for 2024-06-05, got %+v", series)
	}
}

func TestWeeklySummary_InvalidRange(t *testing.T) {
	store := &mockStore{user: testUser()}
	svc := newSummaryService(store)

	start := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)
	_, err := svc.WeeklySummary(context.Background(), 1, start, end)
	if !apperror.IsBadRequest(err) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestWeeklySummary_DefaultWeekIsMondayToSunday(t *testing.T) {
	store := &mockStore{user: testUser()}
	svc := newSummaryService(store)

	series, err := svc.WeeklySummary(context.Background(), 1, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 7 {
		t.Fatalf("expected 7 entries for the default week, got %d", len(series))
	}
	first, err := time.Parse("2006-01-02", series[0].Date)
	if err != nil {
		t.Fatalf("unparseable date %q: %v", series[0].Date, err)
	}
	if first.Weekday() != time.Monday {
		t.Fatalf("expected default week to start on Monday, got %s", first.Weekday())
	}
}

func TestDailySummary_QueryDateInNegativeOffsetLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	store := &mockStore{
		user: testUser(),
		loc:  loc,
		foods: map[uint]models.Food{
			1: {Model: gorm.Model{ID: 1}, Name: "Gado Gado", Type: "Main", JumlahKalori: 500},
		},
		rows: []models.Calorie{
			// lunch at noon local on the requested day
			calorieRow(1, 10, 1, 500, time.Date(2024, 6, 12, 12, 0, 0, 0, loc)),
			// last instant of the previous local day: excluded
			calorieRow(2, 10, 1, 100, time.Date(2024, 6, 11, 23, 59, 59, int(time.Second-time.Nanosecond), loc)),
		},
	}
	svc := services.NewSummaryService(store, loc, zap.NewNop())

	// handlers parse the query parameter without location information
	date, err := time.Parse("2006-01-02", "2024-06-12")
	if err != nil {
		t.Fatal(err)
	}
	got, err := svc.DailySummary(context.Background(), 1, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalKaloriMasuk != 500 {
		t.Fatalf("expected the 500 kcal eaten on 2024-06-12 local, got %v", got.TotalKaloriMasuk)
	}
}

func TestWeeklySummary_RangeInNegativeOffsetLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	store := &mockStore{
		user: testUser(),
		loc:  loc,
		rows: []models.Calorie{
			calorieRow(1, 10, 1, 300, time.Date(2024, 6, 10, 7, 30, 0, 0, loc)),
		},
	}
	svc := services.NewSummaryService(store, loc, zap.NewNop())

	start, err := time.Parse("2006-01-02", "2024-06-10")
	if err != nil {
		t.Fatal(err)
	}
	end, err := time.Parse("2006-01-02", "2024-06-16")
	if err != nil {
		t.Fatal(err)
	}
	series, err := svc.WeeklySummary(context.Background(), 1, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(series))
	}
	if series[0].Date != "2024-06-10" {
		t.Fatalf("expected the series to start on the requested date, got %s", series[0].Date)
	}
	if series[0].TotalKaloriMasuk != 300 {
		t.Fatalf("expected 300 on the first day, got %v", series[0].TotalKaloriMasuk)
	}
}

func TestWeeklySummary_Idempotent(t *testing.T) {
	start := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)
	store := &mockStore{
		user: testUser(),
		rows: []models.Calorie{
			calorieRow(1, 10, 1, 250, start.Add(13*time.Hour)),
		},
	}
	svc := newSummaryService(store)

	first, err := svc.WeeklySummary(context.Background(), 1, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.WeeklySummary(context.Background(), 1, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical output for an unchanged store")
	}
}
