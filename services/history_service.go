package services

import (
	"errors"
	"time"

	"github.com/ram2117/Nutri-Track/models"

	"gorm.io/gorm"
)

type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type HistoryResponse struct {
	GeneratedAt time.Time     `json:"generated_at"`
	From        string        `json:"from"`
	To          string        `json:"to"`
	Series      []SeriesPoint `json:"series"`
}

// DateRange resolves the user-selected window: last 7 days, last 30
// days, or an explicit custom start-end pair.
func DateRange(rangeType, startStr, endStr string, now time.Time) (time.Time, time.Time, error) {
	end := dayStart(now)
	switch rangeType {
	case "week", "":
		return end.AddDate(0, 0, -6), end, nil
	case "month":
		return end.AddDate(0, 0, -29), end, nil
	case "custom":
		start, err := time.ParseInLocation("2006-01-02", startStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid start date")
		}
		end, err := time.ParseInLocation("2006-01-02", endStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid end date")
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, errors.New("end date before start date")
		}
		return start, end, nil
	default:
		return time.Time{}, time.Time{}, errors.New("range must be week, month or custom")
	}
}

func (s *HistoryService) Water(userID uint, start, end time.Time) (*HistoryResponse, error) {
	entries, err := NewWaterService(s.db).ListByTimeRange(userID, start, dayEnd(end))
	if err != nil {
		return nil, err
	}
	return &HistoryResponse{
		GeneratedAt: time.Now(),
		From:        start.Format("2006-01-02"),
		To:          end.Format("2006-01-02"),
		Series:      WaterSeries(entries, start, end),
	}, nil
}

func (s *HistoryService) Nutrition(userID uint, metric string, start, end time.Time) (*HistoryResponse, error) {
	if !validMetric(metric) {
		return nil, errors.New("metric must be calories, protein, carbs or fat")
	}

	entries, err := NewMealService(s.db).ListByDateRange(
		userID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	return &HistoryResponse{
		GeneratedAt: time.Now(),
		From:        start.Format("2006-01-02"),
		To:          end.Format("2006-01-02"),
		Series:      NutritionSeries(entries, metric, start, end),
	}, nil
}

// WaterSeries buckets intake by calendar day and converts to liters,
// zero-filling days without entries.
func WaterSeries(entries []models.WaterEntry, start, end time.Time) []SeriesPoint {
	byDate := map[string]float64{}
	for _, e := range entries {
		key := e.Time.Format("2006-01-02")
		if e.Unit == "oz" {
			byDate[key] += e.Amount * mlPerOz
		} else {
			byDate[key] += e.Amount
		}
	}

	var series []SeriesPoint
	for d := dayStart(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		series = append(series, SeriesPoint{Date: key, Value: byDate[key] / 1000.0})
	}
	return series
}

// NutritionSeries applies the same zero-fill technique to a single
// user-selected metric.
func NutritionSeries(entries []models.MealEntry, metric string, start, end time.Time) []SeriesPoint {
	byDate := map[string]float64{}
	for _, e := range entries {
		byDate[e.Date] += metricValue(e, metric)
	}

	var series []SeriesPoint
	for d := dayStart(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		series = append(series, SeriesPoint{Date: key, Value: byDate[key]})
	}
	return series
}

func validMetric(metric string) bool {
	switch metric {
	case "calories", "protein", "carbs", "fat":
		return true
	}
	return false
}

func metricValue(e models.MealEntry, metric string) float64 {
	switch metric {
	case "calories":
		return e.Calories
	case "protein":
		return e.Protein
	case "carbs":
		return e.Carbs
	case "fat":
		return e.Fat
	}
	return 0
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
