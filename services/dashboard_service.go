package services

import (
	"time"

	"github.com/ram2117/Nutri-Track/models"
	"github.com/ram2117/Nutri-Track/utils"

	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type CaloriePoint struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
}

type WaterProgress struct {
	TotalML float64 `json:"total_ml"`
	GoalML  float64 `json:"goal_ml"`
	Percent float64 `json:"percent"`
}

// DashboardSummary is computed atomically per request; GeneratedAt lets
// clients discard responses that arrive out of order.
type DashboardSummary struct {
	GeneratedAt         time.Time          `json:"generated_at"`
	Today               MacroTotals        `json:"today"`
	RecommendedCalories int                `json:"recommended_calories"`
	Water               WaterProgress      `json:"water"`
	CalorieSeries       []CaloriePoint     `json:"calorie_series"`
	RecentMeals         []models.MealEntry `json:"recent_meals"`
}

func (s *DashboardService) Summary(userID uint) (*DashboardSummary, error) {
	now := time.Now()
	today := now.Format("2006-01-02")
	weekStart := now.AddDate(0, 0, -6)

	meals, err := NewMealService(s.db).ListSinceDate(userID, weekStart.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	water, err := NewWaterService(s.db).ListToday(userID)
	if err != nil {
		return nil, err
	}

	profile, err := NewProfileService(s.db).Get(userID)
	if err != nil {
		return nil, err
	}

	settings, err := NewSettingsService(s.db).GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	totalML := TotalML(water)
	out := &DashboardSummary{
		GeneratedAt:         now,
		Today:               SumMacros(meals, today),
		RecommendedCalories: utils.RecommendedCalories(profile),
		Water: WaterProgress{
			TotalML: totalML,
			GoalML:  settings.DailyWaterGoal,
			Percent: utils.ProgressPercent(totalML, settings.DailyWaterGoal),
		},
		CalorieSeries: CalorieSeries(meals, weekStart, now),
		RecentMeals:   meals,
	}
	return out, nil
}

// SumMacros reduces the rows whose date matches exactly, independent
// of row order.
func SumMacros(entries []models.MealEntry, date string) MacroTotals {
	var t MacroTotals
	for _, e := range entries {
		if e.Date != date {
			continue
		}
		t.Calories += e.Calories
		t.Protein += e.Protein
		t.Carbs += e.Carbs
		t.Fat += e.Fat
	}
	return t
}

// CalorieSeries groups calories by date and walks the window day by
// day, both endpoints inclusive, emitting zero for days without rows.
// The explicit fill step is required because queries only return days
// that have at least one entry.
func CalorieSeries(entries []models.MealEntry, start, end time.Time) []CaloriePoint {
	byDate := map[string]float64{}
	for _, e := range entries {
		byDate[e.Date] += e.Calories
	}

	var series []CaloriePoint
	for d := dayStart(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		series = append(series, CaloriePoint{Date: key, Calories: byDate[key]})
	}
	return series
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
