package services

import (
	"testing"
	"time"

	"github.com/ram2117/Nutri-Track/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDateRange(t *testing.T) {
	now := time.Date(2026, 8, 30, 16, 0, 0, 0, time.Local)

	start, end, err := DateRange("week", "", "", now)
	require.NoError(t, err)
	assert.Equal(t, day(2026, 8, 24), start)
	assert.Equal(t, day(2026, 8, 30), end)

	start, end, err = DateRange("month", "", "", now)
	require.NoError(t, err)
	assert.Equal(t, day(2026, 8, 1), start)
	assert.Equal(t, day(2026, 8, 30), end)

	start, end, err = DateRange("custom", "2026-08-01", "2026-08-15", now)
	require.NoError(t, err)
	assert.Equal(t, day(2026, 8, 1), start)
	assert.Equal(t, day(2026, 8, 15), end)

	_, _, err = DateRange("custom", "2026-08-15", "2026-08-01", now)
	assert.Error(t, err)

	_, _, err = DateRange("custom", "not-a-date", "2026-08-15", now)
	assert.Error(t, err)

	_, _, err = DateRange("year", "", "", now)
	assert.Error(t, err)
}

func TestWaterSeriesConvertsToLitersAndZeroFills(t *testing.T) {
	start := day(2026, 8, 24)
	end := day(2026, 8, 30)

	entries := []models.WaterEntry{
		{Amount: 500, Unit: "ml", Time: day(2026, 8, 24).Add(8 * time.Hour)},
		{Amount: 1500, Unit: "ml", Time: day(2026, 8, 24).Add(20 * time.Hour)},
		{Amount: 10, Unit: "oz", Time: day(2026, 8, 27).Add(12 * time.Hour)},
	}

	series := WaterSeries(entries, start, end)
	require.Len(t, series, 7)

	assert.Equal(t, "2026-08-24", series[0].Date)
	assert.Equal(t, 2.0, series[0].Value) // 2000 ml
	assert.Equal(t, 0.0, series[1].Value)
	assert.InDelta(t, 0.295735, series[3].Value, 1e-6) // 10 oz in liters
	assert.Equal(t, 0.0, series[6].Value)
}

func TestNutritionSeriesPerMetric(t *testing.T) {
	start := day(2026, 8, 28)
	end := day(2026, 8, 30)

	entries := []models.MealEntry{
		{Date: "2026-08-28", Calories: 500, Protein: 30},
		{Date: "2026-08-28", Calories: 250, Protein: 15},
		{Date: "2026-08-30", Calories: 700, Protein: 40},
	}

	calories := NutritionSeries(entries, "calories", start, end)
	require.Len(t, calories, 3)
	assert.Equal(t, 750.0, calories[0].Value)
	assert.Equal(t, 0.0, calories[1].Value)
	assert.Equal(t, 700.0, calories[2].Value)

	protein := NutritionSeries(entries, "protein", start, end)
	assert.Equal(t, 45.0, protein[0].Value)
	assert.Equal(t, 40.0, protein[2].Value)
}

func TestHistoryServiceNutritionRejectsUnknownMetric(t *testing.T) {
	db := newTestDB(t)
	_, err := NewHistoryService(db).Nutrition(1, "sodium", day(2026, 8, 24), day(2026, 8, 30))
	assert.Error(t, err)
}

func TestHistoryServiceWaterScopedToUser(t *testing.T) {
	db := newTestDB(t)

	now := time.Now()
	require.NoError(t, db.Create(&models.WaterEntry{UserID: 1, Amount: 1000, Unit: "ml", Time: now}).Error)
	require.NoError(t, db.Create(&models.WaterEntry{UserID: 2, Amount: 9000, Unit: "ml", Time: now}).Error)

	start, end, err := DateRange("week", "", "", now)
	require.NoError(t, err)

	resp, err := NewHistoryService(db).Water(1, start, end)
	require.NoError(t, err)
	require.Len(t, resp.Series, 7)
	assert.Equal(t, 1.0, resp.Series[6].Value)
}
