package services

import (
	"testing"

	"github.com/ram2117/Nutri-Track/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateLazyDefault(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(db)

	settings, err := svc.GetOrCreate(1)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, settings.DailyWaterGoal)

	// second access returns the same row, not a duplicate
	again, err := svc.GetOrCreate(1)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.UserSettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateWaterGoal(t *testing.T) {
	svc := NewSettingsService(newTestDB(t))

	settings, err := svc.UpdateWaterGoal(1, 3000)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, settings.DailyWaterGoal)

	settings, err = svc.GetOrCreate(1)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, settings.DailyWaterGoal)
}
