package services

import (
	"testing"
	"time"

	"github.com/ram2117/Nutri-Track/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAddEntryIgnoresDoubleClick(t *testing.T) {
	svc := NewWaterService(newTestDB(t))

	first, created, err := svc.AddEntry(1, 250, "ml")
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.AddEntry(1, 250, "ml")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	// a different amount is a genuine new entry
	_, created, err = svc.AddEntry(1, 500, "ml")
	require.NoError(t, err)
	assert.True(t, created)

	// same amount from a different user is too
	_, created, err = svc.AddEntry(2, 250, "ml")
	require.NoError(t, err)
	assert.True(t, created)
}

func TestListTodayExcludesOlderEntries(t *testing.T) {
	db := newTestDB(t)
	svc := NewWaterService(db)

	require.NoError(t, db.Create(&models.WaterEntry{
		UserID: 1, Amount: 999, Unit: "ml", Time: time.Now().AddDate(0, 0, -1),
	}).Error)
	_, _, err := svc.AddEntry(1, 300, "ml")
	require.NoError(t, err)

	entries, err := svc.ListToday(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 300.0, entries[0].Amount)
}

func TestDeleteScopedToOwner(t *testing.T) {
	svc := NewWaterService(newTestDB(t))

	entry, _, err := svc.AddEntry(1, 250, "ml")
	require.NoError(t, err)

	err = svc.Delete(2, entry.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, svc.Delete(1, entry.ID))

	entries, err := svc.ListToday(1)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTotalMLNormalizesUnits(t *testing.T) {
	entries := []models.WaterEntry{
		{Amount: 500, Unit: "ml"},
		{Amount: 10, Unit: "oz"},
	}
	assert.InDelta(t, 500+10*29.5735, TotalML(entries), 1e-6)
	assert.Equal(t, 0.0, TotalML(nil))
}
