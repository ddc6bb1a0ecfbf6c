package services

import (
	"fmt"
	"testing"

	"github.com/ram2117/Nutri-Track/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// named in-memory DB so every pooled connection sees the same data
	testDBSeq++
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.UserSettings{},
		&models.MealEntry{},
		&models.WaterEntry{},
		&models.Reminder{},
		&models.UserDevice{},
	))
	return db
}
