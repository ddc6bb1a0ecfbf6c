package services

import (
	"testing"

	"github.com/ram2117/Nutri-Track/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSaveDeviceUpsertsOnTokenHash(t *testing.T) {
	p := &PushService{db: newTestDB(t)}

	first, err := p.saveDevice(1, "android", "arn:aws:sns:ep/1", "hash-a")
	require.NoError(t, err)
	assert.True(t, first.Enabled)

	// same token registered again: endpoint refreshed, no new row
	again, err := p.saveDevice(1, "android", "arn:aws:sns:ep/2", "hash-a")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "arn:aws:sns:ep/2", again.EndpointARN)

	_, err = p.saveDevice(1, "android", "arn:aws:sns:ep/3", "hash-b")
	require.NoError(t, err)

	var count int64
	require.NoError(t, p.db.Model(&models.UserDevice{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestRemoveDeviceIsScopedToUser(t *testing.T) {
	p := &PushService{db: newTestDB(t)}

	dev, err := p.saveDevice(1, "ios", "arn:aws:sns:ep/9", "hash-x")
	require.NoError(t, err)

	require.NoError(t, p.RemoveDevice(2, dev.ID)) // no-op for another user
	var still models.UserDevice
	require.NoError(t, p.db.First(&still, dev.ID).Error)

	require.NoError(t, p.RemoveDevice(1, dev.ID))
	err = p.db.First(&still, dev.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPlatformArn(t *testing.T) {
	p := &PushService{fcmPlatformArn: "arn:aws:sns:app/fcm"}

	arn, err := p.platformArn("Android")
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:sns:app/fcm", arn)

	_, err = p.platformArn("windows")
	assert.Error(t, err)

	_, err = (&PushService{}).platformArn("ios")
	assert.Error(t, err)
}
