package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"

	"backend/config"
	"backend/models"
	"backend/utils"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB swaps config.DB for a per-test in-memory database.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FoodCategory{},
		&models.Food{},
		&models.Image{},
		&models.FoodLog{},
		&models.Weight{},
	))

	config.DB = db
}

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, config.DB.Create(&user).Error)
	return &user
}

func createTestCategory(t *testing.T, name string) *models.FoodCategory {
	t.Helper()
	category := models.FoodCategory{Name: name}
	require.NoError(t, config.DB.Create(&category).Error)
	return &category
}

func createTestFood(t *testing.T, name string, categoryID uint) *models.Food {
	t.Helper()
	food := models.Food{Name: name, CategoryID: categoryID}
	require.NoError(t, config.DB.Create(&food).Error)
	return &food
}

func testImageData(contentType, payload string) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString([]byte(payload))
}

// fakeImageStore stands in for S3 during tests.
type fakeImageStore struct {
	uploads int
	fail    bool
}

func (f *fakeImageStore) Upload(img *utils.ParsedImage, filenamePrefix string) (string, error) {
	if f.fail {
		return "", errors.New("upload failed")
	}
	f.uploads++
	return fmt.Sprintf("https://cdn.example.com/food-images/%s-%d%s", filenamePrefix, f.uploads, img.Ext), nil
}
