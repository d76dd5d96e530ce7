package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

// AddFoodLog appends a consumption event for the user, looked up by
// the food's name.
func AddFoodLog(userID uint, foodName string) (*models.FoodLog, error) {
	var food models.Food
	if err := config.DB.Where("name = ?", foodName).First(&food).Error; err != nil {
		return nil, errors.New("food not found")
	}

	entry := models.FoodLog{
		UserID: userID,
		FoodID: food.ID,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}

	entry.Food = food
	return &entry, nil
}

// GetUserFoodLog lists the user's consumption events with the food
// preloaded.
func GetUserFoodLog(userID uint) ([]models.FoodLog, error) {
	var entries []models.FoodLog
	err := config.DB.Preload("Food").Preload("Food.Category").
		Where("user_id = ?", userID).
		Order("id").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func GetFoodLogEntry(id uint) (*models.FoodLog, error) {
	var entry models.FoodLog
	result := config.DB.Preload("Food").First(&entry, id)
	if result.Error != nil {
		return nil, errors.New("food log entry not found")
	}
	return &entry, nil
}

// DeleteFoodLog removes one entry by id. A missing id is a no-op, not
// an error. Deletion is by id only; ownership is not checked.
func DeleteFoodLog(id uint) error {
	var entry models.FoodLog
	err := config.DB.First(&entry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return config.DB.Delete(&entry).Error
}
