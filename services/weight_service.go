package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

// AddWeight appends one weight measurement for the user.
func AddWeight(userID uint, weightKg float64, entryDate time.Time) (*models.Weight, error) {
	entry := models.Weight{
		UserID:    userID,
		Weight:    weightKg,
		EntryDate: entryDate,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func GetUserWeightLog(userID uint) ([]models.Weight, error) {
	var entries []models.Weight
	err := config.DB.Where("user_id = ?", userID).
		Order("id").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func GetWeightEntry(id uint) (*models.Weight, error) {
	var entry models.Weight
	result := config.DB.First(&entry, id)
	if result.Error != nil {
		return nil, errors.New("weight entry not found")
	}
	return &entry, nil
}

// DeleteWeight removes one entry by id with the same semantics as
// DeleteFoodLog: missing ids are a no-op and ownership is not checked.
func DeleteWeight(id uint) error {
	var entry models.Weight
	err := config.DB.First(&entry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return config.DB.Delete(&entry).Error
}
