package services

import (
	"errors"

	"backend/config"
	"backend/models"
)

func ListCategories() ([]models.FoodCategory, error) {
	var categories []models.FoodCategory
	if err := config.DB.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func FindCategoryByName(name string) (*models.FoodCategory, error) {
	var category models.FoodCategory
	result := config.DB.Where("name = ?", name).First(&category)
	if result.Error != nil {
		return nil, errors.New("category not found")
	}
	return &category, nil
}
