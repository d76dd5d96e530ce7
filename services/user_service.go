package services

import (
	"errors"

	"backend/config"
	"backend/models"
)

func FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "username = ?", username)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
