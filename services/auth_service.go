package services

import (
    "errors"

    "backend/config"
    "backend/models"
    "backend/utils"

    "gorm.io/gorm"
)

// RegisterUser creates an account and returns a login token, so a
// fresh registration is immediately signed in.
func RegisterUser(username, email, password string) (string, error) {
    var existing models.User
    if err := config.DB.Where("username = ?", username).First(&existing).Error; err == nil {
        return "", errors.New("Username already taken.")
    }

    hashedPassword, err := utils.HashPassword(password)
    if err != nil {
        return "", err
    }

    user := models.User{
        Username: username,
        Email:    email,
        Password: hashedPassword,
    }

    if err := config.DB.Create(&user).Error; err != nil {
        // unique index on username still backstops the lookup above
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            return "", errors.New("Username already taken.")
        }
        return "", err
    }

    return utils.GenerateJWT(user.Username)
}

func AuthenticateUser(username, password string) (string, error) {
    var user models.User
    result := config.DB.Where("username = ?", username).First(&user)
    if result.Error != nil {
        return "", errors.New("Invalid username and/or password.")
    }

    if !utils.CheckPasswordHash(password, user.Password) {
        return "", errors.New("Invalid username and/or password.")
    }

    return utils.GenerateJWT(user.Username)
}
