package models

import "gorm.io/gorm"

// FoodLog records one consumption event for a user. Entries are
// immutable once created; the only mutation path is delete by id.
// A user may log the same food any number of times.
type FoodLog struct {
    gorm.Model
    UserID uint `gorm:"index;not null" json:"user_id"`
    FoodID uint `gorm:"index;not null" json:"food_id"`
    Food   Food `json:"food"`
}
