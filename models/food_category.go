package models

import "gorm.io/gorm"

// FoodCategory groups foods under a unique human-readable name.
// The name doubles as the URL key for category pages.
type FoodCategory struct {
    gorm.Model
    Name string `gorm:"uniqueIndex;not null" json:"name"`
}
