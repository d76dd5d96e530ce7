package models

import "gorm.io/gorm"

// A catalog entry describing a consumable.
type Food struct {
    gorm.Model
    Name        string       `gorm:"not null" json:"name"`
    CategoryID  uint         `gorm:"index;not null" json:"category_id"`
    Category    FoodCategory `json:"category"`
    Description string       `gorm:"type:text" json:"description"`
    Calories    float64      `json:"calories"`
    Protein     float64      `json:"protein"`
    Carbs       float64      `json:"carbs"`
    Fat         float64      `json:"fat"`

    Images []Image `json:"images,omitempty"`

    // Whichever Image row sorts first by id, attached by list queries
    // for display. Never persisted.
    FirstImage *Image `gorm:"-" json:"image"`
}
