package models

import "gorm.io/gorm"

// One stored image for a food. URL points at the uploaded S3 object.
type Image struct {
    gorm.Model
    FoodID      uint   `gorm:"index;not null" json:"food_id"`
    URL         string `gorm:"not null" json:"url"`
    ContentType string `gorm:"size:64" json:"content_type"`
}
