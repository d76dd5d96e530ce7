package models

import (
    "time"

    "gorm.io/gorm"
)

// Weight records one body-weight measurement. Same append-only
// semantics as FoodLog: no edit path, delete by id only.
type Weight struct {
    gorm.Model
    UserID    uint      `gorm:"index;not null" json:"user_id"`
    Weight    float64   `gorm:"not null" json:"weight"`
    EntryDate time.Time `gorm:"index;not null" json:"entry_date"` // truncate to YYYY-MM-DD
}
