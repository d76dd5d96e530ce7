package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Username      string    `gorm:"uniqueIndex;not null" json:"username"`
    Email         string    `json:"email"`
    Password      string    `gorm:"not null" json:"-"`
    ResetToken    string    `json:"-"`
    ResetTokenExp time.Time `json:"-"`
}
