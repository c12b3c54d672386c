package models

import "gorm.io/gorm"

// Account is the identity record. Accounts are never hard-deleted; gorm's
// soft delete keeps the row with deleted_at set.
type Account struct {
	gorm.Model
	Nama     string `gorm:"size:255;not null" json:"nama"`
	Username string `gorm:"size:255;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
}
