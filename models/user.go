package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// User is the biometric profile, one-to-one with an Account.
type User struct {
	gorm.Model
	AccountID uint    `gorm:"index;not null" json:"account_id"`
	Account   Account `json:"-"`

	Nama            string    `gorm:"size:255;not null" json:"nama"`
	Email           string    `gorm:"size:255;not null" json:"email"`
	Birthdate       time.Time `gorm:"type:date" json:"birthdate"`
	Gender          string    `gorm:"size:10" json:"gender"` // Male | Female | Other
	TinggiBadan     float64   `gorm:"type:decimal(5,2)" json:"tinggi_badan"` // height, cm
	BeratBadan      float64   `gorm:"type:decimal(5,2)" json:"berat_badan"`  // weight, kg
	ProfileImageURL string    `gorm:"size:255" json:"profile_image_url"`
}
