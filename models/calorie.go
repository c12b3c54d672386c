package models

import "gorm.io/gorm"

// Calorie is a consumption record. JumlahKalori is snapshotted from the Food
// at record time and never re-derived; summaries read the stored value.
// CreatedAt is the event time for all date bucketing.
type Calorie struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null" json:"user_id"`
	FoodID       uint   `gorm:"index" json:"food_id"`
	JumlahKalori int    `json:"jumlah_kalori"`
	FoodImageURL string `gorm:"size:255" json:"food_image_url"`
}
