package models

import "gorm.io/gorm"

// Food is a catalog entry. Read-only from the summary engine's perspective.
type Food struct {
	gorm.Model
	Name         string `gorm:"size:255;not null" json:"name"`
	Type         string `gorm:"size:255;index" json:"type"`
	JumlahKalori int    `json:"jumlah_kalori"`
	Thumbnail    string `gorm:"size:255" json:"thumbnail,omitempty"`
}
