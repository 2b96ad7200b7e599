package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Price       int    `gorm:"not null" json:"price"` // rupees; gateway is charged price * 100 paise
	Thumbnail   string `json:"thumbnail"`
	VideoURL    string `json:"videoUrl"`
	IsDeleted   bool   `gorm:"default:false" json:"-"`
}
