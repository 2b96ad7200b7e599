package models

import "gorm.io/gorm"

// LoginTracking records one row per successful login
type LoginTracking struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null" json:"userId"`
	IP        string `json:"ip"`
	UserAgent string `json:"userAgent"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
}
