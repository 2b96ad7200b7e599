package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PurchaseStatusCreated = "created"
	PurchaseStatusPaid    = "paid"
)

// Purchase links a user, a course and a remote payment order.
// Status only ever moves created -> paid.
type Purchase struct {
	gorm.Model
	UserID          uint           `gorm:"index;not null" json:"userId"`
	CourseID        uint           `gorm:"index;not null" json:"courseId"`
	OrderID         string         `gorm:"index;not null" json:"orderId"` // gateway order id
	PaymentID       string         `gorm:"default:''" json:"paymentId"`   // empty until verified
	Status          string         `gorm:"default:'created'" json:"status"`
	Receipt         string         `json:"receipt"`
	GatewayResponse datatypes.JSON `json:"-"` // raw order payload from the gateway
	IsDeleted       bool           `gorm:"default:false" json:"-"`
	User            User           `gorm:"foreignKey:UserID" json:"-"`
	Course          Course         `gorm:"foreignKey:CourseID" json:"-"`
}
