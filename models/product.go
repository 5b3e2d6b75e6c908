package models

import (
	"time"

	"gorm.io/gorm"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

type Product struct {
	ID              uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string        `gorm:"not null" json:"name"`
	Description     string        `json:"description"`
	Price           float64       `gorm:"not null" json:"price"` // Required, non-negative
	Stock           int           `json:"stock"`
	Image           string        `json:"image"`
	CategoryID      uint          `gorm:"index" json:"category_id"`
	Category        Category      `gorm:"foreignKey:CategoryID" json:"category"`
	Status          ProductStatus `gorm:"type:VARCHAR(10);default:'active'" json:"status"`
	DiscountPercent *float64      `json:"discount_percent"` // 0-100, nil when no discount
	Rating          *float64      `json:"rating"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
