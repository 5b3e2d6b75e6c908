package models

import "time"

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// PromoCode codes are stored uppercase so lookups stay case-insensitive.
type PromoCode struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	Code           string       `gorm:"uniqueIndex;not null" json:"code"`
	Type           DiscountType `gorm:"type:VARCHAR(12);not null" json:"type"`
	Value          float64      `json:"value"`
	MaxDiscount    *float64     `json:"max_discount"`     // nil = no cap
	MinOrderAmount float64      `json:"min_order_amount"`
	UsageLimit     *int         `json:"usage_limit"` // nil = unlimited
	UsedCount      int          `json:"used_count"`
	Active         bool         `gorm:"default:true" json:"active"`
	ExpiresAt      *time.Time   `json:"expires_at"` // nil = never expires
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// PromoRedemption existence means the user has consumed the code. The unique
// index turns a concurrent double-redeem into a key conflict.
type PromoRedemption struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PromoID    uint      `gorm:"uniqueIndex:idx_promo_user" json:"promo_id"`
	UserID     string    `gorm:"uniqueIndex:idx_promo_user" json:"user_id"`
	RedeemedAt time.Time `json:"redeemed_at"`
}
