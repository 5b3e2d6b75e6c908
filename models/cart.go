package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"`                    // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"` // Cascade delete items if cart is deleted
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CartID     uint      `gorm:"uniqueIndex:idx_cart_product" json:"cart_id"`
	ProductID  uint      `gorm:"uniqueIndex:idx_cart_product" json:"product_id"`
	Quantity   int       `json:"quantity"`
	PriceAtAdd float64   `json:"price_at_add"` // Price snapshot captured at add-time
	AddedAt    time.Time `json:"added_at"`
}
