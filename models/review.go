package models

import "time"

// ProductReview is allowed once per (user, order, product) and only after the
// owning order is completed. No edit or delete exists.
type ProductReview struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_review_triple" json:"user_id"`
	OrderID   uint      `gorm:"uniqueIndex:idx_review_triple" json:"order_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_review_triple" json:"product_id"`
	Rating    int       `json:"rating"` // 1-5
	Body      string    `gorm:"type:VARCHAR(1000)" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
