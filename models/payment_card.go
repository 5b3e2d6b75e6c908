package models

import "time"

// PaymentCard keeps only the last four digits; the full number is read once
// at save time for brand detection and never stored.
type PaymentCard struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"not null;index" json:"user_id"`
	Brand       string    `json:"brand"`
	Last4       string    `gorm:"type:VARCHAR(4)" json:"last4"`
	ExpiryMonth int       `json:"expiry_month"`
	ExpiryYear  int       `json:"expiry_year"`
	HolderName  string    `json:"holder_name"`
	CreatedAt   time.Time `json:"created_at"`
}
