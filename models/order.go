package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	// Order statuses (checkout happens post-payment, so "paid" is the entry state)
	OrderStatusPaid       OrderStatus = "paid"       // Order created, payment captured
	OrderStatusProcessing OrderStatus = "processing" // Being prepared for dispatch
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the items
	OrderStatusCompleted  OrderStatus = "completed"  // Confirmed by the customer, reviews unlocked
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled by an admin
)

// orderTransitions is the lifecycle graph. Completed and cancelled are
// terminal: they map to nothing.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPaid:       {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {OrderStatusCompleted},
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions exist from s.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// ParseOrderStatus maps a string to an OrderStatus
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(OrderStatusPaid):
		return OrderStatusPaid, nil
	case string(OrderStatusProcessing):
		return OrderStatusProcessing, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	case string(OrderStatusCompleted):
		return OrderStatusCompleted, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

type Order struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	OrderRef     string        `gorm:"uniqueIndex" json:"order_ref"`
	UserID       string        `gorm:"not null;index" json:"user_id"`
	User         User          `gorm:"foreignKey:UserID" json:"-"`
	Items        []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Shipping     OrderShipping `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"shipping"`
	Status       OrderStatus   `gorm:"type:VARCHAR(20);default:'paid'" json:"status"`
	Subtotal     float64       `json:"subtotal"`
	Discount     float64       `json:"discount"`
	ShippingCost float64       `json:"shipping_cost"`
	Tax          float64       `json:"tax"`
	Total        float64       `json:"total"`
	Payment      string        `json:"payment"` // Serialized payment descriptor
	PromoID      *uint         `json:"promo_id,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"order_id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	PriceAtTime float64 `json:"price_at_time"` // Unit price fixed at order time
}

type OrderShipping struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	OrderID  uint    `gorm:"uniqueIndex" json:"order_id"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Address  string  `json:"address"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	Zip      string  `json:"zip"`
	Country  string  `json:"country"`
	Method   string  `json:"method"`
	Cost     float64 `json:"cost"`
}
