package orderControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	promoControllers "github.com/velamart/storefront-api/controllers/promo"
	"github.com/velamart/storefront-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	freeShippingThreshold = 500.0
	flatShippingCost      = 15.0
	taxRate               = 0.10
)

var (
	ErrEmptyOrder        = errors.New("order has no items")
	ErrProductNotInCart  = errors.New("product is not in the cart")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// -------- Request Structs --------

type CheckoutItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type ShippingInput struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	State    string `json:"state"`
	Zip      string `json:"zip" binding:"required"`
	Country  string `json:"country" binding:"required"`
	Method   string `json:"method"`
}

type CheckoutRequest struct {
	Items     []CheckoutItem  `json:"items" binding:"required,min=1,dive"`
	Shipping  ShippingInput   `json:"shipping" binding:"required"`
	Payment   json.RawMessage `json:"payment"`
	PromoCode string          `json:"promo_code"`
}

type CompleteOrderInput struct {
	OrderID uint `json:"order_id" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Force  bool   `json:"force"` // bypasses the transition table
}

// -------- Helpers --------

// orderTotals applies the flat shipping-threshold rule and tax rate.
func orderTotals(subtotal float64) (shippingCost, tax float64) {
	shippingCost = flatShippingCost
	if subtotal > freeShippingThreshold {
		shippingCost = 0
	}
	tax = subtotal * taxRate
	return shippingCost, tax
}

// generateOrderRef returns a unique order reference
func generateOrderRef() string {
	// Example: 20250908130500-<uuid4>
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// buildOrderLines turns the requested items into order lines priced from the
// cart snapshot. A requested product missing from the cart rejects the whole
// checkout; a requested quantity above the cart line is capped to it.
func buildOrderLines(cartItems []models.CartItem, reqItems []CheckoutItem) ([]models.OrderItem, float64, error) {
	cartLines := make(map[uint]models.CartItem, len(cartItems))
	for _, line := range cartItems {
		cartLines[line.ProductID] = line
	}

	var subtotal float64
	var orderItems []models.OrderItem
	for _, item := range reqItems {
		line, ok := cartLines[item.ProductID]
		if !ok {
			return nil, 0, ErrProductNotInCart
		}
		qty := item.Quantity
		if qty > line.Quantity {
			qty = line.Quantity
		}

		subtotal += line.PriceAtAdd * float64(qty)
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   line.ProductID,
			Quantity:    qty,
			PriceAtTime: line.PriceAtAdd,
		})
	}
	if len(orderItems) == 0 {
		return nil, 0, ErrEmptyOrder
	}
	return orderItems, subtotal, nil
}

// -------- Core Logic --------

// PlaceOrder creates the order header, its items and the shipping record in
// one transaction, pricing every line from the caller's cart snapshot rather
// than anything in the request body. A promo code, when present, is redeemed
// inside the same transaction. The bought cart lines are removed on success.
func PlaceOrder(db *gorm.DB, userID string, req CheckoutRequest) (models.Order, error) {
	var order models.Order

	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order, ErrProductNotInCart
		}
		return order, err
	}

	orderItems, subtotal, err := buildOrderLines(cart.Items, req.Items)
	if err != nil {
		return order, err
	}
	// The name read is Unscoped: order lines outlive soft-deleted products,
	// so a line added before the delete still checks out under its snapshot
	// price. A hard-deleted product is a stale line and rejects the order.
	for i := range orderItems {
		var product models.Product
		if err := db.Unscoped().First(&product, "id = ?", orderItems[i].ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return order, ErrProductNotInCart
			}
			return order, err
		}
		orderItems[i].ProductName = product.Name
	}

	shippingCost, tax := orderTotals(subtotal)

	payment := "{}"
	if len(req.Payment) > 0 {
		payment = string(req.Payment)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var discount float64
		var promoID *uint
		if req.PromoCode != "" {
			promo, d, err := promoControllers.Redeem(tx, userID, req.PromoCode, subtotal)
			if err != nil {
				return err
			}
			discount = d
			id := promo.ID
			promoID = &id
		}

		order = models.Order{
			OrderRef:     generateOrderRef(),
			UserID:       userID,
			Items:        orderItems,
			Status:       models.OrderStatusPaid,
			Subtotal:     subtotal,
			Discount:     discount,
			ShippingCost: shippingCost,
			Tax:          tax,
			Total:        subtotal + shippingCost + tax - discount,
			Payment:      payment,
			PromoID:      promoID,
			Shipping: models.OrderShipping{
				FullName: req.Shipping.FullName,
				Email:    req.Shipping.Email,
				Phone:    req.Shipping.Phone,
				Address:  req.Shipping.Address,
				City:     req.Shipping.City,
				State:    req.Shipping.State,
				Zip:      req.Shipping.Zip,
				Country:  req.Shipping.Country,
				Method:   req.Shipping.Method,
				Cost:     shippingCost,
			},
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Remove the bought lines from the cart
		for _, item := range orderItems {
			if err := tx.Where("cart_id = ? AND product_id = ?", cart.CartID, item.ProductID).
				Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
		}

		return nil
	})
	return order, err
}

// -------- Handlers --------

// checkoutStatus maps a PlaceOrder failure to its response code and message.
// Cart-shape problems (empty order, stale lines) are the caller's fault, not
// a server error.
func checkoutStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrEmptyOrder), errors.Is(err, ErrProductNotInCart):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, promoControllers.ErrPromoNotFound),
		errors.Is(err, promoControllers.ErrPromoExpired),
		errors.Is(err, promoControllers.ErrBelowMinimum),
		errors.Is(err, promoControllers.ErrUsageLimitReached),
		errors.Is(err, promoControllers.ErrAlreadyRedeemed):
		return promoControllers.StatusFor(err)
	default:
		return http.StatusInternalServerError, "Failed to place order"
	}
}

// POST /api/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := PlaceOrder(db, userID, req)
		if err != nil {
			status, msg := checkoutStatus(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}

		broadcastOrderUpdate(order)

		c.JSON(http.StatusCreated, gin.H{
			"order_id":      order.ID,
			"order_ref":     order.OrderRef,
			"status":        order.Status,
			"subtotal":      order.Subtotal,
			"discount":      order.Discount,
			"shipping_cost": order.ShippingCost,
			"tax":           order.Tax,
			"total":         order.Total,
		})
	}
}

// GET /api/orders/list
func ListUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userIDVal).
			Preload("Items").
			Preload("Shipping").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// orderLookup picks the column for an order path param. The param is either
// a numeric id or an order_ref string; matching a ref against the bigint id
// column fails at bind time, so the two never share a clause.
func orderLookup(param string) (string, interface{}) {
	if id, err := strconv.ParseUint(param, 10, 64); err == nil {
		return "id = ?", id
	}
	return "order_ref = ?", param
}

// GET /api/orders/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		roleVal, _ := c.Get("role")
		orderID := c.Param("orderID")

		cond, arg := orderLookup(orderID)

		var order models.Order
		if err := db.
			Preload("Items").
			Preload("Shipping").
			Where(cond, arg).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if order.UserID != userIDVal && roleVal != string(models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// GET /api/admin/orders
func ListAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Preload("Shipping").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// CompleteOrder performs the one customer-guarded transition:
// delivered -> completed. Every other current status is rejected and left
// untouched.
func CompleteOrder(db *gorm.DB, orderID uint, userID string) (models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}
		if order.UserID != userID {
			return gorm.ErrRecordNotFound
		}
		if order.Status != models.OrderStatusDelivered {
			return ErrInvalidTransition
		}
		order.Status = models.OrderStatusCompleted
		order.UpdatedAt = time.Now()
		return tx.Model(&order).
			Updates(map[string]interface{}{"status": order.Status, "updated_at": order.UpdatedAt}).Error
	})
	return order, err
}

// PATCH /api/orders/complete
func CompleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input CompleteOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := CompleteOrder(db, input.OrderID, userID)
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			case errors.Is(err, ErrInvalidTransition):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Order can only be completed once delivered"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete order"})
			}
			return
		}

		broadcastOrderUpdate(order)
		c.JSON(http.StatusOK, gin.H{"message": "Order completed", "status": order.Status})
	}
}

// PUT /api/admin/orders/:orderID/status
// Transitions are validated against the lifecycle table; force performs the
// old unchecked overwrite.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if !req.Force && !order.Status.CanTransitionTo(newStatus) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid transition from " + string(order.Status) + " to " + string(newStatus),
			})
			return
		}

		order.Status = newStatus
		order.UpdatedAt = time.Now()
		if err := db.Model(&order).
			Updates(map[string]interface{}{"status": newStatus, "updated_at": order.UpdatedAt}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		broadcastOrderUpdate(order)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "status": newStatus})
	}
}
