package reviewControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/velamart/storefront-api/models"
	"gorm.io/gorm"
)

const maxReviewBodyLen = 1000

type SubmitReviewInput struct {
	OrderID   uint   `json:"order_id" binding:"required"`
	ProductID uint   `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Body      string `json:"body"`
}

// Validate enforces the rating range and body length.
func (in SubmitReviewInput) Validate() error {
	if in.Rating < 1 || in.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	if len(in.Body) > maxReviewBodyLen {
		return errors.New("review body must be 1000 characters or fewer")
	}
	return nil
}

// POST /api/reviews
// A review is allowed only by the owner of a completed order containing the
// product, and only once per (user, order, product). Checks run in that order
// so the caller learns the first failing condition.
func SubmitReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input SubmitReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := input.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", input.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if order.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your order"})
			return
		}

		if order.Status != models.OrderStatusCompleted {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order must be completed before reviewing"})
			return
		}

		inOrder := false
		for _, item := range order.Items {
			if item.ProductID == input.ProductID {
				inOrder = true
				break
			}
		}
		if !inOrder {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is not part of this order"})
			return
		}

		review := models.ProductReview{
			UserID:    userID,
			OrderID:   input.OrderID,
			ProductID: input.ProductID,
			Rating:    input.Rating,
			Body:      input.Body,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&review).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "You already reviewed this product for this order"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
			return
		}

		c.JSON(http.StatusCreated, review)
	}
}

// GET /api/products/:id/reviews
func ListProductReviewsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("id")

		var reviews []models.ProductReview
		if err := db.Where("product_id = ?", productID).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}
