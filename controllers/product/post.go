package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velamart/storefront-api/models"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	Price           float64  `json:"price" binding:"required,gte=0"`
	Stock           int      `json:"stock" binding:"gte=0"`
	Image           string   `json:"image"`
	CategoryID      uint     `json:"category_id" binding:"required"`
	Status          string   `json:"status" binding:"omitempty,oneof=active inactive"`
	DiscountPercent *float64 `json:"discount_percent" binding:"omitempty,gte=0,lte=100"`
}

// CreateProduct creates a new product under an existing category.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		status := models.ProductStatusActive
		if input.Status != "" {
			status = models.ProductStatus(input.Status)
		}

		newProduct := models.Product{
			Name:            input.Name,
			Description:     input.Description,
			Price:           input.Price,
			Stock:           input.Stock,
			Image:           input.Image,
			CategoryID:      input.CategoryID,
			Status:          status,
			DiscountPercent: input.DiscountPercent,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}
