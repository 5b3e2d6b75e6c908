package paymentControllers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/velamart/storefront-api/models"
	"gorm.io/gorm"
)

var cardBrandPatterns = []struct {
	brand   string
	pattern *regexp.Regexp
}{
	{"visa", regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`)},
	{"mastercard", regexp.MustCompile(`^5[1-5][0-9]{14}$`)},
	{"amex", regexp.MustCompile(`^3[47][0-9]{13}$`)},
	{"discover", regexp.MustCompile(`^6(?:011|5[0-9]{2})[0-9]{12}$`)},
}

var digitsOnly = regexp.MustCompile(`^[0-9]{13,19}$`)

// NormalizeCardNumber strips spaces and dashes and reports whether what is
// left is a plausible card number (13-19 digits).
func NormalizeCardNumber(number string) (string, bool) {
	number = strings.ReplaceAll(strings.ReplaceAll(number, " ", ""), "-", "")
	return number, digitsOnly.MatchString(number)
}

// DetectCardBrand returns the brand for a card number, or "unknown".
func DetectCardBrand(number string) string {
	number, _ = NormalizeCardNumber(number)
	for _, p := range cardBrandPatterns {
		if p.pattern.MatchString(number) {
			return p.brand
		}
	}
	return "unknown"
}

type SaveCardInput struct {
	Number      string `json:"number" binding:"required,min=13,max=19"`
	ExpiryMonth int    `json:"expiry_month" binding:"required,min=1,max=12"`
	ExpiryYear  int    `json:"expiry_year" binding:"required"`
	HolderName  string `json:"holder_name" binding:"required"`
}

// POST /api/cards
func SaveCard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input SaveCardInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		number, ok := NormalizeCardNumber(input.Number)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card number"})
			return
		}
		card := models.PaymentCard{
			UserID:      userID,
			Brand:       DetectCardBrand(number),
			Last4:       number[len(number)-4:],
			ExpiryMonth: input.ExpiryMonth,
			ExpiryYear:  input.ExpiryYear,
			HolderName:  input.HolderName,
			CreatedAt:   time.Now(),
		}
		if err := db.Create(&card).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save card"})
			return
		}

		c.JSON(http.StatusCreated, card)
	}
}

// GET /api/cards
func ListCards(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		cards := []models.PaymentCard{}
		if err := db.Where("user_id = ?", userIDVal).
			Order("created_at DESC").
			Find(&cards).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cards"})
			return
		}

		c.JSON(http.StatusOK, cards)
	}
}

// DELETE /api/cards/:id
// The delete is scoped to the session's user id so a valid card id belonging
// to someone else still comes back as not found.
func DeleteCard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		cardID := c.Param("id")

		result := db.Where("id = ? AND user_id = ?", cardID, userIDVal).
			Delete(&models.PaymentCard{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Card deleted"})
	}
}
