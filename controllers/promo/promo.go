package promoControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/velamart/storefront-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPromoNotFound     = errors.New("promo code not found")
	ErrPromoExpired      = errors.New("promo code has expired")
	ErrBelowMinimum      = errors.New("order subtotal below promo minimum")
	ErrUsageLimitReached = errors.New("promo code usage limit reached")
	ErrAlreadyRedeemed   = errors.New("promo code already redeemed")
)

type ApplyPromoInput struct {
	Code     string  `json:"code" binding:"required"`
	Subtotal float64 `json:"subtotal" binding:"required,gt=0"`
}

// Evaluate runs the eligibility checks in order (first failure wins) and
// returns the discount amount. It never writes anything; redemption is
// committed separately at order finalization.
func Evaluate(promo models.PromoCode, alreadyRedeemed bool, subtotal float64, now time.Time) (float64, error) {
	if promo.ExpiresAt != nil && !promo.ExpiresAt.After(now) {
		return 0, ErrPromoExpired
	}
	if subtotal < promo.MinOrderAmount {
		return 0, fmt.Errorf("order must be at least $%.2f to use this code: %w", promo.MinOrderAmount, ErrBelowMinimum)
	}
	if promo.UsageLimit != nil && promo.UsedCount >= *promo.UsageLimit {
		return 0, ErrUsageLimitReached
	}
	if alreadyRedeemed {
		return 0, ErrAlreadyRedeemed
	}

	var discount float64
	switch promo.Type {
	case models.DiscountTypePercentage:
		discount = subtotal * promo.Value / 100
	default:
		discount = promo.Value
	}
	if promo.MaxDiscount != nil && discount > *promo.MaxDiscount {
		discount = *promo.MaxDiscount
	}
	// Discount can never exceed the order value, never go negative
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount, nil
}

// findActivePromo looks up an active code case-insensitively.
func findActivePromo(db *gorm.DB, code string) (models.PromoCode, error) {
	var promo models.PromoCode
	err := db.Where("code = ? AND active", strings.ToUpper(code)).First(&promo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return promo, ErrPromoNotFound
	}
	return promo, err
}

func hasRedemption(db *gorm.DB, promoID uint, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.PromoRedemption{}).
		Where("promo_id = ? AND user_id = ?", promoID, userID).
		Count(&count).Error
	return count > 0, err
}

// EvaluateForUser runs the full check against current promo state without
// committing anything.
func EvaluateForUser(db *gorm.DB, userID, code string, subtotal float64) (models.PromoCode, float64, error) {
	promo, err := findActivePromo(db, code)
	if err != nil {
		return promo, 0, err
	}
	redeemed, err := hasRedemption(db, promo.ID, userID)
	if err != nil {
		return promo, 0, err
	}
	discount, err := Evaluate(promo, redeemed, subtotal, time.Now())
	return promo, discount, err
}

// Redeem re-validates the code under a row lock, records the redemption and
// bumps the usage counter. Must run inside the order transaction; a unique
// key conflict on the redemption row means a concurrent redeem won.
func Redeem(tx *gorm.DB, userID, code string, subtotal float64) (models.PromoCode, float64, error) {
	var promo models.PromoCode
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("code = ? AND active", strings.ToUpper(code)).
		First(&promo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return promo, 0, ErrPromoNotFound
	}
	if err != nil {
		return promo, 0, err
	}

	redeemed, err := hasRedemption(tx, promo.ID, userID)
	if err != nil {
		return promo, 0, err
	}
	discount, err := Evaluate(promo, redeemed, subtotal, time.Now())
	if err != nil {
		return promo, 0, err
	}

	redemption := models.PromoRedemption{
		PromoID:    promo.ID,
		UserID:     userID,
		RedeemedAt: time.Now(),
	}
	if err := tx.Create(&redemption).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return promo, 0, ErrAlreadyRedeemed
		}
		return promo, 0, err
	}
	if err := tx.Model(&promo).Update("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
		return promo, 0, err
	}
	return promo, discount, nil
}

// StatusFor maps an evaluation failure to an HTTP status and message.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrPromoNotFound):
		return http.StatusNotFound, "Promo code not found"
	case errors.Is(err, ErrPromoExpired):
		return http.StatusBadRequest, "Promo code has expired"
	case errors.Is(err, ErrBelowMinimum):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrUsageLimitReached):
		return http.StatusBadRequest, "Promo code usage limit reached"
	case errors.Is(err, ErrAlreadyRedeemed):
		return http.StatusConflict, "Promo code already redeemed"
	default:
		return http.StatusInternalServerError, "Failed to evaluate promo code"
	}
}

// POST /api/promos/apply
/// Read-only preview: reports the discount the code would produce for the
// given subtotal. Nothing is consumed until checkout.
func ApplyPromoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input ApplyPromoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		promo, discount, err := EvaluateForUser(db, userID, input.Code, input.Subtotal)
		if err != nil {
			status, msg := StatusFor(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"promo_id":       promo.ID,
			"discount":       discount,
			"final_subtotal": input.Subtotal - discount,
		})
	}
}
