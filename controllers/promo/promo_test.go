package promoControllers

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/velamart/storefront-api/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestEvaluateDiscount(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("percentage code", func(t *testing.T) {
		promo := models.PromoCode{
			Code:           "SAVE10",
			Type:           models.DiscountTypePercentage,
			Value:          10,
			MinOrderAmount: 50,
		}
		discount, err := Evaluate(promo, false, 200, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if discount != 20 {
			t.Fatalf("expected discount 20, got %v", discount)
		}
	})

	t.Run("fixed code", func(t *testing.T) {
		promo := models.PromoCode{Type: models.DiscountTypeFixed, Value: 25}
		discount, err := Evaluate(promo, false, 100, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if discount != 25 {
			t.Fatalf("expected discount 25, got %v", discount)
		}
	})

	t.Run("clamped to max discount", func(t *testing.T) {
		promo := models.PromoCode{
			Type:        models.DiscountTypePercentage,
			Value:       50,
			MaxDiscount: floatPtr(30),
		}
		discount, err := Evaluate(promo, false, 200, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if discount != 30 {
			t.Fatalf("expected discount clamped to 30, got %v", discount)
		}
	})

	t.Run("clamped to subtotal", func(t *testing.T) {
		promo := models.PromoCode{Type: models.DiscountTypeFixed, Value: 500}
		discount, err := Evaluate(promo, false, 80, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if discount != 80 {
			t.Fatalf("expected discount clamped to subtotal 80, got %v", discount)
		}
	})

	t.Run("final subtotal is exact", func(t *testing.T) {
		promo := models.PromoCode{Type: models.DiscountTypePercentage, Value: 15}
		subtotal := 133.33
		discount, err := Evaluate(promo, false, subtotal, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		final := subtotal - discount
		if math.Abs((final+discount)-subtotal) > 1e-9 {
			t.Fatalf("final + discount != subtotal: %v + %v != %v", final, discount, subtotal)
		}
		if discount > subtotal {
			t.Fatalf("discount %v exceeds subtotal %v", discount, subtotal)
		}
	})
}

func TestEvaluateRejections(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name     string
		promo    models.PromoCode
		redeemed bool
		subtotal float64
		wantErr  error
	}{
		{
			name:    "expired",
			promo:   models.PromoCode{Type: models.DiscountTypeFixed, Value: 5, ExpiresAt: &past},
			wantErr: ErrPromoExpired, subtotal: 100,
		},
		{
			name:    "expiry exactly now counts as expired",
			promo:   models.PromoCode{Type: models.DiscountTypeFixed, Value: 5, ExpiresAt: &now},
			wantErr: ErrPromoExpired, subtotal: 100,
		},
		{
			name:    "below minimum",
			promo:   models.PromoCode{Type: models.DiscountTypeFixed, Value: 5, MinOrderAmount: 50},
			wantErr: ErrBelowMinimum, subtotal: 49.99,
		},
		{
			name: "usage limit reached",
			promo: models.PromoCode{
				Type: models.DiscountTypeFixed, Value: 5,
				UsageLimit: intPtr(100), UsedCount: 100,
			},
			wantErr: ErrUsageLimitReached, subtotal: 100,
		},
		{
			name:     "already redeemed by user",
			promo:    models.PromoCode{Type: models.DiscountTypeFixed, Value: 5},
			redeemed: true,
			wantErr:  ErrAlreadyRedeemed, subtotal: 100,
		},
		{
			name: "expiry check wins over minimum check",
			promo: models.PromoCode{
				Type: models.DiscountTypeFixed, Value: 5,
				ExpiresAt: &past, MinOrderAmount: 500,
			},
			wantErr: ErrPromoExpired, subtotal: 100,
		},
		{
			name:    "not expired when expiry in future",
			promo:   models.PromoCode{Type: models.DiscountTypeFixed, Value: 5, ExpiresAt: &future},
			wantErr: nil, subtotal: 100,
		},
	}

	t.Run("below-minimum message carries the minimum", func(t *testing.T) {
		promo := models.PromoCode{Type: models.DiscountTypeFixed, Value: 5, MinOrderAmount: 50}
		_, err := Evaluate(promo, false, 10, now)
		if !errors.Is(err, ErrBelowMinimum) {
			t.Fatalf("expected ErrBelowMinimum, got %v", err)
		}
		if !strings.Contains(err.Error(), "$50.00") {
			t.Fatalf("expected message to contain $50.00, got %q", err.Error())
		}
	})

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Evaluate(tc.promo, tc.redeemed, tc.subtotal, now)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
