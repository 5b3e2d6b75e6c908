package orderControllers

import (
	"errors"
	"fmt"
	"math"
	"testing"

	promoControllers "github.com/velamart/storefront-api/controllers/promo"
	"github.com/velamart/storefront-api/models"
)

func TestOrderTotals(t *testing.T) {
	cases := []struct {
		name         string
		subtotal     float64
		wantShipping float64
		wantTax      float64
		wantTotal    float64
	}{
		{"above free-shipping threshold", 600, 0, 60, 660},
		{"below free-shipping threshold", 100, 15, 10, 125},
		{"exactly at threshold still pays shipping", 500, 15, 50, 565},
		{"just above threshold ships free", 500.01, 0, 50.001, 550.011},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			shipping, tax := orderTotals(tc.subtotal)
			if shipping != tc.wantShipping {
				t.Fatalf("shipping: expected %v, got %v", tc.wantShipping, shipping)
			}
			if math.Abs(tax-tc.wantTax) > 1e-9 {
				t.Fatalf("tax: expected %v, got %v", tc.wantTax, tax)
			}
			total := tc.subtotal + shipping + tax
			if math.Abs(total-tc.wantTotal) > 1e-9 {
				t.Fatalf("total: expected %v, got %v", tc.wantTotal, total)
			}
		})
	}
}

func TestBuildOrderLines(t *testing.T) {
	cart := []models.CartItem{
		{ProductID: 1, Quantity: 2, PriceAtAdd: 100},
		{ProductID: 2, Quantity: 1, PriceAtAdd: 49.50},
	}

	t.Run("prices come from the cart snapshot", func(t *testing.T) {
		lines, subtotal, err := buildOrderLines(cart, []CheckoutItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		if lines[0].PriceAtTime != 100 || lines[1].PriceAtTime != 49.50 {
			t.Fatalf("snapshot prices not applied: %+v", lines)
		}
		if math.Abs(subtotal-249.50) > 1e-9 {
			t.Fatalf("expected subtotal 249.50, got %v", subtotal)
		}
	})

	t.Run("quantity capped at the cart line", func(t *testing.T) {
		lines, subtotal, err := buildOrderLines(cart, []CheckoutItem{
			{ProductID: 1, Quantity: 99},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lines[0].Quantity != 2 {
			t.Fatalf("expected quantity capped to 2, got %d", lines[0].Quantity)
		}
		if subtotal != 200 {
			t.Fatalf("expected subtotal 200, got %v", subtotal)
		}
	})

	t.Run("product not in cart rejects checkout", func(t *testing.T) {
		_, _, err := buildOrderLines(cart, []CheckoutItem{
			{ProductID: 7, Quantity: 1},
		})
		if !errors.Is(err, ErrProductNotInCart) {
			t.Fatalf("expected ErrProductNotInCart, got %v", err)
		}
	})

	t.Run("empty request rejected", func(t *testing.T) {
		_, _, err := buildOrderLines(cart, nil)
		if !errors.Is(err, ErrEmptyOrder) {
			t.Fatalf("expected ErrEmptyOrder, got %v", err)
		}
	})
}

func TestOrderLookup(t *testing.T) {
	cases := []struct {
		name     string
		param    string
		wantCond string
		wantArg  interface{}
	}{
		{"numeric id", "42", "id = ?", uint64(42)},
		{"order ref", "20250908130500-1a2b3c4d", "order_ref = ?", "20250908130500-1a2b3c4d"},
		{"generated ref", generateOrderRef(), "order_ref = ?", nil},
		{"negative never matches id", "-1", "order_ref = ?", "-1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cond, arg := orderLookup(tc.param)
			if cond != tc.wantCond {
				t.Fatalf("condition: expected %q, got %q", tc.wantCond, cond)
			}
			if tc.wantArg != nil && arg != tc.wantArg {
				t.Fatalf("argument: expected %v, got %v", tc.wantArg, arg)
			}
		})
	}
}

func TestCheckoutStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"empty order is the caller's fault", ErrEmptyOrder, 400},
		{"stale cart line is the caller's fault", ErrProductNotInCart, 400},
		{"wrapped stale line still maps", fmt.Errorf("line 3: %w", ErrProductNotInCart), 400},
		{"promo expiry passes through", promoControllers.ErrPromoExpired, 400},
		{"duplicate redemption conflicts", promoControllers.ErrAlreadyRedeemed, 409},
		{"unknown promo is not found", promoControllers.ErrPromoNotFound, 404},
		{"anything else is a server error", errors.New("connection reset"), 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := checkoutStatus(tc.err)
			if status != tc.want {
				t.Fatalf("status: expected %d, got %d", tc.want, status)
			}
			if msg == "" {
				t.Fatal("expected a non-empty message")
			}
		})
	}
}

func TestGenerateOrderRef(t *testing.T) {
	a := generateOrderRef()
	b := generateOrderRef()
	if a == b {
		t.Fatalf("expected distinct references, got %q twice", a)
	}
	if len(a) < 15 {
		t.Fatalf("reference too short: %q", a)
	}
}
