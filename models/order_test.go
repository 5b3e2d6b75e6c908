package models

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{OrderStatusPaid, OrderStatusProcessing, true},
		{OrderStatusPaid, OrderStatusCancelled, true},
		{OrderStatusPaid, OrderStatusDelivered, false},
		{OrderStatusPaid, OrderStatusCompleted, false},
		{OrderStatusProcessing, OrderStatusDelivered, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusProcessing, OrderStatusCompleted, false},
		{OrderStatusDelivered, OrderStatusCompleted, true},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCompleted, OrderStatusPaid, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusProcessing, false},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		if got != tc.allowed {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	if !OrderStatusCompleted.IsTerminal() {
		t.Error("completed should be terminal")
	}
	if !OrderStatusCancelled.IsTerminal() {
		t.Error("cancelled should be terminal")
	}
	if OrderStatusPaid.IsTerminal() {
		t.Error("paid should not be terminal")
	}
}

func TestParseOrderStatus(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		status, err := ParseOrderStatus("Delivered")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != OrderStatusDelivered {
			t.Fatalf("expected delivered, got %s", status)
		}
	})

	t.Run("unknown value", func(t *testing.T) {
		if _, err := ParseOrderStatus("teleported"); err == nil {
			t.Fatal("expected error for unknown status")
		}
	})
}
