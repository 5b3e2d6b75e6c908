package reviewControllers

import (
	"strings"
	"testing"
)

func TestSubmitReviewInputValidate(t *testing.T) {
	base := SubmitReviewInput{OrderID: 1, ProductID: 2, Rating: 5, Body: "great"}

	t.Run("valid input", func(t *testing.T) {
		if err := base.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rating above range", func(t *testing.T) {
		in := base
		in.Rating = 6
		if err := in.Validate(); err == nil {
			t.Fatal("expected error for rating 6")
		}
	})

	t.Run("rating below range", func(t *testing.T) {
		in := base
		in.Rating = 0
		if err := in.Validate(); err == nil {
			t.Fatal("expected error for rating 0")
		}
	})

	t.Run("body at limit", func(t *testing.T) {
		in := base
		in.Body = strings.Repeat("a", 1000)
		if err := in.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("body over limit", func(t *testing.T) {
		in := base
		in.Body = strings.Repeat("a", 1001)
		if err := in.Validate(); err == nil {
			t.Fatal("expected error for oversized body")
		}
	})

	t.Run("empty body allowed", func(t *testing.T) {
		in := base
		in.Body = ""
		if err := in.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
