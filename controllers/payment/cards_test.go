package paymentControllers

import "testing"

func TestDetectCardBrand(t *testing.T) {
	cases := []struct {
		number string
		want   string
	}{
		{"4111111111111111", "visa"},
		{"4222222222222", "visa"}, // 13-digit visa
		{"5500005555555559", "mastercard"},
		{"5105105105105100", "mastercard"},
		{"378282246310005", "amex"},
		{"371449635398431", "amex"},
		{"6011111111111117", "discover"},
		{"6511111111111119", "discover"},
		{"4111 1111 1111 1111", "visa"}, // spaces stripped
		{"4111-1111-1111-1111", "visa"}, // dashes stripped
		{"1234567890123456", "unknown"},
		{"", "unknown"},
	}

	for _, tc := range cases {
		if got := DetectCardBrand(tc.number); got != tc.want {
			t.Errorf("DetectCardBrand(%q) = %q, want %q", tc.number, got, tc.want)
		}
	}
}

func TestNormalizeCardNumber(t *testing.T) {
	cases := []struct {
		name   string
		number string
		want   string
		ok     bool
	}{
		{"plain digits", "4111111111111111", "4111111111111111", true},
		{"spaces stripped", "4111 1111 1111 1111", "4111111111111111", true},
		{"dashes stripped", "4111-1111-1111-1111", "4111111111111111", true},
		{"13 digits minimum", "4222222222222", "4222222222222", true},
		{"19 digits maximum", "6011111111111111117", "6011111111111111117", true},
		{"all spaces", "             ", "", false},
		{"letters rejected", "4111abcd11111111", "4111abcd11111111", false},
		{"too short after strip", "4111 1111", "41111111", false},
		{"20 digits too long", "41111111111111111111", "41111111111111111111", false},
		{"empty", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeCardNumber(tc.number)
			if got != tc.want || ok != tc.ok {
				t.Errorf("NormalizeCardNumber(%q) = (%q, %v), want (%q, %v)",
					tc.number, got, ok, tc.want, tc.ok)
			}
		})
	}
}
