package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed := IssueJWT("user-123", "a@b.com", "admin")
	if signed == "" {
		t.Fatal("expected a signed token")
	}

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("failed to parse issued token: %v", err)
	}
	if !token.Valid {
		t.Fatal("issued token should be valid")
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["user_id"] != "user-123" {
		t.Errorf("user_id claim: expected user-123, got %v", claims["user_id"])
	}
	if claims["role"] != "admin" {
		t.Errorf("role claim: expected admin, got %v", claims["role"])
	}
	if claims["email"] != "a@b.com" {
		t.Errorf("email claim: expected a@b.com, got %v", claims["email"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("exp claim missing")
	}
}
