package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

func TestSignParseRoundtrip(t *testing.T) {
	token, err := Sign("user-1", "admin", time.Minute)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	claims, err := Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
	if claims.Username != "admin" {
		t.Errorf("Username = %q, want admin", claims.Username)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
}

func TestParseExpired(t *testing.T) {
	claims := Claims{
		Username: "admin",
		Role:     "admin",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := Parse(token); err == nil {
		t.Fatal("Parse accepted an expired token")
	}
}

func TestParseTampered(t *testing.T) {
	token, err := Sign("", "admin", time.Minute)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := Parse(token + "x"); err == nil {
		t.Fatal("Parse accepted a tampered token")
	}
}

func TestEmptyUserIDOmitted(t *testing.T) {
	token, err := Sign("", "admin", time.Minute)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	claims, err := Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != "" {
		t.Errorf("UserID = %q, want empty", claims.UserID)
	}
}
