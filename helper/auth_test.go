package helper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Abcdef1!", true},
		{"valid long", "Sup3r$ecurePass", true},
		{"too short", "Ab1!xyz", false},
		{"no uppercase", "abcdef1!", false},
		{"no lowercase", "ABCDEF1!", false},
		{"no digit", "Abcdefg!", false},
		{"no symbol", "Abcdefg1", false},
		{"symbol outside allowed set", "Abcdef1#", false},
		{"space rejected", "Abcdef1! ", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPassword(tt.password); got != tt.want {
				t.Errorf("IsValidPassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"admin@example.com", true},
		{"first.last@sub.example.org", true},
		{"not-an-email", false},
		{"missing@domain@twice.com", false},
		{"Name <admin@example.com>", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Abcdef1!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Abcdef1!" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPasswordHash("Abcdef1!", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("Abcdef1?", hash) {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	id, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if id != 42 {
		t.Errorf("VerifyToken id = %d, want 42", id)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := VerifyToken("not.a.token"); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken(7)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "another-secret")
	if _, err := VerifyToken(token); err == nil {
		t.Error("token signed with a different secret accepted")
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	expired := jwt.New(jwt.SigningMethodHS256)
	claims := expired.Claims.(jwt.MapClaims)
	claims["id"] = uint(7)
	claims["exp"] = time.Now().Add(-time.Minute).Unix()
	tokenString, err := expired.SignedString(jwtSecret())
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := VerifyToken(tokenString); err == nil {
		t.Error("expired token accepted")
	}
}
