package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/divvyhq/divvy/internal/models"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret-key-32-bytes-long!!!", time.Hour)
	user := &models.User{ID: "user-1", Email: "alice@example.com"}

	token, err := manager.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("UserID = %q, want %q", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("Email = %q, want %q", claims.Email, user.Email)
	}
}

func TestJWTExpired(t *testing.T) {
	manager := NewJWTManager("test-secret-key-32-bytes-long!!!", -time.Minute)
	token, err := manager.Generate(&models.User{ID: "user-1", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	manager := NewJWTManager("secret-one", time.Hour)
	token, err := manager.Generate(&models.User{ID: "user-1", Email: "a@b.c"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	other := NewJWTManager("secret-two", time.Hour)
	if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate error = %v, want %v", err, ErrInvalidToken)
	}
}
