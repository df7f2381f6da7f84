package services

import (
	"errors"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	user, err := svc.Register("Thandi M", "Thandi@Example.com", "picnic123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.IsAdmin {
		t.Error("self-registered accounts must not be admin")
	}
	if user.Email != "thandi@example.com" {
		t.Errorf("email not normalised: %q", user.Email)
	}

	logged, err := svc.Login("thandi@example.com", "picnic123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.ID != user.ID {
		t.Errorf("login returned user %d, want %d", logged.ID, user.ID)
	}

	if _, err := svc.Login("thandi@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login("nobody@example.com", "picnic123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: got %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(newTestDB(t))

	if _, err := svc.Register("T", "not-an-email", "picnic123"); !IsValidation(err) {
		t.Errorf("bad email: got %v, want validation error", err)
	}
	if _, err := svc.Register("T", "t@example.com", "short"); !IsValidation(err) {
		t.Errorf("short password: got %v, want validation error", err)
	}

	if _, err := svc.Register("T", "t@example.com", "picnic123"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register("T", "t@example.com", "picnic123"); !IsValidation(err) {
		t.Errorf("duplicate email: got %v, want validation error", err)
	}
}
