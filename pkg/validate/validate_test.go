package validate

import (
	"testing"

	pkgerrors "github.com/franchiseos/franchiseos-go/pkg/errors"
	"github.com/franchiseos/franchiseos-go/pkg/models"
)

func TestStructAcceptsValidLogin(t *testing.T) {
	err := Struct(models.LoginRequest{Email: "dealer@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestStructReportsFieldsByJSONName(t *testing.T) {
	err := Struct(models.LoginRequest{Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected detail map, got %T", typed.Details())
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email message %q", details["email"])
	}
	if details["password"] != "is required" {
		t.Fatalf("unexpected password message %q", details["password"])
	}
}

func TestStructEnforcesRoleChoices(t *testing.T) {
	err := Struct(models.RegisterRequest{
		Email:    "new@example.com",
		Password: "longenough",
		Role:     "pirate",
		TenantID: "tenant-1",
	})
	if err == nil {
		t.Fatal("expected validation error for unknown role")
	}
}
