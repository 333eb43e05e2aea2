package handler

import (
	"strings"
	"testing"
)

func TestValidator_UsesWireFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&cartItemRequest{Quantity: 1, ProductPrice: 10})
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	msg := err.Error()
	if !strings.Contains(msg, "product_id is required") {
		t.Fatalf("expected json field name in message, got %q", msg)
	}
	if strings.Contains(msg, "ProductID") {
		t.Fatalf("Go field name leaked into message: %q", msg)
	}
}

func TestValidator_TagMessages(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&registerRequest{Email: "not-an-email", Name: "A", Password: "short"})
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	msg := err.Error()
	if !strings.Contains(msg, "email must be a valid email address") {
		t.Fatalf("missing email message: %q", msg)
	}
	if !strings.Contains(msg, "password must be at least 6 characters") {
		t.Fatalf("missing min-length message: %q", msg)
	}
}

func TestValidator_ValidPayload(t *testing.T) {
	v := NewValidator()

	req := &registerRequest{Email: "alice@example.com", Name: "Alice", Password: "secret1"}
	if err := v.Validate(req); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}
