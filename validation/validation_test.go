package validation

import (
	"strings"
	"testing"

	apperrors "github.com/kbukum/picacg/errors"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("email", "reader@example.com")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("email", "")
	if !v2.HasErrors() {
		t.Error("expected error for empty required field")
	}

	v3 := New()
	v3.Required("email", "   ")
	if !v3.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorMin(t *testing.T) {
	v := New()
	v.Min("page", 1, 1)
	if v.HasErrors() {
		t.Error("expected no errors")
	}

	v2 := New()
	v2.Min("page", 0, 1)
	if !v2.HasErrors() {
		t.Error("expected error for page below minimum")
	}
	if got := v2.Errors()[0].Message; got != "must be at least 1" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestValidatorCustom(t *testing.T) {
	v := New()
	v.Custom(true, "field", "should not appear")
	if v.HasErrors() {
		t.Error("expected no errors for passing condition")
	}

	v2 := New()
	v2.Custom(false, "field", "custom error")
	if !v2.HasErrors() {
		t.Error("expected error for failing condition")
	}
	if v2.Errors()[0].Message != "custom error" {
		t.Errorf("expected 'custom error', got %q", v2.Errors()[0].Message)
	}
}

func TestValidatorValidate(t *testing.T) {
	v := New()
	v.Required("email", "reader@example.com")
	if v.Validate() != nil || v.Err() != nil {
		t.Error("expected nil for valid input")
	}

	v2 := New()
	v2.Required("email", "")
	v2.Required("password", "")
	appErr := v2.Validate()
	if appErr == nil {
		t.Fatal("expected error")
	}
	if appErr.Kind != apperrors.KindParameter {
		t.Errorf("expected PARAMETER_ERROR, got %s", appErr.Kind)
	}
	if appErr.Details["fields"] == nil {
		t.Fatal("expected field details in error")
	}
	if !strings.Contains(appErr.Message, "email") || !strings.Contains(appErr.Message, "password") {
		t.Errorf("expected both fields in message, got %q", appErr.Message)
	}
}

func TestValidatorChaining(t *testing.T) {
	v := New()
	result := v.Required("content", "nice").Custom(true, "sort", "unknown").Min("page", 2, 1)
	if result != v {
		t.Error("expected chaining to return same validator")
	}
	if v.HasErrors() {
		t.Error("expected no errors for valid chained validation")
	}
}

type registration struct {
	Email    string `json:"email" validate:"required,notblank"`
	Password string `json:"password" validate:"required,min=8"`
	Gender   string `json:"gender" validate:"required,oneof=m f bot"`
}

func TestStructValidateValid(t *testing.T) {
	err := Validate(registration{Email: "reader@example.com", Password: "password1", Gender: "bot"})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	err := Validate(registration{Email: "  ", Password: "short", Gender: "x"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !apperrors.IsKind(err, apperrors.KindParameter) {
		t.Errorf("expected PARAMETER_ERROR, got %v", err)
	}
	errStr := err.Error()
	for _, field := range []string{"email", "password", "gender"} {
		if !strings.Contains(errStr, field) {
			t.Errorf("expected error to mention %q, got %q", field, errStr)
		}
	}
	if !strings.Contains(errStr, "must be at least 8 characters") {
		t.Errorf("expected length message, got %q", errStr)
	}
}

func TestStructValidateNumeric(t *testing.T) {
	type query struct {
		Page int `json:"page" validate:"min=1"`
	}
	err := Validate(query{Page: 0})
	if err == nil || !strings.Contains(err.Error(), "page: must be at least 1") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestRequiredFunc(t *testing.T) {
	err := Required("comic_id", "value")
	if err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	err = Required("comic_id", "")
	if err == nil {
		t.Error("expected error for empty required field")
	}
}
