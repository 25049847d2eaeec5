package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		KindBadRequest:    "BAD_REQUEST",
		KindParameter:     "PARAMETER_ERROR",
		KindParseJSON:     "PARSE_JSON_ERROR",
		KindParse:         "PARSE_ERROR",
		KindFileRead:      "FILE_READ_ERROR",
		KindFileWrite:     "FILE_WRITE_ERROR",
		KindSerializeJSON: "SERIALIZE_JSON_ERROR",
		KindLock:          "LOCK_ERROR",
		KindUnknown:       "UNKNOWN_ERROR",
		Kind(99):          "UNKNOWN_ERROR",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}

func TestKinds_Closed(t *testing.T) {
	if got := len(kindNames); got != 9 {
		t.Errorf("expected 9 kinds, got %d", got)
	}
}

func TestError_Error(t *testing.T) {
	err := BadRequest("no route")
	if got := err.Error(); got != "BAD_REQUEST: no route" {
		t.Errorf("unexpected message %q", got)
	}

	cause := fmt.Errorf("disk full")
	wrapped := FileWrite("Failed to write config file", cause)
	if got := wrapped.Error(); got != "FILE_WRITE_ERROR: Failed to write config file: disk full" {
		t.Errorf("unexpected message %q", got)
	}

	withCause := ParseJSON("bad payload").WithCause(cause)
	if got := withCause.Error(); got != "PARSE_JSON_ERROR: bad payload (cause: disk full)" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestWrap_Unwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(KindBadRequest, "Failed to make request", cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if err.Message != "Failed to make request: boom" {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestKindOf(t *testing.T) {
	inner := Parse("pagedata expected i32 or string")
	outer := Wrap(KindParseJSON, "", inner)

	if KindOf(outer) != KindParseJSON {
		t.Errorf("expected outermost kind PARSE_JSON_ERROR, got %s", KindOf(outer))
	}
	if KindOf(fmt.Errorf("ctx: %w", inner)) != KindParse {
		t.Error("expected kind to be found through fmt wrapping")
	}
	if KindOf(fmt.Errorf("plain")) != KindUnknown {
		t.Error("foreign errors should map to UNKNOWN_ERROR")
	}
	if IsKind(nil, KindUnknown) {
		t.Error("nil must not match any kind")
	}
}

func TestFrom(t *testing.T) {
	if From(nil) != nil {
		t.Error("From(nil) should be nil")
	}
	e := Lock("Failed to acquire write lock on CONFIG")
	if From(e) != e {
		t.Error("From should return the same *Error")
	}
	u := From(fmt.Errorf("weird"))
	if u.Kind != KindUnknown || u.Message != "weird" {
		t.Errorf("unexpected conversion %+v", u)
	}
}

func TestError_WithDetail(t *testing.T) {
	err := ParseJSON("invalid email or password").WithDetail("code", 400)
	if err.Details["code"] != 400 {
		t.Errorf("expected detail code=400, got %v", err.Details["code"])
	}

	report := err.ToReport()
	if report.Kind != "PARSE_JSON_ERROR" || report.Message != "invalid email or password" {
		t.Errorf("unexpected report %+v", report)
	}
}

func TestHasKind(t *testing.T) {
	inner := Parse("pagedata expected i32 or string")
	outer := Wrap(KindParseJSON, "Failed to decode payload", inner)
	wrapped := fmt.Errorf("call: %w", outer)

	if !HasKind(wrapped, KindParseJSON) {
		t.Error("expected outer kind")
	}
	if !HasKind(wrapped, KindParse) {
		t.Error("expected inner kind")
	}
	if HasKind(wrapped, KindLock) {
		t.Error("unexpected kind")
	}
	if HasKind(nil, KindParse) {
		t.Error("nil has no kind")
	}
}
