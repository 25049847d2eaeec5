package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func newJSON(buf *bytes.Buffer, level string) *Logger {
	return NewWithWriter(&Config{Level: level, Format: FormatJSON}, "picacg", buf)
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	line := strings.TrimSpace(buf.String())
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("log line is not JSON: %q: %v", line, err)
	}
	return m
}

func TestNew_Defaults(t *testing.T) {
	l := New(nil, "picacg")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "picacg" {
		t.Errorf("expected service 'picacg', got %q", l.service)
	}
}

func TestNewWithWriter_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := newJSON(&buf, "debug").WithComponent("httpclient")

	l.Debug("request sent", Fields(FieldMethod, "GET", FieldStatus, 200))

	m := decodeLine(t, &buf)
	if m["message"] != "request sent" {
		t.Errorf("unexpected message %v", m["message"])
	}
	if m[FieldComponent] != "httpclient" {
		t.Errorf("expected component=httpclient, got %v", m[FieldComponent])
	}
	if m[FieldMethod] != "GET" {
		t.Errorf("expected method=GET, got %v", m[FieldMethod])
	}
	if m["service"] != "picacg" {
		t.Errorf("expected service=picacg, got %v", m["service"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newJSON(&buf, "warn")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn should be written at warn level")
	}
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newJSON(&buf, "chatty")
	l.Debug("hidden")
	l.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestWithContext_RequestID(t *testing.T) {
	var buf bytes.Buffer
	l := newJSON(&buf, "info")
	ctx := ContextWithRequestID(context.Background(), "req-1")

	l.WithContext(ctx).Info("x")

	m := decodeLine(t, &buf)
	if m[FieldRequestID] != "req-1" {
		t.Errorf("expected request_id=req-1, got %v", m[FieldRequestID])
	}
	if l.WithContext(context.Background()) != l {
		t.Error("context without request id should return the same logger")
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	newJSON(&buf, "info").WithError(fmt.Errorf("boom")).Error("failed")
	m := decodeLine(t, &buf)
	if m["error"] != "boom" {
		t.Errorf("expected error=boom, got %v", m["error"])
	}
}

func TestNop(t *testing.T) {
	Nop().Error("nothing", Fields("a", 1))
}

func TestConfigApplyDefaults(t *testing.T) {
	var c Config
	c.ApplyDefaults()
	if c.Level != "info" || c.Format != FormatConsole || c.Output != "stderr" || !c.Timestamp {
		t.Errorf("unexpected defaults %+v", c)
	}
}

func TestConfigValidate(t *testing.T) {
	ok := Config{Level: "debug", Format: FormatJSON}
	if err := ok.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
	bad := Config{Level: "loud", Format: FormatJSON}
	if err := bad.Validate(); err == nil {
		t.Error("expected invalid level error")
	}
	badFormat := Config{Level: "info", Format: "xml"}
	if err := badFormat.Validate(); err == nil {
		t.Error("expected invalid format error")
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b", "two", 3, "skipped", "dangling")
	if len(m) != 2 || m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected fields %v", m)
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"", 4, ""},
		{"abc", 4, "***"},
		{"eyJhbGciOiJIUzI1NiJ9", 6, "eyJhbG***"},
	}
	for _, tt := range tests {
		if got := MaskSecret(tt.in, tt.n); got != tt.want {
			t.Errorf("MaskSecret(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
