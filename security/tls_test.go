package security

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"
)

func TestTLSConfig_Build_NilConfig(t *testing.T) {
	var cfg *TLSConfig
	result, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatal("expected nil for nil config")
	}
}

func TestTLSConfig_Build_ZeroValueVerifies(t *testing.T) {
	cfg := &TLSConfig{}
	result, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatal("zero-value config must leave transport defaults (verification on)")
	}
}

func TestTLSConfig_Build_TrustAll(t *testing.T) {
	cfg := &TLSConfig{TrustAllCertificates: true}
	result, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || !result.InsecureSkipVerify {
		t.Fatal("expected InsecureSkipVerify=true")
	}
	if result.MinVersion != tls.VersionTLS12 {
		t.Errorf("expected MinVersion=TLS12, got %d", result.MinVersion)
	}
}

func TestTLSConfig_Build_ServerNameKeepsVerification(t *testing.T) {
	cfg := &TLSConfig{ServerName: "picaapi.picacomic.com"}
	result, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.InsecureSkipVerify {
		t.Error("verification must stay on unless explicitly disabled")
	}
	if result.ServerName != "picaapi.picacomic.com" {
		t.Errorf("unexpected ServerName %q", result.ServerName)
	}
}

func TestTLSConfig_Build_BadCAFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ca.pem")
	if err := os.WriteFile(path, []byte("not a cert"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := (&TLSConfig{CAFile: path}).Build(); err == nil {
		t.Error("expected parse error for invalid CA file")
	}
	if _, err := (&TLSConfig{CAFile: filepath.Join(dir, "missing.pem")}).Build(); err == nil {
		t.Error("expected read error for missing CA file")
	}
}

func TestTLSConfig_Validate(t *testing.T) {
	if err := (&TLSConfig{MinVersion: tls.VersionTLS13}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (&TLSConfig{MinVersion: 1}).Validate(); err == nil {
		t.Error("expected error for bogus min version")
	}
	var nilCfg *TLSConfig
	if err := nilCfg.Validate(); err != nil {
		t.Errorf("nil config should validate, got %v", err)
	}
}
