package httpclient

import (
	"net/http"
	"testing"
)

func TestTokenAuth(t *testing.T) {
	auth := TokenAuth("jwt-token")
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	auth.apply(req)
	if got := req.Header.Get("authorization"); got != "jwt-token" {
		t.Errorf("got %q, want %q", got, "jwt-token")
	}
}

func TestTokenAuth_EmptyTokenSendsNothing(t *testing.T) {
	auth := TokenAuth("")
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	auth.apply(req)
	if _, ok := req.Header["Authorization"]; ok {
		t.Error("authorization header should be absent for empty token")
	}
}

func TestAuthNone(t *testing.T) {
	auth := &AuthConfig{Type: AuthNone, Token: "ignored"}
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	auth.apply(req)
	if got := req.Header.Get("authorization"); got != "" {
		t.Errorf("AuthNone should not set a header, got %q", got)
	}
}

func TestNilAuth(t *testing.T) {
	var auth *AuthConfig
	req, _ := http.NewRequest("GET", "http://example.com", nil)
	auth.apply(req) // should not panic
	if auth.header() != "" {
		t.Error("nil auth should report no header")
	}
}
