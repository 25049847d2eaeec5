package httpclient

import "net/http"

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone disables authentication.
	AuthNone AuthType = iota
	// AuthToken sends the token verbatim in the authorization header.
	AuthToken
)

// AuthConfig configures request authentication.
type AuthConfig struct {
	Type  AuthType
	Token string
}

// TokenAuth sends token as the raw authorization header. An empty token
// sends nothing.
func TokenAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthToken, Token: token}
}

// apply applies authentication to an HTTP request.
func (a *AuthConfig) apply(req *http.Request) {
	if v := a.header(); v != "" {
		req.Header.Set("authorization", v)
	}
}

// header returns the header value the config would set, for validation.
func (a *AuthConfig) header() string {
	if a == nil || a.Type != AuthToken {
		return ""
	}
	return a.Token
}
