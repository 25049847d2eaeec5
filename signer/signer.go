// Package signer computes the request signature and the fixed header set
// required by the Picacomic API.
//
// The signature is an external contract: the server recomputes it from the
// same inputs and rejects the request on any mismatch.
package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// Upstream protocol constants.
const (
	DefaultAPIKey    = "C69BAF41DA5ABD1FFEDC6D2FEA56B"
	DefaultNonce     = "b1ab87b4800d4d4590a11701b8551afa"
	DefaultDigestKey = "~d}$Q7$eIni=V)9\\RK/P.RM4;9[7|@/CA}b~OW!3?EV`:<>M7pddUBL5n|0/*Cn"

	AcceptType  = "application/vnd.picacomic.com.v1+json"
	ContentType = "application/json; charset=UTF-8"
)

// Header names.
const (
	HeaderAPIKey          = "api-key"
	HeaderAccept          = "accept"
	HeaderAppChannel      = "app-channel"
	HeaderTime            = "time"
	HeaderNonce           = "nonce"
	HeaderAppVersion      = "app-version"
	HeaderAppUUID         = "app-uuid"
	HeaderAppPlatform     = "app-platform"
	HeaderAppBuildVersion = "app-build-version"
	HeaderContentType     = "Content-Type"
	HeaderUserAgent       = "User-Agent"
	HeaderImageQuality    = "image-quality"
	HeaderSignature       = "signature"
	HeaderAuthorization   = "authorization"
)

// Image quality hints accepted by the upstream.
const (
	QualityOriginal = "original"
	QualityHigh     = "high"
	QualityMedium   = "medium"
	QualityLow      = "low"
)

// Credentials are the shared secrets of the signing scheme.
type Credentials struct {
	APIKey    string `yaml:"api_key" mapstructure:"api_key" validate:"required"`
	Nonce     string `yaml:"nonce" mapstructure:"nonce" validate:"required"`
	DigestKey string `yaml:"digest_key" mapstructure:"digest_key" validate:"required"`
}

// DefaultCredentials returns the credentials of the official Android app.
func DefaultCredentials() Credentials {
	return Credentials{
		APIKey:    DefaultAPIKey,
		Nonce:     DefaultNonce,
		DigestKey: DefaultDigestKey,
	}
}

// AppInfo is the client metadata sent with every request.
type AppInfo struct {
	Channel      string `yaml:"channel" mapstructure:"channel" validate:"required"`
	Version      string `yaml:"version" mapstructure:"version" validate:"required"`
	UUID         string `yaml:"uuid" mapstructure:"uuid" validate:"required"`
	Platform     string `yaml:"platform" mapstructure:"platform" validate:"required"`
	BuildVersion string `yaml:"build_version" mapstructure:"build_version" validate:"required"`
	UserAgent    string `yaml:"user_agent" mapstructure:"user_agent" validate:"required"`
	ImageQuality string `yaml:"image_quality" mapstructure:"image_quality" validate:"oneof=original high medium low"`
}

// DefaultAppInfo returns the metadata of the official Android app.
func DefaultAppInfo() AppInfo {
	return AppInfo{
		Channel:      "2",
		Version:      "2.2.1.2.3.3",
		UUID:         "defaultUuid",
		Platform:     "android",
		BuildVersion: "44",
		UserAgent:    "okhttp/3.8.1",
		ImageQuality: QualityOriginal,
	}
}

// ApplyDefaults fills empty fields from DefaultAppInfo.
func (a *AppInfo) ApplyDefaults() {
	d := DefaultAppInfo()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&a.Channel, d.Channel)
	fill(&a.Version, d.Version)
	fill(&a.UUID, d.UUID)
	fill(&a.Platform, d.Platform)
	fill(&a.BuildVersion, d.BuildVersion)
	fill(&a.UserAgent, d.UserAgent)
	fill(&a.ImageQuality, d.ImageQuality)
}

// Sign returns hex(HMAC-SHA256(digestKey, lower(path+timestamp+nonce+method+apiKey))).
func Sign(digestKey, method, path, timestamp, nonce, apiKey string) string {
	raw := strings.ToLower(path + timestamp + nonce + method + apiKey)
	mac := hmac.New(sha256.New, []byte(digestKey))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}

// Signer produces signed header sets. It holds no mutable state.
type Signer struct {
	creds Credentials
	app   AppInfo
	now   func() time.Time
}

// Option configures a Signer.
type Option func(*Signer)

// WithClock replaces the clock used by Timestamp.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) { s.now = now }
}

// New creates a Signer. Empty fields fall back to the defaults.
func New(creds Credentials, app AppInfo, opts ...Option) *Signer {
	d := DefaultCredentials()
	if creds.APIKey == "" {
		creds.APIKey = d.APIKey
	}
	if creds.Nonce == "" {
		creds.Nonce = d.Nonce
	}
	if creds.DigestKey == "" {
		creds.DigestKey = d.DigestKey
	}
	app.ApplyDefaults()

	s := &Signer{creds: creds, app: app, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Timestamp returns the current unix time in seconds as sent in the time header.
func (s *Signer) Timestamp() string {
	return strconv.FormatInt(s.now().Unix(), 10)
}

// Signature signs a request. Leading slashes of path are not part of the
// signed string.
func (s *Signer) Signature(method, path, timestamp string) string {
	return Sign(s.creds.DigestKey, method, NormalizePath(path), timestamp, s.creds.Nonce, s.creds.APIKey)
}

// Headers returns the fixed header set for a request, signature included.
// The authorization header is the caller's concern.
func (s *Signer) Headers(method, path, timestamp string) map[string]string {
	return map[string]string{
		HeaderAPIKey:          s.creds.APIKey,
		HeaderAccept:          AcceptType,
		HeaderAppChannel:      s.app.Channel,
		HeaderTime:            timestamp,
		HeaderNonce:           s.creds.Nonce,
		HeaderAppVersion:      s.app.Version,
		HeaderAppUUID:         s.app.UUID,
		HeaderAppPlatform:     s.app.Platform,
		HeaderAppBuildVersion: s.app.BuildVersion,
		HeaderContentType:     ContentType,
		HeaderUserAgent:       s.app.UserAgent,
		HeaderImageQuality:    s.app.ImageQuality,
		HeaderSignature:       s.Signature(method, path, timestamp),
	}
}

// NormalizePath strips leading slashes, giving the form that is both signed
// and resolved against the base URL.
func NormalizePath(path string) string {
	return strings.TrimLeft(path, "/")
}
