package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/http/httpguts"

	apperrors "github.com/kbukum/picacg/errors"
	"github.com/kbukum/picacg/logger"
	"github.com/kbukum/picacg/resilience"
)

const instrumentationName = "github.com/kbukum/picacg/httpclient"

// Client is a configurable HTTP client with built-in auth, TLS, and retries.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	config     Config
	rl         *resilience.RateLimiter
	log        *logger.Logger
	tracer     trace.Tracer
	retries    metric.Int64Counter
	attempts   atomic.Int64
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for retry and TLS warnings.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithHTTPClient uses hc as the base for the underlying *http.Client. hc is
// copied and never modified: the configured timeout is set on the copy, and
// TLS settings are applied to a clone of its *http.Transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a new HTTP client with the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: cfg,
		log:    logger.Nop(),
		tracer: otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(c)
	}
	hc, err := buildHTTPClient(c.httpClient, cfg)
	if err != nil {
		return nil, err
	}
	c.httpClient = hc
	c.log = c.log.WithComponent("httpclient")

	retries, err := otel.Meter(instrumentationName).Int64Counter("http.client.retries",
		metric.WithDescription("Transport retries performed by the HTTP client"),
	)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create retry counter: %w", err)
	}
	c.retries = retries

	if cfg.RateLimit != nil {
		c.rl = resilience.NewRateLimiter(*cfg.RateLimit)
	}
	if cfg.TLS != nil && cfg.TLS.TrustAllCertificates {
		c.log.Warn("TLS certificate validation disabled", logger.Fields("base_url", cfg.BaseURL))
	}

	return c, nil
}

// buildHTTPClient returns a copy of base (or a fresh client) carrying the
// configured timeout and TLS settings.
func buildHTTPClient(base *http.Client, cfg Config) (*http.Client, error) {
	hc := &http.Client{}
	if base != nil {
		cp := *base
		hc = &cp
	}
	hc.Timeout = cfg.Timeout

	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		return nil, err
	}

	switch t := hc.Transport.(type) {
	case nil:
		tr := http.DefaultTransport.(*http.Transport).Clone()
		if tlsCfg != nil {
			tr.TLSClientConfig = tlsCfg
		}
		hc.Transport = tr
	case *http.Transport:
		if tlsCfg != nil {
			tr := t.Clone()
			tr.TLSClientConfig = tlsCfg
			hc.Transport = tr
		}
	default:
		if tlsCfg != nil {
			return nil, apperrors.Newf(apperrors.KindParameter,
				"TLS settings need an *http.Transport, got %T", t)
		}
	}
	return hc, nil
}

// Config returns the effective configuration.
func (c *Client) Config() Config {
	return c.config
}

// Attempts returns the number of HTTP attempts sent since the client was created.
func (c *Client) Attempts() int64 {
	return c.attempts.Load()
}

// Do executes req and returns the complete response. Any HTTP status is a
// successful exchange. Transport failures are retried per Config.Retry and
// surface as a BadRequest *errors.Error once the ceiling is reached.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	prepared, err := c.prepare(req)
	if err != nil {
		return nil, err
	}

	retry := *c.config.Retry
	retry.RetryIf = IsTransient
	retry.OnRetry = func(n int, err error, backoff time.Duration) {
		c.retries.Add(ctx, 1, metric.WithAttributes(
			attribute.String("http.request.method", prepared.method),
		))
		c.log.WithContext(ctx).Warn("retrying request", logger.Fields(
			logger.FieldMethod, prepared.method,
			logger.FieldURL, prepared.url,
			logger.FieldAttempt, n,
			logger.FieldBackoff, backoff.Milliseconds(),
			logger.FieldError, err.Error(),
		))
	}

	attempt := 0
	resp, err := resilience.Retry(ctx, retry, func() (*Response, error) {
		attempt++
		return c.attempt(ctx, prepared, attempt)
	})
	if err != nil {
		if _, ok := apperrors.As(err); ok {
			return nil, err
		}
		var te *TransportError
		if !stderrors.As(err, &te) {
			// the retry loop observed the context ending between attempts
			te = newTransportError(ErrCodeCanceled, prepared.method, prepared.url, err)
		}
		return nil, apperrors.Wrap(apperrors.KindBadRequest, "Failed to make request", te)
	}
	return resp, nil
}

// prepared is a request validated and encoded once, replayed per attempt.
type prepared struct {
	method  string
	url     string
	headers http.Header
	body    []byte
	expect  Expect
}

func (c *Client) prepare(req Request) (*prepared, error) {
	target, err := c.resolveURL(req.Path, req.Query)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindParameter, "Invalid request URL", err)
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, apperrors.SerializeJSON("Failed to serialize request body", err)
	}

	h := make(http.Header, len(c.config.Headers)+len(req.Headers)+1)
	for k, v := range c.config.Headers {
		h.Set(k, v)
	}
	for k, v := range req.Headers {
		h.Set(k, v)
	}
	if body != nil && h.Get("Content-Type") == "" && contentType != "" {
		h.Set("Content-Type", contentType)
	}
	for k, vs := range h {
		if !httpguts.ValidHeaderFieldName(k) {
			return nil, apperrors.Newf(apperrors.KindParameter, "Invalid header name: %q", k)
		}
		for _, v := range vs {
			if !httpguts.ValidHeaderFieldValue(v) {
				return nil, apperrors.Newf(apperrors.KindParameter, "Invalid value for header %q", k)
			}
		}
	}
	if v := req.Auth.header(); v != "" && !httpguts.ValidHeaderFieldValue(v) {
		return nil, apperrors.Parameter("Invalid authorization header value")
	}

	return &prepared{
		method:  normalizeMethod(req.Method),
		url:     target,
		headers: applyAuth(h, req.Auth),
		body:    body,
		expect:  req.Expect,
	}, nil
}

// attempt performs one exchange under its own span.
func (c *Client) attempt(ctx context.Context, p *prepared, n int) (*Response, error) {
	if c.rl != nil {
		if err := c.rl.Wait(ctx); err != nil {
			return nil, newTransportError(ErrCodeCanceled, p.method, p.url, err)
		}
	}

	ctx, span := c.tracer.Start(ctx, "HTTP "+p.method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", p.method),
			attribute.String("url.full", p.url),
			attribute.Int("http.request.resend_count", n-1),
		),
	)
	defer span.End()
	c.attempts.Add(1)

	resp, err := c.send(ctx, p)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= 500 {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}
	return resp, nil
}

func (c *Client) send(ctx context.Context, p *prepared) (*Response, error) {
	var body io.Reader
	if p.body != nil {
		body = bytes.NewReader(p.body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, p.method, p.url, body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindParameter, "Invalid request", err)
	}
	httpReq.Header = p.headers.Clone()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.classify(ctx, p, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, newTransportError(ErrCodeCanceled, p.method, p.url, err)
		}
		return nil, newTransportError(ErrCodeBody, p.method, p.url, fmt.Errorf("read response body: %w", err))
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
	}
	if p.expect == ExpectBytes {
		result.Body = BytesBody(data)
	} else {
		result.Body = TextBody(string(bytes.ToValidUTF8(data, []byte("�"))))
	}
	return result, nil
}

// classify maps an error returned by http.Client.Do onto a TransportError.
func (c *Client) classify(ctx context.Context, p *prepared, err error) *TransportError {
	if ctx.Err() != nil {
		return newTransportError(ErrCodeCanceled, p.method, p.url, err)
	}
	var ue *url.Error
	if stderrors.As(err, &ue) && ue.Timeout() {
		return newTransportError(ErrCodeTimeout, p.method, p.url, err)
	}
	return newTransportError(ErrCodeConnection, p.method, p.url, err)
}

func (c *Client) resolveURL(path string, query map[string]string) (string, error) {
	target := path
	if c.config.BaseURL != "" && !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		target = strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
	}
	u, err := url.Parse(target)
	if err != nil {
		return "", err
	}
	if len(query) > 0 {
		q := u.Query()
		for k, v := range query {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// normalizeMethod maps the supported verbs and sends anything else as GET.
func normalizeMethod(m string) string {
	switch strings.ToUpper(m) {
	case http.MethodPost:
		return http.MethodPost
	case http.MethodPut:
		return http.MethodPut
	case http.MethodDelete:
		return http.MethodDelete
	default:
		return http.MethodGet
	}
}

func applyAuth(h http.Header, auth *AuthConfig) http.Header {
	if auth == nil {
		return h
	}
	r := &http.Request{Header: h}
	auth.apply(r)
	return r.Header
}

// encodeBody converts a body value into bytes and a content type.
func encodeBody(body any) ([]byte, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch v := body.(type) {
	case []byte:
		return v, "", nil
	case string:
		return []byte(v), "text/plain", nil
	case json.RawMessage:
		return v, "application/json", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return data, "application/json", nil
	}
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
