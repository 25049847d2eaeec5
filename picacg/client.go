package picacg

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/picacg/config"
	"github.com/kbukum/picacg/envelope"
	apperrors "github.com/kbukum/picacg/errors"
	"github.com/kbukum/picacg/httpclient"
	"github.com/kbukum/picacg/logger"
	"github.com/kbukum/picacg/observability"
	"github.com/kbukum/picacg/session"
	"github.com/kbukum/picacg/signer"
)

// Client is the Picacomic API client. It is safe for concurrent use; the
// session token is the only state shared between calls.
type Client struct {
	cfg     Config
	http    *httpclient.Client
	signer  *signer.Signer
	session *session.Store
	log     *logger.Logger
	metrics *observability.Metrics

	mu          sync.RWMutex
	imageServer string
}

// Option configures a Client.
type Option func(*options)

type options struct {
	session    *session.Store
	log        *logger.Logger
	signerOpts []signer.Option
	httpOpts   []httpclient.Option
}

// WithSession shares an existing session store with the client.
func WithSession(s *session.Store) Option {
	return func(o *options) { o.session = s }
}

// WithLogger sets the client logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithClock replaces the clock used for the time header.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.signerOpts = append(o.signerOpts, signer.WithClock(now)) }
}

// WithHTTPOptions passes options through to the transport.
func WithHTTPOptions(opts ...httpclient.Option) Option {
	return func(o *options) { o.httpOpts = append(o.httpOpts, opts...) }
}

// New creates a Client.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Wrap(apperrors.KindParameter, "Invalid client configuration", err)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.session == nil {
		o.session = session.NewStore("")
	}
	if o.log == nil {
		o.log = logger.New(&cfg.Logging, "picacg")
	}

	hc, err := httpclient.New(cfg.HTTP, append([]httpclient.Option{httpclient.WithLogger(o.log)}, o.httpOpts...)...)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindParameter, "Invalid transport configuration", err)
	}

	metrics, err := observability.DefaultMetrics()
	if err != nil {
		return nil, apperrors.Unknown(err)
	}

	return &Client{
		cfg:     cfg,
		http:    hc,
		signer:  signer.New(cfg.Credentials, cfg.App, o.signerOpts...),
		session: o.session,
		log:     o.log.WithComponent("picacg"),
		metrics: metrics,
	}, nil
}

// Session returns the session store used by the client.
func (c *Client) Session() *session.Store {
	return c.session
}

// Config returns the effective configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// RestoreSession applies persisted settings.
func (c *Client) RestoreSession(s config.Settings) {
	c.session.Set(s.UserData.Token)
	c.mu.Lock()
	c.imageServer = s.NetData.ImageServer
	c.mu.Unlock()
}

// Settings returns the state worth persisting.
func (c *Client) Settings() config.Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return config.Settings{
		UserData: config.UserData{Token: c.session.Token()},
		NetData:  config.NetData{ImageServer: c.imageServer},
	}
}

// Logout clears the session token.
func (c *Client) Logout() {
	c.session.Clear()
}

// Endpoint describes one API call.
type Endpoint struct {
	// Method is the HTTP verb.
	Method string
	// Path is the request path including its query string, already escaped.
	Path string
	// Body is encoded as JSON when not nil.
	Body any
	// NoTextMessage is the BadRequest message used when the body is not text.
	NoTextMessage string
}

// Request sends a signed request and returns the raw response. Status codes
// are not interpreted. path is signed as given, with its query unescaped,
// and percent-encoded only for transmission.
func (c *Client) Request(ctx context.Context, method, path string, body any) (*httpclient.Response, error) {
	path = signer.NormalizePath(path)
	method = strings.ToUpper(method)
	ts := c.signer.Timestamp()

	reqID := uuid.NewString()
	ctx = logger.ContextWithRequestID(ctx, reqID)
	log := c.log.WithContext(ctx)
	start := time.Now()
	c.metrics.RecordStart(ctx)

	resp, err := c.http.Do(ctx, httpclient.Request{
		Method:  method,
		Path:    encodeURI(path),
		Headers: c.signer.Headers(method, path, ts),
		Body:    body,
		Auth:    httpclient.TokenAuth(c.session.Token()),
	})
	if err != nil {
		c.metrics.RecordFailure(ctx, method, apperrors.KindOf(err).String(), time.Since(start))
		log.Warn("request failed", logger.Fields(
			logger.FieldMethod, method,
			logger.FieldPath, path,
			logger.FieldKind, apperrors.KindOf(err).String(),
			logger.FieldError, err.Error(),
			logger.FieldDuration, time.Since(start).Milliseconds(),
		))
		return nil, err
	}
	c.metrics.RecordEnd(ctx, method, resp.StatusCode, time.Since(start))

	log.Debug("request completed", logger.Fields(
		logger.FieldMethod, method,
		logger.FieldPath, path,
		logger.FieldStatus, resp.StatusCode,
		logger.FieldToken, logger.MaskSecret(c.session.Token(), 4),
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return resp, nil
}

// Call sends ep and decodes the envelope of the response with decode.
func Call[T any](ctx context.Context, c *Client, ep Endpoint, decode envelope.Decoder[T]) (v T, err error) {
	route, _, _ := strings.Cut(ep.Path, "?")
	ctx, span := observability.StartSpan(ctx, "picacg.call",
		attribute.String("picacg.method", ep.Method),
		attribute.String("picacg.route", route),
	)
	defer func() { observability.EndSpan(span, err) }()

	resp, err := c.Request(ctx, ep.Method, ep.Path, ep.Body)
	if err != nil {
		return v, err
	}
	msg := ep.NoTextMessage
	if msg == "" {
		msg = "Expected text response for " + ep.Path
	}
	v, err = envelope.Parse(resp.Body, decode, msg)
	if err != nil {
		c.metrics.RecordError(ctx, apperrors.KindOf(err).String())
	}
	return v, err
}

// query is an ordered list of query parameters.
type query []struct{ key, value string }

func (q query) add(key, value string) query {
	return append(q, struct{ key, value string }{key, value})
}

func (q query) addIf(key, value string) query {
	if value == "" {
		return q
	}
	return q.add(key, value)
}

// path appends q to base in insertion order without escaping. The result
// is the string that gets signed; Request escapes it for the wire.
func (q query) path(base string) string {
	if len(q) == 0 {
		return base
	}
	var b strings.Builder
	b.WriteString(base)
	for i, p := range q {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(p.value)
	}
	return b.String()
}
