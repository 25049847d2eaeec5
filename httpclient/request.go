package httpclient

// Expect selects how a response body is materialised.
type Expect int

const (
	// ExpectText decodes the body as text. It is the default.
	ExpectText Expect = iota
	// ExpectBytes keeps the body as raw bytes.
	ExpectBytes
)

// String returns the mode name.
func (e Expect) String() string {
	if e == ExpectBytes {
		return "bytes"
	}
	return "text"
}

// Request describes an outbound HTTP request.
type Request struct {
	// Method is GET, POST, PUT or DELETE. Anything else is sent as GET.
	Method string
	// Path is resolved against the client's BaseURL. Absolute http(s) URLs
	// are used as they are.
	Path string
	// Headers are request-specific headers (merged over client defaults).
	Headers map[string]string
	// Query are URL query parameters appended to Path.
	Query map[string]string
	// Body is the request body: nil, string, []byte, or a value encoded as
	// JSON. It is encoded once and replayed on retries.
	Body any
	// Auth is applied after all headers.
	Auth *AuthConfig
	// Expect selects the body materialisation of the response.
	Expect Expect
}

// Body is a materialised response body.
type Body struct {
	// Kind is the mode the body was read in.
	Kind Expect
	// Text holds the body for ExpectText.
	Text string
	// Bytes holds the body for ExpectBytes.
	Bytes []byte
}

// TextBody builds a text body.
func TextBody(s string) Body { return Body{Kind: ExpectText, Text: s} }

// BytesBody builds a binary body.
func BytesBody(b []byte) Body { return Body{Kind: ExpectBytes, Bytes: b} }

// IsText reports whether the body was read as text.
func (b Body) IsText() bool { return b.Kind == ExpectText }

// Response is the result of a completed HTTP exchange.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, first value per name.
	Headers map[string]string
	// Body is the response body in the requested mode.
	Body Body
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
