// Package httpclient is the shared transport of the picacg client.
//
// A Client owns one *http.Client reused by every call. Each request has a
// fixed timeout (5s by default). Transient transport failures (connection
// errors and per-request timeouts) are retried with exponential backoff up
// to a fixed ceiling (2 retries by default). A completed exchange is never
// retried: non-2xx responses are returned to the caller like any other.
//
// Once the ceiling is reached the failure surfaces as an *errors.Error of
// kind BadRequest whose cause is the classified *TransportError.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://picaapi.picacomic.com",
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/categories",
//	    Auth:   httpclient.TokenAuth(token),
//	})
//
// # Binary bodies
//
// Request.Expect selects how the response body is materialised: ExpectText
// for JSON endpoints, ExpectBytes for image downloads.
//
// # Certificate validation
//
// Validation is on unless TLS.TrustAllCertificates is set explicitly; the
// client logs a warning when it is.
package httpclient
