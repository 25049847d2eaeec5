// Package resilience provides the retry and throttling primitives used by
// the HTTP transport.
//
//   - Retry: re-runs an operation on transient failures with exponential
//     backoff and jitter, bounded by a retry ceiling.
//   - RateLimiter: token bucket that paces outgoing requests.
//
//	resp, err := resilience.Retry(ctx, resilience.DefaultRetryConfig(), func() (*Response, error) {
//	    return send(ctx, req)
//	})
package resilience
