package logger

// Standard field keys used across the client.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldOperation = "operation"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldURL       = "url"
	FieldStatus    = "status"
	FieldAttempt   = "attempt"
	FieldBackoff   = "backoff_ms"
	FieldKind      = "kind"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
	FieldToken     = "token"
)

// Fields builds a map[string]any from alternating key-value pairs.
//
//	log.Debug("sent", logger.Fields(logger.FieldMethod, "GET", logger.FieldStatus, 200))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// MaskSecret hides all but the first visiblePrefix characters of s.
// Tokens and keys go through this before reaching a log line.
func MaskSecret(s string, visiblePrefix int) string {
	if s == "" {
		return ""
	}
	if len(s) <= visiblePrefix {
		return "***"
	}
	return s[:visiblePrefix] + "***"
}
