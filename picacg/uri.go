package picacg

import "strings"

const hexDigits = "0123456789ABCDEF"

// encodeURI percent-encodes a raw request path and query for the wire. Only
// bytes that cannot appear literally are escaped: controls, space, non-ASCII,
// a few delimiters, and any '%' that does not start a valid escape. Spaces
// become %20. Reserved separators such as '&', '=' and '/' pass through, so
// the server sees the same structure that was signed.
func encodeURI(raw string) string {
	p, q, hasQuery := strings.Cut(raw, "?")
	var b strings.Builder
	b.Grow(len(raw))
	escapeInto(&b, p, pathEscaped)
	if hasQuery {
		b.WriteByte('?')
		escapeInto(&b, q, queryEscaped)
	}
	return b.String()
}

func pathEscaped(c byte) bool {
	switch c {
	case ' ', '"', '#', '<', '>', '`', '{', '}', '?':
		return true
	}
	return c < 0x20 || c >= 0x7f
}

func queryEscaped(c byte) bool {
	switch c {
	case ' ', '"', '#', '<', '>', '\'':
		return true
	}
	return c < 0x20 || c >= 0x7f
}

func escapeInto(b *strings.Builder, s string, escaped func(byte) bool) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped(c) || (c == '%' && !validEscape(s, i)) {
			b.WriteByte('%')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0x0f])
			continue
		}
		b.WriteByte(c)
	}
}

func validEscape(s string, i int) bool {
	return i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2])
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
