package spotify

import (
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// decodeLocalText decodes a free-text field of a local item. A literal '+'
// means space and is substituted before percent escapes are resolved, so an
// escaped plus (%2B) survives as a plus. Malformed escapes pass through
// verbatim. The decoded bytes must form valid UTF-8; src is the complete
// original URI, carried into the error.
func decodeLocalText(src, s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s):
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if ok1 && ok2 {
				b.WriteByte(hi<<4 | lo)
				i += 2
			} else {
				b.WriteByte(c)
			}
		default:
			b.WriteByte(c)
		}
	}
	out := b.String()
	if !utf8.ValidString(out) {
		return "", &InvalidFormatError{Reason: "text field is not valid UTF-8 after percent decoding", Value: src}
	}
	return out, nil
}

// encodeLocalText is the inverse of decodeLocalText: control characters,
// non-ASCII bytes, ':', '+' and '%' are percent encoded, then spaces become
// '+'. Space is deliberately absent from the escape set as it round-trips
// through '+'.
func encodeLocalText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == ' ':
			b.WriteByte('+')
		case c < 0x20 || c >= 0x7f || c == ':' || c == '+' || c == '%':
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0f])
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
