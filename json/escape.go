package json

import (
	"unicode/utf8"
)

// Text is the constraint for values usable as JSON string content:
// native strings or raw UTF-8 byte slices.
type Text interface {
	~string | ~[]byte
}

const hexDigits = "0123456789abcdef"

// UTF-8 encoding of U+FFFD, substituted for invalid input bytes
const replacementChar = "\xef\xbf\xbd"

// appendEscape appends the JSON string-literal body of s to dst: the
// bytes that go between the quotes. It scans s once, copying runs of
// passthrough bytes wholesale and splitting at each byte that needs an
// escape. Escaped: backslash, double quote, and the C0 control range
// (named escapes for \b \f \n \r \t, lowercase \u00xx otherwise).
// Everything at or above 0x20 passes through unmodified, including
// multi-byte UTF-8 sequences; the forward slash is not escaped.
// Invalid UTF-8 bytes are replaced by U+FFFD one byte at a time, so a
// valid multi-byte sequence is never split.
func appendEscape(dst []byte, s string) []byte {
	start := 0
	for i := 0; i < len(s); {
		b := s[i]
		if b >= 0x20 && b != '"' && b != '\\' {
			if b < utf8.RuneSelf {
				i++
				continue
			}
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				dst = append(dst, s[start:i]...)
				dst = append(dst, replacementChar...)
				i++
				start = i
				continue
			}
			i += size
			continue
		}

		dst = append(dst, s[start:i]...)
		switch b {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xF])
		}
		i++
		start = i
	}
	return append(dst, s[start:]...)
}

// appendQuoted appends a complete JSON string literal for key.
func appendQuoted[T Text](dst []byte, key T) []byte {
	dst = append(dst, '"')
	dst = appendEscape(dst, string(key))
	return append(dst, '"')
}
