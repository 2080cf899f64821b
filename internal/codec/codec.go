package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrMalformedInput reports base64 text containing characters outside the
// alphabet or invalid padding.
var ErrMalformedInput = errors.New("malformed base64 input")

// ErrDecodeText reports bytes that are not valid UTF-8.
var ErrDecodeText = errors.New("bytes are not valid UTF-8 text")

// encodeChunkBytes is the largest multiple of three under 32 KiB. Encoding
// proceeds chunk by chunk so arbitrarily large buffers never hit per-call
// limits, and the multiple-of-three boundary keeps chunk outputs
// concatenation-safe (no interior padding).
const encodeChunkBytes = 32766

// DecodeBase64 strips whitespace from text and decodes the remainder as
// standard base64. Any character outside the alphabet, or padding that does
// not close the final quantum, returns ErrMalformedInput.
func DecodeBase64(text string) ([]byte, error) {
	cleaned := stripSpace(text)
	data, err := base64.StdEncoding.Strict().DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return data, nil
}

// EncodeBase64 encodes data as standard base64, processing the input in
// bounded chunks and concatenating the per-chunk output.
func EncodeBase64(data []byte) string {
	if len(data) <= encodeChunkBytes {
		return base64.StdEncoding.EncodeToString(data)
	}

	var sb strings.Builder
	sb.Grow(base64.StdEncoding.EncodedLen(len(data)))
	for len(data) > 0 {
		n := len(data)
		if n > encodeChunkBytes {
			n = encodeChunkBytes
		}
		sb.WriteString(base64.StdEncoding.EncodeToString(data[:n]))
		data = data[n:]
	}
	return sb.String()
}

// DecodeText interprets data as UTF-8 text, returning ErrDecodeText when the
// bytes are not valid UTF-8 rather than substituting replacement characters.
func DecodeText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %d bytes", ErrDecodeText, len(data))
	}
	return string(data), nil
}

// DecodeTextLossy interprets data as UTF-8 text, replacing invalid sequences.
// For classification only; the result must never be re-encoded into a host
// file.
func DecodeTextLossy(data []byte) string {
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

// EncodeText returns the UTF-8 bytes of text.
func EncodeText(text string) []byte {
	return []byte(text)
}

// IsBase64Char reports whether c belongs to the standard base64 alphabet,
// including the '=' padding character.
func IsBase64Char(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '+' || c == '/' || c == '=':
		return true
	}
	return false
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
