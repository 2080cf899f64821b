package deflate

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"saveedit/internal/codec"
)

// ErrUnsupportedEncoding reports input that none of the supported framings
// could inflate into valid text.
var ErrUnsupportedEncoding = errors.New("unsupported compression framing")

// Framing identifies one member of the deflate family.
type Framing string

const (
	FramingZlib Framing = "zlib"
	FramingRaw  Framing = "raw-deflate"
	FramingGzip Framing = "gzip"
)

// framingOrder is the fixed trial order for Decompress. Zlib first because it
// is what Compress emits, so round trips succeed on the first attempt.
var framingOrder = []Framing{FramingZlib, FramingRaw, FramingGzip}

// Decompress inflates data, trying each supported framing in order, and
// returns the decoded text together with the framing that succeeded. A
// framing counts as successful only when inflation completes without error
// and the output is valid UTF-8. When every framing fails the error names
// the input length and leading bytes for diagnosis; no partial output is
// ever returned.
func Decompress(data []byte) (string, Framing, error) {
	for _, framing := range framingOrder {
		raw, err := inflate(data, framing)
		if err != nil {
			continue
		}
		text, err := codec.DecodeText(raw)
		if err != nil {
			continue
		}
		return text, framing, nil
	}

	prefix := data
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return "", "", fmt.Errorf("%w: %d bytes, leading % x", ErrUnsupportedEncoding, len(data), prefix)
}

// Compress deflates text into the canonical zlib framing.
func Compress(text string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(codec.EncodeText(text)); err != nil {
		_ = zw.Close()
		return nil, fmt.Errorf("compress payload: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}
	return buf.Bytes(), nil
}

func inflate(data []byte, framing Framing) ([]byte, error) {
	var (
		rc  io.ReadCloser
		err error
	)
	switch framing {
	case FramingZlib:
		rc, err = zlib.NewReader(bytes.NewReader(data))
	case FramingRaw:
		rc = flate.NewReader(bytes.NewReader(data))
	case FramingGzip:
		rc, err = gzip.NewReader(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unknown framing %q", framing)
	}
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	out, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	return out, nil
}
