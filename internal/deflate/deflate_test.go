package deflate_test

import (
	"bytes"
	stdflate "compress/flate"
	stdgzip "compress/gzip"
	stdzlib "compress/zlib"
	"errors"
	"io"
	"strings"
	"testing"

	"saveedit/internal/deflate"
)

func compressWith(t *testing.T, framing deflate.Framing, text string) []byte {
	t.Helper()

	var buf bytes.Buffer
	var w io.WriteCloser
	switch framing {
	case deflate.FramingZlib:
		w = stdzlib.NewWriter(&buf)
	case deflate.FramingGzip:
		w = stdgzip.NewWriter(&buf)
	case deflate.FramingRaw:
		fw, err := stdflate.NewWriter(&buf, stdflate.DefaultCompression)
		if err != nil {
			t.Fatalf("flate writer: %v", err)
		}
		w = fw
	default:
		t.Fatalf("unknown framing %q", framing)
	}
	if _, err := w.Write([]byte(text)); err != nil {
		t.Fatalf("compress write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("compress close: %v", err)
	}
	return buf.Bytes()
}

func TestDecompressAcceptsEveryFraming(t *testing.T) {
	text := "var cash = 650;\nvar lives = 100;\n"
	for _, framing := range []deflate.Framing{deflate.FramingZlib, deflate.FramingRaw, deflate.FramingGzip} {
		data := compressWith(t, framing, text)
		got, detected, err := deflate.Decompress(data)
		if err != nil {
			t.Fatalf("framing %s: Decompress returned error: %v", framing, err)
		}
		if got != text {
			t.Fatalf("framing %s: round trip altered text: %q", framing, got)
		}
		if detected != framing {
			t.Fatalf("framing %s: detected as %s", framing, detected)
		}
	}
}

func TestCompressEmitsCanonicalZlib(t *testing.T) {
	text := "AddWave(1)\nAddBloon(Red)\n"
	data, err := deflate.Compress(text)
	if err != nil {
		t.Fatalf("Compress returned error: %v", err)
	}

	// Must inflate with a plain zlib reader regardless of the framing the
	// payload originally used.
	zr, err := stdzlib.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not zlib framed: %v", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	if string(out) != text {
		t.Fatalf("round trip altered text: %q", out)
	}
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"x = 1;",
		strings.Repeat("CreateTrain(9)\nAddBloon(Ceramic)\n", 4000),
		"unicode – ünïcødé ✔",
	}
	for _, text := range texts {
		data, err := deflate.Compress(text)
		if err != nil {
			t.Fatalf("Compress(%q...): %v", truncateForLog(text), err)
		}
		got, framing, err := deflate.Decompress(data)
		if err != nil {
			t.Fatalf("Decompress(%q...): %v", truncateForLog(text), err)
		}
		if framing != deflate.FramingZlib {
			t.Fatalf("expected canonical zlib framing, got %s", framing)
		}
		if got != text {
			t.Fatal("round trip altered text")
		}
	}
}

func TestDecompressFailureNamesInput(t *testing.T) {
	junk := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}
	_, _, err := deflate.Decompress(junk)
	if !errors.Is(err, deflate.ErrUnsupportedEncoding) {
		t.Fatalf("expected ErrUnsupportedEncoding, got %v", err)
	}
	if !strings.Contains(err.Error(), "10 bytes") {
		t.Fatalf("error does not name input length: %v", err)
	}
	if !strings.Contains(err.Error(), "00 01") {
		t.Fatalf("error does not name leading bytes: %v", err)
	}
}

func TestDecompressRejectsNonTextPayload(t *testing.T) {
	// Valid zlib stream whose payload is not UTF-8: treated as a decode
	// failure, all remaining framings tried, no partial output.
	var buf bytes.Buffer
	zw := stdzlib.NewWriter(&buf)
	if _, err := zw.Write([]byte{0xff, 0xfe, 0x00, 0x80}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if _, _, err := deflate.Decompress(buf.Bytes()); !errors.Is(err, deflate.ErrUnsupportedEncoding) {
		t.Fatalf("expected ErrUnsupportedEncoding, got %v", err)
	}
}

func truncateForLog(s string) string {
	if len(s) > 16 {
		return s[:16]
	}
	return s
}
