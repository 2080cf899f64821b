package testsupport

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"strings"
	"testing"

	"saveedit/internal/codec"
)

// EncodePayload compresses text with zlib and base64-encodes the result,
// producing a block inner exactly as a host file would carry it.
func EncodePayload(t testing.TB, text string) string {
	t.Helper()
	return codec.EncodeBase64(compressZlib(t, text))
}

// EncodePayloadGzip is EncodePayload with gzip framing, for exercising the
// adapter's framing trial order.
func EncodePayloadGzip(t testing.TB, text string) string {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(text)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return codec.EncodeBase64(buf.Bytes())
}

// Masked interleaves maskChar into encoded every interval characters,
// mirroring the host format's obfuscation pattern.
func Masked(encoded string, maskChar byte, interval int) string {
	if interval < 1 {
		return encoded
	}
	var sb strings.Builder
	for i := 0; i < len(encoded); i += interval {
		end := i + interval
		if end > len(encoded) {
			end = len(encoded)
		}
		sb.WriteString(encoded[i:end])
		if end < len(encoded) {
			sb.WriteByte(maskChar)
		}
	}
	return sb.String()
}

// HostFile wraps inner blocks in a script-shaped host file, one quoted
// assignment per block, with surrounding noise lines that must survive
// export byte for byte.
func HostFile(inners ...string) string {
	var sb strings.Builder
	sb.WriteString("// generated level container\n")
	sb.WriteString("function loadSave() {\n")
	for i, inner := range inners {
		sb.WriteString("\tslot")
		sb.WriteByte(byte('0' + i%10))
		sb.WriteString(" = \"")
		sb.WriteString(inner)
		sb.WriteString("\";\n")
	}
	sb.WriteString("\treturn true;\n")
	sb.WriteString("}\n")
	return sb.String()
}

func compressZlib(t testing.TB, text string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write([]byte(text)); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}
	return buf.Bytes()
}
