package codec_test

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"saveedit/internal/codec"
)

func TestDecodeBase64StripsWhitespace(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("payload content"))
	spread := encoded[:4] + " \n\t" + encoded[4:8] + "  " + encoded[8:]

	got, err := codec.DecodeBase64(spread)
	if err != nil {
		t.Fatalf("DecodeBase64 returned error: %v", err)
	}
	if string(got) != "payload content" {
		t.Fatalf("unexpected decode result: %q", got)
	}
}

func TestDecodeBase64RejectsAlienCharacters(t *testing.T) {
	if _, err := codec.DecodeBase64("QUJD*RA=="); !errors.Is(err, codec.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestDecodeBase64RejectsBadPadding(t *testing.T) {
	cases := []string{"QUJDR", "QUJDRA=", "===="}
	for _, input := range cases {
		if _, err := codec.DecodeBase64(input); !errors.Is(err, codec.ErrMalformedInput) {
			t.Fatalf("input %q: expected ErrMalformedInput, got %v", input, err)
		}
	}
}

func TestEncodeBase64MatchesStdlibAcrossChunkBoundary(t *testing.T) {
	sizes := []int{0, 1, 3, 32765, 32766, 32767, 70000}
	for _, size := range sizes {
		data := bytes.Repeat([]byte{0xAB, 0x01, 0xFE}, size/3+1)[:size]
		got := codec.EncodeBase64(data)
		want := base64.StdEncoding.EncodeToString(data)
		if got != want {
			t.Fatalf("size %d: chunked encode diverged from stdlib", size)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data := []byte(strings.Repeat("wave data \x00\xff", 5000))
	decoded, err := codec.DecodeBase64(codec.EncodeBase64(data))
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatal("round trip altered data")
	}
}

func TestDecodeTextRejectsInvalidUTF8(t *testing.T) {
	if _, err := codec.DecodeText([]byte{0xff, 0xfe, 0xfd}); !errors.Is(err, codec.ErrDecodeText) {
		t.Fatalf("expected ErrDecodeText, got %v", err)
	}
}

func TestDecodeTextAcceptsValidUTF8(t *testing.T) {
	text, err := codec.DecodeText([]byte("wave 1 — tünnel"))
	if err != nil {
		t.Fatalf("DecodeText returned error: %v", err)
	}
	if text != "wave 1 — tünnel" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestDecodeTextLossySubstitutes(t *testing.T) {
	out := codec.DecodeTextLossy([]byte{'o', 'k', 0xff})
	if !strings.HasPrefix(out, "ok") {
		t.Fatalf("lossy decode lost valid prefix: %q", out)
	}
	if strings.Contains(out, "\xff") {
		t.Fatal("lossy decode leaked invalid byte")
	}
}

func TestIsBase64Char(t *testing.T) {
	for _, c := range []byte("AZaz09+/=") {
		if !codec.IsBase64Char(c) {
			t.Fatalf("expected %q to be a base64 char", c)
		}
	}
	for _, c := range []byte("*! \n\"'-") {
		if codec.IsBase64Char(c) {
			t.Fatalf("expected %q to be rejected", c)
		}
	}
}
