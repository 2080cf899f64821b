package block

import (
	"errors"
	"strings"
	"unicode"

	"saveedit/internal/codec"
	"saveedit/internal/deflate"
	"saveedit/internal/mask"
)

// ErrNoBlocks reports a host file in which scanning found no candidate
// payload spans. It is informational: the file is simply not one this tool
// can edit.
var ErrNoBlocks = errors.New("no payload blocks found in host text")

// MinEncodedRun is the default floor on the stripped encoded length of a
// candidate block. Shorter quoted runs are assumed to be ordinary string
// literals; 64 excludes them while admitting the smallest real payload.
const MinEncodedRun = 64

// Classifier reports whether decoded payload text looks like content the
// active editor expects.
type Classifier interface {
	Classify(text string) bool
}

// KeywordClassifier matches text containing at least one of its hint
// substrings.
type KeywordClassifier []string

// Classify implements Classifier.
func (k KeywordClassifier) Classify(text string) bool {
	for _, hint := range k {
		if strings.Contains(text, hint) {
			return true
		}
	}
	return false
}

// Block is one candidate embedded payload found in host text. Blocks are
// immutable after scanning; a new scan replaces the whole set.
type Block struct {
	// Ordinal is the block's position among all matches, in text order.
	Ordinal int
	// Quote is the delimiter bounding the literal, '"' or '\''.
	Quote byte
	// SpanStart and SpanEnd delimit the inner content in the original host
	// text, exclusive of the quotes. Replacing [SpanStart, SpanEnd) and
	// leaving everything else untouched reproduces a valid host file.
	SpanStart int
	SpanEnd   int
	// RawInner is the literal inner text exactly as it appeared.
	RawInner string
	// MaskPositions are the offsets, measured in the mask-stripped string,
	// where a mask character appeared.
	MaskPositions []int
	// CleanedEncoded is RawInner with whitespace and mask characters
	// removed: the actual base64 payload.
	CleanedEncoded string
	// DecodedText is the decompressed payload text; empty when Err is set.
	DecodedText string
	// Framing records which compression framing decoded the payload.
	Framing deflate.Framing
	// Classified is true when decoding succeeded and the decoded text
	// matched the classifier's keyword hints.
	Classified bool
	// Err holds the decode failure for this block, if any. A failed block
	// stays in the scan results; the error surfaces only when the caller
	// acts on this specific block.
	Err error
}

// Decodable reports whether the block's payload decoded successfully.
func (b *Block) Decodable() bool {
	return b != nil && b.Err == nil
}

// Scanner finds payload blocks in host text.
type Scanner struct {
	maskChar   byte
	minRun     int
	classifier Classifier
}

// NewScanner constructs a scanner. A nil classifier marks no block as
// classified; minRun values below 1 fall back to MinEncodedRun.
func NewScanner(maskChar byte, minRun int, classifier Classifier) *Scanner {
	if minRun < 1 {
		minRun = MinEncodedRun
	}
	return &Scanner{maskChar: maskChar, minRun: minRun, classifier: classifier}
}

// Scan walks hostText once, left to right, and returns every payload block
// in text order with ordinals assigned. Matches never overlap: scanning
// resumes after the closing quote of each accepted block. Decoding is
// attempted eagerly for every match.
func (s *Scanner) Scan(hostText string) []*Block {
	var blocks []*Block

	for i := 0; i < len(hostText); i++ {
		q := hostText[i]
		if q != '"' && q != '\'' {
			continue
		}

		end, ok := s.matchRun(hostText, i+1, q)
		if !ok {
			continue
		}

		raw := hostText[i+1 : end]
		cleaned, positions := mask.Strip(raw, s.maskChar)
		if len(cleaned) < s.minRun {
			continue
		}

		b := &Block{
			Ordinal:        len(blocks),
			Quote:          q,
			SpanStart:      i + 1,
			SpanEnd:        end,
			RawInner:       raw,
			MaskPositions:  positions,
			CleanedEncoded: cleaned,
		}
		s.decode(b)
		blocks = append(blocks, b)

		i = end // loop increment steps past the closing quote
	}

	return blocks
}

// matchRun scans forward from start while characters stay within the
// encoded-payload alphabet (base64, whitespace, mask). It reports the index
// of the closing quote when the run ends on the matching delimiter.
func (s *Scanner) matchRun(hostText string, start int, quote byte) (int, bool) {
	j := start
	for j < len(hostText) {
		c := hostText[j]
		if c == quote {
			return j, j > start
		}
		if !s.allowed(c) {
			return 0, false
		}
		j++
	}
	return 0, false
}

func (s *Scanner) allowed(c byte) bool {
	if c == s.maskChar {
		return true
	}
	if c < 0x80 && unicode.IsSpace(rune(c)) {
		return true
	}
	return codec.IsBase64Char(c)
}

func (s *Scanner) decode(b *Block) {
	data, err := codec.DecodeBase64(b.CleanedEncoded)
	if err != nil {
		b.Err = err
		return
	}
	text, framing, err := deflate.Decompress(data)
	if err != nil {
		b.Err = err
		return
	}
	b.DecodedText = text
	b.Framing = framing
	if s.classifier != nil {
		b.Classified = s.classifier.Classify(text)
	}
}

// Select applies the auto-open policy: the first classified and decodable
// block in text order, else the first decodable block, else nil.
func Select(blocks []*Block) *Block {
	for _, b := range blocks {
		if b.Decodable() && b.Classified {
			return b
		}
	}
	for _, b := range blocks {
		if b.Decodable() {
			return b
		}
	}
	return nil
}
