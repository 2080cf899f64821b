// Package mask handles the decorative character the host format interleaves
// into encoded payload text. The character carries no information and must
// never reach the decompressor, but the host expects it back at the same
// structural offsets, so stripping records where each occurrence sat and
// reinsertion reproduces the pattern on freshly encoded text.
package mask

import (
	"sort"
	"strings"
	"unicode"
)

// Strip removes whitespace and every occurrence of maskChar from raw. The
// returned positions are the offsets each mask character would occupy in the
// cleaned string: each records how many cleaned characters preceded it.
func Strip(raw string, maskChar byte) (string, []int) {
	var (
		sb        strings.Builder
		positions []int
	)
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == maskChar:
			positions = append(positions, sb.Len())
		case c < 0x80 && unicode.IsSpace(rune(c)):
			// dropped without recording; only the mask is reproduced
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), positions
}

// Reinsert places maskChar back into cleaned at the recorded offsets.
// Offsets are applied from highest to lowest so earlier insertions are not
// shifted by later ones. Offsets past the end of cleaned are silently
// dropped: new content may be shorter than the original, and a trailing
// marker with nothing to attach to is discarded rather than an error. An
// empty position set returns cleaned unchanged.
func Reinsert(cleaned string, positions []int, maskChar byte) string {
	if len(positions) == 0 {
		return cleaned
	}

	ordered := make([]int, len(positions))
	copy(ordered, positions)
	sort.Sort(sort.Reverse(sort.IntSlice(ordered)))

	out := []byte(cleaned)
	for _, pos := range ordered {
		if pos < 0 || pos > len(cleaned) {
			continue
		}
		out = append(out[:pos], append([]byte{maskChar}, out[pos:]...)...)
	}
	return string(out)
}
