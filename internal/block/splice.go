package block

// Splice reassembles host text with newInner replacing the block's original
// inner span. Pure string surgery: every byte outside [SpanStart, SpanEnd)
// is carried over untouched, and the rest of the host text is neither
// re-scanned nor re-validated.
func Splice(hostText string, b *Block, newInner string) string {
	return hostText[:b.SpanStart] + newInner + hostText[b.SpanEnd:]
}
