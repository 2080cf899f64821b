// Package waves parses decoded payload text written in the wave script
// style: a flat sequence of action lines grouped under wave headers.
//
// The parser is a two-state line machine. Before the first wave header it
// buffers orphan lines; when the document contains no header at all, or a
// header appears after orphans, the buffered lines become one synthetic
// leading wave labeled "Wave 1". Header lines are kept verbatim, each
// following line becomes an event of the current wave, and events are
// classified against a fixed action-keyword vocabulary. Ordinals are
// assigned densely from zero in emission order and are the stable record
// identity for an editing session.
package waves
