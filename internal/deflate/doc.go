// Package deflate adapts the deflate-family compression formats used by host
// save files.
//
// The framing of embedded payloads is undocumented and varies by producer
// version, so Decompress tries zlib, raw deflate, and gzip in a fixed order
// and accepts the first framing that both inflates cleanly and yields valid
// UTF-8. Compress always emits the canonical zlib framing: an edited payload
// only needs to decode correctly afterwards, not to preserve the framing it
// arrived with.
package deflate
