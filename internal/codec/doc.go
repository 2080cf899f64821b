// Package codec converts between the textual and binary forms of embedded
// payloads: base64 for the encoded-at-rest representation and UTF-8 for the
// decoded plaintext.
//
// Decoding is strict on both layers. Characters outside the base64 alphabet
// or invalid padding surface ErrMalformedInput; decompressed bytes that are
// not valid UTF-8 surface ErrDecodeText. The lossy helpers exist solely so
// callers can classify content that failed strict decoding; lossy output
// must never be written back into a host file.
package codec
