// Package base64 implements forgiving base64 decoding for
// untrusted input.
//
// The decoder extracts as much data as it can from text that a
// strict decoder would refuse. It is intended for inspecting
// payloads that may be mangled or deliberately obfuscated.
//
// Comparison to encoding/base64
//
// Every byte outside the standard alphabet is skipped, not just
// '\r' and '\n'. Padding may appear anywhere and in any amount,
// with one exception: padding as the second symbol of a group is
// rejected. Incomplete trailing groups decode to the bytes they
// fully describe. For example:
//
//    src := []byte("T Q\xff==")
//    base64.StdEncoding.Decode(dst, src) // 0, CorruptInputError(1)
//    Fill(dst, src)                      // 1, dst[0] == 'M'
//
// Two-pass decoding
//
// Probe returns a buffer size that is always large enough for
// Fill on the same input:
//
//    dst := make([]byte, Probe(src))
//    dst = dst[:Fill(dst, src)]
//
// Probe and Fill report rejected input as 0. Encoding.Decode and
// Encoding.DecodeString report it as ErrPadding or ErrCorrupt.
//
// Strict RFC 4648 encoding and decoding are provided by
// EncodeToString and DecodeStrict.
package base64
