package oemcp

import (
	"strings"
)

// Decode converts code page bytes to a string. It fails on the first byte
// whose table entry is undefined; no partial result is returned. On a
// complete table Decode never fails.
//
// Example:
//
//	CP874.Decode([]byte{0xA1, 0xD8, 0xE9, 0xA7})   => "กุ้ง", true
//	CP874.Decode([]byte{0x30, 0xDB})               => "", false
func (t *DecodingTable) Decode(src []byte) (string, bool) {
	var sb strings.Builder
	sb.Grow(len(src))
	for _, b := range src {
		if b < 0x80 {
			sb.WriteByte(b)
			continue
		}
		r := t.hi[b-0x80]
		if r == undefined {
			return "", false
		}
		sb.WriteRune(r)
	}
	return sb.String(), true
}

// DecodeLossy converts code page bytes to a string, substituting U+FFFD for
// undefined bytes. It never fails.
//
// Example:
//
//	CP874.DecodeLossy([]byte{0x30, 0xDB})   => "0�"
func (t *DecodingTable) DecodeLossy(src []byte) string {
	var sb strings.Builder
	sb.Grow(len(src))
	for _, b := range src {
		if b < 0x80 {
			sb.WriteByte(b)
			continue
		}
		sb.WriteRune(t.hi[b-0x80]) // undefined entries are U+FFFD already
	}
	return sb.String()
}

// MustDecode converts code page bytes to a string without undefined-entry
// handling. The table must be complete; calling MustDecode on an incomplete
// table is a programming error and panics. Use Decode or DecodeLossy for
// tables with undefined code points.
func (t *DecodingTable) MustDecode(src []byte) string {
	assert(t.complete, "MustDecode on incomplete table; use Decode or DecodeLossy")
	return t.DecodeLossy(src) // a complete table has nothing to substitute
}
