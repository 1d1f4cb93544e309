package oemcp

import (
	"fmt"
	"unicode/utf8"
)

//go:generate go run ./internal/gen --source=internal/gen/sources --out=tables_gen.go

// undefined marks high-half entries with no Unicode mapping. No OEM code
// page decodes any byte to U+FFFD, so the replacement character can double
// as the gap marker.
const undefined rune = utf8.RuneError

// A DecodingTable maps one OEM code page to Unicode.
//
// Only the high half is stored: entry i describes byte 0x80+i. Bytes below
// 0x80 are ASCII in every OEM code page and decode to themselves. Entries
// may be undefined; a table without undefined entries is complete. Tables
// are immutable after construction and safe for concurrent use.
type DecodingTable struct {
	codepage uint16
	complete bool
	hi       [128]rune
}

// NewDecodingTable builds a decoding table from the 128 high-half code
// points of a code page. Entries equal to utf8.RuneError count as undefined.
// The built-in tables (CP437, CP850, ...) cover the common OEM code pages;
// NewDecodingTable is for code pages outside that set.
func NewDecodingTable(codepage uint16, hi [128]rune) *DecodingTable {
	t := &DecodingTable{
		codepage: codepage,
		complete: true,
		hi:       hi,
	}
	for _, r := range t.hi {
		if r == undefined {
			t.complete = false
			break
		}
	}
	return t
}

// Codepage returns the numeric code page identifier, e.g. 437.
func (t *DecodingTable) Codepage() uint16 {
	return t.codepage
}

// Complete reports whether every high-half byte has a Unicode mapping.
// Completeness is a property of the code page, not a runtime mode.
func (t *DecodingTable) Complete() bool {
	return t.complete
}

// DecodeByte maps a single byte to its code point. Bytes below 0x80 decode
// to themselves. For undefined bytes DecodeByte returns utf8.RuneError and
// false.
func (t *DecodingTable) DecodeByte(b byte) (rune, bool) {
	if b < 0x80 {
		return rune(b), true
	}
	r := t.hi[b-0x80]
	return r, r != undefined
}

func (t *DecodingTable) String() string {
	return fmt.Sprintf("CP%d(complete=%v)", t.codepage, t.complete)
}

// An EncodingTable maps Unicode code points back to one OEM code page.
// It holds only the high half; code points below 0x80 encode to themselves.
// Encoding tables are built by inverting a decoding table, immutable
// afterwards, and safe for concurrent use.
type EncodingTable struct {
	codepage uint16
	bytes    map[rune]byte
}

// NewEncodingTable inverts a decoding table. When two bytes decode to the
// same code point, the lower byte becomes the canonical encoding; the
// tie-break is deterministic, so encode results are stable across builds.
// Tables resolved through LookupEncoding are cached; NewEncodingTable
// builds a fresh one for callers holding a concrete decoding table.
func NewEncodingTable(dec *DecodingTable) *EncodingTable {
	enc := &EncodingTable{
		codepage: dec.codepage,
		bytes:    make(map[rune]byte, len(dec.hi)),
	}
	for i, r := range dec.hi { // ascending, so the lowest byte wins
		if r == undefined {
			continue
		}
		if _, exists := enc.bytes[r]; exists {
			continue
		}
		enc.bytes[r] = byte(0x80 + i)
	}
	return enc
}

// Codepage returns the numeric code page identifier, e.g. 437.
func (t *EncodingTable) Codepage() uint16 {
	return t.codepage
}

// EncodeRune maps a single code point to its code page byte. Code points
// below 0x80 encode to themselves. The second result is false for code
// points the code page cannot represent.
func (t *EncodingTable) EncodeRune(r rune) (byte, bool) {
	if 0 <= r && r < 0x80 {
		return byte(r), true
	}
	b, ok := t.bytes[r]
	return b, ok
}

func (t *EncodingTable) String() string {
	return fmt.Sprintf("CP%d(runes=%d)", t.codepage, len(t.bytes))
}
