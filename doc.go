/*
Package oemcp converts between Unicode text and single-byte OEM code pages.

OEM code pages are the legacy DOS encodings (CP437, CP850, CP874, ...) where
bytes 0x00-0x7F are plain ASCII and bytes 0x80-0xFF carry a code-page-specific
repertoire of accented letters, box-drawing symbols and non-Latin scripts.
Each supported code page is described by a DecodingTable holding the 128
high-half code points, some of which may be undefined, and an EncodingTable
obtained by inverting it.

Decoding offers three disciplines: Decode fails on undefined bytes (all or
nothing), DecodeLossy substitutes U+FFFD, and MustDecode skips the undefined
checks for tables known to be complete. Encoding offers Encode, which fails
on characters outside the code page, and EncodeLossy, which substitutes '?'.

	table, ok := oemcp.LookupDecoding(437)   // or use oemcp.CP437 directly
	if !ok { ... }
	s := table.DecodeLossy([]byte{0xFB, 0xAC, 0x3D, 0xAB})   // "√¼=½"

	enc, ok := oemcp.LookupEncoding(437)
	if !ok { ... }
	b, ok := enc.Encode("π≈22/7")   // [0xE3 0xF7 '2' '2' '/' '7'], true

Tables for seventeen code pages are compiled in; see tables_gen.go and the
generator in internal/gen. The mapping data follows the unicode.org vendor
tables (https://unicode.org/Public/MAPPINGS/VENDORS/MICSFT/), with CP874
carrying the windows-874 extensions in 0x80-0x9F.

Package charset wraps the tables as golang.org/x/text encoding.Encoding
values for use with streams and transformers.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package oemcp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'oemcp'
func tracer() tracing.Trace {
	return tracing.Select("oemcp")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
