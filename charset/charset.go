/*
Package charset adapts the OEM code page tables to the interfaces of
golang.org/x/text/encoding, for use with transform readers and writers.

	enc, _ := charset.ByName("cp437")
	r := transform.NewReader(file, enc.NewDecoder())
*/
package charset

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/npillmayer/oemcp"
)

// An Encoding pairs the decoding and encoding table of one code page. It
// satisfies golang.org/x/text/encoding.Encoding.
type Encoding struct {
	name string
	dec  *oemcp.DecodingTable
	enc  *oemcp.EncodingTable
}

// For returns the Encoding for a code page number, e.g. 437 or 874.
func For(codepage uint16) (*Encoding, bool) {
	dec, ok := oemcp.LookupDecoding(codepage)
	if !ok {
		return nil, false
	}
	enc, ok := oemcp.LookupEncoding(codepage)
	if !ok {
		return nil, false
	}
	return &Encoding{
		name: fmt.Sprintf("cp%d", codepage),
		dec:  dec,
		enc:  enc,
	}, true
}

// ByName returns the Encoding for a code page name or alias, e.g. "IBM437",
// "OEM-US" or "windows-874".
func ByName(name string) (*Encoding, bool) {
	cp, ok := oemcp.ResolveCodepage(name)
	if !ok {
		return nil, false
	}
	return For(cp)
}

// Codepage returns the numeric code page identifier.
func (e *Encoding) Codepage() uint16 {
	return e.dec.Codepage()
}

// Name returns the canonical name, e.g. "cp437".
func (e *Encoding) Name() string {
	return e.name
}

func (e *Encoding) String() string {
	return e.name
}

// NewDecoder returns a transformer from code page bytes to UTF-8. Undefined
// bytes decode to U+FFFD, per the x/text convention for decoders.
func (e *Encoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: decoder{table: e.dec}}
}

// NewEncoder returns a transformer from UTF-8 to code page bytes.
// Unsupported characters abort with a RepertoireError; wrap the encoder in
// encoding.ReplaceUnsupported to substitute '?' instead.
func (e *Encoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: encoder{table: e.enc}}
}

// A RepertoireError reports a character outside the code page repertoire.
// It carries the substitution byte, which encoding.ReplaceUnsupported picks
// up through the Replacement method.
type RepertoireError byte

func (r RepertoireError) Error() string {
	return "charset: rune not supported by code page"
}

// Replacement returns the substitution byte for unsupported characters.
func (r RepertoireError) Replacement() byte {
	return byte(r)
}

type decoder struct {
	transform.NopResetter
	table *oemcp.DecodingTable
}

func (d decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for i, c := range src {
		if c < utf8.RuneSelf {
			if nDst >= len(dst) {
				err = transform.ErrShortDst
				break
			}
			dst[nDst] = c
			nDst++
			nSrc = i + 1
			continue
		}
		r, _ := d.table.DecodeByte(c) // undefined entries carry U+FFFD
		if nDst+utf8.RuneLen(r) > len(dst) {
			err = transform.ErrShortDst
			break
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc = i + 1
	}
	return nDst, nSrc, err
}

type encoder struct {
	transform.NopResetter
	table *oemcp.EncodingTable
}

func (e encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if nDst >= len(dst) {
			err = transform.ErrShortDst
			break
		}
		r := rune(src[nSrc])
		size := 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRune(src[nSrc:])
			if size == 1 {
				// Invalid UTF-8, or a rune split across the buffer end.
				if !atEOF && !utf8.FullRune(src[nSrc:]) {
					err = transform.ErrShortSrc
				} else {
					err = RepertoireError(oemcp.Substitute)
				}
				break
			}
		}
		b, ok := e.table.EncodeRune(r)
		if !ok {
			// nSrc stays on the offending rune, so that
			// encoding.ReplaceUnsupported can substitute it.
			err = RepertoireError(oemcp.Substitute)
			break
		}
		dst[nDst] = b
		nDst++
		nSrc += size
	}
	return nDst, nSrc, err
}
