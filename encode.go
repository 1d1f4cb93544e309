package oemcp

// Substitute is the byte written by lossy encoding for characters the code
// page cannot represent.
const Substitute byte = '?'

// Encode converts a string to code page bytes. It fails on the first
// character the code page cannot represent; no partial result is returned.
// Input is iterated by code point, and ill-formed UTF-8 yields U+FFFD,
// which no OEM code page maps.
//
// Example:
//
//	enc, _ := LookupEncoding(437)
//	enc.Encode("π≈22/7")   => [0xE3 0xF7 '2' '2' '/' '7'], true
//	enc.Encode("½+¼=¾")    => nil, false ('¾' is not in CP437)
func (t *EncodingTable) Encode(s string) ([]byte, bool) {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		if r < 0x80 {
			buf = append(buf, byte(r))
			continue
		}
		b, ok := t.bytes[r]
		if !ok {
			return nil, false
		}
		buf = append(buf, b)
	}
	return buf, true
}

// EncodeLossy converts a string to code page bytes, substituting '?' for
// characters the code page cannot represent. It never fails.
//
// Example:
//
//	enc, _ := LookupEncoding(437)
//	enc.EncodeLossy("½+¼=¾")   => [0xAB '+' 0xAC '=' '?']
func (t *EncodingTable) EncodeLossy(s string) []byte {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		if r < 0x80 {
			buf = append(buf, byte(r))
			continue
		}
		b, ok := t.bytes[r]
		if !ok {
			b = Substitute
		}
		buf = append(buf, b)
	}
	return buf
}
