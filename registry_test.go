package oemcp

import (
	"reflect"
	"testing"
)

func TestLookupCoverage(t *testing.T) {
	for _, cp := range []uint16{437, 737, 775, 850, 852, 855, 857, 862, 866, 874} {
		if _, ok := LookupDecoding(cp); !ok {
			t.Fatalf("decoding table for CP%d should be registered", cp)
		}
		if _, ok := LookupEncoding(cp); !ok {
			t.Fatalf("encoding table for CP%d should be registered", cp)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, cp := range []uint16{0, 720, 1252} {
		if _, ok := LookupDecoding(cp); ok {
			t.Fatalf("CP%d should not be registered", cp)
		}
		if _, ok := LookupEncoding(cp); ok {
			t.Fatalf("CP%d should not be registered", cp)
		}
	}
}

func TestCodepagesSorted(t *testing.T) {
	want := []uint16{437, 737, 775, 850, 852, 855, 857, 858, 860, 861, 862, 863, 864, 865, 866, 869, 874}
	if got := Codepages(); !reflect.DeepEqual(got, want) {
		t.Fatalf("code page list mismatch: got %v, want %v", got, want)
	}
}

func TestUndefinedCounts(t *testing.T) {
	want := map[uint16]int{857: 3, 864: 6, 869: 9, 874: 31}
	for _, tab := range builtinTables {
		n := 0
		for b := 0x80; b <= 0xFF; b++ {
			if _, ok := tab.DecodeByte(byte(b)); !ok {
				n++
			}
		}
		if n != want[tab.Codepage()] {
			t.Fatalf("CP%d should have %d undefined bytes, has %d", tab.Codepage(), want[tab.Codepage()], n)
		}
	}
}

// Every defined byte must survive decode followed by encode. This holds
// because no shipped code page maps two bytes to the same code point.
func TestRoundTripAllTables(t *testing.T) {
	for _, tab := range builtinTables {
		enc, ok := LookupEncoding(tab.Codepage())
		if !ok {
			t.Fatalf("encoding table for CP%d should be registered", tab.Codepage())
		}
		for b := 0; b <= 0xFF; b++ {
			r, ok := tab.DecodeByte(byte(b))
			if !ok {
				continue
			}
			back, ok := enc.EncodeRune(r)
			if !ok || back != byte(b) {
				t.Fatalf("CP%d: 0x%02X decodes to %U but encodes back to 0x%02X ok=%v",
					tab.Codepage(), b, r, back, ok)
			}
		}
	}
}

func TestEuroVariant(t *testing.T) {
	for b := 0x80; b <= 0xFF; b++ {
		r850, _ := CP850.DecodeByte(byte(b))
		r858, _ := CP858.DecodeByte(byte(b))
		if b == 0xD5 {
			if r850 != 'ı' || r858 != '€' {
				t.Fatalf("0xD5 should be ı in CP850 and € in CP858, is %q and %q", r850, r858)
			}
			continue
		}
		if r850 != r858 {
			t.Fatalf("CP850 and CP858 should agree at 0x%02X, got %q and %q", b, r850, r858)
		}
	}
}

func TestSpotValues(t *testing.T) {
	spots := []struct {
		cp   uint16
		b    byte
		want rune
	}{
		{437, 0x82, 'é'},
		{437, 0x9D, '¥'},
		{437, 0xE1, 'ß'},
		{437, 0xFB, '√'},
		{737, 0x9B, 'δ'},
		{775, 0x8D, 'Ź'},
		{850, 0x9E, '×'},
		{850, 0xD0, 'ð'},
		{850, 0xF3, '¾'},
		{852, 0xE6, 'Š'},
		{855, 0xEF, '№'},
		{857, 0xA7, 'ğ'},
		{858, 0xD5, '€'},
		{860, 0x84, 'ã'},
		{861, 0x8B, 'Ð'},
		{862, 0x80, 'א'},
		{863, 0x8D, '‗'},
		{864, 0xAC, '،'},
		{865, 0xAF, '¤'},
		{866, 0xF2, 'Є'},
		{869, 0x86, 'Ά'},
		{874, 0x80, '€'},
		{874, 0xA1, 'ก'},
		{874, 0xDF, '฿'},
	}
	for _, s := range spots {
		tab, ok := LookupDecoding(s.cp)
		if !ok {
			t.Fatalf("CP%d should be registered", s.cp)
		}
		r, ok := tab.DecodeByte(s.b)
		if !ok || r != s.want {
			t.Fatalf("CP%d 0x%02X should be %q, is %q", s.cp, s.b, s.want, r)
		}
	}
}
