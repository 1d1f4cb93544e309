package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixtureMapping = `#
#    Name:     cp437_DOSLatinUS to Unicode table
#
0x41	0x0041	#LATIN CAPITAL LETTER A
0x80	0x00C7	#LATIN CAPITAL LETTER C WITH CEDILLA
0x81	0x00FC	#LATIN SMALL LETTER U WITH DIAERESIS
0xD5		#UNDEFINED
0xFF	0x00A0	#NO-BREAK SPACE
`

func TestParseMapping(t *testing.T) {
	hi, err := parseMapping(strings.NewReader(fixtureMapping))
	if err != nil {
		t.Fatal(err)
	}
	if hi[0x00] != 0x00C7 {
		t.Fatalf("0x80 should parse to U+00C7, got %U", hi[0x00])
	}
	if hi[0x01] != 0x00FC {
		t.Fatalf("0x81 should parse to U+00FC, got %U", hi[0x01])
	}
	if hi[0x55] != undefined {
		t.Fatalf("0xD5 should stay undefined, got %U", hi[0x55])
	}
	if hi[0x7F] != 0x00A0 {
		t.Fatalf("0xFF should parse to U+00A0, got %U", hi[0x7F])
	}
	if hi[0x02] != undefined {
		t.Fatalf("unlisted bytes should stay undefined, got %U", hi[0x02])
	}
}

func TestParseMappingRejectsBadRows(t *testing.T) {
	if _, err := parseMapping(strings.NewReader("0xZZ\t0x0041\n")); err == nil {
		t.Fatal("bad byte value should be rejected")
	}
	if _, err := parseMapping(strings.NewReader("0x123\t0x0041\n")); err == nil {
		t.Fatal("out-of-range byte value should be rejected")
	}
	if _, err := parseMapping(strings.NewReader("0x80\t0xNOPE\n")); err == nil {
		t.Fatal("bad scalar value should be rejected")
	}
}

func TestLoadPagesOverlayAndPatch(t *testing.T) {
	dir := t.TempDir()
	base := "0x80\t0x0041\n0x81\t0x0042\n0xD5\t0x0131\n"
	over := "0x80\t0x20AC\n0x81\t\t#UNDEFINED\n"
	if err := os.WriteFile(filepath.Join(dir, "BASE.TXT"), []byte(base), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "OVER.TXT"), []byte(over), 0o644); err != nil {
		t.Fatal(err)
	}
	srcs := []source{
		{codepage: 850, name: "base", file: "BASE.TXT"},
		{codepage: 858, name: "derived", base: 850, patch: map[byte]rune{0xD5: '€'}},
		{codepage: 874, name: "overlaid", file: "BASE.TXT", overlay: &overlay{file: "OVER.TXT", lo: 0x80, hi: 0x80}},
	}
	pages, err := loadPages(dir, srcs)
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	if pages[0].hi[0x55] != 0x0131 {
		t.Fatalf("base page should keep 0xD5=U+0131, got %U", pages[0].hi[0x55])
	}
	if pages[1].hi[0x55] != '€' {
		t.Fatalf("derived page should patch 0xD5 to €, got %U", pages[1].hi[0x55])
	}
	if pages[1].hi[0x00] != 0x0041 {
		t.Fatalf("derived page should keep unpatched bytes, got %U", pages[1].hi[0x00])
	}
	if pages[2].hi[0x00] != 0x20AC {
		t.Fatalf("overlay should replace 0x80, got %U", pages[2].hi[0x00])
	}
	if pages[2].hi[0x01] != 0x0042 {
		t.Fatalf("bytes outside the overlay range should stay, got %U", pages[2].hi[0x01])
	}
}

func TestLoadPagesMissingBase(t *testing.T) {
	srcs := []source{
		{codepage: 858, name: "derived", base: 850, patch: map[byte]rune{0xD5: '€'}},
	}
	if _, err := loadPages(t.TempDir(), srcs); err == nil {
		t.Fatal("deriving from an unloaded page should fail")
	}
}

func TestEmitGoFormat(t *testing.T) {
	var hi [128]rune
	for i := range hi {
		hi[i] = rune(0x2500 + i)
	}
	hi[1] = undefined
	hi[2] = undefined
	var buf bytes.Buffer
	emitGo(&buf, "oemcp", []page{{codepage: 437, name: "OEM United States", hi: hi}})
	out := buf.String()
	for _, want := range []string{
		"// Code generated by internal/gen; DO NOT EDIT.",
		"package oemcp",
		"// CP437 is the decoding table for code page 437 (OEM United States).",
		"// The table is incomplete: 2 bytes are undefined.",
		"var CP437 = NewDecodingTable(437, [128]rune{",
		"\t/* 0x80 */ 0x2500, 0xFFFD, 0xFFFD, 0x2503,",
		"\t/* 0xF8 */ 0x2578,",
		"var builtinTables = []*DecodingTable{",
		"\tCP437,",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("emitted source should contain %q:\n%s", want, out)
		}
	}
}

func TestWriteCommentWraps(t *testing.T) {
	var buf bytes.Buffer
	writeComment(&buf, "CP858 is the decoding table for code page 858 (Multilingual Latin 1 with euro).")
	want := "// CP858 is the decoding table for code page 858 (Multilingual Latin 1 with\n// euro).\n"
	if buf.String() != want {
		t.Fatalf("wrap mismatch: got %q, want %q", buf.String(), want)
	}
}

func TestWriteJSONTables(t *testing.T) {
	var hi [128]rune
	for i := range hi {
		hi[i] = undefined
	}
	hi[0] = 0x00C7
	path := filepath.Join(t.TempDir(), "tables.json")
	if err := writeJSONTables(path, []page{{codepage: 437, hi: hi}}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]jsonPage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	p, ok := decoded["437"]
	if !ok {
		t.Fatal("expected an entry for 437")
	}
	if p.Complete {
		t.Fatal("a page with gaps should not be marked complete")
	}
	if len(p.Mapping) != 128 {
		t.Fatalf("mapping should have 128 entries, has %d", len(p.Mapping))
	}
	if p.Mapping[0] == nil || *p.Mapping[0] != 0x00C7 {
		t.Fatalf("mapping[0] should be 199, got %v", p.Mapping[0])
	}
	if p.Mapping[1] != nil {
		t.Fatalf("mapping[1] should be null, got %d", *p.Mapping[1])
	}
}

func TestFetchSourcesSkipsExisting(t *testing.T) {
	dir := t.TempDir()
	for _, src := range sources {
		if src.file != "" {
			if err := os.WriteFile(filepath.Join(dir, src.file), []byte("#\n"), 0o644); err != nil {
				t.Fatal(err)
			}
		}
		if src.overlay != nil {
			if err := os.WriteFile(filepath.Join(dir, src.overlay.file), []byte("#\n"), 0o644); err != nil {
				t.Fatal(err)
			}
		}
	}
	n, err := fetchSources(dir)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("nothing should be fetched when every file exists, got %d", n)
	}
}
