package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const headerNote = "Mapping data from the unicode.org vendor tables, " +
	"https://unicode.org/Public/MAPPINGS/VENDORS/MICSFT/. CP874 is the PC " +
	"table combined with windows-874 in 0x80-0x9F, CP858 is CP850 with 0xD5 " +
	"changed to the euro sign. Entries of 0xFFFD mark undefined bytes."

// writeGoTables emits the generated Go source with one DecodingTable per
// page and the registry seed slice.
func writeGoTables(path, pkg string, pages []page) error {
	var buf bytes.Buffer
	emitGo(&buf, pkg, pages)
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func emitGo(w io.Writer, pkg string, pages []page) {
	fmt.Fprintln(w, "// Code generated by internal/gen; DO NOT EDIT.")
	fmt.Fprintln(w, "//")
	writeComment(w, headerNote)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "package %s\n", pkg)
	for _, p := range pages {
		fmt.Fprintln(w)
		writeComment(w, fmt.Sprintf("CP%d is the decoding table for code page %d (%s).",
			p.codepage, p.codepage, p.name))
		for _, line := range p.extra {
			writeComment(w, line)
		}
		if n := p.undefinedCount(); n > 0 {
			writeComment(w, fmt.Sprintf("The table is incomplete: %d bytes are undefined.", n))
		}
		fmt.Fprintf(w, "var CP%d = NewDecodingTable(%d, [128]rune{\n", p.codepage, p.codepage)
		for row := 0; row < 16; row++ {
			fmt.Fprintf(w, "\t/* 0x%02X */", 0x80+8*row)
			for col := 0; col < 8; col++ {
				fmt.Fprintf(w, " 0x%04X,", p.hi[8*row+col])
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, "})")
	}
	fmt.Fprintln(w)
	writeComment(w, "builtinTables seeds the registry, ascending by code page.")
	fmt.Fprintln(w, "var builtinTables = []*DecodingTable{")
	for i, p := range pages {
		if i%9 == 0 {
			fmt.Fprint(w, "\t")
		} else {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "CP%d,", p.codepage)
		if i%9 == 8 || i == len(pages)-1 {
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w, "}")
}

// writeComment writes text as // lines, wrapped near 77 columns.
func writeComment(w io.Writer, text string) {
	const width = 77
	line := "//"
	for _, word := range strings.Fields(text) {
		if line != "//" && len(line)+1+len(word) > width {
			fmt.Fprintln(w, line)
			line = "//"
		}
		line += " " + word
	}
	if line != "//" {
		fmt.Fprintln(w, line)
	}
}

// jsonPage is the JSON shape of one code page: the 128 high-half scalars,
// null for undefined bytes.
type jsonPage struct {
	Complete bool      `json:"complete"`
	Mapping  []*uint32 `json:"mapping"`
}

func writeJSONTables(path string, pages []page) error {
	out := make(map[string]jsonPage, len(pages))
	for _, p := range pages {
		jp := jsonPage{
			Complete: p.undefinedCount() == 0,
			Mapping:  make([]*uint32, len(p.hi)),
		}
		for i, r := range p.hi {
			if r == undefined {
				continue
			}
			cp := uint32(r)
			jp.Mapping[i] = &cp
		}
		out[strconv.Itoa(int(p.codepage))] = jp
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
