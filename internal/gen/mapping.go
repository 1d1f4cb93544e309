package main

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// undefined marks bytes without a Unicode mapping, mirroring the root
// package convention.
const undefined rune = 0xFFFD

const mappingBaseURL = "https://unicode.org/Public/MAPPINGS/VENDORS/MICSFT"

// A source describes where one code page's mapping data comes from. A page
// is either parsed from a vendor mapping file, optionally overlaid with a
// byte range from a second file, or derived from another page with a patch.
type source struct {
	codepage uint16
	name     string
	extra    []string // extra doc comment lines for the emitted table
	file     string   // mapping file in the source directory
	url      string   // where --fetch downloads it from
	overlay  *overlay
	base     uint16        // derive from this page instead of a file
	patch    map[byte]rune // bytes changed relative to base
}

type overlay struct {
	file   string
	url    string
	lo, hi byte
}

// sources lists the shipped code pages, ascending. Derived pages must come
// after their base. CP720 is not listed: unicode.org has no mapping file
// for it, only ICU .ucm data, which is outside this parser's format.
var sources = []source{
	{codepage: 437, name: "OEM United States", file: "CP437.TXT", url: mappingBaseURL + "/PC/CP437.TXT"},
	{codepage: 737, name: "Greek", file: "CP737.TXT", url: mappingBaseURL + "/PC/CP737.TXT"},
	{codepage: 775, name: "Baltic Rim", file: "CP775.TXT", url: mappingBaseURL + "/PC/CP775.TXT"},
	{codepage: 850, name: "Multilingual Latin 1", file: "CP850.TXT", url: mappingBaseURL + "/PC/CP850.TXT"},
	{codepage: 852, name: "Latin 2", file: "CP852.TXT", url: mappingBaseURL + "/PC/CP852.TXT"},
	{codepage: 855, name: "Cyrillic", file: "CP855.TXT", url: mappingBaseURL + "/PC/CP855.TXT"},
	{codepage: 857, name: "Turkish", file: "CP857.TXT", url: mappingBaseURL + "/PC/CP857.TXT"},
	{codepage: 858, name: "Multilingual Latin 1 with euro", base: 850, patch: map[byte]rune{0xD5: '€'}},
	{codepage: 860, name: "Portuguese", file: "CP860.TXT", url: mappingBaseURL + "/PC/CP860.TXT"},
	{codepage: 861, name: "Icelandic", file: "CP861.TXT", url: mappingBaseURL + "/PC/CP861.TXT"},
	{codepage: 862, name: "Hebrew", file: "CP862.TXT", url: mappingBaseURL + "/PC/CP862.TXT"},
	{codepage: 863, name: "Canadian French", file: "CP863.TXT", url: mappingBaseURL + "/PC/CP863.TXT"},
	{codepage: 864, name: "Arabic", file: "CP864.TXT", url: mappingBaseURL + "/PC/CP864.TXT"},
	{codepage: 865, name: "Nordic", file: "CP865.TXT", url: mappingBaseURL + "/PC/CP865.TXT"},
	{codepage: 866, name: "Cyrillic Russian", file: "CP866.TXT", url: mappingBaseURL + "/PC/CP866.TXT"},
	{codepage: 869, name: "Greek 2", file: "CP869.TXT", url: mappingBaseURL + "/PC/CP869.TXT"},
	{
		codepage: 874,
		name:     "Thai",
		extra: []string{
			"The PC table is combined with the windows-874 additions in 0x80-0x9F.",
		},
		file: "CP874.TXT",
		url:  mappingBaseURL + "/PC/CP874.TXT",
		overlay: &overlay{
			file: "CP874-WIN.TXT",
			url:  mappingBaseURL + "/WINDOWS/CP874.TXT",
			lo:   0x80,
			hi:   0x9F,
		},
	},
}

// A page is one loaded code page, ready for emission.
type page struct {
	codepage uint16
	name     string
	extra    []string
	hi       [128]rune
}

func (p *page) undefinedCount() int {
	n := 0
	for _, r := range p.hi {
		if r == undefined {
			n++
		}
	}
	return n
}

// loadPages resolves every source against the mapping files in dir and
// returns the pages ascending by code page.
func loadPages(dir string, srcs []source) ([]page, error) {
	loaded := make(map[uint16][128]rune, len(srcs))
	pages := make([]page, 0, len(srcs))
	for _, src := range srcs {
		var hi [128]rune
		switch {
		case src.file != "":
			m, err := loadMappingFile(filepath.Join(dir, src.file))
			if err != nil {
				return nil, err
			}
			hi = m
			if src.overlay != nil {
				o, err := loadMappingFile(filepath.Join(dir, src.overlay.file))
				if err != nil {
					return nil, err
				}
				for b := int(src.overlay.lo); b <= int(src.overlay.hi); b++ {
					hi[b-0x80] = o[b-0x80]
				}
			}
		case src.base != 0:
			base, ok := loaded[src.base]
			if !ok {
				return nil, fmt.Errorf("code page %d derives from %d, which is not loaded yet", src.codepage, src.base)
			}
			hi = base
			for b, r := range src.patch {
				if b < 0x80 {
					return nil, fmt.Errorf("code page %d patches ASCII byte 0x%02X", src.codepage, b)
				}
				hi[b-0x80] = r
			}
		default:
			return nil, fmt.Errorf("code page %d has neither a mapping file nor a base page", src.codepage)
		}
		loaded[src.codepage] = hi
		pages = append(pages, page{codepage: src.codepage, name: src.name, extra: src.extra, hi: hi})
	}
	sort.Slice(pages, func(i, j int) bool {
		return pages[i].codepage < pages[j].codepage
	})
	return pages, nil
}

func loadMappingFile(path string) ([128]rune, error) {
	f, err := os.Open(path)
	if err != nil {
		return [128]rune{}, err
	}
	defer f.Close()
	hi, err := parseMapping(f)
	if err != nil {
		return hi, fmt.Errorf("%s: %v", filepath.Base(path), err)
	}
	return hi, nil
}

// parseMapping reads a unicode.org mapping file and returns the high half.
// Rows look like
//
//	0x80	0x00C7	#LATIN CAPITAL LETTER C WITH CEDILLA
//	0xD5		#UNDEFINED
//
// Comment lines and bytes below 0x80 are skipped; rows without a scalar
// column stay undefined.
func parseMapping(r io.Reader) ([128]rune, error) {
	var hi [128]rune
	for i := range hi {
		hi[i] = undefined
	}
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if !strings.HasPrefix(fields[0], "0x") {
			return hi, fmt.Errorf("line %d: bad byte value %q", lineno, fields[0])
		}
		b, err := strconv.ParseUint(fields[0][2:], 16, 8)
		if err != nil {
			return hi, fmt.Errorf("line %d: bad byte value %q", lineno, fields[0])
		}
		if b < 0x80 {
			continue
		}
		if len(fields) < 2 || !strings.HasPrefix(fields[1], "0x") {
			continue // undefined byte
		}
		cp, err := strconv.ParseUint(fields[1][2:], 16, 32)
		if err != nil {
			return hi, fmt.Errorf("line %d: bad scalar value %q", lineno, fields[1])
		}
		hi[b-0x80] = rune(cp)
	}
	return hi, scanner.Err()
}

// fetchSources downloads missing mapping files into dir. Existing files are
// left untouched, so re-runs stay deterministic and offline.
func fetchSources(dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}
	fetched := 0
	for _, src := range sources {
		files := make(map[string]string, 2)
		if src.file != "" {
			files[src.file] = src.url
		}
		if src.overlay != nil {
			files[src.overlay.file] = src.overlay.url
		}
		for file, url := range files {
			path := filepath.Join(dir, file)
			if _, err := os.Stat(path); err == nil {
				continue
			}
			data, err := fetch(url)
			if err != nil {
				return fetched, err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fetched, err
			}
			fetched++
		}
	}
	return fetched, nil
}

func fetch(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
