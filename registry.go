package oemcp

import (
	"sort"
	"sync"
)

// registry resolves numeric code page identifiers to table pairs. Both maps
// are built together on first use and never change afterwards, so lookups
// need no locking.
var registry struct {
	once sync.Once
	dec  map[uint16]*DecodingTable
	enc  map[uint16]*EncodingTable
}

func initRegistry() {
	registry.dec = make(map[uint16]*DecodingTable, len(builtinTables))
	registry.enc = make(map[uint16]*EncodingTable, len(builtinTables))
	for _, t := range builtinTables {
		registry.dec[t.codepage] = t
		registry.enc[t.codepage] = NewEncodingTable(t)
	}
	tracer().Infof("code page registry built: %d decoding and %d encoding tables",
		len(registry.dec), len(registry.enc))
}

// LookupDecoding returns the decoding table registered for a code page
// number, e.g. 437 or 874. Unsupported code pages yield false, never a
// panic; callers decide how to handle them.
func LookupDecoding(codepage uint16) (*DecodingTable, bool) {
	registry.once.Do(initRegistry)
	t, ok := registry.dec[codepage]
	return t, ok
}

// LookupEncoding returns the encoding table registered for a code page
// number. Unsupported code pages yield false.
func LookupEncoding(codepage uint16) (*EncodingTable, bool) {
	registry.once.Do(initRegistry)
	t, ok := registry.enc[codepage]
	return t, ok
}

// Codepages lists the registered code page numbers in ascending order.
func Codepages() []uint16 {
	registry.once.Do(initRegistry)
	cps := make([]uint16, 0, len(registry.dec))
	for cp := range registry.dec {
		cps = append(cps, cp)
	}
	sort.Slice(cps, func(i, j int) bool {
		return cps[i] < cps[j]
	})
	return cps
}
