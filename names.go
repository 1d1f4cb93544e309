package oemcp

import (
	"sort"
	"strings"
	"sync"

	"github.com/derekparker/trie"
)

// codepageAliases lists the accepted names per code page, IANA charset names
// first where they exist. Matching is case-insensitive and ignores '-', '_'
// and spaces.
var codepageAliases = map[uint16][]string{
	437: {"IBM437", "cp437", "437", "csPC8CodePage437", "OEM-US"},
	737: {"IBM737", "cp737", "737"},
	775: {"IBM775", "cp775", "775", "csPC775Baltic"},
	850: {"IBM850", "cp850", "850", "csPC850Multilingual"},
	852: {"IBM852", "cp852", "852", "csPCp852"},
	855: {"IBM855", "cp855", "855", "csIBM855"},
	857: {"IBM857", "cp857", "857", "csIBM857"},
	858: {"IBM00858", "cp858", "858", "CCSID00858", "CP00858", "PC-Multilingual-850+euro"},
	860: {"IBM860", "cp860", "860", "csIBM860"},
	861: {"IBM861", "cp861", "861", "cp-is", "csIBM861"},
	862: {"IBM862", "cp862", "862", "csPC862LatinHebrew", "DOS-862"},
	863: {"IBM863", "cp863", "863", "csIBM863"},
	864: {"IBM864", "cp864", "864", "csIBM864"},
	865: {"IBM865", "cp865", "865", "csIBM865"},
	866: {"IBM866", "cp866", "866", "csIBM866"},
	869: {"IBM869", "cp869", "869", "cp-gr", "csIBM869"},
	874: {"windows-874", "cp874", "874", "IBM874", "DOS-874", "cswindows874"},
}

// nameIndex is the alias lookup, a prefix trie over normalized names built
// lazily once, like the registry.
var nameIndex struct {
	once sync.Once
	trie *trie.Trie
}

func initNameIndex() {
	nameIndex.trie = trie.New()
	aliases := 0
	for _, t := range builtinTables {
		for _, name := range codepageAliases[t.codepage] {
			nameIndex.trie.Add(normalizeCodepageName(name), t.codepage)
			aliases++
		}
	}
	tracer().Debugf("code page name index built: %d aliases for %d code pages",
		aliases, len(builtinTables))
}

// normalizeCodepageName lowercases a name and strips separators, so that
// "IBM 437", "ibm-437" and "ibm_437" all match.
func normalizeCodepageName(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		switch {
		case r == '-' || r == '_' || r == ' ':
		case 'A' <= r && r <= 'Z':
			sb.WriteRune(r + ('a' - 'A'))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// ResolveCodepage maps a code page name or alias to its number.
//
// Example:
//
//	ResolveCodepage("IBM437")        => 437, true
//	ResolveCodepage("oem-us")        => 437, true
//	ResolveCodepage("windows-874")   => 874, true
//	ResolveCodepage("latin1")        => 0, false
func ResolveCodepage(name string) (uint16, bool) {
	nameIndex.once.Do(initNameIndex)
	node, found := nameIndex.trie.Find(normalizeCodepageName(name))
	if !found {
		return 0, false
	}
	cp, ok := node.Meta().(uint16)
	return cp, ok
}

// CodepageNames returns the known aliases starting with prefix, normalized
// and sorted. The empty prefix lists every alias.
func CodepageNames(prefix string) []string {
	nameIndex.once.Do(initNameIndex)
	names := nameIndex.trie.PrefixSearch(normalizeCodepageName(prefix))
	sort.Strings(names)
	return names
}
