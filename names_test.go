package oemcp

import (
	"reflect"
	"testing"
)

func TestResolveCodepage(t *testing.T) {
	cases := []struct {
		name string
		want uint16
	}{
		{"IBM437", 437},
		{"cp437", 437},
		{"437", 437},
		{"OEM-US", 437},
		{"oem us", 437},
		{"IBM 850", 850},
		{"ibm_850", 850},
		{"windows-874", 874},
		{"DOS-862", 862},
		{"PC-Multilingual-850+euro", 858},
	}
	for _, c := range cases {
		cp, ok := ResolveCodepage(c.name)
		if !ok || cp != c.want {
			t.Fatalf("%q should resolve to %d, got %d ok=%v", c.name, c.want, cp, ok)
		}
	}
}

func TestResolveCodepageAllAliases(t *testing.T) {
	for cp, names := range codepageAliases {
		for _, name := range names {
			got, ok := ResolveCodepage(name)
			if !ok || got != cp {
				t.Fatalf("%q should resolve to %d, got %d ok=%v", name, cp, got, ok)
			}
		}
	}
}

func TestResolveCodepageUnknown(t *testing.T) {
	for _, name := range []string{"", "latin1", "utf-8", "cp720", "ibm"} {
		if cp, ok := ResolveCodepage(name); ok {
			t.Fatalf("%q should not resolve, got %d", name, cp)
		}
	}
}

func TestResolvedTablesExist(t *testing.T) {
	cp, ok := ResolveCodepage("OEM-US")
	if !ok {
		t.Fatal("OEM-US should resolve")
	}
	if _, ok := LookupDecoding(cp); !ok {
		t.Fatalf("resolved code page %d should have a decoding table", cp)
	}
}

func TestCodepageNames(t *testing.T) {
	if got := CodepageNames("cp43"); !reflect.DeepEqual(got, []string{"cp437"}) {
		t.Fatalf("prefix search mismatch: got %v, want [cp437]", got)
	}
	got := CodepageNames("ibm86")
	want := []string{"ibm860", "ibm861", "ibm862", "ibm863", "ibm864", "ibm865", "ibm866", "ibm869"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("prefix search mismatch: got %v, want %v", got, want)
	}
	if got := CodepageNames("xyz"); len(got) != 0 {
		t.Fatalf("unknown prefix should match nothing, got %v", got)
	}
}
