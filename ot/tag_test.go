package ot

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otscript")
	defer teardown()
	//
	tag := Tag(0x6c61746e)
	if tag.String() != "latn" {
		t.Errorf("expected tag 0x6c61746e to be 'latn', is %s", tag.String())
	}
	tag = MakeTag([]byte("latn"))
	if tag.String() != "latn" {
		t.Errorf("expected tag MakeTag(latn) to be 'latn', is %s", tag.String())
	}
	tag = T("latn")
	if tag.String() != "latn" {
		t.Errorf("expected tag T(latn) to be 'latn', is %s", tag.String())
	}
}

func TestTagPadding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otscript")
	defer teardown()
	//
	tests := []struct {
		in      string
		padded  string
		trimmed string
	}{
		{"lao", "lao ", "lao"},
		{"yi", "yi  ", "yi"},
		{"ABA", "ABA ", "ABA"},
		{"ABA ", "ABA ", "ABA"},
		{"DFLT", "DFLT", "DFLT"},
		{"", "    ", ""},
	}
	for _, tt := range tests {
		tag := T(tt.in)
		if tag.String() != tt.padded {
			t.Errorf("T(%q) = %q; want %q", tt.in, tag.String(), tt.padded)
		}
		if tag.Trimmed() != tt.trimmed {
			t.Errorf("T(%q).Trimmed() = %q; want %q", tt.in, tag.Trimmed(), tt.trimmed)
		}
	}
	if T("ABA") != T("ABA ") {
		t.Errorf("expected 'ABA' and 'ABA ' to canonicalize to the same tag")
	}
}

func TestParseTag(t *testing.T) {
	if _, ok := ParseTag("latin"); ok {
		t.Errorf("expected ParseTag to refuse tags longer than 4 bytes")
	}
	tag, ok := ParseTag("nko")
	if !ok || tag != T("nko ") {
		t.Errorf("expected ParseTag(nko) to be 'nko ', is %q", tag)
	}
	if MakeTag([]byte("ko")).String() != "\x00\x00ko" {
		t.Errorf("expected MakeTag to left-pad with zero bytes")
	}
	if DFLT.String() != "DFLT" {
		t.Errorf("expected DFLT to be 'DFLT', is %s", DFLT)
	}
}
