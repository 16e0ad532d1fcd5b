package otscript

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/scriptlang/ot"
)

// adapted from harfbuzz/test/api/test-ot-tag.c Copyright © 2011  Google, Inc. Behdad Esfahbod

func assertEqualTag(t *testing.T, t1, t2 ot.Tag) {
	t.Helper()
	if t1 != t2 {
		t.Fatalf("unexpected '%s' != '%s'", t1, t2)
	}
}

func testSimpleTags(t *testing.T, s string, script language.Script) {
	t.Helper()
	tags := TagsForScript(script)
	if len(tags) == 0 {
		t.Fatalf("expected tags for script %v", script)
	}
	assertEqualTag(t, tags[0], ot.T(s))
}

func testIndicTags(t *testing.T, s1, s2, s3 string, script language.Script) {
	t.Helper()
	tags := TagsForScript(script)
	if len(tags) != 3 {
		t.Fatalf("expected 3 tags, have %d", len(tags))
	}
	assertEqualTag(t, tags[0], ot.T(s1))
	assertEqualTag(t, tags[1], ot.T(s2))
	assertEqualTag(t, tags[2], ot.T(s3))
}

func TestScriptTagsDegenerate(t *testing.T) {
	// HIRAGANA and KATAKANA both map to 'kana'
	testSimpleTags(t, "kana", language.Katakana)
	testSimpleTags(t, "kana", language.Hiragana)
	testSimpleTags(t, "DFLT", 0)
}

func TestScriptTagsSimple(t *testing.T) {
	testSimpleTags(t, "latn", language.Latin)
	testSimpleTags(t, "grek", language.Greek)
	testSimpleTags(t, "arab", language.Arabic)
	testSimpleTags(t, "math", language.Mathematical_notation)
	// spaces are preserved
	testSimpleTags(t, "lao ", language.Lao)
	testSimpleTags(t, "yi  ", language.Yi)
	testSimpleTags(t, "nko ", language.Nko)
	testSimpleTags(t, "vai ", language.Vai)
}

func TestScriptTagsIndic(t *testing.T) {
	testIndicTags(t, "bng3", "bng2", "beng", language.Bengali)
	testIndicTags(t, "dev3", "dev2", "deva", language.Devanagari)
	testIndicTags(t, "gjr3", "gjr2", "gujr", language.Gujarati)
	testIndicTags(t, "gur3", "gur2", "guru", language.Gurmukhi)
	testIndicTags(t, "knd3", "knd2", "knda", language.Kannada)
	testIndicTags(t, "mlm3", "mlm2", "mlym", language.Malayalam)
	testIndicTags(t, "ory3", "ory2", "orya", language.Oriya)
	testIndicTags(t, "tml3", "tml2", "taml", language.Tamil)
	testIndicTags(t, "tel3", "tel2", "telu", language.Telugu)
}

func TestScriptTagsMyanmar(t *testing.T) {
	tags := TagsForScript(language.Myanmar)
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags for Myanmar, have %d", len(tags))
	}
	assertEqualTag(t, tags[0], ot.T("mym2"))
	assertEqualTag(t, tags[1], ot.T("mymr"))
}

func TestForISO(t *testing.T) {
	reg := Default()
	tests := []struct {
		script language.Script
		name   string
	}{
		{language.Latin, "Latin"},
		{language.Katakana, "Hiragana"},
		{language.Devanagari, "Devanagari v.2"},
		{language.Myanmar, "Myanmar v.2"},
		{language.Lao, "Lao"},
		{language.Mathematical_notation, "Mathematical Alphanumeric Symbols"},
	}
	for _, tt := range tests {
		sc, ok := reg.ForISO(tt.script)
		if !ok {
			t.Fatalf("expected to find script %q", tt.name)
		}
		if sc.FullName != tt.name {
			t.Errorf("expected %q, got %q", tt.name, sc.FullName)
		}
	}
	if sc, ok := reg.ForISO(0); !ok || sc.FullName != "Default" {
		t.Errorf("expected zero script to resolve to 'Default', got %v", sc)
	}
}

func TestForRuneISO(t *testing.T) {
	reg := Default()
	sc, ok := reg.ForRuneISO('Ж')
	if !ok || sc.FullName != "Cyrillic" {
		t.Errorf("expected 'Ж' to be Cyrillic, got %v", sc)
	}
	if _, ok := reg.ForRuneISO('1'); ok {
		t.Errorf("expected digits (script Common) not to resolve to a script")
	}
}
