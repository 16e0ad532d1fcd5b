package otscript

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/scriptlang/ot"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/unicode/bidi"
)

// --- Test Suite Preparation ------------------------------------------------

type RegistryTestEnviron struct {
	suite.Suite
	reg *Registry
}

// listen for 'go test' command --> run test methods
func TestDefaultRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otscript")
	defer teardown()
	suite.Run(t, new(RegistryTestEnviron))
}

// run once, before test suite methods
func (env *RegistryTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("otscript").SetTraceLevel(tracing.LevelError)
	env.reg = Default()
	tracing.Select("otscript").SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

func (env *RegistryTestEnviron) TestSingleton() {
	env.Same(env.reg, Default(), "expected Default() to return the same registry")
	env.Equal(len(scriptTable), env.reg.Len(), "expected every table entry to be registered")
}

func (env *RegistryTestEnviron) TestTagRoundTrip() {
	for sc := range env.reg.All() {
		if IsSharedTag(sc.Tag) {
			continue
		}
		found, ok := env.reg.LookupTag(sc.Tag)
		env.Require().True(ok, "expected to find script for tag '%s'", sc.Tag)
		env.Equal(sc.Tag, found.Tag)
		env.Same(sc, found)
		found, ok = env.reg.Lookup(sc.Tag.String())
		env.Require().True(ok, "expected to find script for string tag '%s'", sc.Tag)
		env.Same(sc, found)
	}
}

func (env *RegistryTestEnviron) TestNameRoundTrip() {
	for sc := range env.reg.All() {
		found, ok := env.reg.LookupName(sc.FullName)
		env.Require().True(ok, "expected to find script %q by name", sc.FullName)
		env.Equal(sc.FullName, found.FullName)
	}
	_, ok := env.reg.LookupName("Klingon")
	env.False(ok, "expected unknown script name not to be found")
}

func (env *RegistryTestEnviron) TestShortTags() {
	lao, ok := env.reg.Lookup("lao")
	env.Require().True(ok, "expected to find Lao by 'lao'")
	padded, ok := env.reg.Lookup("lao ")
	env.Require().True(ok, "expected to find Lao by 'lao '")
	env.Same(lao, padded)
	env.Equal("lao ", lao.Tag.String())
	yi, ok := env.reg.Lookup("yi")
	env.Require().True(ok)
	env.Equal("Yi", yi.FullName)
	_, ok = env.reg.Lookup("latin")
	env.False(ok, "expected tags longer than 4 characters not to be found")
	_, ok = env.reg.Lookup("zzzz")
	env.False(ok, "expected unregistered tag not to be found")
}

func (env *RegistryTestEnviron) TestSharedKanaTag() {
	kana, ok := env.reg.Lookup("kana")
	env.Require().True(ok)
	env.Equal("Hiragana", kana.FullName, "expected first registrant to win tag lookup")
	hira, ok := env.reg.LookupName("Hiragana")
	env.Require().True(ok)
	kata, ok := env.reg.LookupName("Katakana")
	env.Require().True(ok)
	env.NotSame(hira, kata)
	env.Equal(ot.T("kana"), kata.Tag)
	env.Same(hira, kana)
	//
	all := slices.Collect(env.reg.All())
	env.Contains(all, kata, "expected Katakana to be enumerated")
	sc, ok := env.reg.LookupRune(0x30AB) // KATAKANA LETTER KA
	env.Require().True(ok)
	env.Same(kata, sc)
	sc, ok = env.reg.LookupRune(0x304B) // HIRAGANA LETTER KA
	env.Require().True(ok)
	env.Same(hira, sc)
}

func (env *RegistryTestEnviron) TestGreekAndCyrillic() {
	greek, ok := env.reg.LookupRune(913) // GREEK CAPITAL LETTER ALPHA
	env.Require().True(ok)
	env.Equal("Greek", greek.FullName)
	cyr, ok := env.reg.LookupRune(1103) // CYRILLIC SMALL LETTER YA
	env.Require().True(ok)
	env.Equal("Cyrillic", cyr.FullName)
	sc, ok := env.reg.LookupRune(0x1F00) // Greek Extended
	env.Require().True(ok)
	env.Same(greek, sc)
}

func (env *RegistryTestEnviron) TestCodePoints() {
	tests := []struct {
		r    rune
		name string
	}{
		{'A', "Latin"},
		{'ß', "Latin"},
		{'ש', "Hebrew"},
		{'ب', "Arabic"},
		{0xFE8F, "Arabic"}, // presentation form B
		{'क', "Devanagari"},
		{'ক', "Bengali"},
		{'中', "CJK Ideographic"},
		{0x3400, "CJK Ideographic"},
		{'Ԁ', "Cyrillic"},
		{'한', "Hangul"},
		{'ᄀ', "Hangul Jamo"},
		{0x1D400, "Mathematical Alphanumeric Symbols"},
		{0x10400, "Deseret"},
	}
	for _, tt := range tests {
		sc, ok := env.reg.LookupRune(tt.r)
		env.Require().True(ok, "expected to find script for %U", tt.r)
		env.Equal(tt.name, sc.FullName, "script for %U", tt.r)
	}
	_, ok := env.reg.LookupRune(0x2200) // MATHEMATICAL OPERATORS are not owned by any script
	env.False(ok)
	_, ok = env.reg.LookupRune(0x10FFFF)
	env.False(ok)
	_, ok = env.reg.LookupRune(-1)
	env.False(ok)
}

func (env *RegistryTestEnviron) TestFullNamesAreTrimmed() {
	for _, name := range []string{"Phoenician", "Bassa Vah", "Old Persian Cuneiform"} {
		_, ok := env.reg.LookupName(name)
		env.True(ok, "expected to find %q", name)
		_, ok = env.reg.LookupName(name + " ")
		env.False(ok, "expected no full name with trailing blank for %q", name)
	}
}

func (env *RegistryTestEnviron) TestVersion2ScriptsLoseIndexSlot() {
	bng2, ok := env.reg.Lookup("bng2")
	env.Require().True(ok)
	env.True(bng2.Covers('ক'), "expected Bengali v.2 to keep its Unicode block")
	sc, ok := env.reg.LookupRune('ক')
	env.Require().True(ok)
	env.Equal(ot.T("beng"), sc.Tag, "expected first registration to own the index slot")
}

func (env *RegistryTestEnviron) TestIndexAscending() {
	var last rune = -1
	for ur, sc := range env.reg.IndexedRanges() {
		env.Greater(ur.Start, last, "index not ascending at %v (%s)", ur, sc)
		last = ur.Start
	}
}

func (env *RegistryTestEnviron) TestEnumerationStable() {
	first := slices.Collect(env.reg.All())
	second := slices.Collect(env.reg.All())
	env.Equal(first, second)
	env.Equal("Adlam", first[0].FullName)
	env.Equal("Yi", first[len(first)-1].FullName)
	n := 0
	for range env.reg.All() {
		n++
		if n == 3 {
			break
		}
	}
	env.Equal(3, n, "expected iteration to stop early")
}

func (env *RegistryTestEnviron) TestWithPrefix() {
	scripts := env.reg.WithPrefix("guj")
	env.Require().Len(scripts, 2)
	env.Equal("Gujarati", scripts[0].FullName)
	env.Equal("Gujarati v.2", scripts[1].FullName)
	env.Empty(env.reg.WithPrefix("qqq"))
}

func (env *RegistryTestEnviron) TestDirection() {
	for name, dir := range map[string]bidi.Direction{
		"Latin":    bidi.LeftToRight,
		"Greek":    bidi.LeftToRight,
		"Hebrew":   bidi.RightToLeft,
		"Arabic":   bidi.RightToLeft,
		"Syriac":   bidi.RightToLeft,
		"Thaana":   bidi.RightToLeft,
		"Adlam":    bidi.Neutral, // no Unicode blocks registered
		"Hiragana": bidi.LeftToRight,
	} {
		sc, ok := env.reg.LookupName(name)
		env.Require().True(ok)
		env.Equal(dir, sc.Direction(), "direction of %s", name)
	}
}
