package otlang

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/scriptlang/ot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"
)

// --- Test Suite Preparation ------------------------------------------------

type LangSysTestEnviron struct {
	suite.Suite
	reg *Registry
}

// listen for 'go test' command --> run test methods
func TestDefaultRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otlang")
	defer teardown()
	suite.Run(t, new(LangSysTestEnviron))
}

// run once, before test suite methods
func (env *LangSysTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("otlang").SetTraceLevel(tracing.LevelError)
	env.reg = Default()
	tracing.Select("otlang").SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

func (env *LangSysTestEnviron) TestSingleton() {
	env.Same(env.reg, Default())
	env.Equal(len(languageTable), env.reg.Len())
}

func (env *LangSysTestEnviron) TestPadding() {
	aba, ok := env.reg.Lookup("ABA")
	env.Require().True(ok, "expected to find 'ABA'")
	padded, ok := env.reg.Lookup("ABA ")
	env.Require().True(ok, "expected to find 'ABA '")
	env.Same(aba, padded)
	env.Equal("Abaza", aba.Name)
	env.Equal(ot.T("ABA"), aba.Tag)
	ho, ok := env.reg.Lookup("HO")
	env.Require().True(ok)
	env.Equal("Ho", ho.Name)
	_, ok = env.reg.Lookup("ABAZA")
	env.False(ok, "expected tags longer than 4 characters not to be found")
	_, ok = env.reg.Lookup("aba")
	env.False(ok, "expected tags to be case-sensitive")
}

func (env *LangSysTestEnviron) TestTagRoundTrip() {
	for ls := range env.reg.All() {
		found, ok := env.reg.LookupTag(ls.Tag)
		env.Require().True(ok, "expected to find language system '%s'", ls.Tag)
		env.Same(ls, found)
	}
}

func (env *LangSysTestEnviron) TestISOCodes() {
	altai, ok := env.reg.Lookup("ALT")
	env.Require().True(ok)
	env.Equal([]string{"atv", " alt"}, altai.ISOCodes(), "expected codes to be split only")
	dhv, ok := env.reg.Lookup("DHV")
	env.Require().True(ok)
	env.Equal([]string{"(deprecated)\tdiv"}, dhv.ISOCodes())
}

func (env *LangSysTestEnviron) TestForLanguage() {
	tests := []struct {
		bcp47 string
		tags  []string
	}{
		{"en", []string{"ENG"}},
		{"en-US", []string{"ENG"}},
		{"de", []string{"DEU"}},
		{"ja", []string{"JAN"}},
		{"zh-Hant", []string{"ZHH", "ZHP", "ZHS", "ZHT"}},
		{"alt", []string{"ALT"}},
	}
	for _, tt := range tests {
		langs := env.reg.ForLanguage(language.MustParse(tt.bcp47))
		var tags []string
		for _, ls := range langs {
			tags = append(tags, ls.Tag.Trimmed())
		}
		env.Equal(tt.tags, tags, "unexpected language systems for %q", tt.bcp47)
	}
	env.Empty(env.reg.ForLanguage(language.Und))
	env.Empty(env.reg.ForLanguage(language.MustParse("und-Latn")))
	env.Empty(env.reg.ForLanguage(language.MustParse("und-Cyrl-RU")))
	env.Equal(env.reg.ForISO639("DIV"), env.reg.ForISO639("div"))
}

func (env *LangSysTestEnviron) TestBCP47() {
	deu, ok := env.reg.Lookup("DEU")
	env.Require().True(ok)
	tag, ok := deu.BCP47()
	env.Require().True(ok)
	env.Equal("de", tag.String())
}

func (env *LangSysTestEnviron) TestWithPrefix() {
	var names []string
	for _, ls := range env.reg.WithPrefix("chinese") {
		names = append(names, ls.Name)
	}
	env.Equal([]string{"Chinese, Hong Kong SAR", "Chinese Phonetic",
		"Chinese Simplified", "Chinese Traditional"}, names)
}

// --- Builder ---------------------------------------------------------------

func TestRegisterIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otlang")
	defer teardown()
	//
	b := NewBuilder()
	first, err := b.Register("Abaza", "ABA", "abq")
	require.NoError(t, err)
	again, err := b.Register("Not Abaza", "ABA ", "xyz")
	require.NoError(t, err)
	assert.Same(t, first, again, "expected duplicate registration to return existing entry")
	reg := b.Freeze()
	assert.Equal(t, 1, reg.Len())
	ls, ok := reg.Lookup("ABA")
	require.True(t, ok)
	assert.Equal(t, "Abaza", ls.Name)
	assert.Equal(t, []string{"abq"}, ls.ISOCodes())
}

func TestRegisterInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otlang")
	defer teardown()
	//
	b := NewBuilder()
	_, err := b.Register("Too Long", "ABCDE", "")
	var invalid *InvalidTagError
	assert.ErrorAs(t, err, &invalid)
	b.Freeze()
	_, err = b.Register("Abaza", "ABA", "abq")
	assert.ErrorIs(t, err, ErrFrozen)
}

func TestEmptyRegistry(t *testing.T) {
	reg := NewBuilder().Freeze()
	_, ok := reg.Lookup("ENG")
	assert.False(t, ok)
	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, slices.Collect(reg.All()))
	assert.Empty(t, reg.ForLanguage(language.English))
	//
	var nilreg *Registry
	_, ok = nilreg.Lookup("ENG")
	assert.False(t, ok)
	assert.Empty(t, nilreg.WithPrefix("E"))
}

func TestISOCodesAreCopies(t *testing.T) {
	b := NewBuilder()
	ls, err := b.Register("English", "ENG", "eng")
	require.NoError(t, err)
	ls.ISOCodes()[0] = "xxx"
	assert.Equal(t, []string{"eng"}, ls.ISOCodes())
	assert.Equal(t, "English", ls.String())
}

func TestMustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustBuild(func(b *Builder) error {
			_, err := b.Register("Nonsense", "TOOLONG", "")
			return err
		})
	})
}
