package scriptlang

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/scriptlang/ot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xlanguage "golang.org/x/text/language"
)

func TestTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otscript")
	defer teardown()
	//
	scripts, langs := Tags(language.Devanagari, xlanguage.Hindi)
	assert.Equal(t, []ot.Tag{ot.T("dev2"), ot.T("deva")}, scripts)
	assert.Equal(t, []ot.Tag{ot.T("HIN")}, langs)
	//
	scripts, langs = Tags(language.Latin, xlanguage.Und)
	assert.Equal(t, []ot.Tag{ot.T("latn")}, scripts)
	assert.Empty(t, langs)
	//
	scripts, langs = Tags(language.Latin, xlanguage.MustParse("und-Latn"))
	assert.Equal(t, []ot.Tag{ot.T("latn")}, scripts)
	assert.Empty(t, langs)
	//
	scripts, _ = Tags(0, xlanguage.English)
	assert.Equal(t, []ot.Tag{ot.DFLT}, scripts)
}

func TestTagsForLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otlang")
	defer teardown()
	//
	scripts, langs := TagsForLanguage(xlanguage.MustParse("sr"))
	assert.Equal(t, []ot.Tag{ot.T("cyrl")}, scripts)
	assert.Equal(t, []ot.Tag{ot.T("SRB")}, langs)
	scripts, langs = TagsForLanguage(xlanguage.MustParse("de-CH"))
	assert.Equal(t, []ot.Tag{ot.T("latn")}, scripts)
	assert.Equal(t, []ot.Tag{ot.T("DEU")}, langs)
	scripts, langs = TagsForLanguage(xlanguage.MustParse("und-Cyrl"))
	assert.Equal(t, []ot.Tag{ot.T("cyrl")}, scripts)
	assert.Empty(t, langs)
}

func TestScriptsOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otscript")
	defer teardown()
	//
	var names []string
	for _, sc := range ScriptsOf("Ωmega ist griechisch, Ж nicht") {
		names = append(names, sc.FullName)
	}
	assert.Equal(t, []string{"Greek", "Latin", "Cyrillic"}, names)
	sc, ok := ScriptForRune('ア')
	require.True(t, ok)
	assert.Equal(t, "Katakana", sc.FullName)
	ls, ok := LangSys("TRK")
	require.True(t, ok)
	assert.Equal(t, "Turkish", ls.Name)
}
