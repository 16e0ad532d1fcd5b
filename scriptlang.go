package scriptlang

import (
	"strings"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/scriptlang/ot"
	"github.com/npillmayer/scriptlang/otlang"
	"github.com/npillmayer/scriptlang/otscript"
	xlanguage "golang.org/x/text/language"
)

// Tags returns the OpenType script tags and language system tags for a script and
// a BCP 47 language, most preferred first. Only tags contained in the default
// registries are returned. If no script tag is registered, 'DFLT' is returned.
// An empty list of language system tags calls for the default language system of
// a font.
//
//	scripts, langs := scriptlang.Tags(language.Devanagari, xlanguage.Hindi)
//	// scripts = ['dev2', 'deva'], langs = ['HIN ']
func Tags(script language.Script, lang xlanguage.Tag) (scripts []ot.Tag, langs []ot.Tag) {
	reg := otscript.Default()
	for _, tag := range otscript.TagsForScript(script) {
		if _, ok := reg.LookupTag(tag); ok {
			scripts = append(scripts, tag)
		}
	}
	if len(scripts) == 0 {
		scripts = []ot.Tag{ot.DFLT}
	}
	for _, ls := range otlang.Default().ForLanguage(lang) {
		langs = append(langs, ls.Tag)
	}
	return
}

// TagsForLanguage is like Tags, but derives the script from the language tag,
// e.g. 'Cyrl' for "sr" (Serbian).
func TagsForLanguage(lang xlanguage.Tag) (scripts []ot.Tag, langs []ot.Tag) {
	var script language.Script
	if s, conf := lang.Script(); conf != xlanguage.No {
		var err error
		if script, err = language.ParseScript(s.String()); err != nil {
			script = 0
		}
	}
	return Tags(script, lang)
}

// ScriptForRune returns the script owning the Unicode block of a code point.
func ScriptForRune(r rune) (*otscript.Script, bool) {
	return otscript.Default().LookupRune(r)
}

// ScriptsOf returns the scripts of the code points of a text, in order of first
// appearance. Code points outside of any registered Unicode block are skipped.
func ScriptsOf(text string) []*otscript.Script {
	var scripts []*otscript.Script
	seen := make(map[*otscript.Script]bool)
	for _, r := range strings.ToValidUTF8(text, "") {
		if sc, ok := ScriptForRune(r); ok && !seen[sc] {
			seen[sc] = true
			scripts = append(scripts, sc)
		}
	}
	return scripts
}

// LangSys returns the language system for an OpenType language system tag.
func LangSys(tag string) (*otlang.LangSys, bool) {
	return otlang.Default().Lookup(tag)
}
