package otlang

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// isoIndex maps ISO 639 identifiers to language systems. It is built on first use.
type isoIndex struct {
	once  sync.Once
	langs map[string][]*LangSys
}

func (reg *Registry) isoLangs(code string) []*LangSys {
	reg.iso.once.Do(func() {
		reg.iso.langs = make(map[string][]*LangSys, len(reg.langs))
		for _, ls := range reg.langs {
			for _, code := range ls.isoCodes {
				for _, id := range strings.Fields(code) {
					if isISO639(id) {
						reg.iso.langs[id] = append(reg.iso.langs[id], ls)
					}
				}
			}
		}
		tracer().Debugf("ISO 639 index holds %d identifiers", len(reg.iso.langs))
	})
	return reg.iso.langs[code]
}

// ForISO639 returns the language systems associated with an ISO 639 identifier,
// e.g. "zho" yields the four Chinese language systems. Identifiers are
// case-insensitive.
func (reg *Registry) ForISO639(code string) []*LangSys {
	if reg == nil {
		return nil
	}
	langs := reg.isoLangs(strings.ToLower(strings.TrimSpace(code)))
	if len(langs) == 0 {
		return nil
	}
	out := make([]*LangSys, len(langs))
	copy(out, langs)
	return out
}

// ForLanguage returns the language systems for a BCP 47 language tag, in
// registration order. The tag's base language is matched by its ISO 639-3 code,
// falling back to the 2-letter ISO 639-1 code.
//
// Only an explicit base language is matched. For "und" and tags like "und-Latn",
// package language guesses a likely base language; these yield no language
// system, i.e. the default language system of a font.
func (reg *Registry) ForLanguage(tag language.Tag) []*LangSys {
	base, conf := tag.Base()
	if conf != language.Exact {
		tracer().Debugf("language %s has no explicit base language", tag)
		return nil
	}
	if langs := reg.ForISO639(base.ISO3()); len(langs) > 0 {
		return langs
	}
	return reg.ForISO639(base.String())
}

// BCP47 returns a language tag for the first ISO 639 identifier of the language
// system which is known to package golang.org/x/text/language.
func (ls *LangSys) BCP47() (language.Tag, bool) {
	for _, code := range ls.isoCodes {
		for _, id := range strings.Fields(code) {
			if !isISO639(id) {
				continue
			}
			if base, err := language.ParseBase(id); err == nil {
				t, err := language.Compose(base)
				if err == nil {
					return t, true
				}
			}
		}
	}
	return language.Und, false
}

func isISO639(id string) bool {
	if len(id) != 2 && len(id) != 3 {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 'a' || id[i] > 'z' {
			return false
		}
	}
	return true
}
