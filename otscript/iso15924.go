package otscript

import (
	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/scriptlang/ot"
)

// Script tag derivation follows harfbuzz/src/hb-ot-tag.cc
// Copyright © 2009  Red Hat, Inc. 2011  Google, Inc. Behdad Esfahbod, Roozbeh Pournader

func legacyTagFromScript(script language.Script) ot.Tag {
	switch script {
	case 0:
		return ot.DFLT
	case language.Mathematical_notation:
		return ot.T("math")

	// KATAKANA and HIRAGANA both map to 'kana'
	case language.Hiragana:
		return ot.T("kana")

	// Spaces at the end are preserved, unlike ISO 15924
	case language.Lao:
		return ot.T("lao ")
	case language.Yi:
		return ot.T("yi  ")
	case language.Nko:
		return ot.T("nko ")
	case language.Vai:
		return ot.T("vai ")
	}

	// Else, just change first char to lowercase and return
	return ot.Tag(uint32(script) | 0x20000000)
}

func v2TagFromScript(script language.Script) ot.Tag {
	switch script {
	case language.Bengali:
		return ot.T("bng2")
	case language.Devanagari:
		return ot.T("dev2")
	case language.Gujarati:
		return ot.T("gjr2")
	case language.Gurmukhi:
		return ot.T("gur2")
	case language.Kannada:
		return ot.T("knd2")
	case language.Malayalam:
		return ot.T("mlm2")
	case language.Oriya:
		return ot.T("ory2")
	case language.Tamil:
		return ot.T("tml2")
	case language.Telugu:
		return ot.T("tel2")
	case language.Myanmar:
		return ot.T("mym2")
	}
	return ot.DFLT
}

// TagsForScript returns the OpenType script tags for an ISO 15924 script, most
// preferred first. For Indic scripts these are the v.3, v.2 and legacy tags,
// e.g. 'dev3', 'dev2', 'deva'. The zero script yields 'DFLT'.
func TagsForScript(script language.Script) []ot.Tag {
	if script == 0 {
		return []ot.Tag{ot.DFLT}
	}
	var tags []ot.Tag
	if tag := v2TagFromScript(script); tag != ot.DFLT {
		// Myanmar maps to 'mym2', but there is no 'mym3'
		if tag != ot.T("mym2") {
			tags = append(tags, tag|'3')
		}
		tags = append(tags, tag)
	}
	if tag := legacyTagFromScript(script); tag != ot.DFLT {
		tags = append(tags, tag)
	}
	return tags
}

// ForISO finds the registered script for an ISO 15924 script, trying the
// tags of TagsForScript in order. Katakana resolves to the script registered
// first for tag 'kana'.
func (reg *Registry) ForISO(script language.Script) (*Script, bool) {
	for _, tag := range TagsForScript(script) {
		if sc, ok := reg.LookupTag(tag); ok {
			return sc, true
		}
	}
	return nil, false
}

// ForRuneISO is a convenience function to look up a code point's script the way
// go-text does (by Unicode script property) and map it to a registered script.
// In contrast to LookupRune, it does not depend on the Unicode blocks of the
// registry.
func (reg *Registry) ForRuneISO(r rune) (*Script, bool) {
	script := language.LookupScript(r)
	if script == language.Common || script == language.Inherited || script == language.Unknown {
		return nil, false
	}
	return reg.ForISO(script)
}
