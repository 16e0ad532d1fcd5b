package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Debugf("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "script", "scripts", "name":
		pterm.Info.Println("Scripts")
		pterm.Println(`
	script:<tag>[:tag]     find a script by OpenType tag, e.g. script:latn or script:lao
	name:<full name>       find a script by name, with '_' for blanks, e.g. name:Old_Italic
	scripts[:blocks]       list all scripts, or all Unicode blocks with their owners

	Tags shorter than 4 characters are padded with blanks.
	Hiragana and Katakana share tag 'kana'; script:kana finds Hiragana.
	`)
	case "rune", "runes":
		pterm.Info.Println("Code Points")
		pterm.Println(`
	rune:<code point>      find the script owning the Unicode block of a code point
	                       code points are U+XXXX, 0xXXXX, decimal, or a single character
	`)
	case "lang", "langs", "langsys", "language":
		pterm.Info.Println("Language Systems")
		pterm.Println(`
	lang:<tag>             find a language system by OpenType tag, e.g. lang:DEU or lang:HO
	langs                  list all language systems
	`)
	case "find":
		pterm.Info.Println("Search")
		pterm.Println(`
	find:<prefix>          find scripts and language systems by name prefix, ignoring case
	`)
	case "font", "coverage":
		pterm.Info.Println("Fonts")
		pterm.Println(`
	font:<path>            load a font (TTF or OTF)
	coverage[:all]         list scripts covered by the font's character map
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	script:<tag>  name:<name>  rune:<cp>  lang:<tag>  find:<prefix>
	scripts  langs  font:<path>  coverage  quit

	Several commands may be given on one line, separated by blanks.
	help:<command> shows details.
	`)
	}
}
