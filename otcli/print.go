package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/scriptlang/otlang"
	"github.com/npillmayer/scriptlang/otquery"
	"github.com/npillmayer/scriptlang/otscript"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/runenames"
)

func printScript(sc *otscript.Script, format string) {
	if format == "tag" {
		pterm.Printf("'%s'\n", sc.Tag)
		return
	}
	data := [][]string{
		{"Script", "Tag", "Direction", "Blocks"},
		{sc.FullName, quote(sc.Tag.String()), formatDirection(sc.Direction()), formatRanges(sc.Ranges())},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if otscript.IsSharedTag(sc.Tag) {
		pterm.Info.Printf("tag '%s' is shared by more than one script\n", sc.Tag)
	}
}

func printRune(r rune, sc *otscript.Script) {
	name := runenames.Name(r)
	if name == "" {
		name = "<unnamed>"
	}
	bit := otscript.BitForRune(r)
	if sc == nil {
		pterm.Printf("U+%04X %s: no script (OS/2 bit %d)\n", r, name, bit)
		return
	}
	pterm.Printf("U+%04X %s: %s '%s' (OS/2 bit %d)\n", r, name, sc.FullName, sc.Tag, bit)
}

func printLangSys(ls *otlang.LangSys) {
	bcp := "-"
	if t, ok := ls.BCP47(); ok {
		bcp = t.String()
	}
	data := [][]string{
		{"Language System", "Tag", "ISO 639", "BCP 47"},
		{ls.Name, quote(ls.Tag.String()), formatISOCodes(ls.ISOCodes()), bcp},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printScriptTable(scripts []*otscript.Script) {
	data := [][]string{
		{"Tag", "Script", "Direction", "Blocks"},
	}
	for _, sc := range scripts {
		data = append(data, []string{
			quote(sc.Tag.String()),
			sc.FullName,
			formatDirection(sc.Direction()),
			fmt.Sprintf("%d", len(sc.Ranges())),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printLangSysTable(langs []*otlang.LangSys) {
	data := [][]string{
		{"Tag", "Language System", "ISO 639"},
	}
	for _, ls := range langs {
		data = append(data, []string{
			quote(ls.Tag.String()),
			ls.Name,
			formatISOCodes(ls.ISOCodes()),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printRangeIndex(reg *otscript.Registry) {
	data := [][]string{
		{"Bit", "Start", "End", "Script"},
	}
	for ur, sc := range reg.IndexedRanges() {
		data = append(data, []string{
			fmt.Sprintf("%d", ur.Bit),
			fmt.Sprintf("U+%04X", ur.Start),
			fmt.Sprintf("U+%04X", ur.End),
			sc.FullName,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printCoverage(fontname string, cov []otquery.Coverage, all bool) {
	pterm.Printf("Script coverage of %s\n", fontname)
	data := [][]string{
		{"Tag", "Script", "Covered", "Total", "%"},
	}
	for _, c := range cov {
		if c.Covered == 0 && !all {
			continue
		}
		data = append(data, []string{
			quote(c.Script.Tag.String()),
			c.Script.FullName,
			fmt.Sprintf("%d", c.Covered),
			fmt.Sprintf("%d", c.Total),
			fmt.Sprintf("%.1f", 100*c.Ratio()),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// ----------------------------------------------------------------------

func quote(tag string) string {
	return "'" + tag + "'"
}

func formatDirection(dir bidi.Direction) string {
	switch dir {
	case bidi.LeftToRight:
		return "LTR"
	case bidi.RightToLeft:
		return "RTL"
	case bidi.Mixed:
		return "mixed"
	}
	return "-"
}

func formatRanges(ranges []otscript.UnicodeRange) string {
	if len(ranges) == 0 {
		return "-"
	}
	s := make([]string, len(ranges))
	for i, ur := range ranges {
		s[i] = fmt.Sprintf("U+%04X..U+%04X", ur.Start, ur.End)
	}
	return strings.Join(s, "\n")
}

func formatISOCodes(codes []string) string {
	for i, c := range codes {
		codes[i] = strings.Join(strings.Fields(c), " ")
	}
	return strings.Join(codes, ",")
}
