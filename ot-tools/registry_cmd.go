package main

import (
	"fmt"
	"strings"

	gtlanguage "github.com/go-text/typesetting/language"
	"github.com/npillmayer/scriptlang"
	"github.com/npillmayer/scriptlang/otlang"
	"github.com/npillmayer/scriptlang/otscript"
	"github.com/thatisuday/commando"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/runenames"
)

func runScriptCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	arg := joinArg(args["script"])
	if arg == "" {
		fatalf("script tag or name is required")
	}
	reg := otscript.Default()
	sc, ok := reg.Lookup(arg)
	if !ok {
		if sc, ok = reg.LookupName(arg); !ok {
			fatalf("no script for tag or name %q", arg)
		}
	}
	printScript(sc, mustFlagBool(flags["verbose"], "verbose"))
}

func runLangCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	arg := strings.TrimSpace(args["tag"].Value)
	if arg == "" {
		fatalf("language system tag is required")
	}
	reg := otlang.Default()
	if mustFlagBool(flags["bcp47"], "bcp47") {
		tag, err := language.Parse(arg)
		if err != nil {
			fatalf("invalid language tag %q: %v", arg, err)
		}
		langs := reg.ForLanguage(tag)
		if len(langs) == 0 {
			fatalf("no language system for %s", tag)
		}
		for _, ls := range langs {
			printLangSys(ls)
		}
		return
	}
	ls, ok := reg.Lookup(arg)
	if !ok {
		fatalf("no language system for tag %q", arg)
	}
	printLangSys(ls)
}

func runRuneCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	runes, err := parseCodepoints(args["codepoints"].Value)
	if err != nil {
		fatalf("%v", err)
	}
	if len(runes) == 0 {
		fatalf("code points are required")
	}
	verbose := mustFlagBool(flags["verbose"], "verbose")
	reg := otscript.Default()
	for _, r := range runes {
		owner := "-"
		if sc, ok := reg.LookupRune(r); ok {
			owner = fmt.Sprintf("'%s' %s", sc.Tag, sc.FullName)
		}
		fmt.Fprintf(stdout, "U+%04X\t%s", r, owner)
		if verbose {
			iso := "-"
			if sc, ok := reg.ForRuneISO(r); ok {
				iso = sc.FullName
			}
			fmt.Fprintf(stdout, "\t[%s, bit %d, ISO 15924 %s: %s]", runenames.Name(r), otscript.BitForRune(r),
				gtlanguage.LookupScript(r), iso)
		}
		fmt.Fprintln(stdout)
	}
}

func runListCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	verbose := mustFlagBool(flags["verbose"], "verbose")
	switch what := strings.ToLower(strings.TrimSpace(args["what"].Value)); what {
	case "", "scripts":
		for sc := range otscript.Default().All() {
			printScript(sc, verbose)
		}
	case "langs":
		for ls := range otlang.Default().All() {
			printLangSys(ls)
		}
	case "blocks":
		for ur, sc := range otscript.Default().IndexedRanges() {
			fmt.Fprintf(stdout, "U+%04X..U+%04X\tbit %3d\t'%s' %s\n", ur.Start, ur.End, ur.Bit, sc.Tag, sc.FullName)
		}
	default:
		fatalf("cannot list %q (expected scripts|langs|blocks)", what)
	}
}

func runFindCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	prefix := joinArg(args["prefix"])
	if prefix == "" {
		fatalf("name prefix is required")
	}
	verbose := mustFlagBool(flags["verbose"], "verbose")
	for _, sc := range otscript.Default().WithPrefix(prefix) {
		printScript(sc, verbose)
	}
	for _, ls := range otlang.Default().WithPrefix(prefix) {
		printLangSys(ls)
	}
}

func runTagsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	lang, err := language.Parse(strings.TrimSpace(args["lang"].Value))
	if err != nil {
		fatalf("invalid language tag %q: %v", args["lang"].Value, err)
	}
	s, err := flags["script"].GetString()
	if err != nil {
		fatalf("invalid --script flag: %v", err)
	}
	var scripts, langs []string
	if s = strings.TrimSpace(s); s == "" || s == "-" {
		st, lt := scriptlang.TagsForLanguage(lang)
		scripts, langs = tagStrings(st), tagStrings(lt)
	} else {
		script, err := gtlanguage.ParseScript(s)
		if err != nil {
			fatalf("invalid script %q: %v", s, err)
		}
		st, lt := scriptlang.Tags(script, lang)
		scripts, langs = tagStrings(st), tagStrings(lt)
	}
	fmt.Fprintf(stdout, "script:\t%s\n", strings.Join(scripts, ", "))
	if len(langs) == 0 {
		fmt.Fprintln(stdout, "lang:\t(default)")
		return
	}
	fmt.Fprintf(stdout, "lang:\t%s\n", strings.Join(langs, ", "))
}

func printScript(sc *otscript.Script, verbose bool) {
	fmt.Fprintf(stdout, "'%s'\t%s\n", sc.Tag, sc.FullName)
	if !verbose {
		return
	}
	for _, ur := range sc.Ranges() {
		fmt.Fprintf(stdout, "\tU+%04X..U+%04X (bit %d)\n", ur.Start, ur.End, ur.Bit)
	}
}

func printLangSys(ls *otlang.LangSys) {
	codes := ls.ISOCodes()
	for i, c := range codes {
		codes[i] = strings.Join(strings.Fields(c), " ")
	}
	fmt.Fprintf(stdout, "'%s'\t%s\t[%s]\n", ls.Tag, ls.Name, strings.Join(codes, ","))
}

// joinArg undoes commando's joining of variadic arguments with commas.
func joinArg(arg commando.ArgValue) string {
	return strings.TrimSpace(strings.ReplaceAll(arg.Value, ",", " "))
}
