package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/scriptlang/otquery"
	"github.com/pterm/pterm"
)

var errNoArg = errors.New("command needs an argument")

func scriptOp(intp *Intp, op *Op) (error, bool) {
	tag, ok := op.hasArg()
	if !ok {
		return errNoArg, false
	}
	sc, ok := intp.scripts.Lookup(tag)
	if !ok {
		return fmt.Errorf("no script registered for tag '%s'", tag), false
	}
	intp.script = sc
	printScript(sc, op.format)
	return nil, false
}

func nameOp(intp *Intp, op *Op) (error, bool) {
	name, ok := op.hasArg()
	if !ok {
		return errNoArg, false
	}
	name = strings.ReplaceAll(name, "_", " ")
	sc, ok := intp.scripts.LookupName(name)
	if !ok {
		return fmt.Errorf("no script registered with name %q", name), false
	}
	intp.script = sc
	printScript(sc, op.format)
	return nil, false
}

func runeOp(intp *Intp, op *Op) (error, bool) {
	arg, ok := op.hasArg()
	if !ok {
		return errNoArg, false
	}
	r, err := parseRune(arg)
	if err != nil {
		return err, false
	}
	sc, ok := intp.scripts.LookupRune(r)
	if !ok {
		printRune(r, nil)
		return nil, false
	}
	intp.script = sc
	printRune(r, sc)
	return nil, false
}

func langOp(intp *Intp, op *Op) (error, bool) {
	tag, ok := op.hasArg()
	if !ok {
		return errNoArg, false
	}
	ls, ok := intp.langs.Lookup(tag)
	if !ok {
		return fmt.Errorf("no language system registered for tag '%s'", tag), false
	}
	intp.lang = ls
	printLangSys(ls)
	return nil, false
}

func findOp(intp *Intp, op *Op) (error, bool) {
	prefix, ok := op.hasArg()
	if !ok {
		return errNoArg, false
	}
	prefix = strings.ReplaceAll(prefix, "_", " ")
	scripts := intp.scripts.WithPrefix(prefix)
	langs := intp.langs.WithPrefix(prefix)
	if len(scripts) == 0 && len(langs) == 0 {
		pterm.Printf("nothing found for %q\n", prefix)
		return nil, false
	}
	if len(scripts) > 0 {
		printScriptTable(scripts)
	}
	if len(langs) > 0 {
		printLangSysTable(langs)
	}
	return nil, false
}

func scriptsOp(intp *Intp, op *Op) (error, bool) {
	if op.format == "blocks" {
		printRangeIndex(intp.scripts)
		return nil, false
	}
	printScriptTable(slices.Collect(intp.scripts.All()))
	return nil, false
}

func langsOp(intp *Intp, op *Op) (error, bool) {
	printLangSysTable(slices.Collect(intp.langs.All()))
	return nil, false
}

func fontOp(intp *Intp, op *Op) (error, bool) {
	path, ok := op.hasArg()
	if !ok {
		return errNoArg, false
	}
	return intp.loadFont(path), false
}

func coverageOp(intp *Intp, op *Op) (error, bool) {
	if intp.font == nil {
		return errors.New("no font loaded, use font:<path>"), false
	}
	cov, err := otquery.ScriptCoverage(intp.font.SFNT, intp.scripts)
	if err != nil {
		return err, false
	}
	printCoverage(intp.font.Name, cov, op.format == "all")
	return nil, false
}

// parseRune accepts U+XXXX, 0xXXXX, decimal numbers and single characters.
func parseRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}
	var n uint64
	var err error
	switch u := strings.ToUpper(s); {
	case strings.HasPrefix(u, "U+"), strings.HasPrefix(u, "0X"):
		n, err = strconv.ParseUint(s[2:], 16, 32)
	default:
		n, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil || n > utf8.MaxRune {
		return 0, fmt.Errorf("not a code point: %s", s)
	}
	return rune(n), nil
}
