package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
)

// stdout receives the output of commands.
var stdout io.Writer = os.Stdout

func main() {
	commando.
		SetExecutableName("ot-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for querying OpenType script and language system tags.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("script").
		SetDescription("Look up an OpenType script by tag or by full name.").
		SetShortDescription("script lookup").
		AddArgument("script...", "script tag (e.g. latn, lao) or full name (e.g. Old Italic)", "").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runScriptCommand)

	commando.
		Register("lang").
		SetDescription("Look up an OpenType language system by tag, or by BCP 47 language tag.").
		SetShortDescription("language system lookup").
		AddArgument("tag", "language system tag (e.g. DEU, HO)", "").
		AddFlag("bcp47,b", "interpret tag as BCP 47 language tag (e.g. de-CH, zh-Hant)", commando.Bool, nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runLangCommand)

	commando.
		Register("rune").
		SetDescription("Find the scripts owning the Unicode blocks of code points.").
		SetShortDescription("code point lookup").
		AddArgument("codepoints...", "code points (comma/space separated, e.g. U+0391,U+0416)", "").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runRuneCommand)

	commando.
		Register("list").
		SetDescription("List all scripts, language systems, or Unicode blocks.").
		SetShortDescription("list registries").
		AddArgument("what", "scripts|langs|blocks", "scripts").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runListCommand)

	commando.
		Register("find").
		SetDescription("Find scripts and language systems by name prefix.").
		SetShortDescription("search by name").
		AddArgument("prefix...", "name prefix, case is ignored", "").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runFindCommand)

	commando.
		Register("tags").
		SetDescription("Print the OpenType script and language system tags for a BCP 47 language.").
		SetShortDescription("tags for text").
		AddArgument("lang", "language tag (BCP 47, e.g. en, hi, sr-Latn)", "en").
		AddFlag("script,s", "script (ISO 15924, e.g. Latn, Deva); derived from lang if missing", commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runTagsCommand)

	commando.
		Register("coverage").
		SetDescription("Check which scripts an OpenType font supports.").
		SetShortDescription("font script coverage").
		AddArgument("font", "OpenType font file path", "").
		AddFlag("min,m", "minimum coverage in percent for a script to be listed", commando.Int, 1).
		AddFlag("declared,d", "list scripts declared in table OS/2 instead", commando.Bool, nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runCoverageCommand)

	commando.Parse(nil)
}

// setupTracing directs traces of the registries to the Go logger, on level
// Error, or Info with --verbose.
func setupTracing(flags map[string]commando.FlagValue) {
	level := "Error"
	if v, ok := flags["verbose"]; ok {
		if verbose, err := v.GetBool(); err == nil && verbose {
			level = "Info"
		}
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.otscript":  level,
		"trace.otlang":    level,
		"trace.otquery":   level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("cannot configure tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

var errEmptyCodepoint = errors.New("empty codepoint token")

func parseCodepoints(list string) ([]rune, error) {
	parts := splitCSVSpace(list)
	out := make([]rune, 0, len(parts))
	for _, p := range parts {
		r, err := parseCodepointToken(p)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// parseCodepointToken accepts U+XXXX, 0xXXXX, or a single character.
func parseCodepointToken(token string) (rune, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errEmptyCodepoint
	}
	if r := []rune(token); len(r) == 1 {
		return r[0], nil
	}
	hex := token
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", token, err)
	}
	if u > 0x10FFFF {
		return 0, fmt.Errorf("codepoint %q out of range", token)
	}
	return rune(u), nil
}

func splitCSVSpace(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "ot-tools: "+format+"\n", args...)
	os.Exit(1)
}
