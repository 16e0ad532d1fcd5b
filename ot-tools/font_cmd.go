package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/scriptlang/ot"
	"github.com/npillmayer/scriptlang/otquery"
	"github.com/npillmayer/scriptlang/otscript"
	"github.com/thatisuday/commando"
)

func runCoverageCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags)
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	f, err := otquery.LoadFont(fontPath)
	if err != nil {
		fatalf("cannot load font %s: %v", fontPath, err)
	}
	fmt.Fprintf(stdout, "Path: %s\n", fontPath)
	fmt.Fprintf(stdout, "Name: %s\n", f.Name)
	names := otquery.NameInfo(f)
	if family := names["family"]; family != "" {
		fmt.Fprintf(stdout, "Family: %s\n", family)
	}
	if version := names["version"]; version != "" {
		fmt.Fprintf(stdout, "Version: %s\n", version)
	}
	reg := otscript.Default()
	if mustFlagBool(flags["declared"], "declared") {
		scripts, err := otquery.DeclaredScripts(f, reg)
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Fprintf(stdout, "Declared scripts (%d):\n", len(scripts))
		for _, sc := range scripts {
			fmt.Fprintf(stdout, "'%s'\t%s\n", sc.Tag, sc.FullName)
		}
		return
	}
	minPercent := mustFlagInt(flags["min"], "min")
	if minPercent < 0 || minPercent > 100 {
		fatalf("--min must be between 0 and 100")
	}
	cov, err := otquery.ScriptCoverage(f.SFNT, reg)
	if err != nil {
		fatalf("coverage failed: %v", err)
	}
	for _, c := range cov {
		if c.Covered == 0 || 100*c.Ratio() < float64(minPercent) {
			continue
		}
		fmt.Fprintf(stdout, "'%s'\t%5.1f%%\t%d/%d\t%s\n", c.Script.Tag, 100*c.Ratio(), c.Covered, c.Total, c.Script.FullName)
	}
}

func tagStrings(tags []ot.Tag) []string {
	s := make([]string, len(tags))
	for i, t := range tags {
		s[i] = "'" + t.String() + "'"
	}
	return s
}
