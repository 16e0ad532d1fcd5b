/*
Package otquery answers questions about the scripts a font supports.

Two kinds of answers are given: what a font declares in the Unicode range
bits of its OS/2 table, and what its character map actually covers.

	f, err := otquery.LoadFont("GoRegular.ttf")
	...
	cov, err := otquery.ScriptCoverage(f, otscript.Default())

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'otquery'
func tracer() tracing.Trace {
	return tracing.Select("otquery")
}
