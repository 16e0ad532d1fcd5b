/*
Package otscript is a registry of OpenType script tags.

Every script of the OpenType script tag registry
(https://learn.microsoft.com/en-us/typography/opentype/spec/scripttags)
is represented by a Script, carrying the script's full name, its 4-byte tag,
and the Unicode blocks associated with it. Clients, usually text segmenters
or shapers, may ask for a script by tag, by full name, or by code point:

	reg := otscript.Default()
	latin, _ := reg.Lookup("latn")
	greek, _ := reg.LookupRune('Ω')

Registries are built once with a Builder and are immutable afterwards, thus
safe for concurrent readers. Default is built lazily on first use.

# Shared Tags

Tags are unique, with a single exception: Hiragana and Katakana share tag
'kana'. Both scripts are registered and may be found by full name; lookup by
tag returns Hiragana, which has been registered first.

# Unicode Blocks

Unicode blocks are the ones of the OpenType OS/2 table (field ulUnicodeRange).
Code point lookup scans the blocks ordered by start; if two scripts report
blocks starting at the same code point, the earlier registration keeps the
block. This is the case for the Indic scripts with a "v.2" tag, which share
their blocks with the original version of the script.

The table of Default differs from the plain registry data in two respects.
Full names carry no trailing blanks ("Phoenician", "Bassa Vah", "Old Persian
Cuneiform"). CJK Unified Ideographs and its Extension A belong to script
'hani' (CJK Ideographic), and Cyrillic Supplement belongs to 'cyrl', so
LookupRune finds a script for '中' or 'Ԁ'.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otscript

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'otscript'
func tracer() tracing.Trace {
	return tracing.Select("otscript")
}
