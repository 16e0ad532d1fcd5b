/*
Package otlang is a registry of OpenType language system tags.

Every entry of the OpenType language system tag registry
(https://learn.microsoft.com/en-us/typography/opentype/spec/languagetags)
is represented by a LangSys, carrying a human readable name, the language
system tag, and the ISO 639 identifiers of the languages it covers.

	eng, _ := otlang.Default().Lookup("ENG")

Tags are space-padded to 4 characters, thus "ENG" and "ENG " are the same tag.
If a tag is registered more than once, the first registration is kept.

The registry is able to map BCP 47 language tags of package
golang.org/x/text/language to language systems, using ISO 639-3 identifiers.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otlang

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'otlang'
func tracer() tracing.Trace {
	return tracing.Select("otlang")
}
