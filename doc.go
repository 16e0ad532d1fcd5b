/*
Package scriptlang maps text to OpenType scripts and language systems.

OpenType fonts organize their layout features by script and language system,
each identified by a 4-byte tag. Clients preparing text for shaping have to
find these tags for the text at hand. We will stick to the following
definitions:

▪︎ A "script" is a writing system, e.g. Latin or Devanagari. OpenType names
scripts with tags like 'latn' or 'dev2', which are similar to, but not the
same as, ISO 15924 codes.

▪︎ A "language system" is a language or language variant with special
typographic conventions, e.g. Turkish ('TRK ') or Chinese Traditional
('ZHT '). Language systems are mapped to ISO 639 identifiers.

▪︎ A "Unicode block" is a range of code points as listed in the OS/2 table
of an OpenType font. Scripts own one or more blocks.

Package scriptlang is a facade for the registries of packages otscript and
otlang. Fonts may be checked for script support with package otquery.

# Links

OpenType script tags:
https://learn.microsoft.com/en-us/typography/opentype/spec/scripttags

OpenType language system tags:
https://learn.microsoft.com/en-us/typography/opentype/spec/languagetags

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package scriptlang
