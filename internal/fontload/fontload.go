/*
Package fontload loads OpenType fonts for querying script and language support.

A font is parsed twice: once by package golang.org/x/image/font/sfnt, which
provides the character map, and once for its table directory, to give access
to raw tables which sfnt does not expose (e.g., table 'OS/2').

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontload

import (
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/scriptlang/ot"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'otquery'
func tracer() tracing.Trace {
	return tracing.Select("otquery")
}

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string
	Binary   []byte
	SFNT     *sfnt.Font
	tables   map[ot.Tag][]byte
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file. If fontfile
// does not exist, it is searched for as a system font (see Locate).
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	path, err := Locate(fontfile)
	if err != nil {
		return nil, err
	}
	bytez, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Locate returns the path of a font file. Files which do not exist are looked up
// in the font directories of the operating system, e.g. "Arial.ttf".
func Locate(fontfile string) (string, error) {
	if _, err := os.Stat(fontfile); err == nil {
		return fontfile, nil
	}
	fpath, err := findfont.Find(fontfile) // try to find as system font
	if err != nil {
		return "", fmt.Errorf("font %s not found: %w", fontfile, err)
	}
	tracer().Debugf("%s is a system font at %s", fontfile, fpath)
	return fpath, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	if f.SFNT, err = sfnt.Parse(f.Binary); err != nil {
		return nil, err
	}
	if f.tables, err = parseTableDirectory(fbytes); err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err != nil {
		tracer().Infof("font has no full name: %v", err)
		f.Fontname = "<unnamed>"
	}
	return f, nil
}

// Table returns the raw bytes of a font table, or nil if the font does not
// contain a table for tag.
func (f *ScalableFont) Table(tag ot.Tag) []byte {
	return f.tables[tag]
}

func errFontFormat(message string) error {
	return fmt.Errorf("OpenType font format: %s", message)
}

// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes,
// followed by 16 bytes for each table record.
func parseTableDirectory(font []byte) (map[ot.Tag][]byte, error) {
	if len(font) < 12 {
		return nil, errFontFormat("header too short")
	}
	count := int(u16(font[4:6]))
	if len(font) < 12+16*count {
		return nil, errFontFormat("table record entries")
	}
	tables := make(map[ot.Tag][]byte, count)
	for i := range count {
		b := font[12+16*i : 12+16*(i+1)]
		tag := ot.MakeTag(b[:4])
		off, size := uint64(u32(b[8:12])), uint64(u32(b[12:16]))
		if off+size > uint64(len(font)) {
			return nil, errFontFormat(fmt.Sprintf("table %s: bounds [%d:%d] exceed font size %d",
				tag, off, off+size, len(font)))
		}
		tables[tag] = font[off : off+size]
	}
	tracer().Debugf("font has %d tables", len(tables))
	return tables, nil
}

func u16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

func u32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
