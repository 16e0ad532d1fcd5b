package otquery

import (
	"github.com/npillmayer/scriptlang/internal/fontload"
	"github.com/npillmayer/scriptlang/ot"
	"golang.org/x/image/font/sfnt"
)

// Font is an OpenType font opened for querying.
type Font struct {
	Name string     // full font name
	SFNT *sfnt.Font // parsed font, carrying the character map
	sf   *fontload.ScalableFont
}

// LoadFont loads an OpenType font (TTF or OTF) from a file.
func LoadFont(path string) (*Font, error) {
	sf, err := fontload.LoadOpenTypeFont(path)
	if err != nil {
		return nil, err
	}
	return wrap(sf), nil
}

// ParseFont parses an OpenType font (TTF or OTF) from memory.
func ParseFont(fbytes []byte) (*Font, error) {
	sf, err := fontload.ParseOpenTypeFont(fbytes)
	if err != nil {
		return nil, err
	}
	return wrap(sf), nil
}

func wrap(sf *fontload.ScalableFont) *Font {
	tracer().Debugf("opened font %q", sf.Fontname)
	return &Font{Name: sf.Fontname, SFNT: sf.SFNT, sf: sf}
}

func (f *Font) table(tag ot.Tag) []byte {
	if f == nil || f.sf == nil {
		return nil
	}
	return f.sf.Table(tag)
}
