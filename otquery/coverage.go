package otquery

import (
	"fmt"
	"unicode"

	"github.com/npillmayer/scriptlang/otscript"
	"golang.org/x/image/font/sfnt"
)

// Coverage reports how many code points of a script a font is able to display.
type Coverage struct {
	Script  *otscript.Script
	Covered int // graphic code points with a glyph
	Total   int // graphic code points in the script's Unicode blocks
}

// Ratio returns the covered share of the script, between 0 and 1.
func (c Coverage) Ratio() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Covered) / float64(c.Total)
}

func (c Coverage) String() string {
	return fmt.Sprintf("%s: %d/%d", c.Script, c.Covered, c.Total)
}

// ScriptCoverage checks the character map of a font against every script of a
// registry. Only graphic code points (see unicode.IsGraphic) are counted.
// Scripts without Unicode blocks are not reported; all others are, in
// registration order, including scripts with zero coverage.
func ScriptCoverage(f *sfnt.Font, reg *otscript.Registry) ([]Coverage, error) {
	if f == nil {
		return nil, fmt.Errorf("otquery: no font")
	}
	buf := &sfnt.Buffer{}
	counts := make(map[otscript.UnicodeRange][2]int) // blocks may be shared between scripts
	var cov []Coverage
	for sc := range reg.All() {
		c := Coverage{Script: sc}
		for _, ur := range sc.Ranges() {
			n, ok := counts[ur]
			if !ok {
				covered, total, err := countGlyphs(f, buf, ur)
				if err != nil {
					return nil, err
				}
				n = [2]int{covered, total}
				counts[ur] = n
			}
			c.Covered += n[0]
			c.Total += n[1]
		}
		if c.Total == 0 {
			continue
		}
		tracer().Debugf("coverage %v", c)
		cov = append(cov, c)
	}
	return cov, nil
}

// SupportedScripts returns the scripts of a registry for which a font covers at
// least a share of minRatio of the graphic code points.
func SupportedScripts(f *sfnt.Font, reg *otscript.Registry, minRatio float64) ([]*otscript.Script, error) {
	cov, err := ScriptCoverage(f, reg)
	if err != nil {
		return nil, err
	}
	var scripts []*otscript.Script
	for _, c := range cov {
		if c.Covered > 0 && c.Ratio() >= minRatio {
			scripts = append(scripts, c.Script)
		}
	}
	return scripts, nil
}

func countGlyphs(f *sfnt.Font, buf *sfnt.Buffer, ur otscript.UnicodeRange) (covered, total int, err error) {
	for r := ur.Start; r <= ur.End; r++ {
		if !unicode.IsGraphic(r) {
			continue
		}
		total++
		gid, err := f.GlyphIndex(buf, r)
		if err != nil {
			return 0, 0, fmt.Errorf("otquery: glyph index for U+%04X: %w", r, err)
		}
		if gid != 0 {
			covered++
		}
	}
	return
}
