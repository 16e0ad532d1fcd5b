package otquery

import (
	"errors"

	"github.com/npillmayer/scriptlang/ot"
	"github.com/npillmayer/scriptlang/otscript"
)

// ErrNoOS2Table is returned for fonts without a (valid) table 'OS/2'.
var ErrNoOS2Table = errors.New("otquery: font has no valid OS/2 table")

// ulUnicodeRange1 to ulUnicodeRange4 are located at offset 42 of table 'OS/2',
// for every version of the table.
const os2UnicodeRangeOffset = 42

// UnicodeRangeBits returns the Unicode range bits a font declares in field
// ulUnicodeRange of its OS/2 table, in ascending order.
func UnicodeRangeBits(f *Font) ([]int, error) {
	os2 := f.table(ot.T("OS/2"))
	if len(os2) < os2UnicodeRangeOffset+16 {
		return nil, ErrNoOS2Table
	}
	var bits []int
	for i := range 4 {
		field := u32(os2[os2UnicodeRangeOffset+4*i:])
		for j := range 32 {
			if field&(1<<j) != 0 {
				bits = append(bits, 32*i+j)
			}
		}
	}
	return bits, nil
}

// DeclaredScripts returns the scripts of a registry with at least one Unicode
// block declared by the font's OS/2 table, in registration order.
func DeclaredScripts(f *Font, reg *otscript.Registry) ([]*otscript.Script, error) {
	bits, err := UnicodeRangeBits(f)
	if err != nil {
		return nil, err
	}
	declared := make(map[int]bool, len(bits))
	for _, bit := range bits {
		if bit <= otscript.MaxOS2Bit {
			declared[bit] = true
		}
	}
	var scripts []*otscript.Script
	for sc := range reg.All() {
		for _, ur := range sc.Ranges() {
			if declared[ur.Bit] {
				scripts = append(scripts, sc)
				break
			}
		}
	}
	return scripts, nil
}
