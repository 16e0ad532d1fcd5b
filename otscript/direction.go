package otscript

import (
	"unicode"

	"golang.org/x/text/unicode/bidi"
)

// directionOf derives a writing direction from the first letter found in
// a list of blocks. Only letters are consulted, as unassigned code points and
// marks do not carry a strong bidi class.
func directionOf(ranges []UnicodeRange) bidi.Direction {
	for _, ur := range ranges {
		for r := ur.Start; r <= ur.End; r++ {
			if !unicode.IsLetter(r) {
				continue
			}
			props, _ := bidi.LookupRune(r)
			switch props.Class() {
			case bidi.L:
				return bidi.LeftToRight
			case bidi.R, bidi.AL:
				return bidi.RightToLeft
			}
		}
	}
	return bidi.Neutral
}
