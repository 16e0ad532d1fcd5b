package otscript

import (
	"github.com/npillmayer/scriptlang/ot"
	"golang.org/x/text/unicode/bidi"
)

// Script is a writing system as registered in the OpenType script tag registry.
//
// Scripts are created by a Builder and never change afterwards. Clients must treat
// them as read-only.
type Script struct {
	FullName  string // display name, unique within a registry
	Tag       ot.Tag // OpenType script tag, space-padded
	ranges    []UnicodeRange
	direction bidi.Direction
}

func newScript(fullName string, tag ot.Tag, ranges []UnicodeRange) *Script {
	sc := &Script{
		FullName: fullName,
		Tag:      tag,
	}
	if len(ranges) > 0 {
		sc.ranges = make([]UnicodeRange, len(ranges))
		copy(sc.ranges, ranges)
	}
	sc.direction = directionOf(sc.ranges)
	return sc
}

// Ranges returns the Unicode blocks of this script, in registration order.
// The result may be empty.
func (sc *Script) Ranges() []UnicodeRange {
	if len(sc.ranges) == 0 {
		return nil
	}
	r := make([]UnicodeRange, len(sc.ranges))
	copy(r, sc.ranges)
	return r
}

// Covers reports whether any of the script's blocks contains r.
// This is independent of the registry's range index, i.e. it will report
// true for blocks which lost their index slot to another script.
func (sc *Script) Covers(r rune) bool {
	for _, ur := range sc.ranges {
		if ur.Contains(r) {
			return true
		}
	}
	return false
}

// Direction is the dominant writing direction of the script, derived from the
// bidi class of its letters. Scripts without Unicode blocks report bidi.Neutral.
func (sc *Script) Direction() bidi.Direction {
	return sc.direction
}

func (sc *Script) String() string {
	return sc.FullName
}
