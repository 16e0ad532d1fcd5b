package ot

import "strings"

// Tag is defined by the OpenType spec as:
// Array of four uint8s (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline
//
// Tags shorter than four characters are padded with spaces on the right, i.e.
// the script tag for Lao is 'lao ' and the language-system tag for Ho is 'HO  '.
type Tag uint32

// Frequently used tags.
var (
	// DFLT is the OpenType script tag for features that are not script-specific.
	DFLT = T("DFLT")
	// DfltLang is the OpenType language tag 'dflt'. Not a valid language tag, but some fonts
	// mistakenly use it.
	DfltLang = T("dflt")
)

// MakeTag creates a Tag from 4 bytes, e.g.,
// If b is shorter or longer, it will be silently extended or cut as appropriate
//
//	MakeTag([]byte("cmap"))
//
// In contrast to T, MakeTag left-pads short input with zero bytes.
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(u32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate.
// Extension pads with spaces on the right, as the OpenType tag registry does.
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

// ParseTag is like T, but refuses strings longer than 4 bytes.
// It is the canonicalization used on every registry lookup path.
func ParseTag(t string) (Tag, bool) {
	if len(t) > 4 {
		return 0, false
	}
	return T(t), true
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// Trimmed returns the tag as a string with trailing padding removed, e.g. "lao".
func (t Tag) Trimmed() string {
	return strings.TrimRight(t.String(), " \x00")
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}
