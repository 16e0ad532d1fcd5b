package otquery

import (
	"fmt"
	"iter"

	"github.com/npillmayer/scriptlang/ot"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding/unicode"
)

const (
	nameHeaderSize = 6
	nameRecordSize = 12
)

// nameKey identifies a NameRecord entry in OpenType table 'name'.
// The key follows the OpenType NameRecord fields directly.
type nameKey struct {
	Platform PlatformID
	Encoding EncodingID
	Language uint16      // not supported
	Name     sfnt.NameID // see https://pkg.go.dev/golang.org/x/image/font/sfnt#NameID
}

type PlatformID uint16

const (
	PlatformIDUnicode   PlatformID = 0
	PlatformIDMacintosh PlatformID = 1 // not supported
	PlatformIDWindows   PlatformID = 3
)

type EncodingID uint16

const (
	EncodingIDUnicodeBMP    EncodingID = 3
	EncodingIDWindowsSymbol EncodingID = 0 // for now we will not support symbol fonts
	EncodingIDWindowsBMP    EncodingID = 1
)

// Names yields decoded `(nameID, value)` pairs from a font's OpenType
// `name` table.
//
// Only Unicode BMP and Windows BMP encodings are yielded, and malformed or
// out-of-bounds records are skipped.
func Names(f *Font) iter.Seq2[sfnt.NameID, string] {
	names := checkNameTableSafe(f.table(ot.T("name")))
	return func(yield func(sfnt.NameID, string) bool) {
		if names == nil {
			return
		}
		count := int(u16(names[2:4])) // number of name records
		stringStorageOffset := int(u16(names[4:6]))
		for i := range count {
			record := names[nameHeaderSize+i*nameRecordSize : nameHeaderSize+(i+1)*nameRecordSize]
			key := nameKey{
				Platform: PlatformID(u16(record[0:2])),
				Encoding: EncodingID(u16(record[2:4])),
				Language: u16(record[4:6]),
				Name:     sfnt.NameID(u16(record[6:8])),
			}
			if !isSupportedNameEncoding(key) {
				continue
			}
			start := stringStorageOffset + int(u16(record[10:12]))
			end := start + int(u16(record[8:10]))
			if end > len(names) {
				continue
			}
			value, err := decodeNameUTF16(names[start:end])
			if err != nil || value == "" {
				continue
			}
			if !yield(key.Name, value) {
				return
			}
		}
	}
}

// NameInfo collects the family, subfamily and version of a font, as far as they
// are present. Keys are "family", "subfamily" and "version".
func NameInfo(f *Font) map[string]string {
	info := make(map[string]string, 3)
	for id, value := range Names(f) {
		var key string
		switch id {
		case sfnt.NameIDFamily:
			key = "family"
		case sfnt.NameIDSubfamily:
			key = "subfamily"
		case sfnt.NameIDVersion:
			key = "version"
		default:
			continue
		}
		if _, ok := info[key]; !ok {
			info[key] = value
		}
	}
	return info
}

// checkNameTableSafe checks if the name table is safe to use, i.e. no out-of-bounds access,
// no empty tables, etc.
func checkNameTableSafe(b []byte) []byte {
	if b == nil {
		tracer().Debugf("no name table found in font")
		return nil
	}
	if len(b) < nameHeaderSize {
		tracer().Debugf("name table too short: %d", len(b))
		return nil
	}
	count := int(u16(b[2:4]))
	strOff := int(u16(b[4:6]))
	if strOff > len(b) {
		tracer().Debugf("name table invalid string offset: %d", strOff)
		return nil
	}
	recordsEnd := nameHeaderSize + count*nameRecordSize
	if recordsEnd > len(b) {
		tracer().Debugf("name table record section out of bounds: count=%d", count)
		return nil
	}
	return b
}

func isSupportedNameEncoding(key nameKey) bool {
	return (key.Platform == PlatformIDUnicode && key.Encoding == EncodingIDUnicodeBMP) ||
		(key.Platform == PlatformIDWindows && key.Encoding == EncodingIDWindowsBMP)
}

func decodeNameUTF16(str []byte) (string, error) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	s, err := enc.NewDecoder().Bytes(str)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-16 error: %v", err)
	}
	return string(s), nil
}
