package otscript

import (
	"fmt"
	"iter"
)

// UnicodeRange is a Unicode block as listed in the OpenType OS/2 table
// (field ulUnicodeRange). Bit is the OS/2 bit number the block reports to;
// several blocks may share a bit. Start and End are inclusive.
type UnicodeRange struct {
	Bit   int
	Start rune
	End   rune
}

// Contains reports whether code point r is inside the range (both ends inclusive).
func (ur UnicodeRange) Contains(r rune) bool {
	return r >= ur.Start && r <= ur.End
}

// Size is the number of code points of the range.
func (ur UnicodeRange) Size() int {
	if ur.End < ur.Start {
		return 0
	}
	return int(ur.End-ur.Start) + 1
}

func (ur UnicodeRange) String() string {
	return fmt.Sprintf("%d,[U+%04X,U+%04X]", ur.Bit, ur.Start, ur.End)
}

// Unicode blocks from the OS/2 table specification,
// https://learn.microsoft.com/en-us/typography/opentype/spec/os2#ur
var (
	BasicLatin                           = UnicodeRange{0, 0x0000, 0x007F}
	Latin1Supplement                     = UnicodeRange{1, 0x0080, 0x00FF}
	LatinExtendedA                       = UnicodeRange{2, 0x0100, 0x017F}
	LatinExtendedB                       = UnicodeRange{3, 0x0180, 0x024F}
	IPAExtensions                        = UnicodeRange{4, 0x0250, 0x02AF}
	PhoneticExtensions                   = UnicodeRange{4, 0x1D00, 0x1D7F}
	PhoneticExtensionsSupplement         = UnicodeRange{4, 0x1D80, 0x1DBF}
	SpacingModifierLetters               = UnicodeRange{5, 0x02B0, 0x02FF}
	ModifierToneLetters                  = UnicodeRange{5, 0xA700, 0xA71F}
	CombiningDiacriticalMarks            = UnicodeRange{6, 0x0300, 0x036F}
	CombiningDiacriticalMarksSupplement  = UnicodeRange{6, 0x1DC0, 0x1DFF}
	GreekAndCoptic                       = UnicodeRange{7, 0x0370, 0x03FF}
	Coptic                               = UnicodeRange{8, 0x2C80, 0x2CFF}
	Cyrillic                             = UnicodeRange{9, 0x0400, 0x04FF}
	CyrillicSupplement                   = UnicodeRange{9, 0x0500, 0x052F}
	CyrillicExtendedA                    = UnicodeRange{9, 0x2DE0, 0x2DFF}
	CyrillicExtendedB                    = UnicodeRange{9, 0xA640, 0xA69F}
	Armenian                             = UnicodeRange{10, 0x0530, 0x058F}
	Hebrew                               = UnicodeRange{11, 0x0590, 0x05FF}
	Vai                                  = UnicodeRange{12, 0xA500, 0xA63F}
	Arabic                               = UnicodeRange{13, 0x0600, 0x06FF}
	ArabicSupplement                     = UnicodeRange{13, 0x0750, 0x077F}
	NKo                                  = UnicodeRange{14, 0x07C0, 0x07FF}
	Devanagari                           = UnicodeRange{15, 0x0900, 0x097F}
	Bengali                              = UnicodeRange{16, 0x0980, 0x09FF}
	Gurmukhi                             = UnicodeRange{17, 0x0A00, 0x0A7F}
	Gujarati                             = UnicodeRange{18, 0x0A80, 0x0AFF}
	Oriya                                = UnicodeRange{19, 0x0B00, 0x0B7F}
	Tamil                                = UnicodeRange{20, 0x0B80, 0x0BFF}
	Telugu                               = UnicodeRange{21, 0x0C00, 0x0C7F}
	Kannada                              = UnicodeRange{22, 0x0C80, 0x0CFF}
	Malayalam                            = UnicodeRange{23, 0x0D00, 0x0D7F}
	Thai                                 = UnicodeRange{24, 0x0E00, 0x0E7F}
	Lao                                  = UnicodeRange{25, 0x0E80, 0x0EFF}
	Georgian                             = UnicodeRange{26, 0x10A0, 0x10FF}
	GeorgianSupplement                   = UnicodeRange{26, 0x2D00, 0x2D2F}
	Balinese                             = UnicodeRange{27, 0x1B00, 0x1B7F}
	HangulJamo                           = UnicodeRange{28, 0x1100, 0x11FF}
	LatinExtendedAdditional              = UnicodeRange{29, 0x1E00, 0x1EFF}
	LatinExtendedC                       = UnicodeRange{29, 0x2C60, 0x2C7F}
	LatinExtendedD                       = UnicodeRange{29, 0xA720, 0xA7FF}
	GreekExtended                        = UnicodeRange{30, 0x1F00, 0x1FFF}
	GeneralPunctuation                   = UnicodeRange{31, 0x2000, 0x206F}
	SupplementalPunctuation              = UnicodeRange{31, 0x2E00, 0x2E7F}
	SuperscriptsAndSubscripts            = UnicodeRange{32, 0x2070, 0x209F}
	CurrencySymbols                      = UnicodeRange{33, 0x20A0, 0x20CF}
	CombiningDiacriticalMarksForSymbols  = UnicodeRange{34, 0x20D0, 0x20FF}
	LetterlikeSymbols                    = UnicodeRange{35, 0x2100, 0x214F}
	NumberForms                          = UnicodeRange{36, 0x2150, 0x218F}
	Arrows                               = UnicodeRange{37, 0x2190, 0x21FF}
	SupplementalArrowsA                  = UnicodeRange{37, 0x27F0, 0x27FF}
	SupplementalArrowsB                  = UnicodeRange{37, 0x2900, 0x297F}
	MiscellaneousSymbolsAndArrows        = UnicodeRange{37, 0x2B00, 0x2BFF}
	MathematicalOperators                = UnicodeRange{38, 0x2200, 0x22FF}
	SupplementalMathematicalOperators    = UnicodeRange{38, 0x2A00, 0x2AFF}
	MiscellaneousMathematicalSymbolsA    = UnicodeRange{38, 0x27C0, 0x27EF}
	MiscellaneousMathematicalSymbolsB    = UnicodeRange{38, 0x2980, 0x29FF}
	MiscellaneousTechnical               = UnicodeRange{39, 0x2300, 0x23FF}
	ControlPictures                      = UnicodeRange{40, 0x2400, 0x243F}
	OpticalCharacterRecognition          = UnicodeRange{41, 0x2440, 0x245F}
	EnclosedAlphanumerics                = UnicodeRange{42, 0x2460, 0x24FF}
	BoxDrawing                           = UnicodeRange{43, 0x2500, 0x257F}
	BlockElements                        = UnicodeRange{44, 0x2580, 0x259F}
	GeometricShapes                      = UnicodeRange{45, 0x25A0, 0x25FF}
	MiscellaneousSymbols                 = UnicodeRange{46, 0x2600, 0x26FF}
	Dingbats                             = UnicodeRange{47, 0x2700, 0x27BF}
	CJKSymbolsAndPunctuation             = UnicodeRange{48, 0x3000, 0x303F}
	Hiragana                             = UnicodeRange{49, 0x3040, 0x309F}
	Katakana                             = UnicodeRange{50, 0x30A0, 0x30FF}
	KatakanaPhoneticExtensions           = UnicodeRange{50, 0x31F0, 0x31FF}
	Bopomofo                             = UnicodeRange{51, 0x3100, 0x312F}
	BopomofoExtended                     = UnicodeRange{51, 0x31A0, 0x31BF}
	HangulCompatibilityJamo              = UnicodeRange{52, 0x3130, 0x318F}
	PhagsPa                              = UnicodeRange{53, 0xA840, 0xA87F}
	EnclosedCJKLettersAndMonths          = UnicodeRange{54, 0x3200, 0x32FF}
	CJKCompatibility                     = UnicodeRange{55, 0x3300, 0x33FF}
	HangulSyllables                      = UnicodeRange{56, 0xAC00, 0xD7AF}
	NonPlane0                            = UnicodeRange{57, 0xD800, 0xDFFF}
	Phoenician                           = UnicodeRange{58, 0x10900, 0x1091F}
	CJKUnifiedIdeographs                 = UnicodeRange{59, 0x4E00, 0x9FFF}
	CJKRadicalsSupplement                = UnicodeRange{59, 0x2E80, 0x2EFF}
	KangxiRadicals                       = UnicodeRange{59, 0x2F00, 0x2FDF}
	IdeographicDescriptionCharacters     = UnicodeRange{59, 0x2FF0, 0x2FFF}
	CJKUnifiedIdeographsExtensionA       = UnicodeRange{59, 0x3400, 0x4DBF}
	CJKUnifiedIdeographsExtensionB       = UnicodeRange{59, 0x20000, 0x2A6DF}
	Kanbun                               = UnicodeRange{59, 0x3190, 0x319F}
	PrivateUseAreaPlane0                 = UnicodeRange{60, 0xE000, 0xF8FF}
	CJKStrokes                           = UnicodeRange{61, 0x31C0, 0x31EF}
	CJKCompatibilityIdeographs           = UnicodeRange{61, 0xF900, 0xFAFF}
	CJKCompatibilityIdeographsSupplement = UnicodeRange{61, 0x2F800, 0x2FA1F}
	AlphabeticPresentationForms          = UnicodeRange{62, 0xFB00, 0xFB4F}
	ArabicPresentationFormsA             = UnicodeRange{63, 0xFB50, 0xFDFF}
	CombiningHalfMarks                   = UnicodeRange{64, 0xFE20, 0xFE2F}
	VerticalForms                        = UnicodeRange{65, 0xFE10, 0xFE1F}
	CJKCompatibilityForms                = UnicodeRange{65, 0xFE30, 0xFE4F}
	SmallFormVariants                    = UnicodeRange{66, 0xFE50, 0xFE6F}
	ArabicPresentationFormsB             = UnicodeRange{67, 0xFE70, 0xFEFF}
	HalfwidthAndFullwidthForms           = UnicodeRange{68, 0xFF00, 0xFFEF}
	Specials                             = UnicodeRange{69, 0xFFF0, 0xFFFF}
	Tibetan                              = UnicodeRange{70, 0x0F00, 0x0FFF}
	Syriac                               = UnicodeRange{71, 0x0700, 0x074F}
	Thaana                               = UnicodeRange{72, 0x0780, 0x07BF}
	Sinhala                              = UnicodeRange{73, 0x0D80, 0x0DFF}
	Myanmar                              = UnicodeRange{74, 0x1000, 0x109F}
	Ethiopic                             = UnicodeRange{75, 0x1200, 0x137F}
	EthiopicSupplement                   = UnicodeRange{75, 0x1380, 0x139F}
	EthiopicExtended                     = UnicodeRange{75, 0x2D80, 0x2DDF}
	Cherokee                             = UnicodeRange{76, 0x13A0, 0x13FF}
	UnifiedCanadianAboriginalSyllabics   = UnicodeRange{77, 0x1400, 0x167F}
	Ogham                                = UnicodeRange{78, 0x1680, 0x169F}
	Runic                                = UnicodeRange{79, 0x16A0, 0x16FF}
	Khmer                                = UnicodeRange{80, 0x1780, 0x17FF}
	KhmerSymbols                         = UnicodeRange{80, 0x19E0, 0x19FF}
	Mongolian                            = UnicodeRange{81, 0x1800, 0x18AF}
	BraillePatterns                      = UnicodeRange{82, 0x2800, 0x28FF}
	YiSyllables                          = UnicodeRange{83, 0xA000, 0xA48F}
	YiRadicals                           = UnicodeRange{83, 0xA490, 0xA4CF}
	Tagalog                              = UnicodeRange{84, 0x1700, 0x171F}
	Hanunoo                              = UnicodeRange{84, 0x1720, 0x173F}
	Buhid                                = UnicodeRange{84, 0x1740, 0x175F}
	Tagbanwa                             = UnicodeRange{84, 0x1760, 0x177F}
	OldItalic                            = UnicodeRange{85, 0x10300, 0x1032F}
	Gothic                               = UnicodeRange{86, 0x10330, 0x1034F}
	Deseret                              = UnicodeRange{87, 0x10400, 0x1044F}
	ByzantineMusicalSymbols              = UnicodeRange{88, 0x1D000, 0x1D0FF}
	MusicalSymbols                       = UnicodeRange{88, 0x1D100, 0x1D1FF}
	AncientGreekMusicalNotation          = UnicodeRange{88, 0x1D200, 0x1D24F}
	MathematicalAlphanumericSymbols      = UnicodeRange{89, 0x1D400, 0x1D7FF}
	PrivateUsePlane15                    = UnicodeRange{90, 0xF0000, 0xFFFFD}
	PrivateUsePlane16                    = UnicodeRange{90, 0x100000, 0x10FFFD}
	VariationSelectors                   = UnicodeRange{91, 0xFE00, 0xFE0F}
	VariationSelectorsSupplement         = UnicodeRange{91, 0xE0100, 0xE01EF}
	Tags                                 = UnicodeRange{92, 0xE0000, 0xE007F}
	Limbu                                = UnicodeRange{93, 0x1900, 0x194F}
	TaiLe                                = UnicodeRange{94, 0x1950, 0x197F}
	NewTaiLue                            = UnicodeRange{95, 0x1980, 0x19DF}
	Buginese                             = UnicodeRange{96, 0x1A00, 0x1A1F}
	Glagolitic                           = UnicodeRange{97, 0x2C00, 0x2C5F}
	Tifinagh                             = UnicodeRange{98, 0x2D30, 0x2D7F}
	YijingHexagramSymbols                = UnicodeRange{99, 0x4DC0, 0x4DFF}
	SylotiNagri                          = UnicodeRange{100, 0xA800, 0xA82F}
	LinearBSyllabary                     = UnicodeRange{101, 0x10000, 0x1007F}
	LinearBIdeograms                     = UnicodeRange{101, 0x10080, 0x100FF}
	AegeanNumbers                        = UnicodeRange{101, 0x10100, 0x1013F}
	AncientGreekNumbers                  = UnicodeRange{102, 0x10140, 0x1018F}
	Ugaritic                             = UnicodeRange{103, 0x10380, 0x1039F}
	OldPersian                           = UnicodeRange{104, 0x103A0, 0x103DF}
	Shavian                              = UnicodeRange{105, 0x10450, 0x1047F}
	Osmanya                              = UnicodeRange{106, 0x10480, 0x104AF}
	CypriotSyllabary                     = UnicodeRange{107, 0x10800, 0x1083F}
	Kharoshthi                           = UnicodeRange{108, 0x10A00, 0x10A5F}
	TaiXuanJingSymbols                   = UnicodeRange{109, 0x1D300, 0x1D35F}
	Cuneiform                            = UnicodeRange{110, 0x12000, 0x123FF}
	CuneiformNumbersAndPunctuation       = UnicodeRange{110, 0x12400, 0x1247F}
	CountingRodNumerals                  = UnicodeRange{111, 0x1D360, 0x1D37F}
	Sundanese                            = UnicodeRange{112, 0x1B80, 0x1BBF}
	Lepcha                               = UnicodeRange{113, 0x1C00, 0x1C4F}
	OlChiki                              = UnicodeRange{114, 0x1C50, 0x1C7F}
	Saurashtra                           = UnicodeRange{115, 0xA880, 0xA8DF}
	KayahLi                              = UnicodeRange{116, 0xA900, 0xA92F}
	Rejang                               = UnicodeRange{117, 0xA930, 0xA95F}
	Cham                                 = UnicodeRange{118, 0xAA00, 0xAA5F}
	AncientSymbols                       = UnicodeRange{119, 0x10190, 0x101CF}
	PhaistosDisc                         = UnicodeRange{120, 0x101D0, 0x101FF}
	Carian                               = UnicodeRange{121, 0x102A0, 0x102DF}
	Lycian                               = UnicodeRange{121, 0x10280, 0x1029F}
	Lydian                               = UnicodeRange{121, 0x10920, 0x1093F}
	DominoTiles                          = UnicodeRange{122, 0x1F030, 0x1F09F}
	MahjongTiles                         = UnicodeRange{122, 0x1F000, 0x1F02F}
)

// os2Ranges lists every block of the OS/2 table in bit order.
var os2Ranges = [...]UnicodeRange{
	BasicLatin, Latin1Supplement, LatinExtendedA, LatinExtendedB,
	IPAExtensions, PhoneticExtensions, PhoneticExtensionsSupplement,
	SpacingModifierLetters, ModifierToneLetters,
	CombiningDiacriticalMarks, CombiningDiacriticalMarksSupplement,
	GreekAndCoptic, Coptic,
	Cyrillic, CyrillicSupplement, CyrillicExtendedA, CyrillicExtendedB,
	Armenian, Hebrew, Vai, Arabic, ArabicSupplement, NKo,
	Devanagari, Bengali, Gurmukhi, Gujarati, Oriya, Tamil, Telugu, Kannada, Malayalam,
	Thai, Lao, Georgian, GeorgianSupplement, Balinese, HangulJamo,
	LatinExtendedAdditional, LatinExtendedC, LatinExtendedD,
	GreekExtended, GeneralPunctuation, SupplementalPunctuation,
	SuperscriptsAndSubscripts, CurrencySymbols, CombiningDiacriticalMarksForSymbols,
	LetterlikeSymbols, NumberForms,
	Arrows, SupplementalArrowsA, SupplementalArrowsB, MiscellaneousSymbolsAndArrows,
	MathematicalOperators, SupplementalMathematicalOperators,
	MiscellaneousMathematicalSymbolsA, MiscellaneousMathematicalSymbolsB,
	MiscellaneousTechnical, ControlPictures, OpticalCharacterRecognition,
	EnclosedAlphanumerics, BoxDrawing, BlockElements, GeometricShapes,
	MiscellaneousSymbols, Dingbats, CJKSymbolsAndPunctuation,
	Hiragana, Katakana, KatakanaPhoneticExtensions, Bopomofo, BopomofoExtended,
	HangulCompatibilityJamo, PhagsPa, EnclosedCJKLettersAndMonths, CJKCompatibility,
	HangulSyllables, NonPlane0, Phoenician,
	CJKUnifiedIdeographs, CJKRadicalsSupplement, KangxiRadicals,
	IdeographicDescriptionCharacters, CJKUnifiedIdeographsExtensionA,
	CJKUnifiedIdeographsExtensionB, Kanbun,
	PrivateUseAreaPlane0, CJKStrokes, CJKCompatibilityIdeographs,
	CJKCompatibilityIdeographsSupplement, AlphabeticPresentationForms,
	ArabicPresentationFormsA, CombiningHalfMarks, VerticalForms, CJKCompatibilityForms,
	SmallFormVariants, ArabicPresentationFormsB, HalfwidthAndFullwidthForms, Specials,
	Tibetan, Syriac, Thaana, Sinhala, Myanmar,
	Ethiopic, EthiopicSupplement, EthiopicExtended, Cherokee,
	UnifiedCanadianAboriginalSyllabics, Ogham, Runic, Khmer, KhmerSymbols, Mongolian,
	BraillePatterns, YiSyllables, YiRadicals, Tagalog, Hanunoo, Buhid, Tagbanwa,
	OldItalic, Gothic, Deseret,
	ByzantineMusicalSymbols, MusicalSymbols, AncientGreekMusicalNotation,
	MathematicalAlphanumericSymbols, PrivateUsePlane15, PrivateUsePlane16,
	VariationSelectors, VariationSelectorsSupplement, Tags,
	Limbu, TaiLe, NewTaiLue, Buginese, Glagolitic, Tifinagh, YijingHexagramSymbols,
	SylotiNagri, LinearBSyllabary, LinearBIdeograms, AegeanNumbers, AncientGreekNumbers,
	Ugaritic, OldPersian, Shavian, Osmanya, CypriotSyllabary, Kharoshthi,
	TaiXuanJingSymbols, Cuneiform, CuneiformNumbersAndPunctuation, CountingRodNumerals,
	Sundanese, Lepcha, OlChiki, Saurashtra, KayahLi, Rejang, Cham,
	AncientSymbols, PhaistosDisc, Carian, Lycian, Lydian, DominoTiles, MahjongTiles,
}

// MaxOS2Bit is the highest bit of field ulUnicodeRange with an assigned block.
// Bits 123–127 are reserved for process-internal usage.
const MaxOS2Bit = 122

// OS2Ranges yields all Unicode blocks of the OS/2 table, ordered by bit number.
func OS2Ranges() iter.Seq[UnicodeRange] {
	return func(yield func(UnicodeRange) bool) {
		for _, ur := range os2Ranges {
			if !yield(ur) {
				return
			}
		}
	}
}

// RangesForBit returns the Unicode blocks reported by OS/2 bit number bit.
// It returns nil for reserved or out-of-range bits.
func RangesForBit(bit int) []UnicodeRange {
	var blocks []UnicodeRange
	for _, ur := range os2Ranges {
		if ur.Bit == bit {
			blocks = append(blocks, ur)
		}
	}
	return blocks
}

// BitForRune returns the OS/2 bit of the block containing r, or -1 if no
// block of the OS/2 table contains r.
func BitForRune(r rune) int {
	for _, ur := range os2Ranges {
		if ur.Contains(r) {
			return ur.Bit
		}
	}
	return -1
}
