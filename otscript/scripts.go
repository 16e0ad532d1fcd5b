package otscript

// Script tags from
// https://learn.microsoft.com/en-us/typography/opentype/spec/scripttags
//
// Order matters: for shared tags and for Unicode blocks claimed by more than
// one script, the earlier entry wins.
var scriptTable = [...]struct {
	name   string
	tag    string
	ranges []UnicodeRange
}{
	{"Adlam", "adlm", nil},
	{"Anatolian Hieroglyphs", "hluw", nil},
	{"Arabic", "arab", []UnicodeRange{Arabic, ArabicSupplement, ArabicPresentationFormsA, ArabicPresentationFormsB}},
	{"Armenian", "armn", []UnicodeRange{Armenian}},
	{"Avestan", "avst", nil},
	//
	{"Balinese", "bali", []UnicodeRange{Balinese}},
	{"Bamum", "bamu", nil},
	{"Bassa Vah", "bass", nil},
	{"Batak", "batk", nil},
	{"Bengali", "beng", []UnicodeRange{Bengali}},
	{"Bengali v.2", "bng2", []UnicodeRange{Bengali}},
	{"Bhaiksuki", "bhks", nil},
	{"Brahmi", "brah", nil},
	{"Braille", "brai", []UnicodeRange{BraillePatterns}},
	{"Buginese", "bugi", []UnicodeRange{Buginese}},
	{"Buhid", "buhd", []UnicodeRange{Buhid}},
	{"Byzantine Music", "byzm", []UnicodeRange{ByzantineMusicalSymbols}},
	//
	{"Canadian Syllabics", "cans", []UnicodeRange{UnifiedCanadianAboriginalSyllabics}},
	{"Carian", "cari", []UnicodeRange{Carian}},
	{"Caucasian Albanian", "aghb", nil},
	{"Chakma", "cakm", nil},
	{"Cham", "cham", []UnicodeRange{Cham}},
	{"Cherokee", "cher", []UnicodeRange{Cherokee}},
	{"CJK Ideographic", "hani", []UnicodeRange{
		CJKCompatibility, CJKCompatibilityForms, CJKCompatibilityIdeographs,
		CJKCompatibilityIdeographsSupplement, CJKRadicalsSupplement,
		CJKUnifiedIdeographs, CJKUnifiedIdeographsExtensionA,
	}},
	{"Coptic", "copt", []UnicodeRange{Coptic}},
	{"Cypriot Syllabary", "cprt", []UnicodeRange{CypriotSyllabary}},
	{"Cyrillic", "cyrl", []UnicodeRange{Cyrillic, CyrillicSupplement, CyrillicExtendedA, CyrillicExtendedB}},
	//
	{"Default", "DFLT", nil},
	{"Deseret", "dsrt", []UnicodeRange{Deseret}},
	{"Devanagari", "deva", []UnicodeRange{Devanagari}},
	{"Devanagari v.2", "dev2", []UnicodeRange{Devanagari}},
	{"Duployan", "dupl", nil},
	//
	{"Egyptian Hieroglyphs", "egyp", nil},
	{"Elbasan", "elba", nil},
	{"Ethiopic", "ethi", []UnicodeRange{Ethiopic, EthiopicExtended, EthiopicSupplement}},
	//
	{"Georgian", "geor", []UnicodeRange{Georgian, GeorgianSupplement}},
	{"Glagolitic", "glag", []UnicodeRange{Glagolitic}},
	{"Gothic", "goth", []UnicodeRange{Gothic}},
	{"Grantha", "gran", nil},
	{"Greek", "grek", []UnicodeRange{GreekAndCoptic, GreekExtended}},
	{"Gujarati", "gujr", []UnicodeRange{Gujarati}},
	{"Gujarati v.2", "gjr2", []UnicodeRange{Gujarati}},
	{"Gurmukhi", "guru", []UnicodeRange{Gurmukhi}},
	{"Gurmukhi v.2", "gur2", []UnicodeRange{Gurmukhi}},
	//
	{"Hangul", "hang", []UnicodeRange{HangulSyllables}},
	{"Hangul Jamo", "jamo", []UnicodeRange{HangulJamo}},
	{"Hanunoo", "hano", []UnicodeRange{Hanunoo}},
	{"Hatran", "hatr", nil},
	{"Hebrew", "hebr", []UnicodeRange{Hebrew}},
	{"Hiragana", "kana", []UnicodeRange{Hiragana}},
	//
	{"Imperial Aramaic", "armi", nil},
	{"Inscriptional Pahlavi", "phli", nil},
	{"Inscriptional Parthian", "prti", nil},
	//
	{"Javanese", "java", nil},
	//
	{"Kaithi", "kthi", nil},
	{"Kannada", "knda", []UnicodeRange{Kannada}},
	{"Kannada v.2", "knd2", []UnicodeRange{Kannada}},
	{"Katakana", "kana", []UnicodeRange{Katakana, KatakanaPhoneticExtensions}},
	{"Kayah Li", "kali", nil},
	{"Kharosthi", "khar", []UnicodeRange{Kharoshthi}},
	{"Khmer", "khmr", []UnicodeRange{Khmer, KhmerSymbols}},
	{"Khojki", "khoj", nil},
	{"Khudawadi", "sind", nil},
	//
	{"Lao", "lao", []UnicodeRange{Lao}},
	{"Latin", "latn", []UnicodeRange{
		BasicLatin, Latin1Supplement, LatinExtendedA, LatinExtendedAdditional,
		LatinExtendedB, LatinExtendedC, LatinExtendedD,
	}},
	{"Lepcha", "lepc", []UnicodeRange{Lepcha}},
	{"Limbu", "limb", []UnicodeRange{Limbu}},
	{"Linear A", "lina", nil},
	{"Linear B", "linb", []UnicodeRange{LinearBIdeograms, LinearBSyllabary}},
	{"Lisu (Fraser)", "lisu", nil},
	{"Lycian", "lyci", []UnicodeRange{Lycian}},
	{"Lydian", "lydi", []UnicodeRange{Lydian}},
	//
	{"Mahajani", "mahj", nil},
	{"Malayalam", "mlym", []UnicodeRange{Malayalam}},
	{"Malayalam v.2", "mlm2", []UnicodeRange{Malayalam}},
	{"Mandaic, Mandaean", "mand", nil},
	{"Manichaean", "mani", nil},
	{"Marchen", "marc", nil},
	{"Mathematical Alphanumeric Symbols", "math", []UnicodeRange{MathematicalAlphanumericSymbols}},
	{"Meitei Mayek (Meithei, Meetei)", "mtei", nil},
	{"Mende Kikakui", "mend", nil},
	{"Meroitic Cursive", "merc", nil},
	{"Meroitic Hieroglyphs", "mero", nil},
	{"Miao", "plrd", nil},
	{"Modi", "modi", nil},
	{"Mongolian", "mong", []UnicodeRange{Mongolian}},
	{"Mro", "mroo", nil},
	{"Multani", "mult", nil},
	{"Musical Symbols", "musc", []UnicodeRange{MusicalSymbols}},
	{"Myanmar", "mymr", []UnicodeRange{Myanmar}},
	{"Myanmar v.2", "mym2", []UnicodeRange{Myanmar}},
	//
	{"Nabataean", "nbat", nil},
	{"Newa", "newa", nil},
	{"New Tai Lue", "talu", []UnicodeRange{NewTaiLue}},
	{"N'Ko", "nko", []UnicodeRange{NKo}},
	//
	{"Odia (formerly Oriya)", "orya", nil},
	{"Odia v.2 (formerly Oriya v.2)", "ory2", nil},
	{"Ogham", "ogam", []UnicodeRange{Ogham}},
	{"Ol Chiki", "olck", []UnicodeRange{OlChiki}},
	{"Old Italic", "ital", nil},
	{"Old Hungarian", "hung", nil},
	{"Old North Arabian", "narb", nil},
	{"Old Permic", "perm", nil},
	{"Old Persian Cuneiform", "xpeo", nil},
	{"Old South Arabian", "sarb", nil},
	{"Old Turkic, Orkhon Runic", "orkh", nil},
	{"Osage", "osge", nil},
	{"Osmanya", "osma", []UnicodeRange{Osmanya}},
	//
	{"Pahawh Hmong", "hmng", nil},
	{"Palmyrene", "palm", nil},
	{"Pau Cin Hau", "pauc", nil},
	{"Phags-pa", "phag", []UnicodeRange{PhagsPa}},
	{"Phoenician", "phnx", nil},
	{"Psalter Pahlavi", "phlp", nil},
	//
	{"Rejang", "rjng", []UnicodeRange{Rejang}},
	{"Runic", "runr", []UnicodeRange{Runic}},
	//
	{"Samaritan", "samr", nil},
	{"Saurashtra", "saur", []UnicodeRange{Saurashtra}},
	{"Sharada", "shrd", nil},
	{"Shavian", "shaw", []UnicodeRange{Shavian}},
	{"Siddham", "sidd", nil},
	{"Sign Writing", "sgnw", nil},
	{"Sinhala", "sinh", []UnicodeRange{Sinhala}},
	{"Sora Sompeng", "sora", nil},
	{"Sumero-Akkadian Cuneiform", "xsux", nil},
	{"Sundanese", "sund", []UnicodeRange{Sundanese}},
	{"Syloti Nagri", "sylo", []UnicodeRange{SylotiNagri}},
	{"Syriac", "syrc", []UnicodeRange{Syriac}},
	//
	{"Tagalog", "tglg", nil},
	{"Tagbanwa", "tagb", []UnicodeRange{Tagbanwa}},
	{"Tai Le", "tale", []UnicodeRange{TaiLe}},
	{"Tai Tham (Lanna)", "lana", nil},
	{"Tai Viet", "tavt", nil},
	{"Takri", "takr", nil},
	{"Tamil", "taml", []UnicodeRange{Tamil}},
	{"Tamil v.2", "tml2", []UnicodeRange{Tamil}},
	{"Tangut", "tang", nil},
	{"Telugu", "telu", []UnicodeRange{Telugu}},
	{"Telugu v.2", "tel2", []UnicodeRange{Telugu}},
	{"Thaana", "thaa", []UnicodeRange{Thaana}},
	{"Thai", "thai", []UnicodeRange{Thai}},
	{"Tibetan", "tibt", []UnicodeRange{Tibetan}},
	{"Tifinagh", "tfng", []UnicodeRange{Tifinagh}},
	{"Tirhuta", "tirh", nil},
	//
	{"Ugaritic Cuneiform", "ugar", nil},
	//
	{"Vai", "vai", nil},
	//
	{"Warang Citi", "wara", nil},
	//
	{"Yi", "yi", []UnicodeRange{YiSyllables}},
}

// registerScripts enters the static script table into b.
func registerScripts(b *Builder) error {
	for _, entry := range scriptTable {
		if _, err := b.Register(entry.name, entry.tag, entry.ranges...); err != nil {
			return err
		}
	}
	return nil
}
