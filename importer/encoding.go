package importer

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// codePageSymbol marks fonts whose bytes map to the Unicode private use
// area at U+F000.
const codePageSymbol = 42

var codePages = map[int]encoding.Encoding{
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	855:   charmap.CodePage855,
	860:   charmap.CodePage860,
	862:   charmap.CodePage862,
	863:   charmap.CodePage863,
	865:   charmap.CodePage865,
	866:   charmap.CodePage866,
	874:   charmap.Windows874,
	932:   japanese.ShiftJIS,
	936:   simplifiedchinese.GBK,
	949:   korean.EUCKR,
	950:   traditionalchinese.Big5,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	10000: charmap.Macintosh,
	10007: charmap.MacintoshCyrillic,
	20866: charmap.KOI8R,
	21866: charmap.KOI8U,
	28591: charmap.ISO8859_1,
	28592: charmap.ISO8859_2,
	28595: charmap.ISO8859_5,
	28597: charmap.ISO8859_7,
	28599: charmap.ISO8859_9,
	65001: unicode.UTF8,
}

// charsetCodePages maps \fcharset values to code pages.
var charsetCodePages = map[int]int{
	0:   1252,
	2:   codePageSymbol,
	77:  10000,
	128: 932,
	129: 949,
	130: 949,
	134: 936,
	136: 950,
	161: 1253,
	162: 1254,
	163: 1258,
	177: 1255,
	178: 1256,
	186: 1257,
	204: 1251,
	222: 874,
	238: 1250,
	254: 437,
	255: 850,
}

// fontNameSuffixes are the font name suffixes old writers used instead of
// \fcharset, as in "Arial CE".
var fontNameSuffixes = map[string]int{
	"CE":           1250,
	"Cyr":          1251,
	"Greek":        1253,
	"Tur":          1254,
	"(Hebrew)":     1255,
	"(Arabic)":     1256,
	"Baltic":       1257,
	"(Vietnamese)": 1258,
	"(Thai)":       874,
}

func charsetCodePage(charset int) (int, bool) {
	cp, ok := charsetCodePages[charset]
	return cp, ok
}

// decode converts bytes in code page cp to a string. Unknown code pages are
// read as Windows-1252.
func decode(b []byte, cp int) string {
	if cp == codePageSymbol {
		rs := make([]rune, len(b))
		for i, c := range b {
			rs[i] = 0xF000 + rune(c)
		}
		return string(rs)
	}
	enc, ok := codePages[cp]
	if !ok {
		enc = charmap.Windows1252
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

// leadByteFunc returns the DBCS lead byte predicate of cp, or nil for single
// byte code pages.
func leadByteFunc(cp int) func(byte) bool {
	switch cp {
	case 932:
		return func(b byte) bool { return (b >= 0x81 && b <= 0x9f) || (b >= 0xe0 && b <= 0xfc) }
	case 936, 949, 950:
		return func(b byte) bool { return b >= 0x81 && b <= 0xfe }
	}
	return nil
}

// syncLeadByte configures the tokenizer for the code page of the current
// group.
func (imp *Importer) syncLeadByte() {
	cp := imp.top().encoding
	if cp == imp.leadByteCP {
		return
	}
	imp.leadByteCP = cp
	imp.tok.SetLeadByte(leadByteFunc(cp))
}

// fontCodePage returns the code page of a font table index.
func (imp *Importer) fontCodePage(index int) int {
	if cp, ok := imp.t.fontEncodings[index]; ok {
		return cp
	}
	return imp.t.codePage
}
