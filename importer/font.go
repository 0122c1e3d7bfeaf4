package importer

import (
	"strings"

	"github.com/tsawler/rtfimport/sprm"
)

func (imp *Importer) inFontTable() bool {
	d := imp.top().dest
	return d == DestFontTable || d == DestFontEntry
}

// fontKeyword handles \fN and \afN. Inside the font table it selects the
// entry being defined; elsewhere it sets the run font and the code page of
// the following text.
func (imp *Importer) fontKeyword(st *parserState, associated bool, n int) {
	if imp.inFontTable() {
		imp.currentFontIndex = n
		return
	}
	name := imp.t.fontNames[n]
	switch {
	case associated || st.runType.complexScript():
		sprm.PutNestedAttribute(&st.charSprms, sprm.Fonts, sprm.FontsCS, sprm.String(name))
	case st.runType == runDbch:
		sprm.PutNestedAttribute(&st.charSprms, sprm.Fonts, sprm.FontsEastAsia, sprm.String(name))
	default:
		st.fontIndex = n
		sprm.PutNestedAttribute(&st.charSprms, sprm.Fonts, sprm.FontsASCII, sprm.String(name))
		sprm.PutNestedAttribute(&st.charSprms, sprm.Fonts, sprm.FontsHAnsi, sprm.String(name))
	}
	if !associated {
		st.encoding = imp.fontCodePage(n)
	}
}

// fontTableValue handles the font table entry values.
func (imp *Importer) fontTableValue(name string, n int) bool {
	st := imp.top()
	switch name {
	case "fcharset":
		st.tableAttrs.Put(sprm.FontCharset, sprm.Int(n))
		if cp, ok := charsetCodePage(n); ok {
			imp.currentEncoding = cp
			st.encoding = cp
		}
	case "cpg":
		imp.currentEncoding = n
		st.encoding = n
	case "fprq":
		st.tableAttrs.Put(sprm.FontPitch, sprm.Int(n))
	default:
		return false
	}
	return true
}

// finishFontEntry stores the font whose name ends the current font table
// entry. Old writers name the script in the font name instead of giving a
// charset; such a suffix selects the code page and is dropped.
func (imp *Importer) finishFontEntry(st *parserState) {
	name := strings.TrimSpace(strings.TrimSuffix(st.takeText(), ";"))
	if i := strings.LastIndexByte(name, ' '); i > 0 {
		if cp, ok := fontNameSuffixes[name[i+1:]]; ok {
			imp.currentEncoding = cp
			st.encoding = cp
			name = name[:i]
		}
	}

	index := imp.currentFontIndex
	imp.t.fontNames[index] = name
	if imp.currentEncoding >= 0 {
		imp.t.fontEncodings[index] = imp.currentEncoding
		imp.currentEncoding = -1
	}
	st.tableAttrs.Put(sprm.FontName, sprm.String(name))
	imp.t.fonts.Set(index, NewProperties(st.tableAttrs, st.tableSprms))
	st.tableAttrs.Clear()
	st.tableSprms.Clear()
	st.encoding = imp.t.codePage
}

// endFontTable sends the font table. The default font becomes the run
// font of the document defaults.
func (imp *Importer) endFontTable(st *parserState) {
	if st.ownsText() && strings.TrimSpace(st.curText.String()) != "" {
		imp.finishFontEntry(st)
	}
	if st.dest != DestFontTable {
		return
	}
	imp.sink.Table(sprm.FontTable, &imp.t.fonts)
	if imp.defaultFontIndex < 0 {
		return
	}
	if name, ok := imp.t.fontNames[imp.defaultFontIndex]; ok {
		sprm.PutNestedAttribute(&imp.defaultState.charSprms, sprm.Fonts, sprm.FontsASCII, sprm.String(name))
		sprm.PutNestedAttribute(&imp.defaultState.charSprms, sprm.Fonts, sprm.FontsHAnsi, sprm.String(name))
		imp.defaultState.encoding = imp.fontCodePage(imp.defaultFontIndex)
	}
}

// altFontName stores a \falt alternative name on the entry being defined.
func (imp *Importer) altFontName(st, parent *parserState) {
	if st.ownsText() && parent != nil {
		parent.tableSprms.Put(sprm.FontAltName, sprm.String(strings.TrimSpace(st.takeText())))
	}
}
