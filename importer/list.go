package importer

import (
	"strconv"
	"strings"

	"github.com/tsawler/rtfimport/sprm"
)

// levelNumberFormats maps \levelnfc values to number formats.
var levelNumberFormats = map[int]int{
	0:   sprm.NumFmtDecimal,
	1:   sprm.NumFmtUpperRoman,
	2:   sprm.NumFmtLowerRoman,
	3:   sprm.NumFmtUpperLetter,
	4:   sprm.NumFmtLowerLetter,
	5:   sprm.NumFmtOrdinal,
	6:   sprm.NumFmtCardinalText,
	7:   sprm.NumFmtOrdinalText,
	22:  sprm.NumFmtDecimalZero,
	23:  sprm.NumFmtBullet,
	255: sprm.NumFmtNone,
}

var levelJustifications = map[int]int{
	0: sprm.JcLeft,
	1: sprm.JcCenter,
	2: sprm.JcRight,
}

// listValue handles the list table, list override table and old-style
// paragraph numbering values.
func (imp *Importer) listValue(name string, n int) bool {
	st := imp.top()
	switch name {
	case "levelnfc", "levelnfcn":
		f, ok := levelNumberFormats[n]
		if !ok {
			f = sprm.NumFmtDecimal
		}
		st.tableSprms.Put(sprm.LvlNumFmt, sprm.Int(f))
	case "levelstartat":
		if st.dest == DestLfoLevel {
			st.tableSprms.Put(sprm.StartOverride, sprm.Int(n))
			return true
		}
		st.tableSprms.Put(sprm.LvlStart, sprm.Int(n))
	case "leveljc", "leveljcn":
		st.tableSprms.Put(sprm.LvlJc, sprm.Int(levelJustifications[n]))
	case "levelfollow":
		st.tableSprms.Put(sprm.LvlSuffix, sprm.Int(n))
	case "levellegal":
		st.tableSprms.Put(sprm.LvlLegal, sprm.Int(boolInt(n != 0)))
	case "levelnorestart":
		if n != 0 {
			st.tableSprms.Put(sprm.LvlRestart, sprm.Int(0))
		}
	case "levelpicture":
		st.tableSprms.Put(sprm.LvlPicBulletID, sprm.Int(n))
	case "listid":
		st.listIndex = n
		switch st.dest {
		case DestListEntry:
			st.tableAttrs.Put(sprm.AbstractNumID, sprm.Int(n))
		case DestListOverrideEntry:
			st.tableSprms.Put(sprm.NumAbstractNumID, sprm.Int(n))
		}
	case "listtemplateid":
		st.tableSprms.Put(sprm.AbstractNumTmpl, sprm.Int(n))
	case "pnstart":
		st.tableSprms.Put(sprm.LvlStart, sprm.Int(n))
	case "pnf":
		name := imp.t.fontNames[n]
		sprm.PutNestedAttribute(&st.charSprms, sprm.Fonts, sprm.FontsASCII, sprm.String(name))
		sprm.PutNestedAttribute(&st.charSprms, sprm.Fonts, sprm.FontsHAnsi, sprm.String(name))
	case "pnindent":
		sprm.PutNestedAttribute(&st.tableSprms, sprm.Ind, sprm.IndLeft, sprm.Int(n))
	case "pnfs":
		st.charSprms.Put(sprm.Size, sprm.Int(n))
	default:
		return false
	}
	return true
}

// endLevelText stores the text of a \leveltext group. Its first character
// is the length of the text that follows.
func (imp *Importer) endLevelText(st *parserState) {
	if !st.ownsText() {
		return
	}
	text := []rune(st.takeText())
	if len(text) == 0 {
		return
	}
	value := string(text)
	if n := int(text[0]); n < len(text) {
		value = string(text[1 : n+1])
	}
	st.tableAttrs.Put(sprm.LvlTextVal, sprm.String(value))
}

// endLevelNumbers turns the placeholder positions listed by \levelnumbers
// into %N references of the level text. A level that omits the numbers of
// its parents still refers to them by level.
func (imp *Importer) endLevelNumbers(st *parserState) {
	if p := imp.parent(); p != nil && p.dest == DestLevelNumbers {
		return
	}
	lvlText := st.tableSprms.FindForWrite(sprm.LvlText)
	if lvlText == nil {
		return
	}
	attrs := lvlText.Attributes()
	val := attrs.Find(sprm.LvlTextVal)
	if val == nil {
		return
	}
	if !st.levelNumbersValid {
		attrs.Put(sprm.LvlTextVal, sprm.String(""))
		return
	}

	var b strings.Builder
	replaces := 1
	for i, r := range []rune(val.Str()) {
		if !containsInt(st.levelNumbers, i+1) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('%')
		b.WriteString(strconv.Itoa(replaces + st.listLevelNum + 1 - len(st.levelNumbers)))
		replaces++
	}
	attrs.Put(sprm.LvlTextVal, sprm.String(b.String()))
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// endListLevel adds a finished \listlevel to the list or override level
// that holds it.
func (imp *Importer) endListLevel(st, parent *parserState) {
	ilvl := parent.listLevelNum
	parent.listLevelNum++
	st.tableAttrs.Put(sprm.LvlIlvl, sprm.Int(ilvl))

	first := sprm.NestedAttribute(st.tableSprms, sprm.Ind, sprm.IndFirstLine)
	if first != nil && sprm.NestedAttribute(st.tableSprms, sprm.Ind, sprm.IndLeft) == nil {
		if parent.invalidIndents == nil {
			parent.invalidIndents = make(map[int]int)
		}
		parent.invalidIndents[ilvl] = first.Int()
		sprm.EraseNestedAttribute(&st.tableSprms, sprm.Ind, sprm.IndFirstLine)
	}
	if !st.charSprms.Empty() || !st.charAttrs.Empty() {
		st.tableSprms.Put(sprm.LvlRPr, sprm.Props(st.charAttrs, st.charSprms))
	}

	lvl := sprm.Props(st.tableAttrs, st.tableSprms)
	if parent.dest == DestLfoLevel {
		parent.tableSprms.Put(sprm.Lvl, lvl)
		return
	}
	parent.listLevelEntries.Set(sprm.Lvl, lvl, sprm.Append)
}

// finishListEntry moves the collected levels into the list definition
// before the \list group closes.
func (imp *Importer) finishListEntry(st *parserState) {
	for _, e := range st.listLevelEntries.Entries() {
		st.tableSprms.Set(e.ID, e.Value, sprm.Append)
	}
	st.listLevelEntries.Clear()
}

// endListEntry registers a finished \list as abstract numbering.
func (imp *Importer) endListEntry(st *parserState) {
	v := sprm.Props(st.tableAttrs, st.tableSprms)
	imp.t.numbering.Set(sprm.AbstractNum, v, sprm.Append)
	imp.t.lists[st.listIndex] = v
	if len(st.invalidIndents) > 0 {
		imp.t.invalidFirstIndents[st.listIndex] = st.invalidIndents
	}
}

// endListOverride registers a finished \listoverride. A nested override
// hands its properties to the enclosing one.
func (imp *Importer) endListOverride(st, parent *parserState) {
	if parent.dest == DestListOverrideEntry {
		parent.tableAttrs = st.tableAttrs.Clone()
		parent.tableSprms = st.tableSprms.Clone()
		parent.overrideIndex = st.overrideIndex
		parent.listIndex = st.listIndex
		return
	}
	imp.t.numbering.Set(sprm.Num, sprm.Props(st.tableAttrs, st.tableSprms), sprm.Append)
	imp.t.overrides[st.overrideIndex] = st.listIndex
}

// endLfoLevel adds a finished \lfolevel to its override.
func (imp *Importer) endLfoLevel(st, parent *parserState) {
	st.tableAttrs.Put(sprm.LvlOverrideIlvl, sprm.Int(parent.listLevelNum))
	parent.listLevelNum++
	parent.tableSprms.Set(sprm.LvlOverride, sprm.Props(st.tableAttrs, st.tableSprms), sprm.Append)
}

// outputNumbering sends the numbering definitions collected so far.
func (imp *Importer) outputNumbering() {
	t := &Table{}
	t.Set(0, NewProperties(sprm.Sprms{}, imp.t.numbering))
	imp.sink.Table(sprm.NumberingTable, t)
}

// startParagraphNumbering handles \pn, old-style numbering that defines a
// single level list for the current paragraph.
func (imp *Importer) startParagraphNumbering(st *parserState) {
	st.dest = DestParagraphNumbering
	st.listIndex = imp.t.nextListID
	imp.t.nextListID++
	st.tableAttrs.Clear()
	st.tableSprms.Clear()
	st.charAttrs.Clear()
	st.charSprms.Clear()
	st.pnBefore, st.pnAfter = "", ""
}

// endParagraphNumbering turns a \pn group into a list and applies it to
// the enclosing paragraph.
func (imp *Importer) endParagraphNumbering(st, parent *parserState) {
	id := st.listIndex

	var textAttrs sprm.Sprms
	textAttrs.Put(sprm.LvlTextVal, sprm.String(st.pnBefore+"%1"+st.pnAfter))

	var lvlAttrs, lvlSprms sprm.Sprms
	lvlAttrs.Put(sprm.LvlIlvl, sprm.Int(0))
	if v := st.tableSprms.Find(sprm.LvlNumFmt); v != nil {
		lvlSprms.Put(sprm.LvlNumFmt, v.Clone())
	}
	if v := st.tableSprms.Find(sprm.LvlStart); v != nil {
		lvlSprms.Put(sprm.LvlStart, v.Clone())
	}
	lvlSprms.Put(sprm.LvlText, sprm.Props(textAttrs, sprm.Sprms{}))
	if v := st.tableSprms.Find(sprm.Ind); v != nil {
		lvlSprms.Put(sprm.Ind, v.Clone())
	}
	if !st.charSprms.Empty() {
		lvlSprms.Put(sprm.LvlRPr, sprm.Props(sprm.Sprms{}, st.charSprms))
	}

	var absAttrs, absSprms sprm.Sprms
	absAttrs.Put(sprm.AbstractNumID, sprm.Int(id))
	absAttrs.Put(sprm.AbstractNumNsid, sprm.Int(id))
	absSprms.Set(sprm.Lvl, sprm.Props(lvlAttrs, lvlSprms), sprm.Append)
	abstract := sprm.Props(absAttrs, absSprms)
	imp.t.numbering.Set(sprm.AbstractNum, abstract, sprm.Append)

	var numAttrs, numSprms sprm.Sprms
	numAttrs.Put(sprm.NumID, sprm.Int(id))
	numSprms.Put(sprm.NumAbstractNumID, sprm.Int(id))
	imp.t.numbering.Set(sprm.Num, sprm.Props(numAttrs, numSprms), sprm.Append)

	imp.t.lists[id] = abstract
	imp.t.overrides[id] = id
	imp.outputNumbering()

	sprm.PutNestedSprmPolicy(&parent.paraSprms, sprm.NumPr, sprm.NumPrIlvl, sprm.Int(0), sprm.ReplaceAtStart)
	sprm.PutNestedSprmPolicy(&parent.paraSprms, sprm.NumPr, sprm.NumPrNumID, sprm.Int(id), sprm.ReplaceAtStart)
}

// addPictureBullet adds a picture of the \listpicture group as a bullet.
func (imp *Importer) addPictureBullet(g *sprm.Value) {
	var attrs, sprms sprm.Sprms
	attrs.Put(sprm.NumPicBulletID, sprm.Int(imp.t.nextPicBullet))
	imp.t.nextPicBullet++
	sprms.Put(sprm.Graphic, g)
	imp.t.numbering.Set(sprm.NumPicBullet, sprm.Props(attrs, sprms), sprm.Append)
}
