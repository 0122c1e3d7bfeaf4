package importer

import (
	"github.com/tsawler/rtfimport/sprm"
)

// ignoredValues are understood but have no effect on the import.
var ignoredValues = map[string]bool{
	"langnp": true, "langfenp": true, "spriority": true, "bin": true,
	"ftnstart": true, "aftnstart": true, "viewkind": true, "viewzk": true,
	"sectunlocked": true, "stshfdbch": true, "stshfloch": true,
	"stshfhich": true, "stshfbi": true, "adeff": true, "pgnstart": true,
	"blipupi": true, "dplinew": true, "objscalex": true, "objscaley": true,
	"version": true, "edmins": true, "nofpages": true, "nofwords": true,
	"nofchars": true, "nofcharsws": true, "id": true, "vern": true,
	"sec": true, "listoverridecount": true, "listrestarthdn": true,
	"levelold": true, "levelindent": true, "levelspace": true,
	"levelprev": true, "levelprevspace": true, "pnlvl": true, "pnsp": true,
	"ffprot": true, "ffownhelp": true, "ffownstat": true,
	"ffhaslistbox": true, "ffrecalc": true,
}

func (imp *Importer) dispatchValue(name string, n int) bool {
	if ignoredValues[name] {
		return true
	}
	switch {
	case imp.charValue(name, n),
		imp.fontTableValue(name, n),
		imp.paraValue(name, n),
		imp.tableValue(name, n),
		imp.borderValue(name, n),
		imp.sectionValue(name, n),
		imp.frameValue(name, n),
		imp.listValue(name, n),
		imp.pictureValue(name, n),
		imp.shapeValue(name, n),
		imp.infoValue(name, n),
		imp.formFieldValue(name, n):
		return true
	}

	st := imp.top()
	switch name {
	case "u":
		imp.unicodeChar(n)
	case "uc":
		st.uc = n
	case "red":
		st.red, st.colorSet = n, true
	case "green":
		st.green, st.colorSet = n, true
	case "blue":
		st.blue, st.colorSet = n, true
	default:
		return false
	}
	return true
}

// charValue handles the character formatting values.
func (imp *Importer) charValue(name string, n int) bool {
	st := imp.top()
	switch name {
	case "f", "af":
		imp.fontKeyword(st, name == "af", n)
	case "fs":
		id := sprm.Size
		if st.runType.complexScript() {
			id = sprm.SizeCS
		}
		st.charSprms.Put(id, sprm.Int(n))
	case "afs":
		st.charSprms.Put(sprm.SizeCS, sprm.Int(n))
	case "cf":
		sprm.PutNestedAttribute(&st.charSprms, sprm.Color, sprm.ColorVal, sprm.Int(imp.color(n)))
	case "cb", "chcbpat":
		sprm.PutNestedAttribute(&st.charSprms, sprm.Shd, sprm.ShdFill, sprm.Int(imp.color(n)))
	case "chcfpat":
		sprm.PutNestedAttribute(&st.charSprms, sprm.Shd, sprm.ShdColor, sprm.Int(imp.color(n)))
	case "chshdng":
		sprm.PutNestedAttribute(&st.charSprms, sprm.Shd, sprm.ShdVal, sprm.Int(n))
	case "highlight":
		c := sprm.ColorAuto
		if n > 0 {
			c = imp.color(n)
		}
		st.charSprms.Put(sprm.Highlight, sprm.Int(c))
	case "lang":
		sprm.PutNestedAttribute(&st.charSprms, sprm.Lang, sprm.LangVal, sprm.Int(n))
	case "langfe":
		sprm.PutNestedAttribute(&st.charSprms, sprm.Lang, sprm.LangEastAsia, sprm.Int(n))
	case "alang":
		sprm.PutNestedAttribute(&st.charSprms, sprm.Lang, sprm.LangBidi, sprm.Int(n))
	case "expnd":
		st.charSprms.Put(sprm.CharSpacing, sprm.Int(n*5))
	case "expndtw":
		st.charSprms.Put(sprm.CharSpacing, sprm.Int(n))
	case "kerning":
		st.charSprms.Put(sprm.Kern, sprm.Int(n))
	case "charscalex":
		st.charSprms.Put(sprm.CharScale, sprm.Int(n))
	case "up":
		st.charSprms.Put(sprm.Position, sprm.Int(n))
	case "dn":
		st.charSprms.Put(sprm.Position, sprm.Int(-n))
	case "cs":
		if imp.inStyleSheet() {
			imp.currentStyleIndex = n
			st.tableAttrs.Put(sprm.StyleType, sprm.Int(sprm.StyleTypeCharacter))
			return true
		}
		st.charStyleIndex = n
		if name := imp.styleName(n); name != "" {
			st.charSprms.Put(sprm.RStyle, sprm.String(name))
		}
	case "revauth", "revauthdel", "crauth":
		author := ""
		if n >= 0 && n < len(imp.t.authors) {
			author = imp.t.authors[n]
		}
		imp.putTrackChange(st, sprm.TrackChangeAuthor, sprm.String(author))
		if name == "crauth" {
			imp.putTrackChange(st, sprm.TrackChangeToken, sprm.Int(sprm.RevisionFormat))
		}
	case "revdttm", "revdttmdel", "crdate":
		imp.putTrackChange(st, sprm.TrackChangeDate, sprm.String(dttmString(n)))
	default:
		return false
	}
	return true
}

func (imp *Importer) inStyleSheet() bool {
	d := imp.top().dest
	return d == DestStyleSheet || d == DestStyleEntry
}

// paraValue handles the paragraph formatting values and style references.
func (imp *Importer) paraValue(name string, n int) bool {
	st := imp.top()
	switch name {
	case "s":
		if imp.inStyleSheet() {
			imp.currentStyleIndex = n
			st.tableAttrs.Put(sprm.StyleType, sprm.Int(sprm.StyleTypeParagraph))
			return true
		}
		st.styleIndex = n
		if name := imp.styleName(n); name != "" {
			st.paraSprms.Put(sprm.PStyle, sprm.String(name))
		}
	case "ds":
		if imp.inStyleSheet() {
			// Section styles have no equivalent and are dropped.
			imp.currentStyleIndex = n
			st.tableAttrs.Erase(sprm.StyleType)
		}
	case "ts":
		if imp.inStyleSheet() {
			imp.currentStyleIndex = n
			st.tableAttrs.Put(sprm.StyleType, sprm.Int(sprm.StyleTypeTable))
		}
	case "sbasedon":
		st.tableSprms.Put(sprm.StyleBasedOn, sprm.Int(n))
	case "snext":
		st.tableSprms.Put(sprm.StyleNext, sprm.Int(n))
	case "slink":
		st.tableSprms.Put(sprm.StyleLink, sprm.Int(n))
	case "fi", "li", "lin", "ri", "rin":
		id := sprm.IndFirstLine
		switch name {
		case "li", "lin":
			id = sprm.IndLeft
		case "ri", "rin":
			id = sprm.IndRight
		}
		if st.dest == DestListLevel {
			sprm.PutNestedAttribute(&st.tableSprms, sprm.Ind, id, sprm.Int(n))
			return true
		}
		sprm.PutNestedAttribute(&st.paraSprms, sprm.Ind, id, sprm.Int(n))
	case "sb":
		sprm.PutNestedAttribute(&st.paraSprms, sprm.Spacing, sprm.SpacingBefore, sprm.Int(n))
	case "sa":
		sprm.PutNestedAttribute(&st.paraSprms, sprm.Spacing, sprm.SpacingAfter, sprm.Int(n))
	case "sl":
		line, rule := n, sprm.RuleAtLeast
		switch {
		case n == 0:
			line, rule = 240, sprm.RuleAuto
		case n < 0:
			line, rule = -n, sprm.RuleExact
		}
		sprm.PutNestedAttribute(&st.paraSprms, sprm.Spacing, sprm.SpacingLine, sprm.Int(line))
		sprm.PutNestedAttribute(&st.paraSprms, sprm.Spacing, sprm.SpacingLineRule, sprm.Int(rule))
	case "slmult":
		rule := sprm.NestedAttribute(st.paraSprms, sprm.Spacing, sprm.SpacingLineRule)
		if n == 1 && rule != nil && rule.Int() == sprm.RuleAtLeast {
			sprm.PutNestedAttribute(&st.paraSprms, sprm.Spacing, sprm.SpacingLineRule, sprm.Int(sprm.RuleAuto))
		}
	case "outlinelevel":
		st.paraSprms.Put(sprm.OutlineLvl, sprm.Int(n))
	case "tx", "tb":
		var attrs sprm.Sprms
		attrs.Put(sprm.TabPos, sprm.Int(n))
		if name == "tb" {
			attrs.Put(sprm.TabVal, sprm.Int(sprm.TabBar))
		} else {
			attrs.Put(sprm.TabVal, sprm.Int(st.tabAlign))
			attrs.Put(sprm.TabLeader, sprm.Int(st.tabLeader))
		}
		sprm.PutNestedSprmPolicy(&st.paraSprms, sprm.Tabs, sprm.Tab, sprm.Props(attrs, sprm.Sprms{}), sprm.Append)
		st.tabAlign, st.tabLeader = sprm.TabLeft, sprm.LeaderNone
	case "ls":
		if st.dest == DestListOverrideEntry {
			st.tableAttrs.Put(sprm.NumID, sprm.Int(n))
			st.overrideIndex = n
			return true
		}
		sprm.PutNestedSprm(&st.paraSprms, sprm.NumPr, sprm.NumPrNumID, sprm.Int(n))
	case "ilvl":
		sprm.PutNestedSprm(&st.paraSprms, sprm.NumPr, sprm.NumPrIlvl, sprm.Int(n))
	case "cbpat":
		sprm.PutNestedAttribute(&st.paraSprms, sprm.ParaShd, sprm.ShdFill, sprm.Int(imp.color(n)))
	case "cfpat":
		sprm.PutNestedAttribute(&st.paraSprms, sprm.ParaShd, sprm.ShdColor, sprm.Int(imp.color(n)))
	case "shading":
		sprm.PutNestedAttribute(&st.paraSprms, sprm.ParaShd, sprm.ShdVal, sprm.Int(n))
	default:
		return false
	}
	return true
}

// documentPageValues set the page of the document default section as well
// as the current one.
var documentPageValues = map[string][2]sprm.ID{
	"paperw": {sprm.PgSz, sprm.PgSzW},
	"paperh": {sprm.PgSz, sprm.PgSzH},
	"margl":  {sprm.PgMar, sprm.PgMarLeft},
	"margr":  {sprm.PgMar, sprm.PgMarRight},
	"margt":  {sprm.PgMar, sprm.PgMarTop},
	"margb":  {sprm.PgMar, sprm.PgMarBottom},
	"gutter": {sprm.PgMar, sprm.PgMarGutter},
}

var sectionPageValues = map[string][2]sprm.ID{
	"pgwsxn":     {sprm.PgSz, sprm.PgSzW},
	"pghsxn":     {sprm.PgSz, sprm.PgSzH},
	"marglsxn":   {sprm.PgMar, sprm.PgMarLeft},
	"margrsxn":   {sprm.PgMar, sprm.PgMarRight},
	"margtsxn":   {sprm.PgMar, sprm.PgMarTop},
	"margbsxn":   {sprm.PgMar, sprm.PgMarBottom},
	"guttersxn":  {sprm.PgMar, sprm.PgMarGutter},
	"headery":    {sprm.PgMar, sprm.PgMarHeader},
	"footery":    {sprm.PgMar, sprm.PgMarFooter},
	"cols":       {sprm.Cols, sprm.ColsNum},
	"colsx":      {sprm.Cols, sprm.ColsSpace},
	"pgnstarts":  {sprm.PgNumType, sprm.PgNumStart},
	"linemod":    {sprm.LnNumType, sprm.LnCountBy},
	"linex":      {sprm.LnNumType, sprm.LnDistance},
	"linestarts": {sprm.LnNumType, sprm.LnStart},
}

// sectionValue handles page setup, columns and document settings.
func (imp *Importer) sectionValue(name string, n int) bool {
	st := imp.top()
	if ids, ok := documentPageValues[name]; ok {
		sprm.PutNestedAttribute(&imp.defaultState.sectSprms, ids[0], ids[1], sprm.Int(n))
		sprm.PutNestedAttribute(&st.sectSprms, ids[0], ids[1], sprm.Int(n))
		return true
	}
	if ids, ok := sectionPageValues[name]; ok {
		sprm.PutNestedAttribute(&st.sectSprms, ids[0], ids[1], sprm.Int(n))
		return true
	}

	switch name {
	case "colno":
		st.column = n
	case "colw":
		var attrs sprm.Sprms
		attrs.Put(sprm.ColW, sprm.Int(n))
		sprm.PutNestedAttribute(&st.sectSprms, sprm.Cols, sprm.ColsEqualWidth, sprm.Int(0))
		sprm.PutNestedSprmPolicy(&st.sectSprms, sprm.Cols, sprm.Col, sprm.Props(attrs, sprm.Sprms{}), sprm.Append)
	case "colsr":
		if cols := st.sectSprms.FindForWrite(sprm.Cols); cols != nil {
			if col := sprm.LastAttributes(cols.Sprms(), sprm.Col); col != nil {
				col.Put(sprm.ColSpace, sprm.Int(n))
			}
		}
	case "deff":
		imp.defaultFontIndex = n
	case "deflang":
		imp.t.settingsSprms.Put(sprm.DefaultLang, sprm.Int(n))
		sprm.PutNestedAttribute(&imp.defaultState.charSprms, sprm.Lang, sprm.LangVal, sprm.Int(n))
	case "deflangfe":
		sprm.PutNestedAttribute(&imp.defaultState.charSprms, sprm.Lang, sprm.LangEastAsia, sprm.Int(n))
	case "ansicpg":
		imp.setDocumentCodePage(n)
	case "deftab":
		imp.t.settingsSprms.Put(sprm.DefaultTabStop, sprm.Int(n))
	case "hyphhotz":
		imp.t.settingsSprms.Put(sprm.HyphenationZone, sprm.Int(n))
	case "viewscale":
		sprm.PutNestedAttribute(&imp.t.settingsSprms, sprm.Zoom, sprm.ZoomPercent, sprm.Int(n))
	default:
		return false
	}
	return true
}

// frameValue handles the position and size of framed paragraphs.
func (imp *Importer) frameValue(name string, n int) bool {
	f := &imp.top().frame
	switch name {
	case "posx", "posnegx":
		f.x, f.hasX = n, true
	case "posy", "posnegy":
		f.y, f.hasY = n, true
	case "absw":
		f.w = n
	case "absh":
		f.h = n
	case "dxfrtext":
		f.hSpace, f.vSpace = n, n
	case "dfrmtxtx":
		f.hSpace = n
	case "dfrmtxty":
		f.vSpace = n
	case "dropcapli":
		f.lines = n
	case "dropcapt":
		f.dropCap = n
	default:
		return false
	}
	f.set = true
	return true
}
