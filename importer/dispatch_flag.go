package importer

import (
	"github.com/tsawler/rtfimport/graphic"
	"github.com/tsawler/rtfimport/sprm"
)

var paraJustification = map[string]int{
	"ql": sprm.JcLeft,
	"qc": sprm.JcCenter,
	"qr": sprm.JcRight,
	"qj": sprm.JcBoth,
	"qd": sprm.JcDistribute,
}

// paraFlags are paragraph flags that set one sprm to a fixed value.
var paraFlags = map[string]struct {
	id  sprm.ID
	val int
}{
	"keep":            {sprm.KeepLines, 1},
	"keepn":           {sprm.KeepNext, 1},
	"pagebb":          {sprm.PageBreakBefore, 1},
	"contextualspace": {sprm.ContextualSpacing, 1},
	"widctlpar":       {sprm.WidowControl, 1},
	"nowidctlpar":     {sprm.WidowControl, 0},
	"ltrpar":          {sprm.Bidi, 0},
	"rtlpar":          {sprm.Bidi, 1},
}

var vertAligns = map[string]int{
	"super":      sprm.VertAlignSuperscript,
	"sub":        sprm.VertAlignSubscript,
	"nosupersub": sprm.VertAlignBaseline,
}

var tabAligns = map[string]int{
	"tqr":   sprm.TabRight,
	"tqc":   sprm.TabCenter,
	"tqdec": sprm.TabDecimal,
}

var tabLeaders = map[string]int{
	"tldot":  sprm.LeaderDot,
	"tlhyph": sprm.LeaderHyphen,
	"tlul":   sprm.LeaderUnderscore,
	"tlth":   sprm.LeaderHeavy,
	"tlmdot": sprm.LeaderMiddleDot,
	"tleq":   sprm.LeaderNone,
}

var sectionBreaks = map[string]int{
	"sbknone": sprm.SectContinuous,
	"sbkcol":  sprm.SectNextColumn,
	"sbkpage": sprm.SectNextPage,
	"sbkeven": sprm.SectEvenPage,
	"sbkodd":  sprm.SectOddPage,
}

var pageNumberFormats = map[string]int{
	"pgndec":   sprm.NumFmtDecimal,
	"pgnucrm":  sprm.NumFmtUpperRoman,
	"pgnlcrm":  sprm.NumFmtLowerRoman,
	"pgnucltr": sprm.NumFmtUpperLetter,
	"pgnlcltr": sprm.NumFmtLowerLetter,
}

var lineRestarts = map[string]string{
	"linerestart": "newSection",
	"lineppage":   "newPage",
	"linecont":    "continuous",
}

var sectionVAligns = map[string]int{
	"vertalt": sprm.VAlignTop,
	"vertalc": sprm.VAlignCenter,
	"vertalb": sprm.VAlignBottom,
	"vertalj": sprm.VAlignBoth,
}

var documentCodePages = map[string]int{
	"ansi": 1252,
	"mac":  10000,
	"pc":   437,
	"pca":  850,
}

var pictureFormats = map[string]graphic.Format{
	"pngblip":   graphic.FormatPNG,
	"jpegblip":  graphic.FormatJPEG,
	"emfblip":   graphic.FormatEMF,
	"wmetafile": graphic.FormatWMF,
	"dibitmap":  graphic.FormatBMP,
	"wbitmap":   graphic.FormatBMP,
	"macpict":   graphic.FormatPICT,
}

var drawingKinds = map[string]ShapeKind{
	"dpline":     ShapeLine,
	"dprect":     ShapeRect,
	"dproundr":   ShapeRect,
	"dpellipse":  ShapeEllipse,
	"dptxbx":     ShapeTextBox,
	"dppolyline": ShapePolyline,
}

var numberingFormats = map[string]int{
	"pnlvlblt": sprm.NumFmtBullet,
	"pndec":    sprm.NumFmtDecimal,
	"pnucrm":   sprm.NumFmtUpperRoman,
	"pnlcrm":   sprm.NumFmtLowerRoman,
	"pnucltr":  sprm.NumFmtUpperLetter,
	"pnlcltr":  sprm.NumFmtLowerLetter,
	"pnord":    sprm.NumFmtOrdinal,
	"pnordt":   sprm.NumFmtOrdinalText,
	"pncard":   sprm.NumFmtCardinalText,
}

var styleFlags = map[string]sprm.ID{
	"sqformat":    sprm.StyleQFormat,
	"shidden":     sprm.StyleHidden,
	"ssemihidden": sprm.StyleSemiHidden,
	"slocked":     sprm.StyleLocked,
	"sautoupd":    sprm.StyleAutoRedefine,
}

var fontFamilies = map[string]string{
	"fnil":    "auto",
	"froman":  "roman",
	"fswiss":  "swiss",
	"fmodern": "modern",
	"fscript": "script",
	"fdecor":  "decorative",
	"ftech":   "auto",
	"fbidi":   "auto",
}

// ignoredFlags are understood but have no effect on the import.
var ignoredFlags = map[string]bool{
	"absnoovrlp": true, "shpbxignore": true, "shpbyignore": true,
	"shplockanchor": true, "objemb": true, "objlink": true, "objautlink": true,
	"objsub": true, "objpub": true, "objicemb": true, "objhtml": true,
	"objocx": true, "objupdate": true, "fldedit": true, "flddirty": true,
	"fldpriv": true, "sadditive": true, "spersonal": true, "scompose": true,
	"sreply": true, "pnlvlbody": true, "pnlvlcont": true, "pnhang": true,
	"listoverridestartat": true, "htmautsp": true, "ftnbj": true,
	"enddoc": true, "aenddoc": true, "ftnalt": true, "pgnrestart": true,
	"pgncont": true,
}

func (imp *Importer) dispatchFlag(name string) bool {
	st := imp.top()

	if jc, ok := paraJustification[name]; ok {
		st.paraSprms.Put(sprm.Jc, sprm.Int(jc))
		return true
	}
	if f, ok := paraFlags[name]; ok {
		st.paraSprms.Put(f.id, sprm.Int(f.val))
		return true
	}
	if v, ok := vertAligns[name]; ok {
		st.charSprms.Put(sprm.VertAlign, sprm.Int(v))
		return true
	}
	if v, ok := tabAligns[name]; ok {
		st.tabAlign = v
		return true
	}
	if v, ok := tabLeaders[name]; ok {
		st.tabLeader = v
		return true
	}
	if imp.tableFlag(name) || imp.borderFlag(name) || imp.frameFlag(name) {
		return true
	}
	if imp.sectionFlag(name) {
		return true
	}
	if f, ok := pictureFormats[name]; ok {
		st.picture.format = f
		st.picture.dib = name == "dibitmap"
		return true
	}
	if k, ok := drawingKinds[name]; ok {
		st.drawing.kind = k
		return true
	}
	if f, ok := numberingFormats[name]; ok {
		st.tableSprms.Put(sprm.LvlNumFmt, sprm.Int(f))
		return true
	}
	if id, ok := styleFlags[name]; ok {
		st.tableSprms.Put(id, sprm.Int(1))
		return true
	}
	if fam, ok := fontFamilies[name]; ok {
		st.tableAttrs.Put(sprm.FontFamily, sprm.String(fam))
		return true
	}
	if ignoredFlags[name] {
		return true
	}

	switch name {
	case "pard":
		imp.pard()
	case "plain":
		st.charSprms = imp.defaultState.charSprms.Clone()
		st.charAttrs = imp.defaultState.charAttrs.Clone()
		st.encoding = imp.fontCodePage(imp.defaultFontIndex)
	case "ulnone":
		sprm.PutNestedAttribute(&st.charSprms, sprm.Underline, sprm.UnderlineVal, sprm.Int(sprm.UnderlineNone))
	case "noproof":
		st.charSprms.Put(sprm.NoProof, sprm.Int(1))
	case "loch":
		st.runType = runLoch
	case "hich":
		st.runType = runHich
	case "dbch":
		st.runType = runDbch
	case "ltrch":
		if st.runType == runRtlLtr1 {
			st.runType = runRtlLtr2
		} else {
			st.runType = runLtrRtl1
		}
		st.charSprms.Put(sprm.RTL, sprm.Int(0))
	case "rtlch":
		if st.runType == runLtrRtl1 {
			st.runType = runLtrRtl2
		} else {
			st.runType = runRtlLtr1
		}
		st.charSprms.Put(sprm.RTL, sprm.Int(1))
	case "shpbxpage":
		st.shape.HRelation = sprm.AnchorPage
	case "shpbxmargin":
		st.shape.HRelation = sprm.AnchorMargin
	case "shpbxcolumn":
		st.shape.HRelation = sprm.AnchorColumn
	case "shpbypage":
		st.shape.VRelation = sprm.AnchorPage
	case "shpbymargin":
		st.shape.VRelation = sprm.AnchorMargin
	case "shpbypara":
		st.shape.VRelation = sprm.AnchorParagraph
	case "listhybrid":
		st.tableSprms.Put(sprm.MultiLevelType, sprm.String("hybridMultilevel"))
	case "listsimple":
		st.tableSprms.Put(sprm.MultiLevelType, sprm.String("singleLevel"))
	case "fldlock":
		st.fieldLocked = true
	default:
		return false
	}
	return true
}

// pard handles \pard: paragraph properties return to their defaults. Inside
// a table row the paragraph stays in the table, and between \cell and \row
// the paragraph style is kept.
func (imp *Importer) pard() {
	if imp.hadPicture {
		imp.par()
	}
	st := imp.top()
	st.paraSprms = imp.defaultState.paraSprms.Clone()
	st.paraAttrs = imp.defaultState.paraAttrs.Clone()
	if imp.topCellCount == 0 && imp.nestedCellCount == 0 {
		st.buffer = nil
	} else {
		st.paraSprms.Put(sprm.InTbl, sprm.Int(1))
	}
	st.resetFrame()

	if !imp.afterCellBeforeRow {
		name := imp.styleName(0)
		if name != "" && imp.t.styleTypes[0] != sprm.StyleTypeCharacter {
			st.paraSprms.Put(sprm.PStyle, sprm.String(name))
			st.styleIndex = 0
		} else {
			st.styleIndex = -1
		}
	}
	imp.needPap = true
}

// sectionFlag handles section and document flags.
func (imp *Importer) sectionFlag(name string) bool {
	st := imp.top()
	if v, ok := sectionBreaks[name]; ok {
		st.sectSprms.Put(sprm.SectType, sprm.Int(v))
		return true
	}
	if v, ok := pageNumberFormats[name]; ok {
		sprm.PutNestedAttribute(&st.sectSprms, sprm.PgNumType, sprm.PgNumFmt, sprm.Int(v))
		return true
	}
	if v, ok := lineRestarts[name]; ok {
		sprm.PutNestedAttribute(&st.sectSprms, sprm.LnNumType, sprm.LnRestart, sprm.String(v))
		return true
	}
	if v, ok := sectionVAligns[name]; ok {
		st.sectSprms.Put(sprm.SectVAlign, sprm.Int(v))
		return true
	}
	if cp, ok := documentCodePages[name]; ok {
		imp.setDocumentCodePage(cp)
		return true
	}

	switch name {
	case "sectd":
		st.sectSprms = imp.defaultState.sectSprms.Clone()
		st.sectAttrs = imp.defaultState.sectAttrs.Clone()
	case "titlepg":
		st.sectSprms.Put(sprm.TitlePg, sprm.Int(1))
	case "landscape":
		sprm.PutNestedAttribute(&imp.defaultState.sectSprms, sprm.PgSz, sprm.PgSzOrient, sprm.Int(sprm.OrientLandscape))
		sprm.PutNestedAttribute(&st.sectSprms, sprm.PgSz, sprm.PgSzOrient, sprm.Int(sprm.OrientLandscape))
	case "lndscpsxn":
		sprm.PutNestedAttribute(&st.sectSprms, sprm.PgSz, sprm.PgSzOrient, sprm.Int(sprm.OrientLandscape))
	case "ltrsect":
		st.sectSprms.Put(sprm.SectBidi, sprm.Int(0))
	case "rtlsect":
		st.sectSprms.Put(sprm.SectBidi, sprm.Int(1))
	case "widowctrl":
		imp.t.settingsSprms.Put(sprm.WidowControl, sprm.Int(1))
	case "gutterprl":
		imp.t.settingsSprms.Put(sprm.GutterAtTop, sprm.Int(1))
	case "margmirror":
		imp.t.settingsSprms.Put(sprm.MirrorMargins, sprm.Int(1))
	default:
		return false
	}
	return true
}

// setDocumentCodePage sets the code page of text outside fonts with their
// own charset.
func (imp *Importer) setDocumentCodePage(cp int) {
	imp.t.codePage = cp
	imp.defaultState.encoding = cp
	imp.top().encoding = cp
}

// frameFlag handles the positioned paragraph flags.
func (imp *Importer) frameFlag(name string) bool {
	f := &imp.top().frame
	switch name {
	case "phmrg":
		f.hAnchor = sprm.AnchorMargin
	case "phpg":
		f.hAnchor = sprm.AnchorPage
	case "phcol":
		f.hAnchor = sprm.AnchorText
	case "pvmrg":
		f.vAnchor = sprm.AnchorMargin
	case "pvpg":
		f.vAnchor = sprm.AnchorPage
	case "pvpara":
		f.vAnchor = sprm.AnchorText
	case "posxc":
		f.xAlign = sprm.AlignCenter
	case "posxi":
		f.xAlign = sprm.AlignInside
	case "posxo":
		f.xAlign = sprm.AlignOutside
	case "posxl":
		f.xAlign = sprm.AlignLeft
	case "posxr":
		f.xAlign = sprm.AlignRight
	case "posyc":
		f.yAlign = sprm.AlignCenter
	case "posyt":
		f.yAlign = sprm.AlignTop
	case "posyb":
		f.yAlign = sprm.AlignBottom
	case "posyin":
		f.yAlign = sprm.AlignInside
	case "posyout":
		f.yAlign = sprm.AlignOutside
	case "nowrap":
		f.wrap = sprm.FrameWrapNotBeside
	case "overlay":
		f.wrap = sprm.FrameWrapNone
	case "wraparound":
		f.wrap = sprm.FrameWrapAround
	case "wraptight":
		f.wrap = sprm.FrameWrapTight
	case "wrapthrough":
		f.wrap = sprm.FrameWrapThrough
	default:
		return false
	}
	f.set = true
	return true
}
