package sprm

import "strconv"

var idNames = map[ID]string{
	Invalid:                  "Invalid",
	TblStart:                 "TblStart",
	TblEnd:                   "TblEnd",
	TblCell:                  "TblCell",
	TblRow:                   "TblRow",
	TblDepth:                 "TblDepth",
	InTbl:                    "InTbl",
	TblCellDepth:             "TblCellDepth",
	FontTable:                "FontTable",
	StyleSheet:               "StyleSheet",
	NumberingTable:           "NumberingTable",
	SettingsTable:            "SettingsTable",
	HeaderLeft:               "HeaderLeft",
	HeaderRight:              "HeaderRight",
	HeaderFirst:              "HeaderFirst",
	FooterLeft:               "FooterLeft",
	FooterRight:              "FooterRight",
	FooterFirst:              "FooterFirst",
	Footnote:                 "Footnote",
	Endnote:                  "Endnote",
	Annotation:               "Annotation",
	TextBox:                  "TextBox",
	RPr:                      "RPr",
	RStyle:                   "RStyle",
	Fonts:                    "Fonts",
	FontsASCII:               "FontsASCII",
	FontsHAnsi:               "FontsHAnsi",
	FontsEastAsia:            "FontsEastAsia",
	FontsCS:                  "FontsCS",
	Bold:                     "Bold",
	BoldCS:                   "BoldCS",
	Italic:                   "Italic",
	ItalicCS:                 "ItalicCS",
	Caps:                     "Caps",
	SmallCaps:                "SmallCaps",
	Strike:                   "Strike",
	DStrike:                  "DStrike",
	Outline:                  "Outline",
	Shadow:                   "Shadow",
	Emboss:                   "Emboss",
	Imprint:                  "Imprint",
	Vanish:                   "Vanish",
	Size:                     "Size",
	SizeCS:                   "SizeCS",
	Color:                    "Color",
	ColorVal:                 "ColorVal",
	Highlight:                "Highlight",
	Underline:                "Underline",
	UnderlineVal:             "UnderlineVal",
	Emphasis:                 "Emphasis",
	VertAlign:                "VertAlign",
	CharSpacing:              "CharSpacing",
	Kern:                     "Kern",
	Position:                 "Position",
	CharScale:                "CharScale",
	Lang:                     "Lang",
	LangVal:                  "LangVal",
	LangEastAsia:             "LangEastAsia",
	LangBidi:                 "LangBidi",
	Shd:                      "Shd",
	ShdVal:                   "ShdVal",
	ShdColor:                 "ShdColor",
	ShdFill:                  "ShdFill",
	RTL:                      "RTL",
	CS:                       "CS",
	NoProof:                  "NoProof",
	CharBorder:               "CharBorder",
	WebHidden:                "WebHidden",
	SnapToGridChar:           "SnapToGridChar",
	PPr:                      "PPr",
	PStyle:                   "PStyle",
	KeepNext:                 "KeepNext",
	KeepLines:                "KeepLines",
	PageBreakBefore:          "PageBreakBefore",
	WidowControl:             "WidowControl",
	Jc:                       "Jc",
	Ind:                      "Ind",
	IndLeft:                  "IndLeft",
	IndRight:                 "IndRight",
	IndStart:                 "IndStart",
	IndEnd:                   "IndEnd",
	IndFirstLine:             "IndFirstLine",
	IndHanging:               "IndHanging",
	Spacing:                  "Spacing",
	SpacingBefore:            "SpacingBefore",
	SpacingAfter:             "SpacingAfter",
	SpacingLine:              "SpacingLine",
	SpacingLineRule:          "SpacingLineRule",
	SpacingBeforeAutospacing: "SpacingBeforeAutospacing",
	SpacingAfterAutospacing:  "SpacingAfterAutospacing",
	NumPr:                    "NumPr",
	NumPrIlvl:                "NumPrIlvl",
	NumPrNumID:               "NumPrNumID",
	Tabs:                     "Tabs",
	Tab:                      "Tab",
	TabPos:                   "TabPos",
	TabVal:                   "TabVal",
	TabLeader:                "TabLeader",
	PBdr:                     "PBdr",
	BdrTop:                   "BdrTop",
	BdrLeft:                  "BdrLeft",
	BdrBottom:                "BdrBottom",
	BdrRight:                 "BdrRight",
	BdrBetween:               "BdrBetween",
	BdrInsideH:               "BdrInsideH",
	BdrInsideV:               "BdrInsideV",
	BorderVal:                "BorderVal",
	BorderSz:                 "BorderSz",
	BorderColor:              "BorderColor",
	BorderSpace:              "BorderSpace",
	ParaShd:                  "ParaShd",
	OutlineLvl:               "OutlineLvl",
	ContextualSpacing:        "ContextualSpacing",
	Bidi:                     "Bidi",
	SuppressAutoHyphens:      "SuppressAutoHyphens",
	SnapToGrid:               "SnapToGrid",
	ParaTrackChange:          "ParaTrackChange",
	FramePr:                  "FramePr",
	FrameX:                   "FrameX",
	FrameY:                   "FrameY",
	FrameW:                   "FrameW",
	FrameH:                   "FrameH",
	FrameHRule:               "FrameHRule",
	FrameHSpace:              "FrameHSpace",
	FrameVSpace:              "FrameVSpace",
	FrameHAnchor:             "FrameHAnchor",
	FrameVAnchor:             "FrameVAnchor",
	FrameXAlign:              "FrameXAlign",
	FrameYAlign:              "FrameYAlign",
	FrameWrap:                "FrameWrap",
	FrameDropCap:             "FrameDropCap",
	FrameLines:               "FrameLines",
	SectPr:                   "SectPr",
	TblPr:                    "TblPr",
	TblW:                     "TblW",
	WidthType:                "WidthType",
	WidthW:                   "WidthW",
	TblInd:                   "TblInd",
	TblCellMar:               "TblCellMar",
	CellMarLeft:              "CellMarLeft",
	CellMarRight:             "CellMarRight",
	CellMarTop:               "CellMarTop",
	CellMarBottom:            "CellMarBottom",
	TblBorders:               "TblBorders",
	GridCol:                  "GridCol",
	TrHeight:                 "TrHeight",
	HeightVal:                "HeightVal",
	HeightRule:               "HeightRule",
	TblHeader:                "TblHeader",
	CantSplit:                "CantSplit",
	TblJc:                    "TblJc",
	TblLayout:                "TblLayout",
	TblpPr:                   "TblpPr",
	TcPr:                     "TcPr",
	TcW:                      "TcW",
	VMerge:                   "VMerge",
	HMerge:                   "HMerge",
	TcBorders:                "TcBorders",
	TcShd:                    "TcShd",
	VAlign:                   "VAlign",
	TcMar:                    "TcMar",
	NoWrap:                   "NoWrap",
	TextDirection:            "TextDirection",
	SectType:                 "SectType",
	PgSz:                     "PgSz",
	PgSzW:                    "PgSzW",
	PgSzH:                    "PgSzH",
	PgSzOrient:               "PgSzOrient",
	PgMar:                    "PgMar",
	PgMarTop:                 "PgMarTop",
	PgMarBottom:              "PgMarBottom",
	PgMarLeft:                "PgMarLeft",
	PgMarRight:               "PgMarRight",
	PgMarHeader:              "PgMarHeader",
	PgMarFooter:              "PgMarFooter",
	PgMarGutter:              "PgMarGutter",
	Cols:                     "Cols",
	ColsNum:                  "ColsNum",
	ColsSpace:                "ColsSpace",
	ColsEqualWidth:           "ColsEqualWidth",
	ColsSep:                  "ColsSep",
	Col:                      "Col",
	ColW:                     "ColW",
	ColSpace:                 "ColSpace",
	TitlePg:                  "TitlePg",
	PgNumType:                "PgNumType",
	PgNumStart:               "PgNumStart",
	PgNumFmt:                 "PgNumFmt",
	LnNumType:                "LnNumType",
	LnCountBy:                "LnCountBy",
	LnStart:                  "LnStart",
	LnDistance:               "LnDistance",
	LnRestart:                "LnRestart",
	SectVAlign:               "SectVAlign",
	SectBidi:                 "SectBidi",
	PgBorders:                "PgBorders",
	FontName:                 "FontName",
	FontAltName:              "FontAltName",
	FontCharset:              "FontCharset",
	FontFamily:               "FontFamily",
	FontPitch:                "FontPitch",
	StyleType:                "StyleType",
	StyleID:                  "StyleID",
	StyleName:                "StyleName",
	StyleBasedOn:             "StyleBasedOn",
	StyleNext:                "StyleNext",
	StyleLink:                "StyleLink",
	StyleQFormat:             "StyleQFormat",
	StyleHidden:              "StyleHidden",
	StyleSemiHidden:          "StyleSemiHidden",
	StyleUnhideWhenUsed:      "StyleUnhideWhenUsed",
	StyleLocked:              "StyleLocked",
	StyleAutoRedefine:        "StyleAutoRedefine",
	StylePPr:                 "StylePPr",
	StyleRPr:                 "StyleRPr",
	StyleDefault:             "StyleDefault",
	AbstractNum:              "AbstractNum",
	AbstractNumID:            "AbstractNumID",
	AbstractNumNsid:          "AbstractNumNsid",
	AbstractNumTmpl:          "AbstractNumTmpl",
	MultiLevelType:           "MultiLevelType",
	Lvl:                      "Lvl",
	LvlIlvl:                  "LvlIlvl",
	LvlStart:                 "LvlStart",
	LvlNumFmt:                "LvlNumFmt",
	LvlText:                  "LvlText",
	LvlTextVal:               "LvlTextVal",
	LvlJc:                    "LvlJc",
	LvlRestart:               "LvlRestart",
	LvlLegal:                 "LvlLegal",
	LvlSuffix:                "LvlSuffix",
	LvlPPr:                   "LvlPPr",
	LvlRPr:                   "LvlRPr",
	LvlPicBulletID:           "LvlPicBulletID",
	Num:                      "Num",
	NumID:                    "NumID",
	NumAbstractNumID:         "NumAbstractNumID",
	LvlOverride:              "LvlOverride",
	LvlOverrideIlvl:          "LvlOverrideIlvl",
	StartOverride:            "StartOverride",
	NumPicBullet:             "NumPicBullet",
	NumPicBulletID:           "NumPicBulletID",
	TrackChange:              "TrackChange",
	EndTrackChange:           "EndTrackChange",
	TrackChangeToken:         "TrackChangeToken",
	TrackChangeAuthor:        "TrackChangeAuthor",
	TrackChangeDate:          "TrackChangeDate",
	TrackChangeID:            "TrackChangeID",
	FFData:                   "FFData",
	FFName:                   "FFName",
	FFEnabled:                "FFEnabled",
	FFType:                   "FFType",
	FFDefault:                "FFDefault",
	FFResult:                 "FFResult",
	FFHelpText:               "FFHelpText",
	FFStatusText:             "FFStatusText",
	FFEntryMacro:             "FFEntryMacro",
	FFExitMacro:              "FFExitMacro",
	FFMaxLength:              "FFMaxLength",
	FFListEntry:              "FFListEntry",
	FFCheckBoxSize:           "FFCheckBoxSize",
	FieldLock:                "FieldLock",
	BookmarkStart:            "BookmarkStart",
	BookmarkEnd:              "BookmarkEnd",
	BookmarkName:             "BookmarkName",
	BookmarkIndex:            "BookmarkIndex",
	CommentRangeStart:        "CommentRangeStart",
	CommentRangeEnd:          "CommentRangeEnd",
	CommentReference:         "CommentReference",
	CommentID:                "CommentID",
	AnnotationDate:           "AnnotationDate",
	AnnotationAuthor:         "AnnotationAuthor",
	AnnotationInitials:       "AnnotationInitials",
	Inline:                   "Inline",
	Anchor:                   "Anchor",
	Extent:                   "Extent",
	ExtentCx:                 "ExtentCx",
	ExtentCy:                 "ExtentCy",
	DocPr:                    "DocPr",
	DocPrName:                "DocPrName",
	DocPrDescr:               "DocPrDescr",
	DocPrID:                  "DocPrID",
	Graphic:                  "Graphic",
	SrcRect:                  "SrcRect",
	CropTop:                  "CropTop",
	CropBottom:               "CropBottom",
	CropLeft:                 "CropLeft",
	CropRight:                "CropRight",
	DistT:                    "DistT",
	DistB:                    "DistB",
	DistL:                    "DistL",
	DistR:                    "DistR",
	BehindDoc:                "BehindDoc",
	WrapNone:                 "WrapNone",
	WrapSquare:               "WrapSquare",
	WrapTight:                "WrapTight",
	WrapTopAndBottom:         "WrapTopAndBottom",
	WrapText:                 "WrapText",
	PositionH:                "PositionH",
	PositionV:                "PositionV",
	RelativeFrom:             "RelativeFrom",
	PosOffset:                "PosOffset",
	Object:                   "Object",
	OLEObject:                "OLEObject",
	OLEProgID:                "OLEProgID",
	OLEHandle:                "OLEHandle",
	OLEDrawAspect:            "OLEDrawAspect",
	ShapeHandle:              "ShapeHandle",
	Math:                     "Math",
	MathOMML:                 "MathOMML",
	DefaultTabStop:           "DefaultTabStop",
	EvenAndOddHeaders:        "EvenAndOddHeaders",
	AutoHyphenation:          "AutoHyphenation",
	DoNotHyphenateCaps:       "DoNotHyphenateCaps",
	HyphenationZone:          "HyphenationZone",
	MirrorMargins:            "MirrorMargins",
	GutterAtTop:              "GutterAtTop",
	LongerSpaceSequence:      "LongerSpaceSequence",
	Zoom:                     "Zoom",
	ZoomPercent:              "ZoomPercent",
	DocVar:                   "DocVar",
	DocVarName:               "DocVarName",
	DocVarValue:              "DocVarValue",
	DefaultLang:              "DefaultLang",
}

// String returns the Go name of the id, or ID(n) for unknown values.
func (id ID) String() string {
	if n, ok := idNames[id]; ok {
		return n
	}
	return "ID(" + strconv.Itoa(int(id)) + ")"
}
