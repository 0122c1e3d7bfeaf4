package sprm

// ID identifies a property, a table or a sub-stream kind.
//
// IDs are stable within one build of this package. The same IDs are used for
// table definitions (font table, style sheet, numbering) and for the
// properties that reference them.
type ID int

// Markers emitted around tables, cells and rows.
const (
	Invalid ID = iota
	TblStart
	TblEnd
	TblCell
	TblRow
	TblDepth
	InTbl
	TblCellDepth
)

// Tables and sub-streams.
const (
	FontTable ID = iota + 100
	StyleSheet
	NumberingTable
	SettingsTable

	HeaderLeft
	HeaderRight
	HeaderFirst
	FooterLeft
	FooterRight
	FooterFirst
	Footnote
	Endnote
	Annotation
	TextBox
)

// Character properties.
const (
	RPr ID = iota + 200
	RStyle
	Fonts
	FontsASCII
	FontsHAnsi
	FontsEastAsia
	FontsCS
	Bold
	BoldCS
	Italic
	ItalicCS
	Caps
	SmallCaps
	Strike
	DStrike
	Outline
	Shadow
	Emboss
	Imprint
	Vanish
	Size
	SizeCS
	Color
	ColorVal
	Highlight
	Underline
	UnderlineVal
	Emphasis
	VertAlign
	CharSpacing
	Kern
	Position
	CharScale
	Lang
	LangVal
	LangEastAsia
	LangBidi
	Shd
	ShdVal
	ShdColor
	ShdFill
	RTL
	CS
	NoProof
	CharBorder
	WebHidden
	SnapToGridChar
)

// Paragraph properties.
const (
	PPr ID = iota + 300
	PStyle
	KeepNext
	KeepLines
	PageBreakBefore
	WidowControl
	Jc
	Ind
	IndLeft
	IndRight
	IndStart
	IndEnd
	IndFirstLine
	IndHanging
	Spacing
	SpacingBefore
	SpacingAfter
	SpacingLine
	SpacingLineRule
	SpacingBeforeAutospacing
	SpacingAfterAutospacing
	NumPr
	NumPrIlvl
	NumPrNumID
	Tabs
	Tab
	TabPos
	TabVal
	TabLeader
	PBdr
	BdrTop
	BdrLeft
	BdrBottom
	BdrRight
	BdrBetween
	BdrInsideH
	BdrInsideV
	BorderVal
	BorderSz
	BorderColor
	BorderSpace
	ParaShd
	OutlineLvl
	ContextualSpacing
	Bidi
	SuppressAutoHyphens
	SnapToGrid
	ParaTrackChange
	FramePr
	FrameX
	FrameY
	FrameW
	FrameH
	FrameHRule
	FrameHSpace
	FrameVSpace
	FrameHAnchor
	FrameVAnchor
	FrameXAlign
	FrameYAlign
	FrameWrap
	FrameDropCap
	FrameLines
	SectPr
)

// Table row and cell properties.
const (
	TblPr ID = iota + 400
	TblW
	WidthType
	WidthW
	TblInd
	TblCellMar
	CellMarLeft
	CellMarRight
	CellMarTop
	CellMarBottom
	TblBorders
	GridCol
	TrHeight
	HeightVal
	HeightRule
	TblHeader
	CantSplit
	TblJc
	TblLayout
	TblpPr
	TcPr
	TcW
	VMerge
	HMerge
	TcBorders
	TcShd
	VAlign
	TcMar
	NoWrap
	TextDirection
)

// Section properties.
const (
	SectType ID = iota + 500
	PgSz
	PgSzW
	PgSzH
	PgSzOrient
	PgMar
	PgMarTop
	PgMarBottom
	PgMarLeft
	PgMarRight
	PgMarHeader
	PgMarFooter
	PgMarGutter
	Cols
	ColsNum
	ColsSpace
	ColsEqualWidth
	ColsSep
	Col
	ColW
	ColSpace
	TitlePg
	PgNumType
	PgNumStart
	PgNumFmt
	LnNumType
	LnCountBy
	LnStart
	LnDistance
	LnRestart
	SectVAlign
	SectBidi
	PgBorders
)

// Font and style table entries.
const (
	FontName ID = iota + 600
	FontAltName
	FontCharset
	FontFamily
	FontPitch
	StyleType
	StyleID
	StyleName
	StyleBasedOn
	StyleNext
	StyleLink
	StyleQFormat
	StyleHidden
	StyleSemiHidden
	StyleUnhideWhenUsed
	StyleLocked
	StyleAutoRedefine
	StylePPr
	StyleRPr
	StyleDefault
)

// Numbering definitions.
const (
	AbstractNum ID = iota + 700
	AbstractNumID
	AbstractNumNsid
	AbstractNumTmpl
	MultiLevelType
	Lvl
	LvlIlvl
	LvlStart
	LvlNumFmt
	LvlText
	LvlTextVal
	LvlJc
	LvlRestart
	LvlLegal
	LvlSuffix
	LvlPPr
	LvlRPr
	LvlPicBulletID
	Num
	NumID
	NumAbstractNumID
	LvlOverride
	LvlOverrideIlvl
	StartOverride
	NumPicBullet
	NumPicBulletID
)

// Revisions, fields, bookmarks and annotations.
const (
	TrackChange ID = iota + 800
	EndTrackChange
	TrackChangeToken
	TrackChangeAuthor
	TrackChangeDate
	TrackChangeID
	FFData
	FFName
	FFEnabled
	FFType
	FFDefault
	FFResult
	FFHelpText
	FFStatusText
	FFEntryMacro
	FFExitMacro
	FFMaxLength
	FFListEntry
	FFCheckBoxSize
	FieldLock
	BookmarkStart
	BookmarkEnd
	BookmarkName
	BookmarkIndex
	CommentRangeStart
	CommentRangeEnd
	CommentReference
	CommentID
	AnnotationDate
	AnnotationAuthor
	AnnotationInitials
)

// Drawing, picture, object and math properties.
const (
	Inline ID = iota + 900
	Anchor
	Extent
	ExtentCx
	ExtentCy
	DocPr
	DocPrName
	DocPrDescr
	DocPrID
	Graphic
	SrcRect
	CropTop
	CropBottom
	CropLeft
	CropRight
	DistT
	DistB
	DistL
	DistR
	BehindDoc
	WrapNone
	WrapSquare
	WrapTight
	WrapTopAndBottom
	WrapText
	PositionH
	PositionV
	RelativeFrom
	PosOffset
	Object
	OLEObject
	OLEProgID
	OLEHandle
	OLEDrawAspect
	ShapeHandle
	Math
	MathOMML
)

// Settings.
const (
	DefaultTabStop ID = iota + 1000
	EvenAndOddHeaders
	AutoHyphenation
	DoNotHyphenateCaps
	HyphenationZone
	MirrorMargins
	GutterAtTop
	LongerSpaceSequence
	Zoom
	ZoomPercent
	DocVar
	DocVarName
	DocVarValue
	DefaultLang
)
