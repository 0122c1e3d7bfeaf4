package sprm

// Style types, stored as the value of StyleType.
const (
	StyleTypeParagraph = iota + 1
	StyleTypeCharacter
	StyleTypeTable
	StyleTypeNumbering
)

// Underline kinds, stored in UnderlineVal.
const (
	UnderlineNone = iota
	UnderlineSingle
	UnderlineWords
	UnderlineDouble
	UnderlineThick
	UnderlineDotted
	UnderlineDottedHeavy
	UnderlineDash
	UnderlineDashedHeavy
	UnderlineDashLong
	UnderlineDashLongHeavy
	UnderlineDotDash
	UnderlineDashDotHeavy
	UnderlineDotDotDash
	UnderlineDashDotDotHeavy
	UnderlineWave
	UnderlineWavyHeavy
	UnderlineWavyDouble
)

// Paragraph and table justification.
const (
	JcLeft = iota
	JcCenter
	JcRight
	JcBoth
	JcDistribute
)

// Vertical text alignment of runs.
const (
	VertAlignBaseline = iota
	VertAlignSuperscript
	VertAlignSubscript
)

// Emphasis marks.
const (
	EmNone = iota
	EmDot
	EmComma
	EmCircle
	EmUnderDot
)

// Border styles, stored in BorderVal.
const (
	BorderNone = iota
	BorderSingle
	BorderThick
	BorderDouble
	BorderDotted
	BorderDashed
	BorderDotDash
	BorderDotDotDash
	BorderTriple
	BorderWave
	BorderInset
	BorderOutset
	BorderEmboss
	BorderEngrave
)

// Section break kinds, stored in SectType.
const (
	SectContinuous = iota
	SectNextColumn
	SectNextPage
	SectEvenPage
	SectOddPage
)

// Line spacing and row height rules.
const (
	RuleAuto = iota
	RuleExact
	RuleAtLeast
)

// Width types for table, cell and margin widths.
const (
	WidthNil = iota
	WidthAuto
	WidthPct
	WidthDxa
)

// Vertical merge states.
const (
	MergeRestart = iota + 1
	MergeContinue
)

// Vertical alignment of cells and sections.
const (
	VAlignTop = iota
	VAlignCenter
	VAlignBottom
	VAlignBoth
)

// Frame and drawing anchors, used by FrameHAnchor, FrameVAnchor and
// RelativeFrom.
const (
	AnchorText = iota
	AnchorMargin
	AnchorPage
	AnchorColumn
	AnchorParagraph
	AnchorCharacter
)

// Frame alignments.
const (
	AlignNone = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignInside
	AlignOutside
	AlignTop
	AlignBottom
)

// Frame wrapping.
const (
	FrameWrapAuto = iota
	FrameWrapNotBeside
	FrameWrapAround
	FrameWrapNone
	FrameWrapTight
	FrameWrapThrough
)

// Number formats for list levels and page numbers.
const (
	NumFmtDecimal = iota
	NumFmtUpperRoman
	NumFmtLowerRoman
	NumFmtUpperLetter
	NumFmtLowerLetter
	NumFmtOrdinal
	NumFmtCardinalText
	NumFmtOrdinalText
	NumFmtDecimalZero
	NumFmtBullet
	NumFmtNone
)

// Level suffixes.
const (
	SuffixTab = iota
	SuffixSpace
	SuffixNothing
)

// Tab stop alignment and leaders.
const (
	TabLeft = iota
	TabCenter
	TabRight
	TabDecimal
	TabBar
	TabClear
)

const (
	LeaderNone = iota
	LeaderDot
	LeaderHyphen
	LeaderUnderscore
	LeaderHeavy
	LeaderMiddleDot
)

// Revision kinds, stored in TrackChangeToken.
const (
	RevisionInsert = iota + 1
	RevisionDelete
	RevisionFormat
)

// Page orientation.
const (
	OrientPortrait = iota
	OrientLandscape
)

// Form field types, stored in FFType.
const (
	FFTypeText = iota
	FFTypeCheckBox
	FFTypeDropDown
)

// Text direction of cells.
const (
	TextDirLrTb = iota
	TextDirTbRl
	TextDirBtLr
)
