package importer

import (
	"strings"

	"github.com/tsawler/rtfimport/graphic"
	"github.com/tsawler/rtfimport/sprm"
)

type internalState int

const (
	internalNormal internalState = iota
	internalHex
	internalBin
)

// runType tracks \loch, \hich, \dbch, \ltrch and \rtlch, which decide
// whether toggles address the complex-script variant.
type runType int

const (
	runNone runType = iota
	runLoch
	runHich
	runDbch
	runLtrRtl1
	runLtrRtl2
	runRtlLtr1
	runRtlLtr2
)

func (r runType) complexScript() bool {
	return r == runRtlLtr1 || r == runLtrRtl2
}

type borderState int

const (
	borderNone borderState = iota
	borderParagraph
	borderParagraphBox
	borderCell
	borderPage
	borderCharacter
	borderRow
)

type fieldStatus int

const (
	fieldNone fieldStatus = iota
	fieldInstruction
	fieldResult
)

// frame collects the \pos*, \abs* and \ph*/\pv* paragraph frame keywords.
type frame struct {
	x, y, w, h     int
	hasX, hasY     bool
	hSpace, vSpace int
	hAnchor        int
	vAnchor        int
	xAlign, yAlign int
	wrap           int
	hRule          int
	dropCap        int
	lines          int
	set            bool
}

func (f *frame) inFrame() bool {
	return f.w > 0 || f.h > 0 || f.hasX || f.hasY
}

// sprms returns the FramePr sprm, or an empty list outside frames.
func (f *frame) sprms() sprm.Sprms {
	var out sprm.Sprms
	if !f.set || !f.inFrame() {
		return out
	}
	var attrs sprm.Sprms
	if f.hasX {
		attrs.Put(sprm.FrameX, sprm.Int(f.x))
	}
	if f.hasY {
		attrs.Put(sprm.FrameY, sprm.Int(f.y))
	}
	if f.w != 0 {
		attrs.Put(sprm.FrameW, sprm.Int(f.w))
	}
	if f.h != 0 {
		attrs.Put(sprm.FrameH, sprm.Int(abs(f.h)))
		rule := sprm.RuleAtLeast
		if f.h < 0 {
			rule = sprm.RuleExact
		}
		attrs.Put(sprm.FrameHRule, sprm.Int(rule))
	}
	attrs.Put(sprm.FrameHAnchor, sprm.Int(f.hAnchor))
	attrs.Put(sprm.FrameVAnchor, sprm.Int(f.vAnchor))
	if f.xAlign != sprm.AlignNone {
		attrs.Put(sprm.FrameXAlign, sprm.Int(f.xAlign))
	}
	if f.yAlign != sprm.AlignNone {
		attrs.Put(sprm.FrameYAlign, sprm.Int(f.yAlign))
	}
	if f.hSpace != 0 {
		attrs.Put(sprm.FrameHSpace, sprm.Int(f.hSpace))
	}
	if f.vSpace != 0 {
		attrs.Put(sprm.FrameVSpace, sprm.Int(f.vSpace))
	}
	attrs.Put(sprm.FrameWrap, sprm.Int(f.wrap))
	if f.dropCap != 0 {
		attrs.Put(sprm.FrameDropCap, sprm.Int(f.dropCap))
		attrs.Put(sprm.FrameLines, sprm.Int(f.lines))
	}
	out.Put(sprm.FramePr, sprm.Props(attrs, sprm.Sprms{}))
	return out
}

// picture collects the \pict keywords. Sizes are in 1/100 mm, except
// width and height of bitmaps, which are in pixels.
type picture struct {
	width, height         int
	goalWidth, goalHeight int
	scaleX, scaleY        int
	cropL, cropR          int
	cropT, cropB          int
	format                graphic.Format
	dib                   bool
	hasData               bool
}

func newPicture() picture {
	return picture{scaleX: 100, scaleY: 100}
}

// drawingObject collects the \do keywords.
type drawingObject struct {
	kind             ShapeKind
	x, y, w, h       int
	lineR, lineG     int
	lineB            int
	fillR, fillG     int
	fillB            int
	hasLine, hasFill bool
	hasText          bool
	// textPos is the offset of the \dptxbxtext group.
	textPos int64
}

// parserState is the formatting context of one open group.
type parserState struct {
	dest     Destination
	internal internalState

	charAttrs, charSprms   sprm.Sprms
	paraAttrs, paraSprms   sprm.Sprms
	sectAttrs, sectSprms   sprm.Sprms
	cellAttrs, cellSprms   sprm.Sprms
	rowAttrs, rowSprms     sprm.Sprms
	tableAttrs, tableSprms sprm.Sprms

	runType     runType
	borderState borderState
	// borderID is the border currently addressed by \brdr* keywords.
	borderID sprm.ID

	encoding    int
	uc          int
	charsToSkip int
	fontIndex   int

	styleIndex     int
	charStyleIndex int

	listLevelNum      int
	listLevelEntries  sprm.Sprms
	levelNumbers      []int
	levelNumbersValid bool
	listIndex         int
	// invalidIndents holds the \fi of levels without \li, by level.
	invalidIndents map[int]int
	overrideIndex  int
	inListPicture  bool

	// column is the \colno being described by \colw and \colsr.
	column int

	// rowWidthAfter is the \trwWidthA of the row definition.
	rowWidthAfter int

	frame   frame
	shape   Shape
	picture picture
	drawing drawingObject
	inShape bool

	// buffer receives content while inside a table row; nil writes to the
	// sink directly.
	buffer *buffer

	// ownText is this group's destination text. curText is where text is
	// collected: ownText for string destinations, otherwise the text of the
	// group that set the destination.
	ownText *strings.Builder
	curText *strings.Builder

	// instr collects the field instruction text of the enclosing \fldinst.
	instr       *strings.Builder
	fieldStatus fieldStatus
	fieldLocked bool

	startedTrackchange bool

	tabAlign  int
	tabLeader int

	year, month, day, hour, minute int

	propName string
	propType int

	docVarName string
	docVar     string

	// mathElement is the OMML element of a DestMathElement or DestMathValue
	// group.
	mathElement string
	// mathOpen is set on the group that started mathElement.
	mathOpen bool

	// ffTarget is the FFData sprm a DestFormFieldName group fills in.
	ffTarget sprm.ID

	pnBefore, pnAfter string

	red, green, blue int
	colorSet         bool

	binary []byte

	// upr marks a \upr group, whose own content is the ANSI alternative.
	// Its children start skipped (uprAlt) until \ud selects the Unicode
	// branch, which goes back to uprDest.
	upr     bool
	uprAlt  bool
	uprDest Destination
}

func newState() *parserState {
	s := &parserState{
		uc:                1,
		fontIndex:         -1,
		picture:           newPicture(),
		ownText:           new(strings.Builder),
		levelNumbersValid: true,
	}
	s.curText = s.ownText
	return s
}

// clone returns the state a nested group starts with. All property lists are
// shared copy-on-write, the destination text starts empty and text
// collection continues into the parent's buffer.
func (s *parserState) clone() *parserState {
	c := *s
	c.charAttrs = s.charAttrs.Clone()
	c.charSprms = s.charSprms.Clone()
	c.paraAttrs = s.paraAttrs.Clone()
	c.paraSprms = s.paraSprms.Clone()
	c.sectAttrs = s.sectAttrs.Clone()
	c.sectSprms = s.sectSprms.Clone()
	c.cellAttrs = s.cellAttrs.Clone()
	c.cellSprms = s.cellSprms.Clone()
	c.rowAttrs = s.rowAttrs.Clone()
	c.rowSprms = s.rowSprms.Clone()
	c.tableAttrs = s.tableAttrs.Clone()
	c.tableSprms = s.tableSprms.Clone()
	c.listLevelEntries = s.listLevelEntries.Clone()
	c.levelNumbers = append([]int(nil), s.levelNumbers...)
	c.shape = s.shape.clone()
	c.ownText = new(strings.Builder)
	c.mathOpen = false
	return &c
}

// collectOwnText makes the group collect text into its own buffer.
func (s *parserState) collectOwnText() {
	s.curText = s.ownText
}

// ownsText reports whether text goes to this group's own buffer. Nested
// groups inside a string destination append to the parent instead.
func (s *parserState) ownsText() bool {
	return s.curText == s.ownText
}

// takeText returns and clears the collected text.
func (s *parserState) takeText() string {
	t := s.curText.String()
	s.curText.Reset()
	return t
}

// resetProperties clears the table, character and paragraph properties
// after a style or revision table entry.
func (s *parserState) resetProperties() {
	s.tableAttrs.Clear()
	s.tableSprms.Clear()
	s.charAttrs.Clear()
	s.charSprms.Clear()
	s.paraAttrs.Clear()
	s.paraSprms.Clear()
}

func (s *parserState) resetFrame() {
	s.frame = frame{}
}

func (s *parserState) resetPicture() {
	s.picture = newPicture()
	s.binary = nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
