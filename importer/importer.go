package importer

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/tsawler/rtfimport/docprops"
	"github.com/tsawler/rtfimport/graphic"
	"github.com/tsawler/rtfimport/internal/logging"
	"github.com/tsawler/rtfimport/ole"
	"github.com/tsawler/rtfimport/omml"
	"github.com/tsawler/rtfimport/rtftok"
	"github.com/tsawler/rtfimport/sprm"
)

// Options configures an import.
type Options struct {
	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger

	// Paste imports into an existing document: no settings table is sent,
	// sections without paragraphs stay empty and user properties are
	// checked against the target's classification.
	Paste bool

	// DefaultCodePage decodes text before \ansicpg or font charsets say
	// otherwise. Zero means 1252.
	DefaultCodePage int

	// Graphics decodes pictures. Nil uses graphic.StdDecoder. Decoded
	// pictures are cached by content hash.
	Graphics graphic.Decoder

	// Objects stores embedded OLE objects. Nil leaves objects unstored.
	Objects ole.Container

	// Properties receives the \info fields and user properties. Nil uses a
	// fresh docprops.Properties, available through Importer.Properties.
	Properties docprops.Store

	// Classification checks user properties when pasting.
	Classification docprops.ClassificationChecker

	// FirstRunException decides, from a lookahead over the first group,
	// whether the section starts before the first text run. The default
	// starts it early for a table inside a multi-column section.
	FirstRunException func(hasTable, hasColumns bool) bool
}

func defaultFirstRunException(hasTable, hasColumns bool) bool {
	return hasTable && hasColumns
}

// tables holds what lives for the whole import and is shared with
// substreams.
type tables struct {
	fonts         Table
	fontNames     map[int]string
	fontEncodings map[int]int

	// styles holds the flat style definitions in definition order.
	styles     map[int]*Properties
	styleOrder []int
	styleNames map[int]string
	styleTypes map[int]int

	colors  []int
	authors []string

	// lists maps \listid to the abstract numbering, overrides maps \ls to
	// \listid.
	lists               map[int]*sprm.Value
	overrides           map[int]int
	invalidFirstIndents map[int]map[int]int
	numbering           sprm.Sprms
	nextListID          int
	nextPicBullet       int
	nextDrawingID       int

	bookmarks  map[string]int
	revisionID int
	commentID  int

	settingsAttrs, settingsSprms sprm.Sprms

	// codePage is the document code page from \ansicpg, or the configured
	// default.
	codePage int

	warnings []error
}

func newTables() *tables {
	t := &tables{
		fontNames:           make(map[int]string),
		fontEncodings:       make(map[int]int),
		styles:              make(map[int]*Properties),
		styleNames:          make(map[int]string),
		styleTypes:          make(map[int]int),
		lists:               make(map[int]*sprm.Value),
		overrides:           make(map[int]int),
		invalidFirstIndents: make(map[int]map[int]int),
		bookmarks:           make(map[string]int),
		nextListID:          1 << 20,
	}
	return t
}

type headerFooter struct {
	pos int64
	id  sprm.ID
}

// Importer reads one RTF document, or one substream of it, and reports its
// content to a Sink.
type Importer struct {
	opts     Options
	log      *slog.Logger
	ctx      context.Context
	data     []byte
	tok      *rtftok.Tokenizer
	sink     Sink
	t        *tables
	props    docprops.Store
	graphics graphic.Decoder

	states       []*parserState
	defaultState *parserState

	super       *Importer
	streamType  sprm.ID
	ignoreFirst string
	startPos    int64

	groupStartPos     int64
	lookaheadPos      int64
	skipUnknown       bool
	firstRun          bool
	firstRunException bool
	needPap           bool
	needSect          bool
	hadSect           bool
	needPar           bool
	needFinalPar      bool
	needCr            bool
	parAtEndOfSection bool
	hadPicture        bool

	tableBuffers     []*buffer
	topCells         cellQueue
	nestedCells      cellQueue
	topCellCount     int
	nestedCellCount  int
	inheritCells     cellQueue
	inheritCellCount int
	topTRLeft        int
	nestedTRLeft     int
	topCellX         int
	nestedCellX      int
	cellxMax         int

	backupRowSprms, backupRowAttrs sprm.Sprms
	backupCellX                    int
	backupTRLeft                   int

	hexBuf     []byte
	uniBuf     []uint16
	leadByteCP int

	math *omml.Builder

	formField                      bool
	formfieldAttrs, formfieldSprms sprm.Sprms

	headerFooters []headerFooter

	// afterCellBeforeRow is set between the last \cell and \row.
	afterCellBeforeRow bool

	// shapeTextStarted is set when \shptxt already started the shape.
	// shapePicture is set when the shape's picture was sent in its place.
	shapeTextStarted bool
	shapePicture     bool

	object                  bool
	objectAttrs, oleAttrs   sprm.Sprms
	objectBinary            []byte
	oleObject               *ole.Object
	objectWidth             int
	objectHeight            int
	currentFontIndex        int
	currentEncoding         int
	defaultFontIndex        int
	currentStyleIndex       int
	author, initials, atnDT string
	userProps               []docprops.UserProperty
}

// New returns an importer for a complete RTF document.
func New(data []byte, opts Options) *Importer {
	if opts.FirstRunException == nil {
		opts.FirstRunException = defaultFirstRunException
	}
	if opts.DefaultCodePage == 0 {
		opts.DefaultCodePage = 1252
	}
	imp := &Importer{
		opts:     opts,
		log:      logging.OrDiscard(opts.Logger),
		ctx:      context.Background(),
		data:     data,
		tok:      rtftok.New(data),
		t:        newTables(),
		props:    opts.Properties,
		graphics: graphic.NewCache(opts.Graphics),
	}
	if imp.props == nil {
		imp.props = docprops.New()
	}
	imp.init()
	imp.defaultState.encoding = opts.DefaultCodePage
	imp.t.codePage = opts.DefaultCodePage
	imp.t.settingsSprms.Put(sprm.DefaultTabStop, sprm.Int(720))
	return imp
}

func (imp *Importer) init() {
	imp.defaultState = newState()
	imp.firstRun = true
	imp.needPap = true
	imp.needPar = true
	imp.tableBuffers = []*buffer{{}}
	imp.math = omml.NewBuilder()
	imp.lookaheadPos = -1
	imp.currentFontIndex = -1
	imp.currentEncoding = -1
	imp.defaultFontIndex = -1
}

// Properties returns the store the document information was written to.
func (imp *Importer) Properties() docprops.Store { return imp.props }

// Warnings returns the non-fatal problems met so far, including those of
// substreams.
func (imp *Importer) Warnings() []error {
	return append([]error(nil), imp.t.warnings...)
}

// Resolve implements Resolver.
func (imp *Importer) Resolve(sink Sink) error {
	return imp.ResolveContext(imp.ctx, sink)
}

// ResolveContext imports the document into sink. ctx is checked between
// tokens. Fatal errors are returned as *ParseError.
func (imp *Importer) ResolveContext(ctx context.Context, sink Sink) error {
	imp.ctx = ctx
	imp.sink = sink
	if imp.super != nil {
		imp.log.Debug("resolving substream", "id", imp.streamType, "offset", imp.startPos)
		defer imp.log.Debug("substream done", "id", imp.streamType)
	}
	if imp.streamType == sprm.Annotation && (imp.author != "" || imp.initials != "" || imp.atnDT != "") {
		var attrs sprm.Sprms
		if imp.author != "" {
			attrs.Put(sprm.AnnotationAuthor, sprm.String(imp.author))
		}
		if imp.initials != "" {
			attrs.Put(sprm.AnnotationInitials, sprm.String(imp.initials))
		}
		if imp.atnDT != "" {
			attrs.Put(sprm.AnnotationDate, sprm.String(imp.atnDT))
		}
		sink.Props(NewProperties(attrs, sprm.Sprms{}))
	}
	return imp.parse()
}

func (imp *Importer) parse() error {
	for {
		if err := imp.ctx.Err(); err != nil {
			return err
		}
		imp.syncLeadByte()
		tok, err := imp.tok.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			if !fatal(err) {
				imp.warn(err)
				break
			}
			return &ParseError{Offset: imp.tok.Offset(), Err: err}
		}
		if err := imp.handle(tok); err != nil {
			if !fatal(err) {
				imp.warn(err)
				continue
			}
			return &ParseError{Offset: tok.Pos, Err: err}
		}
		if tok.Type == rtftok.TokenGroupClose && imp.tok.Depth() == 0 {
			break
		}
	}
	if imp.super == nil {
		if err := imp.tok.CheckTrailing(); err != nil {
			imp.warn(err)
		}
	}
	return nil
}

func (imp *Importer) handle(tok rtftok.Token) error {
	if tok.Type == rtftok.TokenGroupOpen {
		return imp.pushState(tok.Pos)
	}
	if len(imp.states) == 0 {
		return nil
	}
	switch tok.Type {
	case rtftok.TokenGroupClose:
		return imp.popState()
	case rtftok.TokenKeyword:
		return imp.dispatchKeyword(tok)
	case rtftok.TokenHex:
		return imp.resolveHex(tok.Byte())
	case rtftok.TokenText:
		return imp.resolveText(tok.Value)
	case rtftok.TokenBinary:
		imp.resolveBinary(tok.Value)
	}
	return nil
}

func (imp *Importer) warn(err error) {
	imp.t.warnings = append(imp.t.warnings, err)
	imp.log.Warn("rtf import problem", "error", err)
}

func (imp *Importer) top() *parserState {
	if len(imp.states) == 0 {
		return imp.defaultState
	}
	return imp.states[len(imp.states)-1]
}

// parent returns the state below the top, or nil.
func (imp *Importer) parent() *parserState {
	if len(imp.states) < 2 {
		return nil
	}
	return imp.states[len(imp.states)-2]
}

func (imp *Importer) isSubstream() bool { return imp.super != nil }

func (imp *Importer) isNewDoc() bool { return !imp.opts.Paste }

func (imp *Importer) pushState(pos int64) error {
	imp.checkUnicode(true, true)
	imp.groupStartPos = pos

	if len(imp.states) == 0 {
		st := imp.defaultState.clone()
		st.collectOwnText()
		imp.states = append(imp.states, st)
	} else {
		top := imp.top()
		upr := top.upr
		if top.runType != runLtrRtl2 && top.runType != runRtlLtr2 {
			top.runType = runNone
		}
		if top.dest == DestMR {
			imp.flushMathText(top)
		}
		imp.states = append(imp.states, top.clone())
		if upr {
			child := imp.top()
			child.upr = false
			child.uprAlt = true
		}
	}

	st := imp.top()
	switch st.dest {
	case DestFontTable:
		st.collectOwnText()
		st.dest = DestFontEntry
	case DestStyleSheet:
		st.collectOwnText()
		st.dest = DestStyleEntry
		imp.currentStyleIndex = 0
		st.tableAttrs.Put(sprm.StyleType, sprm.Int(sprm.StyleTypeParagraph))
	case DestFieldResult, DestFormField, DestFieldInstruction, DestPict:
		st.dest = DestNormal
	case DestMoMath:
		st.dest = DestMR
		st.collectOwnText()
	case DestMathElement:
		if mathArgument(st.mathElement) {
			st.dest = DestMR
			st.mathElement = ""
			st.collectOwnText()
		}
	case DestRevisionTable:
		st.collectOwnText()
		st.dest = DestRevisionEntry
	}
	st.startedTrackchange = false
	return nil
}

func (imp *Importer) popState() error {
	imp.checkUnicode(true, true)
	st := imp.top()

	if len(imp.states) == 1 && imp.firstRun && isHeaderFooter(imp.streamType) {
		imp.par()
	}

	var popErr error
	if err := imp.beforePopState(st); err != nil {
		if fatal(err) {
			return err
		}
		popErr = err
	}

	if st.startedTrackchange {
		var sprms sprm.Sprms
		sprms.Put(sprm.EndTrackChange, sprm.Int(0))
		if buf := st.buffer; buf != nil {
			imp.bufferProperties(buf, sprm.Sprms{}, sprms, sprm.StyleTypeCharacter)
		} else {
			imp.sink.Props(NewProperties(sprm.Sprms{}, sprms))
		}
	}

	if len(imp.states) == 1 && !imp.firstRun {
		imp.finishTables()
		if imp.needCr && imp.streamType != sprm.Footnote && imp.streamType != sprm.Endnote {
			imp.par()
		}
		if imp.needSect {
			imp.sectBreak(true)
		} else if !imp.isSubstream() {
			imp.sink.MarkLastSectionGroup()
		}
		if imp.needPar && !imp.isSubstream() {
			imp.par()
			imp.needSect = false
		}
	}

	imp.states = imp.states[:len(imp.states)-1]
	imp.afterPopState(st)
	return popErr
}

func isHeaderFooter(id sprm.ID) bool {
	switch id {
	case sprm.HeaderLeft, sprm.HeaderRight, sprm.HeaderFirst,
		sprm.FooterLeft, sprm.FooterRight, sprm.FooterFirst:
		return true
	}
	return false
}

// substream returns an importer for the group at pos that shares this
// importer's tables.
func (imp *Importer) substream(pos int64, id sprm.ID, ignoreFirst string) *Importer {
	sub := &Importer{
		opts:        imp.opts,
		log:         imp.log,
		ctx:         imp.ctx,
		data:        imp.data,
		tok:         rtftok.NewAt(imp.data, pos),
		t:           imp.t,
		props:       imp.props,
		graphics:    imp.graphics,
		super:       imp,
		streamType:  id,
		ignoreFirst: ignoreFirst,
		startPos:    pos,
	}
	sub.init()
	sub.defaultState.encoding = imp.top().encoding
	sub.defaultFontIndex = imp.defaultFontIndex
	if id == sprm.Annotation {
		sub.author, sub.initials, sub.atnDT = imp.author, imp.initials, imp.atnDT
		imp.author, imp.initials, imp.atnDT = "", "", ""
	}
	return sub
}

func (imp *Importer) resolveSubstream(pos int64, id sprm.ID, ignoreFirst string) {
	imp.sink.Substream(id, imp.substream(pos, id, ignoreFirst))
}

// IsFatal reports whether err aborted the import rather than being
// recorded as a warning.
func IsFatal(err error) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return fatal(pe.Err)
	}
	return err != nil && fatal(err)
}
