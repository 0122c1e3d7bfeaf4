package model

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/tsawler/rtfimport/field"
	"github.com/tsawler/rtfimport/importer"
	"github.com/tsawler/rtfimport/internal/logging"
	"github.com/tsawler/rtfimport/sprm"
)

// Builder turns the events of an import into a Document. It implements
// importer.Sink; substreams are resolved as soon as they are handed over.
//
//	b := model.NewBuilder(nil)
//	err := importer.New(data, importer.Options{}).Resolve(b)
//	doc := b.Document()
type Builder struct {
	doc    *Document
	log    *slog.Logger
	shared *builderShared

	// kind is the substream being built, sprm.Invalid for the body.
	kind    sprm.ID
	root    []Element
	section *Section

	para      *paraBuild
	run       *runBuild
	charDepth int
	fields    []*fieldBuild
	tables    []*tableBuild
	shapes    []*Shape
	floating  []Element
	revisions []bool
	comment   Comment
}

// builderShared is common to a builder and its substream builders.
type builderShared struct {
	styles    *styleSheet
	numbering *numbering
	counters  map[int][]int
	notes     map[NoteKind]int
	errs      []error
}

type paraBuild struct {
	sprms     sprm.Sprms
	runs      []Run
	bookmarks []string
	endsCell  bool
	cell      *importer.Properties
	endsRow   bool
	row       *importer.Properties
}

type runBuild struct {
	style  TextStyle
	hidden bool
	text   strings.Builder
}

type fieldBuild struct {
	instr    strings.Builder
	inResult bool
	link     string
	checkBox int // -1 when not a check box
	results  int
}

var _ importer.Sink = (*Builder)(nil)

// NewBuilder returns a builder for a new document. A nil logger discards
// diagnostics.
func NewBuilder(log *slog.Logger) *Builder {
	return &Builder{
		doc: NewDocument(),
		log: logging.OrDiscard(log),
		shared: &builderShared{
			styles:    newStyleSheet(),
			numbering: newNumbering(),
			counters:  make(map[int][]int),
			notes:     make(map[NoteKind]int),
		},
	}
}

func (b *Builder) child(kind sprm.ID) *Builder {
	return &Builder{doc: b.doc, log: b.log, shared: b.shared, kind: kind}
}

// Document finishes pending content and returns the document.
func (b *Builder) Document() *Document {
	b.finish()
	return b.doc
}

// Errors returns the errors of substreams that failed to resolve. Their
// content is kept up to the failure.
func (b *Builder) Errors() []error {
	return append([]error(nil), b.shared.errs...)
}

func (b *Builder) finish() {
	if b.para != nil {
		if b.para.hasContent() || b.para.endsCell || b.para.endsRow {
			b.endParagraph()
		} else {
			b.para = nil
		}
	}
	b.syncTables(0)
	b.flushFloating()
}

func (p *paraBuild) hasContent() bool {
	return len(p.runs) > 0 || len(p.bookmarks) > 0
}

// StartSectionGroup implements importer.Sink.
func (b *Builder) StartSectionGroup() {
	if b.kind != sprm.Invalid {
		return
	}
	b.section = NewSection()
	b.doc.AddSection(b.section)
}

// EndSectionGroup implements importer.Sink.
func (b *Builder) EndSectionGroup() {
	b.syncTables(0)
	b.flushFloating()
	b.section = nil
}

// MarkLastSectionGroup implements importer.Sink.
func (b *Builder) MarkLastSectionGroup() {}

func (b *Builder) currentSection() *Section {
	if b.section == nil {
		b.section = NewSection()
		b.doc.AddSection(b.section)
	}
	return b.section
}

// StartParagraphGroup implements importer.Sink.
func (b *Builder) StartParagraphGroup() {
	b.para = &paraBuild{}
}

// EndParagraphGroup implements importer.Sink.
func (b *Builder) EndParagraphGroup() {
	if b.para == nil {
		return
	}
	b.endParagraph()
}

func (b *Builder) paragraph() *paraBuild {
	if b.para == nil {
		b.para = &paraBuild{}
	}
	return b.para
}

// StartCharacterGroup implements importer.Sink.
func (b *Builder) StartCharacterGroup() {
	b.charDepth++
	b.flushRun()
	b.run = &runBuild{style: b.runStyle(sprm.Sprms{})}
}

// EndCharacterGroup implements importer.Sink.
func (b *Builder) EndCharacterGroup() {
	b.flushRun()
	if b.charDepth > 0 {
		b.charDepth--
	}
}

// Text implements importer.Sink. It carries field marks and breaks.
func (b *Builder) Text(data []byte) {
	for _, c := range data {
		switch c {
		case importer.FieldStart:
			b.flushRun()
			b.fields = append(b.fields, &fieldBuild{checkBox: -1})
		case importer.FieldSeparator:
			if f := b.topField(); f != nil && !f.inResult {
				b.separateField(f)
			}
		case importer.FieldEnd:
			b.endField()
		case importer.LineBreak:
			b.addText("\n")
		case importer.FieldLockMark, importer.PageBreak, importer.ColumnBreak:
		default:
			b.log.Debug("ignoring control character", "byte", c)
		}
	}
}

// UText implements importer.Sink. A lone "\r" ends a paragraph and is
// dropped.
func (b *Builder) UText(s string) {
	s = strings.ReplaceAll(s, "\r", "")
	if s == "" {
		return
	}
	if f := b.topField(); f != nil && !f.inResult {
		f.instr.WriteString(s)
		return
	}
	b.addText(s)
}

func (b *Builder) addText(s string) {
	if f := b.topField(); f != nil {
		if !f.inResult {
			return
		}
		f.results++
	}
	if b.run == nil {
		b.run = &runBuild{style: b.runStyle(sprm.Sprms{})}
	}
	b.run.text.WriteString(s)
}

// flushRun moves the text collected so far into the paragraph. Hidden and
// deleted text is dropped.
func (b *Builder) flushRun() {
	r := b.run
	if r == nil || r.text.Len() == 0 {
		return
	}
	text := r.text.String()
	r.text.Reset()
	if r.hidden || b.deleted() {
		return
	}
	b.appendRun(Run{Text: text, Style: r.style, Link: b.link()})
}

// appendRun adds a run to the paragraph, joining it to the previous run
// when both are plain text with the same formatting.
func (b *Builder) appendRun(run Run) {
	p := b.paragraph()
	if n := len(p.runs); n > 0 && run.Text != "" {
		last := &p.runs[n-1]
		if last.Text != "" && last.Image == nil && last.Math == nil && last.Note == nil &&
			last.Comment == nil && last.Link == run.Link && sameStyle(last.Style, run.Style) {
			last.Text += run.Text
			return
		}
	}
	p.runs = append(p.runs, run)
}

func sameStyle(a, b TextStyle) bool {
	if (a.Color == nil) != (b.Color == nil) || a.Color != nil && *a.Color != *b.Color {
		return false
	}
	a.Color, b.Color = nil, nil
	return a == b
}

// insertRun adds a non-text run at the current position.
func (b *Builder) insertRun(run Run) {
	b.flushRun()
	if b.deleted() {
		return
	}
	if run.Link == "" {
		run.Link = b.link()
	}
	b.appendRun(run)
}

func (b *Builder) deleted() bool {
	for _, d := range b.revisions {
		if d {
			return true
		}
	}
	return false
}

func (b *Builder) topField() *fieldBuild {
	if len(b.fields) == 0 {
		return nil
	}
	return b.fields[len(b.fields)-1]
}

// link returns the target of the innermost hyperlink whose result is being
// read.
func (b *Builder) link() string {
	for i := len(b.fields) - 1; i >= 0; i-- {
		if f := b.fields[i]; f.inResult && f.link != "" {
			return f.link
		}
	}
	return ""
}

func (b *Builder) separateField(f *fieldBuild) {
	f.inResult = true
	instr := strings.TrimSpace(f.instr.String())
	if instr == "" {
		return
	}
	parsed, err := field.Parse(instr)
	if err != nil {
		b.log.Debug("unparsed field instruction", "instruction", instr, "error", err)
		return
	}
	f.link = parsed.Target()
}

func (b *Builder) endField() {
	f := b.topField()
	if f == nil {
		b.log.Debug("field end without start")
		return
	}
	b.flushRun()
	b.fields = b.fields[:len(b.fields)-1]
	if f.checkBox >= 0 && f.results == 0 {
		box := "☐"
		if f.checkBox == 1 {
			box = "☒"
		}
		b.insertRun(Run{Text: box, Style: b.runStyle(sprm.Sprms{})})
	}
}

// Props implements importer.Sink. Properties apply to the innermost open
// group; markers for tables, sections, bookmarks and comments are handled
// first.
func (b *Builder) Props(p *importer.Properties) {
	s := p.Sprms
	switch {
	case s.Has(sprm.EndTrackChange):
		if n := len(b.revisions); n > 0 {
			b.flushRun()
			b.revisions = b.revisions[:n-1]
		}
		return
	case s.Has(sprm.Object) && len(b.shapes) > 0:
		b.shapes[len(b.shapes)-1].Object = objectFrom(s.Find(sprm.Object))
		return
	case s.Has(sprm.SectPr):
		if b.kind == sprm.Invalid {
			applySection(b.currentSection(), s.Find(sprm.SectPr).Sprms())
		}
		return
	case s.Has(sprm.BookmarkStart):
		if v := p.Attributes.Find(sprm.BookmarkName); v != nil {
			b.paragraph().bookmarks = append(b.paragraph().bookmarks, v.Str())
		}
		return
	case s.Has(sprm.BookmarkEnd), s.Has(sprm.CommentRangeStart), s.Has(sprm.CommentRangeEnd),
		s.Has(sprm.TblStart), s.Has(sprm.FieldLock):
		return
	case s.Has(sprm.FFData):
		if f := b.topField(); f != nil {
			f.checkBox = checkBoxState(s.Find(sprm.FFData))
		}
		return
	case s.Has(sprm.TblCell):
		b.paragraph().endsCell = true
		b.paragraph().cell = p
		return
	case s.Has(sprm.TblRow):
		b.paragraph().endsRow = true
		b.paragraph().row = p
		return
	case s.Has(sprm.FramePr):
		return
	}
	if s.Empty() && b.setCommentInfo(p.Attributes) {
		return
	}

	if b.charDepth > 0 {
		b.runProps(s)
		return
	}
	merge(&b.paragraph().sprms, s)
}

// setCommentInfo takes the author, initials, date and reference of the
// comment being built.
func (b *Builder) setCommentInfo(attrs sprm.Sprms) bool {
	found := false
	if v := attrs.Find(sprm.AnnotationAuthor); v != nil {
		b.comment.Author, found = v.Str(), true
	}
	if v := attrs.Find(sprm.AnnotationInitials); v != nil {
		b.comment.Initials, found = v.Str(), true
	}
	if v := attrs.Find(sprm.AnnotationDate); v != nil {
		b.comment.Date, found = v.Str(), true
	}
	if v := attrs.Find(sprm.CommentID); v != nil {
		b.comment.ID, found = v.Int(), true
	}
	return found
}

func checkBoxState(v *sprm.Value) int {
	ff := v.Sprms()
	t := ff.Find(sprm.FFType)
	if t == nil || t.Int() != sprm.FFTypeCheckBox {
		return -1
	}
	if r := ff.Find(sprm.FFResult); r != nil && r.Int() <= 1 {
		return r.Int()
	}
	if d := ff.Find(sprm.FFDefault); d != nil && d.Int() == 1 {
		return 1
	}
	return 0
}

// runProps handles the properties of a character group: formatting, or a
// picture or formula standing for the run.
func (b *Builder) runProps(s sprm.Sprms) {
	if v := s.Find(sprm.Inline); v != nil {
		b.insertRun(Run{Image: imageFrom(v, false)})
		return
	}
	if v := s.Find(sprm.Anchor); v != nil {
		b.insertRun(Run{Image: imageFrom(v, true)})
		return
	}
	if v := s.Find(sprm.Math); v != nil {
		if xml := v.Attributes().Find(sprm.MathOMML); xml != nil {
			b.insertRun(Run{Math: &Formula{OMML: xml.Str()}})
		}
		return
	}
	if tc := sprm.NestedAttribute(s, sprm.TrackChange, sprm.TrackChangeToken); tc != nil {
		b.flushRun()
		b.revisions = append(b.revisions, tc.Int() == sprm.RevisionDelete)
	}
	if b.run == nil {
		b.run = &runBuild{}
	}
	b.flushRun()
	b.run.style = b.runStyle(s)
	b.run.hidden = b.hiddenRun(s)
}

// effectiveRun returns the character formatting of the paragraph style,
// the run's character style and the direct formatting, in that order.
func (b *Builder) effectiveRun(direct sprm.Sprms) sprm.Sprms {
	var eff sprm.Sprms
	_, rPr := b.shared.styles.paragraph(b.paragraphStyle())
	merge(&eff, rPr)
	if rs := direct.Find(sprm.RStyle); rs != nil {
		merge(&eff, b.shared.styles.character(rs.Str()))
	}
	merge(&eff, direct)
	return eff
}

func (b *Builder) runStyle(direct sprm.Sprms) TextStyle {
	return textStyle(b.effectiveRun(direct))
}

func (b *Builder) hiddenRun(direct sprm.Sprms) bool {
	v := b.effectiveRun(direct).Find(sprm.Vanish)
	return v != nil && v.Int() != 0
}

func (b *Builder) paragraphStyle() string {
	if b.para == nil {
		return ""
	}
	if v := b.para.sprms.Find(sprm.PStyle); v != nil {
		return v.Str()
	}
	return ""
}

func flag(s sprm.Sprms, id sprm.ID) bool {
	v := s.Find(id)
	return v != nil && v.Int() != 0
}

func textStyle(s sprm.Sprms) TextStyle {
	ts := TextStyle{
		Bold:      flag(s, sprm.Bold),
		Italic:    flag(s, sprm.Italic),
		Strike:    flag(s, sprm.Strike) || flag(s, sprm.DStrike),
		SmallCaps: flag(s, sprm.SmallCaps),
	}
	if u := sprm.NestedAttribute(s, sprm.Underline, sprm.UnderlineVal); u != nil {
		ts.Underline = u.Int() != sprm.UnderlineNone
	}
	if v := s.Find(sprm.VertAlign); v != nil {
		ts.Superscript = v.Int() == sprm.VertAlignSuperscript
		ts.Subscript = v.Int() == sprm.VertAlignSubscript
	}
	if c := sprm.NestedAttribute(s, sprm.Color, sprm.ColorVal); c != nil && c.Int() >= 0 {
		col := ColorFromRGB(c.Int())
		ts.Color = &col
	}
	if f := sprm.NestedAttribute(s, sprm.Fonts, sprm.FontsASCII); f != nil {
		ts.FontName = f.Str()
	}
	if v := s.Find(sprm.Size); v != nil {
		ts.FontSize = float64(v.Int()) / 2
	}
	return ts
}

// endParagraph turns the finished paragraph into a block of the current
// container, then handles the cell or row it may end.
func (b *Builder) endParagraph() {
	b.flushRun()
	p := b.para
	b.para = nil
	b.syncTables(tableDepth(p.sprms))

	if p.endsRow {
		b.endRow(p.row)
		b.flushFloating()
		return
	}
	if p.hasContent() {
		b.addBlock(p)
	}
	b.flushFloating()
	if p.endsCell {
		b.endCell(p.cell)
	}
}

func tableDepth(s sprm.Sprms) int {
	if v := s.Find(sprm.TblDepth); v != nil && v.Int() > 0 {
		return v.Int()
	}
	if flag(s, sprm.InTbl) {
		return 1
	}
	return 0
}

// container returns the element list new blocks go to.
func (b *Builder) container() *[]Element {
	if n := len(b.tables); n > 0 {
		return &b.tables[n-1].cell
	}
	if b.kind != sprm.Invalid {
		return &b.root
	}
	return &b.currentSection().Elements
}

var alignments = map[int]TextAlignment{
	sprm.JcLeft:       AlignLeft,
	sprm.JcCenter:     AlignCenter,
	sprm.JcRight:      AlignRight,
	sprm.JcBoth:       AlignJustify,
	sprm.JcDistribute: AlignJustify,
}

// addBlock classifies a paragraph as heading, list item or body text.
func (b *Builder) addBlock(p *paraBuild) {
	styleName := ""
	if v := p.sprms.Find(sprm.PStyle); v != nil {
		styleName = v.Str()
	}
	var eff sprm.Sprms
	pPr, _ := b.shared.styles.paragraph(styleName)
	merge(&eff, pPr)
	merge(&eff, p.sprms)

	c := b.container()
	if numID := sprm.NestedSprm(eff, sprm.NumPr, sprm.NumPrNumID); numID != nil && numID.Int() > 0 {
		ilvl := 0
		if v := sprm.NestedSprm(eff, sprm.NumPr, sprm.NumPrIlvl); v != nil {
			ilvl = v.Int()
		}
		if item, ok := b.listItem(numID.Int(), ilvl, p.runs); ok {
			if n := len(*c); n > 0 {
				if l, ok := (*c)[n-1].(*List); ok && l.NumID == numID.Int() {
					l.Items = append(l.Items, item)
					return
				}
			}
			*c = append(*c, &List{Items: []ListItem{item}, Ordered: item.Ordered, NumID: numID.Int()})
			return
		}
	}

	if level := headingLevel(eff.Find(sprm.OutlineLvl), styleName); level > 0 {
		*c = append(*c, &Heading{Runs: p.runs, Level: level, StyleName: styleName, Bookmarks: p.bookmarks})
		return
	}

	para := &Paragraph{Runs: p.runs, StyleName: styleName, Bookmarks: p.bookmarks}
	if v := eff.Find(sprm.Jc); v != nil {
		para.Alignment = alignments[v.Int()]
	}
	*c = append(*c, para)
}

// listItem numbers an item of list numID. Counters run across the whole
// document; deeper levels restart when a higher level advances.
func (b *Builder) listItem(numID, ilvl int, runs []Run) (ListItem, bool) {
	def, ok := b.shared.numbering.level(numID, ilvl)
	if !ok {
		return ListItem{}, false
	}
	item := ListItem{Runs: runs, Level: ilvl, Ordered: def.ordered()}
	if !item.Ordered {
		item.Bullet = bulletChar(def.text, ilvl)
		return item, true
	}

	counters := b.shared.counters[numID]
	for len(counters) <= ilvl {
		counters = append(counters, 0)
	}
	formats := make([]int, ilvl+1)
	for l := 0; l <= ilvl; l++ {
		d, ok := b.shared.numbering.level(numID, l)
		if !ok {
			d = levelDef{start: 1}
		}
		formats[l] = d.format
		switch {
		case l == ilvl && counters[l] == 0:
			counters[l] = d.start
		case l == ilvl:
			counters[l]++
		case counters[l] == 0:
			counters[l] = d.start
		}
	}
	counters = counters[:ilvl+1]
	b.shared.counters[numID] = counters

	item.Number = counters[ilvl]
	item.Bullet = listLabel(def.text, counters, formats)
	if def.text == "" {
		item.Bullet = formatNumber(item.Number, def.format) + "."
	}
	return item, true
}

// StartShape implements importer.Sink.
func (b *Builder) StartShape(s *importer.Shape) {
	b.flushRun()
	b.shapes = append(b.shapes, shapeFrom(s))
}

// EndShape implements importer.Sink. A shape is placed after the paragraph
// it is anchored in.
func (b *Builder) EndShape() {
	n := len(b.shapes)
	if n == 0 {
		b.log.Debug("shape end without start")
		return
	}
	sh := b.shapes[n-1]
	b.shapes = b.shapes[:n-1]
	if n > 1 {
		parent := b.shapes[n-2]
		parent.Elements = append(parent.Elements, sh)
		return
	}
	if b.para != nil {
		b.floating = append(b.floating, sh)
		return
	}
	c := b.container()
	*c = append(*c, sh)
}

func (b *Builder) flushFloating() {
	if len(b.floating) == 0 {
		return
	}
	c := b.container()
	*c = append(*c, b.floating...)
	b.floating = nil
}

// Table implements importer.Sink.
func (b *Builder) Table(id sprm.ID, t *importer.Table) {
	switch id {
	case sprm.StyleSheet:
		b.shared.styles.load(t)
	case sprm.NumberingTable:
		b.shared.numbering.load(t)
	default:
		b.log.Debug("table not used by the model", "id", id, "entries", len(t.Entries))
	}
}

// Substream implements importer.Sink. Notes and comments are referenced
// from the current paragraph, headers and footers belong to the section
// being ended, text boxes fill the open shape.
func (b *Builder) Substream(id sprm.ID, r importer.Resolver) {
	sub := b.child(id)
	if err := r.Resolve(sub); err != nil {
		b.shared.errs = append(b.shared.errs, fmt.Errorf("%v: %w", id, err))
	}
	sub.finish()

	switch id {
	case sprm.Footnote, sprm.Endnote:
		kind := NoteFootnote
		if id == sprm.Endnote {
			kind = NoteEndnote
		}
		b.shared.notes[kind]++
		note := &Note{Kind: kind, Number: b.shared.notes[kind], Elements: sub.root}
		b.doc.Notes = append(b.doc.Notes, note)
		b.insertRun(Run{Note: note})
	case sprm.Annotation:
		c := sub.comment
		c.Elements = sub.root
		b.doc.Comments = append(b.doc.Comments, &c)
		b.insertRun(Run{Comment: &c})
	case sprm.TextBox:
		if n := len(b.shapes); n > 0 {
			sh := b.shapes[n-1]
			sh.Elements = append(sh.Elements, sub.root...)
			return
		}
		c := b.container()
		*c = append(*c, &Shape{Kind: "textbox", Elements: sub.root})
	default:
		kind, ok := headerFooterKinds[id]
		if !ok {
			b.log.Debug("substream not used by the model", "id", id)
			return
		}
		if b.kind != sprm.Invalid {
			return
		}
		sec := b.currentSection()
		sec.HeadersFooters = append(sec.HeadersFooters, &HeaderFooter{Kind: kind, Elements: sub.root})
	}
}

var headerFooterKinds = map[sprm.ID]HeaderFooterKind{
	sprm.HeaderRight: HeaderDefault,
	sprm.HeaderLeft:  HeaderLeft,
	sprm.HeaderFirst: HeaderFirst,
	sprm.FooterRight: FooterDefault,
	sprm.FooterLeft:  FooterLeft,
	sprm.FooterFirst: FooterFirst,
}

var sectionBreaks = map[int]string{
	sprm.SectContinuous: "continuous",
	sprm.SectNextColumn: "column",
	sprm.SectNextPage:   "page",
	sprm.SectEvenPage:   "even",
	sprm.SectOddPage:    "odd",
}

func applySection(sec *Section, s *sprm.Sprms) {
	if v := sprm.NestedAttribute(*s, sprm.PgSz, sprm.PgSzW); v != nil {
		sec.Width = TwipsToPoints(v.Int())
	}
	if v := sprm.NestedAttribute(*s, sprm.PgSz, sprm.PgSzH); v != nil {
		sec.Height = TwipsToPoints(v.Int())
	}
	if v := sprm.NestedAttribute(*s, sprm.PgSz, sprm.PgSzOrient); v != nil {
		sec.Landscape = v.Int() == sprm.OrientLandscape
	}
	if v := sprm.NestedAttribute(*s, sprm.Cols, sprm.ColsNum); v != nil && v.Int() > 0 {
		sec.Columns = v.Int()
	}
	if v := s.Find(sprm.SectType); v != nil {
		sec.Break = sectionBreaks[v.Int()]
	}
	sec.TitlePage = flag(*s, sprm.TitlePg)
}
