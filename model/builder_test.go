package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/rtfimport/importer"
	"github.com/tsawler/rtfimport/sprm"
)

// list builds a sprm list from id, value pairs.
func list(pairs ...any) sprm.Sprms {
	var s sprm.Sprms
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Set(pairs[i].(sprm.ID), pairs[i+1].(*sprm.Value), sprm.Append)
	}
	return s
}

func attrs(pairs ...any) *sprm.Value {
	return sprm.Props(list(pairs...), sprm.Sprms{})
}

func children(pairs ...any) *sprm.Value {
	return sprm.Props(sprm.Sprms{}, list(pairs...))
}

// script drives a Builder the way the importer does.
type script struct {
	t *testing.T
	b importer.Sink
}

func (s script) props(sprms sprm.Sprms) {
	s.b.Props(&importer.Properties{Sprms: sprms})
}

// run emits a character group with optional direct formatting.
func (s script) run(text string, rPr sprm.Sprms) {
	s.b.StartCharacterGroup()
	if !rPr.Empty() {
		s.props(rPr)
	}
	s.b.UText(text)
	s.b.EndCharacterGroup()
}

// endPara emits the paragraph mark and opens the next paragraph.
func (s script) endPara() {
	s.run("\r", sprm.Sprms{})
	s.b.EndParagraphGroup()
	s.b.StartParagraphGroup()
}

// para emits a paragraph of plain runs.
func (s script) para(pPr sprm.Sprms, runs ...string) {
	if !pPr.Empty() {
		s.props(pPr)
	}
	for _, r := range runs {
		s.run(r, sprm.Sprms{})
	}
	s.endPara()
}

func newScript(t *testing.T) (*Builder, script) {
	b := NewBuilder(nil)
	b.StartSectionGroup()
	b.StartParagraphGroup()
	return b, script{t: t, b: b}
}

type resolverFunc func(importer.Sink) error

func (f resolverFunc) Resolve(s importer.Sink) error { return f(s) }

func elementsOf(t *testing.T, doc *Document) []Element {
	t.Helper()
	if len(doc.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(doc.Sections))
	}
	return doc.Sections[0].Elements
}

// ============================================================================
// Paragraph Tests
// ============================================================================

func TestBuilderParagraphs(t *testing.T) {
	b, s := newScript(t)
	s.para(sprm.Sprms{}, "Hello ", "world")
	s.para(list(sprm.Jc, sprm.Int(sprm.JcCenter)), "Centered")
	b.EndSectionGroup()

	elems := elementsOf(t, b.Document())
	if len(elems) != 2 {
		t.Fatalf("elements = %d, want 2", len(elems))
	}
	p1 := elems[0].(*Paragraph)
	if len(p1.Runs) != 1 || p1.Runs[0].Text != "Hello world" {
		t.Errorf("runs = %+v, want one joined run", p1.Runs)
	}
	p2 := elems[1].(*Paragraph)
	if p2.Alignment != AlignCenter {
		t.Errorf("Alignment = %v, want center", p2.Alignment)
	}
}

func TestBuilderRunFormatting(t *testing.T) {
	b, s := newScript(t)
	s.run("plain ", sprm.Sprms{})
	s.run("bold", list(sprm.Bold, sprm.Int(1)))
	s.run(" red", list(sprm.Color, attrs(sprm.ColorVal, sprm.Int(0xff0000)), sprm.Size, sprm.Int(24)))
	s.endPara()

	p := elementsOf(t, b.Document())[0].(*Paragraph)
	if len(p.Runs) != 3 {
		t.Fatalf("runs = %d, want 3", len(p.Runs))
	}
	if !p.Runs[1].Style.Bold || p.Runs[0].Style.Bold {
		t.Errorf("bold = %v, %v", p.Runs[0].Style.Bold, p.Runs[1].Style.Bold)
	}
	st := p.Runs[2].Style
	if st.Color == nil || *st.Color != (Color{R: 0xff}) || st.FontSize != 12 {
		t.Errorf("style = %+v, want red 12pt", st)
	}
}

func TestBuilderLineBreak(t *testing.T) {
	b, s := newScript(t)
	s.run("one", sprm.Sprms{})
	b.StartCharacterGroup()
	b.Text([]byte{importer.LineBreak})
	b.EndCharacterGroup()
	s.run("two", sprm.Sprms{})
	s.endPara()

	if got := b.Document().ExtractText(); got != "one\ntwo" {
		t.Errorf("ExtractText() = %q, want %q", got, "one\ntwo")
	}
}

func TestBuilderDropsHiddenAndDeletedText(t *testing.T) {
	b, s := newScript(t)
	s.run("kept ", sprm.Sprms{})
	s.run("hidden", list(sprm.Vanish, sprm.Int(1)))
	s.run("deleted", list(sprm.TrackChange, attrs(sprm.TrackChangeToken, sprm.Int(sprm.RevisionDelete))))
	s.props(list(sprm.EndTrackChange, sprm.Int(1)))
	s.run("inserted", list(sprm.TrackChange, attrs(sprm.TrackChangeToken, sprm.Int(sprm.RevisionInsert))))
	s.props(list(sprm.EndTrackChange, sprm.Int(1)))
	s.endPara()

	if got := b.Document().ExtractText(); got != "kept inserted" {
		t.Errorf("ExtractText() = %q, want %q", got, "kept inserted")
	}
}

// ============================================================================
// Style Tests
// ============================================================================

func styleTable() *importer.Table {
	t := &importer.Table{}
	t.Set(0, &importer.Properties{
		Attributes: list(sprm.StyleType, sprm.Int(sprm.StyleTypeParagraph)),
		Sprms:      list(sprm.StyleName, sprm.String("Normal")),
	})
	t.Set(1, &importer.Properties{
		Attributes: list(sprm.StyleType, sprm.Int(sprm.StyleTypeParagraph)),
		Sprms: list(
			sprm.StyleName, sprm.String("heading 2"),
			sprm.StyleBasedOn, sprm.Int(0),
			sprm.StyleRPr, children(sprm.Bold, sprm.Int(1)),
		),
	})
	t.Set(2, &importer.Properties{
		Attributes: list(sprm.StyleType, sprm.Int(sprm.StyleTypeParagraph)),
		Sprms: list(
			sprm.StyleName, sprm.String("Quote"),
			sprm.StyleBasedOn, sprm.Int(0),
			sprm.StylePPr, children(sprm.Jc, sprm.Int(sprm.JcRight)),
			sprm.StyleRPr, children(sprm.Italic, sprm.Int(1)),
		),
	})
	t.Set(3, &importer.Properties{
		Attributes: list(sprm.StyleType, sprm.Int(sprm.StyleTypeCharacter)),
		Sprms: list(
			sprm.StyleName, sprm.String("Strong"),
			sprm.StyleRPr, children(sprm.Bold, sprm.Int(1)),
		),
	})
	return t
}

func TestBuilderStyles(t *testing.T) {
	b, s := newScript(t)
	b.Table(sprm.StyleSheet, styleTable())

	s.para(list(sprm.PStyle, sprm.String("heading 2")), "Title text")
	s.props(list(sprm.PStyle, sprm.String("Quote")))
	s.run("quoted ", sprm.Sprms{})
	s.run("strong", list(sprm.RStyle, sprm.String("Strong")))
	s.endPara()

	elems := elementsOf(t, b.Document())
	h, ok := elems[0].(*Heading)
	if !ok {
		t.Fatalf("first element = %T, want *Heading", elems[0])
	}
	if h.Level != 2 || !h.Runs[0].Style.Bold {
		t.Errorf("heading = level %d, bold %v", h.Level, h.Runs[0].Style.Bold)
	}

	p := elems[1].(*Paragraph)
	if p.Alignment != AlignRight {
		t.Errorf("Alignment = %v, want right from the paragraph style", p.Alignment)
	}
	want := []TextStyle{{Italic: true}, {Italic: true, Bold: true}}
	var got []TextStyle
	for _, r := range p.Runs {
		got = append(got, r.Style)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("run styles mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilderOutlineLevelHeading(t *testing.T) {
	b, s := newScript(t)
	s.para(list(sprm.OutlineLvl, sprm.Int(0)), "Chapter")

	doc := b.Document()
	if diff := cmp.Diff([]TOCEntry{{Level: 1, Text: "Chapter", Section: 1}}, doc.TableOfContents()); diff != "" {
		t.Errorf("TableOfContents() mismatch (-want +got):\n%s", diff)
	}
}

// ============================================================================
// List Tests
// ============================================================================

func level(ilvl, format int, text string) *sprm.Value {
	return sprm.Props(
		list(sprm.LvlIlvl, sprm.Int(ilvl)),
		list(
			sprm.LvlNumFmt, sprm.Int(format),
			sprm.LvlStart, sprm.Int(1),
			sprm.LvlText, attrs(sprm.LvlTextVal, sprm.String(text)),
		),
	)
}

func numberingTable() *importer.Table {
	entries := list(
		sprm.AbstractNum, sprm.Props(
			list(sprm.AbstractNumID, sprm.Int(10)),
			list(
				sprm.Lvl, level(0, sprm.NumFmtDecimal, "%1."),
				sprm.Lvl, level(1, sprm.NumFmtLowerLetter, "%1.%2)"),
			),
		),
		sprm.AbstractNum, sprm.Props(
			list(sprm.AbstractNumID, sprm.Int(20)),
			list(sprm.Lvl, level(0, sprm.NumFmtBullet, "")),
		),
		sprm.Num, sprm.Props(list(sprm.NumID, sprm.Int(1)), list(sprm.NumAbstractNumID, sprm.Int(10))),
		sprm.Num, sprm.Props(list(sprm.NumID, sprm.Int(2)), list(sprm.NumAbstractNumID, sprm.Int(20))),
	)
	t := &importer.Table{}
	t.Set(0, &importer.Properties{Sprms: entries})
	return t
}

func numPr(numID, ilvl int) sprm.Sprms {
	return list(sprm.NumPr, children(sprm.NumPrNumID, sprm.Int(numID), sprm.NumPrIlvl, sprm.Int(ilvl)))
}

func TestBuilderLists(t *testing.T) {
	b, s := newScript(t)
	b.Table(sprm.NumberingTable, numberingTable())

	s.para(numPr(1, 0), "first")
	s.para(numPr(1, 1), "nested")
	s.para(numPr(1, 1), "nested again")
	s.para(numPr(1, 0), "second")
	s.para(numPr(2, 0), "bullet")
	s.para(sprm.Sprms{}, "after")

	elems := elementsOf(t, b.Document())
	if len(elems) != 3 {
		t.Fatalf("elements = %d, want 2 lists and a paragraph", len(elems))
	}
	ordered := elems[0].(*List)
	if !ordered.Ordered || ordered.NumID != 1 {
		t.Errorf("first list = ordered %v, numID %d", ordered.Ordered, ordered.NumID)
	}
	var bullets []string
	for _, item := range ordered.Items {
		bullets = append(bullets, item.Bullet)
	}
	if diff := cmp.Diff([]string{"1.", "1.a)", "1.b)", "2."}, bullets); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}

	bulleted := elems[1].(*List)
	if bulleted.Ordered || bulleted.Items[0].Bullet != "•" {
		t.Errorf("second list = ordered %v, bullet %q", bulleted.Ordered, bulleted.Items[0].Bullet)
	}
}

// ============================================================================
// Field Tests
// ============================================================================

func TestBuilderHyperlink(t *testing.T) {
	b, s := newScript(t)
	s.run("Visit ", sprm.Sprms{})
	b.StartCharacterGroup()
	b.Text([]byte{importer.FieldStart})
	b.UText(` HYPERLINK "https://example.com" `)
	b.Text([]byte{importer.FieldSeparator})
	b.UText("the site")
	b.Text([]byte{importer.FieldEnd})
	b.EndCharacterGroup()
	s.endPara()

	p := elementsOf(t, b.Document())[0].(*Paragraph)
	want := []Run{{Text: "Visit "}, {Text: "the site", Link: "https://example.com"}}
	if diff := cmp.Diff(want, p.Runs); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilderCheckBoxField(t *testing.T) {
	b, s := newScript(t)
	b.StartCharacterGroup()
	b.Text([]byte{importer.FieldStart})
	b.UText(" FORMCHECKBOX ")
	s.props(list(sprm.FFData, children(sprm.FFType, sprm.Int(sprm.FFTypeCheckBox), sprm.FFDefault, sprm.Int(1))))
	b.Text([]byte{importer.FieldSeparator, importer.FieldEnd})
	b.EndCharacterGroup()
	s.endPara()

	if got := b.Document().ExtractText(); got != "☒" {
		t.Errorf("ExtractText() = %q, want checked box", got)
	}
}

// ============================================================================
// Table Tests
// ============================================================================

func cellEnd(extra ...any) sprm.Sprms {
	return list(append([]any{sprm.TblCell, sprm.Int(1)}, extra...)...)
}

func TestBuilderTable(t *testing.T) {
	b, s := newScript(t)
	inTbl := list(sprm.InTbl, sprm.Int(1))
	rowEnd := list(
		sprm.TblRow, sprm.Int(1),
		sprm.GridCol, sprm.Int(1440),
		sprm.GridCol, sprm.Int(2880),
		sprm.TblHeader, sprm.Int(1),
	)

	s.props(inTbl)
	s.run("A", sprm.Sprms{})
	s.props(cellEnd())
	s.endPara()
	s.props(inTbl)
	s.run("B", sprm.Sprms{})
	s.props(cellEnd(sprm.VAlign, sprm.Int(sprm.VAlignCenter)))
	s.endPara()
	s.props(inTbl)
	s.props(rowEnd)
	s.endPara()

	s.props(inTbl)
	s.run("wide", sprm.Sprms{})
	s.props(cellEnd(sprm.HMerge, sprm.Int(sprm.MergeRestart)))
	s.endPara()
	s.props(inTbl)
	s.props(cellEnd(sprm.HMerge, sprm.Int(sprm.MergeContinue)))
	s.endPara()
	s.props(inTbl)
	s.props(list(sprm.TblRow, sprm.Int(1)))
	s.endPara()

	s.para(sprm.Sprms{}, "after")

	doc := b.Document()
	tables := doc.ExtractTables()
	if len(tables) != 1 {
		t.Fatalf("tables = %d, want 1", len(tables))
	}
	tbl := tables[0]
	if tbl.RowCount() != 2 || tbl.ColCount() != 2 {
		t.Fatalf("size = %dx%d, want 2x2", tbl.RowCount(), tbl.ColCount())
	}
	if diff := cmp.Diff([]float64{72, 144}, tbl.Widths); diff != "" {
		t.Errorf("Widths mismatch (-want +got):\n%s", diff)
	}
	if !tbl.Rows[0][0].IsHeader {
		t.Error("first row should be a header row")
	}
	if tbl.Rows[0][1].Style.VerticalAlign != VAlignMiddle {
		t.Errorf("VerticalAlign = %v, want middle", tbl.Rows[0][1].Style.VerticalAlign)
	}
	if c := tbl.Rows[1][0]; c.ColSpan != 2 || c.GetText() != "wide\n" {
		t.Errorf("merged cell = span %d, text %q", c.ColSpan, c.GetText())
	}
	if !tbl.Rows[1][1].Merged {
		t.Error("continuation cell should be merged")
	}

	elems := doc.Sections[0].Elements
	if len(elems) != 2 {
		t.Fatalf("elements = %d, want table and paragraph", len(elems))
	}
	if _, ok := elems[1].(*Paragraph); !ok {
		t.Errorf("second element = %T, want *Paragraph", elems[1])
	}
}

func TestBuilderVerticalMerge(t *testing.T) {
	b, s := newScript(t)
	inTbl := list(sprm.InTbl, sprm.Int(1))
	row := func(text string, vmerge int) {
		s.props(inTbl)
		s.run(text, sprm.Sprms{})
		s.props(cellEnd(sprm.VMerge, sprm.Int(vmerge)))
		s.endPara()
		s.props(inTbl)
		s.props(list(sprm.TblRow, sprm.Int(1)))
		s.endPara()
	}
	row("top", sprm.MergeRestart)
	row("", sprm.MergeContinue)
	row("", sprm.MergeContinue)

	tbl := b.Document().ExtractTables()[0]
	if got := tbl.Rows[0][0].RowSpan; got != 3 {
		t.Errorf("RowSpan = %d, want 3", got)
	}
	if !tbl.Rows[2][0].Merged {
		t.Error("last cell should be merged")
	}
}

// ============================================================================
// Substream Tests
// ============================================================================

func noteStream(text string) resolverFunc {
	return func(sink importer.Sink) error {
		sink.StartParagraphGroup()
		s := script{b: sink}
		s.run(text, sprm.Sprms{})
		s.run("\r", sprm.Sprms{})
		sink.EndParagraphGroup()
		return nil
	}
}

func TestBuilderFootnotes(t *testing.T) {
	b, s := newScript(t)
	s.run("Claim", sprm.Sprms{})
	b.Substream(sprm.Footnote, noteStream("Source one."))
	s.run(" and more", sprm.Sprms{})
	b.Substream(sprm.Footnote, noteStream("Source two."))
	s.endPara()

	doc := b.Document()
	if got, want := doc.ExtractText(), "Claim[1] and more[2]"; got != want {
		t.Errorf("ExtractText() = %q, want %q", got, want)
	}
	notes := doc.Footnotes()
	if len(notes) != 2 {
		t.Fatalf("footnotes = %d, want 2", len(notes))
	}
	if got := strings.TrimSpace(notes[1].GetText()); got != "Source two." {
		t.Errorf("note text = %q", got)
	}
}

func TestBuilderComment(t *testing.T) {
	b, s := newScript(t)
	s.run("Text", sprm.Sprms{})
	b.Substream(sprm.Annotation, resolverFunc(func(sink importer.Sink) error {
		sink.Props(&importer.Properties{Attributes: list(
			sprm.AnnotationAuthor, sprm.String("Ann"),
			sprm.AnnotationInitials, sprm.String("AB"),
		)})
		return noteStream("Check this")(sink)
	}))
	s.endPara()

	doc := b.Document()
	if len(doc.Comments) != 1 {
		t.Fatalf("comments = %d, want 1", len(doc.Comments))
	}
	c := doc.Comments[0]
	if c.Author != "Ann" || c.Initials != "AB" || strings.TrimSpace(c.GetText()) != "Check this" {
		t.Errorf("comment = %+v", c)
	}
}

func TestBuilderHeaderFooter(t *testing.T) {
	b, s := newScript(t)
	s.para(sprm.Sprms{}, "Body")
	b.Substream(sprm.HeaderRight, noteStream("Running head"))
	b.Substream(sprm.FooterFirst, noteStream("Cover footer"))
	s.props(list(sprm.SectPr, children(
		sprm.PgSz, attrs(
			sprm.PgSzW, sprm.Int(15840),
			sprm.PgSzH, sprm.Int(12240),
			sprm.PgSzOrient, sprm.Int(sprm.OrientLandscape),
		),
		sprm.TitlePg, sprm.Int(1),
	)))
	b.EndSectionGroup()

	sec := b.Document().Sections[0]
	if sec.Width != 792 || sec.Height != 612 || !sec.Landscape || !sec.TitlePage {
		t.Errorf("section = %vx%v landscape %v title %v", sec.Width, sec.Height, sec.Landscape, sec.TitlePage)
	}
	if h := sec.Header(HeaderDefault); h == nil || strings.TrimSpace(elementsText(h.Elements)) != "Running head" {
		t.Errorf("header = %+v", h)
	}
	if f := sec.Header(FooterFirst); f == nil {
		t.Error("missing first page footer")
	}
	if got := sec.ExtractText(); got != "Body\n" {
		t.Errorf("body = %q, headers must stay out of the body", got)
	}
}

func TestBuilderSubstreamError(t *testing.T) {
	b, s := newScript(t)
	failure := errors.New("broken")
	b.Substream(sprm.Footnote, resolverFunc(func(sink importer.Sink) error {
		s := script{b: sink}
		sink.StartParagraphGroup()
		s.run("partial", sprm.Sprms{})
		return failure
	}))
	s.endPara()

	errs := b.Errors()
	if len(errs) != 1 || !errors.Is(errs[0], failure) {
		t.Errorf("Errors() = %v, want the substream failure", errs)
	}
	if got := strings.TrimSpace(b.Document().Footnotes()[0].GetText()); got != "partial" {
		t.Errorf("note text = %q, want content up to the failure", got)
	}
}

// ============================================================================
// Shape Tests
// ============================================================================

func TestBuilderTextBoxShape(t *testing.T) {
	b, s := newScript(t)
	s.run("Anchor", sprm.Sprms{})
	b.StartShape(&importer.Shape{
		Kind:      importer.ShapeTextBox,
		Left:      1440,
		Top:       1440,
		Right:     2880,
		Bottom:    2160,
		LineColor: 0x000000,
		FillColor: -1,
	})
	b.Substream(sprm.TextBox, noteStream("Inside"))
	b.EndShape()
	s.endPara()

	elems := elementsOf(t, b.Document())
	if len(elems) != 2 {
		t.Fatalf("elements = %d, want paragraph then shape", len(elems))
	}
	sh, ok := elems[1].(*Shape)
	if !ok {
		t.Fatalf("second element = %T, want *Shape", elems[1])
	}
	if sh.Kind != "textbox" || sh.BBox != NewBBox(72, 72, 72, 36) {
		t.Errorf("shape = %s %+v", sh.Kind, sh.BBox)
	}
	if sh.FillColor != nil || sh.LineColor == nil {
		t.Errorf("colors = line %v fill %v", sh.LineColor, sh.FillColor)
	}
	if got := strings.TrimSpace(sh.GetText()); got != "Inside" {
		t.Errorf("shape text = %q", got)
	}
}

func TestBuilderMathRun(t *testing.T) {
	b, s := newScript(t)
	omml := `<m:oMath xmlns:m="http://schemas.openxmlformats.org/officeDocument/2006/math">` +
		`<m:r><m:t>x</m:t></m:r></m:oMath>`
	s.run("", list(sprm.Math, attrs(sprm.MathOMML, sprm.String(omml))))
	s.endPara()

	p := elementsOf(t, b.Document())[0].(*Paragraph)
	if len(p.Runs) != 1 || p.Runs[0].Math == nil {
		t.Fatalf("runs = %+v, want one formula", p.Runs)
	}
	if got := p.Runs[0].Math.Text(); got != "x" {
		t.Errorf("formula text = %q, want x", got)
	}
}

// ============================================================================
// Import Tests
// ============================================================================

func TestBuilderFromRTF(t *testing.T) {
	data := []byte(`{\rtf1\ansi\deff0{\fonttbl{\f0 Times New Roman;}}` +
		`\pard Hello {\b bold} world.\par` +
		`\pard\qc Second\par}`)

	b := NewBuilder(nil)
	if err := importer.New(data, importer.Options{}).Resolve(b); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	doc := b.Document()

	if got := doc.ExtractText(); !strings.Contains(got, "Hello bold world.") || !strings.Contains(got, "Second") {
		t.Errorf("ExtractText() = %q", got)
	}
	var bold bool
	for _, s := range doc.Sections {
		for _, e := range s.Elements {
			if p, ok := e.(*Paragraph); ok {
				for _, r := range p.Runs {
					if r.Text == "bold" && r.Style.Bold {
						bold = true
					}
				}
			}
		}
	}
	if !bold {
		t.Error("expected a bold run")
	}
}
