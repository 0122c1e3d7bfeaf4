package importer

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/rtfimport/docprops"
	"github.com/tsawler/rtfimport/graphic"
	"github.com/tsawler/rtfimport/sprm"
)

// ============================================================================
// Helpers
// ============================================================================

func importRTF(t *testing.T, src string, opts Options) (*Recorder, *Importer) {
	t.Helper()
	imp := New([]byte(src), opts)
	rec := &Recorder{}
	if err := imp.Resolve(rec); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	return rec, imp
}

// stream renders text events, legacy control bytes as <n>.
func stream(events []Event) string {
	var b strings.Builder
	for _, e := range events {
		switch e.Kind {
		case EventUText:
			b.WriteString(e.Text)
		case EventText:
			for _, c := range []byte(e.Text) {
				fmt.Fprintf(&b, "<%d>", c)
			}
		}
	}
	return b.String()
}

// checkBalanced fails when a group is closed before it was opened or left
// open at the end.
func checkBalanced(t *testing.T, events []Event) {
	t.Helper()
	var sections, paragraphs, runs, shapes int
	for i, e := range events {
		switch e.Kind {
		case EventStartSection:
			sections++
		case EventEndSection:
			sections--
		case EventStartParagraph:
			paragraphs++
		case EventEndParagraph:
			paragraphs--
		case EventStartCharacter:
			runs++
		case EventEndCharacter:
			runs--
		case EventStartShape:
			shapes++
		case EventEndShape:
			shapes--
		}
		if sections < 0 || paragraphs < 0 || runs < 0 || shapes < 0 {
			t.Fatalf("event %d (%v) closes a group that is not open", i, e.Kind)
		}
	}
	if sections != 0 || paragraphs != 0 || runs != 0 || shapes != 0 {
		t.Errorf("unbalanced groups: sections=%d paragraphs=%d runs=%d shapes=%d",
			sections, paragraphs, runs, shapes)
	}
}

// runPropsBefore returns the last Props event before the text event with s.
func runPropsBefore(t *testing.T, events []Event, s string) *Properties {
	t.Helper()
	var last *Properties
	for _, e := range events {
		switch {
		case e.Kind == EventProps:
			last = e.Props
		case e.Kind == EventUText && e.Text == s:
			if last == nil {
				t.Fatalf("no properties before %q", s)
			}
			return last
		}
	}
	t.Fatalf("text %q not found", s)
	return nil
}

func substreams(events []Event, id sprm.ID) []Event {
	var out []Event
	for _, e := range events {
		if e.Kind == EventSubstream && e.ID == id {
			out = append(out, e)
		}
	}
	return out
}

func gridCols(p *Properties) []int {
	var out []int
	for _, e := range p.Sprms.Entries() {
		if e.ID == sprm.GridCol {
			out = append(out, e.Value.Int())
		}
	}
	return out
}

// ============================================================================
// Text decoding
// ============================================================================

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"paragraphs", `{\rtf1\ansi Hello\par World\par}`, "Hello\nWorld\n"},
		{"final paragraph without par", `{\rtf1\ansi Hello}`, "Hello\n"},
		{"nested groups", `{\rtf1\ansi {A}{{B}}\par}`, "AB\n"},
		{"hex escapes", `{\rtf1\ansi \'41\'42\'43\par}`, "ABC\n"},
		{"hex then text", `{\rtf1\ansi \'41\'42C\par}`, "ABC\n"},
		{"document code page", `{\rtf1\ansi\ansicpg1251 \'cf\'f0\'e8\par}`, "При\n"},
		{"unicode with default skip", `{\rtf1\ansi \u8364?\par}`, "€\n"},
		{"unicode skip of two", `{\rtf1\ansi\uc2 \u9731??\u9731??Z\par}`, "☃☃Z\n"},
		{"unknown keyword", `{\rtf1\ansi Some \zzzfutureword42 text\par}`, "Some text\n"},
		{"unknown destination", `{\rtf1\ansi A{\*\zzzdest hidden}B\par}`, "AB\n"},
		{"escaped braces", `{\rtf1\ansi \{x\}\par}`, "{x}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := importRTF(t, tt.src, Options{})
			if diff := cmp.Diff(tt.want, rec.PlainText()); diff != "" {
				t.Errorf("PlainText() mismatch (-want +got):\n%s", diff)
			}
			checkBalanced(t, rec.Events)
		})
	}
}

func TestFontTableCodePage(t *testing.T) {
	src := `{\rtf1\ansi{\fonttbl{\f0\froman Times New Roman;}{\f1\fswiss\fcharset204 Arial;}{\f2 Courier Cyr;}}` +
		`\f1 \'cf\par\f2 \'e0\par}`
	rec, _ := importRTF(t, src, Options{})

	if got, want := rec.PlainText(), "П\nа\n"; got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}

	fonts := rec.TableByID(sprm.FontTable)
	if fonts == nil {
		t.Fatal("no font table sent")
	}
	var names []string
	for _, e := range fonts.Sorted().Entries {
		names = append(names, e.Props.Attributes.Find(sprm.FontName).Str())
	}
	if diff := cmp.Diff([]string{"Times New Roman", "Arial", "Courier"}, names); diff != "" {
		t.Errorf("font names mismatch (-want +got):\n%s", diff)
	}
	if cs := fonts.Lookup(1).Attributes.Find(sprm.FontCharset); cs == nil || cs.Int() != 204 {
		t.Errorf("charset of font 1 = %v, want 204", cs)
	}
}

// ============================================================================
// Document structure
// ============================================================================

func TestSectionOnlyDocument(t *testing.T) {
	rec, _ := importRTF(t, `{\rtf1\sect}`, Options{})

	want := []EventKind{
		EventStartSection,
		EventStartParagraph,
		EventStartCharacter, EventUText, EventEndCharacter,
		EventEndParagraph,
		EventEndSection,
		EventLastSection,
	}
	if diff := cmp.Diff(want, rec.Kinds(true)); diff != "" {
		t.Errorf("Kinds() mismatch (-want +got):\n%s", diff)
	}
	if len(rec.PropsWith(sprm.SectPr)) != 1 {
		t.Error("expected one section properties event")
	}
}

func TestSettingsTable(t *testing.T) {
	rec, _ := importRTF(t, `{\rtf1\deftab360 A}`, Options{})
	settings := rec.TableByID(sprm.SettingsTable)
	if settings == nil {
		t.Fatal("no settings table sent")
	}
	if v := settings.Lookup(0).Sprms.Find(sprm.DefaultTabStop); v == nil || v.Int() != 360 {
		t.Errorf("default tab stop = %v, want 360", v)
	}
	if rec.Events[0].Kind != EventTable {
		t.Errorf("first event = %v, want the settings table", rec.Events[0].Kind)
	}

	pasted, _ := importRTF(t, `{\rtf1\deftab360 A}`, Options{Paste: true})
	if pasted.TableByID(sprm.SettingsTable) != nil {
		t.Error("pasted content should not send settings")
	}
}

func TestFirstRunException(t *testing.T) {
	var calls int
	rec, _ := importRTF(t, `{\rtf1 A}`, Options{
		FirstRunException: func(hasTable, hasColumns bool) bool {
			calls++
			return true
		},
	})
	if calls == 0 {
		t.Error("FirstRunException was not consulted")
	}
	if rec.Events[0].Kind != EventStartSection {
		t.Errorf("first event = %v, want StartSection", rec.Events[0].Kind)
	}
	checkBalanced(t, rec.Events)
}

func TestDeterministic(t *testing.T) {
	src := `{\rtf1\ansi{\fonttbl{\f0 Arial;}}{\stylesheet{\s0\fs20 Normal;}}` +
		`\pard\s0 One {\b two}\par{\footnote Note\par}\pard Three\par}`
	first, _ := importRTF(t, src, Options{})
	second, _ := importRTF(t, src, Options{})
	if diff := cmp.Diff(first.Dump(), second.Dump()); diff != "" {
		t.Errorf("two imports differ (-first +second):\n%s", diff)
	}
}

// ============================================================================
// Properties and styles
// ============================================================================

func TestRunProperties(t *testing.T) {
	rec, _ := importRTF(t, `{\rtf1\ansi plain {\b\i bold}{\fs32 big}\par}`, Options{})

	bold := runPropsBefore(t, rec.Events, "bold")
	if v := bold.Sprms.Find(sprm.Bold); v == nil || v.Int() != 1 {
		t.Errorf("bold run: Bold = %v", v)
	}
	if v := bold.Sprms.Find(sprm.Italic); v == nil || v.Int() != 1 {
		t.Errorf("bold run: Italic = %v", v)
	}
	big := runPropsBefore(t, rec.Events, "big")
	if v := big.Sprms.Find(sprm.Size); v == nil || v.Int() != 32 {
		t.Errorf("big run: Size = %v", v)
	}
	if big.Sprms.Has(sprm.Bold) {
		t.Error("bold leaked out of its group")
	}
}

func TestStyleDeduplication(t *testing.T) {
	src := `{\rtf1\ansi{\stylesheet{\s0\fs28\b Normal;}{\s1\sbasedon0\fs28\b\i Heading;}}` +
		`\pard\plain\s0\fs28\b X\par` +
		`\pard\plain\s0\fs32 Y\par}`
	rec, _ := importRTF(t, src, Options{})

	// Formatting equal to the style's own defaults is not repeated.
	x := runPropsBefore(t, rec.Events, "X")
	if !x.Sprms.Empty() || !x.Attributes.Empty() {
		t.Errorf("run X carries redundant formatting: %v", x)
	}

	// Properties the style sets but the run does not fall back to defaults.
	y := runPropsBefore(t, rec.Events, "Y")
	if v := y.Sprms.Find(sprm.Size); v == nil || v.Int() != 32 {
		t.Errorf("run Y: Size = %v, want 32", v)
	}
	if v := y.Sprms.Find(sprm.Bold); v == nil || v.Int() != 0 {
		t.Errorf("run Y: Bold = %v, want explicit 0", v)
	}

	styles := rec.TableByID(sprm.StyleSheet)
	if styles == nil {
		t.Fatal("no style sheet sent")
	}
	heading := styles.Lookup(1)
	if heading == nil {
		t.Fatal("style 1 missing")
	}
	if sprm.NestedSprm(heading.Sprms, sprm.StyleRPr, sprm.Italic) == nil {
		t.Error("heading should keep its own italic")
	}
	for _, id := range []sprm.ID{sprm.Size, sprm.Bold} {
		if sprm.NestedSprm(heading.Sprms, sprm.StyleRPr, id) != nil {
			t.Errorf("heading repeats inherited %v", id)
		}
	}
	if v := heading.Sprms.Find(sprm.StyleName); v == nil || v.Str() != "Heading" {
		t.Errorf("heading name = %v", v)
	}
}

// ============================================================================
// Tables
// ============================================================================

func TestCorrectGridWidths(t *testing.T) {
	tests := []struct {
		name   string
		widths []int
		trLeft int
		want   []int
	}{
		{"zero width cell", []int{0, 100, 0, 150}, 0, []int{0, 100, minCellWidth, 150}},
		{"row reset kept", []int{-1, 0, 100, 0, 150}, 0, []int{-1, 0, 100, minCellWidth, 150}},
		{"all zero", []int{0, 0, 0}, 0, []int{0, 0, 0}},
		{"row indent", []int{1100, 1000}, 100, []int{1000, 1000}},
		{"trailing zero", []int{-1, 500, 0}, 0, []int{-1, 500, minCellWidth}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := correctGridWidths(tt.widths, tt.trLeft)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("correctGridWidths() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTableRow(t *testing.T) {
	src := `{\rtf1\ansi\trowd\clvertalc\cellx1000\cellx2000\intbl A\cell B\cell\row}`
	rec, _ := importRTF(t, src, Options{})

	if text := rec.PlainText(); !strings.HasPrefix(text, "A\nB\n") {
		t.Errorf("PlainText() = %q, want cells in order", text)
	}
	cells := rec.PropsWith(sprm.TblCell)
	if len(cells) != 2 {
		t.Fatalf("got %d cell properties, want 2", len(cells))
	}
	if v := cells[0].Sprms.Find(sprm.VAlign); v == nil || v.Int() != sprm.VAlignCenter {
		t.Errorf("first cell VAlign = %v", v)
	}
	if cells[1].Sprms.Has(sprm.VAlign) {
		t.Error("second cell should not inherit the first cell's alignment")
	}

	rows := rec.PropsWith(sprm.TblRow)
	if len(rows) != 1 {
		t.Fatalf("got %d row properties, want 1", len(rows))
	}
	if diff := cmp.Diff([]int{-1, 1000, 1000}, gridCols(rows[0])); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
	checkBalanced(t, rec.Events)
}

func TestTableWidthCorrection(t *testing.T) {
	src := `{\rtf1\ansi\trowd\cellx0\cellx100\cellx100\cellx250` +
		`\intbl a\cell b\cell c\cell d\cell\row}`
	rec, _ := importRTF(t, src, Options{})

	rows := rec.PropsWith(sprm.TblRow)
	if len(rows) != 1 {
		t.Fatalf("got %d row properties, want 1", len(rows))
	}
	want := []int{-1, 0, 100, minCellWidth, 150}
	if diff := cmp.Diff(want, gridCols(rows[0])); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
	if text := rec.PlainText(); !strings.HasPrefix(text, "a\nb\nc\nd\n") {
		t.Errorf("PlainText() = %q", text)
	}
}

func newReplayImporter() (*Importer, *Recorder) {
	imp := New([]byte(`{\rtf1}`), Options{})
	rec := &Recorder{}
	imp.sink = rec
	return imp, rec
}

func cellProps(valign int) (attrs, sprms sprm.Sprms) {
	sprms.Put(sprm.VAlign, sprm.Int(valign))
	return attrs, sprms
}

func TestReplayCellOrder(t *testing.T) {
	imp, rec := newReplayImporter()

	buf := &buffer{}
	for _, s := range []string{"a", "b"} {
		buf.add(bufferEntry{kind: bufStartRun})
		buf.add(bufferEntry{kind: bufUText, text: s})
		buf.add(bufferEntry{kind: bufEndRun})
		buf.add(bufferEntry{kind: bufCellEnd})
	}
	var cells cellQueue
	cells.push(cellProps(sprm.VAlignTop))
	cells.push(cellProps(sprm.VAlignBottom))

	imp.replayRowBuffer(buf, &cells, 2)

	if got, want := rec.PlainText(), "a\nb\n"; got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
	props := rec.PropsWith(sprm.TblCell)
	if len(props) != 2 {
		t.Fatalf("got %d cells, want 2", len(props))
	}
	var aligns []int
	for _, p := range props {
		aligns = append(aligns, p.Sprms.Find(sprm.VAlign).Int())
	}
	if diff := cmp.Diff([]int{sprm.VAlignTop, sprm.VAlignBottom}, aligns); diff != "" {
		t.Errorf("cell order mismatch (-want +got):\n%s", diff)
	}
	if !buf.empty() {
		t.Errorf("buffer not consumed: %d entries left", len(buf.entries))
	}
}

func TestReplayOrphanCellEnd(t *testing.T) {
	imp, rec := newReplayImporter()

	buf := &buffer{}
	for _, s := range []string{"a", "b"} {
		buf.add(bufferEntry{kind: bufUText, text: s})
		buf.add(bufferEntry{kind: bufCellEnd})
	}
	var cells cellQueue
	cells.push(cellProps(sprm.VAlignTop))

	imp.replayRowBuffer(buf, &cells, 1)

	if got, want := rec.PlainText(), "a\n"; got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
	if len(rec.PropsWith(sprm.TblCell)) != 1 {
		t.Error("expected exactly one emitted cell")
	}
	warnings := imp.Warnings()
	if len(warnings) != 1 || !errors.Is(warnings[0], ErrOrphanCell) {
		t.Errorf("Warnings() = %v, want one ErrOrphanCell", warnings)
	}
}

func TestReplayNestedRow(t *testing.T) {
	imp, rec := newReplayImporter()

	inner := &buffer{}
	inner.add(bufferEntry{kind: bufUText, text: "x"})
	inner.add(bufferEntry{kind: bufCellEnd})
	var innerCells cellQueue
	innerCells.push(cellProps(sprm.VAlignCenter))

	var rowSprms sprm.Sprms
	rowSprms.Put(sprm.TblRow, sprm.Int(1))
	nested := &rowBuffer{
		buf:   inner,
		cells: innerCells,
		count: 1,
		para:  &Properties{},
		row:   &Properties{Sprms: rowSprms},
	}

	outer := &buffer{}
	outer.add(bufferEntry{kind: bufUText, text: "a"})
	outer.add(bufferEntry{kind: bufNestRow, row: nested})
	outer.add(bufferEntry{kind: bufCellEnd})
	var outerCells cellQueue
	outerCells.push(cellProps(sprm.VAlignBottom))

	imp.replayRowBuffer(outer, &outerCells, 1)

	if got, want := rec.PlainText(), "ax\n\n\n"; got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
	var order []int
	for _, e := range rec.Events {
		if e.Kind != EventProps {
			continue
		}
		switch {
		case e.Props.Sprms.Has(sprm.TblCell):
			order = append(order, e.Props.Sprms.Find(sprm.VAlign).Int())
		case e.Props.Sprms.Has(sprm.TblRow):
			order = append(order, -1)
		}
	}
	// Nested cell, nested row, then the outer cell.
	if diff := cmp.Diff([]int{sprm.VAlignCenter, -1, sprm.VAlignBottom}, order); diff != "" {
		t.Errorf("replay order mismatch (-want +got):\n%s", diff)
	}
}

func TestUnterminatedTableContent(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		want  string
		plain bool
	}{
		{"intbl paragraph without row", `{\rtf1\ansi Before\par\intbl A\par}`, "Before\nA\n", true},
		{"row without row end", `{\rtf1\ansi Before\par\trowd\cellx1000\intbl A\cell}`, "Before\nA\n", false},
		{"text after row", `{\rtf1\ansi Before\par\trowd\cellx1000\intbl A\cell\row After\par}`, "After\n", false},
		{"paragraphs after empty row", `{\rtf1\ansi \trowd\cellx1000\row Hello\par World\par}`, "Hello\nWorld\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, imp := importRTF(t, tt.src, Options{})
			checkBalanced(t, rec.Events)
			if got := rec.PlainText(); !strings.Contains(got, tt.want) {
				t.Errorf("PlainText() = %q, want it to contain %q", got, tt.want)
			}

			var found bool
			for _, w := range imp.Warnings() {
				found = found || errors.Is(w, ErrUnterminatedTable)
			}
			if !found {
				t.Errorf("Warnings() = %v, want ErrUnterminatedTable", imp.Warnings())
			}
			if tt.plain && len(rec.PropsWith(sprm.InTbl)) != 0 {
				t.Error("paragraphs outside any row are still marked as table content")
			}
		})
	}
}

func TestRowBeforeContent(t *testing.T) {
	rec, imp := importRTF(t, `{\rtf1\ansi \trowd \cellx1000 \b \row }`, Options{})
	checkBalanced(t, rec.Events)

	kinds := rec.Kinds(true)
	if len(kinds) == 0 || kinds[0] != EventStartSection {
		t.Errorf("kinds = %v, want StartSection first", kinds)
	}
	if len(rec.PropsWith(sprm.TblRow)) != 1 {
		t.Error("expected the row properties")
	}
	if w := imp.Warnings(); len(w) != 0 {
		t.Errorf("Warnings() = %v, want none", w)
	}
}

// ============================================================================
// Fields, substreams, pictures and shapes
// ============================================================================

func TestField(t *testing.T) {
	src := `{\rtf1\ansi{\field{\*\fldinst HYPERLINK "http://example.com"}{\fldrslt link}}\par}`
	rec, _ := importRTF(t, src, Options{})

	want := `<19>HYPERLINK "http://example.com"<20>link<21>`
	if got := stream(rec.Events); !strings.Contains(got, want) {
		t.Errorf("stream = %q, want it to contain %q", got, want)
	}
	checkBalanced(t, rec.Events)
}

func TestFootnoteSubstream(t *testing.T) {
	src := `{\rtf1\ansi A{\footnote\pard Note text\par}B\par{\footnote\ftnalt End\par}\par}`
	rec, _ := importRTF(t, src, Options{})

	if got, want := rec.PlainText(), "AB\n\n"; got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}

	notes := substreams(rec.Events, sprm.Footnote)
	if len(notes) != 1 {
		t.Fatalf("got %d footnotes, want 1", len(notes))
	}
	if notes[0].Err != nil {
		t.Fatalf("footnote error: %v", notes[0].Err)
	}
	sub := &Recorder{Events: notes[0].Sub}
	if got := sub.PlainText(); got != "Note text\n" {
		t.Errorf("footnote text = %q", got)
	}
	checkBalanced(t, notes[0].Sub)

	endnotes := substreams(rec.Events, sprm.Endnote)
	if len(endnotes) != 1 {
		t.Fatalf("got %d endnotes, want 1", len(endnotes))
	}
	if got := (&Recorder{Events: endnotes[0].Sub}).PlainText(); got != "End\n" {
		t.Errorf("endnote text = %q", got)
	}
}

func TestHeaderSubstream(t *testing.T) {
	rec, _ := importRTF(t, `{\rtf1\ansi{\header Head\par}Body\par}`, Options{})

	if got := rec.PlainText(); got != "Body\n" {
		t.Errorf("PlainText() = %q", got)
	}
	headers := substreams(rec.Events, sprm.HeaderRight)
	if len(headers) != 1 {
		t.Fatalf("got %d headers, want 1", len(headers))
	}
	if got := (&Recorder{Events: headers[0].Sub}).PlainText(); got != "Head\n" {
		t.Errorf("header text = %q", got)
	}

	// Headers are sent with the section they belong to.
	var sawHeader bool
	for _, e := range rec.Events {
		if e.Kind == EventSubstream {
			sawHeader = true
		}
		if e.Kind == EventEndSection && !sawHeader {
			t.Error("section ended before its header was sent")
		}
	}
}

func pngHex(t *testing.T, w, h int) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return hex.EncodeToString(buf.Bytes())
}

func TestPicture(t *testing.T) {
	data := pngHex(t, 4, 2)
	src := `{\rtf1\ansi{\pict\pngblip\picw4\pich2\picwgoal1440\pichgoal720 ` + data + `}` +
		`{\pict\pngblip ` + data + `}\par}`
	rec, _ := importRTF(t, src, Options{})

	pics := rec.PropsWith(sprm.Inline)
	if len(pics) != 2 {
		t.Fatalf("got %d pictures, want 2", len(pics))
	}

	inline := pics[0].Sprms.Find(sprm.Inline)
	g := Graphic(inline.Sprms().Find(sprm.Graphic))
	if g == nil {
		t.Fatal("picture has no graphic")
	}
	if g.Format != graphic.FormatPNG || g.Width != 4 || g.Height != 2 {
		t.Errorf("graphic = %v %dx%d, want png 4x2", g.Format, g.Width, g.Height)
	}

	extent := inline.Sprms().Find(sprm.Extent).Attributes()
	// One inch by half an inch in EMU.
	if cx, cy := extent.Find(sprm.ExtentCx).Int(), extent.Find(sprm.ExtentCy).Int(); cx != 914400 || cy != 457200 {
		t.Errorf("extent = %dx%d, want 914400x457200", cx, cy)
	}

	// Identical data is decoded once.
	second := Graphic(pics[1].Sprms.Find(sprm.Inline).Sprms().Find(sprm.Graphic))
	if second != g {
		t.Error("identical pictures should share one decoded graphic")
	}
}

func TestShape(t *testing.T) {
	src := `{\rtf1\ansi\pard{\shp{\*\shpinst\shpleft100\shptop200\shpright1540\shpbottom920` +
		`{\sp{\sn shapeType}{\sv 3}}{\sp{\sn fillColor}{\sv 255}}}}\par}`
	rec, _ := importRTF(t, src, Options{})

	var shapes []*Shape
	for _, e := range rec.Events {
		if e.Kind == EventStartShape {
			shapes = append(shapes, e.Shape)
		}
	}
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(shapes))
	}
	s := shapes[0]
	if s.Kind != ShapeEllipse {
		t.Errorf("Kind = %v, want ellipse", s.Kind)
	}
	if s.Width() != 1440 || s.Height() != 720 {
		t.Errorf("size = %dx%d, want 1440x720", s.Width(), s.Height())
	}
	if s.FillColor != 0xff0000 {
		t.Errorf("FillColor = %#x, want red", s.FillColor)
	}
	if v, ok := s.Property("shapeType"); !ok || v != "3" {
		t.Errorf("shapeType property = %q, %v", v, ok)
	}
	checkBalanced(t, rec.Events)
}

// ============================================================================
// Document information
// ============================================================================

func TestInfo(t *testing.T) {
	src := `{\rtf1\ansi{\info{\title Annual Report}{\author Pat}` +
		`{\creatim\yr2024\mo3\dy15\hr9\min30}}Body\par}`
	store := docprops.New()
	_, imp := importRTF(t, src, Options{Properties: store})

	if imp.Properties() != docprops.Store(store) {
		t.Error("Properties() should return the configured store")
	}
	if got := store.Text(docprops.FieldTitle); got != "Annual Report" {
		t.Errorf("title = %q", got)
	}
	if got := store.Text(docprops.FieldAuthor); got != "Pat" {
		t.Errorf("author = %q", got)
	}
	created, ok := store.Time(docprops.FieldCreated)
	if !ok {
		t.Fatal("creation time not set")
	}
	if created.Year() != 2024 || created.Month() != 3 || created.Day() != 15 || created.Hour() != 9 {
		t.Errorf("created = %v", created)
	}
}

func TestUserProperties(t *testing.T) {
	src := `{\rtf1\ansi{\*\userprops{\propname Project}\proptype30{\staticval Apollo}}Body\par}`
	_, imp := importRTF(t, src, Options{})
	if got := imp.Properties().UserMap()["Project"]; got != "Apollo" {
		t.Errorf("user property = %q, want Apollo", got)
	}
}

// ============================================================================
// Errors
// ============================================================================

func TestFatalErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"unterminated group", `{\rtf1\ansi {A}`, ErrGroupOverflow},
		{"invalid hex", `{\rtf1\ansi \'4g}`, ErrHexInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New([]byte(tt.src), Options{}).Resolve(&Recorder{})
			if !errors.Is(err, tt.want) {
				t.Fatalf("Resolve() error = %v, want %v", err, tt.want)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %T is not a *ParseError", err)
			}
			if !IsFatal(err) {
				t.Error("IsFatal() = false")
			}
		})
	}
}

func TestRecoverableErrors(t *testing.T) {
	imp := New([]byte(`{\rtf1\ansi Text\par}}trailing`), Options{})
	rec := &Recorder{}
	if err := imp.Resolve(rec); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if rec.PlainText() != "Text\n" {
		t.Errorf("PlainText() = %q", rec.PlainText())
	}
	warnings := imp.Warnings()
	if len(warnings) != 1 || !errors.Is(warnings[0], ErrTrailingCharacters) {
		t.Errorf("Warnings() = %v, want trailing characters", warnings)
	}
	if IsFatal(warnings[0]) {
		t.Error("trailing characters should not be fatal")
	}

	imp = New([]byte(`}{\rtf1 A}`), Options{})
	if err := imp.Resolve(&Recorder{}); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if w := imp.Warnings(); len(w) == 0 || !errors.Is(w[0], ErrGroupUnderflow) {
		t.Errorf("Warnings() = %v, want group underflow first", w)
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := New([]byte(`{\rtf1 A}`), Options{}).ResolveContext(ctx, &Recorder{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ResolveContext() error = %v, want context.Canceled", err)
	}
}
