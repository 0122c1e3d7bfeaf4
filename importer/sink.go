package importer

import (
	"sort"

	"github.com/tsawler/rtfimport/sprm"
)

// Properties is one (attributes, sprms) pair handed to a Sink.
type Properties struct {
	Attributes sprm.Sprms
	Sprms      sprm.Sprms
}

// NewProperties returns properties sharing both lists copy-on-write.
func NewProperties(attrs, sprms sprm.Sprms) *Properties {
	return &Properties{Attributes: attrs.Clone(), Sprms: sprms.Clone()}
}

// Value wraps the properties into a single nested value.
func (p *Properties) Value() *sprm.Value {
	return sprm.Props(p.Attributes, p.Sprms)
}

func (p *Properties) String() string {
	return "attrs" + p.Attributes.String() + " sprms" + p.Sprms.String()
}

// TableEntry is one indexed entry of a font, style or numbering table.
type TableEntry struct {
	Index int
	Props *Properties
}

// Table is an ordered set of indexed entries.
type Table struct {
	Entries []TableEntry
}

// Set adds an entry or replaces the entry with the same index.
func (t *Table) Set(index int, p *Properties) {
	for i := range t.Entries {
		if t.Entries[i].Index == index {
			t.Entries[i].Props = p
			return
		}
	}
	t.Entries = append(t.Entries, TableEntry{Index: index, Props: p})
}

// Lookup returns the entry with index, or nil.
func (t *Table) Lookup(index int) *Properties {
	if t == nil {
		return nil
	}
	for _, e := range t.Entries {
		if e.Index == index {
			return e.Props
		}
	}
	return nil
}

// Sorted returns a copy of the table with entries in index order.
func (t *Table) Sorted() *Table {
	out := &Table{Entries: append([]TableEntry(nil), t.Entries...)}
	sort.SliceStable(out.Entries, func(i, j int) bool {
		return out.Entries[i].Index < out.Entries[j].Index
	})
	return out
}

// ShapeKind is the geometry of a shape or drawing object.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeEllipse
	ShapeLine
	ShapeTextBox
	ShapePolyline
	ShapePicture
	ShapeObject
	ShapeCustom
)

var shapeKindNames = [...]string{"rect", "ellipse", "line", "textbox", "polyline", "picture", "object", "custom"}

func (k ShapeKind) String() string {
	if int(k) < len(shapeKindNames) {
		return shapeKindNames[k]
	}
	return "unknown"
}

// ShapeProperty is one \sp name/value pair.
type ShapeProperty struct {
	Name  string
	Value string
}

// Shape describes a \shp shape, a \do drawing object or the placeholder of
// an embedded object. Coordinates are in twips.
type Shape struct {
	Kind                     ShapeKind
	Left, Top, Right, Bottom int
	Z                        int
	// Wrap is the \shpwr wrapping mode, WrapSide the \shpwrk side.
	Wrap      int
	WrapSide  int
	BelowText bool
	InHeader  bool
	// HRelation and VRelation use the sprm.Anchor* values.
	HRelation int
	VRelation int
	LineColor int
	FillColor int
	HasText   bool

	Properties []ShapeProperty
}

// Property returns the value of the named \sp property.
func (s *Shape) Property(name string) (string, bool) {
	for i := len(s.Properties) - 1; i >= 0; i-- {
		if s.Properties[i].Name == name {
			return s.Properties[i].Value, true
		}
	}
	return "", false
}

// Width returns the horizontal extent in twips.
func (s *Shape) Width() int { return s.Right - s.Left }

// Height returns the vertical extent in twips.
func (s *Shape) Height() int { return s.Bottom - s.Top }

func (s Shape) clone() Shape {
	s.Properties = append([]ShapeProperty(nil), s.Properties...)
	return s
}

// Resolver produces the events of a (sub-)document into a Sink.
type Resolver interface {
	Resolve(Sink) error
}

// Sink receives the document as a stream of groups, text and properties.
//
// Groups nest: sections contain paragraphs, paragraphs contain character
// groups. Props applies to the innermost open group. Text carries
// single legacy control bytes (field marks and breaks), UText decoded text.
type Sink interface {
	StartSectionGroup()
	EndSectionGroup()
	StartParagraphGroup()
	EndParagraphGroup()
	StartCharacterGroup()
	EndCharacterGroup()
	Text(data []byte)
	UText(s string)
	Props(p *Properties)
	Table(id sprm.ID, t *Table)
	StartShape(s *Shape)
	EndShape()
	// Substream hands over a header, footer, footnote, endnote, annotation
	// or text box. The sink decides whether and when to resolve it.
	Substream(id sprm.ID, r Resolver)
	// MarkLastSectionGroup tells the sink that the current section group
	// is the last one of the document.
	MarkLastSectionGroup()
}

// Legacy control bytes passed through Text.
const (
	FieldStart     = 0x13
	FieldSeparator = 0x14
	FieldEnd       = 0x15
	FieldLockMark  = 0x18
	LineBreak      = 0x0b
	PageBreak      = 0x0c
	ColumnBreak    = 0x0e
)
