package model

import (
	"fmt"
	"strings"

	"github.com/tsawler/rtfimport/graphic"
)

// ElementType represents the type of a block element
type ElementType int

const (
	ElementTypeUnknown ElementType = iota
	ElementTypeParagraph
	ElementTypeHeading
	ElementTypeList
	ElementTypeTable
	ElementTypeShape
)

func (et ElementType) String() string {
	switch et {
	case ElementTypeParagraph:
		return "Paragraph"
	case ElementTypeHeading:
		return "Heading"
	case ElementTypeList:
		return "List"
	case ElementTypeTable:
		return "Table"
	case ElementTypeShape:
		return "Shape"
	default:
		return "Unknown"
	}
}

// Element is the interface for all block elements
type Element interface {
	Type() ElementType
}

// TextElement is an interface for elements containing text
type TextElement interface {
	Element
	GetText() string
}

// Run is a piece of a paragraph with uniform formatting. Besides text a run
// can hold a picture, a formula or a reference to a note or comment.
type Run struct {
	Text  string
	Style TextStyle
	// Link is the target of the HYPERLINK field the run is a result of.
	Link    string
	Image   *Image
	Math    *Formula
	Note    *Note
	Comment *Comment
}

// runsText concatenates the text of runs. Formulas contribute their linear
// text, note references their number.
func runsText(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		switch {
		case r.Math != nil:
			sb.WriteString(r.Math.Text())
		case r.Note != nil:
			sb.WriteString(r.Note.Marker())
		default:
			sb.WriteString(r.Text)
		}
	}
	return sb.String()
}

// Paragraph represents a paragraph of text
type Paragraph struct {
	Runs      []Run
	StyleName string
	Alignment TextAlignment
	// Bookmarks holds the names of bookmarks starting in the paragraph.
	Bookmarks []string
}

func (p *Paragraph) Type() ElementType { return ElementTypeParagraph }
func (p *Paragraph) GetText() string   { return runsText(p.Runs) }

// Images returns the pictures of the paragraph's runs.
func (p *Paragraph) Images() []*Image {
	var out []*Image
	for _, r := range p.Runs {
		if r.Image != nil {
			out = append(out, r.Image)
		}
	}
	return out
}

// Heading represents a heading
type Heading struct {
	Runs      []Run
	Level     int // 1-6
	StyleName string
	Bookmarks []string
}

func (h *Heading) Type() ElementType { return ElementTypeHeading }
func (h *Heading) GetText() string   { return runsText(h.Runs) }

// List represents consecutive paragraphs of one numbering
type List struct {
	Items   []ListItem
	Ordered bool
	// NumID is the \ls number the items refer to.
	NumID int
}

func (l *List) Type() ElementType { return ElementTypeList }
func (l *List) GetText() string {
	var text string
	for _, item := range l.Items {
		text += item.GetText() + "\n"
	}
	return text
}

// ListItem represents a single list item
type ListItem struct {
	Runs  []Run
	Level int
	// Bullet is the bullet character, or the formatted number such as "3."
	// for ordered levels.
	Bullet string
	// Ordered is set when the item's level is numbered.
	Ordered bool
	Number  int
}

// GetText returns the text of the item without its bullet.
func (li *ListItem) GetText() string { return runsText(li.Runs) }

// Image represents a picture
type Image struct {
	Data   []byte
	Format graphic.Format
	// Width and Height are the displayed size in points.
	Width  float64
	Height float64
	// Pixel size of raster pictures, 0 when unknown.
	PixelWidth  int
	PixelHeight int
	Name        string
	AltText     string
	Hash        string
	// Anchored pictures float relative to the page or paragraph.
	Anchored  bool
	BehindDoc bool
}

// MIMEType returns the media type of the image data.
func (i *Image) MIMEType() string { return i.Format.MIMEType() }

// ShapeKind mirrors the geometry of an imported shape.
type ShapeKind string

// Shape is a drawing or text box. Text box content is held as elements.
type Shape struct {
	Kind      ShapeKind
	BBox      BBox
	Z         int
	BelowText bool
	LineColor *Color
	FillColor *Color
	Elements  []Element
	Object    *Object
	// Properties holds the \sp name/value pairs.
	Properties map[string]string
}

func (s *Shape) Type() ElementType { return ElementTypeShape }
func (s *Shape) GetText() string   { return elementsText(s.Elements) }

// Object is an embedded OLE object with its replacement picture.
type Object struct {
	ProgID string
	// Handle is the name the object was stored under, "" when no
	// container was configured.
	Handle string
	Image  *Image
}

// TextStyle represents text styling
type TextStyle struct {
	Bold        bool
	Italic      bool
	Underline   bool
	Strike      bool
	Superscript bool
	Subscript   bool
	SmallCaps   bool
	Color       *Color
	FontName    string
	FontSize    float64 // points, 0 when unknown
}

// TextAlignment represents text alignment
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a TextAlignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// Color represents an RGB color
type Color struct {
	R, G, B uint8
}

// ColorFromRGB splits a 0xRRGGBB value.
func ColorFromRGB(rgb int) Color {
	return Color{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb)}
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// elementsText joins the text of elements, one per line.
func elementsText(elems []Element) string {
	var sb strings.Builder
	for _, elem := range elems {
		if te, ok := elem.(TextElement); ok {
			sb.WriteString(te.GetText())
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
