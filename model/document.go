package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/tsawler/rtfimport/docprops"
)

// Document represents an imported RTF document
type Document struct {
	Metadata Metadata
	Sections []*Section
	// Notes holds footnotes and endnotes in the order they are referenced.
	Notes    []*Note
	Comments []*Comment
}

// Metadata contains document-level information
type Metadata struct {
	Title        string
	Author       string
	Subject      string
	Keywords     []string
	Operator     string
	Company      string
	Comment      string
	CreationDate time.Time
	ModDate      time.Time
	PrintDate    time.Time
	// Custom holds the user-defined properties
	Custom map[string]string
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Metadata: Metadata{
			Custom: make(map[string]string),
		},
		Sections: make([]*Section, 0),
	}
}

// SetProperties copies the document information collected during import.
func (m *Metadata) SetProperties(p *docprops.Properties) {
	if p == nil {
		return
	}
	m.Title = p.Text(docprops.FieldTitle)
	m.Author = p.Text(docprops.FieldAuthor)
	m.Subject = p.Text(docprops.FieldSubject)
	m.Operator = p.Text(docprops.FieldOperator)
	m.Company = p.Text(docprops.FieldCompany)
	m.Comment = p.Text(docprops.FieldComment)
	m.Keywords = nil
	for _, kw := range strings.FieldsFunc(p.Text(docprops.FieldKeywords), func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		if kw = strings.TrimSpace(kw); kw != "" {
			m.Keywords = append(m.Keywords, kw)
		}
	}
	if t, ok := p.Time(docprops.FieldCreated); ok {
		m.CreationDate = t
	}
	if t, ok := p.Time(docprops.FieldRevised); ok {
		m.ModDate = t
	}
	if t, ok := p.Time(docprops.FieldPrinted); ok {
		m.PrintDate = t
	}
	if m.Custom == nil {
		m.Custom = make(map[string]string)
	}
	for k, v := range p.UserMap() {
		m.Custom[k] = v
	}
}

// AddSection adds a section to the document
func (d *Document) AddSection(s *Section) {
	s.Number = len(d.Sections) + 1
	d.Sections = append(d.Sections, s)
}

// GetSection returns a section by number (1-indexed)
func (d *Document) GetSection(number int) *Section {
	if number < 1 || number > len(d.Sections) {
		return nil
	}
	return d.Sections[number-1]
}

// SectionCount returns the total number of sections
func (d *Document) SectionCount() int {
	return len(d.Sections)
}

// ExtractText returns the text of the body, section by section
func (d *Document) ExtractText() string {
	var parts []string
	for _, s := range d.Sections {
		if text := s.ExtractText(); text != "" {
			parts = append(parts, strings.TrimRight(text, "\n"))
		}
	}
	return strings.Join(parts, "\n\n")
}

// ExtractTables returns all top-level tables of all sections
func (d *Document) ExtractTables() []*Table {
	var tables []*Table
	for _, s := range d.Sections {
		tables = append(tables, s.ExtractTables()...)
	}
	return tables
}

// Footnotes returns the footnotes in reference order.
func (d *Document) Footnotes() []*Note { return d.notes(NoteFootnote) }

// Endnotes returns the endnotes in reference order.
func (d *Document) Endnotes() []*Note { return d.notes(NoteEndnote) }

func (d *Document) notes(kind NoteKind) []*Note {
	var out []*Note
	for _, n := range d.Notes {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// TableOfContents returns the headings of the body as an outline
func (d *Document) TableOfContents() []TOCEntry {
	var toc []TOCEntry
	for _, s := range d.Sections {
		for _, elem := range s.Elements {
			if h, ok := elem.(*Heading); ok {
				toc = append(toc, TOCEntry{
					Level:   h.Level,
					Text:    h.GetText(),
					Section: s.Number,
				})
			}
		}
	}
	return toc
}

// TOCEntry represents an entry in the table of contents
type TOCEntry struct {
	Level   int    // Heading level (1-6)
	Text    string // Heading text
	Section int    // Section number (1-indexed)
}

// NoteKind distinguishes footnotes from endnotes.
type NoteKind int

const (
	NoteFootnote NoteKind = iota
	NoteEndnote
)

// Note is a footnote or endnote. Number counts per kind, from 1.
type Note struct {
	Kind     NoteKind
	Number   int
	Elements []Element
}

// Marker returns the reference mark used in plain text.
func (n *Note) Marker() string {
	if n.Kind == NoteEndnote {
		return "[e" + strconv.Itoa(n.Number) + "]"
	}
	return "[" + strconv.Itoa(n.Number) + "]"
}

// GetText returns the note text.
func (n *Note) GetText() string { return elementsText(n.Elements) }

// Comment is an annotation anchored in the text.
type Comment struct {
	// ID is the \atnref reference, 0 when absent.
	ID       int
	Author   string
	Initials string
	// Date is the comment time formatted as RFC 3339, "" when unknown.
	Date     string
	Elements []Element
}

// GetText returns the comment text.
func (c *Comment) GetText() string { return elementsText(c.Elements) }
