package model

// HeaderFooterKind names the pages a header or footer applies to.
type HeaderFooterKind string

const (
	HeaderDefault HeaderFooterKind = "header"
	HeaderLeft    HeaderFooterKind = "header-left"
	HeaderFirst   HeaderFooterKind = "header-first"
	FooterDefault HeaderFooterKind = "footer"
	FooterLeft    HeaderFooterKind = "footer-left"
	FooterFirst   HeaderFooterKind = "footer-first"
)

// HeaderFooter is the content of a section header or footer
type HeaderFooter struct {
	Kind     HeaderFooterKind
	Elements []Element
}

// IsHeader reports whether h is a header rather than a footer.
func (h *HeaderFooter) IsHeader() bool {
	switch h.Kind {
	case HeaderDefault, HeaderLeft, HeaderFirst:
		return true
	}
	return false
}

// Section represents a run of content sharing page setup
type Section struct {
	Number    int     // 1-indexed section number
	Width     float64 // Page width in points, 0 when not set
	Height    float64 // Page height in points, 0 when not set
	Landscape bool
	Columns   int
	// Break is how the section starts: "continuous", "column", "page",
	// "even" or "odd".
	Break     string
	TitlePage bool
	Elements  []Element

	HeadersFooters []*HeaderFooter
}

// NewSection creates a new empty section
func NewSection() *Section {
	return &Section{
		Columns:  1,
		Elements: make([]Element, 0),
	}
}

// AddElement adds an element to the section
func (s *Section) AddElement(elem Element) {
	s.Elements = append(s.Elements, elem)
}

// ExtractText concatenates all text elements
func (s *Section) ExtractText() string {
	return elementsText(s.Elements)
}

// ExtractTables returns all table elements of the section
func (s *Section) ExtractTables() []*Table {
	var tables []*Table
	for _, elem := range s.Elements {
		if table, ok := elem.(*Table); ok {
			tables = append(tables, table)
		}
	}
	return tables
}

// ShapesInRegion returns the shapes whose box intersects bbox
func (s *Section) ShapesInRegion(bbox BBox) []*Shape {
	var shapes []*Shape
	for _, elem := range s.Elements {
		if sh, ok := elem.(*Shape); ok && bbox.Intersects(sh.BBox) {
			shapes = append(shapes, sh)
		}
	}
	return shapes
}

// Header returns the header or footer of the given kind, or nil.
func (s *Section) Header(kind HeaderFooterKind) *HeaderFooter {
	for _, h := range s.HeadersFooters {
		if h.Kind == kind {
			return h
		}
	}
	return nil
}
