package model

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLOptions controls ToHTML.
type HTMLOptions struct {
	// EmbedImages writes pictures as data URLs. Otherwise only their
	// names are referenced.
	EmbedImages bool
}

// ToHTML renders the document as a standalone HTML page.
func (d *Document) ToHTML(opts HTMLOptions) (string, error) {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	page := element(atom.Html)
	root.AppendChild(page)
	head := element(atom.Head)
	page.AppendChild(head)
	head.AppendChild(element(atom.Meta, "charset", "utf-8"))
	if d.Metadata.Title != "" {
		title := element(atom.Title)
		title.AppendChild(text(d.Metadata.Title))
		head.AppendChild(title)
	}
	if d.Metadata.Author != "" {
		head.AppendChild(element(atom.Meta, "name", "author", "content", d.Metadata.Author))
	}

	body := element(atom.Body)
	page.AppendChild(body)
	w := &htmlWriter{opts: opts}
	for _, s := range d.Sections {
		sec := element(atom.Section, "id", "section-"+strconv.Itoa(s.Number))
		w.elements(sec, s.Elements)
		body.AppendChild(sec)
	}
	if len(d.Notes) > 0 {
		notes := element(atom.Ol, "class", "notes")
		for _, n := range d.Notes {
			li := element(atom.Li, "id", "note-"+noteLabel(n))
			w.elements(li, n.Elements)
			notes.AppendChild(li)
		}
		body.AppendChild(notes)
	}
	if len(d.Comments) > 0 {
		aside := element(atom.Aside, "class", "comments")
		for i, c := range d.Comments {
			div := element(atom.Div, "class", "comment", "id", "comment-"+strconv.Itoa(i+1))
			if c.Author != "" {
				div.Attr = append(div.Attr, html.Attribute{Key: "data-author", Val: c.Author})
			}
			if c.Date != "" {
				div.Attr = append(div.Attr, html.Attribute{Key: "data-date", Val: c.Date})
			}
			w.elements(div, c.Elements)
			aside.AppendChild(div)
		}
		body.AppendChild(aside)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return "", fmt.Errorf("rendering html: %w", err)
	}
	return buf.String(), nil
}

type htmlWriter struct {
	opts     HTMLOptions
	comments int
}

// element creates an element with attributes given as key, value pairs.
func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

var headingAtoms = []atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

func (w *htmlWriter) elements(parent *html.Node, elems []Element) {
	for i := 0; i < len(elems); i++ {
		switch e := elems[i].(type) {
		case *Heading:
			h := element(headingAtoms[min(max(e.Level, 1), 6)-1])
			w.bookmarks(h, e.Bookmarks)
			w.runs(h, e.Runs)
			parent.AppendChild(h)
		case *Paragraph:
			p := element(atom.P)
			if e.Alignment != AlignLeft {
				p.Attr = append(p.Attr, html.Attribute{Key: "style", Val: "text-align: " + e.Alignment.String()})
			}
			w.bookmarks(p, e.Bookmarks)
			w.runs(p, e.Runs)
			parent.AppendChild(p)
		case *List:
			parent.AppendChild(w.list(e.Items, 0))
		case *Table:
			parent.AppendChild(w.table(e))
		case *Shape:
			div := element(atom.Div, "class", "shape shape-"+string(e.Kind))
			if e.Object != nil {
				div.Attr = append(div.Attr, html.Attribute{Key: "data-progid", Val: e.Object.ProgID})
				if e.Object.Image != nil {
					div.AppendChild(w.image(e.Object.Image, e.Object.ProgID))
				}
			}
			w.elements(div, e.Elements)
			parent.AppendChild(div)
		}
	}
}

// list renders items from the given level on, nesting deeper levels into
// the preceding item.
func (w *htmlWriter) list(items []ListItem, level int) *html.Node {
	tag := atom.Ul
	if len(items) > 0 && items[0].Ordered {
		tag = atom.Ol
	}
	l := element(tag)
	if tag == atom.Ol && items[0].Number > 1 {
		l.Attr = append(l.Attr, html.Attribute{Key: "start", Val: strconv.Itoa(items[0].Number)})
	}
	var last *html.Node
	for i := 0; i < len(items); i++ {
		item := items[i]
		if item.Level > level && last != nil {
			j := i
			for j < len(items) && items[j].Level > level {
				j++
			}
			last.AppendChild(w.list(items[i:j], level+1))
			i = j - 1
			continue
		}
		li := element(atom.Li)
		w.runs(li, item.Runs)
		l.AppendChild(li)
		last = li
	}
	return l
}

func (w *htmlWriter) table(t *Table) *html.Node {
	tbl := element(atom.Table)
	for _, row := range t.Rows {
		tr := element(atom.Tr)
		for _, cell := range row {
			if cell.Merged {
				continue
			}
			tag := atom.Td
			if cell.IsHeader {
				tag = atom.Th
			}
			td := element(tag)
			if cell.ColSpan > 1 {
				td.Attr = append(td.Attr, html.Attribute{Key: "colspan", Val: strconv.Itoa(cell.ColSpan)})
			}
			if cell.RowSpan > 1 {
				td.Attr = append(td.Attr, html.Attribute{Key: "rowspan", Val: strconv.Itoa(cell.RowSpan)})
			}
			var style []string
			if cell.Style.BackgroundColor != nil {
				style = append(style, "background-color: "+cell.Style.BackgroundColor.Hex())
			}
			if cell.Style.VerticalAlign != VAlignTop {
				style = append(style, "vertical-align: "+cell.Style.VerticalAlign.String())
			}
			if len(style) > 0 {
				td.Attr = append(td.Attr, html.Attribute{Key: "style", Val: strings.Join(style, "; ")})
			}
			w.elements(td, cell.Elements)
			tr.AppendChild(td)
		}
		tbl.AppendChild(tr)
	}
	return tbl
}

func (w *htmlWriter) bookmarks(n *html.Node, names []string) {
	if len(names) > 0 {
		n.Attr = append(n.Attr, html.Attribute{Key: "id", Val: names[0]})
	}
}

func (w *htmlWriter) runs(parent *html.Node, runs []Run) {
	for _, r := range runs {
		switch {
		case r.Image != nil:
			parent.AppendChild(w.image(r.Image, r.Image.AltText))
		case r.Math != nil:
			span := element(atom.Span, "class", "math")
			span.AppendChild(text(r.Math.Text()))
			parent.AppendChild(span)
		case r.Note != nil:
			sup := element(atom.Sup)
			a := element(atom.A, "href", "#note-"+noteLabel(r.Note))
			a.AppendChild(text(r.Note.Marker()))
			sup.AppendChild(a)
			parent.AppendChild(sup)
		case r.Comment != nil:
			w.comments++
			parent.AppendChild(element(atom.A, "class", "comment-ref", "href", "#comment-"+strconv.Itoa(w.comments)))
		default:
			parent.AppendChild(styledText(r))
		}
	}
}

// styledText wraps the run text in the elements its style calls for.
func styledText(r Run) *html.Node {
	lines := strings.Split(r.Text, "\n")
	var n *html.Node
	if len(lines) == 1 {
		n = text(r.Text)
	} else {
		n = element(atom.Span)
		for i, line := range lines {
			if i > 0 {
				n.AppendChild(element(atom.Br))
			}
			n.AppendChild(text(line))
		}
	}
	wrap := func(a atom.Atom) {
		outer := element(a)
		outer.AppendChild(n)
		n = outer
	}
	if r.Style.Superscript {
		wrap(atom.Sup)
	}
	if r.Style.Subscript {
		wrap(atom.Sub)
	}
	if r.Style.Strike {
		wrap(atom.S)
	}
	if r.Style.Underline {
		wrap(atom.U)
	}
	if r.Style.Italic {
		wrap(atom.Em)
	}
	if r.Style.Bold {
		wrap(atom.Strong)
	}
	if r.Style.Color != nil && *r.Style.Color != (Color{}) {
		span := element(atom.Span, "style", "color: "+r.Style.Color.Hex())
		span.AppendChild(n)
		n = span
	}
	if r.Link != "" {
		a := element(atom.A, "href", r.Link)
		a.AppendChild(n)
		n = a
	}
	return n
}

func (w *htmlWriter) image(img *Image, alt string) *html.Node {
	src := img.Name
	if w.opts.EmbedImages && len(img.Data) > 0 {
		src = "data:" + img.MIMEType() + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
	}
	n := element(atom.Img, "src", src, "alt", alt)
	if img.Width > 0 && img.Height > 0 {
		n.Attr = append(n.Attr,
			html.Attribute{Key: "width", Val: strconv.Itoa(int(img.Width + 0.5))},
			html.Attribute{Key: "height", Val: strconv.Itoa(int(img.Height + 0.5))})
	}
	return n
}
