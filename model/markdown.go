package model

import (
	"strconv"
	"strings"
)

// ToMarkdown renders the body, followed by footnotes, endnotes and
// comments.
func (d *Document) ToMarkdown() string {
	var sb strings.Builder
	for i, s := range d.Sections {
		if i > 0 && len(s.Elements) > 0 && sb.Len() > 0 {
			sb.WriteString("---\n\n")
		}
		writeMarkdownElements(&sb, s.Elements)
	}

	if len(d.Notes) > 0 {
		for _, n := range d.Notes {
			sb.WriteString("[^" + noteLabel(n) + "]: ")
			sb.WriteString(strings.TrimSpace(strings.ReplaceAll(n.GetText(), "\n", " ")))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	for i, c := range d.Comments {
		sb.WriteString("> **Comment " + strconv.Itoa(i+1))
		if c.Author != "" {
			sb.WriteString(" (" + escapeMarkdown(c.Author) + ")")
		}
		sb.WriteString(":** ")
		sb.WriteString(escapeMarkdown(strings.TrimSpace(strings.ReplaceAll(c.GetText(), "\n", " "))))
		sb.WriteString("\n\n")
	}
	return strings.TrimSpace(sb.String())
}

func noteLabel(n *Note) string {
	if n.Kind == NoteEndnote {
		return "e" + strconv.Itoa(n.Number)
	}
	return strconv.Itoa(n.Number)
}

func writeMarkdownElements(sb *strings.Builder, elems []Element) {
	for _, elem := range elems {
		switch e := elem.(type) {
		case *Heading:
			level := min(max(e.Level, 1), 6)
			sb.WriteString(strings.Repeat("#", level))
			sb.WriteString(" ")
			sb.WriteString(strings.TrimSpace(markdownRuns(e.Runs)))
			sb.WriteString("\n\n")
		case *Paragraph:
			text := markdownRuns(e.Runs)
			if strings.TrimSpace(text) == "" {
				continue
			}
			sb.WriteString(text)
			sb.WriteString("\n\n")
		case *List:
			for _, item := range e.Items {
				sb.WriteString(strings.Repeat("  ", item.Level))
				if item.Ordered {
					sb.WriteString(strconv.Itoa(item.Number) + ". ")
				} else {
					sb.WriteString("- ")
				}
				sb.WriteString(markdownRuns(item.Runs))
				sb.WriteString("\n")
			}
			sb.WriteString("\n")
		case *Table:
			sb.WriteString(e.ToMarkdown())
			sb.WriteString("\n")
		case *Shape:
			if e.Object != nil && e.Object.Image != nil {
				sb.WriteString(markdownImage(e.Object.Image, e.Object.ProgID))
				sb.WriteString("\n\n")
			}
			writeMarkdownElements(sb, e.Elements)
		}
	}
}

// markdownRuns renders runs with emphasis, links, pictures, formulas and
// note references.
func markdownRuns(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		switch {
		case r.Image != nil:
			sb.WriteString(markdownImage(r.Image, r.Image.AltText))
		case r.Math != nil:
			sb.WriteString("$" + r.Math.Text() + "$")
		case r.Note != nil:
			sb.WriteString("[^" + noteLabel(r.Note) + "]")
		case r.Comment != nil:
		default:
			sb.WriteString(markdownText(r))
		}
	}
	return sb.String()
}

func markdownImage(img *Image, alt string) string {
	name := img.Name
	if name == "" {
		name = "image"
		if img.Hash != "" {
			name += "-" + img.Hash[:min(len(img.Hash), 12)]
		}
		if ext := img.Format.String(); ext != "" && ext != "unknown" {
			name += "." + ext
		}
	}
	return "![" + escapeMarkdown(alt) + "](" + strings.ReplaceAll(name, " ", "%20") + ")"
}

// markdownText wraps the escaped text of a run in its emphasis markers.
// Surrounding spaces stay outside the markers.
func markdownText(r Run) string {
	text := escapeMarkdown(r.Text)
	text = strings.ReplaceAll(text, "\n", "  \n")
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text
	}
	lead := text[:strings.Index(text, trimmed)]
	trail := text[len(lead)+len(trimmed):]

	s := trimmed
	if r.Style.Strike {
		s = "~~" + s + "~~"
	}
	if r.Style.Italic {
		s = "*" + s + "*"
	}
	if r.Style.Bold {
		s = "**" + s + "**"
	}
	if r.Link != "" {
		s = "[" + s + "](" + r.Link + ")"
	}
	return lead + s + trail
}

// escapeMarkdown escapes characters that would start markup.
func escapeMarkdown(text string) string {
	var sb strings.Builder
	for _, r := range text {
		switch r {
		case '\\', '*', '_', '`', '[', ']', '|':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '\r':
			// Skip
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
