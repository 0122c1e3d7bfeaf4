package omml

import (
	"strings"

	"github.com/beevik/etree"
)

// LinearText renders serialized OMML as a one-line approximation: fractions
// become (a)/(b), scripts use ^ and _, radicals use √.
func LinearText(xml string) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		return "", err
	}
	root := doc.Root()
	if root == nil {
		return "", nil
	}
	var sb strings.Builder
	writeLinear(&sb, root)
	return sb.String(), nil
}

func writeLinear(sb *strings.Builder, el *etree.Element) {
	switch el.Tag {
	case "t":
		sb.WriteString(el.Text())
		return
	case "f":
		sb.WriteString("(")
		writeChild(sb, el, "num")
		sb.WriteString(")/(")
		writeChild(sb, el, "den")
		sb.WriteString(")")
		return
	case "sSup":
		writeChild(sb, el, "e")
		sb.WriteString("^")
		writeGrouped(sb, el, "sup")
		return
	case "sSub":
		writeChild(sb, el, "e")
		sb.WriteString("_")
		writeGrouped(sb, el, "sub")
		return
	case "sSubSup":
		writeChild(sb, el, "e")
		sb.WriteString("_")
		writeGrouped(sb, el, "sub")
		sb.WriteString("^")
		writeGrouped(sb, el, "sup")
		return
	case "rad":
		sb.WriteString("√")
		if deg := el.SelectElement("deg"); deg != nil && hasText(deg) {
			sb.WriteString("[")
			writeLinear(sb, deg)
			sb.WriteString("]")
		}
		writeGrouped(sb, el, "e")
		return
	case "d":
		sb.WriteString("(")
		for i, e := range el.SelectElements("e") {
			if i > 0 {
				sb.WriteString(",")
			}
			writeLinear(sb, e)
		}
		sb.WriteString(")")
		return
	case "nary":
		chr := "∫"
		if pr := el.SelectElement("naryPr"); pr != nil {
			if c := pr.SelectElement("chr"); c != nil {
				chr = c.SelectAttrValue("m:val", chr)
			}
		}
		sb.WriteString(chr)
		if sub := el.SelectElement("sub"); sub != nil && hasText(sub) {
			sb.WriteString("_")
			writeGrouped(sb, el, "sub")
		}
		if sup := el.SelectElement("sup"); sup != nil && hasText(sup) {
			sb.WriteString("^")
			writeGrouped(sb, el, "sup")
		}
		writeChild(sb, el, "e")
		return
	}
	for _, c := range el.ChildElements() {
		if strings.HasSuffix(c.Tag, "Pr") {
			continue
		}
		writeLinear(sb, c)
	}
}

func writeChild(sb *strings.Builder, el *etree.Element, tag string) {
	if c := el.SelectElement(tag); c != nil {
		writeLinear(sb, c)
	}
}

// writeGrouped writes a child, bracketing it when it is longer than one
// character.
func writeGrouped(sb *strings.Builder, el *etree.Element, tag string) {
	c := el.SelectElement(tag)
	if c == nil {
		return
	}
	var inner strings.Builder
	writeLinear(&inner, c)
	s := inner.String()
	if len([]rune(s)) > 1 {
		sb.WriteString("(" + s + ")")
		return
	}
	sb.WriteString(s)
}

func hasText(el *etree.Element) bool {
	for _, t := range el.FindElements(".//t") {
		if t.Text() != "" {
			return true
		}
	}
	return false
}
