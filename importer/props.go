package importer

import (
	"strings"

	"github.com/tsawler/rtfimport/sprm"
)

// copyFlatten merges style properties into one flat list. The character
// properties of a paragraph style are lifted out of StyleRPr.
func copyFlatten(p *Properties, attrs, sprms *sprm.Sprms) {
	for _, e := range p.Sprms.Entries() {
		if e.ID == sprm.StyleRPr {
			for _, c := range e.Value.Sprms().Entries() {
				sprms.Put(c.ID, c.Value)
			}
			for _, a := range e.Value.Attributes().Entries() {
				attrs.Put(a.ID, a.Value)
			}
			continue
		}
		sprms.Put(e.ID, e.Value)
	}
	for _, a := range p.Attributes.Entries() {
		attrs.Put(a.ID, a.Value)
	}
}

// getProperties returns direct formatting as it is sent to the sink: list
// indents are resolved and everything the active styles already carry is
// removed. replay is set for buffered character properties, whose character
// style is found by name.
func (imp *Importer) getProperties(attrs, sprms sprm.Sprms, styleType int, replay bool) *Properties {
	sprms = sprms.Clone()

	if numID := sprm.NestedSprm(sprms, sprm.NumPr, sprm.NumPrNumID); numID != nil {
		if listID, ok := imp.t.overrides[numID.Int()]; ok {
			if abstract := imp.t.lists[listID]; abstract != nil {
				if invalid, ok := imp.t.invalidFirstIndents[listID]; ok {
					sprms.DeduplicateList(invalid)
				}
				sprms.DuplicateList(abstract)
			}
		}
	}

	styleIndex := 0
	charStyle := -1
	if len(imp.states) > 0 {
		st := imp.top()
		styleIndex = st.styleIndex
		if replay {
			if name := sprms.Find(sprm.RStyle); name != nil {
				charStyle = imp.styleByName(name.Str())
			}
		} else {
			charStyle = st.charStyleIndex
		}
	}

	style, ok := imp.t.styles[styleIndex]
	if !ok && styleIndex == 0 {
		style = &Properties{}
		imp.addStyle(0, style)
		ok = true
	}
	if !ok {
		return NewProperties(attrs, sprms)
	}

	var styleAttrs, styleSprms sprm.Sprms
	copyFlatten(style, &styleAttrs, &styleSprms)
	if cs, ok := imp.t.styles[charStyle]; ok && (styleType == 0 || styleType == sprm.StyleTypeCharacter) {
		copyFlatten(cs, &styleAttrs, &styleSprms)
	}

	outSprms := sprms.CloneAndDeduplicate(styleSprms, styleType, &sprms)
	outAttrs := attrs.CloneAndDeduplicate(styleAttrs, styleType, nil)
	return &Properties{Attributes: outAttrs, Sprms: outSprms}
}

func (imp *Importer) addStyle(index int, p *Properties) {
	if _, ok := imp.t.styles[index]; !ok {
		imp.t.styleOrder = append(imp.t.styleOrder, index)
	}
	imp.t.styles[index] = p
}

// styleByName returns the index of the style named name, or -1.
func (imp *Importer) styleByName(name string) int {
	for _, i := range imp.t.styleOrder {
		if v := imp.t.styles[i].Sprms.Find(sprm.StyleName); v != nil && v.Str() == name {
			return i
		}
	}
	return -1
}

// styleName returns the name of the style at index, or "".
func (imp *Importer) styleName(index int) string {
	return imp.t.styleNames[index]
}

// finishStyleEntry stores the style whose name ends the current stylesheet
// entry.
func (imp *Importer) finishStyleEntry(st *parserState, name string) {
	typ := st.tableAttrs.Find(sprm.StyleType)
	if typ == nil {
		imp.log.Debug("style without type ignored", "name", name)
		return
	}
	name = strings.TrimSpace(name)
	index := imp.currentStyleIndex
	imp.t.styleNames[index] = name
	imp.t.styleTypes[index] = typ.Int()
	st.tableAttrs.Put(sprm.StyleID, sprm.String(name))
	st.tableSprms.Put(sprm.StyleName, sprm.String(name))
	imp.addStyle(index, imp.createStyleProperties(st))
}

var zeroIndents = []sprm.ID{sprm.IndFirstLine, sprm.IndLeft, sprm.IndRight, sprm.IndStart, sprm.IndEnd}

// createStyleProperties wraps the paragraph and character formatting of a
// stylesheet entry into the style's pPr and rPr.
func (imp *Importer) createStyleProperties(st *parserState) *Properties {
	if !st.tableSprms.Has(sprm.StyleBasedOn) {
		// A root style does not set zero indents as formatting.
		for _, id := range zeroIndents {
			if v := sprm.NestedAttribute(st.paraSprms, sprm.Ind, id); v != nil && v.Int() == 0 {
				sprm.EraseNestedAttribute(&st.paraSprms, sprm.Ind, id)
			}
		}
	}
	st.tableSprms.Put(sprm.StylePPr, sprm.Props(st.paraAttrs, st.paraSprms))
	st.tableSprms.Put(sprm.StyleRPr, sprm.Props(st.charAttrs, st.charSprms))
	return NewProperties(st.tableAttrs, st.tableSprms)
}

// deduplicateStyleTable returns the style table as sent to the sink: every
// style only carries what differs from its parent. The flat definitions are
// kept for direct formatting.
func (imp *Importer) deduplicateStyleTable() *Table {
	out := &Table{}
	for _, index := range imp.t.styleOrder {
		style := imp.t.styles[index]
		basedOn := style.Sprms.Find(sprm.StyleBasedOn)
		if basedOn == nil {
			out.Set(index, style)
			continue
		}
		parent, ok := imp.t.styles[basedOn.Int()]
		if !ok || basedOn.Int() == index {
			imp.log.Warn("parent style not found", "style", imp.t.styleNames[index], "basedOn", basedOn.Int())
			out.Set(index, style)
			continue
		}
		styleType := 0
		if v := style.Attributes.Find(sprm.StyleType); v != nil {
			styleType = v.Int()
		}
		out.Set(index, &Properties{
			Attributes: style.Attributes.CloneAndDeduplicate(parent.Attributes, styleType, nil),
			Sprms:      style.Sprms.CloneAndDeduplicate(parent.Sprms, styleType, nil),
		})
	}
	return out
}
