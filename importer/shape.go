package importer

import (
	"strconv"
	"strings"

	"github.com/tsawler/rtfimport/sprm"
)

// shapeValue handles the \shp geometry, the \do drawing object values and
// the \objw and \objh object size.
func (imp *Importer) shapeValue(name string, n int) bool {
	st := imp.top()
	s := &st.shape
	d := &st.drawing
	switch name {
	case "shpleft":
		s.Left = n
	case "shptop":
		s.Top = n
	case "shpright":
		s.Right = n
	case "shpbottom":
		s.Bottom = n
	case "shpz":
		s.Z = n
	case "shpwr":
		s.Wrap = n
	case "shpwrk":
		s.WrapSide = n
	case "shpfblwtxt":
		s.BelowText = n != 0
	case "shpfhdr":
		s.InHeader = n != 0
	case "dpx":
		d.x = n
	case "dpy":
		d.y = n
	case "dpxsize":
		d.w = n
	case "dpysize":
		d.h = n
	case "dplinecor":
		d.lineR, d.hasLine = n, true
	case "dplinecog":
		d.lineG, d.hasLine = n, true
	case "dplinecob":
		d.lineB, d.hasLine = n, true
	case "dpfillbgcr":
		d.fillR, d.hasFill = n, true
	case "dpfillbgcg":
		d.fillG, d.hasFill = n, true
	case "dpfillbgcb":
		d.fillB, d.hasFill = n, true
	case "objw":
		imp.objectWidth = n
	case "objh":
		imp.objectHeight = n
	default:
		return false
	}
	return true
}

// shapeKinds maps the shapeType property to a shape kind.
var shapeKinds = map[int]ShapeKind{
	1:   ShapeRect,
	2:   ShapeRect,
	3:   ShapeEllipse,
	20:  ShapeLine,
	75:  ShapePicture,
	202: ShapeTextBox,
}

// setShapeProperty applies the properties that have a field of their own.
// Colors are stored as BGR numbers.
func setShapeProperty(s *Shape, name, value string) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return
	}
	switch name {
	case "shapeType":
		k, ok := shapeKinds[n]
		if !ok {
			k = ShapeCustom
		}
		s.Kind = k
	case "fillColor":
		s.FillColor = bgrToRGB(n)
	case "lineColor":
		s.LineColor = bgrToRGB(n)
	case "fBehindDocument":
		s.BelowText = n != 0
	case "posrelh":
		s.HRelation = shapeRelation(n)
	case "posrelv":
		s.VRelation = shapeRelation(n)
	}
}

func bgrToRGB(n int) int {
	return (n&0xff)<<16 | n&0xff00 | (n>>16)&0xff
}

// shapeRelation maps posrelh/posrelv: 0 margin, 1 page, 2 column or
// paragraph, 3 character.
func shapeRelation(n int) int {
	switch n {
	case 0:
		return sprm.AnchorMargin
	case 1:
		return sprm.AnchorPage
	case 2:
		return sprm.AnchorParagraph
	case 3:
		return sprm.AnchorCharacter
	}
	return sprm.AnchorText
}

// endShapePropertyName starts a new property of the enclosing \sp.
func (imp *Importer) endShapePropertyName(st, parent *parserState) {
	if !st.ownsText() || parent == nil {
		return
	}
	name := strings.TrimSpace(st.takeText())
	parent.shape.Properties = append(parent.shape.Properties, ShapeProperty{Name: name})
}

// endShapePropertyValue sets the value of the property named last.
func (imp *Importer) endShapePropertyValue(st, parent *parserState) {
	if !st.ownsText() || parent == nil {
		return
	}
	value := strings.TrimSpace(st.takeText())
	props := parent.shape.Properties
	if len(props) == 0 {
		imp.log.Debug("shape property value without name", "value", value)
		return
	}
	props[len(props)-1].Value = value
	setShapeProperty(&parent.shape, props[len(props)-1].Name, value)
}

// resolveShape sends a shape without text.
func (imp *Importer) resolveShape(s *Shape) {
	imp.sink.StartShape(s)
	imp.sink.EndShape()
}

// sendShape sends a shape without text, or buffers it inside a table row.
func (imp *Importer) sendShape(s Shape) {
	imp.startContent()
	c := s.clone()
	if buf := imp.top().buffer; buf != nil {
		buf.add(bufferEntry{kind: bufResolveShape, shape: &c})
		return
	}
	imp.resolveShape(&c)
}

// startShape opens a shape whose content follows.
func (imp *Importer) startShape(s Shape) {
	c := s.clone()
	if buf := imp.top().buffer; buf != nil {
		buf.add(bufferEntry{kind: bufStartShape, shape: &c})
		return
	}
	imp.sink.StartShape(&c)
}

func (imp *Importer) endShape() {
	if buf := imp.top().buffer; buf != nil {
		buf.add(bufferEntry{kind: bufEndShape})
		return
	}
	imp.sink.EndShape()
}

// textBox hands the group at pos over as the text of the open shape.
func (imp *Importer) textBox(pos int64) {
	if buf := imp.top().buffer; buf != nil {
		buf.add(bufferEntry{kind: bufResolveSubstream, pos: pos, id: sprm.TextBox})
		return
	}
	imp.resolveSubstream(pos, sprm.TextBox, "")
}

// isTextBoxStart reports whether the current group is the one a text box
// substream was started at.
func (imp *Importer) isTextBoxStart() bool {
	return imp.streamType == sprm.TextBox && len(imp.states) == 1
}

// shapeText handles \shptxt: the shape is opened and its text is parsed as a
// text box substream. The shape is closed when its instruction ends.
func (imp *Importer) shapeText(st *parserState) {
	if imp.isTextBoxStart() {
		return
	}
	imp.startContent()
	s := st.shape
	s.HasText = true
	imp.startShape(s)
	imp.textBox(imp.groupStartPos)
	st.dest = DestSkip
	imp.shapeTextStarted = true
}

// drawingText handles \dptxbxtext. The text box is sent with the drawing
// object once its geometry, which follows the text, is known.
func (imp *Importer) drawingText(st *parserState) {
	if imp.isTextBoxStart() {
		return
	}
	if p := imp.parent(); p != nil && p.dest == DestDrawingObject {
		p.drawing.hasText = true
		p.drawing.textPos = imp.groupStartPos
	}
	st.dest = DestSkip
}

// endShapeInstruction sends the shape of a finished \shpinst unless its
// picture, its object or its text already stood in for it.
func (imp *Importer) endShapeInstruction(st, parent *parserState) {
	switch {
	case imp.object, st.inListPicture:
	case imp.shapeTextStarted:
		imp.endShape()
		imp.shapeTextStarted = false
	case imp.shapePicture:
		imp.shapePicture = false
	case parent != nil && parent.dest == DestShapeGroup:
		// The instruction of the group itself.
	default:
		imp.sendShape(st.shape)
	}
}

// endShapeGroup closes a shape left open by text outside its instruction.
func (imp *Importer) endShapeGroup() {
	if imp.shapeTextStarted {
		imp.endShape()
		imp.shapeTextStarted = false
	}
	imp.shapePicture = false
}

// endDrawingObject sends a finished \do drawing object.
func (imp *Importer) endDrawingObject(st *parserState) {
	d := st.drawing
	s := Shape{
		Kind:      d.kind,
		Left:      d.x,
		Top:       d.y,
		Right:     d.x + d.w,
		Bottom:    d.y + d.h,
		LineColor: sprm.ColorAuto,
		FillColor: sprm.ColorAuto,
		HasText:   d.hasText,
	}
	if d.hasLine {
		s.LineColor = d.lineR<<16 | d.lineG<<8 | d.lineB
	}
	if d.hasFill {
		s.FillColor = d.fillR<<16 | d.fillG<<8 | d.fillB
	}
	if !d.hasText {
		imp.sendShape(s)
		return
	}
	imp.startContent()
	imp.startShape(s)
	imp.textBox(d.textPos)
	imp.endShape()
}
