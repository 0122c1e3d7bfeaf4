package model

import (
	"github.com/tsawler/rtfimport/importer"
	"github.com/tsawler/rtfimport/sprm"
)

// imageFrom builds an image from an Inline or Anchor drawing value.
func imageFrom(v *sprm.Value, anchored bool) *Image {
	img := &Image{Anchored: anchored}
	s := v.Sprms()
	setGraphic(img, s.Find(sprm.Graphic))
	setExtent(img, s.Find(sprm.Extent))
	if d := s.Find(sprm.DocPr); d != nil {
		if n := d.Attributes().Find(sprm.DocPrName); n != nil {
			img.Name = n.Str()
		}
		if a := d.Attributes().Find(sprm.DocPrDescr); a != nil {
			img.AltText = a.Str()
		}
	}
	img.BehindDoc = flag(*v.Attributes(), sprm.BehindDoc)
	return img
}

func setGraphic(img *Image, v *sprm.Value) {
	g := importer.Graphic(v)
	if g == nil {
		return
	}
	img.Data = g.Data
	img.Format = g.Format
	img.PixelWidth = g.Width
	img.PixelHeight = g.Height
	img.Hash = g.Hash
}

func setExtent(img *Image, v *sprm.Value) {
	if v == nil {
		return
	}
	if cx := v.Attributes().Find(sprm.ExtentCx); cx != nil {
		img.Width = EMUToPoints(cx.Int())
	}
	if cy := v.Attributes().Find(sprm.ExtentCy); cy != nil {
		img.Height = EMUToPoints(cy.Int())
	}
}

// objectFrom builds an embedded object from an Object value. Its
// attributes carry the replacement picture, its OLEObject child the
// program id and storage handle.
func objectFrom(v *sprm.Value) *Object {
	obj := &Object{}
	attrs := v.Attributes()
	if attrs.Has(sprm.Graphic) {
		img := &Image{}
		setGraphic(img, attrs.Find(sprm.Graphic))
		setExtent(img, attrs.Find(sprm.Extent))
		obj.Image = img
	}
	if ole := v.Sprms().Find(sprm.OLEObject); ole != nil {
		if p := ole.Attributes().Find(sprm.OLEProgID); p != nil {
			obj.ProgID = p.Str()
		}
		if h := ole.Attributes().Find(sprm.OLEHandle); h != nil {
			obj.Handle = h.Str()
		}
	}
	return obj
}

// shapeFrom converts the geometry of an imported shape.
func shapeFrom(s *importer.Shape) *Shape {
	sh := &Shape{
		Kind:      ShapeKind(s.Kind.String()),
		BBox:      BBoxFromTwips(s.Left, s.Top, s.Right, s.Bottom),
		Z:         s.Z,
		BelowText: s.BelowText,
	}
	if s.LineColor >= 0 {
		c := ColorFromRGB(s.LineColor)
		sh.LineColor = &c
	}
	if s.FillColor >= 0 {
		c := ColorFromRGB(s.FillColor)
		sh.FillColor = &c
	}
	if len(s.Properties) > 0 {
		sh.Properties = make(map[string]string, len(s.Properties))
		for _, p := range s.Properties {
			sh.Properties[p.Name] = p.Value
		}
	}
	return sh
}
