package importer

import (
	"encoding/binary"

	"github.com/tsawler/rtfimport/graphic"
	"github.com/tsawler/rtfimport/internal/filters"
	"github.com/tsawler/rtfimport/sprm"
)

// Unit conversions. Pictures are measured in 1/100 mm, drawings in EMU.
const (
	emuPerHmm   = 360
	emuPerTwip  = 635
	hmmPerInch  = 2540
	pixelsPerIn = 96
)

func twipsToHmm(n int) int { return n * 127 / 72 }

func pixelsToHmm(n int) int { return n * hmmPerInch / pixelsPerIn }

// pictureValue handles the \pict size, scale and crop values.
func (imp *Importer) pictureValue(name string, n int) bool {
	p := &imp.top().picture
	switch name {
	case "picw":
		p.width = n
	case "pich":
		p.height = n
	case "picwgoal":
		p.goalWidth = twipsToHmm(n)
	case "pichgoal":
		p.goalHeight = twipsToHmm(n)
	case "picscalex":
		p.scaleX = n
	case "picscaley":
		p.scaleY = n
	case "piccropl":
		p.cropL = twipsToHmm(n)
	case "piccropr":
		p.cropR = twipsToHmm(n)
	case "piccropt":
		p.cropT = twipsToHmm(n)
	case "piccropb":
		p.cropB = twipsToHmm(n)
	default:
		return false
	}
	return true
}

// pictureData returns the picture bytes of a \pict group: the \bin payload
// or the decoded hex text. Device independent bitmaps get a file header.
func (imp *Importer) pictureData(st *parserState) []byte {
	data := st.binary
	if data == nil {
		raw, err := filters.HexDecode([]byte(st.takeText()))
		if err != nil {
			imp.log.Debug("ignoring picture with invalid hex data", "error", err)
			return nil
		}
		data = raw
	}
	if len(data) > 0 && st.picture.dib {
		data = withBitmapFileHeader(data)
	}
	return data
}

// withBitmapFileHeader prefixes a packed DIB with a BITMAPFILEHEADER.
func withBitmapFileHeader(dib []byte) []byte {
	const fileHeaderSize = 14
	offset := fileHeaderSize
	if len(dib) >= 4 {
		infoSize := int(binary.LittleEndian.Uint32(dib))
		offset += infoSize
		switch {
		case infoSize == 12 && len(dib) >= 12:
			// BITMAPCOREHEADER: RGB triples.
			if bits := binary.LittleEndian.Uint16(dib[10:]); bits <= 8 {
				offset += 3 << bits
			}
		case infoSize >= 40 && len(dib) >= 36:
			bits := binary.LittleEndian.Uint16(dib[14:])
			used := int(binary.LittleEndian.Uint32(dib[32:]))
			if used == 0 && bits <= 8 {
				used = 1 << bits
			}
			offset += 4 * used
		}
	}
	out := make([]byte, fileHeaderSize, fileHeaderSize+len(dib))
	out[0], out[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(out[2:], uint32(fileHeaderSize+len(dib)))
	binary.LittleEndian.PutUint32(out[10:], uint32(offset))
	return append(out, dib...)
}

// resolvePict sends the picture of a finished \pict group. A picture inside
// an \object becomes the object's replacement graphic and one inside
// \listpicture a picture bullet. Pictures of a shape are anchored like the
// shape; all others are inline.
func (imp *Importer) resolvePict(st *parserState) {
	data := imp.pictureData(st)
	if len(data) == 0 {
		return
	}
	p := st.picture
	g, err := imp.graphics.Decode(data, p.format)
	if err != nil {
		imp.log.Warn("picture not decoded", "format", p.format, "error", err)
		return
	}
	gv := sprm.Handle(g)

	width, height := p.goalWidth, p.goalHeight
	if width == 0 || height == 0 {
		switch {
		case g.Width > 0 && g.Height > 0:
			width, height = pixelsToHmm(g.Width), pixelsToHmm(g.Height)
		default:
			width, height = p.width, p.height
		}
	}
	anchored := st.inShape && (st.shape.Width() != 0 || st.shape.Height() != 0)
	if v, ok := st.shape.Property("fPseudoInline"); ok && v == "1" {
		anchored = false
	}
	if anchored {
		width, height = twipsToHmm(st.shape.Width()), twipsToHmm(st.shape.Height())
		p.scaleX, p.scaleY = 100, 100
	}
	cx := p.scaleX * (width - (p.cropL + p.cropR)) / 100 * emuPerHmm
	cy := p.scaleY * (height - (p.cropT + p.cropB)) / 100 * emuPerHmm

	var extent sprm.Sprms
	extent.Put(sprm.ExtentCx, sprm.Int(cx))
	extent.Put(sprm.ExtentCy, sprm.Int(cy))

	if imp.object {
		imp.objectAttrs.Put(sprm.Graphic, gv)
		imp.objectAttrs.Put(sprm.Extent, sprm.Props(extent, sprm.Sprms{}))
		return
	}
	if st.inListPicture {
		imp.addPictureBullet(gv)
		return
	}

	imp.t.nextDrawingID++
	var docPr sprm.Sprms
	docPr.Put(sprm.DocPrID, sprm.Int(imp.t.nextDrawingID))
	if name, ok := st.shape.Property("wzName"); ok {
		docPr.Put(sprm.DocPrName, sprm.String(name))
	}
	if descr, ok := st.shape.Property("wzDescription"); ok {
		docPr.Put(sprm.DocPrDescr, sprm.String(descr))
	}

	var attrs, sprms sprm.Sprms
	attrs.Put(sprm.DistT, sprm.Int(0))
	attrs.Put(sprm.DistB, sprm.Int(0))
	attrs.Put(sprm.DistL, sprm.Int(0))
	attrs.Put(sprm.DistR, sprm.Int(0))
	sprms.Put(sprm.Extent, sprm.Props(extent, sprm.Sprms{}))
	sprms.Put(sprm.DocPr, sprm.Props(docPr, sprm.Sprms{}))
	if p.cropL != 0 || p.cropR != 0 || p.cropT != 0 || p.cropB != 0 {
		var crop sprm.Sprms
		crop.Put(sprm.CropLeft, sprm.Int(p.cropL))
		crop.Put(sprm.CropRight, sprm.Int(p.cropR))
		crop.Put(sprm.CropTop, sprm.Int(p.cropT))
		crop.Put(sprm.CropBottom, sprm.Int(p.cropB))
		sprms.Put(sprm.SrcRect, sprm.Props(crop, sprm.Sprms{}))
	}
	sprms.Put(sprm.Graphic, gv)

	id := sprm.Inline
	if anchored {
		id = sprm.Anchor
		attrs.Put(sprm.BehindDoc, sprm.Int(boolInt(st.shape.BelowText)))
		wrapID, wrapAttrs := shapeWrap(&st.shape)
		sprms.Put(wrapID, sprm.Props(wrapAttrs, sprm.Sprms{}))
		sprms.Put(sprm.PositionH, position(st.shape.HRelation, st.shape.Left))
		sprms.Put(sprm.PositionV, position(st.shape.VRelation, st.shape.Top))
	}
	var run sprm.Sprms
	run.Put(id, sprm.Props(attrs, sprms))

	imp.startContent()
	imp.emitRun(sprm.Sprms{}, run)
	imp.hadPicture = true
	if st.inShape {
		imp.shapePicture = true
	}
	imp.log.Debug("picture", "format", g.Format, "size", len(g.Data), "anchored", anchored)
}

var wrapSides = map[int]string{0: "bothSides", 1: "left", 2: "right", 3: "largest"}

// shapeWrap maps \shpwr and \shpwrk to a wrap sprm.
func shapeWrap(s *Shape) (sprm.ID, sprm.Sprms) {
	var attrs sprm.Sprms
	switch s.Wrap {
	case 1:
		return sprm.WrapTopAndBottom, attrs
	case 3:
		return sprm.WrapNone, attrs
	case 4, 5:
		attrs.Put(sprm.WrapText, sprm.String(wrapSides[s.WrapSide]))
		return sprm.WrapTight, attrs
	}
	attrs.Put(sprm.WrapText, sprm.String(wrapSides[s.WrapSide]))
	return sprm.WrapSquare, attrs
}

func position(relation, offsetTwips int) *sprm.Value {
	var attrs sprm.Sprms
	attrs.Put(sprm.RelativeFrom, sprm.Int(relation))
	attrs.Put(sprm.PosOffset, sprm.Int(offsetTwips*emuPerTwip))
	return sprm.Props(attrs, sprm.Sprms{})
}

// Graphic returns the decoded picture carried by a Graphic sprm value, or
// nil.
func Graphic(v *sprm.Value) *graphic.Graphic {
	if v == nil {
		return nil
	}
	g, _ := v.Handle().(*graphic.Graphic)
	return g
}
