package importer

import (
	"fmt"
	"strings"

	"github.com/tsawler/rtfimport/internal/filters"
	"github.com/tsawler/rtfimport/ole"
	"github.com/tsawler/rtfimport/sprm"
)

// startObject handles \object. The picture of its \result group becomes
// the replacement graphic instead of being sent.
func (imp *Importer) startObject() {
	imp.object = true
	imp.objectAttrs.Clear()
	imp.oleAttrs.Clear()
	imp.objectBinary = nil
	imp.oleObject = nil
	imp.objectWidth, imp.objectHeight = 0, 0
}

// endObjData parses the OLE1 wrapper of a finished \objdata group. Data
// that is not valid hex aborts the import; a damaged wrapper only drops the
// object.
func (imp *Importer) endObjData(st *parserState) error {
	raw := imp.objectBinary
	if raw == nil {
		if !st.ownsText() {
			return nil
		}
		var err error
		raw, err = filters.HexDecode([]byte(st.takeText()))
		if err != nil {
			return fmt.Errorf("%w: objdata: %v", ErrHexInvalid, err)
		}
	}
	imp.objectBinary = nil
	if len(raw) == 0 {
		return nil
	}
	obj, err := ole.Parse(raw)
	if err != nil {
		imp.warn(fmt.Errorf("embedded object: %w", err))
		return nil
	}
	imp.oleObject = obj
	return nil
}

// endObjClass stores the \objclass program id.
func (imp *Importer) endObjClass(st *parserState) {
	if st.ownsText() {
		imp.oleAttrs.Put(sprm.OLEProgID, sprm.String(strings.TrimSpace(st.takeText())))
	}
}

// endObject sends a finished \object as a shape holding the object and its
// replacement graphic. The parsed object is stored in the configured
// container first.
func (imp *Importer) endObject() {
	if !imp.object {
		return
	}
	imp.object = false
	obj := imp.oleObject
	imp.oleObject = nil

	if obj == nil && !imp.objectAttrs.Has(sprm.Graphic) {
		imp.log.Debug("dropping object without data or result")
		imp.objectAttrs.Clear()
		imp.oleAttrs.Clear()
		return
	}
	if obj != nil {
		if v := imp.oleAttrs.Find(sprm.OLEProgID); v != nil {
			obj.ProgID = v.Str()
		} else {
			obj.ProgID = obj.ClassName
			imp.oleAttrs.Put(sprm.OLEProgID, sprm.String(obj.ClassName))
		}
		obj.Width, obj.Height = imp.objectWidth, imp.objectHeight
		if imp.opts.Objects != nil {
			name, err := imp.opts.Objects.Insert(obj)
			if err != nil {
				imp.warn(fmt.Errorf("storing embedded object: %w", err))
			} else {
				imp.oleAttrs.Put(sprm.OLEHandle, sprm.String(name))
			}
		}
		imp.oleAttrs.Put(sprm.OLEDrawAspect, sprm.String("Content"))
	}

	var sprms, oleSprms sprm.Sprms
	oleSprms.Put(sprm.OLEObject, sprm.Props(imp.oleAttrs, sprm.Sprms{}))
	sprms.Put(sprm.Object, sprm.Props(imp.objectAttrs, oleSprms))
	imp.objectAttrs.Clear()
	imp.oleAttrs.Clear()

	s := Shape{
		Kind:      ShapeObject,
		Right:     imp.objectWidth,
		Bottom:    imp.objectHeight,
		LineColor: sprm.ColorAuto,
		FillColor: sprm.ColorAuto,
	}
	imp.startContent()
	imp.startShape(s)
	imp.emitRaw(sprm.Sprms{}, sprms)
	imp.endShape()
}
