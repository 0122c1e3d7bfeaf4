package importer

import (
	"github.com/tsawler/rtfimport/sprm"
)

// borderTarget is where a border keyword adds its border.
type borderTarget struct {
	state  borderState
	parent sprm.ID
	id     sprm.ID
}

var borderTargets = map[string]borderTarget{
	"brdrt":   {borderParagraph, sprm.PBdr, sprm.BdrTop},
	"brdrl":   {borderParagraph, sprm.PBdr, sprm.BdrLeft},
	"brdrb":   {borderParagraph, sprm.PBdr, sprm.BdrBottom},
	"brdrr":   {borderParagraph, sprm.PBdr, sprm.BdrRight},
	"brdrbtw": {borderParagraph, sprm.PBdr, sprm.BdrBetween},
	"clbrdrt": {borderCell, sprm.TcBorders, sprm.BdrTop},
	"clbrdrl": {borderCell, sprm.TcBorders, sprm.BdrLeft},
	"clbrdrb": {borderCell, sprm.TcBorders, sprm.BdrBottom},
	"clbrdrr": {borderCell, sprm.TcBorders, sprm.BdrRight},
	"trbrdrt": {borderRow, sprm.TblBorders, sprm.BdrTop},
	"trbrdrl": {borderRow, sprm.TblBorders, sprm.BdrLeft},
	"trbrdrb": {borderRow, sprm.TblBorders, sprm.BdrBottom},
	"trbrdrr": {borderRow, sprm.TblBorders, sprm.BdrRight},
	"trbrdrh": {borderRow, sprm.TblBorders, sprm.BdrInsideH},
	"trbrdrv": {borderRow, sprm.TblBorders, sprm.BdrInsideV},
	"pgbrdrt": {borderPage, sprm.PgBorders, sprm.BdrTop},
	"pgbrdrl": {borderPage, sprm.PgBorders, sprm.BdrLeft},
	"pgbrdrb": {borderPage, sprm.PgBorders, sprm.BdrBottom},
	"pgbrdrr": {borderPage, sprm.PgBorders, sprm.BdrRight},
}

var borderStyles = map[string]int{
	"brdrs":       sprm.BorderSingle,
	"brdrhair":    sprm.BorderSingle,
	"brdrth":      sprm.BorderThick,
	"brdrdb":      sprm.BorderDouble,
	"brdrdot":     sprm.BorderDotted,
	"brdrdash":    sprm.BorderDashed,
	"brdrdashd":   sprm.BorderDotDash,
	"brdrdashdd":  sprm.BorderDotDotDash,
	"brdrtriple":  sprm.BorderTriple,
	"brdrwavy":    sprm.BorderWave,
	"brdrinset":   sprm.BorderInset,
	"brdroutset":  sprm.BorderOutset,
	"brdremboss":  sprm.BorderEmboss,
	"brdrengrave": sprm.BorderEngrave,
	"brdrnone":    sprm.BorderNone,
	"brdrnil":     sprm.BorderNone,
}

var boxBorders = []sprm.ID{sprm.BdrTop, sprm.BdrLeft, sprm.BdrBottom, sprm.BdrRight}

// borderList returns the property list holding borders of state s.
func (st *parserState) borderList(s borderState) *sprm.Sprms {
	switch s {
	case borderParagraph, borderParagraphBox:
		return &st.paraSprms
	case borderCell:
		return &st.cellSprms
	case borderRow:
		return &st.rowSprms
	case borderPage:
		return &st.sectSprms
	case borderCharacter:
		return &st.charSprms
	}
	return nil
}

func borderParent(s borderState) sprm.ID {
	switch s {
	case borderParagraph, borderParagraphBox:
		return sprm.PBdr
	case borderCell:
		return sprm.TcBorders
	case borderRow:
		return sprm.TblBorders
	case borderPage:
		return sprm.PgBorders
	}
	return sprm.Invalid
}

// borderFlag starts a border or sets the line style of the current one.
func (imp *Importer) borderFlag(name string) bool {
	st := imp.top()
	if t, ok := borderTargets[name]; ok {
		sprm.PutNestedSprm(st.borderList(t.state), t.parent, t.id, sprm.Props(sprm.Sprms{}, sprm.Sprms{}))
		st.borderState = t.state
		st.borderID = t.id
		return true
	}
	if v, ok := borderStyles[name]; ok {
		imp.putBorderProperty(st, sprm.BorderVal, sprm.Int(v))
		return true
	}
	switch name {
	case "box":
		for _, id := range boxBorders {
			sprm.PutNestedSprm(&st.paraSprms, sprm.PBdr, id, sprm.Props(sprm.Sprms{}, sprm.Sprms{}))
		}
		st.borderState = borderParagraphBox
	case "chbrdr":
		st.charSprms.Put(sprm.CharBorder, sprm.Props(sprm.Sprms{}, sprm.Sprms{}))
		st.borderState = borderCharacter
	case "brdrsh":
	default:
		return false
	}
	return true
}

// borderValue handles the width, color and spacing of the current border.
func (imp *Importer) borderValue(name string, n int) bool {
	st := imp.top()
	switch name {
	case "brdrw":
		// Twips to eighths of a point.
		imp.putBorderProperty(st, sprm.BorderSz, sprm.Int(n*2/5))
	case "brdrcf":
		imp.putBorderProperty(st, sprm.BorderColor, sprm.Int(imp.color(n)))
	case "brsp":
		// Twips to points.
		imp.putBorderProperty(st, sprm.BorderSpace, sprm.Int(n/20))
	default:
		return false
	}
	return true
}

// putBorderProperty sets an attribute of the border last started. A \box
// border applies it to all four sides.
func (imp *Importer) putBorderProperty(st *parserState, id sprm.ID, v *sprm.Value) {
	switch st.borderState {
	case borderNone:
		return
	case borderParagraphBox:
		p := st.paraSprms.FindForWrite(sprm.PBdr)
		if p == nil {
			return
		}
		for _, side := range boxBorders {
			if b := p.Sprms().FindForWrite(side); b != nil {
				b.Attributes().Put(id, v.Clone())
			}
		}
	case borderCharacter:
		if b := st.charSprms.FindForWrite(sprm.CharBorder); b != nil {
			b.Attributes().Put(id, v)
		}
	default:
		p := st.borderList(st.borderState).FindForWrite(borderParent(st.borderState))
		if p == nil {
			return
		}
		if b := p.Sprms().FindForWrite(st.borderID); b != nil {
			b.Attributes().Put(id, v)
		}
	}
}
