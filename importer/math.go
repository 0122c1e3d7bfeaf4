package importer

import (
	"strings"

	"github.com/tsawler/rtfimport/sprm"
)

// mathArgument reports whether the text of an element's groups is a run of
// math text.
func mathArgument(el string) bool {
	switch el {
	case "e", "num", "den", "sub", "sup", "deg", "fName", "lim":
		return true
	}
	return false
}

// flushMathText adds the text collected so far by a math run.
func (imp *Importer) flushMathText(st *parserState) {
	if !st.ownsText() {
		return
	}
	imp.math.Text(st.takeText())
}

// endMath handles the end of the math groups. A finished \moMath is sent
// as a run holding the formula.
func (imp *Importer) endMath(st *parserState) {
	switch st.dest {
	case DestMR:
		imp.flushMathText(st)
	case DestMathValue:
		if st.ownsText() {
			imp.math.Val(st.mathElement, strings.TrimSpace(st.takeText()))
		}
	case DestMathElement:
		if st.mathOpen {
			imp.math.End()
		}
	case DestMoMath:
		if !st.mathOpen {
			return
		}
		imp.math.End()
		xml, err := imp.math.Finish()
		if err != nil {
			imp.warn(err)
			return
		}
		if xml == "" {
			return
		}
		var attrs, sprms sprm.Sprms
		attrs.Put(sprm.MathOMML, sprm.String(xml))
		sprms.Put(sprm.Math, sprm.Props(attrs, sprm.Sprms{}))
		imp.startContent()
		imp.emitRun(sprm.Sprms{}, sprms)
	}
}
