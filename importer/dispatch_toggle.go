package importer

import (
	"github.com/tsawler/rtfimport/sprm"
)

var underlines = map[string]int{
	"ul":         sprm.UnderlineSingle,
	"uld":        sprm.UnderlineDotted,
	"uldash":     sprm.UnderlineDash,
	"uldashd":    sprm.UnderlineDotDash,
	"uldashdd":   sprm.UnderlineDotDotDash,
	"uldb":       sprm.UnderlineDouble,
	"ulhwave":    sprm.UnderlineWavyHeavy,
	"ulldash":    sprm.UnderlineDashLong,
	"ulth":       sprm.UnderlineThick,
	"ulthd":      sprm.UnderlineDottedHeavy,
	"ulthdash":   sprm.UnderlineDashedHeavy,
	"ulthdashd":  sprm.UnderlineDashDotHeavy,
	"ulthdashdd": sprm.UnderlineDashDotDotHeavy,
	"ulthldash":  sprm.UnderlineDashLongHeavy,
	"ululdbwave": sprm.UnderlineWavyDouble,
	"ulw":        sprm.UnderlineWords,
	"ulwave":     sprm.UnderlineWave,
}

// charToggles are the character toggles without a complex-script variant.
var charToggles = map[string]sprm.ID{
	"ab":      sprm.BoldCS,
	"ai":      sprm.ItalicCS,
	"outl":    sprm.Outline,
	"shad":    sprm.Shadow,
	"v":       sprm.Vanish,
	"strike":  sprm.Strike,
	"striked": sprm.DStrike,
	"scaps":   sprm.SmallCaps,
	"impr":    sprm.Imprint,
	"caps":    sprm.Caps,
	"embo":    sprm.Emboss,
}

var emphasisMarks = map[string]int{
	"accnone":     sprm.EmNone,
	"accdot":      sprm.EmDot,
	"acccomma":    sprm.EmComma,
	"acccircle":   sprm.EmCircle,
	"accunderdot": sprm.EmUnderDot,
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (imp *Importer) dispatchToggle(name string, on bool) bool {
	st := imp.top()
	val := sprm.Int(boolInt(on))

	if u, ok := underlines[name]; ok {
		if !on {
			u = sprm.UnderlineNone
		}
		sprm.PutNestedAttribute(&st.charSprms, sprm.Underline, sprm.UnderlineVal, sprm.Int(u))
		return true
	}
	if id, ok := charToggles[name]; ok {
		st.charSprms.Put(id, val)
		return true
	}
	if em, ok := emphasisMarks[name]; ok {
		if !on {
			em = sprm.EmNone
		}
		st.charSprms.Put(sprm.Emphasis, sprm.Int(em))
		return true
	}

	switch name {
	case "b":
		id := sprm.Bold
		if st.runType.complexScript() {
			id = sprm.BoldCS
		}
		st.charSprms.Put(id, val)
	case "i":
		id := sprm.Italic
		if st.runType.complexScript() {
			id = sprm.ItalicCS
		}
		st.charSprms.Put(id, val)
	case "deleted", "revised":
		if !on {
			return true
		}
		token := sprm.RevisionInsert
		if name == "deleted" {
			token = sprm.RevisionDelete
		}
		imp.putTrackChange(st, sprm.TrackChangeToken, sprm.Int(token))
	case "sbauto":
		sprm.PutNestedAttribute(&st.paraSprms, sprm.Spacing, sprm.SpacingBeforeAutospacing, val)
	case "saauto":
		sprm.PutNestedAttribute(&st.paraSprms, sprm.Spacing, sprm.SpacingAfterAutospacing, val)
	case "facingp":
		imp.t.settingsSprms.Put(sprm.EvenAndOddHeaders, val)
	case "hyphauto":
		imp.t.settingsSprms.Put(sprm.AutoHyphenation, val)
	case "hyphcaps":
		imp.t.settingsSprms.Put(sprm.DoNotHyphenateCaps, sprm.Int(boolInt(!on)))
	case "hyphpar":
		st.paraSprms.Put(sprm.SuppressAutoHyphens, sprm.Int(boolInt(!on)))
	case "mnor":
		if imp.math.Depth() > 0 {
			imp.math.Val("nor", boolString(on))
		}
	case "sunhideused":
		st.tableSprms.Put(sprm.StyleUnhideWhenUsed, val)
	default:
		return false
	}
	return true
}

func boolString(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// putTrackChange sets an attribute of the tracked change that applies to
// the following runs, allocating its id first.
func (imp *Importer) putTrackChange(st *parserState, id sprm.ID, v *sprm.Value) {
	if !st.charSprms.Has(sprm.TrackChange) {
		imp.t.revisionID++
		sprm.PutNestedAttribute(&st.charSprms, sprm.TrackChange, sprm.TrackChangeID, sprm.Int(imp.t.revisionID))
	}
	sprm.PutNestedAttribute(&st.charSprms, sprm.TrackChange, id, v)
}
