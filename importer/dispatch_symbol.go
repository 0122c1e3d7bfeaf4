package importer

// symbolChars are the control symbols that stand for one character.
var symbolChars = map[string]string{
	"emdash":    "\u2014",
	"endash":    "\u2013",
	"emspace":   "\u2003",
	"enspace":   "\u2002",
	"qmspace":   "\u2005",
	"bullet":    "\u2022",
	"lquote":    "\u2018",
	"rquote":    "\u2019",
	"ldblquote": "\u201c",
	"rdblquote": "\u201d",
	"zwj":       "\u200d",
	"zwnj":      "\u200c",
	"ltrmark":   "\u200e",
	"rtlmark":   "\u200f",
	"zwbo":      "\u200b",
	"zwnbo":     "\u2060",
	"~":         "\u00a0",
	"-":         "\u00ad",
	"_":         "\u2011",
	"\\":        "\\",
	"{":         "{",
	"}":         "}",
	"tab":       "\t",
}

// fakeFields are symbols that insert a field with a fixed instruction.
var fakeFields = map[string]string{
	"chpgn":  " PAGE ",
	"chdate": " DATE ",
	"chtime": " TIME ",
}

func (imp *Importer) dispatchSymbol(name string) (bool, error) {
	if s, ok := symbolChars[name]; ok {
		imp.text(s)
		return true, nil
	}
	if instr, ok := fakeFields[name]; ok {
		imp.fakeField(instr, "")
		return true, nil
	}

	switch name {
	case "par":
		if !imp.top().dest.collectsText() {
			imp.par()
		}
	case "sect":
		imp.hadSect = true
		imp.sectBreak(false)
	case "cell", "nestcell":
		imp.cell()
	case "row":
		imp.row()
	case "nestrow":
		return true, imp.nestRow()
	case "line", "softline":
		imp.startContent()
		imp.singleChar(LineBreak, true)
		imp.needCr = true
	case "page":
		imp.pageBreak()
	case "column":
		imp.startContent()
		imp.singleChar(ColumnBreak, false)
		imp.needCr = true
	case "chftn", "chftnsep", "chftnsepc", "chatn", "softpage", "softcol",
		"softlheight", ":", "|":
		// Reference marks are generated by the sink; soft breaks are layout
		// hints.
	default:
		return false, nil
	}
	return true, nil
}

// pageBreak handles \page. Breaks inside a table row are dropped.
func (imp *Importer) pageBreak() {
	if imp.top().buffer != nil {
		return
	}
	firstRun := imp.firstRun
	imp.startContent()
	imp.singleChar(PageBreak, false)
	if (firstRun || imp.needCr) && !imp.needPap {
		imp.parBreak()
		imp.needPap = true
	}
	imp.needCr = true
}

// fakeField inserts a complete field with the given instruction. result is
// sent between the separator and the end mark.
func (imp *Importer) fakeField(instr, result string) {
	imp.startContent()
	imp.singleChar(FieldStart, false)
	imp.utextRun(instr, false)
	imp.singleChar(FieldSeparator, true)
	if result != "" {
		imp.utextRun(result, true)
	}
	imp.singleChar(FieldEnd, false)
}

// utextRun sends s as one run, bypassing destination routing.
func (imp *Importer) utextRun(s string, runProps bool) {
	if buf := imp.top().buffer; buf != nil {
		buf.add(bufferEntry{kind: bufStartRun})
		if runProps {
			imp.runProps()
		}
		buf.add(bufferEntry{kind: bufUText, text: s})
		buf.add(bufferEntry{kind: bufEndRun})
		return
	}
	imp.sink.StartCharacterGroup()
	if runProps {
		imp.runProps()
	}
	imp.sink.UText(s)
	imp.sink.EndCharacterGroup()
}
