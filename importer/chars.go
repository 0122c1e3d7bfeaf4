package importer

import (
	"strings"
	"unicode/utf16"

	"github.com/tsawler/rtfimport/sprm"
)

// resolveText handles a run of literal bytes.
func (imp *Importer) resolveText(data []byte) error {
	st := imp.top()
	if st.dest == DestSkip {
		return nil
	}
	for len(data) > 0 && st.charsToSkip > 0 {
		data = data[1:]
		st.charsToSkip--
	}
	if len(data) == 0 {
		return nil
	}
	imp.checkUnicode(true, false)

	switch st.dest {
	case DestLevelNumbers:
		for _, b := range data {
			if b != ';' {
				st.levelNumbers = append(st.levelNumbers, int(b))
			}
		}
		return nil
	case DestColorTable:
		for _, b := range data {
			if b == ';' {
				imp.addColor(st)
			}
		}
		return nil
	}
	imp.hexBuf = append(imp.hexBuf, data...)
	imp.checkUnicode(false, true)
	return nil
}

// resolveHex handles one \'hh byte. Bytes are collected so that multi-byte
// code pages decode across escapes.
func (imp *Importer) resolveHex(b byte) error {
	st := imp.top()
	if st.dest == DestSkip {
		return nil
	}
	if st.charsToSkip > 0 {
		st.charsToSkip--
		return nil
	}
	imp.checkUnicode(true, false)
	switch st.dest {
	case DestLevelNumbers:
		st.levelNumbers = append(st.levelNumbers, int(b))
		return nil
	case DestDocComm, DestLevelText:
	default:
		if b == '\r' || b == '\n' {
			imp.checkUnicode(false, true)
			imp.par()
			return nil
		}
	}
	imp.hexBuf = append(imp.hexBuf, b)
	return nil
}

// resolveBinary handles the payload of \binN.
func (imp *Importer) resolveBinary(data []byte) {
	st := imp.top()
	switch st.dest {
	case DestSkip:
	case DestPict:
		st.binary = append(st.binary[:0:0], data...)
		st.picture.hasData = true
	case DestObjData:
		imp.objectBinary = append(imp.objectBinary[:0:0], data...)
	default:
		imp.log.Debug("ignoring binary data", "dest", st.dest, "size", len(data))
	}
}

// checkUnicode flushes the pending \u characters and the pending bytes.
func (imp *Importer) checkUnicode(uni, hex bool) {
	if len(imp.states) == 0 {
		imp.uniBuf = imp.uniBuf[:0]
		imp.hexBuf = imp.hexBuf[:0]
		return
	}
	st := imp.top()
	if uni && len(imp.uniBuf) > 0 {
		s := string(utf16.Decode(imp.uniBuf))
		imp.uniBuf = imp.uniBuf[:0]
		imp.text(filterControlChars(st.dest, s))
	}
	if hex && len(imp.hexBuf) > 0 {
		cp := st.encoding
		if cp == codePageSymbol && (st.dest == DestFontEntry || imp.inFieldInstruction()) {
			cp = 1252
		}
		s := decode(imp.hexBuf, cp)
		imp.hexBuf = imp.hexBuf[:0]
		imp.text(filterControlChars(st.dest, s))
	}
}

func (imp *Importer) inFieldInstruction() bool {
	p := imp.parent()
	return p != nil && p.dest == DestFieldInstruction
}

// filterControlChars drops C0 controls other than tab and line ends. List
// level text uses them as placeholders and keeps them.
func filterControlChars(dest Destination, s string) string {
	if dest == DestLevelNumbers || dest == DestLevelText {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\r' && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// text routes decoded text to the destination of the current group.
func (imp *Importer) text(s string) {
	if s == "" {
		return
	}
	st := imp.top()
	if (s == "\r" || s == "\n") && st.dest != DestDocComm {
		return
	}

	switch st.dest {
	case DestStyleSheet, DestRevisionTable, DestSkip:
		return
	case DestStyleEntry, DestListName, DestRevisionEntry:
		end := strings.HasSuffix(s, ";")
		st.curText.WriteString(strings.TrimSuffix(s, ";"))
		if !end {
			return
		}
		name := st.takeText()
		switch st.dest {
		case DestStyleEntry:
			imp.finishStyleEntry(st, name)
		case DestRevisionEntry:
			imp.t.authors = append(imp.t.authors, name)
		}
		st.resetProperties()
		return
	case DestDocVar:
		st.docVar += s
		return
	case DestGenerator:
		if !strings.HasPrefix(strings.ToLower(s), "microsoft") {
			imp.t.settingsSprms.Put(sprm.LongerSpaceSequence, sprm.Int(0))
		}
		return
	case DestFontTable:
		st.curText.WriteString(s)
		if strings.HasSuffix(s, ";") {
			imp.finishFontEntry(st)
		}
		return
	}
	if st.dest.collectsText() {
		st.curText.WriteString(s)
		return
	}

	if imp.ignoreFirst != "" && imp.ignoreFirst == s {
		imp.ignoreFirst = ""
		return
	}
	if st.instr != nil {
		st.instr.WriteString(s)
	}

	// Cell properties without any \cellx yet: the row definition is still
	// being read.
	if st.cellSprms.Has(sprm.VAlign) && imp.topCellCount == 0 {
		imp.tableBuffers[len(imp.tableBuffers)-1].add(bufferEntry{kind: bufUText, text: s})
		return
	}

	imp.startContent()

	if st.dest == DestBookmarkStart {
		st.curText.WriteString(s)
		return
	}

	buf := st.buffer
	if buf == nil {
		imp.sink.StartCharacterGroup()
	} else {
		buf.add(bufferEntry{kind: bufStartRun})
	}
	if st.dest == DestNormal || st.dest == DestFieldResult {
		imp.runProps()
	}
	if buf == nil {
		imp.sink.UText(s)
	} else {
		buf.add(bufferEntry{kind: bufUText, text: s})
	}
	imp.needCr = true
	if buf == nil {
		imp.sink.EndCharacterGroup()
	} else {
		buf.add(bufferEntry{kind: bufEndRun})
	}
}

// unicodeChar handles \uN.
func (imp *Importer) unicodeChar(n int) {
	if n < -0x8000 || n > 0xffff {
		return
	}
	st := imp.top()
	if st.dest == DestLevelNumbers {
		if n != ';' {
			st.levelNumbers = append(st.levelNumbers, n)
		} else {
			st.levelNumbersValid = false
		}
	} else {
		imp.uniBuf = append(imp.uniBuf, uint16(n))
	}
	st.charsToSkip = st.uc
}

// addColor appends the color collected by \red, \green and \blue to the
// color table. An entry without components is the automatic color.
func (imp *Importer) addColor(st *parserState) {
	c := sprm.ColorAuto
	if st.colorSet {
		c = st.red<<16 | st.green<<8 | st.blue
	}
	imp.t.colors = append(imp.t.colors, c)
	st.red, st.green, st.blue, st.colorSet = 0, 0, 0, false
}

// color returns the color table entry at index.
func (imp *Importer) color(index int) int {
	if index >= 0 && index < len(imp.t.colors) {
		return imp.t.colors[index]
	}
	return 0
}
