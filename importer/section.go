package importer

import (
	"github.com/tsawler/rtfimport/sprm"
)

// checkFirstRun sends the settings table and opens the first section and
// paragraph before the first content of the document.
func (imp *Importer) checkFirstRun() {
	if !imp.firstRun {
		return
	}
	imp.outputSettingsTable()
	imp.firstRun = false
	imp.setNeedSect(true)

	font := sprm.NestedAttribute(imp.defaultState.charSprms, sprm.Fonts, sprm.FontsASCII)
	if font == nil {
		return
	}
	for _, st := range imp.states {
		if sprm.NestedAttribute(st.charSprms, sprm.Fonts, sprm.FontsASCII) == nil {
			sprm.PutNestedAttribute(&st.charSprms, sprm.Fonts, sprm.FontsASCII, font.Clone())
		}
	}
}

// setNeedSect opens a section and a paragraph when none is open. Before the
// first run this only happens for the first-run exception.
func (imp *Importer) setNeedSect(need bool) {
	if !need {
		imp.needSect = false
		return
	}
	if !imp.needSect && imp.firstRun && imp.lookaheadPos != imp.groupStartPos {
		imp.lookaheadPos = imp.groupStartPos
		hasTable, hasColumns := imp.tok.Lookahead(imp.groupStartPos)
		if imp.opts.FirstRunException(hasTable, hasColumns) {
			imp.firstRunException = true
		}
	}
	if !imp.needSect && (!imp.firstRun || imp.firstRunException) {
		if !imp.isSubstream() {
			imp.sink.StartSectionGroup()
		}
		imp.needSect = true
		imp.sink.StartParagraphGroup()
		imp.needPar = true
	}
}

// startContent prepares the sink for content: the first run opens the
// document and pending paragraph properties are sent.
func (imp *Importer) startContent() {
	imp.setNeedSect(true)
	imp.checkFirstRun()
	imp.checkNeedPap()
}

// checkNeedPap sends the pending paragraph properties.
func (imp *Importer) checkNeedPap() {
	if !imp.needPap || len(imp.states) == 0 {
		return
	}
	imp.needPap = false
	st := imp.top()
	if st.buffer != nil {
		imp.bufferProperties(st.buffer, st.paraAttrs, st.paraSprms, sprm.StyleTypeParagraph)
		if st.frame.inFrame() {
			imp.emitRaw(sprm.Sprms{}, st.frame.sprms())
		}
		return
	}
	props := imp.getProperties(st.paraAttrs, st.paraSprms, sprm.StyleTypeParagraph, false)
	inFrame := st.frame.inFrame() && st.frame.set
	if inFrame && st.paraSprms.Has(sprm.PageBreakBefore) {
		imp.singleChar(0x0c, false)
	}
	imp.sink.Props(props)
	if inFrame {
		imp.sink.Props(NewProperties(sprm.Sprms{}, st.frame.sprms()))
	}
}

// runProps sends the character properties of the current run. A pending
// revision mark is turned into a tracked change.
func (imp *Importer) runProps() {
	st := imp.top()
	if st.buffer != nil {
		imp.bufferProperties(st.buffer, st.charAttrs, st.charSprms, sprm.StyleTypeCharacter)
	} else {
		imp.sink.Props(imp.getProperties(st.charAttrs, st.charSprms, sprm.StyleTypeCharacter, true))
	}
	if st.charSprms.Has(sprm.TrackChange) {
		st.startedTrackchange = true
		st.charSprms.Erase(sprm.TrackChange)
	}
}

func (imp *Importer) runBreak() {
	imp.sink.UText("\r")
	imp.needCr = false
}

// singleChar sends one legacy control byte as its own run.
func (imp *Importer) singleChar(b byte, runProps bool) {
	if buf := imp.top().buffer; buf != nil {
		buf.add(bufferEntry{kind: bufStartRun})
		if runProps {
			imp.runProps()
		}
		buf.add(bufferEntry{kind: bufText, b: b})
		buf.add(bufferEntry{kind: bufEndRun})
		return
	}
	imp.sink.StartCharacterGroup()
	if runProps {
		imp.runProps()
	}
	imp.sink.Text([]byte{b})
	imp.sink.EndCharacterGroup()
}

// parBreak ends the current paragraph and starts the next one.
func (imp *Importer) parBreak() {
	imp.checkFirstRun()
	imp.checkNeedPap()
	imp.sink.StartCharacterGroup()
	imp.runBreak()
	imp.sink.EndCharacterGroup()
	imp.sink.EndParagraphGroup()
	imp.hadPicture = false
	if !imp.parAtEndOfSection {
		imp.sink.StartParagraphGroup()
	}
}

// tableBreak ends a table cell or row paragraph.
func (imp *Importer) tableBreak() {
	imp.sink.StartCharacterGroup()
	imp.runBreak()
	imp.sink.EndCharacterGroup()
	imp.sink.EndParagraphGroup()
	imp.sink.StartParagraphGroup()
}

// par handles \par.
func (imp *Importer) par() {
	imp.checkFirstRun()
	imp.checkNeedPap()
	st := imp.top()
	if st.buffer == nil {
		imp.parBreak()
		imp.cellxMax = 0
	} else {
		st.buffer.add(bufferEntry{kind: bufPar})
	}
	imp.needPap = true
	if !st.frame.inFrame() {
		imp.needPar = false
	}
	imp.needFinalPar = false
}

// sectBreak ends the current section. final is set at the end of the
// document.
func (imp *Importer) sectBreak(final bool) {
	st := imp.top()
	needSect := imp.needSect
	continuous := false
	if v := st.sectSprms.Find(sprm.SectType); v != nil {
		continuous = v.Int() == sprm.SectContinuous
	}

	if imp.needPar && (!final || needSect || continuous) && !imp.isSubstream() && imp.isNewDoc() {
		imp.parAtEndOfSection = true
		imp.par()
	}
	if imp.needFinalPar && final {
		imp.pard()
		imp.parAtEndOfSection = true
		imp.par()
		imp.needSect = needSect
	}
	if !imp.parAtEndOfSection || st.buffer != nil {
		imp.sink.EndParagraphGroup()
	}
	imp.parAtEndOfSection = false

	for _, hf := range imp.headerFooters {
		imp.resolveSubstream(hf.pos, hf.id, "")
	}
	imp.headerFooters = nil

	if (!needSect || !imp.hadSect) && final && continuous {
		st.sectSprms.Erase(sprm.SectType)
	}

	var sprms sprm.Sprms
	sprms.Put(sprm.SectPr, sprm.Props(st.sectAttrs, st.sectSprms))
	if final && !imp.isSubstream() {
		imp.sink.MarkLastSectionGroup()
	}
	imp.sink.Props(NewProperties(sprm.Sprms{}, sprms))

	if !imp.isSubstream() {
		imp.sink.EndSectionGroup()
	}
	imp.needPar = false
	imp.needSect = false
}

// outputSettingsTable sends the document settings once, before the first
// content of a new document.
func (imp *Importer) outputSettingsTable() {
	if !imp.isNewDoc() || imp.isSubstream() {
		return
	}
	t := &Table{}
	t.Set(0, NewProperties(imp.t.settingsAttrs, imp.t.settingsSprms))
	imp.sink.Table(sprm.SettingsTable, t)
}
