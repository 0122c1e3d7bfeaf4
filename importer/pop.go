package importer

import (
	"github.com/tsawler/rtfimport/sprm"
)

// nestable are the destinations whose nested groups are finished on their
// own.
var nestable = map[Destination]bool{
	DestFontEntry:         true,
	DestStyleEntry:        true,
	DestRevisionEntry:     true,
	DestDocVar:            true,
	DestListOverrideEntry: true,
	DestMathElement:       true,
}

// beforePopState finishes the destination of st while it is still the
// innermost group, so that anything it sends goes where its content went.
// A plain group inside a destination shares the destination and is left
// alone; only the group that set it finishes it.
func (imp *Importer) beforePopState(st *parserState) error {
	p := imp.parent()
	if p != nil && p.dest == st.dest && !nestable[st.dest] {
		return nil
	}

	switch st.dest {
	case DestFontTable, DestFontEntry:
		imp.endFontTable(st)
	case DestFalt:
		imp.altFontName(st, p)
	case DestStyleEntry:
		if st.ownsText() && st.curText.Len() > 0 {
			imp.finishStyleEntry(st, st.takeText())
		}
	case DestStyleSheet:
		imp.sink.Table(sprm.StyleSheet, imp.deduplicateStyleTable())
	case DestRevisionEntry:
		if st.ownsText() && st.curText.Len() > 0 {
			imp.t.authors = append(imp.t.authors, st.takeText())
		}

	case DestListEntry:
		imp.finishListEntry(st)
		imp.endListEntry(st)
	case DestListLevel:
		if p != nil {
			imp.endListLevel(st, p)
		}
	case DestLevelText:
		imp.endLevelText(st)
	case DestLevelNumbers:
		imp.endLevelNumbers(st)
	case DestListOverrideTable:
		imp.outputNumbering()
	case DestListOverrideEntry:
		if p != nil {
			imp.endListOverride(st, p)
		}
	case DestLfoLevel:
		if p != nil && p.dest == DestListOverrideEntry {
			imp.endLfoLevel(st, p)
		}
	case DestParagraphNumbering:
		if p != nil {
			imp.endParagraphNumbering(st, p)
		}
	case DestParagraphNumberingTextBefore, DestParagraphNumberingTextAfter:
		if p != nil && st.ownsText() {
			if st.dest == DestParagraphNumberingTextBefore {
				p.pnBefore = st.takeText()
			} else {
				p.pnAfter = st.takeText()
			}
		}

	case DestFieldInstruction:
		imp.endFieldInstruction(st)
	case DestFieldResult:
		imp.singleChar(FieldEnd, false)
	case DestField:
		if st.fieldStatus == fieldInstruction {
			imp.singleChar(FieldEnd, false)
		}
	case DestFormFieldName, DestFormFieldList:
		imp.endFormFieldText(st)
	case DestDataField:
		return imp.endDataField(st)
	case DestBookmarkStart:
		imp.endBookmarkStart(st)
	case DestBookmarkEnd:
		imp.endBookmarkEnd(st)
	case DestIndexEntry, DestTocEntry:
		if st.ownsText() {
			imp.endIndexEntry(st)
		}

	case DestTitle, DestSubject, DestAuthor, DestOperator, DestKeywords,
		DestDocComm, DestCompany:
		imp.endInfoText(st)
	case DestComment:
		st.takeText()
	case DestCreationTime, DestRevisionTime, DestPrintTime:
		imp.endInfoDate(st)
	case DestUserProps:
		return imp.endUserProps()
	case DestPropName:
		if p != nil && st.ownsText() {
			p.propName = st.takeText()
		}
	case DestStaticVal:
		imp.endStaticValue(st)
	case DestDocVar:
		if p != nil {
			imp.endDocVar(st, p)
		}

	case DestAtnID, DestAnnotationAuthor, DestAnnotationDate,
		DestAnnotationReference, DestAnnotationReferenceStart,
		DestAnnotationReferenceEnd:
		imp.endAnnotationText(st)

	case DestPict:
		imp.resolvePict(st)
		if !st.inListPicture {
			imp.needFinalPar = true
		}
	case DestPicProp, DestShapeProperty:
		if p != nil {
			p.shape = st.shape.clone()
		}
	case DestShapePropertyName:
		imp.endShapePropertyName(st, p)
	case DestShapePropertyValue:
		imp.endShapePropertyValue(st, p)
	case DestShapeInstruction:
		imp.endShapeInstruction(st, p)
	case DestShape:
		imp.endShapeGroup()
	case DestDrawingObject:
		imp.endDrawingObject(st)
	case DestObjData:
		return imp.endObjData(st)
	case DestObjClass:
		imp.endObjClass(st)
	case DestObject:
		imp.endObject()

	case DestMR, DestMathValue, DestMathElement, DestMoMath:
		imp.endMath(st)
	}
	return nil
}

// afterPopState hands results of the group that just closed to the group
// around it, which is the innermost group again.
func (imp *Importer) afterPopState(st *parserState) {
	p := imp.top()
	if len(imp.states) == 0 {
		return
	}
	switch st.dest {
	case DestLevelText:
		if p.dest == DestListLevel {
			p.tableSprms.Put(sprm.LvlText, sprm.Props(st.tableAttrs, sprm.Sprms{}))
		}
	case DestLevelNumbers:
		if p.dest == DestListLevel {
			p.tableSprms = st.tableSprms
			p.levelNumbers = st.levelNumbers
			p.levelNumbersValid = st.levelNumbersValid
		}
	case DestFieldInstruction:
		if p.dest == DestField {
			p.fieldStatus = fieldInstruction
		}
	case DestFieldResult:
		if p.dest == DestField {
			p.fieldStatus = fieldResult
		}
	}
}
