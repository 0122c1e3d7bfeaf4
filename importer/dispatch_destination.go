package importer

import (
	"bytes"
	"strings"

	"github.com/tsawler/rtfimport/omml"
	"github.com/tsawler/rtfimport/rtftok"
	"github.com/tsawler/rtfimport/sprm"
)

// textDestinations are the destinations that only collect their text.
var textDestinations = map[string]Destination{
	"author":    DestAuthor,
	"operator":  DestOperator,
	"title":     DestTitle,
	"subject":   DestSubject,
	"keywords":  DestKeywords,
	"doccomm":   DestDocComm,
	"comment":   DestComment,
	"company":   DestCompany,
	"propname":  DestPropName,
	"staticval": DestStaticVal,
	"atnid":     DestAtnID,
	"atnauthor": DestAnnotationAuthor,
	"atndate":   DestAnnotationDate,
	"atnref":    DestAnnotationReference,
	"atrfstart": DestAnnotationReferenceStart,
	"atrfend":   DestAnnotationReferenceEnd,
	"bkmkstart": DestBookmarkStart,
	"bkmkend":   DestBookmarkEnd,
	"tc":        DestTocEntry,
	"tcn":       DestTocEntry,
	"xe":        DestIndexEntry,
	"falt":      DestFalt,
	"pntxta":    DestParagraphNumberingTextAfter,
	"pntxtb":    DestParagraphNumberingTextBefore,
	"objclass":  DestObjClass,
	"ffl":       DestFormFieldList,
	"datafield": DestDataField,
	"listname":  DestListName,
	"mr":        DestMR,
}

// formFieldTexts maps the form field text destinations to the FFData sprm
// they fill.
var formFieldTexts = map[string]sprm.ID{
	"ffname":     sprm.FFName,
	"ffdeftext":  sprm.FFDefault,
	"ffhelptext": sprm.FFHelpText,
	"ffstattext": sprm.FFStatusText,
	"ffentrymcr": sprm.FFEntryMacro,
	"ffexitmcr":  sprm.FFExitMacro,
}

var headerFooterIDs = map[string]sprm.ID{
	"header":  sprm.HeaderRight,
	"headerr": sprm.HeaderRight,
	"headerl": sprm.HeaderLeft,
	"headerf": sprm.HeaderFirst,
	"footer":  sprm.FooterRight,
	"footerr": sprm.FooterRight,
	"footerl": sprm.FooterLeft,
	"footerf": sprm.FooterFirst,
}

func (imp *Importer) dispatchDestination(tok rtftok.Token) bool {
	st := imp.top()
	name := tok.Name

	if d, ok := textDestinations[name]; ok {
		st.dest = d
		st.collectOwnText()
		return true
	}
	if id, ok := formFieldTexts[name]; ok {
		st.dest = DestFormFieldName
		st.ffTarget = id
		st.collectOwnText()
		return true
	}
	if id, ok := headerFooterIDs[name]; ok {
		imp.headerFooter(id)
		return true
	}

	switch name {
	case "fonttbl":
		st.dest = DestFontTable
		st.collectOwnText()
	case "colortbl":
		st.dest = DestColorTable
	case "stylesheet":
		st.dest = DestStyleSheet
	case "revtbl":
		st.dest = DestRevisionTable
	case "info":
		st.dest = DestInfo
	case "creatim":
		imp.startDate(st, DestCreationTime)
	case "revtim":
		imp.startDate(st, DestRevisionTime)
	case "printim":
		imp.startDate(st, DestPrintTime)
	case "userprops":
		st.dest = DestUserProps
		imp.userProps = nil
	case "docvar":
		st.dest = DestDocVar
		st.docVar = ""
		st.docVarName = ""
	case "generator":
		st.dest = DestGenerator

	case "field":
		st.dest = DestField
		st.fieldStatus = fieldNone
		st.fieldLocked = false
	case "fldinst":
		if bytes.Contains(imp.peekFieldCode(), []byte("FORM")) {
			imp.formField = true
		}
		imp.startContent()
		imp.singleChar(FieldStart, false)
		st.dest = DestFieldInstruction
		st.instr = new(strings.Builder)
	case "fldrslt":
		st.dest = DestFieldResult
	case "formfield":
		st.dest = DestFormField

	case "listtable":
		st.dest = DestListTable
	case "list":
		st.dest = DestListEntry
		st.listLevelNum = 0
		st.invalidIndents = nil
		st.listLevelEntries.Clear()
		st.tableAttrs.Clear()
		st.tableSprms.Clear()
	case "listlevel":
		st.dest = DestListLevel
		st.tableAttrs.Clear()
		st.tableSprms.Clear()
		st.charAttrs.Clear()
		st.charSprms.Clear()
	case "leveltext":
		st.dest = DestLevelText
		st.tableAttrs.Clear()
		st.collectOwnText()
	case "levelnumbers":
		st.dest = DestLevelNumbers
		st.levelNumbers = nil
		st.levelNumbersValid = true
	case "listoverridetable":
		st.dest = DestListOverrideTable
	case "listoverride":
		st.dest = DestListOverrideEntry
		st.listLevelNum = 0
		st.tableAttrs.Clear()
		st.tableSprms.Clear()
	case "lfolevel":
		st.dest = DestLfoLevel
		st.tableAttrs.Clear()
		st.tableSprms.Clear()
	case "listpicture":
		st.dest = DestListTable
		st.inListPicture = true
	case "pn":
		imp.startParagraphNumbering(st)
	case "pntext", "listtext", "nonshppict", "shprslt", "nonesttables":
		st.dest = DestSkip

	case "footnote":
		imp.footnote(st)
	case "annotation":
		imp.annotation(st)

	case "pict":
		st.dest = DestPict
		st.resetPicture()
		st.collectOwnText()
	case "picprop":
		st.dest = DestPicProp
	case "shppict":
	case "shp":
		st.dest = DestShape
		st.inShape = true
		st.shape = Shape{Kind: ShapeCustom}
	case "shpgrp":
		st.dest = DestShapeGroup
		st.inShape = true
	case "shpinst":
		st.dest = DestShapeInstruction
	case "shptxt":
		imp.shapeText(st)
	case "sp":
		st.dest = DestShapeProperty
	case "sn":
		st.dest = DestShapePropertyName
		st.collectOwnText()
	case "sv":
		st.dest = DestShapePropertyValue
		st.collectOwnText()
	case "do":
		st.dest = DestDrawingObject
		st.drawing = drawingObject{}
	case "dptxbxtext":
		imp.drawingText(st)
	case "object":
		st.dest = DestObject
		imp.startObject()
	case "objdata":
		st.dest = DestObjData
		st.collectOwnText()
		imp.objectBinary = nil
	case "result":
		st.dest = DestResult

	case "upr":
		st.uprDest = st.dest
		st.upr = true
		st.dest = DestSkip
	case "ud":
	case "nesttableprops":
		st.dest = DestNestedTableProperties

	case "mmath":
		st.dest = DestMathElement
		st.mathElement = ""
	case "moMathPara":
		if imp.math.Depth() > 0 {
			return imp.mathDestination(st, name)
		}
	case "moMath":
		imp.math.Reset()
		imp.math.Start("oMath")
		st.dest = DestMoMath
		st.mathElement = "oMath"
		st.mathOpen = true
	default:
		return imp.mathDestination(st, name)
	}
	return true
}

// mathDestination handles the OMML element and property keywords.
func (imp *Importer) mathDestination(st *parserState, name string) bool {
	if imp.math.Depth() == 0 {
		return false
	}
	if v, ok := omml.ValueForKeyword(name); ok {
		st.dest = DestMathValue
		st.mathElement = v
		st.collectOwnText()
		return true
	}
	if el, ok := omml.ElementForKeyword(name); ok {
		imp.math.Start(el)
		st.dest = DestMathElement
		st.mathElement = el
		st.mathOpen = true
		return true
	}
	return false
}

// peekFieldCode returns the input that follows \fldinst up to the first
// closing brace, which holds the field name.
func (imp *Importer) peekFieldCode() []byte {
	rest := imp.data[imp.tok.Offset():]
	if i := bytes.IndexByte(rest, '}'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
