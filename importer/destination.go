package importer

import "strconv"

// Destination tells what the text and keywords of a group are about.
type Destination int

const (
	DestNormal Destination = iota
	DestSkip
	DestFontTable
	DestFontEntry
	DestColorTable
	DestStyleSheet
	DestStyleEntry
	DestField
	DestFieldInstruction
	DestFieldResult
	DestListTable
	DestListEntry
	DestListName
	DestListOverrideTable
	DestListOverrideEntry
	DestListLevel
	DestLevelText
	DestLevelNumbers
	DestLfoLevel
	DestPict
	DestPicProp
	DestShapeProperty
	DestShapePropertyName
	DestShapePropertyValue
	DestShape
	DestShapeGroup
	DestShapeInstruction
	DestNestedTableProperties
	DestFootnote
	DestBookmarkStart
	DestBookmarkEnd
	DestRevisionTable
	DestRevisionEntry
	DestFormField
	DestFormFieldName
	DestFormFieldList
	DestDataField
	DestInfo
	DestCreationTime
	DestRevisionTime
	DestPrintTime
	DestAuthor
	DestKeywords
	DestOperator
	DestCompany
	DestComment
	DestTitle
	DestSubject
	DestDocComm
	DestObject
	DestObjData
	DestObjClass
	DestResult
	DestAnnotationDate
	DestAnnotationAuthor
	DestAnnotationReference
	DestAnnotationReferenceStart
	DestAnnotationReferenceEnd
	DestAtnID
	DestFalt
	DestDrawingObject
	DestParagraphNumbering
	DestParagraphNumberingTextBefore
	DestParagraphNumberingTextAfter
	DestIndexEntry
	DestTocEntry
	DestUserProps
	DestPropName
	DestStaticVal
	DestGenerator
	DestDocVar
	DestMoMath
	DestMR
	DestMathElement
	DestMathValue
)

var destinationNames = map[Destination]string{
	DestNormal:                       "Normal",
	DestSkip:                         "Skip",
	DestFontTable:                    "FontTable",
	DestFontEntry:                    "FontEntry",
	DestColorTable:                   "ColorTable",
	DestStyleSheet:                   "StyleSheet",
	DestStyleEntry:                   "StyleEntry",
	DestField:                        "Field",
	DestFieldInstruction:             "FieldInstruction",
	DestFieldResult:                  "FieldResult",
	DestListTable:                    "ListTable",
	DestListEntry:                    "ListEntry",
	DestListName:                     "ListName",
	DestListOverrideTable:            "ListOverrideTable",
	DestListOverrideEntry:            "ListOverrideEntry",
	DestListLevel:                    "ListLevel",
	DestLevelText:                    "LevelText",
	DestLevelNumbers:                 "LevelNumbers",
	DestLfoLevel:                     "LfoLevel",
	DestPict:                         "Pict",
	DestPicProp:                      "PicProp",
	DestShapeProperty:                "ShapeProperty",
	DestShapePropertyName:            "ShapePropertyName",
	DestShapePropertyValue:           "ShapePropertyValue",
	DestShape:                        "Shape",
	DestShapeGroup:                   "ShapeGroup",
	DestShapeInstruction:             "ShapeInstruction",
	DestNestedTableProperties:        "NestedTableProperties",
	DestFootnote:                     "Footnote",
	DestBookmarkStart:                "BookmarkStart",
	DestBookmarkEnd:                  "BookmarkEnd",
	DestRevisionTable:                "RevisionTable",
	DestRevisionEntry:                "RevisionEntry",
	DestFormField:                    "FormField",
	DestFormFieldName:                "FormFieldName",
	DestFormFieldList:                "FormFieldList",
	DestDataField:                    "DataField",
	DestInfo:                         "Info",
	DestCreationTime:                 "CreationTime",
	DestRevisionTime:                 "RevisionTime",
	DestPrintTime:                    "PrintTime",
	DestAuthor:                       "Author",
	DestKeywords:                     "Keywords",
	DestOperator:                     "Operator",
	DestCompany:                      "Company",
	DestComment:                      "Comment",
	DestTitle:                        "Title",
	DestSubject:                      "Subject",
	DestDocComm:                      "DocComm",
	DestObject:                       "Object",
	DestObjData:                      "ObjData",
	DestObjClass:                     "ObjClass",
	DestResult:                       "Result",
	DestAnnotationDate:               "AnnotationDate",
	DestAnnotationAuthor:             "AnnotationAuthor",
	DestAnnotationReference:          "AnnotationReference",
	DestAnnotationReferenceStart:     "AnnotationReferenceStart",
	DestAnnotationReferenceEnd:       "AnnotationReferenceEnd",
	DestAtnID:                        "AtnID",
	DestFalt:                         "Falt",
	DestDrawingObject:                "DrawingObject",
	DestParagraphNumbering:           "ParagraphNumbering",
	DestParagraphNumberingTextBefore: "ParagraphNumberingTextBefore",
	DestParagraphNumberingTextAfter:  "ParagraphNumberingTextAfter",
	DestIndexEntry:                   "IndexEntry",
	DestTocEntry:                     "TocEntry",
	DestUserProps:                    "UserProps",
	DestPropName:                     "PropName",
	DestStaticVal:                    "StaticVal",
	DestGenerator:                    "Generator",
	DestDocVar:                       "DocVar",
	DestMoMath:                       "MoMath",
	DestMR:                           "MR",
	DestMathElement:                  "MathElement",
	DestMathValue:                    "MathValue",
}

func (d Destination) String() string {
	if n, ok := destinationNames[d]; ok {
		return n
	}
	return "Destination(" + strconv.Itoa(int(d)) + ")"
}

// collectsText reports destinations whose text is gathered into the
// destination text instead of being emitted.
func (d Destination) collectsText() bool {
	switch d {
	case DestFontTable, DestFontEntry, DestLevelText, DestShapePropertyName,
		DestShapePropertyValue, DestBookmarkEnd, DestPict, DestFormFieldName,
		DestFormFieldList, DestDataField, DestAuthor, DestKeywords,
		DestOperator, DestCompany, DestComment, DestObjData, DestObjClass,
		DestAnnotationDate, DestAnnotationAuthor, DestAnnotationReference,
		DestFalt, DestParagraphNumberingTextAfter,
		DestParagraphNumberingTextBefore, DestTitle, DestSubject, DestDocComm,
		DestAtnID, DestAnnotationReferenceStart, DestAnnotationReferenceEnd,
		DestMR, DestMathValue, DestIndexEntry, DestTocEntry, DestPropName,
		DestStaticVal:
		return true
	}
	return false
}
