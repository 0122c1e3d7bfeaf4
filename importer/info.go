package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/tsawler/rtfimport/docprops"
	"github.com/tsawler/rtfimport/sprm"
)

// infoFields maps the \info text destinations to document properties.
// \comment holds the name of the generating program and is not kept.
var infoFields = map[Destination]docprops.Field{
	DestTitle:    docprops.FieldTitle,
	DestSubject:  docprops.FieldSubject,
	DestAuthor:   docprops.FieldAuthor,
	DestOperator: docprops.FieldOperator,
	DestKeywords: docprops.FieldKeywords,
	DestDocComm:  docprops.FieldComment,
	DestCompany:  docprops.FieldCompany,
}

var infoDates = map[Destination]docprops.Field{
	DestCreationTime: docprops.FieldCreated,
	DestRevisionTime: docprops.FieldRevised,
	DestPrintTime:    docprops.FieldPrinted,
}

// infoValue handles the date fields of \creatim and friends and the type
// of a user property.
func (imp *Importer) infoValue(name string, n int) bool {
	st := imp.top()
	switch name {
	case "yr":
		st.year = n
	case "mo":
		st.month = n
	case "dy":
		st.day = n
	case "hr":
		st.hour = n
	case "min":
		st.minute = n
	case "proptype":
		st.propType = n
	default:
		return false
	}
	return true
}

func (imp *Importer) startDate(st *parserState, dest Destination) {
	st.dest = dest
	st.year, st.month, st.day, st.hour, st.minute = 0, 0, 0, 0, 0
}

// endInfoText stores an \info text field.
func (imp *Importer) endInfoText(st *parserState) {
	f, ok := infoFields[st.dest]
	if !ok || !st.ownsText() {
		return
	}
	text := st.takeText()
	if imp.isSubstream() {
		return
	}
	imp.props.SetText(f, strings.TrimSpace(text))
}

// endInfoDate stores a \creatim, \revtim or \printim date.
func (imp *Importer) endInfoDate(st *parserState) {
	f, ok := infoDates[st.dest]
	if !ok || imp.isSubstream() || st.year == 0 {
		return
	}
	imp.props.SetTime(f, time.Date(st.year, time.Month(st.month), st.day, st.hour, st.minute, 0, 0, time.UTC))
}

// dttmString formats a packed revision date: minutes in bits 0-5, hours
// 6-10, day 11-15, month 16-19 and years since 1900 in 20-28.
func dttmString(n int) string {
	if n == 0 {
		return ""
	}
	minute := n & 0x3f
	hour := (n >> 6) & 0x1f
	day := (n >> 11) & 0x1f
	month := (n >> 16) & 0xf
	year := 1900 + (n>>20)&0x1ff
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC).Format(time.RFC3339)
}

// endStaticValue records a user property once its value is known.
func (imp *Importer) endStaticValue(st *parserState) {
	if !st.ownsText() {
		return
	}
	imp.userProps = append(imp.userProps, docprops.UserProperty{
		Name:  st.propName,
		Type:  docprops.PropType(st.propType),
		Value: st.takeText(),
	})
}

// endUserProps stores the collected user properties. When pasting, the
// classification of the pasted content is checked against the target
// first and blocked content keeps none of its properties.
func (imp *Importer) endUserProps() error {
	props := imp.userProps
	imp.userProps = nil
	if imp.isSubstream() || len(props) == 0 {
		return nil
	}
	if imp.opts.Paste && imp.opts.Classification != nil {
		source := make(map[string]string, len(props))
		for _, p := range props {
			source[p.Name] = p.Value
		}
		if err := imp.opts.Classification.CheckPaste(source, imp.props.UserMap()); err != nil {
			return fmt.Errorf("%w: %w", ErrClassificationBlocked, err)
		}
	}
	for _, p := range props {
		if err := imp.props.SetUserProperty(p); err != nil {
			imp.log.Warn("user property not stored", "name", p.Name, "error", err)
		}
	}
	return nil
}

// endDocVar handles the two groups of a \docvar: the first names the
// variable, the second holds its value.
func (imp *Importer) endDocVar(st, parent *parserState) {
	if parent.dest != DestDocVar {
		return
	}
	if parent.docVarName == "" {
		parent.docVarName = st.docVar
		return
	}
	var attrs sprm.Sprms
	attrs.Put(sprm.DocVarName, sprm.String(parent.docVarName))
	attrs.Put(sprm.DocVarValue, sprm.String(st.docVar))
	imp.t.settingsSprms.Set(sprm.DocVar, sprm.Props(attrs, sprm.Sprms{}), sprm.Append)
	parent.docVarName = ""
}
