package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/rtfimport/field"
	"github.com/tsawler/rtfimport/internal/filters"
	"github.com/tsawler/rtfimport/sprm"
)

// formFieldValue handles the \formfield values.
func (imp *Importer) formFieldValue(name string, n int) bool {
	switch name {
	case "fftype":
		imp.formfieldSprms.Put(sprm.FFType, sprm.Int(n))
	case "ffdefres":
		imp.formfieldSprms.Put(sprm.FFDefault, sprm.Int(n))
	case "ffres":
		imp.formfieldSprms.Put(sprm.FFResult, sprm.Int(n))
	case "ffhps":
		imp.formfieldSprms.Put(sprm.FFCheckBoxSize, sprm.Int(n))
	case "ffsize":
		if n == 0 {
			imp.formfieldSprms.Erase(sprm.FFCheckBoxSize)
		}
	case "ffmaxlen":
		imp.formfieldSprms.Put(sprm.FFMaxLength, sprm.Int(n))
	default:
		return false
	}
	return true
}

var formFieldTypes = map[string]int{
	field.FormText:     sprm.FFTypeText,
	field.FormCheckBox: sprm.FFTypeCheckBox,
	field.FormDropDown: sprm.FFTypeDropDown,
}

// endFieldInstruction closes the instruction of a field: pending form field
// data is sent and the separator written.
func (imp *Importer) endFieldInstruction(st *parserState) {
	if st.instr != nil {
		instr := st.instr.String()
		f, err := field.Parse(instr)
		switch {
		case err != nil:
			imp.log.Debug("unparsed field instruction", "instruction", instr, "error", err)
		case f.IsFormField():
			if !imp.formfieldSprms.Has(sprm.FFType) {
				imp.formfieldSprms.Put(sprm.FFType, sprm.Int(formFieldTypes[f.Name]))
			}
		case f.Target() != "":
			imp.log.Debug("hyperlink field", "target", f.Target())
		}
	}

	if !imp.formfieldAttrs.Empty() || !imp.formfieldSprms.Empty() {
		var sprms sprm.Sprms
		sprms.Put(sprm.FFData, sprm.Props(imp.formfieldAttrs, imp.formfieldSprms))
		imp.emitRaw(sprm.Sprms{}, sprms)
		imp.formfieldAttrs.Clear()
		imp.formfieldSprms.Clear()
	}
	if st.fieldLocked {
		imp.singleChar(FieldLockMark, false)
	}
	imp.singleChar(FieldSeparator, true)
}

// endFormFieldText stores the text of \ffname, \ffdeftext and the other
// form field strings.
func (imp *Importer) endFormFieldText(st *parserState) {
	if !st.ownsText() {
		return
	}
	text := st.takeText()
	if st.dest == DestFormFieldList {
		imp.formfieldSprms.Set(sprm.FFListEntry, sprm.String(text), sprm.Append)
		return
	}
	imp.formfieldSprms.Put(st.ffTarget, sprm.String(text))
}

// endDataField decodes the hex dump of a \datafield: a header, the
// length-prefixed field name and the length-prefixed default text.
func (imp *Importer) endDataField(st *parserState) error {
	if !st.ownsText() || !imp.formField {
		return nil
	}
	raw, err := filters.HexDecode([]byte(st.takeText()))
	if err != nil {
		return fmt.Errorf("%w: datafield: %v", ErrHexInvalid, err)
	}
	imp.formField = false

	if len(raw) > 8 {
		raw = raw[8:]
	}
	name, raw := lengthPrefixed(raw)
	if len(raw) > 0 {
		// The name is NUL terminated.
		raw = raw[1:]
	}
	def, _ := lengthPrefixed(raw)

	imp.formfieldSprms.Put(sprm.FFName, sprm.String(decode(name, st.encoding)))
	if len(def) > 0 {
		imp.formfieldSprms.Put(sprm.FFDefault, sprm.String(decode(def, st.encoding)))
	}
	return nil
}

// lengthPrefixed splits a string with a one byte length from b.
func lengthPrefixed(b []byte) (s, rest []byte) {
	if len(b) == 0 {
		return nil, nil
	}
	n := int(b[0])
	b = b[1:]
	if n > len(b) {
		n = len(b)
	}
	return b[:n], b[n:]
}

// endBookmarkStart marks the start of the bookmark named by the group text.
func (imp *Importer) endBookmarkStart(st *parserState) {
	if !st.ownsText() {
		return
	}
	name := st.takeText()
	index := len(imp.t.bookmarks)
	imp.t.bookmarks[name] = index
	imp.emitBookmark(sprm.BookmarkStart, name, index)
}

// endBookmarkEnd marks the end of a bookmark started earlier.
func (imp *Importer) endBookmarkEnd(st *parserState) {
	if !st.ownsText() {
		return
	}
	name := st.takeText()
	index, ok := imp.t.bookmarks[name]
	if !ok {
		imp.log.Debug("end of unknown bookmark", "name", name)
		return
	}
	imp.emitBookmark(sprm.BookmarkEnd, "", index)
}

func (imp *Importer) emitBookmark(id sprm.ID, name string, index int) {
	var attrs, sprms sprm.Sprms
	attrs.Put(sprm.BookmarkIndex, sprm.Int(index))
	if name != "" {
		attrs.Put(sprm.BookmarkName, sprm.String(name))
	}
	sprms.Put(id, sprm.Int(1))
	imp.emitRaw(attrs, sprms)
}

// endIndexEntry turns \xe and \tc groups into XE and TC fields.
func (imp *Importer) endIndexEntry(st *parserState) {
	code := "XE"
	if st.dest == DestTocEntry {
		code = "TC"
	}
	text := strings.ReplaceAll(st.takeText(), `"`, `\"`)
	imp.fakeField(code+` "`+text+`"`, "")
}

// atoi parses the leading integer of s, ignoring surrounding spaces.
// Invalid input yields 0.
func atoi(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && s[end] == '-') {
		end++
	}
	n, _ := strconv.Atoi(s[:end])
	return n
}
