package importer

import (
	"bytes"
	"strings"

	"github.com/tsawler/rtfimport/sprm"
)

// footnote handles \footnote. The group is parsed later as a footnote, or
// an endnote when \ftnalt follows, substream. Inside a substream the
// keyword is ignored and the note text stays in place.
func (imp *Importer) footnote(st *parserState) {
	if imp.isSubstream() {
		return
	}
	id := sprm.Footnote
	if bytes.HasPrefix(imp.data[imp.tok.Offset():], []byte(`\ftnalt`)) {
		id = sprm.Endnote
	}
	imp.startContent()
	pos := imp.groupStartPos
	if buf := st.buffer; buf != nil {
		buf.add(bufferEntry{kind: bufStartRun})
		imp.runProps()
		buf.add(bufferEntry{kind: bufResolveSubstream, pos: pos, id: id})
		buf.add(bufferEntry{kind: bufEndRun})
	} else {
		imp.sink.StartCharacterGroup()
		imp.runProps()
		imp.resolveSubstream(pos, id, "")
		imp.sink.EndCharacterGroup()
	}
	st.dest = DestSkip
}

// headerFooter handles \header and friends. Headers and footers are sent
// with the properties of the section they belong to.
func (imp *Importer) headerFooter(id sprm.ID) {
	st := imp.top()
	if imp.streamType == id && len(imp.states) == 1 {
		return
	}
	imp.headerFooters = append(imp.headerFooters, headerFooter{pos: imp.groupStartPos, id: id})
	st.dest = DestSkip
}

// annotation handles \annotation. The comment author collected before it
// goes with the substream.
func (imp *Importer) annotation(st *parserState) {
	if imp.isSubstream() {
		return
	}
	imp.startContent()
	pos := imp.groupStartPos
	if buf := st.buffer; buf != nil {
		buf.add(bufferEntry{kind: bufResolveSubstream, pos: pos, id: sprm.Annotation})
	} else {
		imp.resolveSubstream(pos, sprm.Annotation, "")
	}
	st.dest = DestSkip
}

// endAnnotationText handles the texts that describe a comment: its author
// and initials, its date and the references that tie it to a range.
func (imp *Importer) endAnnotationText(st *parserState) {
	if !st.ownsText() {
		return
	}
	text := strings.TrimSpace(st.takeText())
	switch st.dest {
	case DestAtnID:
		imp.initials = text
	case DestAnnotationAuthor:
		imp.author = text
	case DestAnnotationDate:
		date := dttmString(atoi(text))
		if imp.streamType != sprm.Annotation {
			imp.atnDT = date
			return
		}
		if date != "" {
			var attrs sprm.Sprms
			attrs.Put(sprm.AnnotationDate, sprm.String(date))
			imp.emitRaw(attrs, sprm.Sprms{})
		}
	case DestAnnotationReference:
		var attrs sprm.Sprms
		attrs.Put(sprm.CommentID, sprm.Int(atoi(text)))
		imp.emitRaw(attrs, sprm.Sprms{})
	case DestAnnotationReferenceStart, DestAnnotationReferenceEnd:
		id := sprm.CommentRangeStart
		if st.dest == DestAnnotationReferenceEnd {
			id = sprm.CommentRangeEnd
		}
		var attrs, sprms sprm.Sprms
		attrs.Put(sprm.CommentID, sprm.Int(atoi(text)))
		sprms.Put(id, sprm.Int(1))
		imp.startContent()
		imp.emitRaw(attrs, sprms)
	}
}
