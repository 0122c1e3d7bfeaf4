package importer

import (
	"github.com/tsawler/rtfimport/sprm"
)

type bufferKind int

const (
	bufStartRun bufferKind = iota
	bufEndRun
	bufText
	bufUText
	bufPar
	bufProps
	bufPropsChar
	bufRawProps
	bufSetStyle
	bufStartShape
	bufResolveShape
	bufEndShape
	bufCellEnd
	bufNestRow
	bufResolveSubstream
)

var bufferKindNames = [...]string{
	bufStartRun:         "StartRun",
	bufEndRun:           "EndRun",
	bufText:             "Text",
	bufUText:            "UText",
	bufPar:              "Par",
	bufProps:            "Props",
	bufPropsChar:        "PropsChar",
	bufRawProps:         "RawProps",
	bufSetStyle:         "SetStyle",
	bufStartShape:       "StartShape",
	bufResolveShape:     "ResolveShape",
	bufEndShape:         "EndShape",
	bufCellEnd:          "CellEnd",
	bufNestRow:          "NestRow",
	bufResolveSubstream: "ResolveSubstream",
}

func (k bufferKind) String() string {
	if int(k) < len(bufferKindNames) {
		return bufferKindNames[k]
	}
	return "bufferKind?"
}

// bufferEntry is one deferred operation of a table row.
type bufferEntry struct {
	kind bufferKind

	b    byte
	text string

	// Props, PropsChar and RawProps.
	attrs, sprms sprm.Sprms
	styleType    int

	// SetStyle.
	style int

	shape *Shape
	row   *rowBuffer

	// ResolveSubstream.
	pos         int64
	id          sprm.ID
	ignoreFirst string
}

// buffer holds the content of a table row until the row properties are
// known. Entries are consumed from the front during replay.
type buffer struct {
	entries []bufferEntry
}

func (b *buffer) add(e bufferEntry) {
	b.entries = append(b.entries, e)
}

func (b *buffer) empty() bool { return len(b.entries) == 0 }

func (b *buffer) clear() { b.entries = nil }

func (b *buffer) pop() bufferEntry {
	e := b.entries[0]
	b.entries = b.entries[1:]
	return e
}

// cellQueue holds the properties of the cells defined by \cellx, in order.
type cellQueue struct {
	sprms []sprm.Sprms
	attrs []sprm.Sprms
}

func (q *cellQueue) push(attrs, sprms sprm.Sprms) {
	q.attrs = append(q.attrs, attrs.Clone())
	q.sprms = append(q.sprms, sprms.Clone())
}

// front returns the properties of the next cell. An exhausted queue yields
// empty lists.
func (q *cellQueue) front() (attrs, sprms *sprm.Sprms) {
	if len(q.sprms) == 0 {
		return &sprm.Sprms{}, &sprm.Sprms{}
	}
	return &q.attrs[0], &q.sprms[0]
}

func (q *cellQueue) popFront() {
	if len(q.sprms) == 0 {
		return
	}
	q.sprms = q.sprms[1:]
	q.attrs = q.attrs[1:]
}

func (q *cellQueue) len() int { return len(q.sprms) }

func (q *cellQueue) clone() cellQueue {
	var c cellQueue
	for i := range q.sprms {
		c.push(q.attrs[i], q.sprms[i])
	}
	return c
}

func (q *cellQueue) clear() {
	q.sprms = nil
	q.attrs = nil
}

// rowBuffer is a complete nested table row, replayed when the enclosing
// cell is replayed.
type rowBuffer struct {
	buf   *buffer
	cells cellQueue
	count int

	para, frame, row *Properties
}

// bufferProperties defers paragraph or character properties. The style index
// is recorded first so replay resolves the properties against the same style.
func (imp *Importer) bufferProperties(buf *buffer, attrs, sprms sprm.Sprms, styleType int) {
	buf.add(bufferEntry{kind: bufSetStyle, style: imp.top().styleIndex})
	kind := bufProps
	if styleType == sprm.StyleTypeCharacter {
		kind = bufPropsChar
	}
	buf.add(bufferEntry{kind: kind, attrs: attrs.Clone(), sprms: sprms.Clone(), styleType: styleType})
}

// emitRaw sends properties that need no style resolution, either to the sink
// or into the current buffer.
func (imp *Importer) emitRaw(attrs, sprms sprm.Sprms) {
	if buf := imp.top().buffer; buf != nil {
		buf.add(bufferEntry{kind: bufRawProps, attrs: attrs.Clone(), sprms: sprms.Clone()})
		return
	}
	imp.sink.Props(NewProperties(attrs, sprms))
}

// emitRun sends properties as a run of their own, such as a picture or a
// formula.
func (imp *Importer) emitRun(attrs, sprms sprm.Sprms) {
	if buf := imp.top().buffer; buf != nil {
		buf.add(bufferEntry{kind: bufStartRun})
		buf.add(bufferEntry{kind: bufRawProps, attrs: attrs.Clone(), sprms: sprms.Clone()})
		buf.add(bufferEntry{kind: bufEndRun})
		return
	}
	imp.sink.StartCharacterGroup()
	imp.sink.Props(NewProperties(attrs, sprms))
	imp.sink.EndCharacterGroup()
}

// replayRowBuffer replays one cell per queued cell definition.
func (imp *Importer) replayRowBuffer(buf *buffer, cells *cellQueue, count int) {
	for i := 0; i < count; i++ {
		attrs, sprms := cells.front()
		imp.replayBuffer(buf, attrs, sprms)
		cells.popFront()
	}
	for _, e := range buf.entries {
		if e.kind == bufCellEnd {
			imp.warn(ErrOrphanCell)
		}
	}
}

// replayBuffer sends buffered entries to the sink until the end of the
// current cell or of the buffer.
func (imp *Importer) replayBuffer(buf *buffer, cellAttrs, cellSprms *sprm.Sprms) {
	for !buf.empty() {
		e := buf.pop()
		switch e.kind {
		case bufProps, bufPropsChar:
			imp.sink.Props(imp.getProperties(e.attrs, e.sprms, e.styleType, e.kind == bufPropsChar))
		case bufRawProps:
			imp.sink.Props(NewProperties(e.attrs, e.sprms))
		case bufNestRow:
			r := e.row
			imp.replayRowBuffer(r.buf, &r.cells, r.count)
			imp.sendProperties(r.para, r.frame, r.row)
		case bufCellEnd:
			if cellSprms != nil && cellAttrs != nil {
				cellSprms.Put(sprm.TblCell, sprm.Int(1))
				imp.sink.Props(NewProperties(*cellAttrs, *cellSprms))
			}
			imp.tableBreak()
			return
		case bufStartRun:
			imp.sink.StartCharacterGroup()
		case bufEndRun:
			imp.sink.EndCharacterGroup()
		case bufText:
			imp.sink.Text([]byte{e.b})
		case bufUText:
			imp.sink.UText(e.text)
		case bufPar:
			imp.parBreak()
		case bufStartShape:
			imp.sink.StartShape(e.shape)
		case bufResolveShape:
			imp.resolveShape(e.shape)
		case bufEndShape:
			imp.sink.EndShape()
		case bufResolveSubstream:
			imp.resolveSubstream(e.pos, e.id, e.ignoreFirst)
		case bufSetStyle:
			imp.top().styleIndex = e.style
		default:
			imp.log.Warn("unexpected buffer entry", "kind", e.kind)
		}
	}
}
