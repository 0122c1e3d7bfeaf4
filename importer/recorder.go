package importer

import (
	"fmt"
	"strings"

	"github.com/tsawler/rtfimport/sprm"
)

// EventKind is the Sink method an Event was recorded from.
type EventKind int

const (
	EventStartSection EventKind = iota
	EventEndSection
	EventStartParagraph
	EventEndParagraph
	EventStartCharacter
	EventEndCharacter
	EventText
	EventUText
	EventProps
	EventTable
	EventStartShape
	EventEndShape
	EventSubstream
	EventLastSection
)

var eventKindNames = [...]string{
	EventStartSection:   "StartSection",
	EventEndSection:     "EndSection",
	EventStartParagraph: "StartParagraph",
	EventEndParagraph:   "EndParagraph",
	EventStartCharacter: "StartCharacter",
	EventEndCharacter:   "EndCharacter",
	EventText:           "Text",
	EventUText:          "UText",
	EventProps:          "Props",
	EventTable:          "Table",
	EventStartShape:     "StartShape",
	EventEndShape:       "EndShape",
	EventSubstream:      "Substream",
	EventLastSection:    "LastSection",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one recorded Sink call.
type Event struct {
	Kind  EventKind
	Text  string
	Props *Properties
	ID    sprm.ID
	Table *Table
	Shape *Shape
	// Sub holds the events of a resolved substream.
	Sub []Event
	// Err is the error returned while resolving a substream.
	Err error
}

// Recorder is a Sink that keeps every call as an Event. Substreams are
// resolved immediately into a nested Recorder.
type Recorder struct {
	Events []Event
}

var _ Sink = (*Recorder)(nil)

func (r *Recorder) add(e Event) { r.Events = append(r.Events, e) }

func (r *Recorder) StartSectionGroup()   { r.add(Event{Kind: EventStartSection}) }
func (r *Recorder) EndSectionGroup()     { r.add(Event{Kind: EventEndSection}) }
func (r *Recorder) StartParagraphGroup() { r.add(Event{Kind: EventStartParagraph}) }
func (r *Recorder) EndParagraphGroup()   { r.add(Event{Kind: EventEndParagraph}) }
func (r *Recorder) StartCharacterGroup() { r.add(Event{Kind: EventStartCharacter}) }
func (r *Recorder) EndCharacterGroup()   { r.add(Event{Kind: EventEndCharacter}) }
func (r *Recorder) Text(data []byte)     { r.add(Event{Kind: EventText, Text: string(data)}) }
func (r *Recorder) UText(s string)       { r.add(Event{Kind: EventUText, Text: s}) }
func (r *Recorder) Props(p *Properties)  { r.add(Event{Kind: EventProps, Props: p}) }
func (r *Recorder) EndShape()            { r.add(Event{Kind: EventEndShape}) }
func (r *Recorder) MarkLastSectionGroup() {
	r.add(Event{Kind: EventLastSection})
}

func (r *Recorder) Table(id sprm.ID, t *Table) {
	r.add(Event{Kind: EventTable, ID: id, Table: t})
}

func (r *Recorder) StartShape(s *Shape) {
	c := s.clone()
	r.add(Event{Kind: EventStartShape, Shape: &c})
}

func (r *Recorder) Substream(id sprm.ID, res Resolver) {
	sub := &Recorder{}
	err := res.Resolve(sub)
	r.add(Event{Kind: EventSubstream, ID: id, Sub: sub.Events, Err: err})
}

// PlainText returns the text of the main stream. Paragraph ends become
// newlines, legacy control bytes are dropped.
func (r *Recorder) PlainText() string {
	var b strings.Builder
	for _, e := range r.Events {
		if e.Kind == EventUText {
			b.WriteString(strings.ReplaceAll(e.Text, "\r", "\n"))
		}
	}
	return b.String()
}

// Kinds returns the kinds of the main stream events, skipping Props and
// Table events when compact is set.
func (r *Recorder) Kinds(compact bool) []EventKind {
	var out []EventKind
	for _, e := range r.Events {
		if compact && (e.Kind == EventProps || e.Kind == EventTable) {
			continue
		}
		out = append(out, e.Kind)
	}
	return out
}

// PropsWith returns the Props events whose sprms carry id.
func (r *Recorder) PropsWith(id sprm.ID) []*Properties {
	var out []*Properties
	for _, e := range r.Events {
		if e.Kind == EventProps && e.Props.Sprms.Has(id) {
			out = append(out, e.Props)
		}
	}
	return out
}

// TableByID returns the last recorded table with id.
func (r *Recorder) TableByID(id sprm.ID) *Table {
	var t *Table
	for _, e := range r.Events {
		if e.Kind == EventTable && e.ID == id {
			t = e.Table
		}
	}
	return t
}

// Dump formats the event stream one event per line, indenting substreams.
func (r *Recorder) Dump() string {
	var b strings.Builder
	dumpEvents(&b, r.Events, 0)
	return b.String()
}

func dumpEvents(b *strings.Builder, events []Event, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, e := range events {
		b.WriteString(indent)
		b.WriteString(e.Kind.String())
		switch e.Kind {
		case EventText, EventUText:
			fmt.Fprintf(b, " %q", e.Text)
		case EventProps:
			b.WriteString(" " + e.Props.String())
		case EventTable:
			fmt.Fprintf(b, " %v (%d entries)", e.ID, len(e.Table.Entries))
		case EventStartShape:
			fmt.Fprintf(b, " %v", e.Shape.Kind)
		case EventSubstream:
			fmt.Fprintf(b, " %v", e.ID)
			if e.Err != nil {
				fmt.Fprintf(b, " error: %v", e.Err)
			}
		}
		b.WriteByte('\n')
		if e.Kind == EventSubstream {
			dumpEvents(b, e.Sub, depth+1)
		}
	}
}
