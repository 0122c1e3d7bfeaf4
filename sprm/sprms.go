package sprm

import (
	"strings"
)

// Policy decides what Set does when the id is already present.
type Policy int

const (
	// Overwrite replaces the first existing entry in place, or appends.
	Overwrite Policy = iota
	// Append always adds a new entry at the end.
	Append
	// Ignore keeps an existing entry and only appends when absent.
	Ignore
	// ReplaceAtStart removes every existing entry and inserts at the front.
	ReplaceAtStart
)

// Entry is one (id, value) pair of a Sprms list.
type Entry struct {
	ID    ID
	Value *Value
}

type sprmsImpl struct {
	entries []Entry
	refs    int
}

// Sprms is an ordered list of properties with copy-on-write storage.
//
// The zero value is an empty list ready to use. Assignment aliases the
// underlying storage; call Clone to obtain an independent copy.
type Sprms struct {
	p *sprmsImpl
}

// Clone returns a list that shares storage with s until either side writes.
func (s Sprms) Clone() Sprms {
	if s.p == nil {
		return Sprms{}
	}
	s.p.refs++
	return Sprms{p: s.p}
}

// ensureCopyBeforeWrite forks shared storage. Values are copied too, so that
// writes through Find(id, true) never leak into other owners.
func (s *Sprms) ensureCopyBeforeWrite() {
	if s.p == nil {
		s.p = &sprmsImpl{refs: 1}
		return
	}
	if s.p.refs <= 1 {
		return
	}
	s.p.refs--
	clone := &sprmsImpl{entries: make([]Entry, len(s.p.entries)), refs: 1}
	for i, e := range s.p.entries {
		clone.entries[i] = Entry{ID: e.ID, Value: e.Value.Clone()}
	}
	s.p = clone
}

// Len returns the number of entries.
func (s Sprms) Len() int {
	if s.p == nil {
		return 0
	}
	return len(s.p.entries)
}

// Empty reports whether the list has no entries.
func (s Sprms) Empty() bool { return s.Len() == 0 }

// Entries returns the entries in order. The slice must not be modified.
func (s Sprms) Entries() []Entry {
	if s.p == nil {
		return nil
	}
	return s.p.entries
}

// Find returns the first value stored under id, or nil.
func (s Sprms) Find(id ID) *Value {
	if s.p == nil {
		return nil
	}
	for _, e := range s.p.entries {
		if e.ID == id {
			return e.Value
		}
	}
	return nil
}

// FindLast returns the last value stored under id, or nil.
func (s Sprms) FindLast(id ID) *Value {
	if s.p == nil {
		return nil
	}
	for i := len(s.p.entries) - 1; i >= 0; i-- {
		if s.p.entries[i].ID == id {
			return s.p.entries[i].Value
		}
	}
	return nil
}

// FindForWrite returns the first value stored under id after forking shared
// storage, so the value can be modified in place.
func (s *Sprms) FindForWrite(id ID) *Value {
	if s.Find(id) == nil {
		return nil
	}
	s.ensureCopyBeforeWrite()
	return s.Find(id)
}

// FindLastForWrite is like FindForWrite but returns the last match.
func (s *Sprms) FindLastForWrite(id ID) *Value {
	if s.FindLast(id) == nil {
		return nil
	}
	s.ensureCopyBeforeWrite()
	return s.FindLast(id)
}

// Has reports whether id is present.
func (s Sprms) Has(id ID) bool { return s.Find(id) != nil }

// Set stores v under id according to policy.
func (s *Sprms) Set(id ID, v *Value, policy Policy) {
	s.ensureCopyBeforeWrite()
	switch policy {
	case ReplaceAtStart:
		s.eraseAll(id)
		s.p.entries = append([]Entry{{ID: id, Value: v}}, s.p.entries...)
	case Overwrite:
		for i := range s.p.entries {
			if s.p.entries[i].ID == id {
				s.p.entries[i].Value = v
				return
			}
		}
		s.p.entries = append(s.p.entries, Entry{ID: id, Value: v})
	case Ignore:
		if s.Find(id) == nil {
			s.p.entries = append(s.p.entries, Entry{ID: id, Value: v})
		}
	default:
		s.p.entries = append(s.p.entries, Entry{ID: id, Value: v})
	}
}

// Put is Set with the Overwrite policy.
func (s *Sprms) Put(id ID, v *Value) {
	s.Set(id, v, Overwrite)
}

// Erase removes the first entry with id and reports whether one was found.
func (s *Sprms) Erase(id ID) bool {
	if s.Find(id) == nil {
		return false
	}
	s.ensureCopyBeforeWrite()
	for i, e := range s.p.entries {
		if e.ID == id {
			s.p.entries = append(s.p.entries[:i:i], s.p.entries[i+1:]...)
			return true
		}
	}
	return false
}

// EraseLast removes the last entry with id.
func (s *Sprms) EraseLast(id ID) {
	if s.FindLast(id) == nil {
		return
	}
	s.ensureCopyBeforeWrite()
	for i := len(s.p.entries) - 1; i >= 0; i-- {
		if s.p.entries[i].ID == id {
			s.p.entries = append(s.p.entries[:i:i], s.p.entries[i+1:]...)
			return
		}
	}
}

func (s *Sprms) eraseAll(id ID) {
	kept := s.p.entries[:0:0]
	for _, e := range s.p.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.p.entries = kept
}

// Clear removes every entry.
func (s *Sprms) Clear() {
	if s.p == nil {
		return
	}
	if s.p.refs > 1 {
		s.p.refs--
	}
	s.p = nil
}

// Equal reports whether both lists have the same size and every entry of s
// has an equal counterpart in o.
func (s Sprms) Equal(o Sprms) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, e := range s.Entries() {
		ov := o.Find(e.ID)
		if ov == nil || !e.Value.Equal(ov) {
			return false
		}
	}
	return true
}

// String formats the list for debugging output.
func (s Sprms) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range s.Entries() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.ID.String())
		b.WriteByte('=')
		b.WriteString(e.Value.String())
	}
	b.WriteByte(']')
	return b.String()
}
