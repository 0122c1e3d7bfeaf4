package sprm

import (
	"bytes"
	"fmt"
	"strconv"
)

// Kind is the payload kind of a Value.
type Kind int

const (
	KindInt Kind = iota
	KindString
	KindBytes
	KindHandle
	KindProps
)

// Value is a property value: a scalar or a nested (attributes, sprms) pair.
//
// Values are shared between property lists. A Value reached through a
// property list that has been forked for writing is itself a fresh copy, so
// mutating the nested lists of such a value never affects other owners.
type Value struct {
	kind  Kind
	i     int
	s     string
	b     []byte
	h     any
	attrs Sprms
	sprms Sprms
}

// Int returns an integer value.
func Int(n int) *Value {
	return &Value{kind: KindInt, i: n}
}

// Bool returns 1 for true and 0 for false as an integer value.
func Bool(b bool) *Value {
	if b {
		return Int(1)
	}
	return Int(0)
}

// String returns a string value.
func String(s string) *Value {
	return &Value{kind: KindString, s: s}
}

// Bytes returns a value holding binary data.
func Bytes(b []byte) *Value {
	return &Value{kind: KindBytes, b: b}
}

// Handle returns a value holding an opaque object such as a decoded picture
// or an embedded object.
func Handle(h any) *Value {
	return &Value{kind: KindHandle, h: h}
}

// Props returns a value holding nested attributes and sprms. Both lists are
// shared copy-on-write with the arguments.
func Props(attrs, sprms Sprms) *Value {
	return &Value{kind: KindProps, attrs: attrs.Clone(), sprms: sprms.Clone()}
}

// Kind returns the payload kind.
func (v *Value) Kind() Kind { return v.kind }

// Int returns the integer payload. String values that hold a number are
// converted, everything else yields 0.
func (v *Value) Int() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindInt:
		return v.i
	case KindString:
		n, _ := strconv.Atoi(v.s)
		return n
	}
	return 0
}

// Str returns the string payload, or "" for non-string values.
func (v *Value) Str() string {
	if v == nil || v.kind != KindString {
		return ""
	}
	return v.s
}

// Data returns the binary payload.
func (v *Value) Data() []byte {
	if v == nil {
		return nil
	}
	return v.b
}

// Handle returns the opaque payload.
func (v *Value) Handle() any {
	if v == nil {
		return nil
	}
	return v.h
}

// Attributes returns the nested attribute list for in-place modification.
func (v *Value) Attributes() *Sprms {
	return &v.attrs
}

// Sprms returns the nested sprm list for in-place modification.
func (v *Value) Sprms() *Sprms {
	return &v.sprms
}

// HasChildren reports whether the value carries nested properties.
func (v *Value) HasChildren() bool {
	return v != nil && (v.attrs.Len() > 0 || v.sprms.Len() > 0)
}

// Clone returns a shallow copy. Nested lists are shared copy-on-write.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	c := *v
	c.attrs = v.attrs.Clone()
	c.sprms = v.sprms.Clone()
	return &c
}

// Equal reports whether two values carry the same payload and the same
// nested properties.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.i != o.i || v.s != o.s {
		return false
	}
	if !bytes.Equal(v.b, o.b) {
		return false
	}
	if v.h != nil || o.h != nil {
		if !handleEqual(v.h, o.h) {
			return false
		}
	}
	return v.attrs.Equal(o.attrs) && v.sprms.Equal(o.sprms)
}

func handleEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// String formats the value for debugging output.
func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.i)
	case KindString:
		return strconv.Quote(v.s)
	case KindBytes:
		return fmt.Sprintf("bytes[%d]", len(v.b))
	case KindHandle:
		return fmt.Sprintf("handle(%T)", v.h)
	}
	return fmt.Sprintf("{attrs %s sprms %s}", v.attrs, v.sprms)
}
