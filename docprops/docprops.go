// Package docprops holds the document information collected from the \info
// and \userprops groups, and decides whether pasted content may carry its
// classification into the target document.
package docprops

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"
)

// Field names a document information entry.
type Field int

const (
	FieldTitle Field = iota
	FieldSubject
	FieldAuthor
	FieldOperator
	FieldKeywords
	FieldComment
	FieldCompany
	FieldManager
	FieldCategory
	FieldCreated
	FieldRevised
	FieldPrinted
)

var fieldNames = [...]string{
	"title", "subject", "author", "operator", "keywords", "comment",
	"company", "manager", "category", "created", "revised", "printed",
}

func (f Field) String() string {
	if f >= 0 && int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "field(" + strconv.Itoa(int(f)) + ")"
}

// PropType is the \proptype of a user property.
type PropType int

const (
	PropInteger PropType = 3
	PropReal    PropType = 5
	PropBool    PropType = 11
	PropString  PropType = 30
	PropDate    PropType = 64
)

// UserProperty is a custom document property.
type UserProperty struct {
	Name  string
	Type  PropType
	Value string
}

// Typed returns the value converted according to Type. Values that fail to
// convert are returned as strings.
func (p UserProperty) Typed() any {
	switch p.Type {
	case PropInteger:
		if v, err := strconv.Atoi(p.Value); err == nil {
			return v
		}
	case PropReal:
		if v, err := strconv.ParseFloat(p.Value, 64); err == nil {
			return v
		}
	case PropBool:
		return p.Value == "1" || p.Value == "true"
	}
	return p.Value
}

// Store receives document properties.
type Store interface {
	SetText(f Field, value string)
	SetTime(f Field, t time.Time)
	// SetUserProperty adds a user-defined property or replaces the one
	// with the same name.
	SetUserProperty(prop UserProperty) error
	// UserMap returns the user-defined properties keyed by name.
	UserMap() map[string]string
}

// Properties is an in-memory Store.
type Properties struct {
	mu    sync.Mutex
	text  map[Field]string
	times map[Field]time.Time
	user  []UserProperty
}

// New returns an empty property set.
func New() *Properties {
	return &Properties{
		text:  make(map[Field]string),
		times: make(map[Field]time.Time),
	}
}

func (p *Properties) SetText(f Field, value string) {
	p.mu.Lock()
	p.text[f] = value
	p.mu.Unlock()
}

func (p *Properties) SetTime(f Field, t time.Time) {
	p.mu.Lock()
	p.times[f] = t
	p.mu.Unlock()
}

func (p *Properties) SetUserProperty(prop UserProperty) error {
	if prop.Name == "" {
		return fmt.Errorf("docprops: user property without name")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.user {
		if p.user[i].Name == prop.Name {
			p.user[i] = prop
			return nil
		}
	}
	p.user = append(p.user, prop)
	return nil
}

// Text returns a text field.
func (p *Properties) Text(f Field) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.text[f]
}

// Time returns a time field.
func (p *Properties) Time(f Field) (time.Time, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, ok := p.times[f]
	return t, ok
}

// User returns the user-defined properties sorted by name.
func (p *Properties) User() []UserProperty {
	p.mu.Lock()
	out := append([]UserProperty(nil), p.user...)
	p.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// UserMap returns the user-defined properties keyed by name.
func (p *Properties) UserMap() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	m := make(map[string]string, len(p.user))
	for _, prop := range p.user {
		m[prop.Name] = prop.Value
	}
	return m
}
