// Package field parses field instructions such as
//
//	HYPERLINK "https://example.com" \o "tooltip"
//	FORMCHECKBOX
//	DATE \@ "d MMMM yyyy" \* MERGEFORMAT
//
// into a name, positional arguments and switches.
package field

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Well-known field names.
const (
	Hyperlink    = "HYPERLINK"
	FormText     = "FORMTEXT"
	FormCheckBox = "FORMCHECKBOX"
	FormDropDown = "FORMDROPDOWN"
	PageRef      = "PAGEREF"
	Ref          = "REF"
	Page         = "PAGE"
	TOC          = "TOC"
	IncludePic   = "INCLUDEPICTURE"
	Eq           = "EQ"
)

// ErrEmpty is returned for an instruction with no field name.
var ErrEmpty = errors.New("field: empty instruction")

// Switch is a backslash option with an optional argument.
type Switch struct {
	Name     string
	Value    string
	HasValue bool
}

// Field is a parsed instruction.
type Field struct {
	Name     string
	Args     []string
	Switches []Switch
}

// Arg returns the i-th positional argument or "".
func (f *Field) Arg(i int) string {
	if i < 0 || i >= len(f.Args) {
		return ""
	}
	return f.Args[i]
}

// Switch returns the value of the first switch with the given name, which
// is given without the backslash.
func (f *Field) Switch(name string) (string, bool) {
	for _, s := range f.Switches {
		if s.Name == name {
			return s.Value, true
		}
	}
	return "", false
}

// IsFormField reports whether the field is a legacy form field.
func (f *Field) IsFormField() bool {
	switch f.Name {
	case FormText, FormCheckBox, FormDropDown:
		return true
	}
	return false
}

// Target returns the link target of a HYPERLINK field: the URL, with the
// \l location appended as a fragment.
func (f *Field) Target() string {
	if f.Name != Hyperlink {
		return ""
	}
	target := f.Arg(0)
	if loc, ok := f.Switch("l"); ok && loc != "" {
		target += "#" + loc
	}
	return target
}

var instructionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"?`},
	{Name: "Switch", Pattern: `\\[*@#!]|\\[A-Za-z]+`},
	{Name: "Escape", Pattern: `\\.`},
	{Name: "Word", Pattern: `[^ \t\r\n"\\]+`},
})

type instruction struct {
	Name  string  `@Word`
	Items []*item `@@*`
}

type item struct {
	Switch *switchItem `  @@`
	Arg    *string     `| @(String | Word | Escape)`
}

type switchItem struct {
	Name  string  `@Switch`
	Value *string `@(String | Word)?`
}

var parser = participle.MustBuild[instruction](
	participle.Lexer(instructionLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a field instruction.
func Parse(text string) (*Field, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmpty
	}
	ins, err := parser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("parsing field instruction: %w", err)
	}

	f := &Field{Name: strings.ToUpper(ins.Name)}
	for _, it := range ins.Items {
		switch {
		case it.Switch != nil:
			s := Switch{Name: strings.TrimPrefix(it.Switch.Name, `\`)}
			if it.Switch.Value != nil {
				s.Value = unquote(*it.Switch.Value)
				s.HasValue = true
			}
			f.Switches = append(f.Switches, s)
		case it.Arg != nil:
			f.Args = append(f.Args, unquote(*it.Arg))
		}
	}
	return f, nil
}

// unquote strips surrounding quotes and resolves backslash escapes.
func unquote(s string) string {
	if strings.HasPrefix(s, `"`) {
		s = strings.TrimPrefix(s, `"`)
		s = strings.TrimSuffix(s, `"`)
	}
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
