package model

import "github.com/tsawler/rtfimport/omml"

// Formula is an equation kept as Office Math Markup.
type Formula struct {
	OMML string
}

// Text returns a linear rendering of the formula, or "" when the markup
// cannot be read.
func (f *Formula) Text() string {
	s, err := omml.LinearText(f.OMML)
	if err != nil {
		return ""
	}
	return s
}
