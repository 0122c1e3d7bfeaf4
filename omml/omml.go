// Package omml builds Office Math Markup from the \m* destinations of an
// RTF math group.
package omml

import (
	"errors"

	"github.com/beevik/etree"
)

// Namespace is the OMML namespace bound to the "m" prefix.
const Namespace = "http://schemas.openxmlformats.org/officeDocument/2006/math"

// elements lists the OMML element names that have an RTF destination
// keyword of the form \m<name>.
var elements = map[string]bool{
	"oMath": true, "oMathPara": true, "r": true, "t": true, "f": true,
	"num": true, "den": true, "e": true, "sSup": true, "sSub": true,
	"sSubSup": true, "sPre": true, "sup": true, "sub": true, "rad": true,
	"deg": true, "d": true, "nary": true, "func": true, "fName": true,
	"lim": true, "limLow": true, "limUpp": true, "acc": true, "bar": true,
	"box": true, "borderBox": true, "eqArr": true, "groupChr": true,
	"m": true, "mr": true, "phant": true, "rPr": true, "ctrlPr": true,
	"fPr": true, "naryPr": true, "dPr": true, "radPr": true, "accPr": true,
	"sSupPr": true, "sSubPr": true, "sSubSupPr": true, "sPrePr": true,
	"funcPr": true, "limLowPr": true, "limUppPr": true, "barPr": true,
	"boxPr": true, "borderBoxPr": true, "eqArrPr": true, "groupChrPr": true,
	"mPr": true, "phantPr": true, "oMathParaPr": true, "mcs": true,
	"mc": true, "mcPr": true,
}

// valueElements are properties written as <m:name m:val="..."/>.
var valueElements = map[string]bool{
	"chr": true, "begChr": true, "endChr": true, "sepChr": true, "pos": true,
	"vertJc": true, "type": true, "degHide": true, "subHide": true,
	"supHide": true, "limLoc": true, "grow": true, "scr": true, "sty": true,
	"lit": true, "nor": true, "brk": true, "aln": true, "jc": true,
	"count": true, "mcJc": true, "opEmu": true, "noBreak": true,
	"diff": true, "strikeH": true, "strikeV": true, "show": true,
	"zeroWid": true, "zeroAsc": true, "zeroDesc": true, "transp": true,
	"plcHide": true, "baseJc": true, "maxDist": true, "objDist": true,
	"rSp": true, "rSpRule": true, "cGp": true, "cGpRule": true, "cSp": true,
}

// ElementForKeyword maps an RTF keyword such as "mnum" to its OMML element
// name.
func ElementForKeyword(kw string) (string, bool) {
	if len(kw) < 2 || kw[0] != 'm' {
		return "", false
	}
	name := kw[1:]
	return name, elements[name]
}

// ValueForKeyword maps an RTF keyword such as "mbegChr" to its OMML value
// element name.
func ValueForKeyword(kw string) (string, bool) {
	if len(kw) < 2 || kw[0] != 'm' {
		return "", false
	}
	name := kw[1:]
	return name, valueElements[name]
}

// ErrUnbalanced is returned by Finish when Start and End calls do not pair.
var ErrUnbalanced = errors.New("omml: unbalanced elements")

// Builder accumulates one oMath element.
type Builder struct {
	doc   *etree.Document
	stack []*etree.Element
}

// NewBuilder returns a builder with an empty document.
func NewBuilder() *Builder {
	b := &Builder{}
	b.Reset()
	return b
}

// Reset discards the current tree.
func (b *Builder) Reset() {
	b.doc = etree.NewDocument()
	b.stack = b.stack[:0]
}

// Depth returns the number of open elements.
func (b *Builder) Depth() int { return len(b.stack) }

func (b *Builder) top() *etree.Element {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

// Start opens an element.
func (b *Builder) Start(name string) {
	var el *etree.Element
	if parent := b.top(); parent != nil {
		el = parent.CreateElement("m:" + name)
	} else {
		el = b.doc.CreateElement("m:" + name)
		el.CreateAttr("xmlns:m", Namespace)
	}
	b.stack = append(b.stack, el)
}

// End closes the innermost element.
func (b *Builder) End() {
	if len(b.stack) > 0 {
		b.stack = b.stack[:len(b.stack)-1]
	}
}

// Text appends text to the current run. Outside a run a run is created.
func (b *Builder) Text(s string) {
	parent := b.top()
	if parent == nil || s == "" {
		return
	}
	if parent.Tag != "r" {
		parent = parent.CreateElement("m:r")
	}
	t := parent.SelectElement("m:t")
	if t == nil {
		t = parent.CreateElement("m:t")
		t.CreateAttr("xml:space", "preserve")
	}
	t.SetText(t.Text() + s)
}

// Val adds <m:name m:val="value"/> to the current element.
func (b *Builder) Val(name, value string) {
	parent := b.top()
	if parent == nil {
		return
	}
	parent.CreateElement("m:"+name).CreateAttr("m:val", value)
}

// Finish serializes the tree and resets the builder.
func (b *Builder) Finish() (string, error) {
	defer b.Reset()
	if len(b.stack) != 0 {
		return "", ErrUnbalanced
	}
	if b.doc.Root() == nil {
		return "", nil
	}
	return b.doc.WriteToString()
}
