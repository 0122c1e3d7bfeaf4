package omml

import (
	"errors"
	"strings"
	"testing"
)

func TestKeywordMapping(t *testing.T) {
	tests := []struct {
		kw    string
		name  string
		elem  bool
		value bool
	}{
		{"moMath", "oMath", true, false},
		{"mnum", "num", true, false},
		{"mbegChr", "begChr", false, true},
		{"mfoo", "foo", false, false},
		{"b", "", false, false},
	}
	for _, tt := range tests {
		name, ok := ElementForKeyword(tt.kw)
		if ok != tt.elem || (ok && name != tt.name) {
			t.Errorf("ElementForKeyword(%q) = %q, %v", tt.kw, name, ok)
		}
		name, ok = ValueForKeyword(tt.kw)
		if ok != tt.value || (ok && name != tt.name) {
			t.Errorf("ValueForKeyword(%q) = %q, %v", tt.kw, name, ok)
		}
	}
}

func TestFraction(t *testing.T) {
	b := NewBuilder()
	b.Start("oMath")
	b.Start("f")
	b.Start("fPr")
	b.Val("type", "bar")
	b.End()
	b.Start("num")
	b.Start("r")
	b.Text("a")
	b.Text("b")
	b.End()
	b.End()
	b.Start("den")
	b.Text("2")
	b.End()
	b.End()
	b.End()

	out, err := b.Finish()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`<m:oMath xmlns:m="` + Namespace + `">`,
		`<m:type m:val="bar"/>`,
		`<m:num><m:r><m:t xml:space="preserve">ab</m:t></m:r></m:num>`,
		`<m:den><m:r><m:t xml:space="preserve">2</m:t></m:r></m:den>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
	if b.Depth() != 0 {
		t.Error("builder not reset")
	}
}

func TestUnbalanced(t *testing.T) {
	b := NewBuilder()
	b.Start("oMath")
	if _, err := b.Finish(); !errors.Is(err, ErrUnbalanced) {
		t.Errorf("error = %v, want ErrUnbalanced", err)
	}
	if out, err := b.Finish(); err != nil || out != "" {
		t.Errorf("empty Finish = %q, %v", out, err)
	}
}
