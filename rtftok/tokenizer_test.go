package rtftok

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func tokenize(t *testing.T, input string) ([]Token, error) {
	t.Helper()
	tok := New([]byte(input))
	var out []Token
	for {
		tk, err := tok.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, tk)
	}
}

func joined(toks []Token) string {
	parts := make([]string, len(toks))
	for i, tk := range toks {
		parts[i] = tk.String()
	}
	return strings.Join(parts, " ")
}

func TestTokenizer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"group", `{\rtf1 Hello}`, `{ \rtf1 "Hello" }`},
		{"negative parameter", `{\li-720 x}`, `{ \li-720 "x" }`},
		{"hex", `{\'41\'e9}`, `{ \'41 \'e9 }`},
		{"control symbols", `{\~\-\{}`, `{ \~ \- \{ }`},
		{"newline is par", "{a\\\nb}", `{ "a" \par "b" }`},
		{"crlf ignored", "{a\r\nb}", `{ "ab" }`},
		{"delimiter space consumed", `{\b  x}`, `{ \b " x" }`},
		{"unicode", `{\u-3913 ?}`, `{ \u-3913 "?" }`},
		{"star", `{\*\generator x;}`, `{ \* \generator "x;" }`},
		{"bin", "{\\bin3 {}\\x}", `{ bin[3] "x" }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := tokenize(t, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := joined(toks); got != tt.want {
				t.Errorf("tokens = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTokenizerErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"unclosed group", `{\rtf1 abc`, ErrGroupOverflow},
		{"extra close", `{a}}`, ErrGroupUnderflow},
		{"bad hex", `{\'4g}`, ErrHexInvalid},
		{"truncated hex", `{\'4`, ErrUnexpectedEOF},
		{"trailing backslash", `{\`, ErrUnexpectedEOF},
		{"short bin", `{\bin10 abc}`, ErrUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokenize(t, tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestKeywordClassification(t *testing.T) {
	tests := []struct {
		input    string
		kind     Kind
		param    int
		hasParam bool
	}{
		{`\b`, KindToggle, 1, false},
		{`\b0`, KindToggle, 0, true},
		{`\fonttbl`, KindDestination, 0, false},
		{`\par`, KindSymbol, 0, false},
		{`\pard`, KindFlag, 0, false},
		{`\uc`, KindValue, 1, false},
		{`\fs`, KindValue, 24, false},
		{`\zzzfutureword42`, KindUnknown, 42, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tk, err := New([]byte(tt.input)).Next()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tk.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tk.Kind, tt.kind)
			}
			if tk.Param != tt.param || tk.HasParam != tt.hasParam {
				t.Errorf("Param = %d/%v, want %d/%v", tk.Param, tk.HasParam, tt.param, tt.hasParam)
			}
		})
	}
}

func TestDepthAndSeek(t *testing.T) {
	tok := New([]byte(`{a{b}c}`))
	var offsets []int64
	for {
		tk, err := tok.Next()
		if err != nil {
			break
		}
		if tk.Type == TokenGroupOpen {
			offsets = append(offsets, tk.Pos)
		}
	}
	if tok.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", tok.Depth())
	}
	if len(offsets) != 2 || offsets[1] != 2 {
		t.Fatalf("group offsets = %v, want [0 2]", offsets)
	}

	sub := NewAt(tok.Data(), offsets[1])
	toks, _ := func() ([]Token, error) {
		var out []Token
		for {
			tk, err := sub.Next()
			if err != nil {
				return out, err
			}
			out = append(out, tk)
			if sub.Depth() == 0 {
				return out, nil
			}
		}
	}()
	if got := joined(toks); got != `{ "b" }` {
		t.Errorf("sub-group tokens = %s", got)
	}
}

func TestLeadByte(t *testing.T) {
	tok := New([]byte("{\x81\\x}"))
	tok.SetLeadByte(func(b byte) bool { return b >= 0x81 && b <= 0x9f })
	tok.Next()
	tk, err := tok.Next()
	if err != nil {
		t.Fatal(err)
	}
	if string(tk.Value) != "\x81\\x" {
		t.Errorf("text = %q, want lead byte pair kept", tk.Value)
	}
}

func TestLookahead(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantTable   bool
		wantColumns bool
	}{
		{"plain", `{\rtf1 hello\par}`, false, false},
		{"table", `{\rtf1 \trowd\cellx100 \intbl a\cell\row}`, true, false},
		{"columns", `{\rtf1 \cols2 a}`, false, true},
		{"one column", `{\rtf1 \cols1 a}`, false, false},
		{"both", `{\rtf1 \cols3 \trowd\cellx10\intbl x\cell\row}`, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := New([]byte(tt.input))
			tok.Next()
			pos, depth := tok.Offset(), tok.Depth()

			table, cols := tok.Lookahead(0)
			if table != tt.wantTable || cols != tt.wantColumns {
				t.Errorf("Lookahead = %v, %v; want %v, %v", table, cols, tt.wantTable, tt.wantColumns)
			}
			if tok.Offset() != pos || tok.Depth() != depth {
				t.Errorf("position not restored: %d/%d, want %d/%d", tok.Offset(), tok.Depth(), pos, depth)
			}
		})
	}
}

func TestCheckTrailing(t *testing.T) {
	tok := New([]byte("{a}\r\n\x00 "))
	for {
		if _, err := tok.Next(); err != nil {
			break
		}
	}
	if err := tok.CheckTrailing(); err != nil {
		t.Errorf("CheckTrailing = %v, want nil", err)
	}

	tok = New([]byte("{a}junk"))
	tok.Next()
	tok.Next()
	tok.Next()
	if err := tok.CheckTrailing(); !errors.Is(err, ErrTrailingCharacters) {
		t.Errorf("CheckTrailing = %v, want ErrTrailingCharacters", err)
	}
}
