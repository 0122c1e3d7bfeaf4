package rtftok

import (
	"errors"
	"fmt"
	"io"
)

// Errors reported by the tokenizer.
var (
	// ErrGroupUnderflow is returned for a '}' without matching '{'.
	ErrGroupUnderflow = errors.New("rtf: group underflow")
	// ErrGroupOverflow is returned at end of input while groups are open.
	ErrGroupOverflow = errors.New("rtf: group overflow")
	// ErrUnexpectedEOF is returned when input ends inside a token.
	ErrUnexpectedEOF = errors.New("rtf: unexpected end of input")
	// ErrHexInvalid is returned for a malformed \'hh escape.
	ErrHexInvalid = errors.New("rtf: invalid hex escape")
	// ErrTrailingCharacters is returned for content after the last group.
	ErrTrailingCharacters = errors.New("rtf: characters after last group")
)

const (
	maxKeywordLen = 32
	maxParamLen   = 10
)

// Tokenizer splits RTF input into tokens.
type Tokenizer struct {
	data  []byte
	pos   int
	depth int

	// leadByte reports DBCS lead bytes, whose trail byte is taken literally.
	leadByte func(byte) bool
}

// New creates a tokenizer over data.
func New(data []byte) *Tokenizer {
	return &Tokenizer{data: data}
}

// NewAt creates a tokenizer over data positioned at offset, with depth 0.
func NewAt(data []byte, offset int64) *Tokenizer {
	t := New(data)
	t.Seek(offset)
	return t
}

// NewFromReader reads r completely and creates a tokenizer over its content.
func NewFromReader(r io.Reader) (*Tokenizer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading rtf input: %w", err)
	}
	return New(data), nil
}

// SetLeadByte installs a predicate for DBCS lead bytes. While set, the byte
// following a lead byte in a text run is part of the run even when it is a
// '\', '{' or '}'.
func (t *Tokenizer) SetLeadByte(fn func(byte) bool) {
	t.leadByte = fn
}

// Data returns the complete input.
func (t *Tokenizer) Data() []byte { return t.data }

// Offset returns the byte offset of the next token.
func (t *Tokenizer) Offset() int64 { return int64(t.pos) }

// Seek moves to a byte offset. The group depth is left unchanged.
func (t *Tokenizer) Seek(offset int64) {
	switch {
	case offset < 0:
		t.pos = 0
	case offset > int64(len(t.data)):
		t.pos = len(t.data)
	default:
		t.pos = int(offset)
	}
}

// Depth returns the current group nesting depth.
func (t *Tokenizer) Depth() int { return t.depth }

// Next returns the next token. At the end of balanced input it returns
// io.EOF; while groups are still open it returns ErrGroupOverflow.
func (t *Tokenizer) Next() (Token, error) {
	for t.pos < len(t.data) {
		c := t.data[t.pos]
		switch c {
		case '{':
			t.depth++
			t.pos++
			return Token{Type: TokenGroupOpen, Pos: int64(t.pos - 1)}, nil
		case '}':
			t.pos++
			if t.depth == 0 {
				return Token{}, ErrGroupUnderflow
			}
			t.depth--
			return Token{Type: TokenGroupClose, Pos: int64(t.pos - 1)}, nil
		case '\\':
			return t.readControl()
		case '\r', '\n':
			t.pos++
		default:
			return t.readText(), nil
		}
	}
	if t.depth > 0 {
		return Token{}, ErrGroupOverflow
	}
	return Token{}, io.EOF
}

// CheckTrailing reports ErrTrailingCharacters when anything but whitespace
// and NUL bytes remains after the current position.
func (t *Tokenizer) CheckTrailing() error {
	for _, c := range t.data[t.pos:] {
		switch c {
		case ' ', '\t', '\r', '\n', 0:
		default:
			return ErrTrailingCharacters
		}
	}
	return nil
}

func (t *Tokenizer) readText() Token {
	start := t.pos
	buf := make([]byte, 0, 16)
	for t.pos < len(t.data) {
		c := t.data[t.pos]
		if c == '\\' || c == '{' || c == '}' {
			break
		}
		t.pos++
		if c == '\r' || c == '\n' {
			continue
		}
		buf = append(buf, c)
		if t.leadByte != nil && t.leadByte(c) && t.pos < len(t.data) {
			buf = append(buf, t.data[t.pos])
			t.pos++
		}
	}
	return Token{Type: TokenText, Value: buf, Pos: int64(start)}
}

func (t *Tokenizer) readControl() (Token, error) {
	start := t.pos
	t.pos++ // backslash
	if t.pos >= len(t.data) {
		return Token{}, ErrUnexpectedEOF
	}
	c := t.data[t.pos]

	switch {
	case isLetter(c):
		return t.readWord(start)
	case c == '\'':
		t.pos++
		if t.pos+2 > len(t.data) {
			return Token{}, ErrUnexpectedEOF
		}
		hi, ok1 := hexValue(t.data[t.pos])
		lo, ok2 := hexValue(t.data[t.pos+1])
		if !ok1 || !ok2 {
			return Token{}, fmt.Errorf("%w at offset %d", ErrHexInvalid, start)
		}
		t.pos += 2
		return Token{Type: TokenHex, Value: []byte{hi<<4 | lo}, Pos: int64(start)}, nil
	case c == '\r' || c == '\n':
		t.pos++
		return Token{Type: TokenKeyword, Name: "par", Kind: KindSymbol, Pos: int64(start)}, nil
	}

	t.pos++
	name := string(c)
	kw, ok := Lookup(name)
	tok := Token{Type: TokenKeyword, Name: name, Kind: KindUnknown, Pos: int64(start)}
	if ok {
		tok.Kind = kw.Kind
	}
	return tok, nil
}

func (t *Tokenizer) readWord(start int) (Token, error) {
	nameStart := t.pos
	for t.pos < len(t.data) && isLetter(t.data[t.pos]) && t.pos-nameStart < maxKeywordLen {
		t.pos++
	}
	tok := Token{Type: TokenKeyword, Name: string(t.data[nameStart:t.pos]), Pos: int64(start)}

	neg := false
	if t.pos+1 < len(t.data) && t.data[t.pos] == '-' && isDigit(t.data[t.pos+1]) {
		neg = true
		t.pos++
	}
	var param int64
	digits := 0
	for t.pos < len(t.data) && isDigit(t.data[t.pos]) {
		if digits < maxParamLen {
			param = param*10 + int64(t.data[t.pos]-'0')
		}
		digits++
		t.pos++
	}
	if digits > 0 {
		if neg {
			param = -param
		}
		tok.HasParam = true
		tok.Param = clampInt32(param)
	}
	if t.pos < len(t.data) && t.data[t.pos] == ' ' {
		t.pos++
	}

	if kw, ok := Lookup(tok.Name); ok {
		tok.Kind = kw.Kind
		if !tok.HasParam {
			tok.Param = kw.Default
		}
	}

	if tok.Name == "bin" && tok.Param > 0 {
		if t.pos+tok.Param > len(t.data) {
			t.pos = len(t.data)
			return Token{}, ErrUnexpectedEOF
		}
		data := t.data[t.pos : t.pos+tok.Param]
		t.pos += tok.Param
		return Token{Type: TokenBinary, Value: data, Pos: int64(start)}, nil
	}
	return tok, nil
}

func clampInt32(v int64) int {
	const maxInt32, minInt32 = 1<<31 - 1, -1 << 31
	if v > maxInt32 {
		return maxInt32
	}
	if v < minInt32 {
		return minInt32
	}
	return int(v)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
