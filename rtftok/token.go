package rtftok

import (
	"fmt"
	"strconv"
)

// TokenType represents the type of token
type TokenType int

const (
	TokenGroupOpen  TokenType = iota // {
	TokenGroupClose                  // }
	TokenKeyword                     // \b, \fs24, \*, \~
	TokenHex                         // \'e9
	TokenText                        // literal run of bytes
	TokenBinary                      // payload of \binN
)

var tokenTypeNames = [...]string{
	TokenGroupOpen:  "GroupOpen",
	TokenGroupClose: "GroupClose",
	TokenKeyword:    "Keyword",
	TokenHex:        "Hex",
	TokenText:       "Text",
	TokenBinary:     "Binary",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

// Token represents a lexical token
type Token struct {
	Type TokenType

	// Keyword fields. Name is the control word without the backslash, or the
	// symbol character for control symbols such as "~" or "*".
	Name     string
	Param    int
	HasParam bool
	Kind     Kind

	// Value holds the text run, the hex byte or the binary payload.
	Value []byte

	Pos int64 // Position in stream
}

// Byte returns the decoded byte of a hex token.
func (t Token) Byte() byte {
	if len(t.Value) == 0 {
		return 0
	}
	return t.Value[0]
}

// ParamOr returns the parameter, or def when the keyword has none.
func (t Token) ParamOr(def int) int {
	if t.HasParam {
		return t.Param
	}
	return def
}

func (t Token) String() string {
	switch t.Type {
	case TokenKeyword:
		if t.HasParam {
			return fmt.Sprintf(`\%s%d`, t.Name, t.Param)
		}
		return `\` + t.Name
	case TokenHex:
		return fmt.Sprintf(`\'%02x`, t.Byte())
	case TokenText:
		return strconv.Quote(string(t.Value))
	case TokenBinary:
		return fmt.Sprintf("bin[%d]", len(t.Value))
	case TokenGroupOpen:
		return "{"
	case TokenGroupClose:
		return "}"
	}
	return t.Type.String()
}
