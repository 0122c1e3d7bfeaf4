package filters

import (
	"bytes"
	"fmt"
)

// HexDecode decodes hexadecimal text.
// Each pair of hexadecimal digits (0-9, A-F, a-f) represents one byte.
// Whitespace is ignored. Any other character is an error, and a trailing
// unpaired digit is dropped.
func HexDecode(data []byte) ([]byte, error) {
	var result bytes.Buffer
	result.Grow(len(data) / 2)

	var b byte
	count := 0
	for i, c := range data {
		if isWhitespace(c) {
			continue
		}
		v, err := hexDigitToByte(c)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", i, err)
		}
		b = b<<4 | v
		count++
		if count == 2 {
			result.WriteByte(b)
			b, count = 0, 0
		}
	}

	return result.Bytes(), nil
}

// hexDigitToByte converts a hexadecimal character to its numeric value (0-15).
func hexDigitToByte(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit: %q", c)
	}
}

// isWhitespace reports whether c separates hex digits in RTF.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
