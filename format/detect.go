// Package format detects whether input is RTF or compressed RTF.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/tsawler/rtfimport/internal/filters"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// RTF indicates a plain RTF document.
	RTF
	// CompressedRTF indicates an LZFu stream as stored in mail messages.
	CompressedRTF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case RTF:
		return "RTF"
	case CompressedRTF:
		return "CompressedRTF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case RTF:
		return ".rtf"
	case CompressedRTF:
		return ".lzfu"
	default:
		return ""
	}
}

// Detect determines the format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".rtf", ".doc", ".wri":
		return RTF
	case ".lzfu", ".rtfc":
		return CompressedRTF
	default:
		return Unknown
	}
}

var (
	utf8BOM   = []byte{0xEF, 0xBB, 0xBF}
	rtfHeader = []byte(`{\rtf`)
)

// DetectFromMagic checks the leading bytes of data. Leading whitespace and
// a UTF-8 byte order mark before the RTF header are tolerated.
func DetectFromMagic(data []byte) Format {
	if filters.IsCompressedRTF(data) {
		return CompressedRTF
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	data = bytes.TrimLeft(data, " \t\r\n")
	if bytes.HasPrefix(data, rtfHeader) {
		return RTF
	}
	return Unknown
}

// DetectFromReader inspects the start of r. Content detection is more
// reliable than the extension: .doc files are often RTF in disguise.
func DetectFromReader(r io.ReaderAt) (Format, error) {
	magic := make([]byte, 64)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}
