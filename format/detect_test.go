package format

import (
	"bytes"
	"errors"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{RTF, "RTF"},
		{CompressedRTF, "CompressedRTF"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{RTF, ".rtf"},
		{CompressedRTF, ".lzfu"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"document.rtf", RTF},
		{"document.RTF", RTF},
		{"document.Rtf", RTF},
		{"legacy.doc", RTF},
		{"notes.wri", RTF},
		{"body.lzfu", CompressedRTF},
		{"body.rtfc", CompressedRTF},
		{"document.txt", Unknown},
		{"document", Unknown},
		{"", Unknown},
		{"/path/to/file.rtf", RTF},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

// lzfuHeader returns a compressed RTF header with the given magic.
func lzfuHeader(magic string) []byte {
	h := make([]byte, 16)
	copy(h[8:], magic)
	return h
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{
			name: "RTF header",
			data: []byte(`{\rtf1\ansi Hello}`),
			want: RTF,
		},
		{
			name: "RTF with leading whitespace",
			data: []byte("\r\n  {\\rtf1}"),
			want: RTF,
		},
		{
			name: "RTF with byte order mark",
			data: append([]byte{0xEF, 0xBB, 0xBF}, `{\rtf1}`...),
			want: RTF,
		},
		{
			name: "compressed",
			data: lzfuHeader("LZFu"),
			want: CompressedRTF,
		},
		{
			name: "stored uncompressed",
			data: lzfuHeader("MELA"),
			want: CompressedRTF,
		},
		{
			name: "group without rtf keyword",
			data: []byte(`{\pard text}`),
			want: Unknown,
		},
		{
			name: "empty data",
			data: []byte{},
			want: Unknown,
		},
		{
			name: "short header",
			data: []byte(`{\rt`),
			want: Unknown,
		},
		{
			name: "text file",
			data: []byte("Hello, World!"),
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader_RTF(t *testing.T) {
	data := []byte(`{\rtf1\ansi\deff0 {\fonttbl {\f0 Times;}} Hello\par}`)

	format, err := DetectFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != RTF {
		t.Errorf("DetectFromReader() = %v, want RTF", format)
	}
}

func TestDetectFromReader_Short(t *testing.T) {
	format, err := DetectFromReader(bytes.NewReader([]byte("hi")))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != Unknown {
		t.Errorf("DetectFromReader() = %v, want Unknown", format)
	}
}

type failingReader struct{}

func (failingReader) ReadAt([]byte, int64) (int, error) { return 0, errors.New("disk error") }

func TestDetectFromReader_Error(t *testing.T) {
	if _, err := DetectFromReader(failingReader{}); err == nil {
		t.Error("DetectFromReader() should return read errors")
	}
}
