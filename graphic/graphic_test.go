package graphic

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	return img
}

func encodePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestSniff(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"png", []byte("\x89PNG\r\n\x1a\nrest"), FormatPNG},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, FormatJPEG},
		{"gif", []byte("GIF89a..."), FormatGIF},
		{"bmp", []byte("BM\x00\x00"), FormatBMP},
		{"tiff", []byte("II*\x00...."), FormatTIFF},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), FormatWebP},
		{"wmf placeable", []byte{0xD7, 0xCD, 0xC6, 0x9A, 0}, FormatWMF},
		{"unknown", []byte("hello"), FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sniff(tt.data); got != tt.want {
				t.Errorf("Sniff = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStdDecoder(t *testing.T) {
	var bmpBuf bytes.Buffer
	if err := bmp.Encode(&bmpBuf, testImage()); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		data   []byte
		hint   Format
		format Format
		w, h   int
	}{
		{"png", encodePNG(t), FormatJPEG, FormatPNG, 3, 2},
		{"bmp", bmpBuf.Bytes(), FormatUnknown, FormatBMP, 3, 2},
		{"emf hint", []byte("not sniffable"), FormatEMF, FormatEMF, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := StdDecoder{}.Decode(tt.data, tt.hint)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if g.Format != tt.format || g.Width != tt.w || g.Height != tt.h {
				t.Errorf("got %v %dx%d, want %v %dx%d", g.Format, g.Width, g.Height, tt.format, tt.w, tt.h)
			}
		})
	}

	if _, err := (StdDecoder{}).Decode(nil, FormatPNG); !errors.Is(err, ErrEmpty) {
		t.Errorf("Decode(nil) error = %v, want ErrEmpty", err)
	}
}

func TestCacheDeduplicates(t *testing.T) {
	c := NewCache(nil)
	data := encodePNG(t)

	g1, err := c.Decode(data, FormatPNG)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := c.Decode(append([]byte(nil), data...), FormatPNG)
	if err != nil {
		t.Fatal(err)
	}
	if g1 != g2 {
		t.Error("identical data returned different graphics")
	}
	if len(g1.Hash) != 64 {
		t.Errorf("Hash = %q, want 64 hex digits", g1.Hash)
	}
	if c.Len() != 1 || c.Hits() != 1 {
		t.Errorf("Len = %d, Hits = %d; want 1, 1", c.Len(), c.Hits())
	}
}

func TestNewCacheReusesCache(t *testing.T) {
	outer := NewCache(nil)
	if got := NewCache(outer); got != outer {
		t.Fatal("NewCache wrapped an existing cache")
	}

	data := encodePNG(t)
	for i := 0; i < 3; i++ {
		if _, err := NewCache(outer).Decode(data, FormatPNG); err != nil {
			t.Fatal(err)
		}
	}
	if outer.Len() != 1 || outer.Hits() != 2 {
		t.Errorf("Len = %d, Hits = %d; want 1, 2", outer.Len(), outer.Hits())
	}
}
