package graphic

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Format is the encoding of a picture.
type Format int

const (
	FormatUnknown Format = iota
	FormatPNG
	FormatJPEG
	FormatGIF
	FormatBMP
	FormatTIFF
	FormatWebP
	FormatEMF
	FormatWMF
	FormatPICT
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatGIF:
		return "gif"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	case FormatWebP:
		return "webp"
	case FormatEMF:
		return "emf"
	case FormatWMF:
		return "wmf"
	case FormatPICT:
		return "pict"
	}
	return "unknown"
}

// MIMEType returns the media type of the format.
func (f Format) MIMEType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatGIF:
		return "image/gif"
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	case FormatWebP:
		return "image/webp"
	case FormatEMF:
		return "image/emf"
	case FormatWMF:
		return "image/wmf"
	case FormatPICT:
		return "image/x-pict"
	}
	return "application/octet-stream"
}

// ErrEmpty is returned for pictures without data.
var ErrEmpty = errors.New("graphic: empty picture data")

// Graphic is a decoded picture.
type Graphic struct {
	Format Format
	Data   []byte

	// Pixel size of raster formats, 0 when unknown.
	Width  int
	Height int

	// Hash is the hex BLAKE3 digest of Data when the graphic came from a
	// Cache.
	Hash string
}

// Decoder turns picture bytes into a Graphic. hint is the format announced
// by the document and may be wrong.
type Decoder interface {
	Decode(data []byte, hint Format) (*Graphic, error)
}

// StdDecoder sniffs the format and reads the dimensions of raster images
// with the registered image decoders. Vector formats are passed through.
type StdDecoder struct{}

// Decode implements Decoder.
func (StdDecoder) Decode(data []byte, hint Format) (*Graphic, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	g := &Graphic{Format: Sniff(data), Data: data}
	if g.Format == FormatUnknown {
		g.Format = hint
	}
	switch g.Format {
	case FormatEMF, FormatWMF, FormatPICT, FormatUnknown:
		return g, nil
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s picture: %w", g.Format, err)
	}
	g.Width, g.Height = cfg.Width, cfg.Height
	return g, nil
}

// Sniff identifies a picture format from its leading bytes.
func Sniff(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return FormatPNG
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return FormatJPEG
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return FormatGIF
	case bytes.HasPrefix(data, []byte("BM")):
		return FormatBMP
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return FormatTIFF
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return FormatWebP
	case len(data) >= 44 && bytes.Equal(data[40:44], []byte(" EMF")):
		return FormatEMF
	case bytes.HasPrefix(data, []byte{0xD7, 0xCD, 0xC6, 0x9A}), bytes.HasPrefix(data, []byte{0x01, 0x00, 0x09, 0x00}):
		return FormatWMF
	}
	return FormatUnknown
}
