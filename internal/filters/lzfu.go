package filters

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

const (
	lzfuCompressed   = 0x75465a4c // "LZFu"
	lzfuUncompressed = 0x414c454d // "MELA"
	lzfuDictSize     = 4096
	lzfuDictMask     = lzfuDictSize - 1
	lzfuHeaderSize   = 16
)

// lzfuPrebuf is the dictionary every compressed RTF stream starts with.
const lzfuPrebuf = "{\\rtf1\\ansi\\mac\\deff0\\deftab720{\\fonttbl;}" +
	"{\\f0\\fnil \\froman \\fswiss \\fmodern \\fscript " +
	"\\fdecor MS Sans SerifSymbolArialTimes New RomanCourier" +
	"{\\colortbl\\red0\\green0\\blue0\n\r\\par " +
	"\\pard\\plain\\f0\\fs20\\b\\i\\u\\tab\\tx"

// Errors returned by DecompressRTF.
var (
	ErrCompressedHeader = errors.New("invalid compressed-RTF header")
	ErrCompressedCRC    = errors.New("compressed-RTF CRC32 mismatch")
	ErrCompressedData   = errors.New("corrupt compressed-RTF data")
)

// IsCompressedRTF reports whether data starts with a compressed RTF header.
func IsCompressedRTF(data []byte) bool {
	if len(data) < lzfuHeaderSize {
		return false
	}
	magic := binary.LittleEndian.Uint32(data[8:])
	return magic == lzfuCompressed || magic == lzfuUncompressed
}

// DecompressRTF expands compressed RTF.
func DecompressRTF(src []byte) ([]byte, error) {
	if len(src) < lzfuHeaderSize {
		return nil, ErrCompressedHeader
	}
	compressedSize := int(binary.LittleEndian.Uint32(src[0:]))
	rawSize := int(binary.LittleEndian.Uint32(src[4:]))
	magic := binary.LittleEndian.Uint32(src[8:])
	sum := binary.LittleEndian.Uint32(src[12:])

	// The size field does not count itself.
	if compressedSize != len(src)-4 {
		return nil, fmt.Errorf("%w: size %d, have %d", ErrCompressedHeader, compressedSize, len(src)-4)
	}

	switch magic {
	case lzfuUncompressed:
		body := src[lzfuHeaderSize:]
		if rawSize < len(body) {
			body = body[:rawSize]
		}
		return body, nil
	case lzfuCompressed:
	default:
		return nil, fmt.Errorf("%w: unknown magic %#x", ErrCompressedHeader, magic)
	}

	if lzfuCRC(src[lzfuHeaderSize:]) != sum {
		return nil, ErrCompressedCRC
	}

	dst := make([]byte, len(lzfuPrebuf), len(lzfuPrebuf)+rawSize)
	copy(dst, lzfuPrebuf)

	in := lzfuHeaderSize
	var flags byte
	for flagCount := 0; ; flagCount++ {
		// Each flag byte controls 8 literals/references, 1 per bit.
		if flagCount&7 == 0 {
			if in >= len(src) {
				break
			}
			flags = src[in]
			in++
		} else {
			flags >>= 1
		}

		if flags&1 == 0 {
			if in >= len(src) {
				break
			}
			dst = append(dst, src[in])
			in++
			continue
		}

		// Reference: 12-bit offset from the block start and 4-bit length.
		if in+2 > len(src) {
			return nil, ErrCompressedData
		}
		hi, lo := int(src[in]), int(src[in+1])
		in += 2
		offset := hi<<4 | lo>>4
		length := lo&0xF + 2

		out := len(dst)
		offset = out&^lzfuDictMask | offset
		if offset >= out {
			if offset == out {
				break // a self-reference marks the end of data
			}
			offset -= lzfuDictSize
		}
		if offset < 0 {
			return nil, ErrCompressedData
		}
		// The copy may overlap the bytes it produces.
		for i := 0; i < length; i++ {
			dst = append(dst, dst[offset+i])
		}
	}

	return dst[len(lzfuPrebuf):], nil
}

// lzfuCRC is CRC-32 (IEEE) without the initial and final inversion.
func lzfuCRC(p []byte) uint32 {
	return ^crc32.Update(0xFFFFFFFF, crc32.IEEETable, p)
}
