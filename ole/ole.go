// Package ole reads the OLE1 object wrapper that RTF uses for embedded
// objects (\objdata) and stores the extracted objects in a Container.
package ole

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/tsawler/rtfimport/internal/filters"
)

// Object format ids of the OLE1 ObjectHeader.
const (
	FormatLinked   = 1
	FormatEmbedded = 2
)

var compoundSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// ErrTruncated is returned when the object header is cut short.
var ErrTruncated = errors.New("ole: truncated object header")

// Object is an embedded or linked object.
type Object struct {
	Version   uint32
	FormatID  uint32
	ClassName string
	TopicName string
	ItemName  string

	// Data is the native data: an OLE2 compound file for most objects.
	Data []byte

	// ProgID comes from \objclass and may differ from ClassName.
	ProgID string

	// Size in twips from \objw and \objh.
	Width, Height int
}

// IsCompound reports whether Data is an OLE2 compound file.
func (o *Object) IsCompound() bool {
	return bytes.HasPrefix(o.Data, compoundSignature)
}

// ParseObjData decodes the hex text of an \objdata group and parses the
// OLE1 header.
func ParseObjData(hexText []byte) (*Object, error) {
	raw, err := filters.HexDecode(hexText)
	if err != nil {
		return nil, fmt.Errorf("decoding objdata: %w", err)
	}
	if len(raw) == 0 {
		return &Object{}, nil
	}
	return Parse(raw)
}

// Parse reads an OLE1 ObjectHeader followed by the native data.
func Parse(raw []byte) (*Object, error) {
	r := &headerReader{data: raw}
	obj := &Object{}
	obj.Version = r.u32()
	obj.FormatID = r.u32()
	obj.ClassName = r.lengthPrefixed()
	obj.TopicName = r.lengthPrefixed()
	obj.ItemName = r.lengthPrefixed()
	size := int(r.u32())
	if r.err != nil {
		return nil, r.err
	}
	if size > 0 {
		if r.pos+size > len(raw) {
			return nil, fmt.Errorf("%w: native data of %d bytes", ErrTruncated, size)
		}
		obj.Data = raw[r.pos : r.pos+size]
	}
	return obj, nil
}

type headerReader struct {
	data []byte
	pos  int
	err  error
}

func (r *headerReader) u32() uint32 {
	if r.err != nil {
		return 0
	}
	if r.pos+4 > len(r.data) {
		r.err = ErrTruncated
		return 0
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v
}

// lengthPrefixed reads a uint32 length and that many bytes, dropping the
// terminating NUL.
func (r *headerReader) lengthPrefixed() string {
	n := int(r.u32())
	if r.err != nil {
		return ""
	}
	if n < 0 || r.pos+n > len(r.data) {
		r.err = ErrTruncated
		return ""
	}
	s := r.data[r.pos : r.pos+n]
	r.pos += n
	return string(bytes.TrimRight(s, "\x00"))
}

// Container stores embedded objects and names them.
type Container interface {
	Insert(obj *Object) (name string, err error)
}

// MemContainer keeps objects in memory.
type MemContainer struct {
	mu      sync.Mutex
	objects map[string]*Object
	order   []string
}

// NewMemContainer returns an empty container.
func NewMemContainer() *MemContainer {
	return &MemContainer{objects: make(map[string]*Object)}
}

// Insert implements Container.
func (c *MemContainer) Insert(obj *Object) (string, error) {
	if obj == nil {
		return "", errors.New("ole: nil object")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	name := fmt.Sprintf("Object %d", len(c.order)+1)
	c.objects[name] = obj
	c.order = append(c.order, name)
	return name, nil
}

// Get returns a stored object.
func (c *MemContainer) Get(name string) (*Object, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	obj, ok := c.objects[name]
	return obj, ok
}

// Names returns the object names in insertion order.
func (c *MemContainer) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.order...)
}
