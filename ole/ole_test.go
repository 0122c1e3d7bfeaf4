package ole

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"testing"
)

func header(class string, data []byte) []byte {
	var b bytes.Buffer
	w := func(v uint32) { binary.Write(&b, binary.LittleEndian, v) }
	w(0x0501)
	w(FormatEmbedded)
	w(uint32(len(class) + 1))
	b.WriteString(class)
	b.WriteByte(0)
	w(0)
	w(0)
	w(uint32(len(data)))
	b.Write(data)
	return b.Bytes()
}

func TestParseObjData(t *testing.T) {
	native := append(append([]byte(nil), compoundSignature...), 1, 2, 3)
	text := hex.EncodeToString(header("Excel.Sheet.8", native))
	// objdata text is usually wrapped
	text = text[:20] + "\r\n" + text[20:]

	obj, err := ParseObjData([]byte(text))
	if err != nil {
		t.Fatalf("ParseObjData: %v", err)
	}
	if obj.ClassName != "Excel.Sheet.8" {
		t.Errorf("ClassName = %q", obj.ClassName)
	}
	if obj.FormatID != FormatEmbedded {
		t.Errorf("FormatID = %d", obj.FormatID)
	}
	if !obj.IsCompound() || len(obj.Data) != len(native) {
		t.Errorf("Data = %x, want compound file of %d bytes", obj.Data, len(native))
	}
}

func TestParseErrors(t *testing.T) {
	full := header("Paint.Picture", []byte("abcdef"))
	tests := []struct {
		name string
		data []byte
	}{
		{"short header", full[:6]},
		{"short class", full[:14]},
		{"short native data", full[:len(full)-2]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.data); !errors.Is(err, ErrTruncated) {
				t.Errorf("error = %v, want ErrTruncated", err)
			}
		})
	}

	if _, err := ParseObjData([]byte("0g")); err == nil {
		t.Error("invalid hex accepted")
	}
}

func TestMemContainer(t *testing.T) {
	c := NewMemContainer()
	a, _ := c.Insert(&Object{ClassName: "A"})
	b, _ := c.Insert(&Object{ClassName: "B"})
	if a == b {
		t.Fatalf("names not unique: %q", a)
	}
	if obj, ok := c.Get(b); !ok || obj.ClassName != "B" {
		t.Errorf("Get(%q) = %v, %v", b, obj, ok)
	}
	if names := c.Names(); len(names) != 2 || names[0] != a {
		t.Errorf("Names = %v", names)
	}
}
