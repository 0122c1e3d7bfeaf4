package rtfimport

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/rtfimport/docprops"
	"github.com/tsawler/rtfimport/importer"
)

const sampleRTF = `{\rtf1\ansi\deff0{\fonttbl{\f0\froman Times New Roman;}}` +
	`{\info{\title Quarterly Report}{\author Jane Doe}{\keywords finance, q3}}` +
	`\pard\plain First paragraph with {\b bold} text.\par` +
	`\pard Second paragraph.\par}`

func TestOpen(t *testing.T) {
	// Test with non-existent file
	_, _, err := Open("nonexistent.rtf").Text()
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.rtf")
	if err := os.WriteFile(path, []byte(sampleRTF), 0o644); err != nil {
		t.Fatal(err)
	}

	text, warnings, err := Open(path).Text()
	if err != nil {
		t.Fatalf("failed to extract text: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %s", FormatWarnings(warnings))
	}
	if !strings.Contains(text, "First paragraph with bold text.") {
		t.Errorf("expected first paragraph in %q", text)
	}
	if !strings.Contains(text, "Second paragraph.") {
		t.Errorf("expected second paragraph in %q", text)
	}
}

func TestNotRTF(t *testing.T) {
	_, _, err := FromBytes([]byte("plain text, no header")).Text()
	if !errors.Is(err, ErrNotRTF) {
		t.Errorf("err = %v, want ErrNotRTF", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestFromReaderError(t *testing.T) {
	_, _, err := FromReader(failingReader{}).Text()
	if err == nil || !strings.Contains(err.Error(), "broken pipe") {
		t.Errorf("err = %v, want the read error", err)
	}
}

func TestFromReader(t *testing.T) {
	text := MustText(FromReader(strings.NewReader(sampleRTF)).Text())
	if !strings.Contains(text, "Second paragraph.") {
		t.Errorf("unexpected text %q", text)
	}
}

// storedRTF wraps data in an uncompressed compressed-RTF header.
func storedRTF(data string) []byte {
	out := make([]byte, 16, 16+len(data))
	binary.LittleEndian.PutUint32(out[0:], uint32(12+len(data)))
	binary.LittleEndian.PutUint32(out[4:], uint32(len(data)))
	copy(out[8:], "MELA")
	return append(out, data...)
}

func TestCompressedRTF(t *testing.T) {
	text, _, err := FromBytes(storedRTF(sampleRTF)).Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if !strings.Contains(text, "First paragraph") {
		t.Errorf("unexpected text %q", text)
	}

	_, _, err = FromBytes(storedRTF("not rtf at all")).Text()
	if !errors.Is(err, ErrNotRTF) {
		t.Errorf("err = %v, want ErrNotRTF", err)
	}
}

func TestChainImmutability(t *testing.T) {
	base := FromBytes([]byte(sampleRTF))

	pasted := base.AsPaste()
	cyrillic := base.DefaultCodePage(1251)

	if base.options.paste || base.options.codePage != 1252 {
		t.Error("base extractor should keep the default options")
	}
	if !pasted.options.paste || pasted.options.codePage != 1252 {
		t.Error("pasted extractor should only set paste")
	}
	if cyrillic.options.paste || cyrillic.options.codePage != 1251 {
		t.Error("cyrillic extractor should only set the code page")
	}
}

func TestMust(t *testing.T) {
	// Test Must with successful result
	result := Must("hello", nil)
	if result != "hello" {
		t.Errorf("expected 'hello', got %q", result)
	}

	// Test Must with error (should panic)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Must to panic on error")
		}
	}()
	Must("", os.ErrNotExist)
}

func TestDocumentMetadata(t *testing.T) {
	doc, _, err := FromBytes([]byte(sampleRTF)).Document()
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if doc.Metadata.Title != "Quarterly Report" || doc.Metadata.Author != "Jane Doe" {
		t.Errorf("metadata = %+v", doc.Metadata)
	}
	if diff := cmp.Diff([]string{"finance", "q3"}, doc.Metadata.Keywords); diff != "" {
		t.Errorf("Keywords mismatch (-want +got):\n%s", diff)
	}
}

func TestWithProperties(t *testing.T) {
	store := docprops.New()
	if _, _, err := FromBytes([]byte(sampleRTF)).WithProperties(store).Document(); err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if got := store.Text(docprops.FieldTitle); got != "Quarterly Report" {
		t.Errorf("store title = %q", got)
	}
}

func TestMarkdown(t *testing.T) {
	md, _, err := FromBytes([]byte(sampleRTF)).Markdown()
	if err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}
	if !strings.Contains(md, "**bold**") {
		t.Errorf("expected bold markup in %q", md)
	}
}

func TestHTML(t *testing.T) {
	page, _, err := FromBytes([]byte(sampleRTF)).HTML()
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	for _, want := range []string{"<title>Quarterly Report</title>", "<strong>bold</strong>", "Second paragraph."} {
		if !strings.Contains(page, want) {
			t.Errorf("HTML() missing %q", want)
		}
	}
}

func TestEvents(t *testing.T) {
	rec, _, err := FromBytes([]byte(sampleRTF)).Events()
	if err != nil {
		t.Fatalf("Events() error = %v", err)
	}
	text := rec.PlainText()
	if !strings.Contains(text, "First paragraph with bold text.\n") {
		t.Errorf("PlainText() = %q", text)
	}
	if rec.TableByID(0) != nil {
		t.Error("TableByID(Invalid) should not match")
	}
}

func TestTrailingBraceWarning(t *testing.T) {
	text, warnings, err := FromBytes([]byte(`{\rtf1\ansi Text\par}}`)).Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if !strings.Contains(text, "Text") {
		t.Errorf("text = %q", text)
	}
	if len(warnings) == 0 {
		t.Fatal("expected a warning for the extra closing brace")
	}
	if !errors.Is(warnings[0].Err, importer.ErrTrailingCharacters) {
		t.Errorf("warning = %v, want trailing characters", warnings[0].Err)
	}
}

func TestFatalError(t *testing.T) {
	_, _, err := FromBytes([]byte(`{\rtf1\ansi {\b unterminated`)).Text()
	var perr *importer.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *importer.ParseError", err)
	}
	if !errors.Is(err, importer.ErrGroupOverflow) {
		t.Errorf("err = %v, want ErrGroupOverflow", err)
	}
}

func TestContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := FromBytes([]byte(sampleRTF)).Context(ctx).Text()
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestClassificationBlocked(t *testing.T) {
	data := `{\rtf1\ansi{\*\userprops{\propname ` + docprops.BusinessAuthorizationKey +
		`}\proptype30{\staticval Confidential}}\pard Secret text\par}`

	target := docprops.New()
	if err := target.SetUserProperty(docprops.UserProperty{
		Name: docprops.BusinessAuthorizationKey, Type: docprops.PropString, Value: "Non-Business",
	}); err != nil {
		t.Fatal(err)
	}

	text, warnings, err := FromBytes([]byte(data)).
		AsPaste().
		WithProperties(target).
		WithClassification(docprops.NewLevelChecker()).
		Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if !strings.Contains(text, "Secret text") {
		t.Errorf("body should be kept, got %q", text)
	}
	var blocked *Warning
	for i := range warnings {
		if warnings[i].Blocked() {
			blocked = &warnings[i]
		}
	}
	if blocked == nil {
		t.Fatalf("expected a classification warning, got %v", warnings)
	}
	if !errors.Is(blocked.Err, docprops.ErrBlocked) {
		t.Errorf("warning %v does not carry the checker's error", blocked.Err)
	}
	if got := target.UserMap()[docprops.BusinessAuthorizationKey]; got != "Non-Business" {
		t.Errorf("target classification = %q, want unchanged", got)
	}
}

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		newWarning("", errors.New("first")),
		newWarning("substream", errors.New("second")),
	}
	if got, want := FormatWarnings(warnings), "first; substream: second"; got != want {
		t.Errorf("FormatWarnings() = %q, want %q", got, want)
	}
	if FormatWarnings(nil) != "" {
		t.Error("FormatWarnings(nil) should be empty")
	}
}
