package rtfimport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/tsawler/rtfimport/docprops"
	"github.com/tsawler/rtfimport/format"
	"github.com/tsawler/rtfimport/graphic"
	"github.com/tsawler/rtfimport/importer"
	"github.com/tsawler/rtfimport/internal/filters"
	"github.com/tsawler/rtfimport/model"
	"github.com/tsawler/rtfimport/ole"
)

// ErrNotRTF is returned for input that is neither RTF nor compressed RTF.
var ErrNotRTF = errors.New("input is not RTF")

// Extractor provides a fluent interface for importing RTF documents.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	data     []byte
	hasData  bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Extractor with a copy of its options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		data:     e.data,
		hasData:  e.hasData,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// load returns the RTF bytes of the source, expanding compressed RTF.
func (e *Extractor) load() ([]byte, error) {
	data := e.data
	if !e.hasData {
		if e.filename == "" {
			return nil, fmt.Errorf("no filename specified")
		}
		b, err := os.ReadFile(e.filename)
		if err != nil {
			return nil, fmt.Errorf("failed to open RTF: %w", err)
		}
		data = b
	}

	switch format.DetectFromMagic(data) {
	case format.RTF:
		return data, nil
	case format.CompressedRTF:
		raw, err := filters.DecompressRTF(data)
		if err != nil {
			return nil, fmt.Errorf("expanding compressed RTF: %w", err)
		}
		if format.DetectFromMagic(raw) != format.RTF {
			return nil, fmt.Errorf("compressed stream: %w", ErrNotRTF)
		}
		return raw, nil
	default:
		return nil, ErrNotRTF
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// AsPaste imports the document as content pasted into an existing document:
// no settings are reported, and user properties are checked against the
// classification checker.
//
// Example:
//
//	doc, _, err := rtfimport.FromBytes(clip).AsPaste().Document()
func (e *Extractor) AsPaste() *Extractor {
	newExt := e.clone()
	newExt.options.paste = true
	return newExt
}

// DefaultCodePage sets the code page for text before \ansicpg or a font
// charset says otherwise. The default is 1252.
//
// Example:
//
//	text, _, err := rtfimport.Open("russian.rtf").DefaultCodePage(1251).Text()
func (e *Extractor) DefaultCodePage(cp int) *Extractor {
	newExt := e.clone()
	newExt.options.codePage = cp
	return newExt
}

// WithLogger sends import diagnostics to l.
func (e *Extractor) WithLogger(l *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = l
	return newExt
}

// WithGraphics decodes pictures with d instead of graphic.StdDecoder.
func (e *Extractor) WithGraphics(d graphic.Decoder) *Extractor {
	newExt := e.clone()
	newExt.options.graphics = d
	return newExt
}

// WithObjects stores embedded OLE objects in c.
//
// Example:
//
//	objs := ole.NewMemContainer()
//	doc, _, err := rtfimport.Open("report.rtf").WithObjects(objs).Document()
func (e *Extractor) WithObjects(c ole.Container) *Extractor {
	newExt := e.clone()
	newExt.options.objects = c
	return newExt
}

// WithProperties writes the document information to s. Document() copies
// it into the document metadata when s is a *docprops.Properties.
func (e *Extractor) WithProperties(s docprops.Store) *Extractor {
	newExt := e.clone()
	newExt.options.properties = s
	return newExt
}

// WithClassification checks user properties of pasted content with c.
func (e *Extractor) WithClassification(c docprops.ClassificationChecker) *Extractor {
	newExt := e.clone()
	newExt.options.classification = c
	return newExt
}

// FirstRunException replaces the rule deciding whether the first section
// starts before the first text run.
func (e *Extractor) FirstRunException(f func(hasTable, hasColumns bool) bool) *Extractor {
	newExt := e.clone()
	newExt.options.firstRunException = f
	return newExt
}

// EmbedImages makes HTML() write pictures as data URLs.
func (e *Extractor) EmbedImages() *Extractor {
	newExt := e.clone()
	newExt.options.embedImages = true
	return newExt
}

// Context sets the context checked during the import.
func (e *Extractor) Context(ctx context.Context) *Extractor {
	newExt := e.clone()
	if ctx == nil {
		ctx = context.Background()
	}
	newExt.options.ctx = ctx
	return newExt
}

// ============================================================================
// Terminal Operations (execute the import and return results)
// ============================================================================

// resolve runs the import into sink.
func (e *Extractor) resolve(sink importer.Sink) (*importer.Importer, error) {
	if e.err != nil {
		return nil, e.err
	}
	data, err := e.load()
	if err != nil {
		return nil, err
	}

	imp := importer.New(data, e.options.importerOptions())
	return imp, imp.ResolveContext(e.options.ctx, sink)
}

func collectWarnings(imp *importer.Importer, b *model.Builder) []Warning {
	var warnings []Warning
	for _, err := range imp.Warnings() {
		warnings = append(warnings, newWarning("", err))
	}
	if b != nil {
		for _, err := range b.Errors() {
			warnings = append(warnings, newWarning("substream", err))
		}
	}
	return warnings
}

// Document imports the source and returns the document model.
//
// Returns the document, any warnings encountered during processing,
// and an error if the import failed. Warnings indicate non-fatal issues
// (e.g., unbalanced groups, a blocked classification) where the import
// succeeded but results may be incomplete.
//
// Example:
//
//	doc, warnings, err := rtfimport.Open("document.rtf").Document()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range doc.Sections {
//	    fmt.Println(len(s.Elements))
//	}
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	b := model.NewBuilder(e.options.logger)
	imp, err := e.resolve(b)
	if imp == nil {
		return nil, nil, err
	}
	warnings := collectWarnings(imp, b)
	if err != nil {
		return nil, warnings, err
	}

	doc := b.Document()
	switch p := imp.Properties().(type) {
	case *docprops.Properties:
		doc.Metadata.SetProperties(p)
	default:
		for k, v := range p.UserMap() {
			doc.Metadata.Custom[k] = v
		}
	}
	return doc, warnings, nil
}

// Text imports the source and returns its body text, paragraphs separated
// by newlines and sections by blank lines.
//
// Example:
//
//	text, warnings, err := rtfimport.Open("document.rtf").Text()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", rtfimport.FormatWarnings(warnings))
//	}
func (e *Extractor) Text() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", warnings, err
	}
	return doc.ExtractText(), warnings, nil
}

// Markdown imports the source and renders it as Markdown, with footnotes
// and comments at the end.
//
// Example:
//
//	md, _, err := rtfimport.Open("document.rtf").Markdown()
func (e *Extractor) Markdown() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", warnings, err
	}
	return doc.ToMarkdown(), warnings, nil
}

// HTML imports the source and renders it as a standalone HTML page.
//
// Example:
//
//	page, _, err := rtfimport.Open("document.rtf").EmbedImages().HTML()
func (e *Extractor) HTML() (string, []Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return "", warnings, err
	}
	out, err := doc.ToHTML(model.HTMLOptions{EmbedImages: e.options.embedImages})
	if err != nil {
		return "", warnings, err
	}
	return out, warnings, nil
}

// Events imports the source into an importer.Recorder and returns the raw
// event stream, substreams nested.
//
// Example:
//
//	rec, _, err := rtfimport.Open("document.rtf").Events()
//	fmt.Print(rec.Dump())
func (e *Extractor) Events() (*importer.Recorder, []Warning, error) {
	rec := &importer.Recorder{}
	imp, err := e.resolve(rec)
	if imp == nil {
		return nil, nil, err
	}
	warnings := collectWarnings(imp, nil)
	if err != nil {
		return nil, warnings, err
	}
	return rec, warnings, nil
}
