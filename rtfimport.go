// Package rtfimport provides a fluent API for reading RTF documents into a
// structured document model, plain text, Markdown or HTML.
//
// Basic usage:
//
//	text, warnings, err := rtfimport.Open("letter.rtf").Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", rtfimport.FormatWarnings(warnings))
//	}
//
// With options:
//
//	doc, _, err := rtfimport.FromBytes(data).
//	    AsPaste().
//	    DefaultCodePage(1251).
//	    WithLogger(logger).
//	    Document()
//
// Compressed RTF, as stored in mail messages, is expanded automatically.
// For access to the raw event stream use the importer package directly, or
// Extractor.Events.
package rtfimport

import (
	"fmt"
	"io"
)

// Open returns an Extractor reading the named file. The file is read when a
// terminal operation such as Text() runs.
//
// Example:
//
//	text, warnings, err := rtfimport.Open("document.rtf").Text()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes returns an Extractor over data. The slice is not copied and must
// not be modified while the Extractor is in use.
//
// Example:
//
//	md, _, err := rtfimport.FromBytes(data).Markdown()
func FromBytes(data []byte) *Extractor {
	return &Extractor{
		data:    data,
		hasData: true,
		options: defaultOptions(),
	}
}

// FromReader reads all of r and returns an Extractor over its content. A
// read error is reported by the first terminal operation.
//
// Example:
//
//	text, _, err := rtfimport.FromReader(os.Stdin).Text()
func FromReader(r io.Reader) *Extractor {
	data, err := io.ReadAll(r)
	e := FromBytes(data)
	if err != nil {
		e.err = fmt.Errorf("reading input: %w", err)
	}
	return e
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	data := rtfimport.Must(os.ReadFile("document.rtf"))
//	text := rtfimport.MustText(rtfimport.FromBytes(data).Text())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to Text(), Markdown() or
// Document() and panics if the error is non-nil. It discards warnings and
// returns just the value.
//
// Example:
//
//	text := rtfimport.MustText(rtfimport.Open("document.rtf").Text())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
