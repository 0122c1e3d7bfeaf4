// Package model is the document tree produced from an imported RTF stream.
//
// A [Builder] receives the event stream of an importer and assembles a
// [Document]:
//
//	b := model.NewBuilder(logger)
//	if err := importer.New(data, importer.Options{}).Resolve(b); err != nil {
//		return err
//	}
//	doc := b.Document()
//
// Formatting arrives from the importer with style-defined values removed, so
// the builder merges the paragraph and character style chains back in before
// it decides on emphasis, headings and list labels.
//
// # Structure
//
// A [Document] holds [Section] values, each with its page geometry, headers
// and footers, and a list of [Element] values:
//
//   - [Paragraph] - a run list with alignment and bookmarks
//   - [Heading] - a paragraph with an outline level or heading style
//   - [List] - consecutive numbered or bulleted paragraphs of one list
//   - [Table] - rows of [Cell] values, with spans from merged cells
//   - [Shape] - a floating drawing, text box or embedded object
//
// Footnotes, endnotes and comments are collected on the document and
// referenced from runs.
//
// # Export
//
// [Document.ExtractText], [Document.ToMarkdown] and [Document.ToHTML] render
// the tree. Tables also export as Markdown and CSV on their own.
package model
