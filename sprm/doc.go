// Package sprm provides the property tree exchanged between the RTF importer
// and a document builder.
//
// A property is identified by an [ID] and carries a [Value]. A value is either
// a scalar (int, string, bytes or an opaque handle) or a pair of nested
// property lists: attributes and sprms. [Sprms] is an ordered list of
// (ID, Value) entries with copy-on-write sharing, so that nested RTF groups can
// inherit the formatting of their parent without copying it eagerly.
//
// # Sharing
//
// Plain assignment of a Sprms aliases the same storage. Use [Sprms.Clone] to
// take a copy that is forked lazily on the first write:
//
//	child := parent.Clone()
//	child.Set(sprm.Bold, sprm.Int(1), sprm.Overwrite) // parent is unchanged
//
// # Deduplication
//
// [Sprms.CloneAndDeduplicate] removes the properties that a style already
// provides and adds explicit defaults for properties the style sets but the
// direct formatting does not. [DuplicateList] and [DeduplicateList] do the
// same for list level indents.
package sprm
