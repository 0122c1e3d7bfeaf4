package importer

import (
	"errors"
	"fmt"

	"github.com/tsawler/rtfimport/rtftok"
)

// Sentinel errors. The tokenizer errors are re-exported so callers only need
// this package.
var (
	ErrGroupUnderflow     = rtftok.ErrGroupUnderflow
	ErrGroupOverflow      = rtftok.ErrGroupOverflow
	ErrUnexpectedEOF      = rtftok.ErrUnexpectedEOF
	ErrHexInvalid         = rtftok.ErrHexInvalid
	ErrTrailingCharacters = rtftok.ErrTrailingCharacters

	// ErrClassificationBlocked is reported when pasted content carries a
	// classification that may not be inserted into the target document.
	ErrClassificationBlocked = errors.New("rtf: classification blocks insertion")

	// ErrWrongFormat is reported for structurally impossible input, such as
	// more \nestrow than nested table levels.
	ErrWrongFormat = errors.New("rtf: wrong format")

	// ErrUnterminatedTable is reported when the document ends inside a
	// table row. The buffered content is still emitted.
	ErrUnterminatedTable = errors.New("rtf: unterminated table row")

	// ErrOrphanCell is reported for a \cell without a matching \cellx.
	ErrOrphanCell = errors.New("rtf: table cell without cell definition")
)

// ParseError reports a fatal error together with the input offset where it
// was detected.
type ParseError struct {
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rtf import failed at offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// fatal reports whether err aborts the import.
func fatal(err error) bool {
	switch {
	case errors.Is(err, ErrGroupUnderflow),
		errors.Is(err, ErrTrailingCharacters),
		errors.Is(err, ErrClassificationBlocked),
		errors.Is(err, ErrUnterminatedTable),
		errors.Is(err, ErrOrphanCell):
		return false
	}
	return true
}
