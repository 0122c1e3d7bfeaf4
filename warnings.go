package rtfimport

import (
	"errors"
	"strings"

	"github.com/tsawler/rtfimport/importer"
)

// Warning is a non-fatal problem met during an import. The content was
// extracted but may be incomplete.
type Warning struct {
	Message string
	// Err is the underlying error, for use with errors.Is.
	Err error
}

func (w Warning) String() string { return w.Message }

// Unwrap returns the underlying error.
func (w Warning) Unwrap() error { return w.Err }

// Blocked reports whether the warning is a classification block, meaning
// the document's user properties were not taken over.
func (w Warning) Blocked() bool {
	return errors.Is(w.Err, importer.ErrClassificationBlocked)
}

func newWarning(prefix string, err error) Warning {
	msg := err.Error()
	if prefix != "" {
		msg = prefix + ": " + msg
	}
	return Warning{Message: msg, Err: err}
}

// FormatWarnings joins warning messages with "; ".
//
// Example:
//
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", rtfimport.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	msgs := make([]string, len(warnings))
	for i, w := range warnings {
		msgs[i] = w.Message
	}
	return strings.Join(msgs, "; ")
}
