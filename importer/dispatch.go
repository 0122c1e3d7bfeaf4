package importer

import (
	"github.com/tsawler/rtfimport/rtftok"
)

// dispatchKeyword routes a control word to the handler of its kind.
// Handlers report whether they knew the keyword; an unknown keyword after
// \* skips the rest of its group.
func (imp *Importer) dispatchKeyword(tok rtftok.Token) error {
	st := imp.top()

	if tok.Name == "ud" && st.uprAlt {
		st.dest = st.uprDest
		st.uprAlt = false
		return nil
	}
	if st.dest == DestSkip {
		imp.skipUnknown = false
		return nil
	}
	if tok.Name == "*" {
		imp.skipUnknown = true
		return nil
	}

	var (
		handled bool
		err     error
	)
	switch tok.Kind {
	case rtftok.KindDestination:
		imp.checkUnicode(true, true)
		handled = imp.dispatchDestination(tok)
		if !handled {
			st.dest = DestSkip
			handled = true
		}
	case rtftok.KindFlag:
		imp.prepareKeyword(tok.Name)
		handled = imp.dispatchFlag(tok.Name)
	case rtftok.KindSymbol:
		imp.prepareKeyword(tok.Name)
		handled, err = imp.dispatchSymbol(tok.Name)
	case rtftok.KindToggle:
		imp.prepareKeyword(tok.Name)
		handled = imp.dispatchToggle(tok.Name, !tok.HasParam || tok.Param != 0)
	case rtftok.KindValue:
		imp.prepareKeyword(tok.Name)
		handled = imp.dispatchValue(tok.Name, tok.Param)
	}

	if !handled {
		imp.log.Debug("unhandled keyword", "keyword", tok.Name, "kind", tok.Kind, "dest", st.dest)
		if imp.skipUnknown {
			st.dest = DestSkip
		}
	}
	imp.skipUnknown = false
	return err
}

// prepareKeyword opens a section when needed and flushes pending text
// before a formatting keyword takes effect. \u keeps the pending bytes so
// that the Unicode characters it adds decode in order.
func (imp *Importer) prepareKeyword(name string) {
	imp.setNeedSect(true)
	if name == "u" {
		imp.checkUnicode(false, true)
		return
	}
	imp.checkUnicode(true, true)
}
