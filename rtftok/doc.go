// Package rtftok provides the lexical layer of the RTF importer.
//
// The [Tokenizer] splits an RTF byte stream into tokens: group delimiters,
// control words with their optional numeric parameter, hex escapes, raw
// binary blocks and literal text runs. It keeps track of the group depth and
// reports unbalanced input with sentinel errors.
//
// # Keywords
//
// Control words are classified with a static table (see [Lookup]) into
// flags, destinations, symbols, toggles and values. Unknown control words are
// still returned, with kind [KindUnknown], so the caller can decide whether to
// skip the surrounding destination.
//
// # Positions
//
// The whole input is held in memory. [Tokenizer.Offset] and [Tokenizer.Seek]
// allow a caller to jump to a recorded group start and come back, which is
// how headers, footers and footnotes are imported after the fact.
//
//	tok := rtftok.New(data)
//	for {
//		t, err := tok.Next()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		// handle t
//	}
package rtftok
