package rtftok

// Lookahead scans the group that starts at offset and reports whether it
// contains table markup (\trowd, \intbl or \row) and a multi-column section
// (\cols greater than 1). The tokenizer position and depth are restored
// afterwards.
func (t *Tokenizer) Lookahead(offset int64) (hasTable, hasColumns bool) {
	savedPos, savedDepth, savedLead := t.pos, t.depth, t.leadByte
	defer func() {
		t.pos, t.depth, t.leadByte = savedPos, savedDepth, savedLead
	}()

	t.Seek(offset)
	t.depth = 0
	t.leadByte = nil
	started := false
	for {
		tok, err := t.Next()
		if err != nil {
			return hasTable, hasColumns
		}
		switch tok.Type {
		case TokenGroupOpen:
			started = true
		case TokenGroupClose:
			if t.depth == 0 {
				return hasTable, hasColumns
			}
		case TokenKeyword:
			switch tok.Name {
			case "trowd", "intbl", "row":
				hasTable = true
			case "cols":
				if tok.HasParam && tok.Param > 1 {
					hasColumns = true
				}
			}
		}
		if !started {
			return hasTable, hasColumns
		}
		if hasTable && hasColumns {
			return hasTable, hasColumns
		}
	}
}
