package importer

import (
	"fmt"

	"github.com/tsawler/rtfimport/sprm"
)

const (
	// minCellWidth replaces zero widths after a positive one.
	minCellWidth = 41
	// minRowResize is the smallest difference to the widest row that
	// stretches the last cell.
	minRowResize = 23
)

func (imp *Importer) inNestedTableProps() bool {
	return imp.top().dest == DestNestedTableProperties
}

// cellX handles \cellxN: it closes the definition of a cell whose right
// edge is at n twips.
func (imp *Importer) cellX(n int) {
	st := imp.top()
	nested := imp.inNestedTableProps()
	current := &imp.topCellX
	if nested {
		current = &imp.nestedCellX
	}
	width := n - *current
	if width == 0 && n > 0 && *current == 0 {
		if ind := sprm.NestedAttribute(st.rowSprms, sprm.TblInd, sprm.WidthW); ind != nil {
			width = n - ind.Int()
		}
	}
	*current = n
	st.rowSprms.Set(sprm.GridCol, sprm.Int(width), sprm.Append)

	if nested {
		imp.nestedCellCount++
		imp.nestedCells.push(st.cellAttrs, st.cellSprms)
	} else {
		imp.topCellCount++
		imp.topCells.push(st.cellAttrs, st.cellSprms)
	}
	st.cellAttrs = imp.defaultState.cellAttrs.Clone()
	st.cellSprms = imp.defaultState.cellSprms.Clone()

	imp.intbl()
	if imp.cellxMax == 0 {
		var sprms sprm.Sprms
		sprms.Put(sprm.TblStart, sprm.Int(1))
		imp.sink.Props(NewProperties(sprm.Sprms{}, sprms))
	}
	imp.cellxMax = max(imp.cellxMax, n)
}

// intbl handles \intbl: content goes to the innermost table buffer.
func (imp *Importer) intbl() {
	st := imp.top()
	st.buffer = imp.tableBuffers[len(imp.tableBuffers)-1]
	st.paraSprms.Put(sprm.InTbl, sprm.Int(1))
}

// itap handles \itapN, the table nesting level of the paragraph.
func (imp *Importer) itap(n int) {
	st := imp.top()
	if n == 0 && (imp.topCellCount != 0 || imp.nestedCellCount != 0) {
		n = 1
	}
	st.paraSprms.Put(sprm.TblDepth, sprm.Int(n))
	for len(imp.tableBuffers) < n {
		imp.tableBuffers = append(imp.tableBuffers, &buffer{})
	}
	if n > 1 {
		st.buffer = imp.tableBuffers[len(imp.tableBuffers)-1]
	}
}

// cell handles \cell and \nestcell.
func (imp *Importer) cell() {
	imp.checkFirstRun()
	st := imp.top()
	buf := imp.tableBuffers[len(imp.tableBuffers)-1]
	if imp.needPap {
		// An empty cell still needs its paragraph and run properties.
		imp.bufferProperties(buf, st.paraAttrs, st.paraSprms, sprm.StyleTypeParagraph)
		imp.bufferProperties(buf, st.charAttrs, st.charSprms, sprm.StyleTypeCharacter)
	}
	buf.add(bufferEntry{kind: bufCellEnd})
	imp.needPap = true
	imp.afterCellBeforeRow = true
}

// row handles \row: the buffered cells of the row are replayed with their
// cell properties, followed by the row properties.
func (imp *Importer) row() {
	imp.checkFirstRun()
	st := imp.top()
	imp.afterCellBeforeRow = false

	if st.rowWidthAfter > 0 {
		st.rowSprms.Set(sprm.GridCol, sprm.Int(st.rowWidthAfter), sprm.Append)
		imp.cell()
		imp.topCellX += st.rowWidthAfter
		st.rowWidthAfter = 0
	}

	restored := false
	if imp.topCellX == 0 && imp.backupCellX != 0 {
		imp.restoreTableRowProperties()
		restored = true
	}

	if imp.cellxMax-imp.topCellX >= minRowResize {
		last := 0
		if v := st.rowSprms.FindLast(sprm.GridCol); v != nil {
			last = v.Int()
		}
		st.rowSprms.EraseLast(sprm.GridCol)
		st.rowSprms.Set(sprm.GridCol, sprm.Int(last+imp.cellxMax-imp.topCellX), sprm.Append)
		imp.topCellX = imp.cellxMax
	}

	if imp.topCellCount > 0 {
		imp.inheritCells = imp.topCells.clone()
		imp.inheritCellCount = imp.topCellCount
	} else {
		imp.topCells = imp.inheritCells.clone()
		imp.topCellCount = imp.inheritCellCount
	}

	if len(imp.tableBuffers) > 1 {
		imp.log.Warn("dropping unterminated nested tables", "depth", len(imp.tableBuffers))
		imp.tableBuffers = imp.tableBuffers[:1]
	}
	buf := imp.tableBuffers[0]
	imp.replayRowBuffer(buf, &imp.topCells, imp.topCellCount)

	// Cell defaults only last for one row.
	imp.defaultState.cellSprms.Clear()
	st.cellSprms = sprm.Sprms{}
	st.cellAttrs = imp.defaultState.cellAttrs.Clone()

	para, frame, rowProps := imp.prepareProperties(st, imp.topCellCount, imp.topCellX, imp.topTRLeft)
	imp.sendProperties(para, frame, rowProps)

	imp.needPap = true
	imp.needFinalPar = true
	buf.clear()
	imp.topCells.clear()
	imp.topCellCount = 0

	if restored {
		imp.resetTableRowProperties()
	}
}

// finishTables runs at the end of a stream. A row still waiting for its
// \row is closed, and content buffered outside of any row is sent as
// ordinary paragraphs. Afterwards no state refers to a table buffer.
func (imp *Importer) finishTables() {
	if imp.topCellCount > 0 && (!imp.tableBuffers[0].empty() || len(imp.tableBuffers) > 1) {
		imp.warn(ErrUnterminatedTable)
		imp.row()
	}

	for _, st := range imp.states {
		st.buffer = nil
		st.paraSprms.Erase(sprm.InTbl)
		st.paraSprms.Erase(sprm.TblDepth)
	}
	for _, buf := range imp.tableBuffers {
		if buf.empty() {
			continue
		}
		imp.warn(fmt.Errorf("%w: %d entries buffered after the last row", ErrUnterminatedTable, len(buf.entries)))
		imp.replayAsParagraphs(buf)
	}

	imp.tableBuffers = []*buffer{{}}
	imp.topCells.clear()
	imp.topCellCount = 0
	imp.nestedCells.clear()
	imp.nestedCellCount = 0
}

// replayAsParagraphs sends buffered content without table properties.
func (imp *Importer) replayAsParagraphs(buf *buffer) {
	for i := range buf.entries {
		if e := &buf.entries[i]; e.kind == bufProps {
			e.sprms.Erase(sprm.InTbl)
			e.sprms.Erase(sprm.TblDepth)
		}
	}
	needPap := imp.needPap
	imp.needPap = false
	for !buf.empty() {
		imp.replayBuffer(buf, nil, nil)
	}
	imp.needPap = needPap
}

// nestRow handles \nestrow: the nested row becomes one entry of the
// enclosing cell's buffer.
func (imp *Importer) nestRow() error {
	imp.checkFirstRun()
	st := imp.top()
	if len(imp.tableBuffers) == 1 || st.buffer == nil {
		return ErrWrongFormat
	}
	inner := imp.tableBuffers[len(imp.tableBuffers)-1]
	r := &rowBuffer{buf: inner, cells: imp.nestedCells.clone(), count: imp.nestedCellCount}
	r.para, r.frame, r.row = imp.prepareProperties(st, imp.nestedCellCount, imp.nestedCellX, imp.nestedTRLeft)

	outer := imp.tableBuffers[len(imp.tableBuffers)-2]
	for _, s := range imp.states {
		if s.buffer == inner {
			s.buffer = outer
		}
	}
	imp.tableBuffers = imp.tableBuffers[:len(imp.tableBuffers)-1]
	outer.add(bufferEntry{kind: bufNestRow, row: r})

	imp.nestedCells.clear()
	imp.nestedCellCount = 0
	imp.needPap = true
	return nil
}

// prepareProperties computes the paragraph, frame and row properties that
// close a table row.
func (imp *Importer) prepareProperties(st *parserState, cells, cellX, trLeft int) (para, frame, row *Properties) {
	para = imp.getProperties(st.paraAttrs, st.paraSprms, sprm.StyleTypeParagraph, false)
	if st.frame.inFrame() && st.frame.set {
		frame = NewProperties(sprm.Sprms{}, st.frame.sprms())
	}

	// The row sprms are reused for following rows; corrections apply to a
	// private copy.
	rowSprms := st.rowSprms.Clone()

	if !rowSprms.Has(sprm.TblW) {
		sprm.PutNestedAttribute(&rowSprms, sprm.TblW, sprm.WidthType, sprm.Int(sprm.WidthDxa))
		sprm.PutNestedAttribute(&rowSprms, sprm.TblW, sprm.WidthW, sprm.Int(cellX-trLeft))
	}

	var widths []int
	for _, e := range rowSprms.Entries() {
		if e.ID == sprm.GridCol {
			widths = append(widths, e.Value.Int())
		}
	}
	corrected := correctGridWidths(widths, trLeft)
	for i := range widths {
		if corrected[i] != widths[i] {
			rowSprms = replaceGridCols(rowSprms, corrected)
			break
		}
	}

	if trLeft != 0 && !rowSprms.Has(sprm.TblInd) {
		setTblInd(&rowSprms, trLeft)
	}
	if cells > 0 {
		rowSprms.Put(sprm.TblRow, sprm.Int(1))
	}
	if !rowSprms.Has(sprm.TblCellMar) {
		var attrs sprm.Sprms
		attrs.Put(sprm.WidthType, sprm.Int(sprm.WidthDxa))
		attrs.Put(sprm.WidthW, sprm.Int(0))
		sprm.PutNestedSprm(&rowSprms, sprm.TblCellMar, sprm.CellMarLeft, sprm.Props(attrs, sprm.Sprms{}))
		sprm.PutNestedSprm(&rowSprms, sprm.TblCellMar, sprm.CellMarRight, sprm.Props(attrs, sprm.Sprms{}))
	}
	row = NewProperties(st.rowAttrs, rowSprms)
	return para, frame, row
}

// correctGridWidths adjusts the cell widths of a row definition. A leading
// -1 marks a row reset and is kept. The first width is relative to the row
// indent. A zero width after a positive one gets the minimal cell width; a
// row of zero widths stays zero.
func correctGridWidths(widths []int, trLeft int) []int {
	out := append([]int(nil), widths...)
	i := 0
	if len(out) > 0 && out[0] == -1 {
		i = 1
	}
	seenFirst, seenPositive := false, false
	for ; i < len(out); i++ {
		v := out[i]
		if !seenFirst {
			v -= trLeft
			out[i] = v
			seenFirst = true
			if v > 0 {
				seenPositive = true
			}
			continue
		}
		if v > 0 {
			seenPositive = true
			continue
		}
		if seenPositive {
			out[i] = minCellWidth
		}
	}
	return out
}

// replaceGridCols returns s with its GridCol entries replaced by widths,
// in order.
func replaceGridCols(s sprm.Sprms, widths []int) sprm.Sprms {
	var out sprm.Sprms
	i := 0
	for _, e := range s.Entries() {
		if e.ID == sprm.GridCol && i < len(widths) {
			out.Set(e.ID, sprm.Int(widths[i]), sprm.Append)
			i++
			continue
		}
		out.Set(e.ID, e.Value.Clone(), sprm.Append)
	}
	return out
}

// setTblInd sets the table indent from \trleft, net of the left cell
// margin.
func setTblInd(s *sprm.Sprms, n int) {
	sprm.PutNestedAttribute(s, sprm.TblInd, sprm.WidthType, sprm.Int(sprm.WidthDxa))
	if mar := sprm.NestedSprm(*s, sprm.TblCellMar, sprm.CellMarLeft); mar != nil {
		if w := mar.Attributes().Find(sprm.WidthW); w != nil {
			n -= w.Int()
		}
	}
	sprm.PutNestedAttribute(s, sprm.TblInd, sprm.WidthW, sprm.Int(n))
}

func (imp *Importer) sendProperties(para, frame, row *Properties) {
	imp.sink.Props(para)
	if frame != nil {
		imp.sink.Props(frame)
	}
	imp.sink.Props(row)
	imp.tableBreak()
}

func (imp *Importer) backupTableRowProperties() {
	if imp.topCellX == 0 {
		return
	}
	st := imp.top()
	imp.backupRowSprms = st.rowSprms.Clone()
	imp.backupRowAttrs = st.rowAttrs.Clone()
	imp.backupCellX = imp.topCellX
}

func (imp *Importer) restoreTableRowProperties() {
	st := imp.top()
	st.rowSprms = imp.backupRowSprms.Clone()
	st.rowAttrs = imp.backupRowAttrs.Clone()
	imp.topCellX = imp.backupCellX
}

// resetTableRowProperties starts a new row definition. The -1 grid column
// marks the reset for the consumer.
func (imp *Importer) resetTableRowProperties() {
	st := imp.top()
	st.rowSprms = imp.defaultState.rowSprms.Clone()
	st.rowSprms.Set(sprm.GridCol, sprm.Int(-1), sprm.Append)
	st.rowAttrs = imp.defaultState.rowAttrs.Clone()
	if imp.inNestedTableProps() {
		imp.nestedTRLeft, imp.nestedCellX = 0, 0
	} else {
		imp.topTRLeft, imp.topCellX = 0, 0
	}
}

// trowd handles \trowd.
func (imp *Importer) trowd() {
	imp.backupTableRowProperties()
	imp.resetTableRowProperties()
	imp.needPap = true
}

// trLeft handles \trleftN.
func (imp *Importer) trLeft(n int) {
	if imp.inNestedTableProps() {
		imp.nestedTRLeft, imp.nestedCellX = n, n
	} else {
		imp.topTRLeft, imp.topCellX = n, n
	}
}

func widthValue(typ, w int) *sprm.Value {
	var attrs sprm.Sprms
	attrs.Put(sprm.WidthType, sprm.Int(typ))
	attrs.Put(sprm.WidthW, sprm.Int(w))
	return sprm.Props(attrs, sprm.Sprms{})
}

var cellMarginIDs = map[byte]sprm.ID{
	'l': sprm.CellMarLeft,
	'r': sprm.CellMarRight,
	't': sprm.CellMarTop,
	'b': sprm.CellMarBottom,
}

// tableFlag handles row and cell flags. It reports false for other
// keywords.
func (imp *Importer) tableFlag(name string) bool {
	st := imp.top()
	switch name {
	case "intbl":
		imp.intbl()
	case "trowd":
		imp.trowd()
	case "trql":
		st.rowSprms.Put(sprm.TblJc, sprm.Int(sprm.JcLeft))
	case "trqc":
		st.rowSprms.Put(sprm.TblJc, sprm.Int(sprm.JcCenter))
	case "trqr":
		st.rowSprms.Put(sprm.TblJc, sprm.Int(sprm.JcRight))
	case "trhdr":
		st.rowSprms.Put(sprm.TblHeader, sprm.Int(1))
	case "trkeep":
		st.rowSprms.Put(sprm.CantSplit, sprm.Int(1))
	case "ltrrow":
		st.rowSprms.Put(sprm.Bidi, sprm.Int(0))
	case "rtlrow":
		st.rowSprms.Put(sprm.Bidi, sprm.Int(1))
	case "clvmgf":
		st.cellSprms.Put(sprm.VMerge, sprm.Int(sprm.MergeRestart))
	case "clvmrg":
		st.cellSprms.Put(sprm.VMerge, sprm.Int(sprm.MergeContinue))
	case "clmgf":
		st.cellSprms.Put(sprm.HMerge, sprm.Int(sprm.MergeRestart))
	case "clmrg":
		st.cellSprms.Put(sprm.HMerge, sprm.Int(sprm.MergeContinue))
	case "clvertalt":
		st.cellSprms.Put(sprm.VAlign, sprm.Int(sprm.VAlignTop))
	case "clvertalc":
		st.cellSprms.Put(sprm.VAlign, sprm.Int(sprm.VAlignCenter))
	case "clvertalb":
		st.cellSprms.Put(sprm.VAlign, sprm.Int(sprm.VAlignBottom))
	case "cltxlrtb":
		st.cellSprms.Put(sprm.TextDirection, sprm.Int(sprm.TextDirLrTb))
	case "cltxtbrl":
		st.cellSprms.Put(sprm.TextDirection, sprm.Int(sprm.TextDirTbRl))
	case "cltxbtlr":
		st.cellSprms.Put(sprm.TextDirection, sprm.Int(sprm.TextDirBtLr))
	case "clNoWrap":
		st.cellSprms.Put(sprm.NoWrap, sprm.Int(1))
	default:
		return false
	}
	return true
}

// tableValue handles row and cell value keywords.
func (imp *Importer) tableValue(name string, n int) bool {
	st := imp.top()
	switch name {
	case "cellx":
		imp.cellX(n)
	case "itap":
		imp.itap(n)
	case "trleft":
		imp.trLeft(n)
	case "trgaph":
		if n > 0 {
			v := widthValue(sprm.WidthDxa, n)
			sprm.PutNestedSprmPolicy(&st.rowSprms, sprm.TblCellMar, sprm.CellMarLeft, v, sprm.Ignore)
			sprm.PutNestedSprmPolicy(&st.rowSprms, sprm.TblCellMar, sprm.CellMarRight, v.Clone(), sprm.Ignore)
		}
	case "trrh":
		rule := sprm.RuleAuto
		switch {
		case n > 0:
			rule = sprm.RuleAtLeast
		case n < 0:
			rule = sprm.RuleExact
		}
		sprm.PutNestedAttribute(&st.rowSprms, sprm.TrHeight, sprm.HeightVal, sprm.Int(abs(n)))
		sprm.PutNestedAttribute(&st.rowSprms, sprm.TrHeight, sprm.HeightRule, sprm.Int(rule))
	case "trwWidth":
		sprm.PutNestedAttribute(&st.rowSprms, sprm.TblW, sprm.WidthW, sprm.Int(n))
	case "trftsWidth":
		sprm.PutNestedAttribute(&st.rowSprms, sprm.TblW, sprm.WidthType, sprm.Int(n))
	case "trwWidthA":
		st.rowWidthAfter = n
	case "trpaddl", "trpaddr", "trpaddt", "trpaddb":
		sprm.PutNestedSprm(&st.rowSprms, sprm.TblCellMar, cellMarginIDs[name[6]], widthValue(sprm.WidthDxa, n))
	case "clwWidth":
		sprm.PutNestedAttribute(&st.cellSprms, sprm.TcW, sprm.WidthW, sprm.Int(n))
	case "clftsWidth":
		sprm.PutNestedAttribute(&st.cellSprms, sprm.TcW, sprm.WidthType, sprm.Int(n))
	case "clpadl", "clpadr", "clpadt", "clpadb":
		sprm.PutNestedSprm(&st.cellSprms, sprm.TcMar, cellMarginIDs[name[5]], widthValue(sprm.WidthDxa, n))
	case "clcbpat":
		sprm.PutNestedAttribute(&st.cellSprms, sprm.TcShd, sprm.ShdFill, sprm.Int(imp.color(n)))
	case "clcfpat":
		sprm.PutNestedAttribute(&st.cellSprms, sprm.TcShd, sprm.ShdColor, sprm.Int(imp.color(n)))
	case "clshdng":
		sprm.PutNestedAttribute(&st.cellSprms, sprm.TcShd, sprm.ShdVal, sprm.Int(n/100))
	case "tblind":
		sprm.PutNestedAttribute(&st.rowSprms, sprm.TblInd, sprm.WidthW, sprm.Int(n))
	case "tblindtype":
		sprm.PutNestedAttribute(&st.rowSprms, sprm.TblInd, sprm.WidthType, sprm.Int(n))
	case "trpaddfl", "trpaddfr", "trpaddft", "trpaddfb", "clpadfl", "clpadfr", "clpadft", "clpadfb",
		"trwWidthB", "trftsWidthB", "trftsWidthA":
		// Padding units are always twips here.
	default:
		return false
	}
	return true
}
