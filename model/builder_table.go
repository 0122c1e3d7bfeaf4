package model

import (
	"github.com/tsawler/rtfimport/importer"
	"github.com/tsawler/rtfimport/sprm"
)

// tableBuild is a table whose rows are still arriving.
type tableBuild struct {
	table *Table
	// row holds the finished cells of the current row, cell the content of
	// the open cell.
	row    []Cell
	vmerge []int
	cell   []Element
	// above holds the vertical merge state of each column of the last row.
	above []int
}

// syncTables opens or closes tables until depth tables are open. A new
// table is added to the container it starts in.
func (b *Builder) syncTables(depth int) {
	for len(b.tables) > depth {
		b.closeTable()
	}
	for len(b.tables) < depth {
		t := &Table{Depth: len(b.tables) + 1}
		c := b.container()
		*c = append(*c, t)
		b.tables = append(b.tables, &tableBuild{table: t})
	}
}

// closeTable ends the innermost table. Cells of a row that never saw its
// row end are kept as a last row.
func (b *Builder) closeTable() {
	n := len(b.tables)
	tb := b.tables[n-1]
	if len(tb.cell) > 0 {
		tb.row = append(tb.row, Cell{Elements: tb.cell, RowSpan: 1, ColSpan: 1})
		tb.vmerge = append(tb.vmerge, 0)
		tb.cell = nil
	}
	if len(tb.row) > 0 {
		b.log.Debug("table row without row end", "cells", len(tb.row))
		b.finishRow(tb, nil)
	}
	b.tables = b.tables[:n-1]
}

// endCell closes the open cell of the innermost table.
func (b *Builder) endCell(p *importer.Properties) {
	n := len(b.tables)
	if n == 0 {
		b.log.Debug("cell end outside table")
		return
	}
	tb := b.tables[n-1]
	cell := Cell{Elements: tb.cell, RowSpan: 1, ColSpan: 1}
	tb.cell = nil
	vmerge := 0
	if p != nil {
		s := p.Sprms
		if v := s.Find(sprm.HMerge); v != nil && v.Int() == sprm.MergeContinue {
			cell.Merged = true
			for i := len(tb.row) - 1; i >= 0; i-- {
				if !tb.row[i].Merged {
					tb.row[i].ColSpan++
					break
				}
			}
		}
		if v := s.Find(sprm.VMerge); v != nil {
			vmerge = v.Int()
		}
		if w := sprm.NestedAttribute(s, sprm.TcW, sprm.WidthW); w != nil {
			cell.Width = TwipsToPoints(w.Int())
		}
		if f := sprm.NestedAttribute(s, sprm.TcShd, sprm.ShdFill); f != nil && f.Int() >= 0 {
			c := ColorFromRGB(f.Int())
			cell.Style.BackgroundColor = &c
		}
		if v := s.Find(sprm.VAlign); v != nil {
			switch v.Int() {
			case sprm.VAlignCenter:
				cell.Style.VerticalAlign = VAlignMiddle
			case sprm.VAlignBottom:
				cell.Style.VerticalAlign = VAlignBottom
			}
		}
	}
	tb.row = append(tb.row, cell)
	tb.vmerge = append(tb.vmerge, vmerge)
}

// endRow adds the finished row to the innermost table.
func (b *Builder) endRow(p *importer.Properties) {
	n := len(b.tables)
	if n == 0 {
		b.log.Debug("row end outside table")
		return
	}
	b.finishRow(b.tables[n-1], p)
}

func (b *Builder) finishRow(tb *tableBuild, p *importer.Properties) {
	row := tb.row
	var widths []float64
	header := false
	if p != nil {
		for _, e := range p.Sprms.Entries() {
			if e.ID == sprm.GridCol && e.Value.Int() >= 0 {
				widths = append(widths, TwipsToPoints(e.Value.Int()))
			}
		}
		header = flag(p.Sprms, sprm.TblHeader)
		if len(tb.table.Rows) == 0 {
			if ind := sprm.NestedAttribute(p.Sprms, sprm.TblInd, sprm.WidthW); ind != nil {
				tb.table.Indent = TwipsToPoints(ind.Int())
			}
		}
	}

	for j := range row {
		row[j].IsHeader = header
		if row[j].Width == 0 && j < len(widths) {
			row[j].Width = widths[j]
		}
		if tb.vmerge[j] == sprm.MergeContinue && j < len(tb.above) && tb.above[j] != 0 {
			row[j].Merged = true
			b.extendRowSpan(tb.table, j)
		}
	}
	if len(tb.table.Rows) == 0 {
		tb.table.Widths = widths
	}
	tb.table.Rows = append(tb.table.Rows, row)
	tb.above = tb.vmerge
	tb.row = nil
	tb.vmerge = nil
}

// extendRowSpan grows the span of the cell that starts the vertical merge
// reaching column col.
func (b *Builder) extendRowSpan(t *Table, col int) {
	for i := len(t.Rows) - 1; i >= 0; i-- {
		if col >= len(t.Rows[i]) {
			return
		}
		if !t.Rows[i][col].Merged {
			t.Rows[i][col].RowSpan++
			return
		}
	}
}
