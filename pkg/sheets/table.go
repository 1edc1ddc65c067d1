package sheets

import "fmt"

// Table is an in-memory snapshot of one sheet: a header row plus data rows.
// Rows are right-padded to the header width, so every column lookup that
// succeeds against the header is a valid index into every row.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Col resolves a column name against the header. Cell addressing is
// header-driven everywhere, so a missing column makes any write against this
// table unsafe and the caller must abort its stage.
func (t *Table) Col(name string) (int, error) {
	for i, h := range t.Header {
		if h == name {
			return i, nil
		}
	}
	return 0, &ColumnNotFoundError{Sheet: t.Name, Column: name}
}

// Cell returns the value at (data row, column). Rows are padded at read time,
// so this never goes out of bounds for a valid header column.
func (t *Table) Cell(row, col int) string {
	return t.Rows[row][col]
}

// CellRange builds an A1 reference for a single cell of this sheet.
// row is the 0-based data row index; the sheet row number accounts for the
// header occupying row 1.
func (t *Table) CellRange(row, col int) string {
	return fmt.Sprintf("%s!%s%d", t.Name, ColumnLetter(col), row+2)
}

// ColumnLetter converts a 0-based column index to its A1 letter form
// (A, B, ..., Z, AA, AB, ...).
func ColumnLetter(idx int) string {
	letters := ""
	for idx >= 0 {
		letters = string(rune('A'+idx%26)) + letters
		idx = idx/26 - 1
	}
	return letters
}

// padRows right-pads every row with empty strings to the header width.
// Trailing blank cells are omitted by the backing store.
func padRows(header []string, rows [][]string) [][]string {
	width := len(header)
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) < width {
			padded := make([]string, width)
			copy(padded, row)
			row = padded
		}
		out = append(out, row)
	}
	return out
}
