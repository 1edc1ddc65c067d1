package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ovalle/asistego/pkg/sheets"
)

// fakeStore is an in-memory stand-in for the spreadsheet. It applies appends
// and A1-addressed cell patches to its tables so consecutive stage runs see
// each other's writes, like the real store does.
type fakeStore struct {
	tables  map[string]*fakeTable
	appends int
	patches int
}

type fakeTable struct {
	header []string
	rows   [][]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{tables: map[string]*fakeTable{}}
}

func (s *fakeStore) setTable(name string, header []string, rows ...[]string) {
	s.tables[name] = &fakeTable{header: header, rows: rows}
}

func (s *fakeStore) ReadTable(name string) (*sheets.Table, error) {
	t, ok := s.tables[name]
	if !ok {
		return nil, &sheets.ReadError{Sheet: name, Err: fmt.Errorf("no such sheet")}
	}
	out := &sheets.Table{Name: name, Header: t.header}
	for _, row := range t.rows {
		padded := make([]string, len(t.header))
		copy(padded, row)
		out.Rows = append(out.Rows, padded)
	}
	return out, nil
}

func (s *fakeStore) Append(name string, rows [][]interface{}) error {
	t, ok := s.tables[name]
	if !ok {
		return &sheets.ReadError{Sheet: name, Err: fmt.Errorf("no such sheet")}
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		t.rows = append(t.rows, cells)
	}
	s.appends++
	return nil
}

func (s *fakeStore) BatchPatch(name string, updates []sheets.CellUpdate) error {
	t, ok := s.tables[name]
	if !ok {
		return &sheets.ReadError{Sheet: name, Err: fmt.Errorf("no such sheet")}
	}
	for _, u := range updates {
		sheet, ref, found := strings.Cut(u.Range, "!")
		if !found || sheet != name {
			return fmt.Errorf("bad cell range %q", u.Range)
		}
		col, row, err := parseA1(ref)
		if err != nil {
			return err
		}
		if row < 0 || row >= len(t.rows) || col >= len(t.header) {
			return fmt.Errorf("cell range %q out of bounds", u.Range)
		}
		for len(t.rows[row]) <= col {
			t.rows[row] = append(t.rows[row], "")
		}
		t.rows[row][col] = fmt.Sprint(u.Value)
	}
	s.patches++
	return nil
}

// parseA1 splits "C5" into a 0-based column and data row index (the sheet
// header occupies row 1).
func parseA1(ref string) (col, row int, err error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		col = col*26 + int(ref[i]-'A') + 1
		i++
	}
	if i == 0 {
		return 0, 0, fmt.Errorf("bad A1 reference %q", ref)
	}
	n, err := strconv.Atoi(ref[i:])
	if err != nil {
		return 0, 0, fmt.Errorf("bad A1 reference %q: %w", ref, err)
	}
	return col - 1, n - 2, nil
}

// cell reads one cell of a fake table by header name, padding-safe.
func (s *fakeStore) cell(name string, row int, column string) string {
	t := s.tables[name]
	for i, h := range t.header {
		if h == column {
			if row >= len(t.rows) || i >= len(t.rows[row]) {
				return ""
			}
			return t.rows[row][i]
		}
	}
	return ""
}
