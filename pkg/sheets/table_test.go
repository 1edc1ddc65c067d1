package sheets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadRows(t *testing.T) {
	header := []string{"A", "B", "C"}
	rows := padRows(header, [][]string{
		{"1"},
		{"1", "2", "3"},
		{},
	})

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"1", "", ""}, rows[0])
	assert.Equal(t, []string{"1", "2", "3"}, rows[1])
	assert.Equal(t, []string{"", "", ""}, rows[2])
}

func TestTableCol(t *testing.T) {
	table := &Table{
		Name:   "REGISTRO_CALENDARIO",
		Header: []string{"Colaborador", "HoraEntrada", "HoraSalida"},
	}

	idx, err := table.Col("HoraSalida")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	_, err = table.Col("Minutos")
	var cerr *ColumnNotFoundError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "REGISTRO_CALENDARIO", cerr.Sheet)
	assert.Equal(t, "Minutos", cerr.Column)
}

func TestColumnLetter(t *testing.T) {
	assert.Equal(t, "A", ColumnLetter(0))
	assert.Equal(t, "N", ColumnLetter(13))
	assert.Equal(t, "Z", ColumnLetter(25))
	assert.Equal(t, "AA", ColumnLetter(26))
	assert.Equal(t, "AB", ColumnLetter(27))
}

func TestCellRange(t *testing.T) {
	table := &Table{Name: "REGISTRO_CALENDARIO"}
	// Data row 0 lives on sheet row 2, below the header.
	assert.Equal(t, "REGISTRO_CALENDARIO!C2", table.CellRange(0, 2))
	assert.Equal(t, "REGISTRO_CALENDARIO!H11", table.CellRange(9, 7))
}
