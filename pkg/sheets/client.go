package sheets

import (
	"fmt"

	gsheets "google.golang.org/api/sheets/v4"
)

// CellUpdate is one single-cell write inside a batched patch.
type CellUpdate struct {
	Range string
	Value interface{}
}

// Client is a Google Sheets client scoped to one spreadsheet.
type Client struct {
	srv           *gsheets.Service
	spreadsheetID string
}

// NewClient creates a sheet store client for the given spreadsheet.
func NewClient(srv *gsheets.Service, spreadsheetID string) *Client {
	return &Client{srv: srv, spreadsheetID: spreadsheetID}
}

// ReadTable reads a whole sheet and returns it as a padded Table. A sheet
// that exists but holds no rows yields an empty Table, not an error.
func (c *Client) ReadTable(name string) (*Table, error) {
	resp, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, name).Do()
	if err != nil {
		return nil, &ReadError{Sheet: name, Err: err}
	}

	t := &Table{Name: name}
	if len(resp.Values) == 0 {
		return t, nil
	}

	t.Header = stringRow(resp.Values[0])
	rows := make([][]string, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		rows = append(rows, stringRow(raw))
	}
	t.Rows = padRows(t.Header, rows)
	return t, nil
}

// Append writes rows after the last occupied row of column A.
func (c *Client) Append(name string, rows [][]interface{}) error {
	colA, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, fmt.Sprintf("%s!A:A", name)).Do()
	if err != nil {
		return &ReadError{Sheet: name, Err: err}
	}
	startRow := len(colA.Values) + 1

	_, err = c.srv.Spreadsheets.Values.Update(
		c.spreadsheetID,
		fmt.Sprintf("%s!A%d", name, startRow),
		&gsheets.ValueRange{Values: rows},
	).ValueInputOption("USER_ENTERED").Do()
	if err != nil {
		return fmt.Errorf("appending %d rows to %q: %w", len(rows), name, err)
	}
	return nil
}

// BatchPatch applies many single-cell writes as one atomic request.
func (c *Client) BatchPatch(name string, updates []CellUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	data := make([]*gsheets.ValueRange, 0, len(updates))
	for _, u := range updates {
		data = append(data, &gsheets.ValueRange{
			Range:  u.Range,
			Values: [][]interface{}{{u.Value}},
		})
	}

	_, err := c.srv.Spreadsheets.Values.BatchUpdate(c.spreadsheetID, &gsheets.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}).Do()
	if err != nil {
		return fmt.Errorf("batch patching %d cells in %q: %w", len(updates), name, err)
	}
	return nil
}

// Replace clears a sheet and rewrites it from A1, header included.
func (c *Client) Replace(name string, rows [][]interface{}) error {
	_, err := c.srv.Spreadsheets.Values.Clear(c.spreadsheetID, name, &gsheets.ClearValuesRequest{}).Do()
	if err != nil {
		return fmt.Errorf("clearing sheet %q: %w", name, err)
	}

	_, err = c.srv.Spreadsheets.Values.Update(
		c.spreadsheetID,
		fmt.Sprintf("%s!A1", name),
		&gsheets.ValueRange{Values: rows},
	).ValueInputOption("RAW").Do()
	if err != nil {
		return fmt.Errorf("rewriting sheet %q: %w", name, err)
	}
	return nil
}

// stringRow converts an API value row to strings. The values API hands back
// interface{} cells; everything in these sheets is text.
func stringRow(raw []interface{}) []string {
	row := make([]string, 0, len(raw))
	for _, v := range raw {
		row = append(row, fmt.Sprint(v))
	}
	return row
}
