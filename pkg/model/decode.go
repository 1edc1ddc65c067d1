package model

import (
	"github.com/ovalle/asistego/pkg/sheets"
)

// RawEventsFromTable decodes the raw log sheet. Row order is preserved: it is
// the only ordering the reconciliation stages rely on.
func RawEventsFromTable(t *sheets.Table) ([]RawEvent, error) {
	if t.Empty() {
		return nil, nil
	}

	cols, err := colIndexes(t, ColID, ColCollaborator, ColStage, ColDate, ColTime, ColDescription, ColOvertimeCapture)
	if err != nil {
		return nil, err
	}

	events := make([]RawEvent, 0, len(t.Rows))
	for i := range t.Rows {
		events = append(events, RawEvent{
			ID:              t.Cell(i, cols[ColID]),
			Collaborator:    t.Cell(i, cols[ColCollaborator]),
			Stage:           t.Cell(i, cols[ColStage]),
			Date:            t.Cell(i, cols[ColDate]),
			Time:            t.Cell(i, cols[ColTime]),
			Description:     t.Cell(i, cols[ColDescription]),
			OvertimeCapture: t.Cell(i, cols[ColOvertimeCapture]),
		})
	}
	return events, nil
}

// LedgerFromTable decodes the ledger sheet, carrying each record's data row
// index for later cell addressing.
func LedgerFromTable(t *sheets.Table) ([]LedgerRecord, error) {
	if t.Empty() {
		return nil, nil
	}

	cols, err := colIndexes(t,
		ColLedgerID, ColCollaborator, ColEntryTime, ColEntryDate,
		ColExitTime, ColExitDate, ColDescription, ColExtratime,
		ColMinutes, ColRegularMinutes, ColOvertimeMinutes, ColSourceID)
	if err != nil {
		return nil, err
	}

	records := make([]LedgerRecord, 0, len(t.Rows))
	for i := range t.Rows {
		records = append(records, LedgerRecord{
			Row:             i,
			LedgerID:        t.Cell(i, cols[ColLedgerID]),
			Collaborator:    t.Cell(i, cols[ColCollaborator]),
			EntryTime:       t.Cell(i, cols[ColEntryTime]),
			EntryDate:       t.Cell(i, cols[ColEntryDate]),
			ExitTime:        t.Cell(i, cols[ColExitTime]),
			ExitDate:        t.Cell(i, cols[ColExitDate]),
			Description:     t.Cell(i, cols[ColDescription]),
			Extratime:       t.Cell(i, cols[ColExtratime]),
			TotalMinutes:    t.Cell(i, cols[ColMinutes]),
			RegularMinutes:  t.Cell(i, cols[ColRegularMinutes]),
			OvertimeMinutes: t.Cell(i, cols[ColOvertimeMinutes]),
			SourceID:        t.Cell(i, cols[ColSourceID]),
		})
	}
	return records, nil
}

// ScheduleRulesFromTable decodes the weekly schedule sheet.
func ScheduleRulesFromTable(t *sheets.Table) ([]ScheduleRule, error) {
	if t.Empty() {
		return nil, nil
	}

	cols, err := colIndexes(t, ColCollaborator, ColScheduleDays, ColWindowStart, ColWindowEnd)
	if err != nil {
		return nil, err
	}

	rules := make([]ScheduleRule, 0, len(t.Rows))
	for i := range t.Rows {
		rules = append(rules, ScheduleRule{
			Collaborator: t.Cell(i, cols[ColCollaborator]),
			Days:         t.Cell(i, cols[ColScheduleDays]),
			WindowStart:  t.Cell(i, cols[ColWindowStart]),
			WindowEnd:    t.Cell(i, cols[ColWindowEnd]),
		})
	}
	return rules, nil
}

// LedgerAppendRow builds a full-width ledger row for a freshly ingested
// record, positioned by the target sheet's header so column reordering in
// the spreadsheet cannot corrupt appended data.
func (r LedgerRecord) LedgerAppendRow(header []string) []interface{} {
	row := make([]interface{}, len(header))
	for i := range row {
		row[i] = ""
	}
	for i, name := range header {
		switch name {
		case ColLedgerID:
			row[i] = r.LedgerID
		case ColCollaborator:
			row[i] = r.Collaborator
		case ColEntryTime:
			row[i] = r.EntryTime
		case ColEntryDate:
			row[i] = r.EntryDate
		case ColSourceID:
			row[i] = r.SourceID
		}
	}
	return row
}

// colIndexes resolves every named column up front so a missing header fails
// before any row is interpreted.
func colIndexes(t *sheets.Table, names ...string) (map[string]int, error) {
	cols := make(map[string]int, len(names))
	for _, name := range names {
		idx, err := t.Col(name)
		if err != nil {
			return nil, err
		}
		cols[name] = idx
	}
	return cols, nil
}
