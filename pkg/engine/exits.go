package engine

import (
	"github.com/ovalle/asistego/pkg/model"
	"github.com/ovalle/asistego/pkg/sheets"
)

// MatchExits closes open ledger records against the raw log. For each open
// record, scanning starts at the record's own Entry event and moves forward
// through the log; the first Exit event for the same collaborator wins, and
// later duplicates in the same window are ignored. Records whose Entry event
// cannot be located are skipped and counted, never fatal. Returns the number
// of records closed.
func (e *Engine) MatchExits() (int, error) {
	ledgerTable, err := e.store.ReadTable(model.LedgerSheet)
	if err != nil {
		return 0, err
	}
	rawTable, err := e.store.ReadTable(model.RawLogSheet)
	if err != nil {
		return 0, err
	}

	records, err := model.LedgerFromTable(ledgerTable)
	if err != nil {
		return 0, err
	}
	events, err := model.RawEventsFromTable(rawTable)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		e.log.Info().Msg("ledger is empty, no exits to match")
		return 0, nil
	}

	// Cell addressing for the patch is header-driven; resolve the mutated
	// columns up front and abort the stage if any is missing.
	cols := make(map[string]int, 4)
	for _, col := range []string{
		model.ColExitTime, model.ColExitDate, model.ColDescription, model.ColExtratime,
	} {
		idx, err := ledgerTable.Col(col)
		if err != nil {
			return 0, err
		}
		cols[col] = idx
	}

	evIndex := eventIndex(events)
	rowIndex := ledgerRowIndex(records)

	var updates []sheets.CellUpdate
	closed, skipped := 0, 0

	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		if !rec.Open() {
			continue
		}

		pos, found := evIndex[rec.SourceID]
		if !found {
			skipped++
			e.log.Warn().
				Str("collaborator", rec.Collaborator).
				Str("source_id", rec.SourceID).
				Msg("entry event not found in raw log, leaving record open")
			continue
		}

		for _, ev := range events[pos:] {
			if ev.Stage != model.StageExit || ev.Collaborator != rec.Collaborator {
				continue
			}

			row, found := rowIndex[rec.LedgerID]
			if !found {
				skipped++
				e.log.Warn().
					Str("collaborator", rec.Collaborator).
					Str("ledger_id", rec.LedgerID).
					Msg("record has no addressable ledger row, leaving it open")
				break
			}

			extratime := model.OvertimeNo
			if ev.OvertimeCapture != "" {
				extratime = model.OvertimeYes
			}
			updates = append(updates,
				sheets.CellUpdate{Range: ledgerTable.CellRange(row, cols[model.ColExitTime]), Value: ev.Time},
				sheets.CellUpdate{Range: ledgerTable.CellRange(row, cols[model.ColExitDate]), Value: ev.Date},
				sheets.CellUpdate{Range: ledgerTable.CellRange(row, cols[model.ColDescription]), Value: ev.Description},
				sheets.CellUpdate{Range: ledgerTable.CellRange(row, cols[model.ColExtratime]), Value: extratime},
			)
			closed++
			break
		}
	}

	if len(updates) == 0 {
		e.log.Info().Int("skipped", skipped).Msg("no pending exits to close")
		return 0, nil
	}
	if err := e.store.BatchPatch(model.LedgerSheet, updates); err != nil {
		return 0, err
	}

	e.log.Info().Int("closed", closed).Int("skipped", skipped).Msg("closed pending exits")
	return closed, nil
}
