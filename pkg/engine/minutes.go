package engine

import (
	"github.com/ovalle/asistego/pkg/model"
	"github.com/ovalle/asistego/pkg/schedule"
	"github.com/ovalle/asistego/pkg/sheets"
	"github.com/ovalle/asistego/pkg/timeparse"
)

// minutesPerDay corrects an exit recorded past midnight relative to its entry.
const minutesPerDay = 24 * 60

// ComputeMinutes fills worked-minute totals for closed records that have not
// been computed yet. Totals are split into regular and overtime minutes
// against the collaborator's schedule window for the entry date; without a
// matching schedule all minutes count as regular. A record is computed at
// most once: anything already carrying total minutes is skipped, and records
// with unparseable times or dates are skipped without failing the batch.
// Returns the number of records updated.
func (e *Engine) ComputeMinutes() (int, error) {
	ledgerTable, err := e.store.ReadTable(model.LedgerSheet)
	if err != nil {
		return 0, err
	}
	scheduleTable, err := e.store.ReadTable(model.ScheduleSheet)
	if err != nil {
		return 0, err
	}

	records, err := model.LedgerFromTable(ledgerTable)
	if err != nil {
		return 0, err
	}
	rules, err := model.ScheduleRulesFromTable(scheduleTable)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		e.log.Info().Msg("ledger is empty, no minutes to compute")
		return 0, nil
	}

	cols := make(map[string]int, 3)
	for _, col := range []string{
		model.ColMinutes, model.ColRegularMinutes, model.ColOvertimeMinutes,
	} {
		idx, err := ledgerTable.Col(col)
		if err != nil {
			return 0, err
		}
		cols[col] = idx
	}

	resolver := schedule.NewResolver(rules, e.log)
	rowIndex := ledgerRowIndex(records)

	var updates []sheets.CellUpdate
	computed, skipped := 0, 0

	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		if !rec.NeedsMinutes() {
			continue
		}

		entry, ok, err := timeparse.Parse(rec.EntryTime)
		if err != nil || !ok {
			skipped++
			e.log.Warn().Err(err).
				Str("collaborator", rec.Collaborator).
				Str("entry_time", rec.EntryTime).
				Msg("skipping record with unparseable entry time")
			continue
		}
		exit, ok, err := timeparse.Parse(rec.ExitTime)
		if err != nil || !ok {
			skipped++
			e.log.Warn().Err(err).
				Str("collaborator", rec.Collaborator).
				Str("exit_time", rec.ExitTime).
				Msg("skipping record with unparseable exit time")
			continue
		}

		raw := exit.Minutes() - entry.Minutes()
		if raw < 0 {
			// Exit past midnight relative to entry.
			raw += minutesPerDay
		}

		entryDate, err := model.ParseDate(rec.EntryDate)
		if err != nil {
			skipped++
			e.log.Warn().Err(err).
				Str("collaborator", rec.Collaborator).
				Str("entry_date", rec.EntryDate).
				Msg("skipping record with unparseable entry date")
			continue
		}

		overtime := 0
		if window, found := resolver.Resolve(rec.Collaborator, entryDate); found {
			if d := window.Start.Minutes() - entry.Minutes(); d > 0 {
				overtime += d
			}
			if d := exit.Minutes() - window.End.Minutes(); d > 0 {
				overtime += d
			}
		}
		regular := raw - overtime

		row, found := rowIndex[rec.LedgerID]
		if !found {
			skipped++
			e.log.Warn().
				Str("collaborator", rec.Collaborator).
				Str("ledger_id", rec.LedgerID).
				Msg("record has no addressable ledger row, leaving minutes empty")
			continue
		}

		updates = append(updates,
			sheets.CellUpdate{Range: ledgerTable.CellRange(row, cols[model.ColMinutes]), Value: raw},
			sheets.CellUpdate{Range: ledgerTable.CellRange(row, cols[model.ColRegularMinutes]), Value: regular},
			sheets.CellUpdate{Range: ledgerTable.CellRange(row, cols[model.ColOvertimeMinutes]), Value: overtime},
		)
		computed++
	}

	if len(updates) == 0 {
		e.log.Info().Int("skipped", skipped).Msg("no minute computations pending")
		return 0, nil
	}
	if err := e.store.BatchPatch(model.LedgerSheet, updates); err != nil {
		return 0, err
	}

	e.log.Info().Int("computed", computed).Int("skipped", skipped).Msg("computed worked minutes")
	return computed, nil
}
