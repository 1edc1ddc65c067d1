package engine

import (
	"github.com/google/uuid"

	"github.com/ovalle/asistego/pkg/model"
)

// Ingest scans the raw log for events not yet reflected in the ledger and
// appends one open ledger record per new Entry event, in a single append.
// The last ledger record's source event ID anchors where scanning resumes,
// so events already ingested are never reprocessed. Returns the number of
// records appended.
func (e *Engine) Ingest() (int, error) {
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
	if len(events) == 0 {
		e.log.Info().Msg("raw log is empty, nothing to ingest")
		return 0, nil
	}

	start := 0
	if len(records) > 0 {
		anchor := records[len(records)-1].SourceID
		if pos, found := eventIndex(events)[anchor]; found {
			start = pos + 1
		} else {
			// Degraded fallback for edited history: resume at the ledger's
			// own row count. This can reprocess or skip events.
			start = len(records)
			if start > len(events) {
				start = len(events)
			}
			e.log.Warn().
				Str("anchor", anchor).
				Int("fallback_offset", start).
				Msg("resume anchor not found in raw log, using row-count heuristic")
		}
	}

	var appended []model.LedgerRecord
	for _, ev := range events[start:] {
		if ev.Stage != model.StageEntry {
			continue
		}
		appended = append(appended, model.LedgerRecord{
			LedgerID:     uuid.NewString(),
			Collaborator: ev.Collaborator,
			EntryTime:    ev.Time,
			EntryDate:    ev.Date,
			SourceID:     ev.ID,
		})
	}
	if len(appended) == 0 {
		e.log.Info().Msg("no new entry events")
		return 0, nil
	}

	// The append is positioned by the ledger header; verify the columns we
	// write are actually present before touching the sheet.
	for _, col := range []string{
		model.ColLedgerID, model.ColCollaborator, model.ColEntryTime,
		model.ColEntryDate, model.ColSourceID,
	} {
		if _, err := ledgerTable.Col(col); err != nil {
			return 0, err
		}
	}

	rows := make([][]interface{}, 0, len(appended))
	for _, rec := range appended {
		rows = append(rows, rec.LedgerAppendRow(ledgerTable.Header))
	}
	if err := e.store.Append(model.LedgerSheet, rows); err != nil {
		return 0, err
	}

	e.log.Info().Int("records", len(appended)).Msg("ingested new entries")
	return len(appended), nil
}
