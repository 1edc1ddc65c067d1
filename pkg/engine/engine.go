// Package engine reconciles raw clock-in/clock-out events into paired
// attendance intervals and derives worked-minute totals. It runs as three
// batch stages over the full ledger state: ingestion of new entry events,
// matching of pending exits, and minute computation. Each stage reads its
// sheets once, computes in memory, and issues at most one batched write.
package engine

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/ovalle/asistego/pkg/model"
	"github.com/ovalle/asistego/pkg/sheets"
)

// Store is the tabular store surface the engine needs. *sheets.Client
// implements it against Google Sheets; tests use an in-memory fake.
type Store interface {
	ReadTable(name string) (*sheets.Table, error)
	Append(name string, rows [][]interface{}) error
	BatchPatch(name string, updates []sheets.CellUpdate) error
}

// Engine runs the reconciliation stages against one attendance spreadsheet.
// It is not safe for concurrent invocations over the same ledger: the
// resume-anchor scheme has no locking, so overlapping runs can double-ingest.
type Engine struct {
	store Store
	log   zerolog.Logger
}

// New creates an engine over a store.
func New(store Store, log zerolog.Logger) *Engine {
	return &Engine{store: store, log: log}
}

// Summary aggregates what one full run changed.
type Summary struct {
	Ingested int
	Closed   int
	Computed int
}

// Run executes ingestion, exit matching and minute computation in order.
// A failed stage does not stop the later ones (they operate on still-empty
// target fields and stay safe); all failures are joined into one error.
func (e *Engine) Run() (Summary, error) {
	var s Summary
	var errs []error

	n, err := e.Ingest()
	if err != nil {
		e.log.Error().Err(err).Msg("ingestion failed")
		errs = append(errs, err)
	}
	s.Ingested = n

	n, err = e.MatchExits()
	if err != nil {
		e.log.Error().Err(err).Msg("exit matching failed")
		errs = append(errs, err)
	}
	s.Closed = n

	n, err = e.ComputeMinutes()
	if err != nil {
		e.log.Error().Err(err).Msg("minute computation failed")
		errs = append(errs, err)
	}
	s.Computed = n

	e.log.Info().
		Int("ingested", s.Ingested).
		Int("closed", s.Closed).
		Int("computed", s.Computed).
		Msg("reconciliation pass finished")
	return s, errors.Join(errs...)
}

// eventIndex maps raw event IDs to row offsets in log order. When an ID
// appears more than once the latest occurrence wins, matching a backward
// scan from the log tail.
func eventIndex(events []model.RawEvent) map[string]int {
	idx := make(map[string]int, len(events))
	for i, ev := range events {
		idx[ev.ID] = i
	}
	return idx
}

// ledgerRowIndex maps ledger IDs to data row offsets. The first occurrence
// wins, matching a top-down row search. Records without a ledger ID are
// unaddressable for patching and stay out of the index.
func ledgerRowIndex(records []model.LedgerRecord) map[string]int {
	idx := make(map[string]int, len(records))
	for _, rec := range records {
		if rec.LedgerID == "" {
			continue
		}
		if _, seen := idx[rec.LedgerID]; !seen {
			idx[rec.LedgerID] = rec.Row
		}
	}
	return idx
}
