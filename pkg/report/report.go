// Package report produces payday attendance summaries. On a collaborator's
// payday it totals their ledger records over the payment period and appends
// one summary row to the summary sheet. Spreadsheet-to-document export and
// mail delivery happen outside this system.
package report

import (
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/ovalle/asistego/pkg/model"
	"github.com/ovalle/asistego/pkg/sheets"
)

// Store is the sheet surface this pass needs.
type Store interface {
	ReadTable(name string) (*sheets.Table, error)
	Append(name string, rows [][]interface{}) error
}

// Summary is one collaborator's totals over a payment period.
type Summary struct {
	Collaborator   string
	Payday         string
	PeriodStart    string
	PeriodEnd      string
	Records        int
	TotalMinutes   int
	RegularMinutes int
	Overtime       int
}

// Reporter builds payday summaries from the payment status sheet and ledger.
type Reporter struct {
	store Store
	log   zerolog.Logger
}

// New creates a payday reporter.
func New(store Store, log zerolog.Logger) *Reporter {
	return &Reporter{store: store, log: log}
}

// Run summarizes every collaborator whose payday is today and appends the
// summaries to the summary sheet. A day without paydays is a success no-op.
// Returns the summaries written. Any failure is logged here before it
// propagates.
func (r *Reporter) Run(now time.Time) ([]Summary, error) {
	summaries, err := r.run(now)
	if err != nil {
		r.log.Error().Err(err).Msg("payday report pass failed")
	}
	return summaries, err
}

func (r *Reporter) run(now time.Time) ([]Summary, error) {
	status, err := r.store.ReadTable(model.PaymentStatusSheet)
	if err != nil {
		return nil, err
	}
	ledgerTable, err := r.store.ReadTable(model.LedgerSheet)
	if err != nil {
		return nil, err
	}
	records, err := model.LedgerFromTable(ledgerTable)
	if err != nil {
		return nil, err
	}

	if status.Empty() {
		r.log.Info().Msg("payment status sheet is empty, no reports to build")
		return nil, nil
	}

	cols := map[string]int{}
	for _, col := range []string{
		model.ColCollaborator, model.ColPeriodStart, model.ColPeriodEnd, model.ColPayday,
	} {
		idx, err := status.Col(col)
		if err != nil {
			return nil, err
		}
		cols[col] = idx
	}

	today := now.Format("02/01/2006")
	var summaries []Summary
	for i := range status.Rows {
		if status.Cell(i, cols[model.ColPayday]) != today {
			continue
		}

		s := Summary{
			Collaborator: status.Cell(i, cols[model.ColCollaborator]),
			Payday:       today,
			PeriodStart:  status.Cell(i, cols[model.ColPeriodStart]),
			PeriodEnd:    status.Cell(i, cols[model.ColPeriodEnd]),
		}

		periodStart, err := model.ParseDate(s.PeriodStart)
		if err != nil {
			r.log.Warn().Err(err).
				Str("collaborator", s.Collaborator).
				Msg("skipping payday with unparseable period start")
			continue
		}
		periodEnd, err := model.ParseDate(s.PeriodEnd)
		if err != nil {
			r.log.Warn().Err(err).
				Str("collaborator", s.Collaborator).
				Msg("skipping payday with unparseable period end")
			continue
		}

		for _, rec := range records {
			if rec.Collaborator != s.Collaborator {
				continue
			}
			entryDate, err := model.ParseDate(rec.EntryDate)
			if err != nil || entryDate.Before(periodStart) || entryDate.After(periodEnd) {
				continue
			}
			s.Records++
			s.TotalMinutes += atoiOrZero(rec.TotalMinutes)
			s.RegularMinutes += atoiOrZero(rec.RegularMinutes)
			s.Overtime += atoiOrZero(rec.OvertimeMinutes)
		}

		if s.Records == 0 {
			r.log.Warn().
				Str("collaborator", s.Collaborator).
				Str("period_start", s.PeriodStart).
				Str("period_end", s.PeriodEnd).
				Msg("no attendance records in payment period")
			continue
		}
		summaries = append(summaries, s)
	}

	if len(summaries) == 0 {
		r.log.Info().Str("date", today).Msg("no payday summaries for today")
		return nil, nil
	}

	rows := make([][]interface{}, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []interface{}{
			s.Collaborator, s.Payday, s.PeriodStart, s.PeriodEnd,
			s.Records, s.TotalMinutes, s.RegularMinutes, s.Overtime,
		})
	}
	if err := r.store.Append(model.SummarySheet, rows); err != nil {
		return nil, err
	}

	r.log.Info().Int("summaries", len(summaries)).Msg("payday summaries appended")
	return summaries, nil
}

// atoiOrZero reads a ledger minute cell; records the calculator has not
// reached yet hold empty strings and count as zero.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
