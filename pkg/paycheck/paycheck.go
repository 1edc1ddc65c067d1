// Package paycheck maintains the payment status sheet: it derives one row
// per (collaborator, payday) from the raw payments sheet and marks the
// paydays that have already passed as ready.
package paycheck

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/ovalle/asistego/pkg/model"
	"github.com/ovalle/asistego/pkg/sheets"
)

// Store is the sheet surface this pass needs.
type Store interface {
	ReadTable(name string) (*sheets.Table, error)
	Replace(name string, rows [][]interface{}) error
}

// Summary counts what one pass found.
type Summary struct {
	Ready     int
	Pending   int
	Malformed int
}

// Processor rebuilds the payment status sheet from the payments sheet.
type Processor struct {
	store Store
	log   zerolog.Logger
}

// New creates a payment status processor.
func New(store Store, log zerolog.Logger) *Processor {
	return &Processor{store: store, log: log}
}

type statusRow struct {
	collaborator string
	periodStart  string
	periodEnd    string
	payday       string
	check        string
}

// Process deduplicates the payments sheet by (collaborator, payday), marks
// paydays before now as ready, and rewrites the status sheet wholesale.
// Unparseable paydays stay pending with a warning; they are never fatal.
// Any failure is logged here before it propagates.
func (p *Processor) Process(now time.Time) (Summary, error) {
	s, err := p.process(now)
	if err != nil {
		p.log.Error().Err(err).Msg("payment status pass failed")
	}
	return s, err
}

func (p *Processor) process(now time.Time) (Summary, error) {
	var s Summary

	payments, err := p.store.ReadTable(model.PaymentsSheet)
	if err != nil {
		return s, err
	}
	if payments.Empty() {
		p.log.Info().Msg("payments sheet is empty, nothing to check")
		return s, nil
	}

	cols := map[string]int{}
	for _, col := range []string{
		model.ColCollaborator, model.ColPeriodStart, model.ColPeriodEnd, model.ColPayday,
	} {
		idx, err := payments.Col(col)
		if err != nil {
			return s, err
		}
		cols[col] = idx
	}

	// First occurrence per (collaborator, payday) wins, in row order.
	seen := map[[2]string]bool{}
	var rows []statusRow
	for i := range payments.Rows {
		row := statusRow{
			collaborator: payments.Cell(i, cols[model.ColCollaborator]),
			periodStart:  payments.Cell(i, cols[model.ColPeriodStart]),
			periodEnd:    payments.Cell(i, cols[model.ColPeriodEnd]),
			payday:       payments.Cell(i, cols[model.ColPayday]),
		}
		key := [2]string{row.collaborator, row.payday}
		if seen[key] {
			continue
		}
		seen[key] = true
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].collaborator != rows[j].collaborator {
			return rows[i].collaborator < rows[j].collaborator
		}
		return rows[i].payday < rows[j].payday
	})

	for i := range rows {
		payday, err := model.ParseDate(rows[i].payday)
		switch {
		case err != nil:
			s.Malformed++
			p.log.Warn().Err(err).
				Str("collaborator", rows[i].collaborator).
				Str("payday", rows[i].payday).
				Msg("payment row with unparseable payday stays pending")
		case payday.Before(now):
			rows[i].check = model.PaymentReady
			s.Ready++
		default:
			s.Pending++
		}
	}

	out := make([][]interface{}, 0, len(rows)+1)
	out = append(out, []interface{}{
		model.ColCollaborator, model.ColPeriodStart, model.ColPeriodEnd,
		model.ColPayday, model.ColCheck,
	})
	for _, row := range rows {
		out = append(out, []interface{}{
			row.collaborator, row.periodStart, row.periodEnd, row.payday, row.check,
		})
	}
	if err := p.store.Replace(model.PaymentStatusSheet, out); err != nil {
		return s, err
	}

	p.log.Info().
		Int("ready", s.Ready).
		Int("pending", s.Pending).
		Int("malformed", s.Malformed).
		Msg("payment status sheet rebuilt")
	return s, nil
}
