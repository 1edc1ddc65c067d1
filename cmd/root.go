// Package cmd wires the attendance passes into a CLI. Each subcommand maps
// to one scheduled job: the reconciliation engine, the payment status check,
// and the payday reports.
package cmd

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ovalle/asistego/pkg/auth"
	"github.com/ovalle/asistego/pkg/config"
	"github.com/ovalle/asistego/pkg/sheets"
)

var rootCmd = &cobra.Command{
	Use:           "asistego",
	Short:         "Attendance reconciliation over a Google Sheets ledger",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main. The scheduler re-runs the
// whole process on a non-zero exit, so any failed stage exits 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(paycheckCmd)
	rootCmd.AddCommand(reportCmd)
}

// bootstrap loads configuration, builds the logger and opens the sheet
// store. Everything downstream receives these values explicitly.
func bootstrap(ctx context.Context) (zerolog.Logger, *sheets.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		boot := bootLogger()
		boot.Error().Err(err).Msg("configuration error")
		return zerolog.Nop(), nil, err
	}

	log := newLogger(cfg.LogLevel)

	srv, err := auth.NewSheetsService(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("cannot authenticate with Google Sheets")
		return log, nil, err
	}
	return log, sheets.NewClient(srv, cfg.SheetID), nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

// bootLogger reports failures that happen before the configured logger
// exists.
func bootLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
