package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ovalle/asistego/pkg/engine"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one reconciliation pass: ingest entries, match exits, compute minutes",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	log, store, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}

	_, err = engine.New(store, log).Run()
	return err
}
