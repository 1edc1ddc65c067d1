package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ovalle/asistego/pkg/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Append payday attendance summaries for collaborators paid today",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	log, store, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}

	_, err = report.New(store, log).Run(time.Now())
	return err
}
