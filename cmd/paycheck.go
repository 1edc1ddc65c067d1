package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ovalle/asistego/pkg/paycheck"
)

var paycheckCmd = &cobra.Command{
	Use:   "paycheck",
	Short: "Rebuild the payment status sheet, marking past paydays as ready",
	Args:  cobra.NoArgs,
	RunE:  runPaycheck,
}

func runPaycheck(cmd *cobra.Command, args []string) error {
	log, store, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}

	_, err = paycheck.New(store, log).Process(time.Now())
	return err
}
