package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	coremon "github.com/spaceshare/spaceshare/core/monitoring"
)

var assumeYes bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Assign groups, write the sheet and notify participants after confirmation",
	RunE:  run,
}

func init() {
	runCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "send without asking for confirmation")
	rootCmd.AddCommand(runCmd)
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := newService()
	if err != nil {
		return err
	}
	defer closeService(svc)
	defer coremon.Recover()
	svc.Stdin = cmd.InOrStdin()
	svc.Stdout = cmd.OutOrStdout()
	svc.AssumeYes = assumeYes
	return report("run", svc.Run(ctx))
}
