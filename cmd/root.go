package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spaceshare/spaceshare/app"
	"github.com/spaceshare/spaceshare/config"
	coremon "github.com/spaceshare/spaceshare/core/monitoring"
	"github.com/spaceshare/spaceshare/infra/logger"
	"github.com/spaceshare/spaceshare/infra/monitoring"
)

var (
	cfgPath string
	envPath string
)

var rootCmd = &cobra.Command{
	Use:          "spaceshare",
	Short:        "Group conference participants into shared airport rides",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.PersistentFlags().StringVar(&envPath, "env-file", ".env", "dotenv file loaded before the configuration")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func newService() (*app.Service, error) {
	if err := config.LoadDotEnv(envPath); err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	mon, err := monitoring.NewSentryMonitor(cfg.Monitoring)
	if err != nil {
		return nil, fmt.Errorf("monitoring: %w", err)
	}
	coremon.Init(mon)
	return app.New(cfg)
}

func closeService(svc *app.Service) {
	if err := svc.Close(); err != nil {
		logger.New("main").Errorf("service close: %v", err)
	}
}

// report forwards a command failure to the error tracker. Declining to send
// is not a failure.
func report(command string, err error) error {
	if err == nil || errors.Is(err, app.ErrNotConfirmed) {
		return err
	}
	coremon.CaptureException(err, map[string]string{"command": command})
	coremon.Flush(2 * time.Second)
	return err
}
