package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jurisdiction_gateway/internal/app/bootstrap"
	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/infrastructure/configloader"
	"jurisdiction_gateway/internal/pkg/logger"
)

var (
	// Version information (set at build time)
	Version = "dev"

	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gatewayctl",
	Short: "Invoke jurisdiction contracts from the command line",
	Long: `gatewayctl talks to the configured EVM node through the same contract gateway
the HTTP service uses: mutating calls are refused unless the node is on the
expected chain.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c",
		configloader.GetEnv(configloader.EnvConfigPath, configloader.DefaultConfigPath), "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stdout at the configured level")

	rootCmd.AddCommand(chainIDCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(transactCmd)
}

// loadRuntime reads the config and connects to the node.
func loadRuntime() (*bootstrap.Runtime, error) {
	cfg, err := configloader.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	var log port.Logger = logger.NewNop()
	if verbose {
		if _, err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
		log = logger.NewSlogAdapter()
	}
	return bootstrap.NewRuntime(cfg, log)
}
