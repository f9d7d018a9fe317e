package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kvasik/natgate/pkg/config"
	"github.com/kvasik/natgate/pkg/logging"
)

var (
	configPath string
	logLevel   string
	dryRun     bool
)

var rootCmd = &cobra.Command{
	Use:           "natgate",
	Short:         "Configure a two-site NAT gateway",
	Long:          "natgate sets static addresses on the gateway's LAN interfaces, enables IPv4 forwarding, writes and loads a masquerading nft ruleset, and sets the system hostname and timezone.",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logLevel == "" {
			logLevel = os.Getenv("NATGATE_LOG_LEVEL")
		}
		if logLevel != "" {
			return logging.SetLevel(logLevel)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "/etc/natgate/config.yaml", "configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "render and log without touching the system")
}

// loadConfig builds the effective configuration: defaults, then the config
// file if present, then the environment overlay, validated as a whole.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		if err := config.LoadFromFile(configPath, cfg); err != nil {
			return nil, err
		}
	}
	config.LoadFromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// The --log-level flag wins over the config file.
	if logLevel == "" {
		if err := cfg.ApplyLogging(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
