package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kvasik/natgate/pkg/config"
	"github.com/kvasik/natgate/pkg/prompt"
	"github.com/kvasik/natgate/pkg/system"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactively build the gateway configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		s := prompt.NewSession(cmd.InOrStdin(), cmd.OutOrStdout())

		if err := fillFromSession(s, cfg); err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				cmd.Println("aborted, nothing written")
				return nil
			}
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfg.SaveToFile(configPath); err != nil {
			return err
		}
		cmd.Printf("wrote %s\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// fillFromSession asks for every gateway field in turn. Each question
// re-prompts until its validator accepts, so the config only ever sees
// accepted values.
func fillFromSession(s *prompt.Session, cfg *config.Config) error {
	wan, err := s.AskNonEmpty("WAN interface")
	if err != nil {
		return err
	}
	cfg.Gateway.WANInterface = wan

	for i := range cfg.Gateway.Sites {
		iface, err := s.AskNonEmpty(fmt.Sprintf("site %d interface", i+1))
		if err != nil {
			return err
		}
		addr, err := s.AskCIDR(fmt.Sprintf("site %d address (CIDR)", i+1))
		if err != nil {
			return err
		}
		cfg.Gateway.Sites[i].Interface = iface
		cfg.Gateway.Sites[i].Address = addr
	}

	hostname, err := s.Ask("hostname", system.ValidHostname)
	if err != nil {
		return err
	}
	cfg.Gateway.Hostname = hostname

	timezone, err := s.Ask("timezone", system.ValidTimezone)
	if err != nil {
		return err
	}
	cfg.Gateway.Timezone = timezone

	return nil
}
