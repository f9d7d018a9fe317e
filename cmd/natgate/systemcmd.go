package main

import (
	"github.com/spf13/cobra"

	"github.com/kvasik/natgate/pkg/logging"
	"github.com/kvasik/natgate/pkg/system"
)

var hostnameCmd = &cobra.Command{
	Use:   "hostname NAME",
	Short: "Set the system hostname",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if dryRun {
			logging.Infof("dry run: would set hostname %q", args[0])
			return nil
		}
		return system.SetHostname(cmd.Context(), system.ExecRunner{}, args[0])
	},
}

var timezoneCmd = &cobra.Command{
	Use:   "timezone ZONE",
	Short: "Set the system timezone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if dryRun {
			logging.Infof("dry run: would set timezone %q", args[0])
			return nil
		}
		return system.SetTimezone(cmd.Context(), system.ExecRunner{}, args[0])
	},
}

func init() {
	rootCmd.AddCommand(hostnameCmd)
	rootCmd.AddCommand(timezoneCmd)
}
