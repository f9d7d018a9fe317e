package main

import (
	"github.com/spf13/cobra"

	"github.com/kvasik/natgate/pkg/netcalc"
)

var networkCmd = &cobra.Command{
	Use:   "network CIDR",
	Short: "Print the network address of a CIDR address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		network, err := netcalc.NetworkOf(args[0])
		if err != nil {
			return err
		}
		cmd.Println(network)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(networkCmd)
}
