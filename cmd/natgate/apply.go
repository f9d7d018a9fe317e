package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kvasik/natgate/pkg/config"
	"github.com/kvasik/natgate/pkg/firewall"
	"github.com/kvasik/natgate/pkg/logging"
	"github.com/kvasik/natgate/pkg/netif"
	"github.com/kvasik/natgate/pkg/system"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply the gateway configuration to this host",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return applyAll(cmd.Context(), cfg, system.ExecRunner{}, dryRun)
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

// applyAll runs the full pipeline: addresses, persistence, ruleset,
// forwarding, hostname, timezone. Order matters only in that the ruleset is
// written before it is loaded.
func applyAll(ctx context.Context, cfg *config.Config, r system.Runner, dry bool) error {
	data, err := firewall.DataFromConfig(cfg)
	if err != nil {
		return err
	}

	if dry {
		text, err := firewall.Render(data)
		if err != nil {
			return err
		}
		logging.Infof("dry run: ruleset for %s:\n%s", cfg.Gateway.RulesetPath, text)
		logging.Infof("dry run: would set hostname %q and timezone %q", cfg.Gateway.Hostname, cfg.Gateway.Timezone)
		return nil
	}

	for _, site := range cfg.Gateway.Sites {
		logging.WithField("iface", site.Interface).WithField("address", site.Address).Info("assigning address")
		if err := netif.Assign(site.Interface, site.Address); err != nil {
			return err
		}
		if err := netif.WriteIfcfg(cfg.Gateway.IfcfgDir, site.Interface, site.Address); err != nil {
			return err
		}
	}

	if err := firewall.WriteRuleset(cfg.Gateway.RulesetPath, data); err != nil {
		return err
	}
	if err := firewall.Apply(ctx, r, cfg.Gateway.RulesetPath); err != nil {
		return err
	}
	if err := system.EnableForwarding(system.ProcForwardPath, system.SysctlDropInPath); err != nil {
		return err
	}
	if err := system.EnableService(ctx, r, "nftables"); err != nil {
		return err
	}
	if err := system.SetHostname(ctx, r, cfg.Gateway.Hostname); err != nil {
		return err
	}
	if err := system.SetTimezone(ctx, r, cfg.Gateway.Timezone); err != nil {
		return err
	}

	logging.Infof("gateway configuration applied")
	return nil
}
