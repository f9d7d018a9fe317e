// Package firewall renders and loads the gateway's masquerading nft ruleset.
package firewall

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/kvasik/natgate/pkg/config"
	"github.com/kvasik/natgate/pkg/netcalc"
	"github.com/kvasik/natgate/pkg/system"
)

// SiteRule is one LAN subnet to masquerade.
type SiteRule struct {
	// Interface is the LAN interface the subnet lives on.
	Interface string

	// Network is the subnet's network address in CIDR notation.
	Network string
}

// RulesetData feeds the ruleset template.
type RulesetData struct {
	WANInterface string
	Sites        []SiteRule
}

var rulesetTmpl = template.Must(template.New("ruleset").Parse(`#!/usr/sbin/nft -f

flush ruleset

table inet nat {
  chain postrouting {
    type nat hook postrouting priority 100; policy accept;
{{- range .Sites}}
    ip saddr {{.Network}} oifname "{{$.WANInterface}}" masquerade
{{- end}}
  }
}

table inet filter {
  chain forward {
    type filter hook forward priority 0; policy drop;
    ct state established,related accept
{{- range .Sites}}
    iifname "{{.Interface}}" oifname "{{$.WANInterface}}" accept
{{- end}}
  }
}
`))

// DataFromConfig derives the ruleset input from a validated configuration,
// computing each site's network address from the gateway's own address.
func DataFromConfig(cfg *config.Config) (RulesetData, error) {
	data := RulesetData{WANInterface: cfg.Gateway.WANInterface}
	for _, site := range cfg.Gateway.Sites {
		network, err := netcalc.NetworkOf(site.Address)
		if err != nil {
			return RulesetData{}, fmt.Errorf("site %s: %w", site.Interface, err)
		}
		data.Sites = append(data.Sites, SiteRule{
			Interface: site.Interface,
			Network:   network,
		})
	}
	return data, nil
}

// Render produces the ruleset text.
func Render(data RulesetData) (string, error) {
	var buf bytes.Buffer
	if err := rulesetTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render ruleset: %w", err)
	}
	return buf.String(), nil
}

// WriteRuleset renders the ruleset and writes it to path.
func WriteRuleset(path string, data RulesetData) error {
	text, err := Render(data)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create ruleset directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("write ruleset: %w", err)
	}
	return nil
}

// Apply loads the ruleset file into the kernel with nft.
func Apply(ctx context.Context, r system.Runner, path string) error {
	if err := r.Run(ctx, "nft", "-f", path); err != nil {
		return fmt.Errorf("load ruleset: %w", err)
	}
	return nil
}
