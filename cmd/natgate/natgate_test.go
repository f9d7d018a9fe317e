package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kvasik/natgate/pkg/config"
	"github.com/kvasik/natgate/pkg/prompt"
)

func TestNetworkCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"network", "172.16.4.1/28"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("network command failed: %v", err)
	}
	if !strings.Contains(out.String(), "172.16.4.0/28") {
		t.Errorf("expected network address in output, got %q", out.String())
	}
}

func TestNetworkCommandRejectsBadPrefix(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"network", "10.0.0.1/33"})

	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error for prefix out of range")
	}
}

func TestFillFromSession(t *testing.T) {
	answers := strings.Join([]string{
		"eth1",           // WAN interface
		"lan0",           // site 1 interface
		"not-an-ip",      // rejected, re-asked
		"172.16.4.1/28",  // site 1 address
		"lan1",           // site 2 interface
		"172.16.5.1/28",  // site 2 address
		"edge-gw",        // hostname
		"Europe/Prague",  // timezone
	}, "\n") + "\n"

	var out bytes.Buffer
	s := prompt.NewSession(strings.NewReader(answers), &out)
	cfg := config.DefaultConfig()

	if err := fillFromSession(s, cfg); err != nil {
		t.Fatalf("fillFromSession returned error: %v", err)
	}

	if cfg.Gateway.WANInterface != "eth1" {
		t.Errorf("expected WAN interface 'eth1', got %q", cfg.Gateway.WANInterface)
	}
	if cfg.Gateway.Sites[0].Address != "172.16.4.1/28" {
		t.Errorf("expected site 1 address '172.16.4.1/28', got %q", cfg.Gateway.Sites[0].Address)
	}
	if cfg.Gateway.Hostname != "edge-gw" {
		t.Errorf("expected hostname 'edge-gw', got %q", cfg.Gateway.Hostname)
	}
	if cfg.Gateway.Timezone != "Europe/Prague" {
		t.Errorf("expected timezone 'Europe/Prague', got %q", cfg.Gateway.Timezone)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("session-built config failed validation: %v", err)
	}
}

func TestFillFromSessionAbort(t *testing.T) {
	var out bytes.Buffer
	s := prompt.NewSession(strings.NewReader("q\n"), &out)
	cfg := config.DefaultConfig()

	err := fillFromSession(s, cfg)
	if err == nil {
		t.Fatal("expected abort error")
	}
}
