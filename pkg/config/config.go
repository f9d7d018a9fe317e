// Package config provides configuration handling for the NAT gateway.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kvasik/natgate/pkg/logging"
	"github.com/kvasik/natgate/pkg/netcalc"
)

// Site is one internal subnet served by the gateway.
type Site struct {
	// Interface is the LAN interface name.
	Interface string `json:"interface" yaml:"interface"`

	// Address is the gateway's own address on this subnet, in CIDR
	// notation. The masqueraded network is derived from it.
	Address string `json:"address" yaml:"address"`
}

// GatewayConfig contains the host-level gateway settings.
type GatewayConfig struct {
	// WANInterface is the uplink interface traffic is masqueraded out of.
	WANInterface string `json:"wan_interface" yaml:"wanInterface"`

	// Sites are the internal subnets, one entry per LAN interface.
	Sites []Site `json:"sites" yaml:"sites"`

	// Hostname is the system hostname to set.
	Hostname string `json:"hostname" yaml:"hostname"`

	// Timezone is the system timezone to set (tz database name).
	Timezone string `json:"timezone" yaml:"timezone"`

	// RulesetPath is where the generated nft ruleset is written.
	RulesetPath string `json:"ruleset_path" yaml:"rulesetPath"`

	// IfcfgDir is the interface-configuration directory the per-interface
	// files are written to.
	IfcfgDir string `json:"ifcfg_dir" yaml:"ifcfgDir"`
}

// LoggingConfig contains configuration for logging.
type LoggingConfig struct {
	// Level is the logging level (debug, info, warn, error).
	Level string `json:"level" yaml:"level"`

	// File is the log file path; empty disables file logging.
	File string `json:"file" yaml:"file"`

	// MaxSize is the maximum size of the log file in megabytes.
	MaxSize int `json:"maxSize" yaml:"maxSize"`

	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int `json:"maxBackups" yaml:"maxBackups"`

	// MaxAge is the maximum number of days to retain old log files.
	MaxAge int `json:"maxAge" yaml:"maxAge"`
}

// Config represents the complete gateway configuration. It is built once per
// edit cycle and validated before anything acts on it; nothing mutates it
// afterwards.
type Config struct {
	// Gateway contains the gateway configuration.
	Gateway GatewayConfig `json:"gateway" yaml:"gateway"`

	// Logging contains the logging configuration.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// DefaultConfig returns the default two-site configuration.
func DefaultConfig() *Config {
	return &Config{
		Gateway: GatewayConfig{
			WANInterface: "eth0",
			Sites: []Site{
				{Interface: "lan0", Address: "172.16.4.1/28"},
				{Interface: "lan1", Address: "172.16.5.1/28"},
			},
			Hostname:    "natgate",
			Timezone:    "UTC",
			RulesetPath: "/etc/nftables.d/natgate.nft",
			IfcfgDir:    "/etc/natgate/ifcfg",
		},
		Logging: LoggingConfig{
			Level:      "info",
			File:       "",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		},
	}
}

// LoadFromFile loads configuration from a YAML or JSON file, chosen by
// extension.
func LoadFromFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch {
	case strings.HasSuffix(path, ".json"):
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config: %w", err)
		}
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %s", path)
	}

	return nil
}

// LoadFromEnv overlays configuration from NATGATE_* environment variables.
func LoadFromEnv(config *Config) {
	if val := os.Getenv("NATGATE_WAN_INTERFACE"); val != "" {
		config.Gateway.WANInterface = val
	}
	if val := os.Getenv("NATGATE_HOSTNAME"); val != "" {
		config.Gateway.Hostname = val
	}
	if val := os.Getenv("NATGATE_TIMEZONE"); val != "" {
		config.Gateway.Timezone = val
	}
	if val := os.Getenv("NATGATE_RULESET_PATH"); val != "" {
		config.Gateway.RulesetPath = val
	}
	if val := os.Getenv("NATGATE_IFCFG_DIR"); val != "" {
		config.Gateway.IfcfgDir = val
	}
	if val := os.Getenv("NATGATE_LOG_LEVEL"); val != "" {
		config.Logging.Level = val
	}
	if val := os.Getenv("NATGATE_LOG_FILE"); val != "" {
		config.Logging.File = val
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Gateway.WANInterface == "" {
		return fmt.Errorf("WAN interface cannot be empty")
	}
	if len(c.Gateway.Sites) == 0 {
		return fmt.Errorf("at least one site is required")
	}
	if c.Gateway.RulesetPath == "" {
		return fmt.Errorf("ruleset path cannot be empty")
	}
	if c.Gateway.IfcfgDir == "" {
		return fmt.Errorf("ifcfg directory cannot be empty")
	}

	networks := make(map[string]string, len(c.Gateway.Sites))
	for _, site := range c.Gateway.Sites {
		if site.Interface == "" {
			return fmt.Errorf("site interface cannot be empty")
		}
		if site.Interface == c.Gateway.WANInterface {
			return fmt.Errorf("site interface %s collides with the WAN interface", site.Interface)
		}
		addr, err := netcalc.Parse(site.Address)
		if err != nil {
			return fmt.Errorf("site %s: invalid address (must be in CIDR notation, e.g. '172.16.4.1/28'): %w", site.Interface, err)
		}
		// The gateway needs host bits of its own inside the subnet.
		if addr.IsNetwork() {
			return fmt.Errorf("site %s: address %s is the network address itself", site.Interface, site.Address)
		}
		network := addr.Network().String()
		if other, dup := networks[network]; dup {
			return fmt.Errorf("sites %s and %s share network %s", other, site.Interface, network)
		}
		networks[network] = site.Interface
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	return nil
}

// ApplyLogging applies the logging configuration.
func (c *Config) ApplyLogging() error {
	if err := logging.SetLevel(c.Logging.Level); err != nil {
		return err
	}
	if c.Logging.File != "" {
		err := logging.ToFile(c.Logging.File, logging.RotateOptions{
			MaxSizeMB:  c.Logging.MaxSize,
			MaxBackups: c.Logging.MaxBackups,
			MaxAgeDays: c.Logging.MaxAge,
		})
		if err != nil {
			return fmt.Errorf("failed to enable file logging: %w", err)
		}
	}
	return nil
}

// SaveToFile saves the configuration to a YAML or JSON file, chosen by
// extension.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch {
	case strings.HasSuffix(path, ".json"):
		data, err = json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		data, err = yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
