package system

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default locations for IPv4 forwarding control.
const (
	ProcForwardPath  = "/proc/sys/net/ipv4/ip_forward"
	SysctlDropInPath = "/etc/sysctl.d/90-natgate-forward.conf"
)

// EnableForwarding turns on IPv4 forwarding immediately and writes a sysctl
// drop-in so the setting survives a reboot. The paths are parameters so tests
// can point them at a scratch directory.
func EnableForwarding(procPath, dropInPath string) error {
	if err := os.WriteFile(procPath, []byte("1\n"), 0644); err != nil {
		return fmt.Errorf("enable ip_forward: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dropInPath), 0755); err != nil {
		return fmt.Errorf("create sysctl.d directory: %w", err)
	}
	if err := os.WriteFile(dropInPath, []byte("net.ipv4.ip_forward = 1\n"), 0644); err != nil {
		return fmt.Errorf("persist ip_forward: %w", err)
	}
	return nil
}
