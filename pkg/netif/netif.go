// Package netif assigns static addresses to the gateway's LAN interfaces and
// persists them as flat per-interface files.
package netif

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kvasik/natgate/pkg/netcalc"
)

// ErrUnsupported is returned on platforms without netlink support.
var ErrUnsupported = errors.New("interface configuration requires linux")

// WriteIfcfg stores one interface's address under dir, one flat file per
// interface. The operator's original CIDR string is kept verbatim: the file
// holds the gateway's own host address, not the subnet's network address.
func WriteIfcfg(dir, iface, cidr string) error {
	if iface == "" {
		return fmt.Errorf("ifcfg: interface name cannot be empty")
	}
	if !netcalc.Validate(cidr) {
		return fmt.Errorf("ifcfg %s: invalid address %q", iface, cidr)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create ifcfg directory: %w", err)
	}

	content := fmt.Sprintf("IFACE=%s\nADDRESS=%s\nONBOOT=yes\n", iface, cidr)
	path := filepath.Join(dir, "ifcfg-"+iface)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
