//go:build linux

package netif

import (
	"fmt"

	"github.com/vishvananda/netlink"
)

// Assign replaces the interface's address with cidr and brings the link up.
func Assign(iface, cidr string) error {
	link, err := netlink.LinkByName(iface)
	if err != nil {
		return fmt.Errorf("find link %s: %w", iface, err)
	}
	addr, err := netlink.ParseAddr(cidr)
	if err != nil {
		return fmt.Errorf("parse address %s: %w", cidr, err)
	}
	if err := netlink.AddrReplace(link, addr); err != nil {
		return fmt.Errorf("set address on %s: %w", iface, err)
	}
	if err := netlink.LinkSetUp(link); err != nil {
		return fmt.Errorf("bring up %s: %w", iface, err)
	}
	return nil
}
