//go:build !linux

package netif

// Assign replaces the interface's address with cidr and brings the link up.
// Only implemented on linux.
func Assign(iface, cidr string) error {
	return ErrUnsupported
}
