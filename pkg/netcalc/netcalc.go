// Package netcalc implements IPv4 CIDR parsing, validation and
// network-address computation for the gateway's subnet handling.
package netcalc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse failures. Callers distinguish them with errors.Is.
var (
	// ErrMalformedInput means the text does not have the a.b.c.d/p shape.
	ErrMalformedInput = errors.New("input does not match a.b.c.d/p")

	// ErrOctetRange means an address component is outside [0,255].
	ErrOctetRange = errors.New("address octet outside [0,255]")

	// ErrPrefixRange means the prefix length is outside [0,32].
	ErrPrefixRange = errors.New("prefix length outside [0,32]")
)

// Addr is an IPv4 address together with a prefix length. Immutable value
// type; the textual form round-trips through Parse and String.
type Addr struct {
	octets [4]uint8
	prefix uint8
}

// Prefix returns the prefix length.
func (a Addr) Prefix() int { return int(a.prefix) }

// String renders the address in a.b.c.d/p form.
func (a Addr) String() string {
	return fmt.Sprintf("%d.%d.%d.%d/%d", a.octets[0], a.octets[1], a.octets[2], a.octets[3], a.prefix)
}

// packed returns the address as a big-endian 32-bit integer.
func (a Addr) packed() uint32 {
	return uint32(a.octets[0])<<24 | uint32(a.octets[1])<<16 | uint32(a.octets[2])<<8 | uint32(a.octets[3])
}

// Parse parses CIDR text of the exact shape D.D.D.D/P, where each D is one to
// three decimal digits and P is one or two, with exactly one slash. Leading
// zeros are read as plain decimal ("017" is 17). This is the single parsing
// path: Validate and NetworkOf are both defined in terms of it, so no input
// can reach the calculator unvalidated.
func Parse(text string) (Addr, error) {
	addrPart, prefixPart, found := strings.Cut(text, "/")
	if !found || strings.Contains(prefixPart, "/") {
		return Addr{}, fmt.Errorf("%w: %q", ErrMalformedInput, text)
	}

	groups := strings.Split(addrPart, ".")
	if len(groups) != 4 {
		return Addr{}, fmt.Errorf("%w: %q", ErrMalformedInput, text)
	}

	var a Addr
	for i, group := range groups {
		if !isDigits(group) || len(group) > 3 {
			return Addr{}, fmt.Errorf("%w: %q", ErrMalformedInput, text)
		}
		n, _ := strconv.Atoi(group) // digits only, cannot fail
		if n > 255 {
			return Addr{}, fmt.Errorf("%w: got %d in %q", ErrOctetRange, n, text)
		}
		a.octets[i] = uint8(n)
	}

	if !isDigits(prefixPart) || len(prefixPart) > 2 {
		return Addr{}, fmt.Errorf("%w: %q", ErrMalformedInput, text)
	}
	p, _ := strconv.Atoi(prefixPart)
	if p > 32 {
		return Addr{}, fmt.Errorf("%w: got /%d", ErrPrefixRange, p)
	}
	a.prefix = uint8(p)

	return a, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Validate reports whether text is a well-formed CIDR string with all four
// octets in [0,255] and the prefix in [0,32].
func Validate(text string) bool {
	_, err := Parse(text)
	return err == nil
}

// Network returns the network address of a: the same address with every bit
// outside the prefix cleared, keeping the prefix length.
func (a Addr) Network() Addr {
	hostBits := 32 - uint(a.prefix)
	// Shifting a uint32 by its full width must produce the all-zero mask
	// (prefix 0 covers no bits), so that case is written out explicitly.
	var mask uint32
	if hostBits < 32 {
		mask = 0xFFFFFFFF << hostBits
	}
	net := a.packed() & mask
	return Addr{
		octets: [4]uint8{uint8(net >> 24), uint8(net >> 16), uint8(net >> 8), uint8(net)},
		prefix: a.prefix,
	}
}

// IsNetwork reports whether a already has all host bits cleared.
func (a Addr) IsNetwork() bool {
	return a == a.Network()
}

// NetworkOf parses text and returns its network address in the same CIDR
// notation. A /32 input is returned unchanged; a /0 input yields "0.0.0.0/0".
func NetworkOf(text string) (string, error) {
	a, err := Parse(text)
	if err != nil {
		return "", err
	}
	return a.Network().String(), nil
}
