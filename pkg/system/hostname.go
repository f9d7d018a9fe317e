package system

import (
	"context"
	"fmt"
	"regexp"
)

var hostnamePattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

// ValidHostname reports whether name is a single RFC 1123 label.
func ValidHostname(name string) bool {
	return hostnamePattern.MatchString(name)
}

// SetHostname sets the system hostname through hostnamectl.
func SetHostname(ctx context.Context, r Runner, name string) error {
	if !ValidHostname(name) {
		return fmt.Errorf("invalid hostname %q", name)
	}
	if err := r.Run(ctx, "hostnamectl", "set-hostname", name); err != nil {
		return fmt.Errorf("set hostname: %w", err)
	}
	return nil
}
