package system

import (
	"context"
	"fmt"
	"strings"
)

// ValidTimezone reports whether tz has the Area/City shape of the tz
// database, or is the bare "UTC" zone timedatectl also accepts.
func ValidTimezone(tz string) bool {
	if tz == "UTC" {
		return true
	}
	area, city, found := strings.Cut(tz, "/")
	if !found || area == "" || city == "" {
		return false
	}
	for _, part := range []string{area, city} {
		for _, r := range part {
			switch {
			case r >= 'a' && r <= 'z':
			case r >= 'A' && r <= 'Z':
			case r >= '0' && r <= '9':
			case r == '_' || r == '-' || r == '+' || r == '/':
			default:
				return false
			}
		}
	}
	return true
}

// SetTimezone sets the system timezone through timedatectl.
func SetTimezone(ctx context.Context, r Runner, tz string) error {
	if !ValidTimezone(tz) {
		return fmt.Errorf("invalid timezone %q", tz)
	}
	if err := r.Run(ctx, "timedatectl", "set-timezone", tz); err != nil {
		return fmt.Errorf("set timezone: %w", err)
	}
	return nil
}
