package system

import (
	"context"
	"fmt"
)

// EnableService enables and starts a systemd unit.
func EnableService(ctx context.Context, r Runner, unit string) error {
	if unit == "" {
		return fmt.Errorf("unit name cannot be empty")
	}
	if err := r.Run(ctx, "systemctl", "enable", "--now", unit); err != nil {
		return fmt.Errorf("enable service %s: %w", unit, err)
	}
	return nil
}
