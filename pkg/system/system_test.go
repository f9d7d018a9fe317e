package system

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// recordingRunner records every command instead of executing it.
type recordingRunner struct {
	calls [][]string
	err   error
}

// Run implements Runner.
func (r *recordingRunner) Run(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.err
}

func TestSetHostname(t *testing.T) {
	runner := &recordingRunner{}
	if err := SetHostname(context.Background(), runner, "edge-gw-01"); err != nil {
		t.Fatalf("SetHostname returned error: %v", err)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("expected 1 command, got %d", len(runner.calls))
	}
	got := strings.Join(runner.calls[0], " ")
	if got != "hostnamectl set-hostname edge-gw-01" {
		t.Errorf("unexpected command: %q", got)
	}
}

func TestSetHostnameRejectsInvalidNames(t *testing.T) {
	runner := &recordingRunner{}
	for _, name := range []string{"", "-edge", "edge-", "edge gw", "edge.gw", strings.Repeat("a", 64)} {
		if err := SetHostname(context.Background(), runner, name); err == nil {
			t.Errorf("SetHostname(%q) succeeded, want error", name)
		}
	}
	if len(runner.calls) != 0 {
		t.Errorf("invalid hostnames must not reach hostnamectl, got %d calls", len(runner.calls))
	}
}

func TestSetHostnamePropagatesRunnerError(t *testing.T) {
	runner := &recordingRunner{err: errors.New("dbus unavailable")}
	err := SetHostname(context.Background(), runner, "edge-gw")
	if err == nil || !strings.Contains(err.Error(), "dbus unavailable") {
		t.Errorf("expected wrapped runner error, got %v", err)
	}
}

func TestValidTimezone(t *testing.T) {
	accepted := []string{"UTC", "Europe/Prague", "America/New_York", "Etc/GMT+2", "America/Argentina/Buenos_Aires"}
	rejected := []string{"", "Prague", "Europe/", "/Prague", "Europe/Pra gue", "Europe/Prague;rm"}

	for _, tz := range accepted {
		if !ValidTimezone(tz) {
			t.Errorf("ValidTimezone(%q) = false, want true", tz)
		}
	}
	for _, tz := range rejected {
		if ValidTimezone(tz) {
			t.Errorf("ValidTimezone(%q) = true, want false", tz)
		}
	}
}

func TestSetTimezone(t *testing.T) {
	runner := &recordingRunner{}
	if err := SetTimezone(context.Background(), runner, "Europe/Prague"); err != nil {
		t.Fatalf("SetTimezone returned error: %v", err)
	}
	got := strings.Join(runner.calls[0], " ")
	if got != "timedatectl set-timezone Europe/Prague" {
		t.Errorf("unexpected command: %q", got)
	}

	if err := SetTimezone(context.Background(), runner, "not a zone"); err == nil {
		t.Error("expected error for malformed timezone")
	}
}

func TestEnableService(t *testing.T) {
	runner := &recordingRunner{}
	if err := EnableService(context.Background(), runner, "nftables"); err != nil {
		t.Fatalf("EnableService returned error: %v", err)
	}
	got := strings.Join(runner.calls[0], " ")
	if got != "systemctl enable --now nftables" {
		t.Errorf("unexpected command: %q", got)
	}

	if err := EnableService(context.Background(), runner, ""); err == nil {
		t.Error("expected error for empty unit name")
	}
}

func TestEnableForwarding(t *testing.T) {
	dir := t.TempDir()
	procPath := filepath.Join(dir, "ip_forward")
	dropInPath := filepath.Join(dir, "sysctl.d", "90-natgate-forward.conf")

	if err := EnableForwarding(procPath, dropInPath); err != nil {
		t.Fatalf("EnableForwarding returned error: %v", err)
	}

	proc, err := os.ReadFile(procPath)
	if err != nil {
		t.Fatalf("failed to read proc file: %v", err)
	}
	if string(proc) != "1\n" {
		t.Errorf("expected proc file to contain \"1\\n\", got %q", proc)
	}

	dropIn, err := os.ReadFile(dropInPath)
	if err != nil {
		t.Fatalf("failed to read drop-in: %v", err)
	}
	if string(dropIn) != "net.ipv4.ip_forward = 1\n" {
		t.Errorf("unexpected drop-in contents: %q", dropIn)
	}
}

func TestExecRunnerReportsCommandOutput(t *testing.T) {
	err := ExecRunner{}.Run(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatal("expected error from failing command")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected stderr in error, got %v", err)
	}
}
