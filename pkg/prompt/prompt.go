// Package prompt implements the operator input session: each question is
// re-asked until its validator accepts the answer or the operator aborts.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kvasik/natgate/pkg/netcalc"
)

// ErrAborted is returned when the operator enters the abort word or input
// ends. It is the session's only sentinel; validation failures never
// surface as errors, they just re-ask.
var ErrAborted = errors.New("input aborted")

// AbortWord ends the session when entered on its own.
const AbortWord = "q"

// Session reads operator answers line by line from a fixed reader, writing
// prompts to a fixed writer. Tests inject both.
type Session struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewSession returns a session reading from in and prompting on out.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{in: bufio.NewScanner(in), out: out}
}

// Ask prompts with label until accept returns true for a trimmed input line,
// returning the first accepted value.
func (s *Session) Ask(label string, accept func(string) bool) (string, error) {
	for {
		fmt.Fprintf(s.out, "%s: ", label)
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return "", fmt.Errorf("read input: %w", err)
			}
			return "", ErrAborted
		}
		line := strings.TrimSpace(s.in.Text())
		if line == AbortWord {
			return "", ErrAborted
		}
		if accept(line) {
			return line, nil
		}
		fmt.Fprintf(s.out, "invalid value %q, try again (%s to abort)\n", line, AbortWord)
	}
}

// AskCIDR asks for an address in CIDR notation.
func (s *Session) AskCIDR(label string) (string, error) {
	return s.Ask(label, netcalc.Validate)
}

// AskNonEmpty asks for any non-empty value.
func (s *Session) AskNonEmpty(label string) (string, error) {
	return s.Ask(label, func(v string) bool { return v != "" })
}
