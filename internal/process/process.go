// Package process terminates the browser process tree started for PDF export.
package process

import (
	"errors"
	"fmt"
)

// ErrInvalidPID is returned for PIDs that would address the caller's own
// process group or every process.
var ErrInvalidPID = errors.New("invalid pid")

// KillTree kills pid and its descendants. Failures are reported but the
// caller is expected to fall back to killing pid alone.
func KillTree(pid int) error {
	if pid <= 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPID, pid)
	}
	return killTree(pid)
}
