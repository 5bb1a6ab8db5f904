package process

// Notes:
// - Real process trees are only killed through the PDF exporter; here we
//   cover the PID guard and a PID that cannot exist.

import (
	"errors"
	"testing"
)

func TestKillTree_GuardsReservedPIDs(t *testing.T) {
	t.Parallel()

	for _, pid := range []int{-5, 0, 1} {
		if err := KillTree(pid); !errors.Is(err, ErrInvalidPID) {
			t.Errorf("KillTree(%d) = %v, want ErrInvalidPID", pid, err)
		}
	}
}

func TestKillTree_MissingProcess(t *testing.T) {
	t.Parallel()

	if err := KillTree(999999999); err == nil {
		t.Error("KillTree(999999999) = nil, want error for a missing process")
	}
}
