// Package testutil provides shared helpers for tests that need
// deterministic builds: a frozen clock and a sequential id generator.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/mfgkit/proligentgo/internal/model"
)

// FrozenInstant is the wall-clock instant frozen environments report. It is
// deliberately in time.Local so formatting exercises the zone-homing path.
var FrozenInstant = time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)

// FrozenEnv returns an environment with a frozen clock, sequential ids, and
// timestamps homed in Europe/Paris (+01:00 on the frozen date). Every call
// starts the id sequence over, so tests get reproducible identifiers no
// matter how many entities they construct.
func FrozenEnv(t *testing.T) *model.Env {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatalf("load Europe/Paris: %v", err)
	}
	n := 0
	return &model.Env{
		Location: loc,
		Now:      func() time.Time { return FrozenInstant },
		NewID: func() string {
			n++
			return SequentialID(n)
		},
		DestinationDir: t.TempDir(),
	}
}

// SequentialID renders the nth deterministic identifier in UUID shape.
func SequentialID(n int) string {
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
}
