package model

import (
	"time"

	"github.com/mfgkit/proligentgo/internal/schema"
)

// ManufacturingStep carries the attributes shared by every level of the run
// hierarchy. A step starts NOT_COMPLETED; Complete is the only lifecycle
// mutator after construction.
type ManufacturingStep struct {
	ID        string
	Name      string
	Status    schema.ExecutionStatus
	StartTime time.Time
	EndTime   time.Time
}

func newManufacturingStep(env *Env) ManufacturingStep {
	now := env.now()
	return ManufacturingStep{
		ID:        env.newID(),
		Status:    schema.StatusNotCompleted,
		StartTime: now,
		EndTime:   now,
	}
}

// Complete marks the step finished with the given status. A zero endTime
// stamps the current instant. Calling Complete again overwrites both fields;
// the last call wins.
func (s *ManufacturingStep) Complete(status schema.ExecutionStatus, endTime time.Time) {
	s.Status = status
	if endTime.IsZero() {
		endTime = time.Now()
	}
	s.EndTime = endTime
}

// endDate renders the completion timestamp, or "" while the step is still
// NOT_COMPLETED: an in-progress step must not claim a completion time.
func (s *ManufacturingStep) endDate(env *Env) string {
	if s.Status == schema.StatusNotCompleted {
		return ""
	}
	return env.Stamp(s.EndTime)
}

// VersionedManufacturingStep adds the version carried by process and
// sequence runs.
type VersionedManufacturingStep struct {
	ManufacturingStep
	Version string
}
