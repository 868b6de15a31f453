package model

import (
	"time"

	"github.com/mfgkit/proligentgo/internal/schema"
)

// Measure is a single typed measurement captured during a step run.
//
// The id and capture time default at construction; everything else is set by
// the caller before the build. Empty metadata fields are suppressed from the
// document, and a nil limit emits no Limit element at all.
type Measure struct {
	Value    Value
	ID       string
	Limit    *Limit
	Time     time.Time
	Comments string
	Unit     string
	Symbol   string
	Status   schema.ExecutionStatus
}

// NewMeasure records a value with a fresh id and the current instant.
func NewMeasure(env *Env, value Value) *Measure {
	return &Measure{
		Value: value,
		ID:    env.newID(),
		Time:  env.now(),
	}
}

// Build produces the schema node for this measure. It fails with
// ErrInvalidValueKind when the value carries no kind tag.
func (m *Measure) Build(env *Env) (*schema.Measure, error) {
	value, err := m.Value.build(env)
	if err != nil {
		return nil, err
	}
	dto := &schema.Measure{
		MeasureId:   m.ID,
		Value:       value,
		MeasureTime: env.Stamp(m.Time),
	}
	if m.Limit != nil {
		dto.Limit = &schema.MeasureLimit{LimitExpression: m.Limit.String()}
	}
	if m.Comments != "" {
		dto.Comments = m.Comments
	}
	if m.Unit != "" {
		dto.Unit = m.Unit
	}
	if m.Symbol != "" {
		dto.Symbol = m.Symbol
	}
	if m.Status != "" {
		dto.MeasureExecutionStatus = m.Status
	}
	return dto, nil
}
