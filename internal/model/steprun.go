package model

import "github.com/mfgkit/proligentgo/internal/schema"

// StepRun is the execution record of a single manufacturing step. It owns an
// ordered list of measures plus characteristics and documents; children are
// emitted in exact attach order.
type StepRun struct {
	ManufacturingStep
	measures        []*Measure
	Characteristics []*Characteristic
	Documents       []*Document
}

// NewStepRun creates a step run, optionally seeded with a first measure.
// More measures can be attached afterwards, though downstream reports tend
// to expect one measure per step.
func NewStepRun(env *Env, seed *Measure) *StepRun {
	s := &StepRun{ManufacturingStep: newManufacturingStep(env)}
	if seed != nil {
		s.measures = append(s.measures, seed)
	}
	return s
}

// AddMeasure appends a measure to this step run and returns it.
func (s *StepRun) AddMeasure(m *Measure) *Measure {
	s.measures = append(s.measures, m)
	return m
}

// AddCharacteristic attaches metadata to this step run and returns it.
func (s *StepRun) AddCharacteristic(c *Characteristic) *Characteristic {
	s.Characteristics = append(s.Characteristics, c)
	return c
}

// AddDocument associates a document reference with this step run.
func (s *StepRun) AddDocument(d *Document) *Document {
	s.Documents = append(s.Documents, d)
	return d
}

// Measures returns the attached measures in attach order.
func (s *StepRun) Measures() []*Measure {
	return s.measures
}

// Build produces the schema node for this step run, measures first, then
// characteristics and documents.
func (s *StepRun) Build(env *Env) (*schema.StepRun, error) {
	dto := &schema.StepRun{
		StepRunId:           s.ID,
		StepExecutionStatus: s.Status,
		StartDate:           env.Stamp(s.StartTime),
		EndDate:             s.endDate(env),
	}
	if s.Name != "" {
		dto.StepName = s.Name
	}
	for _, m := range s.measures {
		node, err := m.Build(env)
		if err != nil {
			return nil, err
		}
		dto.Measure = append(dto.Measure, node)
	}
	var err error
	dto.Characteristic, err = buildCharacteristics(env, s.Characteristics)
	if err != nil {
		return nil, err
	}
	dto.Document, err = buildDocuments(env, s.Documents)
	if err != nil {
		return nil, err
	}
	return dto, nil
}
