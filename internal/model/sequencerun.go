package model

import "github.com/mfgkit/proligentgo/internal/schema"

// SequenceRun is an ordered collection of step runs executed on one station
// by one user.
type SequenceRun struct {
	VersionedManufacturingStep
	Steps           []*StepRun
	Station         string
	User            string
	Characteristics []*Characteristic
	Documents       []*Document
}

// NewSequenceRun creates an empty sequence run.
func NewSequenceRun(env *Env) *SequenceRun {
	return &SequenceRun{
		VersionedManufacturingStep: VersionedManufacturingStep{
			ManufacturingStep: newManufacturingStep(env),
		},
	}
}

// AddStepRun appends a step run to this sequence and returns it.
func (s *SequenceRun) AddStepRun(step *StepRun) *StepRun {
	s.Steps = append(s.Steps, step)
	return step
}

// AddCharacteristic attaches metadata to this sequence run and returns it.
func (s *SequenceRun) AddCharacteristic(c *Characteristic) *Characteristic {
	s.Characteristics = append(s.Characteristics, c)
	return c
}

// AddDocument associates a document reference with this sequence run.
func (s *SequenceRun) AddDocument(d *Document) *Document {
	s.Documents = append(s.Documents, d)
	return d
}

// Build produces the schema node for this sequence run and its step runs.
func (s *SequenceRun) Build(env *Env) (*schema.SequenceRun, error) {
	dto := &schema.SequenceRun{
		SequenceRunId:           s.ID,
		SequenceExecutionStatus: s.Status,
		StartDate:               env.Stamp(s.StartTime),
		EndDate:                 s.endDate(env),
	}
	if s.Name != "" {
		dto.SequenceFullName = s.Name
	}
	if s.Version != "" {
		dto.SequenceVersion = s.Version
	}
	if s.Station != "" {
		dto.StationFullName = s.Station
	}
	if s.User != "" {
		dto.User = s.User
	}
	for _, step := range s.Steps {
		node, err := step.Build(env)
		if err != nil {
			return nil, err
		}
		dto.StepRun = append(dto.StepRun, node)
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
