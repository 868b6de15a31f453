package model

import "github.com/mfgkit/proligentgo/internal/schema"

// OperationRun groups the sequence runs executed within one process
// operation.
type OperationRun struct {
	ManufacturingStep
	Sequences       []*SequenceRun
	Station         string
	User            string
	ProcessName     string
	Characteristics []*Characteristic
	Documents       []*Document
}

// NewOperationRun creates an empty operation run.
func NewOperationRun(env *Env) *OperationRun {
	return &OperationRun{ManufacturingStep: newManufacturingStep(env)}
}

// AddSequenceRun appends a sequence run and returns it. A sequence attached
// without a station of its own inherits this operation's station; the copy
// happens here, once, and is never re-evaluated.
func (o *OperationRun) AddSequenceRun(seq *SequenceRun) *SequenceRun {
	if seq.Station == "" {
		seq.Station = o.Station
	}
	o.Sequences = append(o.Sequences, seq)
	return seq
}

// AddCharacteristic attaches metadata to this operation run and returns it.
func (o *OperationRun) AddCharacteristic(c *Characteristic) *Characteristic {
	o.Characteristics = append(o.Characteristics, c)
	return c
}

// AddDocument associates a document reference with this operation run.
func (o *OperationRun) AddDocument(d *Document) *Document {
	o.Documents = append(o.Documents, d)
	return d
}

// Build produces the schema node for this operation run and its sequences.
func (o *OperationRun) Build(env *Env) (*schema.OperationRun, error) {
	dto := &schema.OperationRun{
		OperationRunId:        o.ID,
		OperationStatus:       o.Status,
		OperationRunStartTime: env.Stamp(o.StartTime),
		OperationRunEndTime:   o.endDate(env),
	}
	if o.Name != "" {
		dto.OperationName = o.Name
	}
	if o.ProcessName != "" {
		dto.ProcessFullName = o.ProcessName
	}
	if o.Station != "" {
		dto.StationFullName = o.Station
	}
	if o.User != "" {
		dto.User = o.User
	}
	for _, seq := range o.Sequences {
		node, err := seq.Build(env)
		if err != nil {
			return nil, err
		}
		dto.SequenceRun = append(dto.SequenceRun, node)
	}
	var err error
	dto.Characteristic, err = buildCharacteristics(env, o.Characteristics)
	if err != nil {
		return nil, err
	}
	dto.Document, err = buildDocuments(env, o.Documents)
	if err != nil {
		return nil, err
	}
	return dto, nil
}
