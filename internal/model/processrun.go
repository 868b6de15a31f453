package model

import "github.com/mfgkit/proligentgo/internal/schema"

// ProcessRun is the top level of the execution hierarchy: one run of a
// manufacturing process against one product unit.
type ProcessRun struct {
	VersionedManufacturingStep
	ProductUnitIdentifier string
	ProductFullName       string
	Operations            []*OperationRun
	ProcessMode           string
}

// NewProcessRun creates an empty process run with a fresh product unit
// identifier and the conventional "DUT" product name.
func NewProcessRun(env *Env) *ProcessRun {
	return &ProcessRun{
		VersionedManufacturingStep: VersionedManufacturingStep{
			ManufacturingStep: newManufacturingStep(env),
		},
		ProductUnitIdentifier: env.newID(),
		ProductFullName:       "DUT",
	}
}

// AddOperationRun appends an operation run and returns it. An operation
// attached without a process name inherits this run's name if it is already
// set; Build repeats the fill, so a name assigned after attach still
// propagates.
func (p *ProcessRun) AddOperationRun(op *OperationRun) *OperationRun {
	if op.ProcessName == "" && p.Name != "" {
		op.ProcessName = p.Name
	}
	p.Operations = append(p.Operations, op)
	return op
}

// Build produces the schema node for this process run and its operations.
func (p *ProcessRun) Build(env *Env) (*schema.ProcessRun, error) {
	// Late back-fill: the process name may have been assigned after the
	// operations were attached.
	for _, op := range p.Operations {
		if op.ProcessName == "" {
			op.ProcessName = p.Name
		}
	}
	dto := &schema.ProcessRun{
		ProcessRunId:          p.ID,
		ProcessRunStatus:      p.Status,
		ProcessRunStartTime:   env.Stamp(p.StartTime),
		ProcessRunEndTime:     p.endDate(env),
		ProductUnitIdentifier: p.ProductUnitIdentifier,
		ProductFullName:       p.ProductFullName,
	}
	if p.Name != "" {
		dto.ProcessFullName = p.Name
	}
	if p.Version != "" {
		dto.ProcessVersion = p.Version
	}
	if p.ProcessMode != "" {
		dto.ProcessMode = p.ProcessMode
	}
	for _, op := range p.Operations {
		node, err := op.Build(env)
		if err != nil {
			return nil, err
		}
		dto.OperationRun = append(dto.OperationRun, node)
	}
	return dto, nil
}
