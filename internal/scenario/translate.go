package scenario

import (
	"fmt"
	"time"

	"github.com/mfgkit/proligentgo/internal/model"
	"github.com/mfgkit/proligentgo/internal/schema"
	"github.com/mfgkit/proligentgo/internal/timefmt"
)

// The translate layer converts decoded HCL blocks into model entities. All
// attaching goes through the model's Add methods so attach-time defaulting
// (station inheritance, process-name fill) behaves exactly as it does for
// programmatic construction.

func translateWarehouse(b *warehouseBlock, env *model.Env) (*model.DataWareHouse, error) {
	w := model.NewDataWareHouse(env)
	if b.GenerationTime != "" {
		t, err := timefmt.ParseInput(b.GenerationTime)
		if err != nil {
			return nil, fmt.Errorf("warehouse generation_time: %w", err)
		}
		w.GenerationTime = t
	}
	if b.SourceFingerprint != "" {
		w.SourceFingerprint = b.SourceFingerprint
	}
	if b.ProductUnit != nil {
		unit, err := translateProductUnit(b.ProductUnit, env)
		if err != nil {
			return nil, err
		}
		w.SetProductUnit(unit)
	}
	if b.Process != nil {
		process, err := translateProcess(b.Process, env)
		if err != nil {
			return nil, err
		}
		w.SetProcessRun(process)
	}
	return w, nil
}

func translateProductUnit(b *productUnitBlock, env *model.Env) (*model.ProductUnit, error) {
	unit := model.NewProductUnit(env)
	if b.Identifier != "" {
		unit.ProductUnitIdentifier = b.Identifier
	}
	unit.ProductFullName = b.FullName
	unit.Manufacturer = b.Manufacturer
	unit.Scrapped = b.Scrapped
	for _, f := range []struct {
		raw string
		dst *time.Time
	}{
		{b.CreationTime, &unit.CreationTime},
		{b.ManufacturingTime, &unit.ManufacturingTime},
		{b.ScrapTime, &unit.ScrapTime},
	} {
		if f.raw == "" {
			continue
		}
		t, err := timefmt.ParseInput(f.raw)
		if err != nil {
			return nil, fmt.Errorf("product_unit: %w", err)
		}
		*f.dst = t
	}
	for _, c := range b.Characteristics {
		unit.AddCharacteristic(&model.Characteristic{FullName: c.FullName, Value: c.Value})
	}
	for _, d := range b.Documents {
		unit.AddDocument(translateDocument(d, env))
	}
	return unit, nil
}

func translateProcess(b *processBlock, env *model.Env) (*model.ProcessRun, error) {
	p := model.NewProcessRun(env)
	p.Name = b.Name
	p.Version = b.Version
	p.ProcessMode = b.Mode
	if b.ProductUnitIdentifier != "" {
		p.ProductUnitIdentifier = b.ProductUnitIdentifier
	}
	if b.ProductFullName != "" {
		p.ProductFullName = b.ProductFullName
	}
	if err := applyLifecycle(&p.ManufacturingStep, "process", b.StartTime, b.EndTime, b.Status); err != nil {
		return nil, err
	}
	for _, ob := range b.Operations {
		op, err := translateOperation(ob, env)
		if err != nil {
			return nil, err
		}
		p.AddOperationRun(op)
	}
	return p, nil
}

func translateOperation(b *operationBlock, env *model.Env) (*model.OperationRun, error) {
	op := model.NewOperationRun(env)
	op.Name = b.Name
	op.Station = b.Station
	op.User = b.User
	op.ProcessName = b.ProcessName
	if err := applyLifecycle(&op.ManufacturingStep, "operation", b.StartTime, b.EndTime, b.Status); err != nil {
		return nil, err
	}
	for _, sb := range b.Sequences {
		seq, err := translateSequence(sb, env)
		if err != nil {
			return nil, err
		}
		op.AddSequenceRun(seq)
	}
	for _, c := range b.Characteristics {
		op.AddCharacteristic(&model.Characteristic{FullName: c.FullName, Value: c.Value})
	}
	for _, d := range b.Documents {
		op.AddDocument(translateDocument(d, env))
	}
	return op, nil
}

func translateSequence(b *sequenceBlock, env *model.Env) (*model.SequenceRun, error) {
	seq := model.NewSequenceRun(env)
	seq.Name = b.Name
	seq.Version = b.Version
	seq.Station = b.Station
	seq.User = b.User
	if err := applyLifecycle(&seq.ManufacturingStep, "sequence", b.StartTime, b.EndTime, b.Status); err != nil {
		return nil, err
	}
	for _, sb := range b.Steps {
		step, err := translateStep(sb, env)
		if err != nil {
			return nil, err
		}
		seq.AddStepRun(step)
	}
	for _, c := range b.Characteristics {
		seq.AddCharacteristic(&model.Characteristic{FullName: c.FullName, Value: c.Value})
	}
	for _, d := range b.Documents {
		seq.AddDocument(translateDocument(d, env))
	}
	return seq, nil
}

func translateStep(b *stepBlock, env *model.Env) (*model.StepRun, error) {
	step := model.NewStepRun(env, nil)
	step.Name = b.Name
	if err := applyLifecycle(&step.ManufacturingStep, "step", b.StartTime, b.EndTime, b.Status); err != nil {
		return nil, err
	}
	for _, mb := range b.Measures {
		m, err := translateMeasure(mb, env)
		if err != nil {
			return nil, err
		}
		step.AddMeasure(m)
	}
	for _, c := range b.Characteristics {
		step.AddCharacteristic(&model.Characteristic{FullName: c.FullName, Value: c.Value})
	}
	for _, d := range b.Documents {
		step.AddDocument(translateDocument(d, env))
	}
	return step, nil
}

func translateMeasure(b *measureBlock, env *model.Env) (*model.Measure, error) {
	value, err := measureValue(b.Value, b.Kind)
	if err != nil {
		return nil, fmt.Errorf("measure: %w", err)
	}
	m := model.NewMeasure(env, value)
	m.Unit = b.Unit
	m.Symbol = b.Symbol
	m.Comments = b.Comments
	if b.Time != "" {
		t, err := timefmt.ParseInput(b.Time)
		if err != nil {
			return nil, fmt.Errorf("measure time: %w", err)
		}
		m.Time = t
	}
	if b.Status != "" {
		status, err := schema.ParseExecutionStatus(b.Status)
		if err != nil {
			return nil, fmt.Errorf("measure: %w", err)
		}
		m.Status = status
	}
	if b.Limit != nil {
		expr, err := model.ParseLimitExpression(b.Limit.Expression)
		if err != nil {
			return nil, fmt.Errorf("measure limit: %w", err)
		}
		lower, err := boundText(b.Limit.Lower)
		if err != nil {
			return nil, fmt.Errorf("measure limit: %w", err)
		}
		higher, err := boundText(b.Limit.Higher)
		if err != nil {
			return nil, fmt.Errorf("measure limit: %w", err)
		}
		m.Limit = model.NewLimit(expr, lower, higher)
	}
	return m, nil
}

func translateDocument(b documentBlock, env *model.Env) *model.Document {
	doc := model.NewDocument(env, b.FileName)
	if b.Identifier != "" {
		doc.Identifier = b.Identifier
	}
	doc.Name = b.Name
	doc.Description = b.Description
	return doc
}

// applyLifecycle stamps the start time and, when a status is present,
// completes the step. An end_time without a status is recorded but stays
// unpublished until the step completes, mirroring programmatic use.
func applyLifecycle(step *model.ManufacturingStep, kind, start, end, status string) error {
	if start != "" {
		t, err := timefmt.ParseInput(start)
		if err != nil {
			return fmt.Errorf("%s start_time: %w", kind, err)
		}
		step.StartTime = t
	}
	var endTime time.Time
	if end != "" {
		t, err := timefmt.ParseInput(end)
		if err != nil {
			return fmt.Errorf("%s end_time: %w", kind, err)
		}
		endTime = t
	}
	if status != "" {
		parsed, err := schema.ParseExecutionStatus(status)
		if err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
		step.Complete(parsed, endTime)
	} else if !endTime.IsZero() {
		step.EndTime = endTime
	}
	return nil
}
