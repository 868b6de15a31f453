package model

import (
	"time"

	"github.com/mfgkit/proligentgo/internal/schema"
)

// DataWareHouse is the root aggregate of one export: at most one top-level
// process run and at most one product unit, stamped with the generation time
// and a fingerprint identifying the producing data source.
type DataWareHouse struct {
	TopProcess        *ProcessRun
	ProductUnit       *ProductUnit
	GenerationTime    time.Time
	SourceFingerprint string
}

// NewDataWareHouse creates a root aggregate stamped with the current instant
// and a fresh source fingerprint.
func NewDataWareHouse(env *Env) *DataWareHouse {
	return &DataWareHouse{
		GenerationTime:    env.now(),
		SourceFingerprint: env.newID(),
	}
}

// SetProcessRun assigns the single top-level process run and returns it.
func (w *DataWareHouse) SetProcessRun(p *ProcessRun) *ProcessRun {
	w.TopProcess = p
	return p
}

// SetProductUnit assigns the single product unit and returns it.
func (w *DataWareHouse) SetProductUnit(u *ProductUnit) *ProductUnit {
	w.ProductUnit = u
	return u
}

// Build produces the document root. The schema models both children as
// repeatable, so each present child becomes a single-element list.
func (w *DataWareHouse) Build(env *Env) (*schema.Datawarehouse, error) {
	dto := &schema.Datawarehouse{
		GenerationTime:        env.Stamp(w.GenerationTime),
		DataSourceFingerprint: w.SourceFingerprint,
	}
	if w.TopProcess != nil {
		node, err := w.TopProcess.Build(env)
		if err != nil {
			return nil, err
		}
		dto.TopProcessRun = []*schema.ProcessRun{node}
	}
	if w.ProductUnit != nil {
		node, err := w.ProductUnit.Build(env)
		if err != nil {
			return nil, err
		}
		dto.ProductUnit = []*schema.ProductUnit{node}
	}
	return dto, nil
}
