package model

import (
	"time"

	"github.com/mfgkit/proligentgo/internal/schema"
)

// ProductUnit describes the physical unit under test. It sits beside the
// process hierarchy rather than inside it; the two are correlated by the
// product unit identifier.
type ProductUnit struct {
	ProductUnitIdentifier string
	ProductFullName       string
	Characteristics       []*Characteristic
	Documents             []*Document
	Manufacturer          string
	CreationTime          time.Time
	ManufacturingTime     time.Time
	Scrapped              bool
	ScrapTime             time.Time
}

// NewProductUnit creates a product unit with a fresh identifier.
func NewProductUnit(env *Env) *ProductUnit {
	return &ProductUnit{ProductUnitIdentifier: env.newID()}
}

// AddCharacteristic attaches metadata to this product unit and returns it.
func (p *ProductUnit) AddCharacteristic(c *Characteristic) *Characteristic {
	p.Characteristics = append(p.Characteristics, c)
	return c
}

// AddDocument associates a document reference with this product unit.
func (p *ProductUnit) AddDocument(d *Document) *Document {
	p.Documents = append(p.Documents, d)
	return d
}

// Build produces the schema node for this product unit. Zero timestamps and
// an unset scrapped flag are suppressed.
func (p *ProductUnit) Build(env *Env) (*schema.ProductUnit, error) {
	dto := &schema.ProductUnit{
		ProductUnitIdentifier: p.ProductUnitIdentifier,
		ProductFullName:       p.ProductFullName,
	}
	if p.Manufacturer != "" {
		dto.ByManufacturer = p.Manufacturer
	}
	if !p.CreationTime.IsZero() {
		dto.CreationTime = env.Stamp(p.CreationTime)
	}
	if !p.ManufacturingTime.IsZero() {
		dto.ManufacturingTime = env.Stamp(p.ManufacturingTime)
	}
	if p.Scrapped {
		dto.Scrapped = true
	}
	if !p.ScrapTime.IsZero() {
		dto.ScrappedTime = env.Stamp(p.ScrapTime)
	}
	var err error
	dto.Characteristic, err = buildCharacteristics(env, p.Characteristics)
	if err != nil {
		return nil, err
	}
	dto.Document, err = buildDocuments(env, p.Documents)
	if err != nil {
		return nil, err
	}
	return dto, nil
}
