package model

import "github.com/mfgkit/proligentgo/internal/schema"

// Characteristic is a free-form metadata pair attached to a run or a product
// unit. An empty value is suppressed from the document.
type Characteristic struct {
	FullName string
	Value    string
}

// Build produces the schema node for this characteristic.
func (c *Characteristic) Build(env *Env) (*schema.Characteristic, error) {
	dto := &schema.Characteristic{FullName: c.FullName}
	if c.Value != "" {
		dto.Value = c.Value
	}
	return dto, nil
}
