package model

import "github.com/mfgkit/proligentgo/internal/schema"

// Document references an external artifact (report, certificate, checklist)
// attached to a run or a product unit.
type Document struct {
	FileName    string
	Identifier  string
	Name        string
	Description string
}

// NewDocument creates a document reference with a fresh identifier.
func NewDocument(env *Env, fileName string) *Document {
	return &Document{
		FileName:   fileName,
		Identifier: env.newID(),
	}
}

// Build produces the schema node for this document reference.
func (d *Document) Build(env *Env) (*schema.Document, error) {
	dto := &schema.Document{
		Identifier: d.Identifier,
		FileName:   d.FileName,
	}
	if d.Name != "" {
		dto.Name = d.Name
	}
	if d.Description != "" {
		dto.Description = d.Description
	}
	return dto, nil
}
