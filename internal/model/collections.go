package model

import "github.com/mfgkit/proligentgo/internal/schema"

// Shared child-collection builders. Order is preserved exactly as attached;
// empty collections produce nil slices so the elements are absent entirely.

func buildCharacteristics(env *Env, cs []*Characteristic) ([]*schema.Characteristic, error) {
	if len(cs) == 0 {
		return nil, nil
	}
	out := make([]*schema.Characteristic, 0, len(cs))
	for _, c := range cs {
		node, err := c.Build(env)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return out, nil
}

func buildDocuments(env *Env, ds []*Document) ([]*schema.Document, error) {
	if len(ds) == 0 {
		return nil, nil
	}
	out := make([]*schema.Document, 0, len(ds))
	for _, d := range ds {
		node, err := d.Build(env)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return out, nil
}
