package model

import (
	"path/filepath"

	"github.com/mfgkit/proligentgo/internal/xmlout"
)

// Buildable is satisfied by every entity in the tree: building produces the
// schema node for that entity. The type parameter keeps each entity's Build
// fully typed while still letting ToXML and SaveXML work on any of them.
type Buildable[T any] interface {
	Build(env *Env) (T, error)
}

// ToXML builds the entity and serializes the result to canonical XML text.
func ToXML[T any](b Buildable[T], env *Env) ([]byte, error) {
	dto, err := b.Build(env)
	if err != nil {
		return nil, err
	}
	return xmlout.Render(dto)
}

// SaveXML serializes the entity and writes it to dest, returning the path
// written. An empty dest writes into the configured destination directory
// under a generated "Proligent_<uuid>.xml" name. The document is fully built
// and rendered before the file is opened, so a build or serialization
// failure leaves no file behind.
func SaveXML[T any](b Buildable[T], env *Env, dest string) (string, error) {
	data, err := ToXML(b, env)
	if err != nil {
		return "", err
	}
	if dest == "" {
		dest = filepath.Join(env.DestinationDir, "Proligent_"+env.newID()+".xml")
	}
	if err := xmlout.Write(dest, data); err != nil {
		return "", err
	}
	return dest, nil
}
