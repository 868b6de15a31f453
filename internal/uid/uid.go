// Package uid generates the globally unique identifiers stamped on every
// warehouse entity. The warehouse correlates records across documents purely
// by these ids, so they must never collide within a process lifetime.
package uid

import "github.com/google/uuid"

// New returns a freshly generated random identifier in canonical UUID form.
// Every call produces a new value; there is no shared counter.
func New() string {
	return uuid.NewString()
}
