package model

import (
	"time"

	"github.com/mfgkit/proligentgo/internal/timefmt"
	"github.com/mfgkit/proligentgo/internal/uid"
)

// DefaultDestinationDir is where the Proligent integration service picks up
// acquisition files on a stock install.
const DefaultDestinationDir = `C:\Proligent\IntegrationService\Acquisition`

// Env carries the ambient dependencies of the model: the output timezone,
// the clock, the id generator, and the default save directory. Entities
// receive it explicitly on construction and build instead of reaching for
// globals, which is what makes frozen-clock tests possible.
//
// The zero value works: nil Now and NewID fall back to the wall clock and
// random UUIDs, a nil Location leaves timestamps in their own zone.
type Env struct {
	Location       *time.Location
	Now            func() time.Time
	NewID          func() string
	DestinationDir string
}

// DefaultEnv returns an environment with production defaults.
func DefaultEnv() *Env {
	return &Env{
		Location:       time.Local,
		Now:            time.Now,
		NewID:          uid.New,
		DestinationDir: DefaultDestinationDir,
	}
}

// Stamp renders t as document text in the environment's zone.
func (e *Env) Stamp(t time.Time) string {
	return timefmt.Format(t, e.Location)
}

func (e *Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Env) newID() string {
	if e.NewID == nil {
		return uid.New()
	}
	return e.NewID()
}
