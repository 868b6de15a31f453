package model

import (
	"errors"
	"strconv"
	"time"

	"github.com/mfgkit/proligentgo/internal/schema"
)

// ErrInvalidValueKind is returned when a measure is built with a value that
// carries none of the five supported kinds (typically a zero Value).
var ErrInvalidValueKind = errors.New("measure value has no valid kind")

// Value is the tagged union of the five measured-value kinds. The kind is
// fixed by the constructor that produced the value; there is no coercion
// between kinds, and a zero Value fails the build.
type Value struct {
	kind    schema.MeasureKind
	text    string
	instant time.Time
}

// BoolValue tags a boolean measurement.
func BoolValue(v bool) Value {
	return Value{kind: schema.KindBool, text: strconv.FormatBool(v)}
}

// StringValue tags a free-text measurement.
func StringValue(v string) Value {
	return Value{kind: schema.KindString, text: v}
}

// IntValue tags an integer measurement.
func IntValue(v int64) Value {
	return Value{kind: schema.KindInteger, text: strconv.FormatInt(v, 10)}
}

// RealValue tags a real-number measurement.
func RealValue(v float64) Value {
	return Value{kind: schema.KindReal, text: strconv.FormatFloat(v, 'g', -1, 64)}
}

// TimeValue tags a timestamp measurement. The instant is rendered with the
// build environment's formatter, like every other timestamp in the document.
func TimeValue(v time.Time) Value {
	return Value{kind: schema.KindDateTime, instant: v}
}

// Kind reports the value's kind tag; empty for a zero Value.
func (v Value) Kind() schema.MeasureKind {
	return v.kind
}

func (v Value) build(env *Env) (schema.MeasureValue, error) {
	switch v.kind {
	case schema.KindBool, schema.KindString, schema.KindInteger, schema.KindReal:
		return schema.MeasureValue{Kind: v.kind, Text: v.text}, nil
	case schema.KindDateTime:
		return schema.MeasureValue{Kind: v.kind, Text: env.Stamp(v.instant)}, nil
	default:
		return schema.MeasureValue{}, ErrInvalidValueKind
	}
}
