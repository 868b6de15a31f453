package scenario

import (
	"fmt"
	"math/big"
	"time"

	"github.com/zclconf/go-cty/cty"

	"github.com/mfgkit/proligentgo/internal/model"
	"github.com/mfgkit/proligentgo/internal/schema"
)

// measureValue maps a decoded cty value (plus an optional kind override)
// onto the model's tagged value union. There is no coercion between kinds:
// an override may only refine what the HCL type already is.
func measureValue(v cty.Value, kindOverride string) (model.Value, error) {
	if v.IsNull() || !v.IsKnown() {
		return model.Value{}, fmt.Errorf("measure value must be a known, non-null value")
	}
	switch v.Type() {
	case cty.Bool:
		if err := allowOverride(kindOverride, schema.KindBool); err != nil {
			return model.Value{}, err
		}
		return model.BoolValue(v.True()), nil
	case cty.String:
		if schema.MeasureKind(kindOverride) == schema.KindDateTime {
			t, err := time.Parse(time.RFC3339Nano, v.AsString())
			if err != nil {
				return model.Value{}, fmt.Errorf("DATETIME measure value %q is not RFC 3339", v.AsString())
			}
			return model.TimeValue(t), nil
		}
		if err := allowOverride(kindOverride, schema.KindString); err != nil {
			return model.Value{}, err
		}
		return model.StringValue(v.AsString()), nil
	case cty.Number:
		bf := v.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact && schema.MeasureKind(kindOverride) != schema.KindReal {
			if err := allowOverride(kindOverride, schema.KindInteger); err != nil {
				return model.Value{}, err
			}
			return model.IntValue(i), nil
		}
		if err := allowOverride(kindOverride, schema.KindReal); err != nil {
			return model.Value{}, err
		}
		f, _ := bf.Float64()
		return model.RealValue(f), nil
	default:
		return model.Value{}, fmt.Errorf("measure value type %s is not supported", v.Type().FriendlyName())
	}
}

func allowOverride(override string, natural schema.MeasureKind) error {
	if override == "" || schema.MeasureKind(override) == natural {
		return nil
	}
	return fmt.Errorf("kind %q conflicts with value of kind %s", override, natural)
}

// boundText renders a limit bound: numbers in their shortest decimal form,
// strings verbatim, absent bounds as the empty string.
func boundText(v cty.Value) (string, error) {
	if v.IsNull() {
		return "", nil
	}
	switch v.Type() {
	case cty.String:
		return v.AsString(), nil
	case cty.Number:
		return v.AsBigFloat().Text('f', -1), nil
	default:
		return "", fmt.Errorf("limit bound type %s is not supported", v.Type().FriendlyName())
	}
}
