package quantity

import (
	"encoding/json"
	"fmt"
	"math"
)

type wireQuantity struct {
	Value wireFloat `json:"value"`
	Unit  string    `json:"unit"`
}

// wireFloat is a float64 that encodes NaN and the infinities as the
// strings "NaN", "+Inf" and "-Inf", which JSON numbers cannot carry.
type wireFloat float64

func (f wireFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

func (f *wireFloat) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || data[0] != '"' {
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = wireFloat(v)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "NaN":
		*f = wireFloat(math.NaN())
	case "+Inf":
		*f = wireFloat(math.Inf(1))
	case "-Inf":
		*f = wireFloat(math.Inf(-1))
	default:
		return fmt.Errorf("value %q is not a number", s)
	}
	return nil
}

// MarshalJSON encodes q as {"value":5,"unit":"m * s^-2"}. Non-finite
// values encode as "NaN", "+Inf" or "-Inf".
func (q Quantity[D]) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireQuantity{Value: wireFloat(q.value), Unit: q.Unit().String()})
}

// UnmarshalJSON decodes the MarshalJSON form. The encoded unit must render
// identically to D's unit.
func (q *Quantity[D]) UnmarshalJSON(data []byte) error {
	var w wireQuantity
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decoding quantity: %w", err)
	}
	if want := q.Unit().String(); w.Unit != want {
		return fmt.Errorf("decoding quantity: unit %q does not match %q", w.Unit, want)
	}
	q.value = float64(w.Value)
	return nil
}
