package quantity_test

import (
	"encoding/json"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/uom/internal/testutil"
	"github.com/roach88/uom/quantity"
	"github.com/roach88/uom/si"
	"github.com/roach88/uom/unit"
)

func TestAddSubRoundTrip(t *testing.T) {
	q1 := quantity.Scale(4.0, si.Metre)
	q2 := quantity.Scale(1.5, si.Metre)

	got := q1.Add(q2).Sub(q2)
	assert.Equal(t, 4.0, got.Value())
	assert.True(t, got.Equal(q1))
}

func TestScalarOps(t *testing.T) {
	m := quantity.Scale(5, si.Kilogram)

	assert.Equal(t, 15.0, quantity.Scale(3, m).Value())
	assert.Equal(t, 15.0, m.MulScalar(3).Value())
	assert.Equal(t, 2.5, m.DivScalar(2).Value())
	assert.Equal(t, -5.0, m.Neg().Value())
	assert.Equal(t, 5.0, m.Neg().Abs().Value())
	assert.True(t, m.Neg().Less(m))
	assert.False(t, m.Less(m))
}

func TestAssignOps(t *testing.T) {
	q := quantity.Scale(10, si.Second)

	q.AddAssign(quantity.Scale(2, si.Second))
	assert.Equal(t, 12.0, q.Value())

	q.SubAssign(quantity.Scale(4, si.Second))
	assert.Equal(t, 8.0, q.Value())

	q.MulAssign(3)
	assert.Equal(t, 24.0, q.Value())

	// In-place division divides; it must not multiply.
	q.DivAssign(4)
	assert.Equal(t, 6.0, q.Value())
}

func TestMulDivUnits(t *testing.T) {
	d := quantity.Scale(10, si.Metre)
	tm := quantity.Scale(2, si.Second)

	v := quantity.Div(d, tm)
	assert.Equal(t, 5.0, v.Value())
	assert.Equal(t, unit.New(1, 0, -1, 0, 0, 0, 0), v.Unit())

	back := quantity.As[si.Length](quantity.Mul(v, tm))
	assert.Equal(t, 10.0, back.Value())
	assert.Equal(t, si.MetreUnit, back.Unit())

	area := quantity.Mul(d, d)
	assert.Equal(t, unit.New(2, 0, 0, 0, 0, 0, 0), area.Unit())
	assert.Equal(t, 100.0, area.Value())
}

func TestRecip(t *testing.T) {
	period := quantity.Scale(4, si.Second)

	f := quantity.Recip(2, period)
	assert.Equal(t, 0.5, f.Value())
	assert.Equal(t, si.HertzUnit, f.Unit())

	hz := quantity.As[si.Frequency](f)
	assert.Equal(t, 0.5, hz.Value())
}

func TestQuotientOfSameDimensionIsDimensionless(t *testing.T) {
	ratio := quantity.Div(quantity.Scale(6, si.Metre), quantity.Scale(3, si.Metre))

	assert.True(t, ratio.Unit().IsDimensionless())
	one := quantity.As[quantity.One](ratio)
	assert.Equal(t, 2.0, one.Value())
	assert.Equal(t, "2", one.String())
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"base", quantity.Scale(3, si.Metre).String(), "3 * m"},
		{"acceleration", quantity.Scale(5, si.MetrePerSecondSquared).String(), "5 * m * s^-2"},
		{"force", quantity.Scale(2.5, si.Newton).String(), "2.5 * m * kg * s^-2"},
		{"composed", quantity.Div(quantity.Scale(5, si.Metre), quantity.Mul(si.Second, si.Second)).String(), "5 * m * s^-2"},
		{"dimensionless", quantity.New[quantity.One](0.25).String(), "0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestFloatSemantics(t *testing.T) {
	zero := quantity.New[si.Time](0)

	inf := quantity.Div(si.Metre, zero)
	assert.True(t, math.IsInf(inf.Value(), 1))

	nan := quantity.New[si.Length](math.NaN())
	assert.False(t, nan.Equal(nan), "NaN never equals itself")
	assert.True(t, math.IsNaN(nan.Add(si.Metre).Value()))
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, quantity.Sum[si.Length]().Value())
	assert.Equal(t, 6.0, quantity.Sum(si.Metre, quantity.Scale(2, si.Metre), quantity.Scale(3, si.Metre)).Value())
}

func TestZeroSize(t *testing.T) {
	assert.Equal(t, uintptr(8), unsafe.Sizeof(si.Metre))
	assert.Equal(t, uintptr(8), unsafe.Sizeof(quantity.Div(si.Joule, si.Second)))
	assert.Equal(t, uintptr(0), unsafe.Sizeof(si.Length{}))
	assert.Equal(t, uintptr(0), unsafe.Sizeof(quantity.Quot[si.Length, si.Time]{}))
}

func TestConvert(t *testing.T) {
	v := quantity.Div(quantity.Scale(9, si.Metre), si.Second)

	got, err := quantity.Convert[si.Velocity](v)
	require.NoError(t, err)
	assert.Equal(t, 9.0, got.Value())

	_, err = quantity.Convert[si.Acceleration](v)
	var mismatch *quantity.MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, si.MetrePerSecondSquaredUnit, mismatch.Want)
	assert.Equal(t, si.MetrePerSecondUnit, mismatch.Got)
	assert.EqualError(t, err, "quantity: unit mismatch: want m * s^-2, got m * s^-1")
}

func TestAsPanicsOnMismatch(t *testing.T) {
	assert.PanicsWithError(t, "quantity: unit mismatch: want dimensionless, got m", func() {
		quantity.As[quantity.One](si.Metre)
	})
}

func TestJSON(t *testing.T) {
	q := quantity.Scale(9.81, si.MetrePerSecondSquared)

	data, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value": 9.81, "unit": "m * s^-2"}`, string(data))

	var back quantity.Quantity[si.Acceleration]
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(q))

	var wrong quantity.Quantity[si.Velocity]
	err = json.Unmarshal(data, &wrong)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unit "m * s^-2" does not match "m * s^-1"`)
}

func TestJSONNonFinite(t *testing.T) {
	zero := quantity.Scale(0, si.Second)

	tests := []struct {
		name string
		q    quantity.Quantity[si.Frequency]
		json string
	}{
		{"nan", quantity.As[si.Frequency](quantity.Recip(0, zero)), `{"value": "NaN", "unit": "s^-1"}`},
		{"positive infinity", quantity.As[si.Frequency](quantity.Recip(1, zero)), `{"value": "+Inf", "unit": "s^-1"}`},
		{"negative infinity", quantity.As[si.Frequency](quantity.Recip(-1, zero)), `{"value": "-Inf", "unit": "s^-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.q)
			require.NoError(t, err)
			assert.JSONEq(t, tt.json, string(data))

			var back quantity.Quantity[si.Frequency]
			require.NoError(t, json.Unmarshal(data, &back))
			if math.IsNaN(tt.q.Value()) {
				assert.True(t, math.IsNaN(back.Value()))
			} else {
				assert.Equal(t, tt.q.Value(), back.Value())
			}
		})
	}

	var q quantity.Quantity[si.Frequency]
	err := json.Unmarshal([]byte(`{"value": "lots", "unit": "s^-1"}`), &q)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `value "lots" is not a number`)
}

func TestJSONInStruct(t *testing.T) {
	type sample struct {
		Distance quantity.Quantity[si.Length] `json:"distance"`
		Elapsed  quantity.Quantity[si.Time]   `json:"elapsed"`
	}

	in := sample{Distance: quantity.Scale(100, si.Metre), Elapsed: quantity.Scale(9.58, si.Second)}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out sample
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestMixedDimensionsDoNotCompile(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"add", "_ = si.Metre.Add(si.Kilogram)"},
		{"sub", "_ = si.Second.Sub(si.Metre)"},
		{"equal", "_ = si.Metre.Equal(si.Second)"},
		{"assign", "q := si.Metre\n\tq.AddAssign(si.Kilogram)"},
		{"helper", "_ = si.DivLengthTime(si.Second, si.Metre)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "package bad\n\nimport \"github.com/roach88/uom/si\"\n\nfunc f() {\n\t" + tt.body + "\n}\n"
			err := testutil.TypeCheck("bad.go", []byte(src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "cannot use")
		})
	}
}

func TestMatchingDimensionsCompile(t *testing.T) {
	src := `package good

import (
	"github.com/roach88/uom/quantity"
	"github.com/roach88/uom/si"
)

func f() quantity.Quantity[si.Length] {
	v := si.DivLengthTime(si.Metre, si.Second)
	return si.MulTimeVelocity(si.Second, v).Add(si.Metre)
}
`
	require.NoError(t, testutil.TypeCheck("good.go", []byte(src)))
}
