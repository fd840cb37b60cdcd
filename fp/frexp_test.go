package fp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var frexpInputs = []float64{
	1, -1, 0.5, 2, 3, 12, -12, 1e-300, 1e300, math.Pi,
	math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
	SmallestNormal, SmallestNormal / 3, math.MaxFloat64,
}

func TestFrexpMatchesStdlib(t *testing.T) {
	for _, x := range frexpInputs {
		wantFrac, wantExp := math.Frexp(x)
		frac, exp := Frexp(x)
		assert.Equal(t, math.Float64bits(wantFrac), math.Float64bits(frac), "Frexp(%g) frac", x)
		assert.Equal(t, wantExp, exp, "Frexp(%g) exp", x)
	}
}

func TestFrexpSpecialCases(t *testing.T) {
	frac, exp := Frexp(math.Copysign(0, -1))
	require.True(t, Signbit(frac))
	require.Zero(t, exp)

	frac, exp = Frexp(math.Inf(-1))
	require.True(t, math.IsInf(frac, -1))
	require.Zero(t, exp)

	frac, _ = Frexp(math.NaN())
	require.True(t, math.IsNaN(frac))
}

func TestLdexpMatchesStdlib(t *testing.T) {
	exps := []int{-1100, -1074, -1060, -1022, -52, -1, 0, 1, 52, 1000, 1023, 1024, 2000}
	for _, x := range frexpInputs {
		for _, e := range exps {
			want := math.Ldexp(x, e)
			got := Ldexp(x, e)
			assert.Equal(t, math.Float64bits(want), math.Float64bits(got), "Ldexp(%g, %d)", x, e)
		}
	}
}

func TestLdexpInvertsFrexp(t *testing.T) {
	for _, x := range frexpInputs {
		frac, exp := Frexp(x)
		assert.Equal(t, x, Ldexp(frac, exp), "Ldexp(Frexp(%g))", x)
	}
}
