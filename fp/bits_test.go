package fp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinels(t *testing.T) {
	assert.True(t, math.IsInf(Inf(1), 1))
	assert.True(t, math.IsInf(Inf(0), 1))
	assert.True(t, math.IsInf(Inf(-1), -1))
	assert.True(t, math.IsNaN(NaN()))
	assert.Equal(t, math.MaxFloat64, MaxFloat64)
	assert.Equal(t, math.SmallestNonzeroFloat64*(1<<52), SmallestNormal)
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		nan    bool
		posInf bool
		negInf bool
	}{
		{"zero", 0, false, false, false},
		{"max", math.MaxFloat64, false, false, false},
		{"-max", -math.MaxFloat64, false, false, false},
		{"+Inf", math.Inf(1), false, true, false},
		{"-Inf", math.Inf(-1), false, false, true},
		{"NaN", math.NaN(), true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.nan, IsNaN(tt.x))
			assert.Equal(t, tt.posInf, IsInf(tt.x, 1))
			assert.Equal(t, tt.negInf, IsInf(tt.x, -1))
			assert.Equal(t, tt.posInf || tt.negInf, IsInf(tt.x, 0))
		})
	}
}

func TestSignHelpers(t *testing.T) {
	negZero := math.Copysign(0, -1)

	assert.True(t, Signbit(negZero))
	assert.False(t, Signbit(0))
	assert.True(t, Signbit(math.Inf(-1)))

	require.Equal(t, math.Float64bits(negZero), math.Float64bits(Copysign(0, -1)))
	require.Equal(t, -3.5, Copysign(3.5, -1))
	require.Equal(t, 3.5, Copysign(-3.5, 2))

	require.Equal(t, uint64(0), math.Float64bits(Abs(negZero)))
	require.Equal(t, 2.5, Abs(-2.5))
	require.True(t, math.IsInf(Abs(math.Inf(-1)), 1))
	require.True(t, math.IsNaN(Abs(math.NaN())))
}
