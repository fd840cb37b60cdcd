package fp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchLevelString(t *testing.T) {
	assert.Equal(t, "scalar", DispatchScalar.String())
	assert.Equal(t, "sse2", DispatchSSE2.String())
	assert.Equal(t, "avx2", DispatchAVX2.String())
	assert.Equal(t, "avx512", DispatchAVX512.String())
	assert.Equal(t, "neon", DispatchNEON.String())
	assert.Equal(t, "unknown", DispatchLevel(99).String())
}

func TestCurrentLevel(t *testing.T) {
	require.Equal(t, CurrentLevel().String(), CurrentName())
	require.GreaterOrEqual(t, CurrentWidth(), 16)
	assert.Equal(t, CurrentWidth()/8, MaxLanes[float64]())
	assert.Equal(t, CurrentWidth()/4, MaxLanes[float32]())
	t.Logf("dispatch: %s (%d bytes)", CurrentName(), CurrentWidth())
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv("S21_NO_SIMD", tt.val)
			assert.Equal(t, tt.want, NoSimdEnv())
		})
	}
}

func TestScalarMode(t *testing.T) {
	level, width := currentLevel, currentWidth
	t.Cleanup(func() { setLevel(level, width) })

	setScalarMode()
	assert.Equal(t, DispatchScalar, CurrentLevel())
	assert.Equal(t, "scalar", CurrentName())
	assert.Equal(t, 2, MaxLanes[float64]())
}
