package fp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadStore(t *testing.T) {
	lanes := MaxLanes[float64]()
	src := make([]float64, lanes+3)
	for i := range src {
		src[i] = float64(i) + 0.5
	}

	v := Load(src)
	assert.Equal(t, lanes, v.NumLanes())
	assert.Equal(t, src[:lanes], v.Data())

	dst := make([]float64, lanes)
	Store(v, dst)
	assert.Equal(t, src[:lanes], dst)

	// Short source and short destination.
	short := Load(src[:1])
	assert.Equal(t, 1, short.NumLanes())
	one := make([]float64, 1)
	v.Store(one)
	assert.Equal(t, src[0], one[0])
}

func TestSet(t *testing.T) {
	v := Set[float32](2.5)
	assert.Equal(t, MaxLanes[float32](), v.NumLanes())
	for _, x := range v.Data() {
		assert.Equal(t, float32(2.5), x)
	}
}
