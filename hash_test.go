package hashset

import (
	"math"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
)

func TestSlot(t *testing.T) {
	tests := []struct {
		hash int64
		n    int
		want int
	}{
		{0, 8, 0},
		{7, 8, 7},
		{8, 8, 0},
		{-1, 8, 7},
		{-8, 8, 0},
		{-9, 8, 7},
		{math.MinInt64, 8, 0},
		{math.MaxInt64, 8, 7},
		{-5, 1, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slot(tt.hash, tt.n), "slot(%d, %d)", tt.hash, tt.n)
	}
}

func TestHashOfIntegersIsIdentity(t *testing.T) {
	assert.Equal(t, int64(42), hashOf(42))
	assert.Equal(t, int64(-3), hashOf(int8(-3)))
	assert.Equal(t, int64(70000), hashOf(uint32(70000)))
	assert.Equal(t, int64(-1), hashOf(uint64(math.MaxUint64)))
}

func TestHashOfString(t *testing.T) {
	assert.Equal(t, int64(xxhash.Sum64String("abc")), hashOf("abc"))
}

func TestHashOfIsStable(t *testing.T) {
	type point struct{ X, Y int }

	assert.Equal(t, hashOf(point{1, 2}), hashOf(point{1, 2}))
	assert.Equal(t, hashOf(1.5), hashOf(1.5))
	assert.Equal(t, hashOf(0.0), hashOf(math.Copysign(0, -1)), "+0 and -0 are equal and must hash alike")
}
