package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedSameSequence(t *testing.T) {
	a, b := New(42), New(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(17), b.Intn(17))
		assert.Equal(t, a.IntRange(3, 9), b.IntRange(3, 9))
	}
}

func TestRanges(t *testing.T) {
	g := New(7)

	for i := 0; i < 1000; i++ {
		f := g.Float64()
		assert.True(t, f >= 0 && f < 1, "Float64() = %v", f)

		n := g.Intn(5)
		assert.True(t, n >= 0 && n < 5, "Intn(5) = %d", n)

		r := g.IntRange(-3, 4)
		assert.True(t, r >= -3 && r < 4, "IntRange(-3, 4) = %d", r)
	}
}

func TestIntRangeSingleValue(t *testing.T) {
	g := New(1)
	assert.Equal(t, 5, g.IntRange(5, 6))
}
