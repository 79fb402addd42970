// Package weights provides arithmetic over per-layer weight and gradient sets.
//
// A Set holds one flat slice per layer. The perceptron's weights, the
// gradients computed for them and the trainers' momentum and best-weight
// snapshots all share this shape, so they can be combined element by element.
package weights

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/FlavioCFOliveira/nnx/internal/nnerr"
)

// Set is a sequence of per-layer weight vectors.
type Set [][]float64

// Clone returns a deep copy of s.
func (s Set) Clone() Set {
	clone := make(Set, len(s))
	for i, layer := range s {
		clone[i] = make([]float64, len(layer))
		copy(clone[i], layer)
	}
	return clone
}

// ZerosLike returns a set shaped like s with every entry zero.
func (s Set) ZerosLike() Set {
	zeros := make(Set, len(s))
	for i, layer := range s {
		zeros[i] = make([]float64, len(layer))
	}
	return zeros
}

// CheckShape reports whether other has the same number of layers as s and
// each layer the same length.
func (s Set) CheckShape(other Set) error {
	if len(s) != len(other) {
		return nnerr.Newf("weight set should have %d layers; was %d.", len(s), len(other))
	}
	for i := range s {
		if len(s[i]) != len(other[i]) {
			return nnerr.Newf("weight set layer %d should have length %d; was %d.", i, len(s[i]), len(other[i]))
		}
	}
	return nil
}

// AddInPlace adds other to s element-wise.
func (s Set) AddInPlace(other Set) error {
	if len(s) == 0 {
		return nnerr.Newf("target weight set cannot be empty.")
	}
	if err := s.CheckShape(other); err != nil {
		return err
	}
	for i := range s {
		floats.Add(s[i], other[i])
	}
	return nil
}

// MultiplyInPlace scales every entry of s by c.
func (s Set) MultiplyInPlace(c float64) error {
	if len(s) == 0 {
		return nnerr.Newf("target weight set cannot be empty.")
	}
	if math.IsNaN(c) {
		return nnerr.Newf("multiplier cannot be NaN.")
	}
	for _, layer := range s {
		floats.Scale(c, layer)
	}
	return nil
}

// CopyTo copies the values of s into dst, which must have the same shape.
// dst keeps its own backing arrays.
func (s Set) CopyTo(dst Set) error {
	if err := dst.CheckShape(s); err != nil {
		return err
	}
	for i := range s {
		copy(dst[i], s[i])
	}
	return nil
}

// Count returns the total number of entries.
func (s Set) Count() int {
	n := 0
	for _, layer := range s {
		n += len(layer)
	}
	return n
}
