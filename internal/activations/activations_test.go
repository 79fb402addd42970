// Package activations provides unit tests for activation functions.
package activations

import (
	"math"
	"testing"
)

// TestTanh tests Tanh activation.
func TestTanh(t *testing.T) {
	tanh := Tanh{}

	tests := []struct {
		input    float64
		expected float64
	}{
		{math.Inf(-1), -1.0},
		{-2.0, math.Tanh(-2.0)},
		{0.0, 0.0},
		{0.5, 0.46211715726000974},
		{2.0, math.Tanh(2.0)},
		{math.Inf(1), 1.0},
	}

	for _, tt := range tests {
		output := tanh.Activate(tt.input)
		if math.Abs(output-tt.expected) > 1e-12 {
			t.Errorf("Tanh(%v) = %v, want %v", tt.input, output, tt.expected)
		}
	}
}

// TestTanhDerivative tests the derivative from output against sech^2(x).
func TestTanhDerivative(t *testing.T) {
	tanh := Tanh{}

	if d := tanh.DerivativeFromOutput(tanh.Activate(0)); d != 1 {
		t.Errorf("derivative at 0 = %v, want 1", d)
	}

	for _, x := range []float64{-3, -1, -0.25, 0.3, 1, 2.5} {
		got := tanh.DerivativeFromOutput(tanh.Activate(x))
		want := 1 / (math.Cosh(x) * math.Cosh(x))
		if math.Abs(got-want) > 1e-14 {
			t.Errorf("DerivativeFromOutput(tanh(%v)) = %v, want %v", x, got, want)
		}
	}
}

// TestSoftmax tests the probability simplex and in-place behaviour.
func TestSoftmax(t *testing.T) {
	x := []float64{1, 2, 3}
	out := Softmax{}.ActivateInPlace(x)

	if &out[0] != &x[0] {
		t.Error("ActivateInPlace should reuse the input slice")
	}

	e1, e2, e3 := math.Exp(1), math.Exp(2), math.Exp(3)
	sum := e1 + e2 + e3
	expected := []float64{e1 / sum, e2 / sum, e3 / sum}
	for i := range expected {
		if math.Abs(out[i]-expected[i]) > 1e-15 {
			t.Errorf("softmax[%d] = %v, want %v", i, out[i], expected[i])
		}
	}
}

// TestSoftmaxLargeInputs tests that large pre-activations do not overflow.
func TestSoftmaxLargeInputs(t *testing.T) {
	out := Softmax{}.ActivateInPlace([]float64{1000, 1000, 999})

	total := 0.0
	for i, v := range out {
		if math.IsNaN(v) || v <= 0 {
			t.Fatalf("softmax[%d] = %v, want a positive number", i, v)
		}
		total += v
	}
	if math.Abs(total-1) > 1e-12 {
		t.Errorf("softmax sums to %v, want 1", total)
	}
	if math.Abs(out[0]-out[1]) > 1e-15 {
		t.Errorf("equal inputs gave %v and %v", out[0], out[1])
	}
}

// TestSoftmaxUnderflow tests that a large gap gives an exact 0 and still sums to 1.
func TestSoftmaxUnderflow(t *testing.T) {
	out := Softmax{}.ActivateInPlace([]float64{5000, -5000})

	if out[0] != 1 || out[1] != 0 {
		t.Errorf("softmax(5000, -5000) = %v, want [1 0]", out)
	}
	for i, v := range out {
		if math.IsNaN(v) || v < 0 {
			t.Errorf("softmax[%d] = %v, want a non-negative number", i, v)
		}
	}
}

// TestSoftmaxEmpty tests the empty input.
func TestSoftmaxEmpty(t *testing.T) {
	if out := (Softmax{}).ActivateInPlace(nil); len(out) != 0 {
		t.Errorf("softmax(nil) = %v, want empty", out)
	}
}
