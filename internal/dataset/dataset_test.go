package dataset

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/FlavioCFOliveira/nnx/internal/net"
)

func TestCSVLoader(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "xor.csv")
	data := "a,b,,zero,one\n" +
		"0,0,,1,0\n" +
		"0,1,,0,1\n" +
		"1,0,,0,1\n" +
		"1,1,,1,0\n"
	if err := os.WriteFile(filename, []byte(data), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	dataset, err := LoadCSV(filename, true)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	if len(dataset.Examples) != 4 {
		t.Fatalf("expected 4 examples, got %d", len(dataset.Examples))
	}
	if !reflect.DeepEqual(dataset.InputNames, []string{"a", "b"}) {
		t.Errorf("expected input names [a b], got %v", dataset.InputNames)
	}
	if !reflect.DeepEqual(dataset.OutputNames, []string{"zero", "one"}) {
		t.Errorf("expected output names [zero one], got %v", dataset.OutputNames)
	}

	expected := net.InputOutput{Input: []float64{0, 1}, Output: []float64{0, 1}}
	if !dataset.Examples[1].Equal(expected) {
		t.Errorf("expected %v, got %v", expected, dataset.Examples[1])
	}
	if dataset.InputWidth() != 2 || dataset.OutputWidth() != 2 {
		t.Errorf("expected widths 2/2, got %d/%d", dataset.InputWidth(), dataset.OutputWidth())
	}
}

func TestReadCSVSkipsEmptyRowsAndTrailingCells(t *testing.T) {
	data := ",,,\n" +
		"\n" +
		"0.5, -1.25,,1,,\n" +
		",,\n" +
		"2,3e-2,,0\n"

	dataset, err := ReadCSV(strings.NewReader(data), false)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	expected := []net.InputOutput{
		{Input: []float64{0.5, -1.25}, Output: []float64{1}},
		{Input: []float64{2, 0.03}, Output: []float64{0}},
	}
	if len(dataset.Examples) != len(expected) {
		t.Fatalf("expected %d examples, got %d", len(expected), len(dataset.Examples))
	}
	for i := range expected {
		if !dataset.Examples[i].Equal(expected[i]) {
			t.Errorf("example %d: expected %v, got %v", i, expected[i], dataset.Examples[i])
		}
	}
	if dataset.InputNames != nil {
		t.Errorf("expected no input names, got %v", dataset.InputNames)
	}
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		hasHeader bool
		message   string
	}{
		{"Numeric header", "1,2,,3\n4,5,,6\n", true, "should not start with a number"},
		{"No separator", "1,2,3\n", false, "no empty cell separating"},
		{"No inputs", ",1,2\n", false, "no input cells"},
		{"Gap in targets", "1,,2,,3\n", false, "empty target cell"},
		{"Not a number", "1,x,,2\n", false, "failed to parse value at row 1, col 2"},
		{"Bad target", "1,2,,y\n", false, "failed to parse value at row 1, col 4"},
		{"Input width changes", "1,2,,3\n1,,3\n", false, "row 2 has 1 inputs"},
		{"Target width changes", "1,2,,3\n1,2,,3,4\n", false, "row 2 has 2 inputs and 2 targets"},
		{"Header width", "a,b,,c\n1,,2\n", true, "row 2 has 1 inputs"},
		{"Header only", "a,b,,c\n", true, "no data rows"},
		{"Empty", "", false, "no data rows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.data), tt.hasHeader)
			if err == nil {
				t.Fatalf("expected error containing %q", tt.message)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("expected error containing %q, got %q", tt.message, err.Error())
			}
		})
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), false); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNormalizeInputs(t *testing.T) {
	d := &Dataset{Examples: []net.InputOutput{
		{Input: []float64{0, 5, 7}, Output: []float64{1}},
		{Input: []float64{10, 5, 3}, Output: []float64{0}},
		{Input: []float64{5, 5, 5}, Output: []float64{1}},
	}}

	min, max := d.NormalizeInputs()

	if !reflect.DeepEqual(min, []float64{0, 5, 3}) || !reflect.DeepEqual(max, []float64{10, 5, 7}) {
		t.Errorf("unexpected bounds %v %v", min, max)
	}
	expected := [][]float64{{0, 0, 1}, {1, 0, 0}, {0.5, 0, 0.5}}
	for i, ex := range d.Examples {
		if !reflect.DeepEqual(ex.Input, expected[i]) {
			t.Errorf("example %d: expected %v, got %v", i, expected[i], ex.Input)
		}
	}
}

func TestSplit(t *testing.T) {
	d := &Dataset{InputNames: []string{"x"}}
	for i := 0; i < 10; i++ {
		d.Examples = append(d.Examples, net.InputOutput{Input: []float64{float64(i)}, Output: []float64{1}})
	}

	training, test := d.Split(0.25)
	if len(training.Examples) != 8 || len(test.Examples) != 2 {
		t.Fatalf("expected 8/2 split, got %d/%d", len(training.Examples), len(test.Examples))
	}
	if test.Examples[0].Input[0] != 8 {
		t.Errorf("expected test set to start at example 8, got %v", test.Examples[0].Input)
	}
	if !reflect.DeepEqual(test.InputNames, d.InputNames) {
		t.Errorf("expected names to be kept, got %v", test.InputNames)
	}

	training, test = d.Split(0)
	if len(training.Examples) != 10 || len(test.Examples) != 0 {
		t.Errorf("expected 10/0 split, got %d/%d", len(training.Examples), len(test.Examples))
	}

	// Appending to the training part must not overwrite the test part.
	training, test = d.Split(0.5)
	_ = append(training.Examples, net.InputOutput{Input: []float64{-1}})
	if test.Examples[0].Input[0] != 5 {
		t.Errorf("append to training set changed test set: %v", test.Examples[0].Input)
	}
}
