// Package dataset loads training examples from CSV files.
//
// Each data row holds the input cells, one empty separator cell and then
// the target cells:
//
//	x1,x2,,t1,t2
//
// An optional header row names the columns with the same layout.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/FlavioCFOliveira/nnx/internal/net"
)

// Dataset is a list of examples with optional column names.
type Dataset struct {
	InputNames  []string
	OutputNames []string
	Examples    []net.InputOutput
}

// LoadCSV loads a dataset from a CSV file.
// hasHeader makes the first non-empty row the column names.
func LoadCSV(filename string, hasHeader bool) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadCSV(file, hasHeader)
}

// ReadCSV reads a dataset from CSV data. Rows whose cells are all empty are
// skipped, as are empty cells after the last target.
func ReadCSV(r io.Reader, hasHeader bool) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	d := &Dataset{}
	inputWidth, outputWidth := -1, -1

	for i, record := range records {
		row := i + 1
		record = trimTrailingEmpty(record)
		if len(record) == 0 {
			continue
		}

		inputs, outputs, err := splitRow(record, row)
		if err != nil {
			return nil, err
		}

		if hasHeader && d.InputNames == nil {
			if _, err := strconv.ParseFloat(inputs[0], 64); err == nil {
				return nil, fmt.Errorf("header row %d should not start with a number; was %q", row, inputs[0])
			}
			d.InputNames, d.OutputNames = inputs, outputs
			inputWidth, outputWidth = len(inputs), len(outputs)
			continue
		}

		if inputWidth < 0 {
			inputWidth, outputWidth = len(inputs), len(outputs)
		}
		if len(inputs) != inputWidth || len(outputs) != outputWidth {
			return nil, fmt.Errorf("row %d has %d inputs and %d targets; expected %d and %d",
				row, len(inputs), len(outputs), inputWidth, outputWidth)
		}

		example := net.InputOutput{
			Input:  make([]float64, len(inputs)),
			Output: make([]float64, len(outputs)),
		}
		if err := parseCells(inputs, example.Input, row, 0); err != nil {
			return nil, err
		}
		if err := parseCells(outputs, example.Output, row, len(inputs)+1); err != nil {
			return nil, err
		}
		d.Examples = append(d.Examples, example)
	}

	if len(d.Examples) == 0 {
		return nil, fmt.Errorf("csv data has no data rows")
	}
	return d, nil
}

func trimTrailingEmpty(record []string) []string {
	n := len(record)
	for n > 0 && strings.TrimSpace(record[n-1]) == "" {
		n--
	}
	return record[:n]
}

// splitRow splits record at its first empty cell.
func splitRow(record []string, row int) (inputs, outputs []string, err error) {
	sep := -1
	for j, cell := range record {
		if strings.TrimSpace(cell) == "" {
			sep = j
			break
		}
	}

	switch {
	case sep == 0:
		return nil, nil, fmt.Errorf("row %d has no input cells", row)
	case sep < 0:
		return nil, nil, fmt.Errorf("row %d has no empty cell separating inputs from targets", row)
	}

	inputs, outputs = record[:sep], record[sep+1:]
	for j, cell := range outputs {
		if strings.TrimSpace(cell) == "" {
			return nil, nil, fmt.Errorf("row %d has an empty target cell at column %d", row, sep+2+j)
		}
	}
	return inputs, outputs, nil
}

func parseCells(cells []string, dst []float64, row, offset int) error {
	for j, cell := range cells {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return fmt.Errorf("failed to parse value at row %d, col %d: %w", row, offset+j+1, err)
		}
		dst[j] = v
	}
	return nil
}

// InputWidth returns the number of inputs per example.
func (d *Dataset) InputWidth() int {
	if len(d.Examples) == 0 {
		return len(d.InputNames)
	}
	return len(d.Examples[0].Input)
}

// OutputWidth returns the number of targets per example.
func (d *Dataset) OutputWidth() int {
	if len(d.Examples) == 0 {
		return len(d.OutputNames)
	}
	return len(d.Examples[0].Output)
}

// NormalizeInputs performs min-max normalization of every input column to
// [0, 1] in place. Constant columns become 0. It returns the per-column
// minimum and maximum so the same scaling can be applied to new inputs.
func (d *Dataset) NormalizeInputs() (min, max []float64) {
	if len(d.Examples) == 0 {
		return nil, nil
	}

	width := d.InputWidth()
	min = append([]float64(nil), d.Examples[0].Input...)
	max = append([]float64(nil), d.Examples[0].Input...)

	for _, ex := range d.Examples {
		for i, v := range ex.Input {
			if v < min[i] {
				min[i] = v
			}
			if v > max[i] {
				max[i] = v
			}
		}
	}

	for _, ex := range d.Examples {
		for i := 0; i < width; i++ {
			diff := max[i] - min[i]
			if diff != 0 {
				ex.Input[i] = (ex.Input[i] - min[i]) / diff
			} else {
				ex.Input[i] = 0
			}
		}
	}
	return min, max
}

// Split separates the last floor(n*testFraction) examples as a test set.
// A fraction of zero or less leaves the test set empty.
func (d *Dataset) Split(testFraction float64) (training, test *Dataset) {
	border := len(d.Examples)
	if testFraction > 0 {
		border -= int(float64(len(d.Examples)) * testFraction)
	}
	if border < 0 {
		border = 0
	}

	training = &Dataset{
		InputNames:  d.InputNames,
		OutputNames: d.OutputNames,
		Examples:    d.Examples[:border:border],
	}
	test = &Dataset{
		InputNames:  d.InputNames,
		OutputNames: d.OutputNames,
		Examples:    d.Examples[border:],
	}
	return training, test
}
