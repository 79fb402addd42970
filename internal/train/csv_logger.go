package train

import (
	"encoding/csv"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// CSVLogger writes one row per validation to a CSV file with the columns
// epoch, validation_error, improved, time_seconds and run_id.
type CSVLogger struct {
	BaseCallback
	Filename string
	Append   bool

	// RunID tags every row. NewCSVLogger sets a random one.
	RunID string

	file   *os.File
	writer *csv.Writer
	start  time.Time
}

// NewCSVLogger creates a new CSVLogger with a fresh run ID.
func NewCSVLogger(filename string, append bool) *CSVLogger {
	return &CSVLogger{
		Filename: filename,
		Append:   append,
		RunID:    uuid.NewString(),
	}
}

func (c *CSVLogger) OnTrainBegin(nn Network) {
	mode := os.O_CREATE | os.O_WRONLY
	if c.Append {
		mode |= os.O_APPEND
	} else {
		mode |= os.O_TRUNC
	}

	file, err := os.OpenFile(c.Filename, mode, 0644)
	if err != nil {
		slog.Error("CSVLogger: failed to open file", "file", c.Filename, "error", err)
		return
	}
	c.file = file
	c.writer = csv.NewWriter(file)
	c.start = time.Now()

	// Header only for a fresh file.
	info, err := file.Stat()
	if err == nil && (info.Size() == 0 || !c.Append) {
		c.writer.Write([]string{"epoch", "validation_error", "improved", "time_seconds", "run_id"})
		c.writer.Flush()
	}
}

func (c *CSVLogger) OnValidation(epoch int, validationError float64, improved bool, nn Network) {
	if c.writer == nil {
		return
	}

	elapsed := time.Since(c.start).Seconds()
	record := []string{
		strconv.Itoa(epoch),
		strconv.FormatFloat(validationError, 'g', -1, 64),
		strconv.FormatBool(improved),
		strconv.FormatFloat(elapsed, 'f', 2, 64),
		c.RunID,
	}

	if err := c.writer.Write(record); err != nil {
		slog.Error("CSVLogger: failed to write record", "error", err)
	}
	c.writer.Flush()
}

func (c *CSVLogger) OnTrainEnd(nn Network) {
	if c.file != nil {
		c.writer.Flush()
		c.file.Close()
		c.file = nil
		c.writer = nil
	}
}
