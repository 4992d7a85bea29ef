package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// CSVWriter streams records of type T as CSV rows. The header is written with
// the first record.
type CSVWriter[T any] struct {
	w             io.Writer
	headerWritten bool
	rows          int
}

// NewCSVWriter returns a writer appending to w.
func NewCSVWriter[T any](w io.Writer) *CSVWriter[T] {
	return &CSVWriter[T]{w: w}
}

// Write appends records.
func (cw *CSVWriter[T]) Write(records ...T) error {
	if cw == nil || len(records) == 0 {
		return nil
	}
	if !cw.headerWritten {
		if err := gocsv.Marshal(records, cw.w); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
		cw.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, cw.w); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}
	cw.rows += len(records)
	return nil
}

// Rows reports how many records have been written.
func (cw *CSVWriter[T]) Rows() int {
	if cw == nil {
		return 0
	}
	return cw.rows
}
