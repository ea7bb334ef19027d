// Package report serializes complexity records to a flat log, one line per
// function.
package report

import (
	"bufio"
	"fmt"
	"os"

	"github.com/TFMV/cyclo/types"
)

// Writer appends complexity records to a log file. The file is truncated
// once when the Writer is opened and only appended to afterwards; every
// record is flushed durably on Close.
type Writer struct {
	f      *os.File
	w      *bufio.Writer
	closed bool
}

// NewWriter truncates path and opens it for writing records.
func NewWriter(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open report %s: %w", path, err)
	}
	return &Writer{f: f, w: bufio.NewWriter(f)}, nil
}

// Write appends one record: declaration line, function name, and complexity,
// space-separated.
func (w *Writer) Write(rec types.FunctionComplexity) error {
	if _, err := fmt.Fprintf(w.w, "%d %s %d\n", rec.Line, rec.Name, rec.Complexity); err != nil {
		return fmt.Errorf("failed to write record for %s: %w", rec.Name, err)
	}
	return nil
}

// WriteReport appends every record of a report in order.
func (w *Writer) WriteReport(report types.AnalysisReport) error {
	for _, fn := range report.Functions {
		if err := w.Write(fn); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes buffered records and releases the file. It must run on every
// exit path, including parse failure, so the log is never left unflushed.
// Closing an already-closed Writer is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.w.Flush(); err != nil {
		w.f.Close()
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return w.f.Close()
}
