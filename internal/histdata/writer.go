// Package histdata persists service output streams as timestamped
// text lines.
package histdata

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yanun0323/errors"
)

const timestampLayout = "2006-01-02 15:04:05.000"

// Writer appends timestamped entity lines to a text file. Every write
// is flushed so the sink is current after each event.
type Writer struct {
	file *os.File
	buf  *bufio.Writer
}

// NewWriter creates the target file, truncating any previous run, and
// ensures its directory exists.
func NewWriter(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create sink directory")
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "open sink")
	}
	return &Writer{file: file, buf: bufio.NewWriter(file)}, nil
}

// Write appends one timestamped line of comma-joined fields.
func (w *Writer) Write(fields []string) error {
	line := time.Now().Format(timestampLayout) + " " + strings.Join(fields, ",") + "\n"
	if _, err := w.buf.WriteString(line); err != nil {
		return errors.Wrap(err, "write sink line")
	}
	if err := w.buf.Flush(); err != nil {
		return errors.Wrap(err, "flush sink")
	}
	return nil
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		_ = w.file.Close()
		return errors.Wrap(err, "flush sink")
	}
	return w.file.Close()
}
