// Package export writes the chart to files: SVG and PNG for one frame, GIF
// for the whole animation and JSON for the underlying data.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat indicates an output format with no writer.
var ErrUnknownFormat = errors.New("export: unknown format")

// Formats lists the supported output formats.
var Formats = []string{"gif", "json", "png", "svg"}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range Formats {
		if f == ext {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}

// WriteFile creates path and hands it to write. A failed write removes the file.
func WriteFile(path string, write func(w io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return write(f)
}
