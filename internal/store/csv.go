package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CSVFile persists question rows as a comma-separated file.
type CSVFile struct {
	Path string
}

// NewCSVFile returns a backend for path.
func NewCSVFile(path string) *CSVFile {
	return &CSVFile{Path: path}
}

// Name returns the file path.
func (f *CSVFile) Name() string {
	return f.Path
}

// Exists reports whether the file is present.
func (f *CSVFile) Exists() (bool, error) {
	info, err := os.Stat(f.Path)
	if err == nil {
		if info.IsDir() {
			return false, fmt.Errorf("question file %q is a directory", f.Path)
		}
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("stat question file: %w", err)
}

// ReadRows reads every record. Bare quotes inside fields are kept
// literally. Records the CSV parser still rejects are returned as nil rows
// so callers can count them.
func (f *CSVFile) ReadRows() ([][]string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				rows = append(rows, nil)
				continue
			}
			return nil, fmt.Errorf("parse question file: %w", err)
		}
		rows = append(rows, row)
	}
}

// WriteRows overwrites the file with rows.
func (f *CSVFile) WriteRows(rows [][]string) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("encode question rows: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("create question dir: %w", err)
	}
	if err := os.WriteFile(f.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write question file: %w", err)
	}
	return nil
}
