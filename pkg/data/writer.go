package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteCSV writes t to path with a header row and no index column,
// creating parent directories as needed. An existing file is replaced.
func WriteCSV(t *Table, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return unwritable(err)
	}

	file, err := os.Create(path)
	if err != nil {
		return unwritable(err)
	}
	if err := EncodeCSV(file, t); err != nil {
		file.Close()
		return unwritable(err)
	}
	if err := file.Close(); err != nil {
		return unwritable(err)
	}
	return nil
}

// EncodeCSV serializes t as comma-separated text. Missing cells are
// written as empty fields.
func EncodeCSV(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Header()); err != nil {
		return err
	}

	record := make([]string, len(t.columns))
	for _, row := range t.rows {
		for j, v := range row {
			if v.Missing {
				record[j] = ""
			} else {
				record[j] = v.Text
			}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func unwritable(err error) error {
	return errors.WithStack(fmt.Errorf("%w: %w", ErrDestinationUnwritable, err))
}
