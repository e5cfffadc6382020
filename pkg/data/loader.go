package data

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const bom = "\ufeff"

// IsMissing reports whether a raw cell denotes a missing value.
func IsMissing(s string) bool {
	return s == "" || s == "NA" || s == "NaN"
}

// LoadCSV reads a comma-separated file with a header row into a Table,
// preserving column and row order.
func LoadCSV(path string) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.WithStack(fmt.Errorf("%w: %w", ErrSourceUnavailable, err))
	}
	if info.IsDir() {
		return nil, errors.WithStack(fmt.Errorf("%w: %s is a directory", ErrSourceUnavailable, path))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(fmt.Errorf("%w: %w", ErrSourceUnavailable, err))
	}
	defer file.Close()

	t, err := ReadCSV(bufio.NewReader(file))
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return t, nil
}

// ReadCSV parses delimited text from r. Every record must have as many
// fields as the header.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.WithStack(fmt.Errorf("%w: missing header row", ErrMalformedSource))
	}
	if err != nil {
		return nil, classifyReadError(err)
	}
	header[0] = strings.TrimPrefix(header[0], bom)
	if err := checkUTF8(header, 1); err != nil {
		return nil, err
	}

	var records [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, classifyReadError(err)
		}
		line, _ := reader.FieldPos(0)
		if err := checkUTF8(rec, line); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	columns := make([]Column, len(header))
	for j, name := range header {
		columns[j] = Column{Name: name, Kind: inferKind(records, j)}
	}

	rows := make([][]Value, len(records))
	for i, rec := range records {
		row := make([]Value, len(rec))
		for j, s := range rec {
			row[j] = parseValue(s, columns[j].Kind)
		}
		rows[i] = row
	}
	return NewTable(columns, rows), nil
}

// inferKind marks a column numeric when every non-missing cell parses as
// a float.
func inferKind(records [][]string, j int) Kind {
	for _, rec := range records {
		v := rec[j]
		if IsMissing(v) {
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			return Text
		}
	}
	return Numeric
}

func parseValue(s string, kind Kind) Value {
	if IsMissing(s) {
		return Value{Text: s, Missing: true}
	}
	v := Value{Text: s}
	if kind == Numeric {
		v.Num, _ = strconv.ParseFloat(strings.TrimSpace(s), 64)
	}
	return v
}

func checkUTF8(fields []string, line int) error {
	for _, f := range fields {
		if !utf8.ValidString(f) {
			return errors.WithStack(fmt.Errorf("%w: line %d: invalid UTF-8", ErrMalformedSource, line))
		}
	}
	return nil
}

func classifyReadError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return errors.WithStack(fmt.Errorf("%w: %w", ErrMalformedSource, err))
	}
	return errors.WithStack(fmt.Errorf("%w: %w", ErrSourceUnavailable, err))
}
