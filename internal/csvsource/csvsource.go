// Copyright (c) 2026 Netskope, Inc. All rights reserved.

package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Row is a single CSV data row keyed by header column name.
type Row map[string]string

// MissingFileError indicates a required CSV file does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("missing CSV file: %s", e.Path)
}

// ReadFile reads a CSV file and returns one Row per data row, using the first
// line as the header. Column order and presence come entirely from the header;
// no schema validation happens at this layer.
func ReadFile(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, fmt.Errorf("failed to open CSV file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err == io.EOF {
		// Header-less empty file: no data rows.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header from %s: %w", path, err)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row from %s: %w", path, err)
		}

		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// CountRows returns the number of data rows (excluding the header) in a CSV file.
func CountRows(path string) (int, error) {
	rows, err := ReadFile(path)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}
