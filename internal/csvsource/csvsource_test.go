// Copyright (c) 2026 Netskope, Inc. All rights reserved.

package csvsource

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test CSV: %v", err)
	}
	return path
}

func TestReadFile_HeaderKeyedRows(t *testing.T) {
	path := writeCSV(t, "Vendor,Category,Notes\nAcme,SaaS,\"has, comma\"\nGlobex,Infra,\n")

	rows, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	if rows[0]["Vendor"] != "Acme" || rows[0]["Category"] != "SaaS" {
		t.Errorf("row[0] = %v", rows[0])
	}
	if rows[0]["Notes"] != "has, comma" {
		t.Errorf("quoted cell = %q", rows[0]["Notes"])
	}
	if rows[1]["Vendor"] != "Globex" || rows[1]["Notes"] != "" {
		t.Errorf("row[1] = %v", rows[1])
	}
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("ReadFile() should fail for a missing file")
	}

	var missing *MissingFileError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingFileError", err)
	}
}

func TestCountRows(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"three data rows", "A,B\n1,2\n3,4\n5,6\n", 3},
		{"header only", "A,B\n", 0},
		{"empty file", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, tt.content)
			count, err := CountRows(path)
			if err != nil {
				t.Fatalf("CountRows() error = %v", err)
			}
			if count != tt.want {
				t.Errorf("CountRows() = %d, want %d", count, tt.want)
			}
		})
	}
}
