// Package dataset loads the tabular symptom dataset into memory.
// Supported formats are CSV/TSV and XLSX (first or named sheet).
package dataset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Row is one data row keyed by column name. Index is the 1-based position
// of the row within the data section (header excluded).
type Row struct {
	Index int
	Cells map[string]string
}

// Get returns the trimmed value of a column, or "" when the column is absent.
func (r Row) Get(col string) string {
	return strings.TrimSpace(r.Cells[col])
}

// Table is a fully loaded dataset.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// Options controls dataset loading.
type Options struct {
	// SheetName selects an XLSX sheet by name; empty means use SheetIndex.
	SheetName string
	// SheetIndex is the 1-based XLSX sheet index; <=0 defaults to 1.
	SheetIndex int
	// MaxRows limits data rows loaded; 0 means unlimited.
	MaxRows int
	// Delimiter for CSV. If 0, auto-detects from the file extension.
	Delimiter rune
}

// DefaultOptions returns the defaults used by the CLI.
func DefaultOptions() Options {
	return Options{SheetIndex: 1}
}

// Load reads a dataset file, choosing the reader by extension.
func Load(path string, opt Options) (*Table, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".xlsx"):
		return loadXLSX(path, opt)
	case strings.HasSuffix(lower, ".csv"), strings.HasSuffix(lower, ".tsv"):
		return loadCSV(path, opt)
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s (expected .xlsx, .csv, or .tsv)", filepath.Base(path))
	}
}

// buildTable assembles a Table from a header and raw records, padding short
// rows so every row exposes all columns.
func buildTable(name string, header []string, records [][]string, maxRows int) *Table {
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(h)
	}
	t := &Table{Name: name, Columns: cols}
	for _, rec := range records {
		if maxRows > 0 && len(t.Rows) >= maxRows {
			break
		}
		cells := make(map[string]string, len(cols))
		for i, c := range cols {
			if c == "" {
				continue
			}
			if i < len(rec) {
				cells[c] = rec[i]
			} else {
				cells[c] = ""
			}
		}
		t.Rows = append(t.Rows, Row{Index: len(t.Rows) + 1, Cells: cells})
	}
	return t
}
