package table

import (
	"path/filepath"
	"strings"

	"github.com/procview/procview/pkg/errors"
)

// Row maps a column name to the cell value for one input record.
// Absent cells hold the empty string, never a missing key, so lookups
// by any header name are always defined.
type Row map[string]string

// Table is an ordered sequence of rows with named columns.
type Table struct {
	// Columns holds the trimmed header names in source order.
	Columns []string

	// Rows holds one Row per data record, in source order.
	Rows []Row
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the required column names absent from the
// table, preserving the order of required. An empty result means all
// required columns are present.
func (t *Table) MissingColumns(required []string) []string {
	var missing []string
	for _, name := range required {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Read loads the tabular file at path, selecting the reader by file
// extension. The sheet argument only applies to workbook formats; pass
// "" for the first worksheet.
func Read(path, sheet string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path, sheet)
	case ".csv":
		return ReadCSV(path)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported input format: %s (supported: .xlsx, .xlsm, .csv)", filepath.Base(path))
	}
}

// fromRecords builds a Table from raw records. The first record is the
// header row; header cells are whitespace trimmed and duplicate names
// keep the first occurrence. Data rows shorter than the header are
// padded with empty strings, extra cells are dropped.
func fromRecords(records [][]string) *Table {
	if len(records) == 0 {
		return &Table{}
	}

	header := records[0]
	columns := make([]string, len(header))
	first := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		columns[i] = name
		if _, ok := first[name]; !ok {
			first[name] = i
		}
	}

	t := &Table{
		Columns: dedupColumns(columns, first),
		Rows:    make([]Row, 0, len(records)-1),
	}

	for _, rec := range records[1:] {
		row := make(Row, len(t.Columns))
		for name, idx := range first {
			if idx < len(rec) {
				row[name] = rec[idx]
			} else {
				row[name] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

// dedupColumns returns columns with later duplicates removed, keeping
// source order of first occurrences.
func dedupColumns(columns []string, first map[string]int) []string {
	out := make([]string, 0, len(columns))
	for i, name := range columns {
		if first[name] == i {
			out = append(out, name)
		}
	}
	return out
}
