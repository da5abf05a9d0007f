// Package table loads tabular files into an in-memory table of rows
// with named columns.
//
// # Overview
//
// A [Table] holds the trimmed header names and an ordered sequence of
// rows. Cell values are plain strings; a cell that is absent in the
// source (short row, blank cell) is normalized to the empty string
// before any downstream logic runs. Row order always matches the
// source file.
//
// # Readers
//
// Two formats are supported, selected by file extension via [Read]:
//
//   - .xlsx / .xlsm: Excel workbooks, read with excelize. By default
//     the first worksheet is used; [ReadXLSX] accepts an explicit
//     sheet name and [Sheets] lists the available worksheets.
//   - .csv: comma-separated files, read with encoding/csv.
//
// # Header Normalization
//
// The first record is the header row. Header cells are whitespace
// trimmed; when two trimmed headers collide, the first occurrence
// wins and later columns with the same name are ignored. Columns not
// required by the caller are kept and simply never looked up.
//
// # Errors
//
// Readers return structured errors from the errors package:
// FILE_NOT_FOUND when the path does not exist, INVALID_SHEET when a
// named worksheet is absent, INVALID_FORMAT for an unsupported
// extension, and INVALID_INPUT for files that cannot be parsed.
package table
