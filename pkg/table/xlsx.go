package table

import (
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/procview/procview/pkg/errors"
)

// ReadXLSX loads an Excel workbook into a Table. If sheet is empty,
// the first worksheet is used. Cells excelize reports as absent
// (trailing empty cells, short rows) are normalized to empty strings.
func ReadXLSX(path, sheet string) (*Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "input file %s not found", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open workbook %s", path)
	}
	defer f.Close()

	name, err := resolveSheet(f, sheet)
	if err != nil {
		return nil, err
	}

	records, err := f.GetRows(name)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read worksheet %q", name)
	}

	return fromRecords(records), nil
}

// Sheets returns the worksheet names of the workbook at path, in
// workbook order.
func Sheets(path string) ([]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "input file %s not found", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open workbook %s", path)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// resolveSheet maps the requested sheet name to a worksheet in f.
// An empty request resolves to the first worksheet.
func resolveSheet(f *excelize.File, sheet string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "workbook has no worksheets")
	}
	if sheet == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == sheet {
			return s, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidSheet, "worksheet %q not found (available: %v)", sheet, sheets)
}
