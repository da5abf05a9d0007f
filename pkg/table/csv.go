package table

import (
	"encoding/csv"
	"os"

	"github.com/procview/procview/pkg/errors"
)

// ReadCSV loads a comma-separated file into a Table. Records may have
// varying field counts; short rows are padded with empty strings.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "input file %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}

	return fromRecords(records), nil
}
