package taxonomy

import (
	"github.com/procview/procview/pkg/errors"
	"github.com/procview/procview/pkg/table"
)

// Rows projects a loaded table into typed rows using the given column
// mapping. It validates that all six required columns are present
// (after the loader's header trimming) and reports every missing
// column name at once with code MISSING_COLUMNS. Row order is
// preserved; absent cells are already empty strings.
func Rows(t *table.Table, cols Columns) ([]Row, error) {
	if missing := t.MissingColumns(cols.Required()); len(missing) > 0 {
		return nil, errors.New(errors.ErrCodeMissingColumns, "missing columns in input file: %v", missing)
	}

	rows := make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, Row{
			L1:        r[cols.L1],
			L2:        r[cols.L2],
			L3:        r[cols.L3],
			Objective: r[cols.Objective],
			UseCase:   r[cols.UseCase],
			ITRelease: r[cols.ITRelease],
		})
	}
	return rows, nil
}
