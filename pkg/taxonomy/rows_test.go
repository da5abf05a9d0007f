package taxonomy

import (
	"strings"
	"testing"

	"github.com/procview/procview/pkg/errors"
	"github.com/procview/procview/pkg/table"
)

func testTable(columns []string, cells ...[]string) *table.Table {
	t := &table.Table{Columns: columns}
	for _, rec := range cells {
		row := make(table.Row, len(columns))
		for i, c := range columns {
			if i < len(rec) {
				row[c] = rec[i]
			} else {
				row[c] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func TestRows(t *testing.T) {
	cols := DefaultColumns()
	tbl := testTable(cols.Required(),
		[]string{"A", "X", "1", "o1", "u1", "r1"},
		[]string{"A", "Y", "2", "", "", ""},
	)

	rows, err := Rows(tbl, cols)
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	want := Row{L1: "A", L2: "X", L3: "1", Objective: "o1", UseCase: "u1", ITRelease: "r1"}
	if rows[0] != want {
		t.Errorf("rows[0] = %+v, want %+v", rows[0], want)
	}
	if rows[1].Objective != "" {
		t.Errorf("absent cell should project to empty string, got %q", rows[1].Objective)
	}
}

func TestRows_MissingColumns(t *testing.T) {
	cols := DefaultColumns()
	tbl := testTable([]string{"L1 Name", "L2 Name", "L3 Name", "Use Case"})

	_, err := Rows(tbl, cols)
	if !errors.Is(err, errors.ErrCodeMissingColumns) {
		t.Fatalf("error code = %q, want MISSING_COLUMNS", errors.GetCode(err))
	}

	// Every missing column is reported at once, in canonical order.
	msg := errors.UserMessage(err)
	if !strings.Contains(msg, "[L3 Objective IT Release]") {
		t.Errorf("message = %q, want it to list all missing columns", msg)
	}
}

func TestRows_SingleMissingColumn(t *testing.T) {
	cols := DefaultColumns()
	tbl := testTable([]string{"L1 Name", "L2 Name", "L3 Name", "L3 Objective", "Use Case"})

	_, err := Rows(tbl, cols)
	if err == nil {
		t.Fatal("expected error for missing IT Release")
	}
	if msg := errors.UserMessage(err); !strings.Contains(msg, "[IT Release]") {
		t.Errorf("message = %q, want it to name exactly [IT Release]", msg)
	}
}

func TestRows_CustomColumnMapping(t *testing.T) {
	cols := Columns{
		L1:        "L1 Process Name",
		L2:        "L2 Process Name",
		L3:        "L3 Process Name",
		Objective: "L3 Process Objective",
		UseCase:   "Use Case Mapping",
		ITRelease: "IT Release",
	}
	tbl := testTable(cols.Required(), []string{"A", "X", "1", "o", "u", "r"})

	rows, err := Rows(tbl, cols)
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	if rows[0].L1 != "A" || rows[0].UseCase != "u" {
		t.Errorf("rows[0] = %+v, want remapped values", rows[0])
	}
}

func TestRows_ExtraColumnsIgnored(t *testing.T) {
	cols := DefaultColumns()
	tbl := testTable(append(cols.Required(), "Owner", "Notes"),
		[]string{"A", "X", "1", "o", "u", "r", "alice", "n/a"},
	)

	rows, err := Rows(tbl, cols)
	if err != nil {
		t.Fatalf("Rows failed: %v", err)
	}
	if rows[0].ITRelease != "r" {
		t.Errorf("rows[0].ITRelease = %q, want %q", rows[0].ITRelease, "r")
	}
}
