package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/procview/procview/pkg/taxonomy"
)

func sampleRows() []taxonomy.Row {
	return []taxonomy.Row{
		{L1: "A", L2: "X", L3: "1", Objective: "o1", UseCase: "u1", ITRelease: "r1"},
		{L1: "A", L2: "Y", L3: "2"},
	}
}

func TestWriteHierarchy_Shape(t *testing.T) {
	root := taxonomy.BuildHierarchy(sampleRows())

	var buf bytes.Buffer
	if err := WriteHierarchy(root, &buf); err != nil {
		t.Fatalf("WriteHierarchy failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc["name"] != "Process Hierarchy" {
		t.Errorf("root name = %v, want Process Hierarchy", doc["name"])
	}
	if _, ok := doc["level"]; ok {
		t.Error("root must not carry a level field")
	}

	l1 := doc["children"].([]any)[0].(map[string]any)
	if l1["level"] != "L1" || l1["name"] != "A" {
		t.Errorf("L1 node = %v", l1)
	}

	leaf := l1["children"].([]any)[0].(map[string]any)["children"].([]any)[0].(map[string]any)
	if leaf["level"] != "L3" {
		t.Errorf("leaf level = %v, want L3", leaf["level"])
	}
	for _, key := range []string{"objective", "use_case", "it_release"} {
		if _, ok := leaf[key]; !ok {
			t.Errorf("leaf missing detail field %q", key)
		}
	}
	if _, ok := leaf["children"]; ok {
		t.Error("L3 leaf must not carry a children field")
	}
}

func TestWriteHierarchy_EmptyDetailFieldsPresent(t *testing.T) {
	root := taxonomy.BuildHierarchy([]taxonomy.Row{{L1: "A", L2: "X", L3: "1"}})

	var buf bytes.Buffer
	if err := WriteHierarchy(root, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"objective": ""`) {
		t.Error("empty detail fields must still be serialized")
	}
}

func TestWriteHierarchy_FieldOrderAndIndent(t *testing.T) {
	root := taxonomy.BuildHierarchy([]taxonomy.Row{{L1: "A", L2: "X", L3: "1"}})

	var buf bytes.Buffer
	if err := WriteHierarchy(root, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	// name before level, level before children, two-space indent.
	if !strings.HasPrefix(out, "{\n  \"name\": \"Process Hierarchy\",\n  \"children\": [") {
		t.Errorf("unexpected document head:\n%s", out)
	}
	name := strings.Index(out, `"name": "A"`)
	level := strings.Index(out, `"level": "L1"`)
	if name == -1 || level == -1 || name > level {
		t.Errorf("L1 field order wrong:\n%s", out)
	}
	obj := strings.Index(out, `"objective"`)
	uc := strings.Index(out, `"use_case"`)
	rel := strings.Index(out, `"it_release"`)
	if !(obj < uc && uc < rel) {
		t.Errorf("detail field order wrong:\n%s", out)
	}
}

func TestWriteSearchIndex(t *testing.T) {
	entries := taxonomy.BuildSearchIndex(sampleRows())

	var buf bytes.Buffer
	if err := WriteSearchIndex(entries, &buf); err != nil {
		t.Fatalf("WriteSearchIndex failed: %v", err)
	}

	var docs []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &docs); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(docs) != 5 {
		t.Fatalf("entries = %d, want 5", len(docs))
	}

	// L1/L2 entries carry an empty details object, not null.
	details := docs[0]["details"].(map[string]any)
	if len(details) != 0 {
		t.Errorf("L1 details = %v, want empty object", details)
	}

	l3 := docs[2]
	d := l3["details"].(map[string]any)
	if d["objective"] != "o1" || d["use_case"] != "u1" || d["it_release"] != "r1" {
		t.Errorf("L3 details = %v", d)
	}
	if l3["parent"] != "X" {
		t.Errorf("L3 parent = %v, want X", l3["parent"])
	}
}

func TestWriteSearchIndex_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSearchIndex(nil, &buf); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty index = %q, want []", got)
	}
}

func TestWrite_Deterministic(t *testing.T) {
	rows := sampleRows()

	var a, b bytes.Buffer
	if err := WriteHierarchy(taxonomy.BuildHierarchy(rows), &a); err != nil {
		t.Fatal(err)
	}
	if err := WriteHierarchy(taxonomy.BuildHierarchy(rows), &b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("identical input must produce byte-identical output")
	}
}

func TestExportFiles(t *testing.T) {
	dir := t.TempDir()
	rows := sampleRows()

	hierPath := filepath.Join(dir, "hierarchy-data.json")
	searchPath := filepath.Join(dir, "search-index.json")

	if err := ExportHierarchy(taxonomy.BuildHierarchy(rows), hierPath); err != nil {
		t.Fatalf("ExportHierarchy failed: %v", err)
	}
	if err := ExportSearchIndex(taxonomy.BuildSearchIndex(rows), searchPath); err != nil {
		t.Fatalf("ExportSearchIndex failed: %v", err)
	}

	for _, p := range []string{hierPath, searchPath} {
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("read %s: %v", p, err)
		}
		if !json.Valid(data) {
			t.Errorf("%s is not valid JSON", p)
		}
	}
}
