package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/procview/procview/pkg/taxonomy"
)

// Wire structs: declared field order is the JSON field order.

type rootNode struct {
	Name     string `json:"name"`
	Children []any  `json:"children"`
}

type branchNode struct {
	Name     string `json:"name"`
	Level    string `json:"level"`
	Children []any  `json:"children"`
}

type leafNode struct {
	Name      string `json:"name"`
	Level     string `json:"level"`
	Objective string `json:"objective"`
	UseCase   string `json:"use_case"`
	ITRelease string `json:"it_release"`
}

type searchEntry struct {
	Name    string `json:"name"`
	Level   string `json:"level"`
	Parent  string `json:"parent"`
	Details any    `json:"details"`
}

type searchDetails struct {
	Objective string `json:"objective"`
	UseCase   string `json:"use_case"`
	ITRelease string `json:"it_release"`
}

// treeNode converts a taxonomy node to its wire form. L3 leaves keep
// their detail fields (present even when empty); the root omits the
// level field entirely.
func treeNode(n *taxonomy.Node) any {
	if n.Level == taxonomy.LevelL3 {
		return leafNode{
			Name:      n.Name,
			Level:     string(n.Level),
			Objective: n.Objective,
			UseCase:   n.UseCase,
			ITRelease: n.ITRelease,
		}
	}

	children := make([]any, len(n.Children))
	for i, c := range n.Children {
		children[i] = treeNode(c)
	}

	if n.Level == "" {
		return rootNode{Name: n.Name, Children: children}
	}
	return branchNode{Name: n.Name, Level: string(n.Level), Children: children}
}

// WriteHierarchy encodes the hierarchy tree as indented JSON to w.
func WriteHierarchy(root *taxonomy.Node, w io.Writer) error {
	return encode(w, treeNode(root))
}

// WriteSearchIndex encodes the search index as an indented JSON array
// to w. An empty index encodes as [], never null. L1/L2 entries carry
// an empty details object, L3 entries the populated one.
func WriteSearchIndex(entries []taxonomy.SearchEntry, w io.Writer) error {
	out := make([]searchEntry, len(entries))
	for i, e := range entries {
		wire := searchEntry{
			Name:    e.Name,
			Level:   string(e.Level),
			Parent:  e.Parent,
			Details: struct{}{},
		}
		if e.Level == taxonomy.LevelL3 {
			wire.Details = searchDetails{
				Objective: e.Objective,
				UseCase:   e.UseCase,
				ITRelease: e.ITRelease,
			}
		}
		out[i] = wire
	}
	return encode(w, out)
}

// ExportHierarchy writes the hierarchy tree to a JSON file at path.
func ExportHierarchy(root *taxonomy.Node, path string) error {
	return exportFile(path, func(w io.Writer) error {
		return WriteHierarchy(root, w)
	})
}

// ExportSearchIndex writes the search index to a JSON file at path.
func ExportSearchIndex(entries []taxonomy.SearchEntry, path string) error {
	return exportFile(path, func(w io.Writer) error {
		return WriteSearchIndex(entries, w)
	})
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func exportFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return write(f)
}
