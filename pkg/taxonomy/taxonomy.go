package taxonomy

// Level identifies the depth of a taxonomy node or search entry.
type Level string

// Taxonomy levels, broadest first.
const (
	LevelL1 Level = "L1"
	LevelL2 Level = "L2"
	LevelL3 Level = "L3"
)

// RootName is the name of the hierarchy tree's root node.
const RootName = "Process Hierarchy"

// Columns names the workbook headers the six row fields are read from.
// The zero value is not usable; start from [DefaultColumns].
type Columns struct {
	L1        string
	L2        string
	L3        string
	Objective string
	UseCase   string
	ITRelease string
}

// DefaultColumns returns the standard header names.
func DefaultColumns() Columns {
	return Columns{
		L1:        "L1 Name",
		L2:        "L2 Name",
		L3:        "L3 Name",
		Objective: "L3 Objective",
		UseCase:   "Use Case",
		ITRelease: "IT Release",
	}
}

// Required returns the six header names in canonical order, used for
// column-presence validation and error reporting.
func (c Columns) Required() []string {
	return []string{c.L1, c.L2, c.L3, c.Objective, c.UseCase, c.ITRelease}
}

// Row is one input record. All fields are strings; the empty string is
// the canonical absent value.
type Row struct {
	L1        string
	L2        string
	L3        string
	Objective string
	UseCase   string
	ITRelease string
}

// Node is one node of the hierarchy tree. The root has an empty Level
// and owns the L1 nodes; L1 and L2 nodes own their children in
// first-seen order; L3 nodes are leaves carrying the detail fields.
// Ownership is strictly tree-shaped.
type Node struct {
	Name     string
	Level    Level
	Children []*Node

	// Detail fields, set on L3 nodes only.
	Objective string
	UseCase   string
	ITRelease string
}

// Count returns the number of nodes at the given level in the subtree
// rooted at n.
func (n *Node) Count(level Level) int {
	total := 0
	if n.Level == level {
		total++
	}
	for _, c := range n.Children {
		total += c.Count(level)
	}
	return total
}

// SearchEntry is one record of the flat search index. Parent names the
// immediate parent (empty for L1 entries). The detail fields are set
// on L3 entries only.
type SearchEntry struct {
	Name   string
	Level  Level
	Parent string

	Objective string
	UseCase   string
	ITRelease string
}
