// Package taxonomy turns flat workbook rows into the two derived
// shapes of a three-level business-process taxonomy: a nested
// hierarchy tree for tree-view rendering and a flat, deduplicated
// search index for lookup UIs.
//
// # Levels
//
// Rows describe processes at three levels: L1 (broadest), L2, and L3
// (most specific). Each input row carries one L3 process with its L1
// and L2 ancestors plus the L3 detail fields (objective, use case, IT
// release).
//
// # Grouping Semantics
//
// Both builders use the same stable two-level group-by: rows are
// partitioned by L1 name in first-seen order, and within each L1 by L2
// name in first-seen order. Grouping is by exact string equality, case
// sensitive, and the empty string is a legitimate grouping key.
//
// The hierarchy tree keeps every row: one L3 node per input row, no
// dedup, no drops. The search index dedups L1 entries by name and L2
// entries by name within their L1 scope, keeps one L3 entry per row,
// and excludes entries whose name is empty while still descending into
// their children.
//
// Both outputs are deterministic functions of row order and group-key
// equality; re-running on identical input produces identical output.
package taxonomy
