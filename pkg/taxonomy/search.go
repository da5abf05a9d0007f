package taxonomy

// BuildSearchIndex walks the same two-level grouping as
// [BuildHierarchy] and appends entries flatly, yielding the pre-order
// traversal of the hierarchy tree: each L1 entry is immediately
// followed by its L2 entries in first-seen order, each immediately
// followed by its L3 entries in input order.
//
// L1 entries are unique by name and L2 entries are unique by name
// within their L1 scope; the scope resets for every L1 group, so the
// same L2 name under two different L1s yields two entries. L3 entries
// are not deduplicated: one entry per row with a non-empty L3 name.
//
// An entry whose name is empty is skipped at any level, but its
// children are still processed; an empty L1 name hides the L1 entry
// without dropping the L2/L3 entries beneath it.
func BuildSearchIndex(rows []Row) []SearchEntry {
	var entries []SearchEntry

	for _, l1 := range groupBy(rows, func(r Row) string { return r.L1 }) {
		if l1.key != "" {
			entries = append(entries, SearchEntry{
				Name:  l1.key,
				Level: LevelL1,
			})
		}

		for _, l2 := range groupBy(l1.rows, func(r Row) string { return r.L2 }) {
			if l2.key != "" {
				entries = append(entries, SearchEntry{
					Name:   l2.key,
					Level:  LevelL2,
					Parent: l1.key,
				})
			}

			for _, r := range l2.rows {
				if r.L3 == "" {
					continue
				}
				entries = append(entries, SearchEntry{
					Name:      r.L3,
					Level:     LevelL3,
					Parent:    l2.key,
					Objective: r.Objective,
					UseCase:   r.UseCase,
					ITRelease: r.ITRelease,
				})
			}
		}
	}

	return entries
}
