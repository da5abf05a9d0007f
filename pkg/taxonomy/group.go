package taxonomy

// group is one partition of rows sharing a key, in input order.
type group struct {
	key  string
	rows []Row
}

// groupBy partitions rows by key, preserving the order in which each
// distinct key first appears. This is a stable group-by, not a sort:
// keys are compared by exact string equality and the empty string is a
// valid key.
func groupBy(rows []Row, key func(Row) string) []group {
	index := make(map[string]int)
	var groups []group

	for _, r := range rows {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{key: k})
		}
		groups[i].rows = append(groups[i].rows, r)
	}

	return groups
}
