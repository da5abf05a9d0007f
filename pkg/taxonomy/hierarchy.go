package taxonomy

// BuildHierarchy groups rows into the nested hierarchy tree rooted at
// a node named "Process Hierarchy".
//
// Rows are partitioned by L1 name in first-seen order, within each L1
// by L2 name in first-seen order, and each L2 node gets one L3 leaf
// per row in input order. No row is dropped and no row is merged: two
// rows with the same L3 name under one L2 produce two leaves. The
// tree's shape is a deterministic function of row order and group-key
// equality.
func BuildHierarchy(rows []Row) *Node {
	root := &Node{Name: RootName}

	for _, l1 := range groupBy(rows, func(r Row) string { return r.L1 }) {
		l1Node := &Node{Name: l1.key, Level: LevelL1}

		for _, l2 := range groupBy(l1.rows, func(r Row) string { return r.L2 }) {
			l2Node := &Node{Name: l2.key, Level: LevelL2}

			for _, r := range l2.rows {
				l2Node.Children = append(l2Node.Children, &Node{
					Name:      r.L3,
					Level:     LevelL3,
					Objective: r.Objective,
					UseCase:   r.UseCase,
					ITRelease: r.ITRelease,
				})
			}

			l1Node.Children = append(l1Node.Children, l2Node)
		}

		root.Children = append(root.Children, l1Node)
	}

	return root
}
