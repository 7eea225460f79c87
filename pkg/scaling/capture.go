package scaling

// Capture records the geometry of root and of every element below it.
//
// The snapshot has one group per direct child of root. A tab control's pages
// are flattened away so only their contents are recorded, in the same group as
// the tab control. Menu items are not recorded. A root with no children yields
// an empty snapshot.
func Capture(root Root) (Geometry, Snapshot) {
	rootGeom := root.Geometry()
	rootGeom.Name = root.Name()

	children := root.Children()
	groups := make([][]Geometry, 0, len(children))
	for _, child := range children {
		var group []Geometry
		walk(child, func(el Element) {
			group = append(group, record(el))
		})
		groups = append(groups, group)
	}
	return rootGeom, Snapshot{groups: groups}
}

func record(el Element) Geometry {
	g := el.Geometry()
	g.Name = el.Name()
	return g
}
