package ast

// CheckSpans reports every descendant whose span is not contained by its
// parent's span, violating the tree's span-containment invariant. It is
// exported for use by tests across packages (parse, emit) that build or
// consume ASTs.
func CheckSpans(root *Node) []*Node {
	var bad []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.Children {
			if !n.Span.Contains(c.Span) {
				bad = append(bad, c)
			}
			walk(c)
		}
	}
	walk(root)
	return bad
}

// SectionDepths returns, for every Section node reachable from root, the
// Depth it was stamped with next to the depth computed purely by counting
// Section ancestors — used to test the invariant that a section's depth
// always equals the number of ancestor sections above it.
func SectionDepths(root *Node) map[*Node][2]int {
	out := map[*Node][2]int{}
	var walk func(n *Node, ancestorSections int)
	walk = func(n *Node, ancestorSections int) {
		next := ancestorSections
		if n.Kind == Section {
			out[n] = [2]int{n.Depth, ancestorSections}
			next = ancestorSections + 1
		}
		for _, c := range n.Children {
			walk(c, next)
		}
	}
	walk(root, 0)
	return out
}
