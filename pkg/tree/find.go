package tree

// FindAllIn returns the nodes among candidates satisfying all criteria,
// preserving order.
func FindAllIn(candidates []Node, crit ...Criterion) []Node {
	var out []Node
	for _, n := range candidates {
		if Matches(n, crit) {
			out = append(out, n)
		}
	}
	return out
}

// FindIn returns the first node among candidates satisfying all criteria,
// or nil if none does.
func FindIn(candidates []Node, crit ...Criterion) Node {
	for _, n := range candidates {
		if Matches(n, crit) {
			return n
		}
	}
	return nil
}
