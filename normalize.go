package vitrine

// DegenerateHeight is the bounding height at or below which normalization
// leaves an instance at its authored scale.
const DegenerateHeight = 1e-4

// RenderBounds returns the union of the world-space bounds of every
// renderable part in the subtree rooted at n. ok is false when the subtree
// has no renderable parts. Hidden nodes and their subtrees are skipped.
func RenderBounds(n *Node) (bounds Box, ok bool) {
	bounds = EmptyBox()
	n.Walk(func(c *Node) bool {
		if !c.Visible {
			return false
		}
		if c.IsRenderable() {
			bounds = bounds.Union(worldBounds(c))
			ok = true
		}
		return true
	})
	return bounds, ok
}

// Normalize scales n uniformly so that the height of its render bounds equals
// targetHeight. The existing local scale is multiplied, so an authored
// non-uniform scale keeps its proportions. Returns the factor applied; ok is
// false when n has no renderable parts or degenerate height, in which case n
// is untouched.
func Normalize(n *Node, targetHeight float64) (factor float64, ok bool) {
	bounds, found := RenderBounds(n)
	if !found {
		return 1, false
	}
	h := bounds.Height()
	if h <= DegenerateHeight {
		return 1, false
	}
	factor = targetHeight / h
	n.Scale = n.Scale.Mul(factor)
	return factor, true
}
