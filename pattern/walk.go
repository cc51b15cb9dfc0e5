package pattern

// Walk visits n and its descendants in pre-order. If fn returns false the
// children of that node are skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, fn)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	count := 0
	Walk(n, func(Node) bool {
		count++
		return true
	})
	return count
}

// Depth returns the height of the tree rooted at n; a leaf has depth 1.
func Depth(n Node) int {
	if n == nil {
		return 0
	}
	deepest := 0
	for _, c := range n.Children() {
		if d := Depth(c); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
