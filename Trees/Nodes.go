package Trees

// A node in the Treap.
// The zero value is meaningless except as the sentinel.
type node[T any] struct {
	v    T
	p    int // heap priority, higher is closer to the root
	l, r nodePtr[T]
}

// Pointer to a node
// nil Pointer is meaningless. A nodePtr is considered absent if it is
// equal to the nilPtr of its Treap. The sentinel has both l and r pointing
// to itself and holds the zero value of T.
type nodePtr[T any] *node[T]

// newSentinel returns a node usable as nilPtr.
func newSentinel[T any]() nodePtr[T] {
	z := new(node[T])
	z.l, z.r = z, z
	return z
}

// rotateRight promotes n.l to the position of n and returns it. If n.l is
// z, n is returned unchanged.
// Time: O(1); Space: O(1)
func rotateRight[T any](n, z nodePtr[T]) nodePtr[T] {
	lc := n.l
	if lc == z {
		return n
	}
	n.l = lc.r
	lc.r = n
	return lc
}

// rotateLeft promotes n.r to the position of n and returns it. If n.r is
// z, n is returned unchanged.
// Time: O(1); Space: O(1)
func rotateLeft[T any](n, z nodePtr[T]) nodePtr[T] {
	rc := n.r
	if rc == z {
		return n
	}
	n.r = rc.l
	rc.l = n
	return rc
}
