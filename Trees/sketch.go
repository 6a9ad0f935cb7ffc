package Trees

import "github.com/xlab/treeprint"

func (u *Treap[T]) sketch(b treeprint.Tree, c nodePtr[T]) {
	if c.l == u.nilPtr && c.r == u.nilPtr {
		return
	}
	for _, ch := range [2]nodePtr[T]{c.l, c.r} {
		if ch == u.nilPtr {
			b.AddNode("nil")
		} else {
			u.sketch(b.AddBranch(label(ch)), ch)
		}
	}
}

// Sketch renders the same pre-order structure as String as a box drawing
// tree. Leaves have no nil children drawn.
func (u *Treap[T]) Sketch() string {
	if u.root == u.nilPtr {
		return treeprint.NewWithRoot("nil").String()
	}
	b := treeprint.NewWithRoot(label(u.root))
	u.sketch(b, u.root)
	return b.String()
}
