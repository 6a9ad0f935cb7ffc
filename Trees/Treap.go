package Trees

import (
	"cmp"
	"fmt"
	"math"
	"math/rand/v2"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
)

// Treap is a binary search tree with no repeated values. Every node also
// carries an integer priority and the tree is kept max-heap ordered on it
// through rotations, so with random priorities the expected depth is
// O(log n).
// Absent children are represented by nilPtr, a sentinel owned by the tree,
// never by a Go nil.
// Each Treap draws priorities from its own random source. A Treap is not
// safe for concurrent use; callers sharing one must serialize all calls.
type Treap[T any] struct {
	root, nilPtr nodePtr[T]
	cmp          func(a, b T) int
	rng          *rand.Rand
	sz           uint
	path         []nodePtr[T] // scratch ancestor stack reused by insert
	nilable      bool         // whether T has a nil value that must be rejected
}

// New returns an empty Treap ordered by the natural order of T, with a
// non-deterministic priority source.
func New[T constraints.Ordered]() *Treap[T] {
	return newTreap[T](cmp.Compare[T], rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewSeeded is New with a deterministic priority source. Two trees with the
// same seed that see the same sequence of operations have identical shapes.
func NewSeeded[T constraints.Ordered](seed uint64) *Treap[T] {
	return newTreap[T](cmp.Compare[T], rand.New(rand.NewPCG(seed, seed)))
}

// NewFunc returns an empty Treap ordered by c, which must return a negative
// number, zero or a positive number when a<b, a==b or a>b. It panics with
// ErrNilCompare if c is nil.
func NewFunc[T any](c func(a, b T) int) *Treap[T] {
	return newTreap(c, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewFuncSeeded is NewFunc with a deterministic priority source.
func NewFuncSeeded[T any](c func(a, b T) int, seed uint64) *Treap[T] {
	return newTreap(c, rand.New(rand.NewPCG(seed, seed)))
}

func newTreap[T any](c func(a, b T) int, rng *rand.Rand) *Treap[T] {
	if c == nil {
		panic(ErrNilCompare)
	}
	z := newSentinel[T]()
	return &Treap[T]{root: z, nilPtr: z, cmp: c, rng: rng, nilable: nilableType[T]()}
}

func nilableType[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

// validKey reports whether v can be stored or searched for.
func (u *Treap[T]) validKey(v T) bool {
	if !u.nilable {
		return true
	}
	a := any(v)
	if a == nil {
		return false
	}
	switch rv := reflect.ValueOf(a); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}

func (u *Treap[T]) mustValidKey(op string, v T) {
	if !u.validKey(v) {
		panic(&InvalidKeyError{op, v})
	}
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *Treap[T]) Size() uint {
	return u.sz
}

// Insert v with a priority drawn from the tree's random source. Returns
// false, leaving the tree untouched, if v is already present.
// It panics with *InvalidKeyError if v is nil.
// Time: expected O(log n)
func (u *Treap[T]) Insert(v T) bool {
	u.mustValidKey("insert", v)
	return u.insert(v, u.rng.Int())
}

// InsertPriority is Insert with a caller chosen priority. Higher priorities
// sit closer to the root.
func (u *Treap[T]) InsertPriority(v T, p int) bool {
	u.mustValidKey("insert", v)
	return u.insert(v, p)
}

// insert a valid v with priority p.
func (u *Treap[T]) insert(v T, p int) bool {
	if u.root == u.nilPtr {
		u.root = &node[T]{v, p, u.nilPtr, u.nilPtr}
		u.sz++
		return true
	}
	st := u.path[:0]
	defer func() {
		clear(st)
		u.path = st[:0]
	}()
	var fresh nodePtr[T]
	for cur := u.root; fresh == nil; {
		c := u.cmp(v, cur.v)
		if c == 0 {
			return false
		}
		st = append(st, cur)
		if c < 0 {
			if cur.l == u.nilPtr {
				fresh = &node[T]{v, p, u.nilPtr, u.nilPtr}
				cur.l = fresh
			}
			cur = cur.l
		} else {
			if cur.r == u.nilPtr {
				fresh = &node[T]{v, p, u.nilPtr, u.nilPtr}
				cur.r = fresh
			}
			cur = cur.r
		}
	}
	u.reheap(fresh, st)
	u.sz++
	return true
}

// reheap bubbles cur up along st, the ancestors of cur from the root down to
// its parent, until its parent has a priority no smaller than its own.
func (u *Treap[T]) reheap(cur nodePtr[T], st []nodePtr[T]) {
	for i := len(st) - 1; i > -1; i-- {
		parent := st[i]
		if parent.p >= cur.p {
			return
		}
		if parent.l == cur {
			cur = rotateRight(parent, u.nilPtr)
		} else {
			cur = rotateLeft(parent, u.nilPtr)
		}
		if i == 0 {
			u.root = cur
		} else if gp := st[i-1]; gp.l == parent {
			gp.l = cur
		} else {
			gp.r = cur
		}
	}
}

// remove v from the subtree rooting at cur recursively. cur is passed by
// reference. A node with two children is rotated down, promoting the child
// with the higher priority (the right one on ties), until it has at most one
// child and can be spliced out.
func (u *Treap[T]) remove(curPtr *nodePtr[T], v T) bool {
	cur := *curPtr
	if cur == u.nilPtr {
		return false
	}
	if c := u.cmp(v, cur.v); c < 0 {
		return u.remove(&cur.l, v)
	} else if c > 0 {
		return u.remove(&cur.r, v)
	}
	switch {
	case cur.r == u.nilPtr:
		*curPtr = cur.l
	case cur.l == u.nilPtr:
		*curPtr = cur.r
	case cur.r.p < cur.l.p:
		n := rotateRight(cur, u.nilPtr)
		*curPtr = n
		return u.remove(&n.r, v)
	default:
		n := rotateLeft(cur, u.nilPtr)
		*curPtr = n
		return u.remove(&n.l, v)
	}
	cur.l, cur.r = nil, nil
	return true
}

// Remove v from the tree. Returns false, leaving the tree untouched, if v
// isn't present. Recursive.
// It panics with *InvalidKeyError if v is nil.
// Time: expected O(log n)
func (u *Treap[T]) Remove(v T) bool {
	u.mustValidKey("remove", v)
	if !u.remove(&u.root, v) {
		return false
	}
	u.sz--
	return true
}

// Contains reports whether v is in the tree. The error wraps ErrInvalidKey
// when v is nil.
// Time: expected O(log n); Space: O(1)
func (u *Treap[T]) Contains(v T) (bool, error) {
	if !u.validKey(v) {
		return false, &InvalidKeyError{"contains", v}
	}
	for cur := u.root; cur != u.nilPtr; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c == 0 {
			return true, nil
		} else {
			cur = cur.r
		}
	}
	return false, nil
}

func (u *Treap[T]) maxDepth(c nodePtr[T], cd uint) uint {
	if c.l == u.nilPtr && c.r == u.nilPtr {
		return cd
	}
	d := cd
	if c.l != u.nilPtr {
		d = max(d, u.maxDepth(c.l, cd+1))
	}
	if c.r != u.nilPtr {
		d = max(d, u.maxDepth(c.r, cd+1))
	}
	return d
}

// MaxDepth is the number of edges from the root to the deepest node. It is
// 0 for both an empty tree and a single node.
func (u *Treap[T]) MaxDepth() uint {
	if u.root == u.nilPtr {
		return 0
	}
	return u.maxDepth(u.root, 0)
}

// corrupt checks the subtree rooting at c against the exclusive bounds lo
// and hi (nilPtr for unbounded) and the parent priority p. Returns the
// number of nodes when intact.
func (u *Treap[T]) corrupt(c, lo, hi nodePtr[T], p int) (uint, bool) {
	if c == u.nilPtr {
		return 0, false
	}
	if c == nil || c.p > p ||
		(lo != u.nilPtr && u.cmp(lo.v, c.v) >= 0) ||
		(hi != u.nilPtr && u.cmp(c.v, hi.v) >= 0) {
		return 0, true
	}
	ln, bad := u.corrupt(c.l, lo, c, c.p)
	if bad {
		return 0, true
	}
	rn, bad := u.corrupt(c.r, c, hi, c.p)
	if bad {
		return 0, true
	}
	return ln + rn + 1, false
}

// Corrupt [Tree.Corrupt]. Checks key order, heap order on priorities and
// the recorded size.
// Time: O(n)
func (u *Treap[T]) Corrupt() bool {
	if u.nilPtr.l != u.nilPtr || u.nilPtr.r != u.nilPtr {
		return true
	}
	n, bad := u.corrupt(u.root, u.nilPtr, u.nilPtr, math.MaxInt)
	return bad || n != u.sz
}

func label[T any](c nodePtr[T]) string {
	return fmt.Sprintf("(key = %v, priority = %d)", c.v, c.p)
}

func (u *Treap[T]) preOrder(sb *strings.Builder, c nodePtr[T], d int) {
	sb.WriteString(strings.Repeat("  ", d))
	if c == u.nilPtr {
		sb.WriteString("nil\n")
		return
	}
	sb.WriteString(label(c))
	sb.WriteByte('\n')
	u.preOrder(sb, c.l, d+1)
	u.preOrder(sb, c.r, d+1)
}

// String dumps the tree in pre-order, one line per node, indented two
// spaces per level. Absent children are printed as nil. For debugging only.
func (u *Treap[T]) String() string {
	var sb strings.Builder
	u.preOrder(&sb, u.root, 0)
	return sb.String()
}
