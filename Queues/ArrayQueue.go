package Queues

// minGrow is the smallest capacity a full queue grows to.
const minGrow = 4

// ArrayQueue is a Queue backed by a circular slice that grows by half its
// length when full. The zero value is an empty queue.
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue returns a queue with room for initCap items before it
// needs to grow.
func MakeArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, initCap)}
}

func (q *ArrayQueue[T]) Empty() bool {
	return q.sz == 0
}

func (q *ArrayQueue[T]) Size() uint {
	return q.sz
}

// resize moves the items to a new slice of newLen, newLen>=q.sz, with the
// head at index 0.
func (q *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if q.sz > 0 {
		if q.head < q.tail {
			copy(nc, q.content[q.head:q.tail])
		} else {
			n := copy(nc, q.content[q.head:])
			copy(nc[n:], q.content[:q.tail])
		}
	}
	q.content = nc
	q.head, q.tail = 0, q.sz%max(newLen, 1)
}

// Shrink the backing slice to fit the current items.
func (q *ArrayQueue[T]) Shrink() {
	q.resize(q.sz)
}

// Clear removes every item, keeping the capacity.
func (q *ArrayQueue[T]) Clear() {
	clear(q.content)
	q.tail, q.head, q.sz = 0, 0, 0
}

func (q *ArrayQueue[T]) Push(item T) {
	if l := uint(len(q.content)); q.sz == l {
		q.resize(max(l+l/2, minGrow))
	}
	q.content[q.tail] = item
	q.tail = (q.tail + 1) % uint(len(q.content))
	q.sz++
}

func (q *ArrayQueue[T]) Pop() (item T, e error) {
	if q.Empty() {
		return item, &EmptyQueueError{}
	}
	item = q.content[q.head]
	q.content[q.head] = *new(T)
	q.head = (q.head + 1) % uint(len(q.content))
	q.sz--
	return item, nil
}

func (q *ArrayQueue[T]) Peek() (item T, ok bool) {
	if q.Empty() {
		return item, false
	}
	return q.content[q.head], true
}

var _ Queue[int] = (*ArrayQueue[int])(nil)
