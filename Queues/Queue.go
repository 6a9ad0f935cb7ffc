package Queues

// Queue is a first in first out container.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	//Peek returns the next item to Pop without removing it. The bool is
	//false when the queue is empty.
	Peek() (T, bool)
	Empty() bool
	Size() uint
}

// EmptyQueueError is returned by Pop on an empty Queue.
type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "queue is empty: cannot pop"
}
