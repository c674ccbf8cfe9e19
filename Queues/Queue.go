package Queues

import "github.com/cockroachdb/errors"

// Queue is a FIFO container.
type Queue[T any] interface {
	Push(item T)
	// Pop the oldest item. Returns ErrEmptyQueue when there's nothing to pop.
	Pop() (T, error)
	// Peek at the oldest item. The zero value if empty.
	Peek() T
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

// ErrEmptyQueue is returned by Pop on an empty queue.
var ErrEmptyQueue = errors.New("Queues: queue is empty, cannot Pop")
