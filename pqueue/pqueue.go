// Package pqueue implements a min-priority queue on a binary heap.
//
// Elements are paired with a priority; Dequeue returns the element with the
// smallest priority. Order among equal priorities is unspecified: callers
// must not rely on FIFO or LIFO behavior for ties.
//
// Complexity: Enqueue and Dequeue O(log n), Peek O(1).
package pqueue

import (
	"cmp"
	"errors"
)

// ErrEmptyQueue is returned by Dequeue, Peek and PeekPriority on an empty queue.
var ErrEmptyQueue = errors.New("pqueue: queue is empty")

type item[E any, P any] struct {
	elem     E
	priority P
}

// Queue is a binary min-heap stored in a dense slice: the children of i
// are 2i+1 and 2i+2, its parent is (i-1)/2.
type Queue[E any, P any] struct {
	items []item[E, P]
	less  func(a, b P) bool
}

// New returns an empty queue ordered by the natural order of P.
func New[E any, P cmp.Ordered]() *Queue[E, P] {
	return &Queue[E, P]{less: cmp.Less[P]}
}

// NewFunc returns an empty queue ordered by less.
func NewFunc[E any, P any](less func(a, b P) bool) *Queue[E, P] {
	return &Queue[E, P]{less: less}
}

// Enqueue adds elem with the given priority.
func (q *Queue[E, P]) Enqueue(elem E, priority P) {
	q.items = append(q.items, item[E, P]{elem: elem, priority: priority})
	q.siftUp(len(q.items) - 1)
}

// Dequeue removes and returns the element with the smallest priority.
func (q *Queue[E, P]) Dequeue() (E, error) {
	if len(q.items) == 0 {
		var zero E
		return zero, ErrEmptyQueue
	}
	top := q.items[0].elem
	last := len(q.items) - 1
	q.items[0] = q.items[last]
	q.items[last] = item[E, P]{}
	q.items = q.items[:last]
	q.siftDown(0)

	return top, nil
}

// Peek returns the element with the smallest priority without removing it.
func (q *Queue[E, P]) Peek() (E, error) {
	if len(q.items) == 0 {
		var zero E
		return zero, ErrEmptyQueue
	}

	return q.items[0].elem, nil
}

// PeekPriority returns the smallest priority in the queue.
func (q *Queue[E, P]) PeekPriority() (P, error) {
	if len(q.items) == 0 {
		var zero P
		return zero, ErrEmptyQueue
	}

	return q.items[0].priority, nil
}

// Len returns the number of queued elements.
func (q *Queue[E, P]) Len() int { return len(q.items) }

// Clear drops every element, keeping the backing array.
func (q *Queue[E, P]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
}

// siftUp moves items[i] toward the root while it is strictly less than
// its parent.
func (q *Queue[E, P]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(q.items[i].priority, q.items[parent].priority) {
			return
		}
		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

// siftDown moves items[i] toward the leaves, swapping with the smaller
// child (left on ties) while that child is strictly less.
func (q *Queue[E, P]) siftDown(i int) {
	n := len(q.items)
	for {
		smallest := 2*i + 1
		if smallest >= n {
			return
		}
		if right := smallest + 1; right < n && q.less(q.items[right].priority, q.items[smallest].priority) {
			smallest = right
		}
		if !q.less(q.items[smallest].priority, q.items[i].priority) {
			return
		}
		q.items[i], q.items[smallest] = q.items[smallest], q.items[i]
		i = smallest
	}
}
