// Package forward is a singly linked sequence with forward only positions.
package forward

import (
	"github.com/henderiw/iterrange/pkg/iterator"
)

type node[T any] struct {
	val  T
	next *node[T]
}

// List keeps a tail pointer so appends are O(1).
type List[T any] struct {
	head *node[T]
	tail *node[T]
}

func New[T any](vals ...T) *List[T] {
	r := &List[T]{}
	for _, v := range vals {
		r.Append(v)
	}
	return r
}

func (r *List[T]) Append(v T) {
	n := &node[T]{val: v}
	if r.tail == nil {
		r.head = n
	} else {
		r.tail.next = n
	}
	r.tail = n
}

func (r *List[T]) Prepend(v T) {
	r.head = &node[T]{val: v, next: r.head}
	if r.tail == nil {
		r.tail = r.head
	}
}

func (r *List[T]) Begin() iterator.Iterator[T] { return mpos[T]{pos[T]{n: r.head}} }
func (r *List[T]) End() iterator.Iterator[T]   { return mpos[T]{} }

// ReadOnly returns a view of the same list whose positions cannot write.
func (r *List[T]) ReadOnly() RO[T] { return RO[T]{l: r} }

// RO is a read-only view of a List.
type RO[T any] struct {
	l *List[T]
}

func (r RO[T]) Begin() iterator.Iterator[T] { return pos[T]{n: r.l.head} }
func (r RO[T]) End() iterator.Iterator[T]   { return pos[T]{} }

type linked[T any] interface {
	at() *node[T]
}

type pos[T any] struct {
	n *node[T]
}

func (r pos[T]) at() *node[T] { return r.n }

func (r pos[T]) Get() T { return r.n.val }

func (r pos[T]) Next() iterator.Iterator[T] {
	return pos[T]{n: r.n.next}
}

func (r pos[T]) Equal(other iterator.Iterator[T]) bool {
	o, ok := other.(linked[T])
	return ok && o.at() == r.n
}

type mpos[T any] struct {
	pos[T]
}

func (r mpos[T]) Set(v T) { r.n.val = v }

func (r mpos[T]) Next() iterator.Iterator[T] {
	return mpos[T]{pos[T]{n: r.n.next}}
}
