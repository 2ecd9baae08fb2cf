// Package list is a doubly linked sequence. Its positions step both ways
// but measuring a distance walks the list.
package list

import (
	"container/list"

	"github.com/henderiw/iterrange/pkg/iterator"
)

type List[T any] struct {
	l *list.List
}

func New[T any](vals ...T) *List[T] {
	r := &List[T]{l: list.New()}
	for _, v := range vals {
		r.PushBack(v)
	}
	return r
}

func (r *List[T]) PushBack(v T)  { r.l.PushBack(v) }
func (r *List[T]) PushFront(v T) { r.l.PushFront(v) }

// Size is the tracked length of the list, not a walk.
func (r *List[T]) Size() int   { return r.l.Len() }
func (r *List[T]) Empty() bool { return r.l.Len() == 0 }

func (r *List[T]) Begin() iterator.Iterator[T] {
	return mpos[T]{pos[T]{l: r.l, e: r.l.Front()}}
}

// End is the position past the last element, a nil element.
func (r *List[T]) End() iterator.Iterator[T] {
	return mpos[T]{pos[T]{l: r.l}}
}

// ReadOnly returns a view of the same list whose positions cannot write.
func (r *List[T]) ReadOnly() RO[T] { return RO[T]{l: r} }

// RO is a read-only view of a List.
type RO[T any] struct {
	l *List[T]
}

func (r RO[T]) Begin() iterator.Iterator[T] { return pos[T]{l: r.l.l, e: r.l.l.Front()} }
func (r RO[T]) End() iterator.Iterator[T]   { return pos[T]{l: r.l.l} }
func (r RO[T]) Size() int                   { return r.l.Size() }
func (r RO[T]) Empty() bool                 { return r.l.Empty() }

type element interface {
	element() *list.Element
}

type pos[T any] struct {
	l *list.List
	e *list.Element
}

func (r pos[T]) element() *list.Element { return r.e }

func (r pos[T]) Get() T { return r.e.Value.(T) }

func (r pos[T]) Next() iterator.Iterator[T] {
	r.e = r.e.Next()
	return r
}

// Prev of End is the last element.
func (r pos[T]) Prev() iterator.Iterator[T] {
	r.e = r.prev()
	return r
}

func (r pos[T]) prev() *list.Element {
	if r.e == nil {
		return r.l.Back()
	}
	return r.e.Prev()
}

func (r pos[T]) Equal(other iterator.Iterator[T]) bool {
	o, ok := other.(element)
	return ok && o.element() == r.e
}

type mpos[T any] struct {
	pos[T]
}

func (r mpos[T]) Set(v T) { r.e.Value = v }

func (r mpos[T]) Next() iterator.Iterator[T] {
	r.e = r.e.Next()
	return r
}

func (r mpos[T]) Prev() iterator.Iterator[T] {
	r.e = r.prev()
	return r
}
