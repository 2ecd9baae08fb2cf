// Package slice exposes Go slices as begin/end sequences with random access
// positions.
package slice

import (
	"github.com/henderiw/iterrange/pkg/iterator"
)

// Slice is a writable view of a Go slice. It does not copy the slice.
type Slice[T any] struct {
	s []T
}

func Of[T any](s []T) Slice[T] {
	return Slice[T]{s: s}
}

func (r Slice[T]) Begin() iterator.Iterator[T] { return mpos[T]{pos[T]{s: r.s, i: 0}} }
func (r Slice[T]) End() iterator.Iterator[T]   { return mpos[T]{pos[T]{s: r.s, i: len(r.s)}} }
func (r Slice[T]) Size() int                   { return len(r.s) }
func (r Slice[T]) Empty() bool                 { return len(r.s) == 0 }

// ReadOnly returns the same view with positions that cannot write.
func (r Slice[T]) ReadOnly() RO[T] { return RO[T](r) }

// RO is a read-only view of a Go slice.
type RO[T any] struct {
	s []T
}

func ReadOnly[T any](s []T) RO[T] {
	return RO[T]{s: s}
}

func (r RO[T]) Begin() iterator.Iterator[T] { return pos[T]{s: r.s, i: 0} }
func (r RO[T]) End() iterator.Iterator[T]   { return pos[T]{s: r.s, i: len(r.s)} }
func (r RO[T]) Size() int                   { return len(r.s) }
func (r RO[T]) Empty() bool                 { return len(r.s) == 0 }

type indexed interface {
	index() int
}

type pos[T any] struct {
	s []T
	i int
}

func (r pos[T]) index() int { return r.i }

func (r pos[T]) Get() T { return r.s[r.i] }

func (r pos[T]) Next() iterator.Iterator[T] { return r.Advance(1) }
func (r pos[T]) Prev() iterator.Iterator[T] { return r.Advance(-1) }

func (r pos[T]) Advance(n int) iterator.Iterator[T] {
	r.i += n
	return r
}

func (r pos[T]) Distance(to iterator.Iterator[T]) int {
	return to.(indexed).index() - r.i
}

func (r pos[T]) Equal(other iterator.Iterator[T]) bool {
	o, ok := other.(indexed)
	return ok && o.index() == r.i
}

type mpos[T any] struct {
	pos[T]
}

func (r mpos[T]) Set(v T) { r.s[r.i] = v }

func (r mpos[T]) Next() iterator.Iterator[T] { return r.Advance(1) }
func (r mpos[T]) Prev() iterator.Iterator[T] { return r.Advance(-1) }

func (r mpos[T]) Advance(n int) iterator.Iterator[T] {
	r.i += n
	return r
}
