package rangeview

import (
	"fmt"
	"iter"
	"strings"

	"github.com/henderiw/iterrange/pkg/iterator"
)

// Container is anything exposing an ordered [Begin, End) pair of positions.
type Container[T any] interface {
	Begin() iterator.Iterator[T]
	End() iterator.Iterator[T]
}

// Sizer is implemented by containers that know their own size.
type Sizer interface {
	Size() int
}

// Emptier is implemented by containers that know whether they are empty.
type Emptier interface {
	Empty() bool
}

// Range is a non-owning view [first, last) into a sequence. The sequence
// must outlive the view. A Range is never modified, the Grow/Shrink helpers
// return a new one.
type Range[T any] struct {
	first iterator.Iterator[T]
	last  iterator.Iterator[T]
}

// New returns the view [first, last). last must be reachable from first,
// this is not checked.
func New[T any](first, last iterator.Iterator[T]) Range[T] {
	return Range[T]{
		first: first,
		last:  last,
	}
}

// Wrap returns a view over the full extent of c. The view shares the
// positions of c, so a writable container yields writable positions.
func Wrap[T any](c Container[T]) Range[T] {
	return New(c.Begin(), c.End())
}

func (r Range[T]) Begin() iterator.Iterator[T] { return r.first }
func (r Range[T]) End() iterator.Iterator[T]   { return r.last }

func (r Range[T]) Empty() bool {
	return r.first.Equal(r.last)
}

// Size is O(1) for random access positions and O(n) otherwise.
func (r Range[T]) Size() int {
	return iterator.Distance(r.first, r.last)
}

// GrowFront moves the start one step back. A predecessor must exist.
func (r Range[T]) GrowFront() Range[T] {
	r.first = iterator.Prev(r.first)
	return r
}

// ShrinkFront drops the first element. The view must not be empty.
func (r Range[T]) ShrinkFront() Range[T] {
	r.first = r.first.Next()
	return r
}

// GrowEnd extends the view by one element past its end.
func (r Range[T]) GrowEnd() Range[T] {
	r.last = r.last.Next()
	return r
}

// ShrinkEnd drops the last element. The view must not be empty.
func (r Range[T]) ShrinkEnd() Range[T] {
	r.last = iterator.Prev(r.last)
	return r
}

// All returns the elements of the view in order.
func (r Range[T]) All() iter.Seq[T] {
	return All[T](r)
}

func (r Range[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for it := r.first; !it.Equal(r.last); it = it.Next() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, it.Get())
	}
	sb.WriteByte(']')
	return sb.String()
}
