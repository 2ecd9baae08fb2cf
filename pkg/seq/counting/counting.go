// Package counting is the read-only sequence of integers from, from+1, ...,
// to-1. Nothing is materialized, positions are the integers themselves.
package counting

import (
	"fmt"
	"math"

	"github.com/henderiw/iterrange/pkg/iterator"
	"golang.org/x/exp/constraints"
)

type Counting[T constraints.Integer] struct {
	from T
	to   T
}

// New returns [from, to). to < from is treated as empty. New panics when the
// span does not fit in an int.
func New[T constraints.Integer](from, to T) Counting[T] {
	if to < from {
		to = from
	}
	if span(from, to) > math.MaxInt {
		panic(fmt.Sprintf("counting: span [%d, %d) does not fit in an int", from, to))
	}
	return Counting[T]{from: from, to: to}
}

func (r Counting[T]) Begin() iterator.Iterator[T] { return pos[T]{v: r.from} }
func (r Counting[T]) End() iterator.Iterator[T]   { return pos[T]{v: r.to} }
func (r Counting[T]) Size() int                   { return int(span(r.from, r.to)) }
func (r Counting[T]) Empty() bool                 { return r.from == r.to }

// span is to-from for from <= to. Signed values sign extend into uint64, so
// the wrapped difference is exact for every integer type.
func span[T constraints.Integer](from, to T) uint64 {
	return uint64(to) - uint64(from)
}

type pos[T constraints.Integer] struct {
	v T
}

func (r pos[T]) Get() T                     { return r.v }
func (r pos[T]) Next() iterator.Iterator[T] { return pos[T]{v: r.v + 1} }
func (r pos[T]) Prev() iterator.Iterator[T] { return pos[T]{v: r.v - 1} }

// Advance wraps in uint64; the result is exact as long as it lands inside T.
func (r pos[T]) Advance(n int) iterator.Iterator[T] {
	return pos[T]{v: T(uint64(r.v) + uint64(n))}
}

func (r pos[T]) Distance(to iterator.Iterator[T]) int {
	o := to.(pos[T])
	if o.v < r.v {
		return -int(span(o.v, r.v))
	}
	return int(span(r.v, o.v))
}

func (r pos[T]) Equal(other iterator.Iterator[T]) bool {
	o, ok := other.(pos[T])
	return ok && o.v == r.v
}
