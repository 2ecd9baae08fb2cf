package rangeview

import (
	"fmt"
	"iter"

	"github.com/henderiw/iterrange/pkg/iterator"
	"github.com/pkg/errors"
)

// Size returns the number of elements in c, asking c first when it knows.
func Size[T any](c Container[T]) int {
	if s, ok := c.(Sizer); ok {
		return s.Size()
	}
	return iterator.Distance(c.Begin(), c.End())
}

func Empty[T any](c Container[T]) bool {
	if e, ok := c.(Emptier); ok {
		return e.Empty()
	}
	return c.Begin().Equal(c.End())
}

// Front returns the first element; undefined if c is empty.
func Front[T any](c Container[T]) T {
	return c.Begin().Get()
}

// Back returns the last element; undefined if c is empty. The end position
// of c must be able to step back.
func Back[T any](c Container[T]) T {
	return iterator.Prev(c.End()).Get()
}

// Has reports whether v occurs in c.
func Has[T comparable](c Container[T], v T) bool {
	return HasFunc(c, v, func(a, b T) bool { return a == b })
}

// HasFunc reports whether c holds an element equal to v according to eq.
func HasFunc[T any](c Container[T], v T, eq func(a, b T) bool) bool {
	return !FindIf(c, func(e T) bool { return eq(e, v) }).Equal(c.End())
}

// ForEach calls fn on every element of c in order and returns fn, so callers
// can keep using any state fn accumulated.
func ForEach[T any, F ~func(T)](c Container[T], fn F) F {
	for it, end := c.Begin(), c.End(); !it.Equal(end); it = it.Next() {
		fn(it.Get())
	}
	return fn
}

// ForEach2 walks c1 and c2 pairwise and stops as soon as either one is
// exhausted, fn is called min(Size(c1), Size(c2)) times. Unequal lengths are
// not reported.
func ForEach2[T1, T2 any, F ~func(T1, T2)](c1 Container[T1], c2 Container[T2], fn F) F {
	it1, end1 := c1.Begin(), c1.End()
	it2, end2 := c2.Begin(), c2.End()
	for !it1.Equal(end1) && !it2.Equal(end2) {
		fn(it1.Get(), it2.Get())
		it1, it2 = it1.Next(), it2.Next()
	}
	return fn
}

// Divide splits c into exactly divisor contiguous subranges, in order. With
// d = Size(c)/divisor and r = Size(c)%divisor, the first r subranges hold d+1
// elements and the others d.
func Divide[T any](c Container[T], divisor int) ([]Range[T], error) {
	if divisor <= 0 {
		return nil, errors.Wrapf(ErrInvalidDivisor, "cannot divide into %d parts", divisor)
	}
	size := Size(c)
	d, r := size/divisor, size%divisor

	results := make([]Range[T], 0, divisor)
	last := c.Begin()
	for i := 0; i < divisor; i++ {
		first := last
		step := d
		if i < r {
			step++
		}
		last = iterator.Advance(first, step)
		results = append(results, New(first, last))
	}
	return results, nil
}

// MustDivide is like Divide but panics on an invalid divisor.
func MustDivide[T any](c Container[T], divisor int) []Range[T] {
	results, err := Divide(c, divisor)
	if err != nil {
		panic(err)
	}
	return results
}

// FindIf returns the position of the first element matching pred, or End(c)
// when none does. The position is the one c hands out, so writable
// containers return writable positions.
func FindIf[T any](c Container[T], pred func(T) bool) iterator.Iterator[T] {
	it, end := c.Begin(), c.End()
	for ; !it.Equal(end); it = it.Next() {
		if pred(it.Get()) {
			return it
		}
	}
	return it
}

// FindIfMutable is FindIf for writable containers.
// - panics when the positions of c are read only
func FindIfMutable[T any](c Container[T], pred func(T) bool) iterator.Mutable[T] {
	it := FindIf(c, pred)
	m, ok := it.(iterator.Mutable[T])
	if !ok {
		panic(fmt.Sprintf("position %T is read only", it))
	}
	return m
}

// All returns the elements of c in order.
func All[T any](c Container[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it, end := c.Begin(), c.End(); !it.Equal(end); it = it.Next() {
			if !yield(it.Get()) {
				return
			}
		}
	}
}

// Collect copies the elements of c into a new slice.
func Collect[T any](c Container[T]) []T {
	out := make([]T, 0, Size(c))
	for v := range All(c) {
		out = append(out, v)
	}
	return out
}
