package iterator

import (
	"fmt"
)

// Iterator is a position into a sequence of T. Next returns a new position,
// the receiver is never modified.
type Iterator[T any] interface {
	Get() T
	Next() Iterator[T]
	Equal(other Iterator[T]) bool
}

// Bidirectional positions can also step backwards.
type Bidirectional[T any] interface {
	Iterator[T]
	Prev() Iterator[T]
}

// RandomAccess positions jump and measure in constant time.
type RandomAccess[T any] interface {
	Bidirectional[T]
	Advance(n int) Iterator[T]
	Distance(to Iterator[T]) int
}

// Mutable positions allow writing the element they point at.
type Mutable[T any] interface {
	Iterator[T]
	Set(v T)
}

// Prev returns the position before it.
// - panics when it cannot step backwards
func Prev[T any](it Iterator[T]) Iterator[T] {
	b, ok := it.(Bidirectional[T])
	if !ok {
		panic(fmt.Sprintf("iterator %T is forward only, cannot step back", it))
	}
	return b.Prev()
}

// Advance moves it n steps, negative n moves backwards.
func Advance[T any](it Iterator[T], n int) Iterator[T] {
	if ra, ok := it.(RandomAccess[T]); ok {
		return ra.Advance(n)
	}
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = Prev(it)
	}
	return it
}

// Distance returns the number of Next steps from first to last. last must be
// reachable from first, otherwise Distance does not terminate for forward
// only positions.
func Distance[T any](first, last Iterator[T]) int {
	if ra, ok := first.(RandomAccess[T]); ok {
		return ra.Distance(last)
	}
	n := 0
	for it := first; !it.Equal(last); it = it.Next() {
		n++
	}
	return n
}

// IsMutable reports whether the element at it can be written.
func IsMutable[T any](it Iterator[T]) bool {
	_, ok := it.(Mutable[T])
	return ok
}
