package idxtable

import (
	"fmt"

	"github.com/henderiw/iterrange/pkg/iterator"
	"github.com/henderiw/iterrange/pkg/seq/slice"
	"k8s.io/apimachinery/pkg/labels"
)

type Entry[T any] interface {
	ID() int64
	Data() T
	Labels() labels.Set
	String() string
}

type entry[T any] struct {
	id     int64
	data   T
	labels labels.Set
}

func (r entry[T]) ID() int64          { return r.id }
func (r entry[T]) Data() T            { return r.data }
func (r entry[T]) Labels() labels.Set { return r.labels }
func (r entry[T]) String() string {
	return fmt.Sprintf("id: %d, data: %v, labels: %s", r.id, r.data, r.labels.String())
}

func NewEntry[T any](id int64, d T, l labels.Set) Entry[T] {
	if l == nil {
		l = labels.Set{}
	}
	return entry[T]{
		id:     id,
		data:   d,
		labels: l,
	}
}

// Entries are ordered by ascending ID and form a read-only sequence.
type Entries[T any] []Entry[T]

func (r Entries[T]) Begin() iterator.Iterator[Entry[T]] { return slice.ReadOnly(r).Begin() }
func (r Entries[T]) End() iterator.Iterator[Entry[T]]   { return slice.ReadOnly(r).End() }
func (r Entries[T]) Size() int                          { return len(r) }
func (r Entries[T]) Empty() bool                        { return len(r) == 0 }
