package idxtable

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/henderiw/iterrange/pkg/rangeview"
	"github.com/henderiw/iterrange/pkg/seq/counting"
	"github.com/samber/lo"
	"k8s.io/apimachinery/pkg/labels"
)

type Table[T any] interface {
	Get(id int64) (Entry[T], error)
	Claim(id int64, d T, l labels.Set) error
	ClaimDynamic(d T, l labels.Set) (int64, error)
	ClaimRange(start, size int64, d T, l labels.Set) error
	Release(id int64) error
	Update(id int64, d T, l labels.Set) error

	Count() int
	Has(id int64) bool
	IsFree(id int64) bool
	FindFree() (int64, error)
	FindFreeRange(start, size int64) (counting.Counting[int64], error)

	// Entries returns a snapshot of the claimed entries in ascending ID order.
	Entries() Entries[T]
	GetByLabel(selector labels.Selector) Entries[T]
}

type ValidationFn func(id int64) error

func NewTable[T any](s int64, initEntries map[int64]T, v ValidationFn) (Table[T], error) {
	r := &table[T]{
		m:          new(sync.RWMutex),
		table:      map[int64]Entry[T]{},
		size:       s,
		validateFn: v,
	}

	var errm error
	for id, d := range initEntries {
		if err := r.add(id, d, nil, true); err != nil {
			errm = errors.Join(errm, err)
		}
	}

	return r, errm
}

type table[T any] struct {
	m          *sync.RWMutex
	table      map[int64]Entry[T]
	size       int64
	validateFn ValidationFn
}

func (r *table[T]) validate(id int64, init bool) error {
	if id < 0 || id > r.size-1 {
		return fmt.Errorf("id %d is outside the allowed entries: 0-%d", id, r.size-1)
	}
	if r.validateFn != nil && !init {
		if err := r.validateFn(id); err != nil {
			return err
		}
	}
	return nil
}

// ids is the full id space of the table.
func (r *table[T]) ids() counting.Counting[int64] {
	return counting.New(0, r.size)
}

func (r *table[T]) Get(id int64) (Entry[T], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	if err := r.validate(id, false); err != nil {
		return nil, err
	}
	e, ok := r.table[id]
	if !ok {
		return nil, fmt.Errorf("no match found for: %v", id)
	}
	return e, nil
}

func (r *table[T]) Claim(id int64, d T, l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(id, d, l, false)
}

func (r *table[T]) ClaimDynamic(d T, l labels.Set) (int64, error) {
	r.m.Lock()
	defer r.m.Unlock()

	id, err := r.findFree()
	if err != nil {
		return 0, err
	}
	if err := r.add(id, d, l, false); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *table[T]) ClaimRange(start, size int64, d T, l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	ids, err := r.findFreeRange(start, size)
	if err != nil {
		return err
	}
	var errm error
	rangeview.ForEach[int64](ids, func(id int64) {
		// getting an error is unlikely as we have a lock
		if err := r.add(id, d, l, false); err != nil {
			errm = errors.Join(errm, err)
		}
	})
	return errm
}

func (r *table[T]) Release(id int64) error {
	r.m.Lock()
	defer r.m.Unlock()

	if err := r.validate(id, false); err != nil {
		return err
	}
	delete(r.table, id)
	return nil
}

func (r *table[T]) Update(id int64, d T, l labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	if err := r.validate(id, false); err != nil {
		return err
	}
	if r.isFree(id) {
		return fmt.Errorf("entry %d not found", id)
	}
	r.table[id] = NewEntry(id, d, l)
	return nil
}

func (r *table[T]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.table)
}

func (r *table[T]) Has(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.table[id]
	return ok
}

func (r *table[T]) IsFree(id int64) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.isFree(id)
}

func (r *table[T]) isFree(id int64) bool {
	_, ok := r.table[id]
	return !ok
}

func (r *table[T]) FindFree() (int64, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.findFree()
}

func (r *table[T]) findFree() (int64, error) {
	ids := r.ids()
	it := rangeview.FindIf[int64](ids, r.isFree)
	if it.Equal(ids.End()) {
		return 0, fmt.Errorf("no free entry found")
	}
	return it.Get(), nil
}

func (r *table[T]) FindFreeRange(start, size int64) (counting.Counting[int64], error) {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.findFreeRange(start, size)
}

func (r *table[T]) findFreeRange(start, size int64) (counting.Counting[int64], error) {
	if start < 0 || start > r.size-1 {
		return counting.Counting[int64]{}, fmt.Errorf("start %d is outside the allowed entries: 0-%d", start, r.size-1)
	}
	// bound size before adding it to start, the sum can wrap
	if size < 1 || size > r.size-start {
		return counting.Counting[int64]{}, fmt.Errorf("size %d from start %d is outside the allowed entries: 0-%d", size, start, r.size-1)
	}
	end := start + size - 1

	ids := counting.New(start, start+size)
	used := rangeview.FindIf[int64](ids, func(id int64) bool { return !r.isFree(id) })
	if !used.Equal(ids.End()) {
		return counting.Counting[int64]{}, fmt.Errorf("entry %d in use in range: start: %d, end %d", used.Get(), start, end)
	}
	return ids, nil
}

func (r *table[T]) Entries() Entries[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.entries()
}

func (r *table[T]) entries() Entries[T] {
	keys := lo.Keys(r.table)
	slices.Sort(keys)

	entries := make(Entries[T], 0, len(keys))
	for _, id := range keys {
		entries = append(entries, r.table[id])
	}
	return entries
}

func (r *table[T]) GetByLabel(selector labels.Selector) Entries[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	var entries Entries[T]
	match := rangeview.MatchLabels[Entry[T]](selector)
	rv := rangeview.Wrap[Entry[T]](r.entries())
	for {
		it := rangeview.FindIf(rv, match)
		if it.Equal(rv.End()) {
			return entries
		}
		entries = append(entries, it.Get())
		rv = rangeview.New(it.Next(), rv.End())
	}
}

func (r *table[T]) add(id int64, d T, l labels.Set, init bool) error {
	if err := r.validate(id, init); err != nil {
		return err
	}
	if !r.isFree(id) {
		return fmt.Errorf("entry %d already exists", id)
	}
	r.table[id] = NewEntry(id, d, l)
	return nil
}
