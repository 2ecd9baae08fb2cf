package idxtable

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/iterrange/pkg/rangeview"
	"github.com/stretchr/testify/assert"
	"k8s.io/apimachinery/pkg/labels"
)

var initEntries = map[int64]string{
	0:   "a",
	1:   "b",
	999: "c",
}

func TestNewTable(t *testing.T) {
	cases := map[string]struct {
		size            int64
		initEntries     map[int64]string
		validation      ValidationFn
		expectedEntries int
		expectedErr     bool
	}{

		"NewWithoutInitEntries": {
			size:            1000,
			initEntries:     nil,
			expectedEntries: 0,
		},
		"NewWithInitEntries": {
			size:            1000,
			initEntries:     initEntries,
			validation:      func(id int64) error { return nil },
			expectedEntries: 3,
		},
		"NewErrorMaxEntries": {
			size:        100,
			initEntries: initEntries,
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewTable[string](tc.size, tc.initEntries, tc.validation)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if r.Count() != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, r.Count())
			}
		})
	}
}

func TestClaim(t *testing.T) {
	cases := map[string]struct {
		size              int64
		initEntries       map[int64]string
		validation        ValidationFn
		newSuccessEntries map[int64]string
		newFailedEntries  map[int64]string
		expectedEntries   int
	}{

		"Normal": {
			size:        1000,
			initEntries: initEntries,
			newSuccessEntries: map[int64]string{
				10: "a",
				11: "b",
			},
			newFailedEntries: map[int64]string{
				1000: "x",
				-1:   "y",
				0:    "z",
			},
			expectedEntries: 5,
		},
		"Validation": {
			size: 1000,
			validation: func(id int64) error {
				if id%2 == 1 {
					return errors.New("odd")
				}
				return nil
			},
			newSuccessEntries: map[int64]string{
				10: "a",
			},
			newFailedEntries: map[int64]string{
				11: "b",
			},
			expectedEntries: 1,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewTable[string](tc.size, tc.initEntries, tc.validation)
			assert.NoError(t, err)

			for id, d := range tc.newSuccessEntries {
				err := r.Claim(id, d, nil)
				assert.NoError(t, err)
			}
			for id, d := range tc.newFailedEntries {
				err := r.Claim(id, d, nil)
				assert.Error(t, err)
			}
			for id := range tc.initEntries {
				if !r.Has(id) {
					t.Errorf("%s expecting initEntry: %d\n", name, id)
				}
			}
			for id, d := range tc.newSuccessEntries {
				e, err := r.Get(id)
				assert.NoError(t, err)
				assert.Equal(t, d, e.Data())
			}
			if r.Count() != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, r.Count())
			}
		})
	}
}

func TestReleaseAndUpdate(t *testing.T) {
	r, err := NewTable[string](1000, initEntries, nil)
	assert.NoError(t, err)

	assert.NoError(t, r.Release(1))
	assert.False(t, r.Has(1))
	assert.True(t, r.IsFree(1))
	// releasing a free entry is not an error
	assert.NoError(t, r.Release(20))
	assert.Error(t, r.Release(1000))

	assert.Error(t, r.Update(1, "x", nil))
	assert.NoError(t, r.Update(999, "x", labels.Set{"k": "v"}))
	e, err := r.Get(999)
	assert.NoError(t, err)
	assert.Equal(t, "x", e.Data())
	assert.Equal(t, labels.Set{"k": "v"}, e.Labels())

	_, err = r.Get(1)
	assert.Error(t, err)
	assert.Equal(t, 2, r.Count())
}

func TestEntries(t *testing.T) {
	cases := map[string]struct {
		size        int64
		initEntries map[int64]string
		keys        []int64
	}{

		"Normal": {
			size:        1000,
			initEntries: initEntries,
			keys:        []int64{0, 1, 999},
		},
		"None": {
			size:        1000,
			initEntries: nil,
			keys:        []int64{},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewTable[string](tc.size, tc.initEntries, nil)
			assert.NoError(t, err)

			keys := []int64{}
			rangeview.ForEach[Entry[string]](r.Entries(), func(e Entry[string]) {
				keys = append(keys, e.ID())
			})
			if diff := cmp.Diff(tc.keys, keys); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
			assert.Equal(t, len(tc.keys), rangeview.Size[Entry[string]](r.Entries()))
		})
	}
}

func TestFindFree(t *testing.T) {
	r, err := NewTable[string](3, map[int64]string{0: "a", 2: "c"}, nil)
	assert.NoError(t, err)

	id, err := r.FindFree()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)

	id, err = r.ClaimDynamic("b", nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = r.FindFree()
	assert.Error(t, err)
	_, err = r.ClaimDynamic("d", nil)
	assert.Error(t, err)
}

func TestClaimRange(t *testing.T) {
	cases := map[string]struct {
		size            int64
		initEntries     map[int64]string
		start           int64
		total           int64
		expectedEntries int
		expectedErr     bool
	}{

		"Normal": {
			size:            10,
			initEntries:     nil,
			start:           5,
			total:           5,
			expectedEntries: 5,
		},
		"ErrorMax": {
			size:        10,
			initEntries: nil,
			start:       5,
			total:       6,
			expectedErr: true,
		},
		"ErrorStart": {
			size:        10,
			initEntries: nil,
			start:       10,
			total:       1,
			expectedErr: true,
		},
		"ErrorSizeWraps": {
			size:        10,
			initEntries: nil,
			start:       2,
			total:       math.MaxInt64,
			expectedErr: true,
		},
		"ErrorZero": {
			size:        10,
			initEntries: nil,
			start:       2,
			total:       0,
			expectedErr: true,
		},
		"ErrorOverlap": {
			size:        1000,
			initEntries: initEntries,
			start:       0,
			total:       5,
			expectedErr: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := NewTable[string](tc.size, tc.initEntries, nil)
			assert.NoError(t, err)

			err = r.ClaimRange(tc.start, tc.total, "a", nil)
			if tc.expectedErr {
				assert.Error(t, err)
				assert.Equal(t, len(tc.initEntries), r.Count())
				return
			}
			assert.NoError(t, err)
			for id := tc.start; id < tc.start+tc.total; id++ {
				if !r.Has(id) {
					t.Errorf("%s expecting entry: %d\n", name, id)
				}
			}
			if r.Count() != tc.expectedEntries {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expectedEntries, r.Count())
			}
		})
	}
}

func TestFindFreeRange(t *testing.T) {
	r, err := NewTable[string](100, initEntries, nil)
	assert.NoError(t, err)

	ids, err := r.FindFreeRange(10, 4)
	assert.NoError(t, err)
	assert.Equal(t, []int64{10, 11, 12, 13}, rangeview.Collect[int64](ids))

	_, err = r.FindFreeRange(0, 4)
	assert.Error(t, err)

	_, err = r.FindFreeRange(2, math.MaxInt64)
	assert.Error(t, err)
	_, err = r.FindFreeRange(math.MaxInt64, 1)
	assert.Error(t, err)
	ids, err = r.FindFreeRange(99, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, ids.Size())
}

func TestGetByLabel(t *testing.T) {
	r, err := NewTable[string](100, nil, nil)
	assert.NoError(t, err)

	assert.NoError(t, r.Claim(5, "e", labels.Set{"pool": "red"}))
	assert.NoError(t, r.Claim(1, "a", labels.Set{"pool": "red"}))
	assert.NoError(t, r.Claim(3, "c", labels.Set{"pool": "blue"}))
	assert.NoError(t, r.Claim(7, "g", nil))

	cases := map[string]struct {
		selector labels.Selector
		ids      []int64
	}{
		"Red": {
			selector: labels.SelectorFromSet(labels.Set{"pool": "red"}),
			ids:      []int64{1, 5},
		},
		"Blue": {
			selector: labels.SelectorFromSet(labels.Set{"pool": "blue"}),
			ids:      []int64{3},
		},
		"Everything": {
			selector: labels.Everything(),
			ids:      []int64{1, 3, 5, 7},
		},
		"None": {
			selector: labels.SelectorFromSet(labels.Set{"pool": "green"}),
			ids:      nil,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var ids []int64
			for _, e := range r.GetByLabel(tc.selector) {
				ids = append(ids, e.ID())
			}
			if diff := cmp.Diff(tc.ids, ids); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}
