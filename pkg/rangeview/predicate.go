package rangeview

import (
	"k8s.io/apimachinery/pkg/labels"
)

// Labeled elements carry a label set.
type Labeled interface {
	Labels() labels.Set
}

// MatchLabels returns a FindIf predicate selecting elements whose labels
// match selector.
func MatchLabels[T Labeled](selector labels.Selector) func(T) bool {
	return func(e T) bool {
		return selector.Matches(e.Labels())
	}
}
