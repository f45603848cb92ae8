package guts

import (
	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Assign stores every value of values at its key. All indices are validated
// first: if any is outside [0, N), nothing is written and the returned error
// lists every offending index in ascending order.
func (a *Array[T, A]) Assign(values map[int]T) error {
	indexes := maps.Keys(values)
	slices.Sort(indexes)

	var merr *multierror.Error
	for _, idx := range indexes {
		if err := checkIndex(idx, a.Size()); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return err
	}

	for _, idx := range indexes {
		a.elems[idx] = values[idx]
	}
	return nil
}
