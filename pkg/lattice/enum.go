// Package lattice approximates a molecule count by a triplet of integers
// whose product is close to it. Placing N molecules on a cubic lattice needs
// an integer number of molecules along each axis, which is only possible
// exactly when N is a perfect cube. The Decompose method searches for the
// triplet of side lengths that minimises the error while staying as close
// to a cube as possible.
package lattice

import "errors"

// Enum enumerates all sets of integers of a given length whose values lie
// between two bounds, where no two sets have identical members. Two sets that
// only differ by the order of their members are considered identical, so each
// combination is visited exactly once. An instance must be created through
// the NewEnum method.
type Enum struct {
	lower   int
	upper   int
	current []int
	started bool
	done    bool
}

// NewEnum returns an instance of the Enum structure. The bounds are
// inclusive. It returns an error if the lower bound is greater than the
// upper bound.
func NewEnum(lower, upper, length int) (*Enum, error) {
	if lower > upper {
		return nil, errors.New("lower bound exceeds upper bound")
	}

	current := make([]int, length)
	for k := range current {
		current[k] = lower
	}

	return &Enum{lower: lower, upper: upper, current: current}, nil
}

// Next returns the next set. The second return value is false once every set
// has been visited. The returned slice is a copy: it can be kept or modified
// without affecting the sets returned afterwards.
//
// The sets are visited in an odometer order: the first member is incremented
// until it overflows the upper bound, the overflow is carried into the next
// member and every member below the carry is reset to the carried value. The
// first set is therefore all lower bounds and the last one all upper bounds.
func (e *Enum) Next() ([]int, bool) {
	if e.done {
		return nil, false
	}

	if !e.started {
		e.started = true
		return e.snapshot(), true
	}

	if e.atUpper() {
		e.done = true
		return nil, false
	}

	i := 0
	e.current[i]++
	for e.current[i] > e.upper {
		i++
		e.current[i]++
	}
	for j := 0; j < i; j++ {
		e.current[j] = e.current[i]
	}

	return e.snapshot(), true
}

func (e *Enum) atUpper() bool {
	for _, v := range e.current {
		if v != e.upper {
			return false
		}
	}
	return true
}

func (e *Enum) snapshot() []int {
	cpy := make([]int, len(e.current))
	copy(cpy, e.current)
	return cpy
}
