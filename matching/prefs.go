package matching

import (
	"errors"
	"fmt"
)

var (
	ErrBadSize        = errors.New("population sizes do not match")
	ErrNotPermutation = errors.New("preference list is not a permutation")
)

// Prefs holds one population's preference lists, indexed by member id.
// Row i ranks the opposite population for member i, most preferred
// first. Lists are fixed for the lifetime of a run.
type Prefs [][]int32

// validate checks that every row is a permutation of 0..n-1 where n is
// the number of rows.
func (p Prefs) validate() error {
	n := len(p)
	for i, row := range p {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d entries, want %d",
				ErrNotPermutation, i, len(row), n)
		}
		seen := make([]bool, n)
		for _, x := range row {
			if x < 0 || int(x) >= n || seen[x] {
				return fmt.Errorf("%w: row %d", ErrNotPermutation, i)
			}
			seen[x] = true
		}
	}
	return nil
}

// ranks inverts a preference list: ranks(pref)[id] is the position of
// id in pref. Built once at startup; lower is better.
func ranks(pref []int32) []int32 {
	r := make([]int32, len(pref))
	for i, id := range pref {
		r[id] = int32(i)
	}
	return r
}
