package rules

import (
	"strconv"

	"github.com/pkg/errors"
)

// Ruleset configures the transition rule the engine applies to every cell.
// Survival lists the neighbor counts that keep a live cell alive and Birth
// the counts that turn a dead cell alive. GrowthOnly short-circuits the
// survival check entirely: live cells never die, only the birth rule fires,
// and the population can only expand.
type Ruleset struct {
	Survival   []int `json:"survival"`
	Birth      []int `json:"birth"`
	GrowthOnly bool  `json:"growth_only"`
}

// Classic returns the textbook Conway rule: a live cell survives with 2 or
// 3 neighbors, a dead cell is born with exactly 3.
func Classic() Ruleset {
	return Ruleset{Survival: []int{2, 3}, Birth: []int{3}}
}

// Growth returns the widened-survival variant the heart animations use.
// Letting live cells keep up to 5 neighbors removes most overpopulation
// deaths and biases the automaton toward indefinite growth.
func Growth() Ruleset {
	return Ruleset{Survival: []int{2, 3, 4, 5}, Birth: []int{3}}
}

// GrowthOnly returns the monotonic variant: live cells are never killed,
// dead cells still need exactly 3 neighbors to be born.
func GrowthOnly() Ruleset {
	return Ruleset{Birth: []int{3}, GrowthOnly: true}
}

// Validate checks that every configured neighbor count is reachable in a
// Moore neighborhood and that at least one birth count exists. The
// survival list may be empty; with GrowthOnly set it is ignored entirely.
func (rs Ruleset) Validate() error {
	if len(rs.Birth) == 0 {
		return errors.New("[Validate] ruleset needs at least one birth count")
	}
	for _, n := range rs.Birth {
		if n < 0 || n > 8 {
			return errors.Errorf("[Validate] birth count %d outside 0..8", n)
		}
	}
	for _, n := range rs.Survival {
		if n < 0 || n > 8 {
			return errors.Errorf("[Validate] survival count %d outside 0..8", n)
		}
	}
	return nil
}

/*
Apply determines the next state of a cell from its current state and its
live neighbor count.

Classic Conway behavior with the default lists: (alive && neighbors in
{2,3}) || neighbors == 3. GrowthOnly keeps every live cell alive no matter
the count.
*/
func (rs Ruleset) Apply(neighbors int, alive bool) bool {
	if alive {
		return rs.GrowthOnly || containsCount(rs.Survival, neighbors)
	}
	return containsCount(rs.Birth, neighbors)
}

// String renders the rule in B/S notation, e.g. Classic is "B3/S23" and
// GrowthOnly is "B3/S*".
func (rs Ruleset) String() string {
	s := "B"
	for _, n := range rs.Birth {
		s += strconv.Itoa(n)
	}
	s += "/S"
	if rs.GrowthOnly {
		return s + "*"
	}
	for _, n := range rs.Survival {
		s += strconv.Itoa(n)
	}
	return s
}

func containsCount(counts []int, n int) bool {
	for _, count := range counts {
		if count == n {
			return true
		}
	}
	return false
}
