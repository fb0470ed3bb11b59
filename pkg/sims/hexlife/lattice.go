// Package hexlife implements a multi-tribe cellular automaton on a bounded
// hexagonal lattice.
//
// Sites live in an N×N offset-coordinate array (odd rows shifted right by half
// a cell); a mask restricts the live region to a regular hexagon. Every tick
// is computed in two phases so that each site only ever sees the previous
// generation of its neighbors.
//
// A Lattice is not safe for concurrent use.
package hexlife

import (
	"errors"
	"fmt"
)

// ErrSeedTribes reports an unusable seed tribe list.
var ErrSeedTribes = errors.New("invalid seed tribes")

// Neighbor offsets as (row, col) deltas, clockwise from upper-left.
var (
	evenRowOffsets = [6][2]int{{-1, -1}, {-1, 0}, {0, 1}, {1, 0}, {1, -1}, {0, -1}}
	oddRowOffsets  = [6][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {0, -1}}
)

// Lattice owns the site arena and drives generation updates.
type Lattice struct {
	size       int
	sites      []Site
	rules      *RuleConfig
	seedTribes []int
}

// New builds a lattice of size×size sites with the hexagon mask and neighbor
// graph precomputed. A nil rules uses DefaultRuleConfig.
func New(size int, rules *RuleConfig) *Lattice {
	if size <= 0 {
		size = 1
	}
	if rules == nil {
		rules = DefaultRuleConfig()
	}
	l := &Lattice{
		size:       size,
		sites:      make([]Site, size*size),
		rules:      rules,
		seedTribes: defaultSeedTribes(rules),
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			l.sites[l.index(row, col)] = Site{row: row, col: col, valid: insideHexagon(size, row, col)}
		}
	}
	l.linkNeighbors()
	return l
}

func defaultSeedTribes(rules *RuleConfig) []int {
	if rules.Len() >= 2 {
		return []int{0, 1}
	}
	return []int{0}
}

// insideHexagon reports whether (row, col) survives the hexagon mask. The
// bounds are half-cell values, so they are compared against 2*col.
func insideHexagon(size, row, col int) bool {
	mid := (size - 1) / 2
	c2 := 2 * col
	even := row%2 == 0
	switch {
	case row < mid && even:
		return c2 >= mid-row && c2 <= 3*mid+row
	case row < mid:
		return c2 >= mid-row-2 && c2 <= 3*mid+row
	case row > mid && even:
		return c2 >= row-mid && c2 <= 5*mid-row
	case row > mid:
		return c2 >= row-mid-2 && c2 <= 5*mid-row
	default:
		return true
	}
}

func (l *Lattice) linkNeighbors() {
	for i := range l.sites {
		s := &l.sites[i]
		if !s.valid {
			continue
		}
		offsets := &evenRowOffsets
		if s.row%2 != 0 {
			offsets = &oddRowOffsets
		}
		s.neighbors = make([]int, 0, len(offsets))
		for _, off := range offsets {
			r, c := s.row+off[0], s.col+off[1]
			if !l.inBounds(r, c) {
				continue
			}
			idx := l.index(r, c)
			if !l.sites[idx].valid {
				continue
			}
			s.neighbors = append(s.neighbors, idx)
		}
	}
}

func (l *Lattice) index(row, col int) int { return row*l.size + col }

func (l *Lattice) inBounds(row, col int) bool {
	return row >= 0 && row < l.size && col >= 0 && col < l.size
}

// Size returns the side length N.
func (l *Lattice) Size() int { return l.size }

// Rules returns the tribe table the lattice was built with.
func (l *Lattice) Rules() *RuleConfig { return l.rules }

// Site returns the site at (row, col), or nil when out of bounds. Sites
// outside the hexagon are returned too; check Valid.
func (l *Lattice) Site(row, col int) *Site {
	if !l.inBounds(row, col) {
		return nil
	}
	return &l.sites[l.index(row, col)]
}

// NeighborCoords returns the (row, col) of each linked neighbor of the site
// in cyclic order. Masked and out-of-bounds sites have none.
func (l *Lattice) NeighborCoords(row, col int) [][2]int {
	s := l.Site(row, col)
	if s == nil {
		return nil
	}
	out := make([][2]int, len(s.neighbors))
	for i, idx := range s.neighbors {
		out[i] = [2]int{l.sites[idx].row, l.sites[idx].col}
	}
	return out
}

// SetSite overwrites a site. Out-of-bounds or masked coordinates and unknown
// tribes are ignored; the return value reports whether the write happened.
func (l *Lattice) SetSite(row, col int, alive bool, tribe, age int) bool {
	if !l.inBounds(row, col) || !l.rules.Has(tribe) {
		return false
	}
	s := &l.sites[l.index(row, col)]
	if !s.valid {
		return false
	}
	s.alive = alive
	s.tribe = tribe
	s.age = max(0, min(age, MaxAge))
	return true
}

// SetSeedTribes changes the tribes the randomizers draw from.
func (l *Lattice) SetSeedTribes(tribes []int) error {
	if len(tribes) == 0 {
		return fmt.Errorf("%w: empty list", ErrSeedTribes)
	}
	for _, t := range tribes {
		if !l.rules.Has(t) {
			return fmt.Errorf("%w: tribe %d is not configured", ErrSeedTribes, t)
		}
	}
	l.seedTribes = append(l.seedTribes[:0:0], tribes...)
	return nil
}

// SeedTribes returns a copy of the seed tribe list.
func (l *Lattice) SeedTribes() []int {
	return append([]int(nil), l.seedTribes...)
}

// seedTribe maps a rotating index onto the seed tribe list.
func (l *Lattice) seedTribe(c int) int {
	return l.seedTribes[c%len(l.seedTribes)]
}

// Update advances one generation and reports whether any site is alive.
func (l *Lattice) Update() bool {
	for i := range l.sites {
		if l.sites[i].valid {
			l.sites[i].calc(l.sites, l.rules)
		}
	}
	alive := false
	for i := range l.sites {
		s := &l.sites[i]
		if !s.valid {
			continue
		}
		s.apply(l.rules)
		if s.alive {
			alive = true
		}
	}
	return alive
}

// Clear kills every site and resets tribe and age to zero.
func (l *Lattice) Clear() {
	for i := range l.sites {
		s := &l.sites[i]
		s.alive = false
		s.tribe = 0
		s.age = 0
	}
}

// Population returns the number of live sites per tribe.
func (l *Lattice) Population() []int {
	counts := make([]int, l.rules.Len())
	for i := range l.sites {
		s := &l.sites[i]
		if s.valid && s.alive {
			counts[s.tribe]++
		}
	}
	return counts
}

// ValidCount returns the number of sites inside the hexagon.
func (l *Lattice) ValidCount() int {
	n := 0
	for i := range l.sites {
		if l.sites[i].valid {
			n++
		}
	}
	return n
}
