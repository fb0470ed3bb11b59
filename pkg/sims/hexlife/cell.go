package hexlife

// pending is the staged transition computed by the calc phase.
type pending uint8

const (
	pendingDead pending = iota
	pendingAlive
	pendingDying
)

// Site is one lattice position. Sites are owned by their Lattice; callers get
// read-only views and write through Lattice.SetSite.
type Site struct {
	row, col int
	valid    bool

	alive bool
	tribe int
	age   int

	// neighbors are arena indices in fixed cyclic order.
	neighbors []int

	next      pending
	nextTribe int
	nextAge   int
}

// Row returns the site row.
func (s *Site) Row() int { return s.row }

// Col returns the site column.
func (s *Site) Col() int { return s.col }

// Valid reports whether the site lies inside the hexagon.
func (s *Site) Valid() bool { return s.valid }

// Alive reports whether the site is alive (including while fading).
func (s *Site) Alive() bool { return s.alive }

// Tribe returns the tribe id. It is stale on dead sites.
func (s *Site) Tribe() int { return s.tribe }

// Age returns the site age in [0, MaxAge].
func (s *Site) Age() int { return s.age }

// Neighbors returns the number of linked neighbors.
func (s *Site) Neighbors() int { return len(s.neighbors) }

// accumulate sums living neighbor ages per tribe channel and derives the
// polarity channel from each living neighbor's cyclic left and right entries.
func (s *Site) accumulate(sites []Site) Accumulator {
	var acc Accumulator
	n := len(s.neighbors)
	for i, idx := range s.neighbors {
		nb := &sites[idx]
		if !nb.alive {
			continue
		}
		acc[nb.tribe] += nb.age

		left := sites[s.neighbors[(i+n-1)%n]].tribe
		right := sites[s.neighbors[(i+1)%n]].tribe
		switch {
		case left != nb.tribe && right != nb.tribe:
			acc[PolarityChannel] += nb.age
		case left == nb.tribe && right == nb.tribe:
			acc[PolarityChannel] -= nb.age
		}
	}
	return acc
}

// calc stages the next state from the current generation only.
func (s *Site) calc(sites []Site, rules *RuleConfig) {
	if !s.valid {
		return
	}
	acc := s.accumulate(sites)

	if s.alive {
		s.nextTribe = s.tribe
		if rules.survives(s.tribe, acc) {
			s.next = pendingAlive
			s.nextAge = min(s.age+1, MaxAge)
			return
		}
		s.next = pendingDying
		s.nextAge = s.age
		return
	}

	if winner := rules.birth(acc); winner >= 0 {
		s.next = pendingAlive
		s.nextTribe = winner
		s.nextAge = 1
		return
	}
	s.next = pendingDead
	s.nextTribe = s.tribe
	s.nextAge = 0
}

// apply commits the staged state. A dying site loses its tribe's decay rate
// in age and stays visible until the age runs out.
func (s *Site) apply(rules *RuleConfig) {
	if !s.valid {
		return
	}
	switch s.next {
	case pendingDying:
		s.tribe = s.nextTribe
		s.age = s.nextAge - rules.decay(s.nextTribe)
		if s.age <= 0 {
			s.alive = false
			s.age = 0
		} else {
			s.alive = true
		}
	case pendingAlive:
		s.alive = true
		s.tribe = s.nextTribe
		s.age = s.nextAge
	default:
		s.alive = false
		s.tribe = s.nextTribe
		s.age = 0
	}
	if s.age > MaxAge {
		s.age = MaxAge
	}
}
