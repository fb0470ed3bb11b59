package hexlife

// Source is the random stream consumed by the seeders. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// draw is one sampled cell, written to every symmetric image of its position.
type draw struct {
	alive bool
	tribe int
	age   int
}

func randomAge(rng Source) int { return 1 + int(19*rng.Float64()) }

func (l *Lattice) put(row, col int, d draw) {
	l.SetSite(row, col, d.alive, d.tribe, d.age)
}

// putMirrored writes d at (row, col) and d2 at its point reflection through
// the lattice centre. Odd rows are shifted by half a cell, hence the extra -1.
func (l *Lattice) putMirrored(h, row, col int, d, d2 draw) {
	l.put(row, col, d)
	symCol := 2*h - col
	if row%2 != 0 {
		symCol--
	}
	l.put(2*h-row, symCol, d2)
}

// Randomize seeds every valid site independently with probability 0.3.
func (l *Lattice) Randomize(rng Source) {
	l.Clear()
	n := len(l.seedTribes)
	for i := range l.sites {
		s := &l.sites[i]
		if !s.valid || rng.Float64() >= 0.3 {
			continue
		}
		tribe := l.seedTribes[int(rng.Float64()*float64(n))%n]
		l.SetSite(s.row, s.col, true, tribe, randomAge(rng))
	}
}

// RandomizeSym2 seeds the left half and mirrors it across the vertical axis.
func (l *Lattice) RandomizeSym2(rng Source) {
	l.Clear()
	n := len(l.seedTribes)
	h := l.size / 2
	c := 0
	for i := 0; i < l.size; i++ {
		for j := 0; j < h; j++ {
			num := rng.Float64()
			var d draw
			if num < 0.4 {
				d.alive = true
				c = (c + 1) % n
				if num > 0.35 {
					c = 0
				}
			}
			if d.alive {
				d.age = randomAge(rng)
				d.tribe = l.seedTribe(c)
			}
			k := 2*h - j
			if i%2 != 0 {
				k--
			}
			l.put(i, j, d)
			l.put(i, k, d)
		}
	}
}

// RandomizeSym3 seeds a triangular wedge, copies it to three rotations and
// fills the point reflections from an independent second sample.
func (l *Lattice) RandomizeSym3(rng Source) {
	l.Clear()
	n := len(l.seedTribes)
	c := int(rng.Float64()*float64(n)) % n
	c2 := c
	d := int(2.99 * rng.Float64())
	h := l.size / 2

	for i := 0; i <= h; i++ {
		for j := 0; j <= i; j++ {
			var s1, s2 draw
			if rng.Float64() < 0.55 {
				s1.alive = true
				if i%4-d == 0 || j%3 == 0 {
					c = (c + 1) % n
				}
			}
			if s1.alive {
				s1.age = randomAge(rng)
				s1.tribe = l.seedTribe(c)
			}
			if rng.Float64() < 0.55 {
				s2.alive = true
				if i%3 == 0 || j%3+d == 0 {
					c2 = (c2 + 1) % n
				}
			}
			if s2.alive {
				s2.age = randomAge(rng)
				s2.tribe = l.seedTribe(c2)
			}

			l.putMirrored(h, h-j, h-i+j/2, s1, s2)
			l.putMirrored(h, h-i+j, h+i-(i-j+1)/2, s1, s2)
			l.putMirrored(h, h+i, h-j+i/2, s1, s2)
		}
	}
}

// RandomizeSym4 seeds the upper-left quadrant and reflects it across both
// axes.
func (l *Lattice) RandomizeSym4(rng Source) {
	l.Clear()
	n := len(l.seedTribes)
	h := l.size / 2
	c := 0
	for i := 0; i < h; i++ {
		for j := 0; j < h; j++ {
			num := rng.Float64()
			var d draw
			if num < 0.45 {
				d.alive = true
				c = (c + 1) % n
				if num > 0.4 {
					c = 0
				}
			}
			if d.alive {
				d.age = randomAge(rng)
				d.tribe = l.seedTribe(c)
			}
			k := 2*h - j
			if i%2 != 0 {
				k--
			}
			l.put(2*h-i, j, d)
			l.put(i, j, d)
			l.put(i, k, d)
			l.put(2*h-i, k, d)
		}
	}
}

// wedgeDraw samples one cell for the six-fold family. Large lattices rotate
// through the seed tribes; small ones use a single tribe picked up front.
func (l *Lattice) wedgeDraw(rng Source, h int, pick float64, c *int) draw {
	num := rng.Float64()
	var d draw
	if num < 0.55 {
		d.alive = true
		if h > 10 {
			*c = (*c + 1) % len(l.seedTribes)
			if num > 0.45 {
				*c = 0
			}
		} else {
			switch {
			case pick > 0.6666:
				*c = 2
			case pick > 0.3333:
				*c = 1
			default:
				*c = 0
			}
		}
	}
	if d.alive {
		d.age = randomAge(rng)
		d.tribe = l.seedTribe(*c)
	}
	return d
}

// RandomizeSym6 seeds a triangular wedge and writes it to three rotations and
// their point reflections.
func (l *Lattice) RandomizeSym6(rng Source) {
	l.Clear()
	h := l.size / 2
	pick := rng.Float64()
	c := 0
	for i := 0; i <= h; i++ {
		for j := 0; j <= i; j++ {
			d := l.wedgeDraw(rng, h, pick, &c)
			l.putMirrored(h, h-j, h-i+j/2, d, d)
			l.putMirrored(h, h-i+j, h+i-(i-j+1)/2, d, d)
			l.putMirrored(h, h+i, h-j+i/2, d, d)
		}
	}
}

// RandomizeSym32 seeds a triangular wedge and writes it to six direct
// rotations without reflections.
func (l *Lattice) RandomizeSym32(rng Source) {
	l.Clear()
	h := l.size / 2
	pick := rng.Float64()
	c := 0
	for i := 0; i <= h; i++ {
		for j := 0; j <= i; j++ {
			d := l.wedgeDraw(rng, h, pick, &c)

			l.put(h-j, h-i+j/2, d)
			a := h + i/2 + j/2
			if j%2 == 1 && i%2 == 1 {
				a++
			}
			l.put(h+i-j, a, d)
			l.put(h-i+j, h+i-(i-j+1)/2, d)
			l.put(h+j, h-i+j/2, d)
			l.put(h+i, h-j+i/2, d)
			l.put(h-i, h-j+i/2, d)
		}
	}
}

// RandomizeSym62 seeds half a wedge and writes it to six rotations and their
// point reflections.
func (l *Lattice) RandomizeSym62(rng Source) {
	l.Clear()
	h := l.size / 2
	pick := rng.Float64()
	c := 0
	for i := 0; i <= h; i++ {
		for j := 0; j < (i+1)/2; j++ {
			d := l.wedgeDraw(rng, h, pick, &c)
			l.putMirrored(h, h-j, h-i+j/2, d, d)
			l.putMirrored(h, h-i+j, h-i+(i-j)/2, d, d)
			l.putMirrored(h, h-i+j, h+i-(i-j+1)/2, d, d)
			l.putMirrored(h, h-j, h+i-(j+1)/2, d, d)
			l.putMirrored(h, h+i, h-j+i/2, d, d)
			l.putMirrored(h, h+i, h-i+j+i/2, d, d)
		}
	}
}
