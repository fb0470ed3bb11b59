package hexlife

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

const (
	noiseAliveScale     = 0.18
	noiseTribeScale     = 0.06
	noiseAliveThreshold = 0.55
)

// SeedNoise clears the lattice and seeds it from two OpenSimplex fields: one
// decides which sites are alive, the other groups them into tribe territories.
// Ages are drawn from rng.
func (l *Lattice) SeedNoise(seed int64, rng Source) {
	l.Clear()
	aliveNoise := opensimplex.NewNormalized(seed)
	tribeNoise := opensimplex.NewNormalized(seed + 1)
	n := len(l.seedTribes)
	for i := range l.sites {
		s := &l.sites[i]
		if !s.valid {
			continue
		}
		x, y := hexCentre(s.row, s.col)
		if aliveNoise.Eval2(x*noiseAliveScale, y*noiseAliveScale) <= noiseAliveThreshold {
			continue
		}
		idx := int(tribeNoise.Eval2(x*noiseTribeScale, y*noiseTribeScale) * float64(n))
		idx = max(0, min(idx, n-1))
		l.SetSite(s.row, s.col, true, l.seedTribes[idx], randomAge(rng))
	}
}

// hexCentre maps offset coordinates to the centre of the hexagon in units of
// the cell width.
func hexCentre(row, col int) (float64, float64) {
	x := float64(col)
	if row%2 != 0 {
		x += 0.5
	}
	return x, float64(row) * math.Sqrt(3) / 2
}
