package hexlife

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownGenerator reports a generator name that is not registered.
var ErrUnknownGenerator = errors.New("unknown generator")

// Generator names a seeding strategy.
type Generator string

const (
	GenRandom Generator = "random"
	GenSym2   Generator = "sym2"
	GenSym3   Generator = "sym3"
	GenSym4   Generator = "sym4"
	GenSym6   Generator = "sym6"
	GenSym32  Generator = "sym32"
	GenSym62  Generator = "sym62"
	GenNoise  Generator = "noise"
)

var generators = []Generator{GenRandom, GenSym2, GenSym3, GenSym4, GenSym6, GenSym32, GenSym62, GenNoise}

// Generators lists every registered generator in display order.
func Generators() []Generator {
	return append([]Generator(nil), generators...)
}

// ParseGenerator resolves a generator name, case-insensitively. Unknown names
// produce an error naming the closest match when one is near enough.
func ParseGenerator(name string) (Generator, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, g := range generators {
		if string(g) == key {
			return g, nil
		}
	}
	if best, ok := closestGenerator(key); ok {
		return "", fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownGenerator, name, best)
	}
	return "", fmt.Errorf("%w %q", ErrUnknownGenerator, name)
}

func closestGenerator(key string) (Generator, bool) {
	if key == "" {
		return "", false
	}
	var best Generator
	bestDist := -1
	for _, g := range generators {
		dist := levenshtein.ComputeDistance(key, string(g))
		if dist > suggestLimit(len(g)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best = g
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}

func suggestLimit(length int) int {
	if length <= 4 {
		return 1
	}
	return 2
}

// Seed clears the lattice and populates it with g, drawing from rng.
func (l *Lattice) Seed(g Generator, rng Source) error {
	switch g {
	case GenRandom:
		l.Randomize(rng)
	case GenSym2:
		l.RandomizeSym2(rng)
	case GenSym3:
		l.RandomizeSym3(rng)
	case GenSym4:
		l.RandomizeSym4(rng)
	case GenSym6:
		l.RandomizeSym6(rng)
	case GenSym32:
		l.RandomizeSym32(rng)
	case GenSym62:
		l.RandomizeSym62(rng)
	case GenNoise:
		l.SeedNoise(int64(rng.Float64()*(1<<53)), rng)
	default:
		return fmt.Errorf("%w %q", ErrUnknownGenerator, g)
	}
	return nil
}
