// Package tribes adapts the hexlife engine to the core.Sim contract so the
// viewer and headless tools can drive it by name.
package tribes

import (
	"fmt"
	"slices"

	"hex-tribes/internal/core"
	"hex-tribes/pkg/sims/hexlife"
)

// paintAge is the age given to cells placed by hand.
const paintAge = 5

// World owns one lattice together with its seeding state and display buffer.
type World struct {
	cfg Config

	lattice *hexlife.Lattice
	rng     *core.RNG
	display *core.ByteGrid

	generation int
	alive      bool
}

// New returns a tribes world of size n using the default configuration.
func New(n int) *World {
	cfg := DefaultConfig()
	cfg.Size = n
	return NewWithConfig(cfg)
}

// NewWithConfig returns a seeded world configured from cfg.
func NewWithConfig(cfg Config) *World {
	cfg.Size = clampSize(cfg.Size)
	if cfg.Generator == "" {
		cfg.Generator = DefaultConfig().Generator
	}
	if len(cfg.SeedTribes) == 0 {
		cfg.SeedTribes = DefaultConfig().SeedTribes
	}
	w := &World{cfg: cfg}
	w.rebuild()
	w.Reset(cfg.Seed)
	return w
}

func (w *World) rebuild() {
	w.lattice = hexlife.New(w.cfg.Size, nil)
	if err := w.lattice.SetSeedTribes(w.cfg.SeedTribes); err != nil {
		w.cfg.SeedTribes = w.lattice.SeedTribes()
	}
	w.display = core.NewByteGrid(w.cfg.Size, w.cfg.Size)
}

// Name implements core.Sim.
func (w *World) Name() string { return "tribes" }

// Size implements core.Sim.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Size, H: w.cfg.Size} }

// Reset reseeds the lattice with the active generator.
func (w *World) Reset(seed int64) {
	w.cfg.Seed = seed
	w.rng = core.NewRNG(seed)
	if err := w.lattice.Seed(w.cfg.Generator, w.rng); err != nil {
		w.lattice.Clear()
	}
	w.generation = 0
	w.alive = w.countAlive() > 0
	w.rebuildDisplay()
}

// Step advances one generation.
func (w *World) Step() {
	w.alive = w.lattice.Update()
	w.generation++
	w.rebuildDisplay()
}

// Cells returns the display buffer, one byte per site in row-major order.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Config returns a copy of the active configuration.
func (w *World) Config() Config {
	c := w.cfg
	c.SeedTribes = slices.Clone(w.cfg.SeedTribes)
	return c
}

// Lattice exposes the underlying engine.
func (w *World) Lattice() *hexlife.Lattice { return w.lattice }

// Generation returns the number of steps since the last reset.
func (w *World) Generation() int { return w.generation }

// Alive reports whether any site was alive after the last step or reset.
func (w *World) Alive() bool { return w.alive }

// Population returns live site counts per tribe.
func (w *World) Population() []int { return w.lattice.Population() }

// Seed returns the seed of the last reset.
func (w *World) Seed() int64 { return w.cfg.Seed }

// Generator returns the active seeding strategy.
func (w *World) Generator() hexlife.Generator { return w.cfg.Generator }

// Paint places a live cell of the given tribe. It reports whether the site
// accepted the write.
func (w *World) Paint(row, col, tribe int) bool {
	if !w.lattice.SetSite(row, col, true, tribe, paintAge) {
		return false
	}
	w.alive = true
	w.rebuildDisplay()
	return true
}

// Clear kills every site without reseeding.
func (w *World) Clear() {
	w.lattice.Clear()
	w.alive = false
	w.rebuildDisplay()
}

// Resize replaces the lattice with one of side n and reseeds it with the
// current seed.
func (w *World) Resize(n int) {
	n = clampSize(n)
	if n == w.cfg.Size {
		return
	}
	w.cfg.Size = n
	w.rebuild()
	w.Reset(w.cfg.Seed)
}

// SetGenerator switches the seeding strategy and reseeds.
func (w *World) SetGenerator(g hexlife.Generator) error {
	parsed, err := hexlife.ParseGenerator(string(g))
	if err != nil {
		return err
	}
	w.cfg.Generator = parsed
	w.Reset(w.cfg.Seed)
	return nil
}

// SetSeedTribes changes the tribes drawn by the generators and reseeds.
func (w *World) SetSeedTribes(tribes []int) error {
	if err := w.lattice.SetSeedTribes(tribes); err != nil {
		return err
	}
	w.cfg.SeedTribes = slices.Clone(tribes)
	w.Reset(w.cfg.Seed)
	return nil
}

// Describe returns a one-line description of a site for inspectors, or ""
// outside the hexagon.
func (w *World) Describe(row, col int) string {
	s := w.lattice.Site(row, col)
	if s == nil || !s.Valid() {
		return ""
	}
	if !s.Alive() {
		return fmt.Sprintf("(%d,%d) dead", row, col)
	}
	name := w.lattice.Rules().Tribe(s.Tribe()).Name
	return fmt.Sprintf("(%d,%d) %s age %d", row, col, name, s.Age())
}

// NeighborCoords returns the linked neighbors of a site.
func (w *World) NeighborCoords(row, col int) [][2]int {
	return w.lattice.NeighborCoords(row, col)
}

func (w *World) countAlive() int {
	total := 0
	for _, n := range w.lattice.Population() {
		total += n
	}
	return total
}

func init() {
	core.Register("tribes", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
