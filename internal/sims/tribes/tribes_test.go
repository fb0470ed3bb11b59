package tribes

import (
	"image/color"
	"slices"
	"testing"

	"hex-tribes/internal/core"
	"hex-tribes/pkg/sims/hexlife"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 31
	cfg.Seed = 99

	world := NewWithConfig(cfg)
	initial := append([]uint8(nil), world.Cells()...)

	world.Step()
	world.Step()
	world.Cells()[4] = 42

	world.Reset(99)
	if !slices.Equal(initial, world.Cells()) {
		t.Fatal("Reset with the same seed did not rebuild the same lattice")
	}
	if world.Generation() != 0 {
		t.Fatalf("generation = %d after reset", world.Generation())
	}

	world.Reset(100)
	if slices.Equal(initial, world.Cells()) {
		t.Fatal("different seeds produced identical lattices")
	}
}

func TestStepAdvancesGeneration(t *testing.T) {
	world := New(21)
	for i := 1; i <= 3; i++ {
		world.Step()
		if world.Generation() != i {
			t.Fatalf("generation = %d, want %d", world.Generation(), i)
		}
	}
}

func TestDisplayEncoding(t *testing.T) {
	world := New(5)
	world.Clear()
	if !world.Paint(2, 2, hexlife.Purple) {
		t.Fatal("paint rejected on a valid site")
	}
	if world.Paint(0, 0, hexlife.Blue) {
		t.Fatal("paint accepted outside the hexagon")
	}
	if world.Paint(2, 2, 9) {
		t.Fatal("paint accepted an unknown tribe")
	}

	cells := world.Cells()
	if got := cells[0]; got != displayOutside {
		t.Fatalf("outside cell encoded as %d", got)
	}
	if got := cells[1]; got != displayDead {
		t.Fatalf("dead cell encoded as %d", got)
	}
	want := uint8(2 + hexlife.Purple*hexlife.MaxAge + paintAge - 1)
	if got := cells[2*5+2]; got != want {
		t.Fatalf("painted cell encoded as %d, want %d", got, want)
	}
	tribe, age, ok := decodeDisplayValue(want)
	if !ok || tribe != hexlife.Purple || age != paintAge {
		t.Fatalf("decode = %d, %d, %v", tribe, age, ok)
	}
	if !world.Alive() {
		t.Fatal("painting should mark the world alive")
	}
}

func TestPaletteCoversEncoding(t *testing.T) {
	world := New(5)
	palette := world.Palette()
	rules := hexlife.DefaultRuleConfig()
	if len(palette) != 2+rules.Len()*hexlife.MaxAge {
		t.Fatalf("palette has %d entries", len(palette))
	}
	for _, tr := range rules.Tribes() {
		young := palette[encodeAlive(tr.ID, 1)]
		old := palette[encodeAlive(tr.ID, hexlife.MaxAge)]
		if young.R > old.R || young.G > old.G || young.B > old.B {
			t.Fatalf("%s does not fade towards white: %v -> %v", tr.Name, young, old)
		}
	}
	if got := fade(color.RGBA{R: 0, G: 50, B: 255, A: 255}, 11); got != (color.RGBA{R: 127, G: 152, B: 255, A: 255}) {
		t.Fatalf("fade = %v", got)
	}
}

func TestResizeReseeds(t *testing.T) {
	world := New(21)
	world.Step()
	world.Resize(33)
	if world.Size() != (core.Size{W: 33, H: 33}) {
		t.Fatalf("size = %+v", world.Size())
	}
	if len(world.Cells()) != 33*33 {
		t.Fatalf("display has %d cells", len(world.Cells()))
	}
	if world.Generation() != 0 {
		t.Fatal("resize should reseed")
	}
	world.Resize(1)
	if world.Size().W != minSize {
		t.Fatalf("size below minimum accepted: %d", world.Size().W)
	}
}

func TestSetGenerator(t *testing.T) {
	world := New(21)
	if err := world.SetGenerator("SYM4"); err != nil {
		t.Fatal(err)
	}
	if world.Generator() != hexlife.GenSym4 {
		t.Fatalf("generator = %q", world.Generator())
	}
	if err := world.SetGenerator("bogus"); err == nil {
		t.Fatal("unknown generator accepted")
	}
	if world.Generator() != hexlife.GenSym4 {
		t.Fatal("failed switch changed the generator")
	}
}

func TestSetIntParameter(t *testing.T) {
	world := New(21)
	if !world.SetIntParameter(paramSize, 25) || world.Size().W != 25 {
		t.Fatalf("size control failed: %d", world.Size().W)
	}
	if world.SetIntParameter(paramSize, 1000) {
		t.Fatal("size above maximum accepted")
	}
	if !world.SetIntParameter(paramGenerator, 0) || world.Generator() != hexlife.GenRandom {
		t.Fatalf("generator control failed: %q", world.Generator())
	}
	if !world.SetIntParameter(paramSeedTribes, 4) {
		t.Fatal("seed tribe control rejected 4")
	}
	if got := world.Lattice().SeedTribes(); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Fatalf("seed tribes = %v", got)
	}
	if world.SetIntParameter(paramSeedTribes, 0) || world.SetIntParameter("nope", 1) {
		t.Fatal("invalid control update accepted")
	}

	snap := world.Parameters()
	if p, ok := snap.Lookup(paramGenerator); !ok || p.Value != "0" {
		t.Fatalf("generator param = %+v", p)
	}
	if p, ok := snap.Lookup(paramSeedTribes); !ok || p.Value != "4" {
		t.Fatalf("seed tribes param = %+v", p)
	}
	if _, ok := snap.Lookup(populationPrefix + "Purple"); !ok {
		t.Fatal("population stats missing")
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"size":        "77",
		"seed":        "-5",
		"generator":   "Sym3",
		"seed_tribes": "3, 2",
	})
	if cfg.Size != 77 || cfg.Seed != -5 || cfg.Generator != hexlife.GenSym3 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if !slices.Equal(cfg.SeedTribes, []int{3, 2}) {
		t.Fatalf("seed tribes = %v", cfg.SeedTribes)
	}

	def := DefaultConfig()
	bad := FromMap(map[string]string{
		"size":        "zero",
		"seed":        "x",
		"generator":   "spiral",
		"seed_tribes": "0,7",
	})
	if bad.Size != def.Size || bad.Seed != def.Seed || bad.Generator != def.Generator || !slices.Equal(bad.SeedTribes, def.SeedTribes) {
		t.Fatalf("invalid values should keep defaults: %+v", bad)
	}
}

func TestRegistered(t *testing.T) {
	sim, err := core.Build("tribes", map[string]string{"size": "15"})
	if err != nil {
		t.Fatal(err)
	}
	if sim.Name() != "tribes" || sim.Size().W != 15 {
		t.Fatalf("built %s of size %+v", sim.Name(), sim.Size())
	}
}

func TestDescribe(t *testing.T) {
	world := New(5)
	world.Clear()
	world.Paint(2, 2, hexlife.Red)
	if got := world.Describe(2, 2); got != "(2,2) Red age 5" {
		t.Fatalf("describe live = %q", got)
	}
	if got := world.Describe(2, 3); got != "(2,3) dead" {
		t.Fatalf("describe dead = %q", got)
	}
	if got := world.Describe(0, 0); got != "" {
		t.Fatalf("describe outside = %q", got)
	}
	if got := len(world.NeighborCoords(2, 2)); got != 6 {
		t.Fatalf("centre has %d neighbors", got)
	}
}
