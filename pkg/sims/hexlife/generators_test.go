package hexlife

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func checkSeeded(t *testing.T, name string, l *Lattice) {
	t.Helper()
	seeds := l.SeedTribes()
	for i := range l.sites {
		s := &l.sites[i]
		if !s.valid {
			if s.alive || s.tribe != 0 || s.age != 0 {
				t.Fatalf("%s N=%d: masked site (%d,%d) was written", name, l.size, s.row, s.col)
			}
			continue
		}
		if !s.alive {
			continue
		}
		if s.age < 1 || s.age > 19 {
			t.Fatalf("%s N=%d: site (%d,%d) seeded with age %d", name, l.size, s.row, s.col, s.age)
		}
		if !slices.Contains(seeds, s.tribe) {
			t.Fatalf("%s N=%d: site (%d,%d) seeded with tribe %d outside %v", name, l.size, s.row, s.col, s.tribe, seeds)
		}
	}
}

func TestGeneratorsRespectMaskAndRanges(t *testing.T) {
	for _, size := range []int{1, 2, 5, 6, 53, 101} {
		for _, g := range Generators() {
			l := New(size, nil)
			if err := l.SetSeedTribes([]int{Red, Purple, Green}); err != nil {
				t.Fatal(err)
			}
			if err := l.Seed(g, rand.New(rand.NewPCG(uint64(size), 7))); err != nil {
				t.Fatalf("%s N=%d: %v", g, size, err)
			}
			checkSeeded(t, string(g), l)
		}
	}
}

func TestGeneratorsPopulateLargeLattice(t *testing.T) {
	for _, g := range Generators() {
		l := New(53, nil)
		if err := l.Seed(g, rand.New(rand.NewPCG(1, 2))); err != nil {
			t.Fatal(err)
		}
		total := 0
		for _, n := range l.Population() {
			total += n
		}
		if total == 0 {
			t.Fatalf("%s produced an empty lattice", g)
		}
	}
}

func TestGeneratorsHighDrawsLeaveLatticeEmpty(t *testing.T) {
	for _, g := range Generators() {
		if g == GenNoise {
			continue
		}
		l := New(21, nil)
		l.SetSite(10, 10, true, Blue, 4)
		if err := l.Seed(g, constSource(0.99)); err != nil {
			t.Fatal(err)
		}
		if got := l.Population(); !slices.Equal(got, make([]int, l.Rules().Len())) {
			t.Fatalf("%s with draws of 0.99 left population %v", g, got)
		}
	}
}

func TestSym2MirrorsAcrossVerticalAxis(t *testing.T) {
	l := New(53, nil)
	l.RandomizeSym2(rand.New(rand.NewPCG(9, 9)))
	h := l.size / 2
	for row := 0; row < l.size; row++ {
		for col := 0; col < h; col++ {
			k := 2*h - col
			if row%2 != 0 {
				k--
			}
			a, b := l.Site(row, col), l.Site(row, k)
			if a.valid != b.valid {
				t.Fatalf("mask is not mirrored at row %d: col %d vs %d", row, col, k)
			}
			if a.alive != b.alive || a.tribe != b.tribe || a.age != b.age {
				t.Fatalf("row %d: col %d and mirror col %d differ", row, col, k)
			}
		}
	}
}

func TestSym4MirrorsAcrossBothAxes(t *testing.T) {
	l := New(53, nil)
	l.RandomizeSym4(rand.New(rand.NewPCG(4, 4)))
	h := l.size / 2
	for row := 0; row < h; row++ {
		for col := 0; col < h; col++ {
			k := 2*h - col
			if row%2 != 0 {
				k--
			}
			base := l.Site(row, col)
			for _, p := range [][2]int{{row, k}, {2*h - row, col}, {2*h - row, k}} {
				m := l.Site(p[0], p[1])
				if !base.valid || !m.valid {
					continue
				}
				if base.alive != m.alive || base.tribe != m.tribe || base.age != m.age {
					t.Fatalf("(%d,%d) and image (%d,%d) differ", row, col, p[0], p[1])
				}
			}
		}
	}
}

func TestSeedClearsPreviousState(t *testing.T) {
	l := New(11, nil)
	for row := 0; row < l.size; row++ {
		for col := 0; col < l.size; col++ {
			l.SetSite(row, col, true, Green, 20)
		}
	}
	l.Randomize(constSource(0.5))
	for _, n := range l.Population() {
		if n != 0 {
			t.Fatalf("randomize kept old sites: %v", l.Population())
		}
	}
}

func TestSeedUnknownGenerator(t *testing.T) {
	l := New(5, nil)
	if err := l.Seed("spiral", constSource(0.1)); !errors.Is(err, ErrUnknownGenerator) {
		t.Fatalf("err = %v, want ErrUnknownGenerator", err)
	}
}

func TestParseGenerator(t *testing.T) {
	got, err := ParseGenerator("  SYM6 ")
	if err != nil || got != GenSym6 {
		t.Fatalf("ParseGenerator(SYM6) = %q, %v", got, err)
	}

	_, err = ParseGenerator("symm62")
	if !errors.Is(err, ErrUnknownGenerator) {
		t.Fatalf("err = %v, want ErrUnknownGenerator", err)
	}
	if !strings.Contains(err.Error(), `did you mean "sym62"`) {
		t.Fatalf("missing suggestion in %q", err)
	}

	_, err = ParseGenerator("xyzzy")
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("unexpected suggestion for xyzzy: %v", err)
	}
}

func TestSeedNoiseDeterministic(t *testing.T) {
	a := New(41, nil)
	b := New(41, nil)
	a.SeedNoise(77, rand.New(rand.NewPCG(1, 1)))
	b.SeedNoise(77, rand.New(rand.NewPCG(1, 1)))
	if !slices.Equal(snapshotSites(a), snapshotSites(b)) {
		t.Fatal("same noise seed produced different lattices")
	}
	total := 0
	for _, n := range a.Population() {
		total += n
	}
	if total == 0 {
		t.Fatal("noise seeding produced an empty lattice")
	}
	checkSeeded(t, "noise", a)
}
