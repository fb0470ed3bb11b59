package tribes

import (
	"image/color"

	"hex-tribes/pkg/sims/hexlife"
)

const (
	displayOutside uint8 = 0
	displayDead    uint8 = 1
	displayAlive   uint8 = 2

	fadeSpan = 22
)

var tribesPalette = buildPalette(hexlife.DefaultRuleConfig())

// Palette exposes the color palette used for rendering the lattice.
func (w *World) Palette() []color.RGBA {
	return tribesPalette
}

func buildPalette(rules *hexlife.RuleConfig) []color.RGBA {
	palette := make([]color.RGBA, int(displayAlive)+rules.Len()*hexlife.MaxAge)
	palette[displayOutside] = color.RGBA{A: 255}
	palette[displayDead] = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	for _, t := range rules.Tribes() {
		for age := 1; age <= hexlife.MaxAge; age++ {
			palette[encodeAlive(t.ID, age)] = fade(t.Color, age)
		}
	}
	return palette
}

// fade moves c towards white as the cell ages.
func fade(c color.RGBA, age int) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(int(v) + (255-int(v))*age/fadeSpan)
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: 255}
}

func encodeAlive(tribe, age int) uint8 {
	return displayAlive + uint8(tribe*hexlife.MaxAge+age-1)
}

// decodeDisplayValue reverses the display encoding. ok is false for cells
// that are outside the hexagon or dead.
func decodeDisplayValue(v uint8) (tribe, age int, ok bool) {
	if v < displayAlive {
		return 0, 0, false
	}
	n := int(v - displayAlive)
	return n / hexlife.MaxAge, n%hexlife.MaxAge + 1, true
}

func (w *World) rebuildDisplay() {
	n := w.lattice.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			s := w.lattice.Site(row, col)
			v := displayOutside
			switch {
			case !s.Valid():
			case s.Alive():
				v = encodeAlive(s.Tribe(), s.Age())
			default:
				v = displayDead
			}
			w.display.Set(col, row, v)
		}
	}
}
