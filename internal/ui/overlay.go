//go:build ebiten

package ui

import (
	"image/color"

	"hex-tribes/internal/core"
	"hex-tribes/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type siteDescriber interface {
	Describe(row, col int) string
	NeighborCoords(row, col int) [][2]int
}

// Overlay is a toggleable site inspector: it outlines the hovered site and
// its neighbors and prints the site state.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool

	hoverRow, hoverCol int
	hovering           bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Visible reports whether the inspector is switched on.
func (o *Overlay) Visible() bool { return o != nil && o.show }

// Update toggles the inspector with I and tracks the hovered site.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.show = !o.show
	}
	size := o.sim.Size()
	mx, my := ebiten.CursorPosition()
	o.hoverRow, o.hoverCol, o.hovering = render.CellAt(mx, my, size.W, size.H, o.scale)
}

// Draw renders the inspector onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.Visible() || !o.hovering {
		return
	}
	describer, ok := o.sim.(siteDescriber)
	if !ok {
		return
	}
	for _, nb := range describer.NeighborCoords(o.hoverRow, o.hoverCol) {
		o.fillCell(screen, nb[0], nb[1], color.RGBA{R: 90, G: 90, B: 110, A: 110})
	}
	o.fillCell(screen, o.hoverRow, o.hoverCol, color.RGBA{R: 255, G: 255, B: 255, A: 150})

	label := describer.Describe(o.hoverRow, o.hoverCol)
	if label == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	o.fillRect(screen, 4, 4, bounds.Dx()+8, bounds.Dy()+8, color.RGBA{R: 0, G: 0, B: 0, A: 180})
	text.Draw(screen, label, face, 8, 8+bounds.Dy(), color.White)
}

func (o *Overlay) fillCell(screen *ebiten.Image, row, col int, c color.RGBA) {
	x := col * o.scale
	if row%2 != 0 {
		x += o.scale / 2
	}
	o.fillRect(screen, x, row*o.scale, o.scale, o.scale, c)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
