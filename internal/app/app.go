//go:build ebiten

package app

import (
	"time"

	"hex-tribes/internal/core"
	"hex-tribes/internal/render"
	"hex-tribes/internal/sims/tribes"
	"hex-tribes/internal/ui"
	"hex-tribes/pkg/sims/hexlife"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const minPanelHeight = 420

var generatorKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
}

// Game adapts a tribes world to the ebiten.Game interface.
type Game struct {
	world   *tribes.World
	painter *render.HexPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	ticker  *core.FixedStep

	scale      int
	paused     bool
	tickOnce   bool
	paintTribe int
}

// New constructs a Game for the provided world.
func New(world *tribes.World, cfg *Config) *Game {
	scale := max(cfg.Scale, 1)
	size := world.Size()
	return &Game{
		world:   world,
		painter: render.NewHexPainter(size.W, size.H, scale),
		hud:     ui.NewHUD(world, cfg.HUDWidth),
		overlay: ui.NewOverlay(world, scale),
		ticker:  core.NewFixedStep(cfg.TPS),
		scale:   scale,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the world by the ticks owed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.ticker.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.world.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.paintTribe = (g.paintTribe + 1) % g.world.Lattice().Rules().Len()
	}
	gens := hexlife.Generators()
	for i, key := range generatorKeys {
		if i < len(gens) && inpututil.IsKeyJustPressed(key) {
			_ = g.world.SetGenerator(gens[i])
		}
	}

	g.overlay.Update()
	viewW, _ := g.painter.Size()
	if g.hud.Update(viewW) {
		g.syncPainter()
	}
	g.handlePaint()

	if g.paused {
		if g.tickOnce {
			g.world.Step()
		}
	} else {
		for n := g.ticker.Due(); n > 0; n-- {
			g.world.Step()
		}
	}
	g.tickOnce = false
	return nil
}

func (g *Game) handlePaint() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	size := g.world.Size()
	mx, my := ebiten.CursorPosition()
	if row, col, ok := render.CellAt(mx, my, size.W, size.H, g.scale); ok {
		g.world.Paint(row, col, g.paintTribe)
	}
}

// syncPainter rebuilds the painter after the lattice was resized.
func (g *Game) syncPainter() {
	size := g.world.Size()
	if g.painter.Matches(size.W, size.H, g.scale) {
		return
	}
	g.painter = render.NewHexPainter(size.W, size.H, g.scale)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
}

// Draw renders the lattice, the inspector and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.world.Palette())
	g.overlay.Draw(screen)
	viewW, _ := g.painter.Size()
	g.hud.Draw(screen, viewW, screen.Bounds().Dy())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	if g.hud.Width() > 0 {
		h = max(h, minPanelHeight)
	}
	return w + g.hud.Width(), h
}
