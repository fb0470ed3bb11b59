//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"hex-tribes/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = buildTitle(sim)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot and handles clicks on the
// +/- buttons. It reports whether a control changed the simulation.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return false
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	return h.handleInput()
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawStats()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s Controls", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = param.Value
		if named, ok := h.snapshot.Lookup(state.control.Key + "_name"); ok {
			state.value = named.Value
		}
		state.hasValue = true
	}
}

func (h *HUD) handleInput() bool {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			return h.applyAdjustment(state, -1)
		}
		if pointInRect(px, my, state.plusRect) {
			return h.applyAdjustment(state, 1)
		}
	}
	return false
}

func (h *HUD) target(state *hudControlState, direction int) int {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	return state.control.Clamp(state.intValue + direction*step)
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) bool {
	if h.intSetter == nil || direction == 0 {
		return false
	}
	target := h.target(state, direction)
	if target == state.intValue {
		return false
	}
	if !h.intSetter.SetIntParameter(state.control.Key, target) {
		return false
	}
	state.intValue = target
	state.value = strconv.Itoa(target)
	return true
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	return h.intSetter != nil && state.hasValue && h.target(state, direction) != state.intValue
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, titleColor)
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, dimColor)
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)
		valueColor := labelColor
		if !state.hasValue {
			valueColor = dimColor
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.canAdjust(state, 1))
	}
}

// drawStats lists every snapshot value that has no control, grouped under
// its heading, below the controls.
func (h *HUD) drawStats() {
	face := basicfont.Face7x13
	controlled := map[string]bool{}
	for _, c := range h.controls {
		controlled[c.control.Key] = true
		controlled[c.control.Key+"_name"] = true
	}
	y := controlsTop + len(h.controls)*lineHeight + statsGap
	for _, group := range h.snapshot.Groups {
		var lines []core.Parameter
		for _, p := range group.Params {
			if !controlled[p.Key] {
				lines = append(lines, p)
			}
		}
		if len(lines) == 0 {
			continue
		}
		text.Draw(h.panel, group.Name, face, panelPadding, y, titleColor)
		y += statsLine
		for _, p := range lines {
			text.Draw(h.panel, p.Label, face, panelPadding, y, dimColor)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, labelColor)
			y += statsLine
		}
		y += statsGap / 2
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control  core.ParameterControl
	value    string
	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	statsGap       = 24
	statsLine      = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
