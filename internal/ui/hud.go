//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"nd-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 16
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []hudLine
	title      string
}

type hudLine struct {
	text   string
	header bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter lines from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.lines = h.lines[:0]
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.lines = append(h.lines, hudLine{text: fmt.Sprintf("Generation %d", h.sim.Generation())})
		return
	}
	for _, group := range provider.Parameters().Groups {
		h.lines = append(h.lines, hudLine{text: group.Name, header: true})
		for _, p := range group.Params {
			h.lines = append(h.lines, hudLine{text: p.Label + ": " + p.Value})
		}
	}
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, line := range h.lines {
		y += lineHeight
		if y > height {
			break
		}
		fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if line.header {
			y += lineHeight / 2
			fg = color.RGBA{R: 150, G: 180, B: 240, A: 255}
		}
		text.Draw(h.panel, line.text, face, panelPadding, y, fg)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Automaton"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}
