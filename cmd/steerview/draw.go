package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/steersim/environment"
	"github.com/lixenwraith/steersim/registry"
	"github.com/lixenwraith/steersim/steering"
	"github.com/lixenwraith/steersim/vmath"
)

var (
	styleLiquid    = tcell.StyleDefault.Background(tcell.ColorNavy)
	styleAttractor = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleRepeller  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHeat      = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleAgent     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// headingGlyphs cover eight 45-degree sectors starting at east.
var headingGlyphs = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// worldToCell maps world coordinates onto the terminal grid.
func (v *viewer) worldToCell(p vmath.Vec2) (int, int) {
	w, h := v.screen.Size()
	b := v.world.Bounds()
	return int(p.X / b.Width * float64(w)), int(p.Y / b.Height * float64(h))
}

// cellToWorld maps a terminal cell back to world coordinates.
func (v *viewer) cellToWorld(x, y int) vmath.Vec2 {
	w, h := v.screen.Size()
	b := v.world.Bounds()
	return vmath.Vec2{
		X: (float64(x) + 0.5) / float64(w) * b.Width,
		Y: (float64(y) + 0.5) / float64(h) * b.Height,
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	reg := v.world.Registry()

	for _, m := range reg.List(registry.CategoryLiquid) {
		if l, ok := m.(*environment.Liquid); ok {
			v.fillRect(l)
		}
	}
	for _, m := range reg.List(registry.CategoryAttractor) {
		v.drawGlyph(m.(*environment.PointSource).Pos, '+', styleAttractor)
	}
	for _, m := range reg.List(registry.CategoryRepeller) {
		v.drawGlyph(m.(*environment.PointSource).Pos, '-', styleRepeller)
	}
	for _, m := range reg.List(registry.CategoryHeat) {
		v.drawGlyph(m.(*environment.Heat).Pos, '~', styleHeat)
	}
	for _, m := range reg.List(registry.CategoryAgent) {
		if a, ok := m.(*steering.Agent); ok {
			v.drawGlyph(a.Location(), agentGlyph(a), styleAgent)
		}
	}

	v.drawStatus()
	v.screen.Show()
}

// agentGlyph picks an arrow by the agent's heading sector.
func agentGlyph(a *steering.Agent) rune {
	sector := int(math.Round(a.Angle/45)) % 8
	if sector < 0 {
		sector += 8
	}
	return headingGlyphs[sector]
}

func (v *viewer) drawGlyph(p vmath.Vec2, r rune, style tcell.Style) {
	x, y := v.worldToCell(p)
	w, h := v.screen.Size()
	if x >= 0 && x < w && y >= 0 && y < h {
		v.screen.SetContent(x, y, r, nil, style)
	}
}

func (v *viewer) fillRect(l *environment.Liquid) {
	x0, y0 := v.worldToCell(l.Pos)
	x1, y1 := v.worldToCell(l.Pos.Add(vmath.Vec2{X: l.Width, Y: l.Height}))
	w, h := v.screen.Size()
	for y := max(y0, 0); y < min(y1, h); y++ {
		for x := max(x0, 0); x < min(x1, w); x++ {
			v.screen.SetContent(x, y, ' ', nil, styleLiquid)
		}
	}
}

func (v *viewer) drawStatus() {
	status := "running | space pause | q quit"
	if v.paused {
		status = "paused | space resume | q quit"
	}
	_, h := v.screen.Size()
	for i, r := range status {
		v.screen.SetContent(i, h-1, r, nil, styleStatus)
	}
}

// checkCaptures fires the capture cue the first time each agent reaches an
// attractor.
func (v *viewer) checkCaptures() {
	reg := v.world.Registry()
	attractors := reg.List(registry.CategoryAttractor)
	if len(attractors) == 0 {
		return
	}
	for _, m := range reg.List(registry.CategoryAgent) {
		a, ok := m.(*steering.Agent)
		if !ok || v.captured[uint64(a.Entity())] {
			continue
		}
		for _, am := range attractors {
			src := am.(*environment.PointSource)
			if a.Location().Dist(src.Pos) < a.Width {
				v.captured[uint64(a.Entity())] = true
				v.sound.PlayCapture()
				break
			}
		}
	}
}
