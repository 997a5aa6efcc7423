package render

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/bubbles/parameter"
)

var (
	styleBubble = tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
	styleHill   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleEffect = tcell.StyleDefault.Foreground(tcell.ColorPink)
	styleFade   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleHand   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Draw renders one frame: hills, bubbles, live effects and the handle
// Expired effects are dropped here
func (s *Scene) Draw() {
	now := s.clock.Now()
	s.pruneEffects(now)

	s.screen.Clear()
	s.drawHills()
	for _, b := range s.bodies {
		x, y := s.PixelToCell(b.Pos)
		s.drawLabel(x, y, b.Label)
	}
	s.drawEffects(now)
	s.drawHand()
	s.screen.Show()
}

func (s *Scene) pruneEffects(now time.Time) {
	live := s.effects[:0]
	for _, e := range s.effects {
		if now.Sub(e.spawned) < parameter.EffectLifetime {
			live = append(live, e)
		}
	}
	s.effects = live
}

func (s *Scene) drawHills() {
	w, h := s.screen.Size()
	for x := 0; x < w; x++ {
		for y := hillTop(x, w, h); y < h; y++ {
			s.screen.SetContent(x, y, parameter.HillGlyph, nil, styleHill)
		}
	}
}

// drawLabel centers "( label )" on the cell (cx, cy)
func (s *Scene) drawLabel(cx, cy int, label string) {
	width := labelCells(label)
	x := cx - width/2
	x = s.putString(x, cy, "(", styleBubble)
	x += parameter.LabelPaddingCells
	x = s.putString(x, cy, label, styleBubble)
	x += parameter.LabelPaddingCells
	s.putString(x, cy, ")", styleBubble)
}

// putString writes str starting at (x, y) and returns the column after it; off-screen cells are skipped
func (s *Scene) putString(x, y int, str string, style tcell.Style) int {
	w, h := s.screen.Size()
	for _, r := range str {
		if x >= 0 && x < w && y >= 0 && y < h {
			s.screen.SetContent(x, y, r, nil, style)
		}
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (s *Scene) drawEffects(now time.Time) {
	for _, e := range s.effects {
		age := now.Sub(e.spawned)
		progress := math.Min(1, float64(age)/float64(parameter.EffectLifetime))

		p := e.pos
		p[1] -= progress * parameter.EffectRise
		x, y := s.PixelToCell(p)

		style := styleEffect
		if progress > 0.6 {
			style = styleFade
		}
		s.putString(x, y, string(parameter.EffectGlyph), style)
	}
}

func (s *Scene) drawHand() {
	x, y := s.HandleDock()
	if s.handFloating {
		x, y = s.PixelToCell(s.handPos)
	}
	s.putString(x, y, string(parameter.HandGlyph), styleHand)
}
