package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/bubbles/parameter"
)

// hillTop returns the first hill row in column x for a screen of width w and height h
// Two overlapping sine swells give a rolling silhouette that always covers the bottom row
func hillTop(x, w, h int) int {
	if w <= 0 {
		return h - 1
	}
	t := float64(x) / float64(w)
	swell := 0.6*math.Sin(t*2*math.Pi*1.5) + 0.4*math.Sin(t*2*math.Pi*3.5+1)
	crest := (swell + 1) / 2 // [0, 1]
	rows := 1 + int(math.Round(crest*float64(parameter.HillPeakRows-1)))
	return h - rows
}

// OnHill reports whether a screen px coordinate lies on the hills; used as the flick region
func (s *Scene) OnHill(p mgl64.Vec2) bool {
	w, h := s.screen.Size()
	x, y := s.PixelToCell(p)
	if x < 0 || x >= w || y < 0 || y >= h {
		return false
	}
	return y >= hillTop(x, w, h)
}
