package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/bubbles/engine"
	"github.com/lixenwraith/bubbles/gesture"
	"github.com/lixenwraith/bubbles/parameter"
	"github.com/lixenwraith/bubbles/physics"
)

// Sound is the optional audio sink for spawned effects
type Sound interface {
	PlayPop()
}

// Layout maps terminal cells to simulation pixels
type Layout struct {
	CellWidth  float64
	CellHeight float64
}

func DefaultLayout() Layout {
	return Layout{CellWidth: parameter.CellWidth, CellHeight: parameter.CellHeight}
}

// effect is one spawned bubble rising from where it was triggered
type effect struct {
	pos     mgl64.Vec2
	spawned time.Time
}

// Scene is the terminal side of the frame driver
// Bubbles live in the field above the footer; hills and the handle dock live in the footer
// Not safe for concurrent use; the host loop owns it
type Scene struct {
	screen tcell.Screen
	layout Layout
	clock  engine.TimeProvider
	sound  Sound

	bodies  []physics.Body
	effects []effect

	handFloating bool
	handPos      mgl64.Vec2 // screen px while floating
}

// NewScene binds a scene to an initialized screen; sound may be nil
func NewScene(screen tcell.Screen, layout Layout, clock engine.TimeProvider, sound Sound) *Scene {
	return &Scene{
		screen: screen,
		layout: layout,
		clock:  clock,
		sound:  sound,
	}
}

// PlaceBodies snapshots body state for the next Draw
func (s *Scene) PlaceBodies(bodies []physics.Body) {
	s.bodies = append(s.bodies[:0], bodies...)
}

// SpawnEffect starts a rising bubble at the request position (screen px)
func (s *Scene) SpawnEffect(req gesture.EffectRequest) {
	s.effects = append(s.effects, effect{
		pos:     mgl64.Vec2{req.X, req.Y},
		spawned: s.clock.Now(),
	})
	if s.sound != nil {
		s.sound.PlayPop()
	}
}

// Effects returns the number of live effects
func (s *Scene) Effects() int {
	return len(s.effects)
}

// Measure returns the pixel size of each label as drawn: "( label )"
func (s *Scene) Measure(labels []string) []physics.BodySpec {
	specs := make([]physics.BodySpec, len(labels))
	for i, l := range labels {
		cells := labelCells(l)
		specs[i] = physics.BodySpec{
			Label:  l,
			Width:  float64(cells) * s.layout.CellWidth,
			Height: s.layout.CellHeight,
		}
	}
	return specs
}

// labelCells is the drawn width of a bubble label including brackets and padding
func labelCells(label string) int {
	return runewidth.StringWidth(label) + 2 + 2*parameter.LabelPaddingCells
}

// Bounds returns the field rectangle in px; the footer rows are excluded
func (s *Scene) Bounds() physics.Bounds {
	w, h := s.screen.Size()
	fieldRows := h - parameter.FooterRows
	if fieldRows < 0 {
		fieldRows = 0
	}
	return physics.Bounds{
		Width:  float64(w) * s.layout.CellWidth,
		Height: float64(fieldRows) * s.layout.CellHeight,
	}
}

// CellCenter converts a cell to the px coordinate of its center
func (s *Scene) CellCenter(x, y int) mgl64.Vec2 {
	return mgl64.Vec2{
		(float64(x) + 0.5) * s.layout.CellWidth,
		(float64(y) + 0.5) * s.layout.CellHeight,
	}
}

// PixelToCell converts a px coordinate to the containing cell
func (s *Scene) PixelToCell(p mgl64.Vec2) (x, y int) {
	return floorDiv(p[0], s.layout.CellWidth), floorDiv(p[1], s.layout.CellHeight)
}

func floorDiv(v, size float64) int {
	c := int(v / size)
	if v < 0 && float64(c)*size != v {
		c--
	}
	return c
}

// HandleDock returns the cell where the handle rests when not dragged
func (s *Scene) HandleDock() (x, y int) {
	w, h := s.screen.Size()
	return w - parameter.HandleDockX, h - 1
}

// OnHandle reports whether a cell hits the docked handle (the glyph is two cells wide)
func (s *Scene) OnHandle(x, y int) bool {
	if s.handFloating {
		return false
	}
	dx, dy := s.HandleDock()
	return y == dy && (x == dx || x == dx+1)
}

// SetHandFloating pulls the handle out of its dock to follow the pointer, or returns it
func (s *Scene) SetHandFloating(on bool, p mgl64.Vec2) {
	s.handFloating = on
	s.handPos = p
}

// MoveHand repositions the floating handle
func (s *Scene) MoveHand(p mgl64.Vec2) {
	if s.handFloating {
		s.handPos = p
	}
}

// HandFloating reports whether the handle is being dragged
func (s *Scene) HandFloating() bool {
	return s.handFloating
}
