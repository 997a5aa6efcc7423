package engine

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/bubbles/gesture"
	"github.com/lixenwraith/bubbles/physics"
	"github.com/lixenwraith/bubbles/vmath"
)

type fakeRenderer struct {
	placements int
	last       []physics.Body
	effects    []gesture.EffectRequest
}

func (f *fakeRenderer) PlaceBodies(bodies []physics.Body) {
	f.placements++
	f.last = append(f.last[:0], bodies...)
}

func (f *fakeRenderer) SpawnEffect(req gesture.EffectRequest) {
	f.effects = append(f.effects, req)
}

var driverSpecs = []physics.BodySpec{
	{Label: "Python", Width: 64, Height: 24},
	{Label: "NCBI", Width: 48, Height: 24},
	{Label: "Galaxy", Width: 64, Height: 24},
}

func newTestDriver() (*Driver, *fakeRenderer, *MockTimeProvider) {
	clock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	fr := &fakeRenderer{}
	reg := physics.NewRegistry(physics.DefaultTuning(), vmath.NewFastRand(12))
	cls := gesture.NewClassifier(gesture.DefaultConfig())
	d := NewDriver(reg, cls, fr, clock)
	return d, fr, clock
}

func TestDriverFrameBeforeStartIsNoop(t *testing.T) {
	d, fr, _ := newTestDriver()
	d.Frame()
	if d.Frames() != 0 || fr.placements != 0 {
		t.Fatalf("frame before start ran: frames=%d placements=%d", d.Frames(), fr.placements)
	}
}

func TestDriverFramePlacesBodiesEveryFrame(t *testing.T) {
	d, fr, clock := newTestDriver()
	d.Start(driverSpecs, physics.Bounds{Width: 800, Height: 600})

	if fr.placements != 1 {
		t.Fatalf("expected initial placement on start, got %d", fr.placements)
	}

	for i := 0; i < 5; i++ {
		clock.Advance(16 * time.Millisecond)
		d.Frame()
	}
	if d.Frames() != 5 {
		t.Fatalf("frames = %d, want 5", d.Frames())
	}
	if fr.placements != 6 {
		t.Fatalf("placements = %d, want 6", fr.placements)
	}
	if len(fr.last) != len(driverSpecs) {
		t.Fatalf("renderer saw %d bodies, want %d", len(fr.last), len(driverSpecs))
	}
	if d.LastDelta() != 16*time.Millisecond {
		t.Fatalf("last delta = %v, want 16ms", d.LastDelta())
	}
}

func TestDriverStalledFrameIsClamped(t *testing.T) {
	d, fr, clock := newTestDriver()
	d.Start(driverSpecs[:1], physics.Bounds{Width: 5000, Height: 5000})

	before := fr.last[0]
	clock.Advance(10 * time.Second) // backgrounded tab
	d.Frame()
	after := fr.last[0]

	maxTravel := before.Vel.Len() * physics.DefaultTuning().MaxFrameDelta
	if moved := vmath.Distance(before.Pos, after.Pos); moved > maxTravel+1e-9 {
		t.Fatalf("stalled frame moved %v, cap is %v", moved, maxTravel)
	}
}

func TestDriverResizeRebounds(t *testing.T) {
	d, fr, clock := newTestDriver()
	d.Start(driverSpecs, physics.Bounds{Width: 1600, Height: 1200})

	small := physics.Bounds{Width: 300, Height: 200}
	d.Resize(small)
	clock.Advance(16 * time.Millisecond)
	d.Frame()

	for _, b := range fr.last {
		if b.Pos[0] < b.Radius || b.Pos[0] > small.Width-b.Radius ||
			b.Pos[1] < b.Radius || b.Pos[1] > small.Height-b.Radius {
			t.Fatalf("body %q at %v outside resized bounds", b.Label, b.Pos)
		}
	}
}

func TestDriverResizeToZeroStaysFinite(t *testing.T) {
	d, fr, clock := newTestDriver()
	d.Start(driverSpecs, physics.Bounds{Width: 800, Height: 600})

	d.Resize(physics.Bounds{})
	clock.Advance(16 * time.Millisecond)
	d.Frame()

	bounds := d.Registry().Bounds()
	for _, b := range fr.last {
		if math.IsNaN(b.Pos[0]) || math.IsNaN(b.Pos[1]) {
			t.Fatalf("body %q NaN after zero resize", b.Label)
		}
		if b.Pos[0] < 0 || b.Pos[0] > bounds.Width || b.Pos[1] < 0 || b.Pos[1] > bounds.Height {
			t.Fatalf("body %q at %v outside %vx%v after zero resize", b.Label, b.Pos, bounds.Width, bounds.Height)
		}
	}
}

func TestDriverFlickSpawnsEffectOnNextFrame(t *testing.T) {
	d, fr, clock := newTestDriver()
	d.Start(driverSpecs, physics.Bounds{Width: 800, Height: 600})
	d.SetRegion(func(p mgl64.Vec2) bool { return p[1] > 500 })

	t0 := clock.Now()
	if !d.PointerDown(gesture.Sample{PointerID: 1, Pos: mgl64.Vec2{100, 550}, Time: t0}) {
		t.Fatal("pointer down refused")
	}

	if !d.PointerMove(gesture.Sample{PointerID: 1, Pos: mgl64.Vec2{180, 560}, Time: t0.Add(10 * time.Millisecond)}) {
		t.Fatal("expected flick over the region to trigger")
	}
	if len(fr.effects) != 0 {
		t.Fatal("effect delivered before the frame")
	}
	if d.PendingEffects() != 1 {
		t.Fatalf("pending effects = %d, want 1", d.PendingEffects())
	}

	clock.Advance(16 * time.Millisecond)
	d.Frame()
	if len(fr.effects) != 1 || fr.effects[0] != (gesture.EffectRequest{X: 180, Y: 560}) {
		t.Fatalf("unexpected effects after frame: %+v", fr.effects)
	}
}

func TestDriverIgnoresSecondPointer(t *testing.T) {
	d, _, clock := newTestDriver()
	d.Start(driverSpecs, physics.Bounds{Width: 800, Height: 600})
	d.SetRegion(func(mgl64.Vec2) bool { return true })

	t0 := clock.Now()
	d.PointerDown(gesture.Sample{PointerID: 1, Pos: mgl64.Vec2{0, 0}, Time: t0})
	if d.PointerDown(gesture.Sample{PointerID: 2, Pos: mgl64.Vec2{50, 50}, Time: t0}) {
		t.Fatal("second pointer must not steal the track")
	}
	if d.PointerMove(gesture.Sample{PointerID: 2, Pos: mgl64.Vec2{400, 400}, Time: t0.Add(5 * time.Millisecond)}) {
		t.Fatal("second pointer sample triggered")
	}

	// Foreign release keeps the track, own release ends it, repeated release is harmless
	d.PointerUp(2)
	if !d.Tracking() {
		t.Fatal("foreign release ended the track")
	}
	d.PointerUp(1)
	d.PointerUp(1)
	d.PointerCancel()
	if d.Tracking() {
		t.Fatal("track still active after release")
	}
}
