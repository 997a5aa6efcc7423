package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/bubbles/gesture"
	"github.com/lixenwraith/bubbles/physics"
)

// Renderer is the host side of the driver: it places bodies and spawns effects
type Renderer interface {
	// PlaceBodies is called once per frame with the current body state
	// The slice is only valid for the duration of the call
	PlaceBodies(bodies []physics.Body)
	// SpawnEffect is called for every effect request, in trigger order
	SpawnEffect(req gesture.EffectRequest)
}

// Driver advances the simulation once per frame and routes pointer phases to the classifier
// Owns the registry, the classifier and the effect queue; not safe for concurrent use
type Driver struct {
	registry   *physics.Registry
	classifier *gesture.Classifier
	effects    *EffectQueue
	renderer   Renderer
	clock      TimeProvider
	region     gesture.RegionFunc

	lastFrame time.Time
	lastDelta time.Duration
	frames    uint64
	started   bool
}

// NewDriver wires the driver; region may be set later with SetRegion
func NewDriver(registry *physics.Registry, classifier *gesture.Classifier, renderer Renderer, clock TimeProvider) *Driver {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &Driver{
		registry:   registry,
		classifier: classifier,
		effects:    NewEffectQueue(),
		renderer:   renderer,
		clock:      clock,
	}
}

// SetRegion installs the qualifying-region predicate used for every pointer sample
func (d *Driver) SetRegion(fn gesture.RegionFunc) {
	d.region = fn
}

// Start measures and scatters the bodies, places them once and records the frame epoch
func (d *Driver) Start(specs []physics.BodySpec, bounds physics.Bounds) {
	d.registry.Initialize(specs, bounds)
	d.lastFrame = d.clock.Now()
	d.started = true
	d.renderer.PlaceBodies(d.registry.Bodies())
	log.Printf("driver: started with %d bodies in %.0fx%.0f", d.registry.Len(), d.registry.Bounds().Width, d.registry.Bounds().Height)
}

// Frame runs one animation frame: step by the clamped elapsed time, place bodies, flush effects
// Frames before Start are ignored
func (d *Driver) Frame() {
	if !d.started {
		return
	}
	now := d.clock.Now()
	d.lastDelta = now.Sub(d.lastFrame)
	d.lastFrame = now
	d.frames++

	d.registry.Step(d.lastDelta.Seconds())
	d.renderer.PlaceBodies(d.registry.Bodies())
	d.effects.Drain(d.renderer.SpawnEffect)
}

// Resize re-scatters all bodies inside newly measured bounds before the next step
func (d *Driver) Resize(bounds physics.Bounds) {
	d.registry.Reinitialize(bounds)
	b := d.registry.Bounds()
	log.Printf("driver: resized to %.0fx%.0f", b.Width, b.Height)
}

// PointerDown begins a track unless another pointer is already being tracked
// Returns true if the track began
func (d *Driver) PointerDown(s gesture.Sample) bool {
	if d.classifier.Active() && d.classifier.PointerID() != s.PointerID {
		return false
	}
	d.classifier.BeginTrack(s)
	return true
}

// PointerMove feeds a sample to the classifier and queues any resulting effect for the next frame
func (d *Driver) PointerMove(s gesture.Sample) bool {
	req, ok := d.classifier.OnSample(s, d.region)
	if ok {
		d.effects.Push(req)
		log.Printf("driver: flick at (%.0f,%.0f) accel=%.0f", req.X, req.Y, d.classifier.Track().Accel)
	}
	return ok
}

// PointerUp ends the track of the releasing pointer; foreign or duplicate releases are no-ops
func (d *Driver) PointerUp(pointerID int) {
	if !d.classifier.Active() || d.classifier.PointerID() != pointerID {
		return
	}
	d.classifier.EndTrack()
}

// PointerCancel ends any active track regardless of pointer
func (d *Driver) PointerCancel() {
	d.classifier.EndTrack()
}

// Tracking reports whether a pointer track is active
func (d *Driver) Tracking() bool {
	return d.classifier.Active()
}

// Registry exposes the body registry for inspection
func (d *Driver) Registry() *physics.Registry {
	return d.registry
}

// Frames returns the number of frames stepped since Start
func (d *Driver) Frames() uint64 {
	return d.frames
}

// LastDelta returns the unclamped wall time between the two most recent frames
func (d *Driver) LastDelta() time.Duration {
	return d.lastDelta
}

// PendingEffects returns the number of effects waiting for the next frame
func (d *Driver) PendingEffects() int {
	return d.effects.Len()
}
