// Package particles implements the drifting particle background: a fixed set
// of point masses that bounce inside the surface and are joined by fading
// lines when close to each other.
package particles

import (
	"image/color"
	"math/rand"
	"time"
)

// Surface is the 2D region particles are drawn onto.
type Surface interface {
	Size() (w, h float64)
	SetSize(w, h float64)
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	StrokeLine(x1, y1, x2, y2 float64, c color.Color)
}

// Viewport reports the host view size and notifies about changes.
type Viewport interface {
	Size() (w, h float64)
	OnResize(fn func(w, h float64)) (unsubscribe func())
}

// Scheduler runs fn once before the next repaint.
type Scheduler interface {
	RequestFrame(fn func()) (cancel func())
}

// State is the animator lifecycle state.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Options configure an Animator. Zero fields take the defaults below.
type Options struct {
	Count        int
	MaxSpeed     float64
	MinRadius    float64
	MaxRadius    float64
	MinOpacity   float64
	MaxOpacity   float64
	LinkDistance float64
	LinkAlpha    float64
	Accent       color.RGBA
	Rand         *rand.Rand
}

// DefaultOptions returns the stock field: 50 cyan particles.
func DefaultOptions() Options {
	return Options{
		Count:        50,
		MaxSpeed:     0.25,
		MinRadius:    1,
		MaxRadius:    3,
		MinOpacity:   0.2,
		MaxOpacity:   0.7,
		LinkDistance: 100,
		LinkAlpha:    0.1,
		Accent:       color.RGBA{R: 0, G: 212, B: 255, A: 255},
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Count <= 0 {
		o.Count = d.Count
	}
	if o.MaxSpeed == 0 {
		o.MaxSpeed = d.MaxSpeed
	}
	if o.MinRadius <= 0 {
		o.MinRadius = d.MinRadius
	}
	if o.MaxRadius < o.MinRadius {
		o.MaxRadius = max(d.MaxRadius, o.MinRadius)
	}
	if o.MaxOpacity == 0 {
		o.MinOpacity, o.MaxOpacity = d.MinOpacity, d.MaxOpacity
	}
	if o.LinkDistance <= 0 {
		o.LinkDistance = d.LinkDistance
	}
	if o.LinkAlpha == 0 {
		o.LinkAlpha = d.LinkAlpha
	}
	if o.Accent == (color.RGBA{}) {
		o.Accent = d.Accent
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

// Animator owns the particle collection and the surface it draws on.
type Animator struct {
	surface   Surface
	viewport  Viewport
	scheduler Scheduler
	opts      Options

	particles []Particle
	state     State
	frames    uint64

	cancelFrame func()
	unsubscribe func()
}

// New sizes the surface to the viewport and creates the particle collection.
// A nil surface yields a disabled animator whose methods do nothing.
func New(surface Surface, viewport Viewport, scheduler Scheduler, opts Options) *Animator {
	a := &Animator{
		surface:   surface,
		viewport:  viewport,
		scheduler: scheduler,
		opts:      opts.withDefaults(),
	}
	if !a.Enabled() {
		return a
	}

	a.syncSize()
	w, h := surface.Size()
	a.particles = make([]Particle, a.opts.Count)
	for i := range a.particles {
		a.particles[i] = newParticle(a.opts.Rand, w, h, a.opts)
	}
	return a
}

// Enabled reports whether the animator has everything it needs to draw.
func (a *Animator) Enabled() bool {
	return a.surface != nil && a.viewport != nil && a.scheduler != nil
}

// State returns the lifecycle state.
func (a *Animator) State() State { return a.state }

// Frames returns the number of frames rendered so far.
func (a *Animator) Frames() uint64 { return a.frames }

// Particles returns the live collection. Callers must not modify it.
func (a *Animator) Particles() []Particle { return a.particles }

// Start registers the resize listener and schedules the first frame.
// It does nothing when already running or disabled.
func (a *Animator) Start() {
	if !a.Enabled() || a.state == Running {
		return
	}
	a.state = Running
	a.syncSize()
	a.unsubscribe = a.viewport.OnResize(a.resize)
	a.cancelFrame = a.scheduler.RequestFrame(a.Frame)
}

// Stop cancels the pending frame and removes the resize listener. No surface
// writes happen after Stop returns.
func (a *Animator) Stop() {
	if a.state != Running {
		return
	}
	a.state = Stopped
	if a.cancelFrame != nil {
		a.cancelFrame()
		a.cancelFrame = nil
	}
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

// Frame runs one update-and-render cycle and schedules the next one.
// Calls made while stopped are ignored.
func (a *Animator) Frame() {
	if a.state != Running {
		return
	}
	a.cancelFrame = nil

	a.surface.Clear()
	w, h := a.surface.Size()

	for i := range a.particles {
		p := &a.particles[i]
		p.Step(w, h)
		a.surface.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, a.tint(p.Opacity))
	}

	EachLink(a.particles, a.opts.LinkDistance, a.opts.LinkAlpha, func(i, j int, alpha float64) {
		p, q := a.particles[i].Pos, a.particles[j].Pos
		a.surface.StrokeLine(p.X, p.Y, q.X, q.Y, a.tint(alpha))
	})

	a.frames++
	a.cancelFrame = a.scheduler.RequestFrame(a.Frame)
}

// resize tracks the viewport. Particle positions are left as they are.
func (a *Animator) resize(w, h float64) {
	if a.state != Running {
		return
	}
	a.surface.SetSize(w, h)
}

func (a *Animator) syncSize() {
	w, h := a.viewport.Size()
	a.surface.SetSize(w, h)
}

func (a *Animator) tint(alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	c := a.opts.Accent
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}
