package effects

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Scroller eases the page offset towards a target with a damped spring.
type Scroller struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	limit  float64
}

// NewScroller creates a spring stepped fps times a second.
func NewScroller(fps int, frequency, damping float64) *Scroller {
	return &Scroller{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// SetLimit sets the largest reachable offset.
func (s *Scroller) SetLimit(limit float64) {
	s.limit = math.Max(0, limit)
	s.target = s.clamp(s.target)
}

// ScrollTo starts a smooth scroll so that y sits at the top of the view.
func (s *Scroller) ScrollTo(y float64) { s.target = s.clamp(y) }

// ScrollBy moves the target by dy.
func (s *Scroller) ScrollBy(dy float64) { s.target = s.clamp(s.target + dy) }

// Update steps the spring by one frame.
func (s *Scroller) Update() {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if s.Settled() {
		s.pos, s.vel = s.target, 0
	}
}

// Pos returns the current offset.
func (s *Scroller) Pos() float64 { return s.pos }

// Target returns where the scroll is heading.
func (s *Scroller) Target() float64 { return s.target }

// Settled reports whether the offset has reached its target.
func (s *Scroller) Settled() bool {
	return math.Abs(s.pos-s.target) < 0.5 && math.Abs(s.vel) < 0.5
}

func (s *Scroller) clamp(y float64) float64 {
	return math.Min(math.Max(0, y), s.limit)
}
