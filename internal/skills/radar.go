// Package skills holds the skills radar chart: its data, geometry and a
// static export.
package skills

import (
	"math"
	"time"

	"github.com/iburimskiy/portfolio-visual/internal/config"
	"github.com/iburimskiy/portfolio-visual/internal/effects"
)

// Axis is one skill and its score.
type Axis struct {
	Name  string
	Value float64
}

// Point is a position in screen space (y grows downwards).
type Point struct {
	X, Y float64
}

// Radar is a polygon radar chart. The first axis points up and the rest
// follow counter-clockwise. The data polygon grows from the centre over the
// animation period.
type Radar struct {
	Axes   []Axis
	Max    float64
	Splits int

	animation time.Duration
	elapsed   time.Duration
}

// New builds the chart from configuration.
func New(c config.SkillsConfig) *Radar {
	r := &Radar{
		Max:       c.Max,
		Splits:    c.SplitNumber,
		animation: time.Duration(c.AnimationMS) * time.Millisecond,
	}
	if r.Splits <= 0 {
		r.Splits = 4
	}
	for _, a := range c.Axes {
		r.Axes = append(r.Axes, Axis{Name: a.Name, Value: a.Value})
	}
	return r
}

// Advance moves the grow-in animation forward.
func (r *Radar) Advance(dt time.Duration) {
	r.elapsed = min(r.elapsed+dt, r.animation)
}

// Restart replays the grow-in animation.
func (r *Radar) Restart() { r.elapsed = 0 }

// Progress returns the eased animation progress in [0,1].
func (r *Radar) Progress() float64 {
	if r.animation <= 0 {
		return 1
	}
	return effects.EaseOutCubic(float64(r.elapsed) / float64(r.animation))
}

// Angle returns the direction of axis i in radians, counter-clockwise from
// the positive x axis.
func (r *Radar) Angle(i int) float64 {
	return math.Pi/2 + float64(i)*2*math.Pi/float64(len(r.Axes))
}

func (r *Radar) at(i int, cx, cy, dist float64) Point {
	a := r.Angle(i)
	return Point{X: cx + dist*math.Cos(a), Y: cy - dist*math.Sin(a)}
}

// Spoke returns the outer end of axis i for a chart of the given radius.
func (r *Radar) Spoke(i int, cx, cy, radius float64) Point {
	return r.at(i, cx, cy, radius)
}

// Ring returns the vertices of split ring k (1..Splits); ring Splits is the
// outer boundary.
func (r *Radar) Ring(k int, cx, cy, radius float64) []Point {
	d := radius * float64(k) / float64(r.Splits)
	pts := make([]Point, len(r.Axes))
	for i := range r.Axes {
		pts[i] = r.at(i, cx, cy, d)
	}
	return pts
}

// Polygon returns the data polygon at the current animation progress.
func (r *Radar) Polygon(cx, cy, radius float64) []Point {
	p := r.Progress()
	pts := make([]Point, len(r.Axes))
	for i, a := range r.Axes {
		v := math.Min(math.Max(a.Value, 0), r.Max)
		pts[i] = r.at(i, cx, cy, radius*v/r.Max*p)
	}
	return pts
}
