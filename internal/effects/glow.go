package effects

import (
	"image/color"
	"time"

	"github.com/iburimskiy/portfolio-visual/internal/config"
)

// Glow cycles a text shadow through the hue wheel.
type Glow struct {
	hue   int
	step  int
	timer *Timer
}

// NewGlow registers the cycling timer with the page's timer set, which owns
// its lifetime.
func NewGlow(c config.GlowConfig, timers *Timers) *Glow {
	g := &Glow{step: c.Step}
	if g.step == 0 {
		g.step = 1
	}
	g.timer = timers.Every(time.Duration(c.IntervalMS)*time.Millisecond, g.tick)
	return g
}

func (g *Glow) tick() {
	g.hue = ((g.hue+g.step)%360 + 360) % 360
}

// Hue returns the current hue in degrees.
func (g *Glow) Hue() int { return g.hue }

// Color returns hsl(hue, 100%, 50%).
func (g *Glow) Color() color.RGBA { return HSV(float64(g.hue), 1, 1) }

// Running reports whether the hue is still cycling.
func (g *Glow) Running() bool { return g.timer.Active() }
