package effects

import (
	"time"

	"github.com/iburimskiy/portfolio-visual/internal/config"
)

// Hover tweens a card between rest (scale 1, no tilt) and its hovered pose.
// Each change of pointer state starts a new tween from the current pose.
type Hover struct {
	scale    float64
	rotate   float64
	duration time.Duration

	hovered  bool
	from, to pose
	cur      pose
	elapsed  time.Duration
}

type pose struct {
	scale, rotate float64
}

var restPose = pose{scale: 1}

// NewHover creates a resting card animation.
func NewHover(c config.HoverConfig) *Hover {
	return &Hover{
		scale:    c.Scale,
		rotate:   c.RotateDeg,
		duration: atLeast(config.Millis(c.DurationMS), time.Millisecond),
		from:     restPose,
		to:       restPose,
		cur:      restPose,
		elapsed:  atLeast(config.Millis(c.DurationMS), time.Millisecond),
	}
}

// SetHovered starts the enter or leave tween when the state changes.
func (h *Hover) SetHovered(on bool) {
	if on == h.hovered {
		return
	}
	h.hovered = on
	h.from = h.cur
	if on {
		h.to = pose{scale: h.scale, rotate: h.rotate}
	} else {
		h.to = restPose
	}
	h.elapsed = 0
}

// Hovered reports the pointer state.
func (h *Hover) Hovered() bool { return h.hovered }

// Advance moves the tween forward by dt.
func (h *Hover) Advance(dt time.Duration) {
	if h.elapsed >= h.duration {
		return
	}
	h.elapsed = min(h.elapsed+dt, h.duration)
	k := EaseOutCubic(float64(h.elapsed) / float64(h.duration))
	h.cur = pose{
		scale:  h.from.scale + (h.to.scale-h.from.scale)*k,
		rotate: h.from.rotate + (h.to.rotate-h.from.rotate)*k,
	}
}

// Scale returns the current scale factor.
func (h *Hover) Scale() float64 { return h.cur.scale }

// RotateX returns the current tilt around the horizontal axis in degrees.
func (h *Hover) RotateX() float64 { return h.cur.rotate }
