package effects

import (
	"time"

	"github.com/iburimskiy/portfolio-visual/internal/config"
)

// Element is a block of the page that fades and slides in once it scrolls
// into view. Items are revealed one after another when their parent is.
type Element struct {
	ID     string
	Top    float64 // page coordinates
	Height float64
	Items  []*Element

	revealed bool
	progress float64
}

// Revealed reports whether the element has been triggered.
func (e *Element) Revealed() bool { return e.revealed }

// Progress returns the eased transition progress in [0,1].
func (e *Element) Progress() float64 { return EaseOutCubic(e.progress) }

// Reveal is an intersection observer for page elements.
type Reveal struct {
	threshold  float64
	margin     float64
	offset     float64
	stagger    time.Duration
	transition time.Duration
	timers     *Timers

	observed []*Element
	active   []*Element
}

// NewReveal creates an observer whose staggered reveals run on timers.
func NewReveal(c config.RevealConfig, timers *Timers) *Reveal {
	return &Reveal{
		threshold:  c.Threshold,
		margin:     c.BottomMargin,
		offset:     c.Offset,
		stagger:    config.Millis(c.StaggerMS),
		transition: atLeast(config.Millis(c.TransitionMS), time.Millisecond),
		timers:     timers,
	}
}

// Observe watches el and, recursively, its items.
func (r *Reveal) Observe(el *Element) {
	r.observed = append(r.observed, el)
	for _, it := range el.Items {
		r.Observe(it)
	}
}

// Ratio returns the visible fraction of el inside the viewport
// [scrollY, scrollY+viewH-margin].
func (r *Reveal) Ratio(el *Element, scrollY, viewH float64) float64 {
	if el.Height <= 0 {
		return 0
	}
	top := max(el.Top, scrollY)
	bottom := min(el.Top+el.Height, scrollY+viewH-r.margin)
	if bottom <= top {
		return 0
	}
	return (bottom - top) / el.Height
}

// Update checks intersections for the current scroll position and advances
// running transitions by dt.
func (r *Reveal) Update(scrollY, viewH float64, dt time.Duration) {
	kept := r.observed[:0]
	for _, el := range r.observed {
		if el.revealed {
			continue
		}
		ratio := r.Ratio(el, scrollY, viewH)
		if ratio > 0 && ratio >= r.threshold {
			r.reveal(el)
			for i, it := range el.Items {
				it := it
				r.timers.After(time.Duration(i)*r.stagger, func() { r.reveal(it) })
			}
			continue
		}
		kept = append(kept, el)
	}
	r.observed = kept

	step := float64(dt) / float64(r.transition)
	running := r.active[:0]
	for _, el := range r.active {
		el.progress = Clamp01(el.progress + step)
		if el.progress < 1 {
			running = append(running, el)
		}
	}
	r.active = running
}

func (r *Reveal) reveal(el *Element) {
	if el.revealed {
		return
	}
	el.revealed = true
	r.active = append(r.active, el)
}

// Opacity returns the element's current opacity.
func (r *Reveal) Opacity(el *Element) float64 { return el.Progress() }

// OffsetY returns the element's current downward translation.
func (r *Reveal) OffsetY(el *Element) float64 { return r.offset * (1 - el.Progress()) }

// Pending returns the number of elements not yet revealed.
func (r *Reveal) Pending() int {
	n := 0
	for _, el := range r.observed {
		if !el.revealed {
			n++
		}
	}
	return n
}
