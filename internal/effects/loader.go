package effects

import (
	"time"

	"github.com/iburimskiy/portfolio-visual/internal/config"
)

// Loader is the full-page overlay shown at start-up. It stays opaque for
// the show period, fades out, and is then removed.
type Loader struct {
	alpha float64
	fade  time.Duration
	Text  string

	fading  bool
	faded   time.Duration
	removed bool
}

// NewLoader schedules the overlay's fade and removal on timers.
func NewLoader(c config.LoaderConfig, timers *Timers) *Loader {
	l := &Loader{
		alpha: c.Alpha,
		fade:  config.Millis(c.FadeMS),
		Text:  c.Text,
	}
	show := config.Millis(c.ShowMS)
	timers.After(show, func() { l.fading = true })
	timers.After(show+l.fade, func() { l.removed = true })
	return l
}

// Advance progresses the fade.
func (l *Loader) Advance(dt time.Duration) {
	if l.fading && !l.removed {
		l.faded = min(l.faded+dt, l.fade)
	}
}

// Visible reports whether the overlay is still on the page.
func (l *Loader) Visible() bool { return !l.removed }

// Alpha returns the overlay opacity.
func (l *Loader) Alpha() float64 {
	switch {
	case l.removed:
		return 0
	case !l.fading || l.fade <= 0:
		return l.alpha
	default:
		return l.alpha * (1 - float64(l.faded)/float64(l.fade))
	}
}
